package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and symbols for the demo's own messages using
// lipgloss. Indicator frames are never styled.
type Theme struct {
	Bold  lipgloss.Style
	Green lipgloss.Style
	Dim   lipgloss.Style
	Red   lipgloss.Style

	Tick  string
	Cross string
}

func DefaultTheme() *Theme {
	return &Theme{
		Bold:  lipgloss.NewStyle().Bold(true),
		Green: lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		Dim:   lipgloss.NewStyle().Faint(true),
		Red:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),

		Tick:  "✓",
		Cross: "✗",
	}
}

func (t *Theme) Styled(style lipgloss.Style, text string) string {
	return style.Render(text)
}

// Done formats a success message.
func (t *Theme) Done(msg string) string {
	return t.Styled(t.Green, t.Tick+" "+msg)
}

// Failed formats a failure message.
func (t *Theme) Failed(msg string) string {
	return t.Styled(t.Red, t.Cross+" "+msg)
}
