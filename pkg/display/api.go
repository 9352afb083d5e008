// Package display defines the contract shared by progress bars and spinners.
package display

// Display is a single animated terminal line.
type Display interface {
	// Refresh redraws the current frame.
	Refresh()
	// Blank erases the current frame.
	Blank()
	// Println blanks the frame, prints line on the indicator's stream and
	// redraws, so the indicator stays below ordinary output.
	Println(line string)
	// Eprintln is Println for the error stream.
	Eprintln(line string)

	Title() string
	// SetTitle replaces the title and redraws.
	SetTitle(title string)
	// UpdateDimensions sets the maximum frame width and redraws.
	// Indicators without a width ignore it.
	UpdateDimensions(maxWidth int)
}

// ProgressBar is a Display with a known fraction of completion.
type ProgressBar interface {
	Display
	// SetProgress sets completion, nominally in [0, 1], and redraws.
	SetProgress(value float64)
	Progress() float64
}

// Spinner is a Display for work of unknown size.
type Spinner interface {
	Display
	// Bump advances the animation by one glyph.
	Bump()
}

// Indicator is any Display that can be finished.
type Indicator interface {
	Display
	// Complete ends the indicator's line. Later calls on it do nothing.
	Complete()
}

// Factory builds an indicator of some kind with a title. width is a hint
// that spinners ignore.
type Factory func(width int, title string) (Indicator, error)
