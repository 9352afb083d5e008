package display

// Silent implements every indicator capability and does nothing.
// Immutable
type Silent struct{}

var (
	_ ProgressBar = Silent{}
	_ Spinner     = Silent{}
	_ Indicator   = Silent{}
)

// SilentFactory is a Factory producing Silent.
func SilentFactory(int, string) (Indicator, error) {
	return Silent{}, nil
}

func (Silent) Refresh()             {}
func (Silent) Blank()               {}
func (Silent) Println(string)       {}
func (Silent) Eprintln(string)      {}
func (Silent) Title() string        { return "" }
func (Silent) SetTitle(string)      {}
func (Silent) UpdateDimensions(int) {}
func (Silent) SetProgress(float64)  {}
func (Silent) Progress() float64    { return 0 }
func (Silent) Bump()                {}
func (Silent) Complete()            {}
