package display

// Maybe holds either a live indicator or nothing. Every call is forwarded
// when one is present and dropped otherwise, so call sites can treat an
// optional indicator uniformly. The zero Maybe is quiet.
// Immutable
type Maybe struct {
	ind Indicator
}

var _ Indicator = Maybe{}

// Loud wraps a live indicator. A nil ind yields a quiet Maybe.
func Loud(ind Indicator) Maybe {
	return Maybe{ind: ind}
}

// Quiet returns a Maybe with nothing inside.
func Quiet() Maybe {
	return Maybe{}
}

// Choose returns Loud(ind) when loud is true and Quiet otherwise.
func Choose(loud bool, ind Indicator) Maybe {
	if !loud {
		return Quiet()
	}
	return Loud(ind)
}

// Present reports whether a live indicator is held.
func (m Maybe) Present() bool {
	return m.ind != nil
}

// Unwrap returns the held indicator, or nil.
func (m Maybe) Unwrap() Indicator {
	return m.ind
}

func (m Maybe) Refresh() {
	if m.ind != nil {
		m.ind.Refresh()
	}
}

func (m Maybe) Blank() {
	if m.ind != nil {
		m.ind.Blank()
	}
}

func (m Maybe) Println(line string) {
	if m.ind != nil {
		m.ind.Println(line)
	}
}

func (m Maybe) Eprintln(line string) {
	if m.ind != nil {
		m.ind.Eprintln(line)
	}
}

func (m Maybe) Title() string {
	if m.ind == nil {
		return ""
	}
	return m.ind.Title()
}

func (m Maybe) SetTitle(title string) {
	if m.ind != nil {
		m.ind.SetTitle(title)
	}
}

func (m Maybe) UpdateDimensions(maxWidth int) {
	if m.ind != nil {
		m.ind.UpdateDimensions(maxWidth)
	}
}

// SetProgress forwards only when the held indicator is a ProgressBar.
func (m Maybe) SetProgress(value float64) {
	if pb, ok := m.ind.(ProgressBar); ok {
		pb.SetProgress(value)
	}
}

// Progress is 0 unless a ProgressBar is held.
func (m Maybe) Progress() float64 {
	if pb, ok := m.ind.(ProgressBar); ok {
		return pb.Progress()
	}
	return 0
}

// Bump forwards only when the held indicator is a Spinner.
func (m Maybe) Bump() {
	if sp, ok := m.ind.(Spinner); ok {
		sp.Bump()
	}
}

func (m Maybe) Complete() {
	if m.ind != nil {
		m.ind.Complete()
	}
}
