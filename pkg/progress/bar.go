// Package progress implements a single-line progress bar.
//
// A Bar renders as
//
//	[=========================                         ]: 50.00% title, cut with ... when too long
//
// and every frame is padded to exactly the bar's maximum width, so erasing
// with that many spaces always clears the previous frame.
package progress

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"termbar/pkg/display"
	"termbar/pkg/guard"
	"termbar/pkg/layout"
	"termbar/pkg/termsize"
)

// ErrInvalidWidth is returned when the fill width is below 1 or not
// strictly less than the maximum width.
var ErrInvalidWidth = errors.New("progress: invalid bar width")

const (
	// resetClear resets attributes and erases to end of line.
	resetClear = "\x1b[0m\x1b[K"
	// park emits a newline and moves back up, leaving the cursor on the
	// bar's own line.
	park = "\n\x1b[1A"
)

// Bar is a progress bar with a fill width and a maximum frame width.
// Safe for concurrent use; racing renders drop frames instead of
// interleaving them.
// Mutable
type Bar struct {
	mu       sync.Mutex
	width    int
	maxWidth int
	progress float64
	title    string
	buffer   string
	autoFit  bool
	sizer    termsize.Func
	done     bool

	out    *guard.Guard
	errOut io.Writer
}

var (
	_ display.ProgressBar = (*Bar)(nil)
	_ display.Indicator   = (*Bar)(nil)
)

// Default creates a bar of DefaultWidth sized to the terminal.
func Default(opts ...Option) *Bar {
	b, err := New(DefaultWidth, opts...)
	if err != nil {
		// DefaultWidth is positive, New cannot fail.
		panic(err)
	}
	return b
}

// New creates a bar width cells wide whose maximum width is the terminal
// width, or width plus the fallback extra when that cannot be detected.
// On a terminal narrower than width the fill is shrunk to fit.
func New(width int, opts ...Option) (*Bar, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidWidth, width)
	}
	o := buildOptions(opts)
	g := guard.New(o.sink)
	if tw, ok := o.sizerFor(g).Width(); ok && tw >= 2 {
		return newBar(min(width, tw-1), tw, g, o)
	}
	return newBar(width, width+max(o.extra, 1), g, o)
}

// NewForTerminal is New but fails with termsize.ErrNoTerminal when the
// output is not a terminal of detectable width.
func NewForTerminal(width int, opts ...Option) (*Bar, error) {
	if width < 1 {
		return nil, fmt.Errorf("%w: width %d", ErrInvalidWidth, width)
	}
	o := buildOptions(opts)
	g := guard.New(o.sink)
	tw, ok := o.sizerFor(g).Width()
	if !ok || tw < 2 {
		return nil, termsize.ErrNoTerminal
	}
	return newBar(min(width, tw-1), tw, g, o)
}

// WithMax creates a bar with an explicit maximum width, which must be
// strictly greater than width.
func WithMax(width, maxWidth int, opts ...Option) (*Bar, error) {
	o := buildOptions(opts)
	return newBar(width, maxWidth, guard.New(o.sink), o)
}

// NewFactory returns a display.Factory producing bars built with opts.
func NewFactory(opts ...Option) display.Factory {
	return func(width int, title string) (display.Indicator, error) {
		return New(width, append(append([]Option(nil), opts...), WithTitle(title))...)
	}
}

func newBar(width, maxWidth int, g *guard.Guard, o *options) (*Bar, error) {
	if width < 1 || width >= maxWidth {
		return nil, fmt.Errorf("%w: width %d, max %d", ErrInvalidWidth, width, maxWidth)
	}
	b := &Bar{
		width:    width,
		maxWidth: maxWidth,
		title:    o.title,
		autoFit:  o.autoFit,
		sizer:    o.sizerFor(g),
		out:      g,
		errOut:   o.errOut,
	}
	b.buffer = layout.FillBar(b.width, b.progress)
	b.Refresh()
	return b, nil
}

// Update recomputes the fill buffer without redrawing.
func (b *Bar) Update() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buffer = layout.FillBar(b.width, b.progress)
}

// SetProgress stores value and redraws, even if value is unchanged.
func (b *Bar) SetProgress(value float64) {
	b.mu.Lock()
	if b.progress != value {
		b.progress = value
		b.buffer = layout.FillBar(b.width, b.progress)
	}
	b.mu.Unlock()
	b.Refresh()
}

func (b *Bar) Progress() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.progress
}

func (b *Bar) Title() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.title
}

func (b *Bar) SetTitle(title string) {
	b.mu.Lock()
	b.title = title
	b.mu.Unlock()
	b.Refresh()
}

// Width is the fill width.
func (b *Bar) Width() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.width
}

// MaxWidth is the stored maximum frame width.
func (b *Bar) MaxWidth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.maxWidth
}

func (b *Bar) UpdateDimensions(maxWidth int) {
	b.mu.Lock()
	b.maxWidth = maxWidth
	b.mu.Unlock()
	b.Refresh()
}

// Fit resizes the bar to the current terminal width. The fill width is
// clamped below the new maximum. It reports whether the width could be
// queried.
func (b *Bar) Fit() bool {
	b.mu.Lock()
	tw, ok := b.sizer.Width()
	if !ok || tw < 2 {
		b.mu.Unlock()
		return false
	}
	if b.width >= tw {
		b.width = tw - 1
		b.buffer = layout.FillBar(b.width, b.progress)
	}
	b.mu.Unlock()
	b.UpdateDimensions(tw)
	return true
}

// liveWidth must be called with b.mu held.
func (b *Bar) liveWidth() int {
	if b.autoFit {
		if tw, ok := b.sizer.Width(); ok && tw > 0 {
			return tw
		}
	}
	return b.maxWidth
}

// Refresh blanks the line and draws the current frame in one guarded
// write. The frame is dropped if another write holds the guard.
func (b *Bar) Refresh() {
	b.mu.Lock()
	if b.done {
		b.mu.Unlock()
		return
	}
	w := b.liveWidth()
	frame := blankSeq(w) + resetClear + layout.Line(b.buffer, b.progress, b.title, w) + park
	b.mu.Unlock()

	b.out.TryWrite(frame)
}

// Blank erases the line with maximum-width spaces.
func (b *Bar) Blank() {
	b.mu.Lock()
	if b.done {
		b.mu.Unlock()
		return
	}
	seq := blankSeq(b.liveWidth())
	b.mu.Unlock()

	b.out.TryWrite(seq)
}

// Println prints line above the bar on the bar's own stream.
func (b *Bar) Println(line string) {
	if b.closed() {
		return
	}
	display.Interject(b, b.out.Writer(), line)
}

// Eprintln prints line on the error stream and redraws the bar.
func (b *Bar) Eprintln(line string) {
	if b.closed() {
		return
	}
	display.Interject(b, b.errOut, line)
}

// Complete ends the bar with a newline. The bar ignores all later calls.
func (b *Bar) Complete() {
	b.mu.Lock()
	if b.done {
		b.mu.Unlock()
		return
	}
	b.done = true
	b.mu.Unlock()

	b.out.Write("\n")
}

// Err returns the first output error swallowed while rendering.
func (b *Bar) Err() error {
	return b.out.Err()
}

func (b *Bar) closed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.done
}

func blankSeq(width int) string {
	return "\r" + strings.Repeat(" ", max(width, 0)) + "\r"
}
