// Package spinner implements a single-glyph spinner for work of unknown
// size. It renders as the title followed by one glyph:
//
//	fetching index /
//
// and advances only when the caller calls Bump.
package spinner

import (
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"termbar/pkg/display"
	"termbar/pkg/guard"
	"termbar/pkg/wheel"
)

// clearGlyph is a backspace, written on completion to step back over the
// glyph.
const clearGlyph = "\b"

// Spin is a spinner with an optional title.
// Safe for concurrent use.
// Mutable
type Spin struct {
	mu      sync.Mutex
	title   string
	current rune
	cursor  *wheel.Cursor
	done    bool

	out    *guard.Guard
	errOut io.Writer
}

var (
	_ display.Spinner   = (*Spin)(nil)
	_ display.Indicator = (*Spin)(nil)
)

// Option configures a Spin at construction.
type Option func(*options)

type options struct {
	sink   guard.Sink
	errOut io.Writer
}

// WithOutput sends the spinner to w instead of standard output.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.sink = guard.NewSink(w) }
}

// WithErrOutput sets where Eprintln writes. Defaults to standard error.
func WithErrOutput(w io.Writer) Option {
	return func(o *options) { o.errOut = w }
}

func build(whl wheel.Wheel, title string, opts []Option) *Spin {
	o := &options{errOut: os.Stderr}
	for _, opt := range opts {
		opt(o)
	}
	if o.sink == nil {
		o.sink = guard.Stdout()
	}
	return &Spin{
		title:  title,
		cursor: whl.Cursor(),
		out:    guard.New(o.sink),
		errOut: o.errOut,
	}
}

// New creates an untitled spinner. Nothing is drawn until the first Bump
// or SetTitle. The first glyph shown is the wheel's second.
func New(whl wheel.Wheel, opts ...Option) *Spin {
	s := build(whl, "", opts)
	s.current = s.cursor.Next()
	return s
}

// WithTitle creates a spinner and draws it immediately.
func WithTitle(title string, whl wheel.Wheel, opts ...Option) *Spin {
	s := build(whl, title, opts)
	s.current = s.cursor.Next()
	s.Refresh()
	return s
}

// Default creates an untitled spinner on the default wheel showing '|', so
// that the first Bump shows '-'.
func Default(opts ...Option) *Spin {
	s := build(wheel.Default(), "", opts)
	s.current = s.cursor.Last()
	return s
}

// NewFactory returns a display.Factory producing titled spinners on whl.
// The width argument is ignored.
func NewFactory(whl wheel.Wheel, opts ...Option) display.Factory {
	return func(_ int, title string) (display.Indicator, error) {
		return WithTitle(title, whl, opts...), nil
	}
}

// Current returns the glyph on display.
func (s *Spin) Current() rune {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Bump advances to the next glyph and redraws. It waits for the output
// rather than dropping the frame.
func (s *Spin) Bump() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.current = s.cursor.Next()
	frame := s.frame()
	s.mu.Unlock()

	s.out.Write(frame)
}

func (s *Spin) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// SetTitle erases the old title, then draws the new one with the same glyph.
func (s *Spin) SetTitle(title string) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	blank := s.blankSeq()
	s.title = title
	frame := s.frame()
	s.mu.Unlock()

	s.out.Write(blank + frame)
}

// UpdateDimensions does nothing; spinners have no width.
func (s *Spin) UpdateDimensions(int) {}

// Refresh redraws the spinner, dropping the frame under contention.
func (s *Spin) Refresh() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	frame := s.frame()
	s.mu.Unlock()

	s.out.TryWrite(frame)
}

// Blank erases the title and glyph, dropping the write under contention.
func (s *Spin) Blank() {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	seq := s.blankSeq()
	s.mu.Unlock()

	s.out.TryWrite(seq)
}

// Println prints line on the spinner's stream and redraws below it.
func (s *Spin) Println(line string) {
	if s.closed() {
		return
	}
	display.Interject(s, s.out.Writer(), line)
}

// Eprintln prints line on the error stream and redraws.
func (s *Spin) Eprintln(line string) {
	if s.closed() {
		return
	}
	display.Interject(s, s.errOut, line)
}

// Complete removes the glyph and ends the line.
func (s *Spin) Complete() {
	s.finish(" ")
}

// CompleteWith replaces the glyph with msg and ends the line.
func (s *Spin) CompleteWith(msg string) {
	s.finish(msg)
}

func (s *Spin) finish(tail string) {
	s.mu.Lock()
	if s.done {
		s.mu.Unlock()
		return
	}
	s.done = true
	s.mu.Unlock()

	s.out.Write(clearGlyph + tail + "\n")
}

// Err returns the first output error swallowed while rendering.
func (s *Spin) Err() error {
	return s.out.Err()
}

func (s *Spin) closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// frame must be called with s.mu held.
func (s *Spin) frame() string {
	return "\r" + s.title + " " + string(s.current)
}

// blankSeq covers the title, the separating space and the glyph.
// It must be called with s.mu held.
func (s *Spin) blankSeq() string {
	return "\r" + strings.Repeat(" ", utf8.RuneCountInString(s.title)) + "  \r"
}
