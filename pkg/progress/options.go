package progress

import (
	"io"
	"os"

	"termbar/pkg/guard"
	"termbar/pkg/termsize"
)

// DefaultWidth is the fill width used by Default.
const DefaultWidth = 50

// DefaultFallbackExtra is how many columns beyond the fill width the frame
// may use when the terminal width is unknown.
const DefaultFallbackExtra = 20

// Option configures a Bar at construction.
type Option func(*options)

type options struct {
	sink    guard.Sink
	errOut  io.Writer
	title   string
	autoFit bool
	sizer   termsize.Func
	extra   int
}

func buildOptions(opts []Option) *options {
	o := &options{
		errOut: os.Stderr,
		extra:  DefaultFallbackExtra,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.sink == nil {
		o.sink = guard.Stdout()
	}
	return o
}

// sizerFor picks the size query: an explicit one wins, then the sink's
// own descriptor.
func (o *options) sizerFor(g *guard.Guard) termsize.Func {
	if o.sizer != nil {
		return o.sizer
	}
	if fd, ok := g.Fd(); ok {
		return termsize.ForFd(fd)
	}
	return termsize.Unknown
}

// WithOutput sends frames to w instead of standard output.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.sink = guard.NewSink(w) }
}

// WithErrOutput sets where Eprintln writes. Defaults to standard error.
func WithErrOutput(w io.Writer) Option {
	return func(o *options) { o.errOut = w }
}

// WithTitle sets the initial title.
func WithTitle(title string) Option {
	return func(o *options) { o.title = title }
}

// WithAutoFit makes every render use the live terminal width in place of
// the stored maximum width.
func WithAutoFit(on bool) Option {
	return func(o *options) { o.autoFit = on }
}

// WithSizer overrides how the terminal size is queried.
func WithSizer(f termsize.Func) Option {
	return func(o *options) { o.sizer = f }
}

// WithFallbackExtra sets the columns added to the fill width when the
// terminal width cannot be detected.
func WithFallbackExtra(n int) Option {
	return func(o *options) { o.extra = n }
}
