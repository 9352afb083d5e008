package guard

import (
	"io"
	"os"
)

// Sink is the minimal output capability an indicator needs.
type Sink interface {
	io.Writer
	Flush() error
}

type flusher interface {
	Flush() error
}

type fder interface {
	Fd() uintptr
}

// writerSink adapts a plain io.Writer. Flush is forwarded when the writer
// can flush itself and is a no-op otherwise.
// Immutable
type writerSink struct {
	w io.Writer
}

// NewSink adapts w into a Sink. A w that already is a Sink is returned
// unchanged.
func NewSink(w io.Writer) Sink {
	if s, ok := w.(Sink); ok {
		return s
	}
	return &writerSink{w: w}
}

func (s *writerSink) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

func (s *writerSink) Flush() error {
	if f, ok := s.w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

// Fd exposes the descriptor of the wrapped writer, or ^uintptr(0) when it
// has none.
func (s *writerSink) Fd() uintptr {
	if f, ok := s.w.(fder); ok {
		return f.Fd()
	}
	return ^uintptr(0)
}

// Stdout returns a Sink over the process's standard output.
func Stdout() Sink {
	return NewSink(os.Stdout)
}

// Stderr returns a Sink over the process's standard error.
func Stderr() Sink {
	return NewSink(os.Stderr)
}
