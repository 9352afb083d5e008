// Package guard serialises writes to an indicator's output sink.
//
// Render paths use TryExclusive: when another write is in flight the caller
// gets nothing and must drop its frame. Mutation paths that own the
// indicator may use Exclusive, which waits.
package guard

import (
	"io"
	"log/slog"
	"sync"
)

// Guard owns a Sink and hands out at most one Handle at a time.
// Mutable
type Guard struct {
	mu   sync.Mutex
	sink Sink

	errMu sync.Mutex
	err   error
}

// New wraps sink in a Guard.
func New(sink Sink) *Guard {
	return &Guard{sink: sink}
}

// NewWriter wraps an arbitrary io.Writer in a Guard.
func NewWriter(w io.Writer) *Guard {
	return New(NewSink(w))
}

// TryExclusive returns a Handle if no other Handle is outstanding.
// It never blocks.
func (g *Guard) TryExclusive() (*Handle, bool) {
	if !g.mu.TryLock() {
		return nil, false
	}
	return &Handle{g: g}, true
}

// Exclusive waits for and returns a Handle.
func (g *Guard) Exclusive() *Handle {
	g.mu.Lock()
	return &Handle{g: g}
}

// TryWrite writes and flushes s in one exclusive section. It reports
// false, having written nothing, when the guard is contended.
func (g *Guard) TryWrite(s string) bool {
	h, ok := g.TryExclusive()
	if !ok {
		return false
	}
	defer h.Release()
	h.WriteString(s)
	h.Flush()
	return true
}

// Write writes and flushes s, waiting for exclusive access.
func (g *Guard) Write(s string) {
	h := g.Exclusive()
	defer h.Release()
	h.WriteString(s)
	h.Flush()
}

// Writer returns an io.Writer whose every Write waits for exclusive access,
// writes and flushes. Use it for output that must not be dropped.
func (g *Guard) Writer() io.Writer {
	return lineWriter{g: g}
}

type lineWriter struct {
	g *Guard
}

func (w lineWriter) Write(p []byte) (int, error) {
	h := w.g.Exclusive()
	defer h.Release()
	n, err := h.Write(p)
	if err != nil {
		return n, err
	}
	return n, h.Flush()
}

// Fd returns the file descriptor behind the sink, if there is one.
func (g *Guard) Fd() (uintptr, bool) {
	f, ok := g.sink.(fder)
	if !ok {
		return 0, false
	}
	fd := f.Fd()
	if fd == ^uintptr(0) {
		return 0, false
	}
	return fd, true
}

// Err returns the first write or flush error seen by this guard.
func (g *Guard) Err() error {
	g.errMu.Lock()
	defer g.errMu.Unlock()
	return g.err
}

func (g *Guard) record(err error) {
	if err == nil {
		return
	}
	g.errMu.Lock()
	defer g.errMu.Unlock()
	if g.err == nil {
		g.err = err
		slog.Debug("Indicator output failed, further errors suppressed", "error", err)
	}
}

// Handle is exclusive access to a guarded sink. Errors are recorded on the
// guard rather than returned to render code.
// Mutable
type Handle struct {
	g        *Guard
	released bool
}

var _ io.Writer = (*Handle)(nil)

func (h *Handle) Write(p []byte) (int, error) {
	n, err := h.g.sink.Write(p)
	h.g.record(err)
	return n, err
}

// WriteString writes s, discarding the error after recording it.
func (h *Handle) WriteString(s string) {
	_, _ = h.Write([]byte(s))
}

// Flush flushes the sink.
func (h *Handle) Flush() error {
	err := h.g.sink.Flush()
	h.g.record(err)
	return err
}

// Release gives up exclusive access. Releasing twice is a no-op.
func (h *Handle) Release() {
	if h.released {
		return
	}
	h.released = true
	h.g.mu.Unlock()
}
