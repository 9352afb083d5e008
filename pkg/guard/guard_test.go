package guard

import (
	"bufio"
	"bytes"
	"errors"
	"os"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

type failingWriter struct {
	writes int
}

var errBroken = errors.New("broken pipe")

func (f *failingWriter) Write(p []byte) (int, error) {
	f.writes++
	return 0, errBroken
}

func TestTryWriteContended(t *testing.T) {
	buf := &bytes.Buffer{}
	g := NewWriter(buf)

	h, ok := g.TryExclusive()
	if !ok {
		t.Fatal("first TryExclusive should succeed")
	}

	done := make(chan bool, 1)
	go func() { done <- g.TryWrite("frame") }()

	select {
	case wrote := <-done:
		if wrote {
			t.Error("TryWrite succeeded while guard was held")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("TryWrite blocked on a held guard")
	}
	if buf.Len() != 0 {
		t.Errorf("expected zero bytes written, got %q", buf.String())
	}

	h.Release()
	if !g.TryWrite("frame") {
		t.Fatal("TryWrite failed after release")
	}
	if buf.String() != "frame" {
		t.Errorf("got %q", buf.String())
	}
}

func TestReleaseTwice(t *testing.T) {
	g := NewWriter(&bytes.Buffer{})
	h := g.Exclusive()
	h.Release()
	h.Release()
	if _, ok := g.TryExclusive(); !ok {
		t.Fatal("guard should be free")
	}
}

func TestErrorsRecordedNotReturned(t *testing.T) {
	fw := &failingWriter{}
	g := NewWriter(fw)

	if !g.TryWrite("a") {
		t.Fatal("TryWrite should acquire an idle guard")
	}
	g.Write("b")

	if !errors.Is(g.Err(), errBroken) {
		t.Errorf("expected recorded error, got %v", g.Err())
	}
	if fw.writes != 2 {
		t.Errorf("expected 2 write attempts, got %d", fw.writes)
	}
}

func TestFlushForwarded(t *testing.T) {
	buf := &bytes.Buffer{}
	bw := bufio.NewWriter(buf)
	g := NewWriter(bw)

	g.Write("hello")
	if buf.String() != "hello" {
		t.Errorf("buffered writer was not flushed: %q", buf.String())
	}
}

func TestFd(t *testing.T) {
	if _, ok := NewWriter(&bytes.Buffer{}).Fd(); ok {
		t.Error("buffer should have no descriptor")
	}

	f, err := os.CreateTemp(t.TempDir(), "sink")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	fd, ok := NewWriter(f).Fd()
	if !ok || fd != f.Fd() {
		t.Errorf("got fd %d ok=%v, want %d", fd, ok, f.Fd())
	}
}

func TestConcurrentWritesNeverInterleave(t *testing.T) {
	buf := &bytes.Buffer{}
	g := NewWriter(buf)

	frame := "[==========]"
	var eg errgroup.Group
	for i := 0; i < 8; i++ {
		eg.Go(func() error {
			for j := 0; j < 100; j++ {
				g.TryWrite(frame)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if len(out)%len(frame) != 0 {
		t.Fatalf("partial frame written: %d bytes", len(out))
	}
	for i := 0; i < len(out); i += len(frame) {
		if out[i:i+len(frame)] != frame {
			t.Fatalf("corrupted frame at %d: %q", i, out[i:i+len(frame)])
		}
	}
}
