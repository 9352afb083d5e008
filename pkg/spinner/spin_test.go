package spinner

import (
	"bytes"
	"testing"
	"time"

	"termbar/pkg/display"
	"termbar/pkg/wheel"
)

func TestDefaultFirstBump(t *testing.T) {
	buf := &bytes.Buffer{}
	s := Default(WithOutput(buf))
	if s.Current() != '|' {
		t.Fatalf("initial glyph %q", s.Current())
	}
	if buf.Len() != 0 {
		t.Errorf("Default should not draw, wrote %q", buf.String())
	}

	s.Bump()
	if s.Current() != '-' {
		t.Errorf("after one bump got %q, want '-'", s.Current())
	}
	if buf.String() != "\r -" {
		t.Errorf("got %q", buf.String())
	}
}

func TestNewPreAdvances(t *testing.T) {
	s := New(wheel.Default(), WithOutput(&bytes.Buffer{}))
	if s.Current() != '-' {
		t.Errorf("got %q, want '-'", s.Current())
	}
	s.Bump()
	if s.Current() != '\\' {
		t.Errorf("got %q, want '\\\\'", s.Current())
	}
}

func TestWithTitleRendersImmediately(t *testing.T) {
	buf := &bytes.Buffer{}
	WithTitle("loading", wheel.MustFromString("ab"), WithOutput(buf))
	if buf.String() != "\rloading b" {
		t.Errorf("got %q", buf.String())
	}
}

func TestBumpCycles(t *testing.T) {
	buf := &bytes.Buffer{}
	s := WithTitle("t", wheel.MustFromString("xyz"), WithOutput(buf))
	var seen []rune
	for i := 0; i < 30; i++ {
		s.Bump()
		seen = append(seen, s.Current())
	}
	for i := 3; i < len(seen); i++ {
		if seen[i] != seen[i-3] {
			t.Fatalf("sequence does not repeat with period 3: %q", string(seen))
		}
	}
	if string(seen[:3]) != "zxy" {
		t.Errorf("got %q", string(seen[:3]))
	}
}

func TestSetTitle(t *testing.T) {
	buf := &bytes.Buffer{}
	s := WithTitle("old", wheel.Default(), WithOutput(buf))
	buf.Reset()

	s.SetTitle("new title")
	want := "\r" + "   " + "  \r" + "\rnew title -"
	if buf.String() != want {
		t.Errorf("got  %q\nwant %q", buf.String(), want)
	}
	if s.Title() != "new title" || s.Current() != '-' {
		t.Errorf("state %q %q", s.Title(), s.Current())
	}
}

func TestPrintln(t *testing.T) {
	buf := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	s := WithTitle("work", wheel.Default(), WithOutput(buf), WithErrOutput(errBuf))
	buf.Reset()

	s.Println("line one")
	want := "\r      \r" + "line one\n" + "\rwork -"
	if buf.String() != want {
		t.Errorf("got  %q\nwant %q", buf.String(), want)
	}

	buf.Reset()
	s.Eprintln("warn")
	if errBuf.String() != "warn\n" {
		t.Errorf("stderr %q", errBuf.String())
	}
	if buf.String() != "\r      \r\rwork -" {
		t.Errorf("stdout %q", buf.String())
	}
}

func TestCompleteWith(t *testing.T) {
	buf := &bytes.Buffer{}
	s := WithTitle("job", wheel.Default(), WithOutput(buf))
	buf.Reset()

	s.CompleteWith("OK")
	if buf.String() != "\bOK\n" {
		t.Errorf("got %q", buf.String())
	}

	buf.Reset()
	s.Bump()
	s.SetTitle("again")
	s.Println("late")
	s.Complete()
	if buf.Len() != 0 {
		t.Errorf("completed spinner wrote %q", buf.String())
	}
}

func TestComplete(t *testing.T) {
	buf := &bytes.Buffer{}
	s := Default(WithOutput(buf))
	s.Complete()
	if buf.String() != "\b \n" {
		t.Errorf("got %q", buf.String())
	}
}

func TestRefreshDroppedUnderContention(t *testing.T) {
	buf := &bytes.Buffer{}
	s := WithTitle("busy", wheel.Default(), WithOutput(buf))
	buf.Reset()

	h, ok := s.out.TryExclusive()
	if !ok {
		t.Fatal("guard should be idle")
	}
	done := make(chan struct{})
	go func() {
		s.Refresh()
		s.Blank()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Refresh blocked on a held guard")
	}
	h.Release()

	if buf.Len() != 0 {
		t.Errorf("expected nothing written, got %q", buf.String())
	}
}

func TestBumpWaitsForGuard(t *testing.T) {
	buf := &bytes.Buffer{}
	s := WithTitle("t", wheel.Default(), WithOutput(buf))
	buf.Reset()

	h, _ := s.out.TryExclusive()
	done := make(chan struct{})
	go func() {
		s.Bump()
		close(done)
	}()
	select {
	case <-done:
		t.Fatal("Bump should wait for exclusive access")
	case <-time.After(50 * time.Millisecond):
	}
	h.Release()
	<-done
	if buf.String() != "\rt \\" {
		t.Errorf("got %q", buf.String())
	}
}

func TestFactoryIgnoresWidth(t *testing.T) {
	buf := &bytes.Buffer{}
	ind, err := NewFactory(wheel.Default(), WithOutput(buf))(999, "spin")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := ind.(display.Spinner); !ok {
		t.Errorf("%T is not a Spinner", ind)
	}
	ind.UpdateDimensions(5)
	if buf.String() != "\rspin -" {
		t.Errorf("got %q", buf.String())
	}
}
