package wheel

import (
	"errors"
	"testing"
)

func TestFromRunesEmpty(t *testing.T) {
	if _, err := FromRunes(nil); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
	if _, err := FromString(""); !errors.Is(err, ErrEmpty) {
		t.Fatalf("expected ErrEmpty, got %v", err)
	}
}

func TestDefaultCursorSkipsFirstGlyph(t *testing.T) {
	c := Default().Cursor()
	want := []rune{'-', '\\', '|', '/', '-'}
	for i, w := range want {
		if got := c.Next(); got != w {
			t.Errorf("step %d: got %q, want %q", i, got, w)
		}
	}
}

func TestCursorRepeatsAfterLen(t *testing.T) {
	w := MustFromString("abc")
	c := w.Cursor()
	n := w.Len()

	first := make([]rune, n)
	for i := range first {
		first[i] = c.Next()
	}
	for round := 0; round < 10; round++ {
		for i := 0; i < n; i++ {
			if got := c.Next(); got != first[i] {
				t.Fatalf("round %d step %d: got %q, want %q", round, i, got, first[i])
			}
		}
	}
}

func TestSingleGlyphWheel(t *testing.T) {
	c := MustFromString("*").Cursor()
	for i := 0; i < 10; i++ {
		if got := c.Next(); got != '*' {
			t.Fatalf("got %q", got)
		}
	}
}

func TestFromRunesCopies(t *testing.T) {
	src := []rune{'a', 'b'}
	w, err := FromRunes(src)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = 'z'
	if got := w.Glyphs()[0]; got != 'a' {
		t.Errorf("wheel aliased caller slice: got %q", got)
	}
}

func TestZeroWheelIsDefault(t *testing.T) {
	var w Wheel
	if w.Len() != 4 {
		t.Fatalf("zero wheel len = %d", w.Len())
	}
	if got := w.Cursor().Next(); got != '-' {
		t.Errorf("got %q, want '-'", got)
	}
}

func TestCursorLast(t *testing.T) {
	if got := Default().Cursor().Last(); got != '|' {
		t.Errorf("got %q, want '|'", got)
	}
}
