// Package wheel provides the cyclic glyph sequences that drive spinners.
package wheel

import "errors"

// ErrEmpty is returned when a wheel is built from an empty glyph sequence.
var ErrEmpty = errors.New("wheel: empty glyph sequence")

// DefaultGlyphs is the built-in sequence used by Default.
const DefaultGlyphs = `/-\|`

var defaultWheel = Wheel{glyphs: []rune(DefaultGlyphs)}

// Wheel is an ordered, non-empty sequence of single display characters.
// Immutable
type Wheel struct {
	glyphs []rune
}

// Default returns the built-in four glyph wheel.
func Default() Wheel {
	return defaultWheel
}

// FromRunes builds a wheel from a caller supplied glyph sequence.
// The slice is copied.
func FromRunes(glyphs []rune) (Wheel, error) {
	if len(glyphs) == 0 {
		return Wheel{}, ErrEmpty
	}
	g := make([]rune, len(glyphs))
	copy(g, glyphs)
	return Wheel{glyphs: g}, nil
}

// FromString builds a wheel with one glyph per rune of s.
func FromString(s string) (Wheel, error) {
	return FromRunes([]rune(s))
}

// MustFromString is like FromString but panics on an empty string.
func MustFromString(s string) Wheel {
	w, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return w
}

// Glyphs returns a copy of the wheel's sequence.
func (w Wheel) Glyphs() []rune {
	return append([]rune(nil), w.glyphs...)
}

// Len returns the number of glyphs. The zero Wheel behaves as Default.
func (w Wheel) Len() int {
	return len(w.resolve())
}

func (w Wheel) resolve() []rune {
	if len(w.glyphs) == 0 {
		return defaultWheel.glyphs
	}
	return w.glyphs
}

// Cursor starts a fresh iteration over the wheel at index 0.
func (w Wheel) Cursor() *Cursor {
	return &Cursor{glyphs: w.resolve()}
}

// Cursor walks a wheel forever. It is not safe for concurrent use.
// Mutable
type Cursor struct {
	glyphs []rune
	idx    int
}

// Next advances the cursor cyclically and returns the glyph it lands on.
// The first call yields the glyph at index 1.
func (c *Cursor) Next() rune {
	c.idx = (c.idx + 1) % len(c.glyphs)
	return c.glyphs[c.idx]
}

// Index reports the position of the most recently yielded glyph.
func (c *Cursor) Index() int {
	return c.idx
}

// Last returns the final glyph of the sequence.
func (c *Cursor) Last() rune {
	return c.glyphs[len(c.glyphs)-1]
}
