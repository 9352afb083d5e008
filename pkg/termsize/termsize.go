// Package termsize answers "how wide is the terminal behind this stream".
package termsize

import (
	"errors"

	"golang.org/x/term"
)

// ErrNoTerminal is returned by constructors that require a terminal when
// none can be detected.
var ErrNoTerminal = errors.New("termsize: terminal size cannot be detected")

// Size is a terminal's dimensions in cells.
type Size struct {
	Width  int
	Height int
}

// Func queries the current size. ok is false when the size is unknown.
type Func func() (size Size, ok bool)

// Query returns the size of the terminal open on fd.
func Query(fd uintptr) (Size, bool) {
	if !term.IsTerminal(int(fd)) {
		return Size{}, false
	}
	w, h, err := term.GetSize(int(fd))
	if err != nil || w <= 0 {
		return Size{}, false
	}
	return Size{Width: w, Height: h}, true
}

// ForFd returns a Func that re-queries fd on every call.
func ForFd(fd uintptr) Func {
	return func() (Size, bool) {
		return Query(fd)
	}
}

// Fixed returns a Func that always reports the given size.
func Fixed(width, height int) Func {
	return func() (Size, bool) {
		return Size{Width: width, Height: height}, true
	}
}

// Unknown is a Func for streams that are never terminals.
func Unknown() (Size, bool) {
	return Size{}, false
}

// Width calls f and returns only the width. A nil f reports unknown.
func (f Func) Width() (int, bool) {
	if f == nil {
		return 0, false
	}
	s, ok := f()
	return s.Width, ok
}
