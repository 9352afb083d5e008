// Package layout computes the fixed-width text of a progress frame.
//
// Every function here is pure. Lengths are counted in characters (runes),
// not bytes and not terminal cells.
package layout

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

const (
	// Filled is the glyph used for completed bar positions.
	Filled = '='
	// Empty is the glyph used for remaining bar positions.
	Empty = ' '
	// Ellipsis marks a truncated title.
	Ellipsis = "..."
)

// FilledCount is the number of filled positions in a bar of the given width.
// Fractions are truncated, never rounded.
func FilledCount(width int, progress float64) int {
	n := int(progress * float64(width))
	if n < 0 {
		return 0
	}
	if n > width {
		return width
	}
	return n
}

// FillBar renders exactly width glyphs, the first FilledCount of them filled.
func FillBar(width int, progress float64) string {
	if width <= 0 {
		return ""
	}
	n := FilledCount(width, progress)
	var sb strings.Builder
	sb.Grow(width)
	for i := 0; i < width; i++ {
		if i < n {
			sb.WriteRune(Filled)
		} else {
			sb.WriteRune(Empty)
		}
	}
	return sb.String()
}

// PercentageLine formats "[<fill>]: <pct>%" with two decimals.
func PercentageLine(fill string, progress float64) string {
	return fmt.Sprintf("[%s]: %.2f%%", fill, progress*100)
}

// Ellipsize bounds text to max characters. Text that is too long keeps its
// first max-3 characters followed by "...", or is cut hard when max is 3 or
// less.
func Ellipsize(text string, max int) string {
	if max < 0 {
		max = 0
	}
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	if max > len(Ellipsis) {
		return string(runes[:max-len(Ellipsis)]) + Ellipsis
	}
	return string(runes[:max])
}

// PadExact returns text padded with trailing spaces or cut so that it is
// exactly n characters long.
func PadExact(text string, n int) string {
	if n < 0 {
		n = 0
	}
	count := utf8.RuneCountInString(text)
	switch {
	case count == n:
		return text
	case count < n:
		return text + strings.Repeat(" ", n-count)
	default:
		return string([]rune(text)[:n])
	}
}

// Line composes a complete progress frame of exactly maxWidth characters:
// the percentage line, then the title behind one space, ellipsized to
// whatever room is left.
func Line(fill string, progress float64, title string, maxWidth int) string {
	head := PercentageLine(fill, progress)
	budget := maxWidth - utf8.RuneCountInString(head)
	tail := Ellipsize(" "+title, budget)
	return PadExact(head+tail, maxWidth)
}

// Len counts characters the same way the rest of this package does.
func Len(s string) int {
	return utf8.RuneCountInString(s)
}

// CellWidth reports how many terminal cells s occupies. Wide glyphs such as
// CJK or emoji count twice, so CellWidth can exceed Len.
func CellWidth(s string) int {
	return runewidth.StringWidth(s)
}
