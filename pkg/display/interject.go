package display

import (
	"fmt"
	"io"
)

// Interject is the shared Println behaviour: blank d, write line and a
// newline to w, then redraw d.
func Interject(d Display, w io.Writer, line string) {
	d.Blank()
	fmt.Fprintln(w, line)
	d.Refresh()
}
