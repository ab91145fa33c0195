// package chars renders character immediates in Racket notation.
package chars

import (
	"io"
	"unicode/utf8"

	"golang.org/x/exp/maps"

	"myceliumweb.org/tagrt/tagval"
)

// Writer is used by Print
type Writer interface {
	io.Writer
	io.StringWriter
}

var names = map[rune]string{
	0:   "nul",
	8:   "backspace",
	9:   "tab",
	10:  "newline",
	11:  "vtab",
	12:  "page",
	13:  "return",
	32:  "space",
	127: "rubout",
}

// Names returns the code points that print by name.
func Names() map[rune]string {
	return maps.Clone(names)
}

// Print writes the character v as #\ followed by its name or its UTF-8 encoding.
// Code points that are not valid scalar values are written as U+FFFD.
func Print(w Writer, v tagval.Value) error {
	_, err := w.WriteString(String(v.Char()))
	return err
}

// String returns the printed form of r.
func String(r rune) string {
	if name, ok := names[r]; ok {
		return `#\` + name
	}
	buf := make([]byte, 0, 2+utf8.UTFMax)
	buf = append(buf, '#', '\\')
	return string(utf8.AppendRune(buf, r))
}
