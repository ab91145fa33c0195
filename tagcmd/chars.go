package tagcmd

import (
	"fmt"
	"io"

	"go.brendoncarroll.net/star"
	"golang.org/x/exp/slices"

	"myceliumweb.org/tagrt/chars"
)

var charsCmd = star.Command{
	Metadata: star.Metadata{
		Short: "list the characters that print by name",
	},
	F: func(c star.Context) error {
		return writeCharTable(c.StdOut)
	},
}

// writeCharTable writes one line per named character, ordered by code point.
func writeCharTable(w io.Writer) error {
	names := chars.Names()
	rs := make([]rune, 0, len(names))
	for r := range names {
		rs = append(rs, r)
	}
	slices.Sort(rs)
	for _, r := range rs {
		if _, err := fmt.Fprintf(w, "%U\t%s\n", r, chars.String(r)); err != nil {
			return err
		}
	}
	return nil
}
