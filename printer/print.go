package printer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"myceliumweb.org/tagrt/chars"
	"myceliumweb.org/tagrt/heap"
	"myceliumweb.org/tagrt/tagval"
)

type Value = tagval.Value

// DefaultMaxDepth is used when Printer.MaxDepth is 0.
const DefaultMaxDepth = 10000

// ErrTooDeep is returned when a value nests deeper than the printer allows.
var ErrTooDeep = errors.New("printer: value nests too deeply")

// Writer is used by the Print functions
type Writer interface {
	io.Writer
	io.StringWriter
	io.ByteWriter
}

// Memory gives the printer typed access to heap records.
// *heap.Heap implements Memory.
type Memory interface {
	Pair(v Value) (heap.Pair, error)
	Unbox(v Value) (Value, error)
	Closure(v Value) (heap.Closure, error)
}

var _ Memory = &heap.Heap{}

type Printer struct {
	// Char renders character immediates.
	// chars.Print is used when it is nil.
	Char func(w Writer, v Value) error
	// MaxDepth bounds nesting through pair cars, boxes, and closure arguments.
	// Walking down a list's cdrs does not count.
	MaxDepth int
}

func (p Printer) PrintString(mem Memory, x Value) string {
	sb := strings.Builder{}
	if err := p.Print(&sb, mem, x); err != nil {
		return err.Error()
	}
	return sb.String()
}

// Print writes the external representation of x.
func (p Printer) Print(w Writer, mem Memory, x Value) error {
	return p.printValue(w, mem, x, 0)
}

// PrintResult prints x the way a program's result is shown.
// A pair is preceded by a single quote, nothing nested inside is.
func (p Printer) PrintResult(w Writer, mem Memory, x Value) error {
	if x.IsPair() {
		if err := w.WriteByte('\''); err != nil {
			return err
		}
	}
	return p.Print(w, mem, x)
}

func (p Printer) printValue(w Writer, mem Memory, x Value, depth int) error {
	if depth > p.maxDepth() {
		return ErrTooDeep
	}
	switch c := tagval.Classify(x); c {
	case tagval.CatPair:
		if err := w.WriteByte('('); err != nil {
			return err
		}
		if err := p.printPair(w, mem, x, depth); err != nil {
			return err
		}
		return w.WriteByte(')')
	case tagval.CatBox:
		y, err := mem.Unbox(x)
		if err != nil {
			return err
		}
		if _, err := w.WriteString("#&"); err != nil {
			return err
		}
		return p.printValue(w, mem, y, depth+1)
	case tagval.CatProc:
		if _, err := w.WriteString("<procedure>\n"); err != nil {
			return err
		}
		return p.printClosure(w, mem, x, depth)

	// Leaves
	case tagval.CatInt:
		_, err := w.WriteString(strconv.FormatInt(x.Int(), 10))
		return err
	case tagval.CatChar:
		if p.Char != nil {
			return p.Char(w, x)
		}
		return chars.Print(w, x)
	case tagval.CatTrue:
		_, err := w.WriteString("#t")
		return err
	case tagval.CatFalse:
		_, err := w.WriteString("#f")
		return err
	case tagval.CatEOF:
		_, err := w.WriteString("#<eof>")
		return err
	case tagval.CatEmpty:
		_, err := w.WriteString("()")
		return err
	case tagval.CatVoid:
		return nil
	default:
		return tagval.ErrMalformed{Word: x}
	}
}

// printPair prints the elements of a list without the surrounding parentheses.
// Following cdrs is a loop, so long lists do not grow the stack.
func (p Printer) printPair(w Writer, mem Memory, x Value, depth int) error {
	for {
		pr, err := mem.Pair(x)
		if err != nil {
			return err
		}
		if err := p.printValue(w, mem, pr.Car, depth+1); err != nil {
			return err
		}
		switch {
		case pr.Cdr == tagval.Empty:
			return nil
		case pr.Cdr.IsPair():
			if err := w.WriteByte(' '); err != nil {
				return err
			}
			x = pr.Cdr
		default:
			if _, err := w.WriteString(" . "); err != nil {
				return err
			}
			return p.printValue(w, mem, pr.Cdr, depth+1)
		}
	}
}

func (p Printer) printClosure(w Writer, mem Memory, x Value, depth int) error {
	clo, err := mem.Closure(x)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Expected args: %d \n", clo.Arity); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "# of Predef args: %d\t{", len(clo.Predef)); err != nil {
		return err
	}
	for _, arg := range clo.Predef {
		if err := p.printValue(w, mem, arg, depth+1); err != nil {
			return err
		}
		if err := w.WriteByte(' '); err != nil {
			return err
		}
	}
	if _, err := w.WriteString("}\n"); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "# of Free Vars: %d", len(clo.Free))
	return err
}

func (p Printer) maxDepth() int {
	if p.MaxDepth > 0 {
		return p.MaxDepth
	}
	return DefaultMaxDepth
}
