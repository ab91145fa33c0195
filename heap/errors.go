package heap

import (
	"errors"
	"fmt"

	"myceliumweb.org/tagrt/tagval"
)

var ErrHeapFull = errors.New("heap: out of space")

// ErrOutOfBounds is returned when an address does not name a word in the heap.
type ErrOutOfBounds struct {
	Addr uint64
	Base uint64
	Len  int
}

func (e ErrOutOfBounds) Error() string {
	return fmt.Sprintf("heap: address %#x is outside the heap [%#x, +%d words)", e.Addr, e.Base, e.Len)
}

// ErrWrongCategory is returned when a record accessor is given a value of another category.
type ErrWrongCategory struct {
	Want tagval.Category
	Have tagval.Value
}

func (e ErrWrongCategory) Error() string {
	return fmt.Sprintf("heap: want %v HAVE: %v", e.Want, e.Have)
}

// ErrBadClosure is returned when a closure header has counts that cannot describe a record in the heap.
type ErrBadClosure struct {
	Addr   uint64
	Predef int64
	Free   int64
}

func (e ErrBadClosure) Error() string {
	return fmt.Sprintf("heap: closure at %#x has invalid header predef=%d free=%d", e.Addr, e.Predef, e.Free)
}
