// package heap implements the flat word heap that compiled programs lay their records out in.
package heap

import (
	"fmt"

	"myceliumweb.org/tagrt/spec"
	"myceliumweb.org/tagrt/tagval"
)

type Value = tagval.Value

// Heap is a contiguous buffer of tagged words.
//
// Addresses are byte addresses.
// Word i lives at Base + i*spec.WordBytes.
type Heap struct {
	// Base is the address of the first word.
	// Images dumped from a native run keep their recorded base so their pointers resolve unchanged.
	Base uint64

	words []Value
	// next is the index of the next free word for Alloc.
	next int
}

// New allocates a zeroed heap of n words based at address 0.
func New(n int) *Heap {
	return &Heap{words: make([]Value, n)}
}

// FromWords creates a heap which uses words as its backing buffer.
// The words are treated as already allocated.
func FromWords(base uint64, words []Value) *Heap {
	return &Heap{Base: base, words: words, next: len(words)}
}

// Len returns the size of the heap in words.
func (h *Heap) Len() int {
	return len(h.words)
}

// Used returns the number of words handed out by Alloc.
func (h *Heap) Used() int {
	return h.next
}

// Words returns the backing buffer.
func (h *Heap) Words() []Value {
	return h.words
}

// Reset zeros the heap and forgets every allocation.
func (h *Heap) Reset() {
	clear(h.words)
	h.next = 0
}

// Load reads the word at addr.
func (h *Heap) Load(addr uint64) (Value, error) {
	i, err := h.index(addr)
	if err != nil {
		return 0, err
	}
	return h.words[i], nil
}

// Store writes the word at addr.
func (h *Heap) Store(addr uint64, v Value) error {
	i, err := h.index(addr)
	if err != nil {
		return err
	}
	h.words[i] = v
	return nil
}

// Alloc reserves nbytes, rounded up to a whole number of words, and returns the address of the first.
func (h *Heap) Alloc(nbytes int) (uint64, error) {
	if nbytes < 0 {
		return 0, fmt.Errorf("heap: cannot allocate %d bytes", nbytes)
	}
	n := (nbytes + spec.WordBytes - 1) / spec.WordBytes
	if n > len(h.words)-h.next {
		return 0, ErrHeapFull
	}
	addr := h.addrOf(h.next)
	h.next += n
	return addr, nil
}

func (h *Heap) addrOf(i int) uint64 {
	return h.Base + uint64(i)*spec.WordBytes
}

func (h *Heap) index(addr uint64) (int, error) {
	if addr < h.Base {
		return 0, ErrOutOfBounds{Addr: addr, Base: h.Base, Len: len(h.words)}
	}
	off := addr - h.Base
	if off%spec.WordBytes != 0 || off/spec.WordBytes >= uint64(len(h.words)) {
		return 0, ErrOutOfBounds{Addr: addr, Base: h.Base, Len: len(h.words)}
	}
	return int(off / spec.WordBytes), nil
}
