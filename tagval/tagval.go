// package tagval classifies 64-bit tagged words.
package tagval

import (
	"fmt"
	"unicode/utf8"

	"myceliumweb.org/tagrt/spec"
)

// Value is a tagged word.
// It is either an immediate (integer or character), a pointer to a heap record, or a singleton.
type Value uint64

const (
	True  = Value(spec.ValTrue)
	False = Value(spec.ValFalse)
	EOF   = Value(spec.ValEOF)
	Void  = Value(spec.ValVoid)
	Empty = Value(spec.ValEmpty)
)

// Classify returns the category of v.
// Pointer tags are checked first, then integers, then characters, then the singletons.
// Words matching none of those are Invalid.
func Classify(v Value) Category {
	switch uint64(v) & spec.PtrTypeMask {
	case spec.PairTag:
		return CatPair
	case spec.BoxTag:
		return CatBox
	case spec.ProcTag:
		return CatProc
	}
	if uint64(v)&spec.IntTypeMask == spec.IntTag {
		return CatInt
	}
	if uint64(v)&spec.CharTypeMask == spec.CharTag {
		return CatChar
	}
	switch v {
	case True:
		return CatTrue
	case False:
		return CatFalse
	case EOF:
		return CatEOF
	case Empty:
		return CatEmpty
	case Void:
		return CatVoid
	}
	return Invalid
}

// Category is equivalent to Classify(v)
func (v Value) Category() Category {
	return Classify(v)
}

func (v Value) IsPair() bool {
	return uint64(v)&spec.PtrTypeMask == spec.PairTag
}

func (v Value) IsBox() bool {
	return uint64(v)&spec.PtrTypeMask == spec.BoxTag
}

func (v Value) IsProc() bool {
	return uint64(v)&spec.PtrTypeMask == spec.ProcTag
}

// IsPointer returns true if v refers to a heap record.
func (v Value) IsPointer() bool {
	return v.IsPair() || v.IsBox() || v.IsProc()
}

// Tag returns the pointer tag of v.
// Only meaningful when v.IsPointer().
func (v Value) Tag() uint64 {
	return uint64(v) & spec.PtrTypeMask
}

// Addr returns the address v points to, with the tag cleared.
// Panics if v is not a pointer.
func (v Value) Addr() uint64 {
	if !v.IsPointer() {
		panic(fmt.Sprintf("tagval.Addr: %v is not a pointer", v))
	}
	// the tag bits are known to be zero in the raw address, so xor clears them.
	return uint64(v) ^ v.Tag()
}

// Int returns the integer payload of v.
// Panics if v is not an integer.
func (v Value) Int() int64 {
	if Classify(v) != CatInt {
		panic(fmt.Sprintf("tagval.Int: %v is not an integer", v))
	}
	return int64(v) >> spec.IntShift
}

// Char returns the code point carried by v.
// Payloads beyond spec.MaxCodePoint come back as utf8.RuneError.
// Panics if v is not a character.
func (v Value) Char() rune {
	if Classify(v) != CatChar {
		panic(fmt.Sprintf("tagval.Char: %v is not a character", v))
	}
	cp := uint64(v) >> spec.CharShift
	if cp > spec.MaxCodePoint {
		return utf8.RuneError
	}
	return rune(cp)
}

// CodePoint returns the untruncated payload of a character immediate.
// Panics if v is not a character.
func (v Value) CodePoint() uint64 {
	if Classify(v) != CatChar {
		panic(fmt.Sprintf("tagval.CodePoint: %v is not a character", v))
	}
	return uint64(v) >> spec.CharShift
}

func (v Value) String() string {
	c := Classify(v)
	switch c {
	case CatInt:
		return fmt.Sprintf("Int{%d}", v.Int())
	case CatChar:
		return fmt.Sprintf("Char{%U}", v.CodePoint())
	case CatPair, CatBox, CatProc:
		return fmt.Sprintf("%v{%#x}", c, uint64(v)^v.Tag())
	case Invalid:
		return fmt.Sprintf("Invalid{%#x}", uint64(v))
	default:
		return c.String()
	}
}

// FromInt creates an integer immediate.
// Panics if n does not fit in spec.IntBits.
func FromInt(n int64) Value {
	v, ok := TryFromInt(n)
	if !ok {
		panic(fmt.Sprintf("tagval.FromInt: %d out of range", n))
	}
	return v
}

// TryFromInt creates an integer immediate, returning false if n is out of range.
func TryFromInt(n int64) (Value, bool) {
	if n > spec.MaxInt || n < spec.MinInt {
		return 0, false
	}
	return Value(uint64(n)<<spec.IntShift | spec.IntTag), true
}

// FromChar creates a character immediate.
// Panics if r is negative or beyond spec.MaxCodePoint.
func FromChar(r rune) Value {
	if r < 0 || r > spec.MaxCodePoint {
		panic(fmt.Sprintf("tagval.FromChar: %d out of range", r))
	}
	return Value(uint64(r)<<spec.CharShift | spec.CharTag)
}

// PointerTo tags addr with tag.
// Panics if tag is not one of the pointer tags, or addr is not word aligned.
func PointerTo(tag uint64, addr uint64) Value {
	switch tag {
	case spec.PairTag, spec.BoxTag, spec.ProcTag:
	default:
		panic(fmt.Sprintf("tagval.PointerTo: %d is not a pointer tag", tag))
	}
	if addr&spec.PtrTypeMask != 0 {
		panic(fmt.Sprintf("tagval.PointerTo: unaligned address %#x", addr))
	}
	return Value(addr | tag)
}
