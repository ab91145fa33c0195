// package spec holds the binary contract shared between the code generator and the runtime.
//
// Every constant here must match the code generator bit for bit.
// A mismatch is not detected at runtime, values simply print wrong.
package spec

const (
	// WordBits is the size of a tagged word in bits.
	WordBits = 64
	// WordBytes is the size of a tagged word in bytes.
	WordBytes = WordBits / 8
)

// Pointer tags live in the low ImmShift bits.
// Heap addresses are WordBytes aligned so those bits are always zero in a raw address.
const (
	ImmShift    = 3
	PtrTypeMask = (1 << ImmShift) - 1

	BoxTag  = 1
	PairTag = 2
	ProcTag = 4
)

const (
	// IntShift is how far an integer payload is shifted left.
	IntShift    = 1 + ImmShift
	IntTypeMask = (1 << IntShift) - 1
	IntTag      = 0 << (IntShift - 1)
	NonIntTag   = 1 << (IntShift - 1)

	// CharShift is how far a code point is shifted left.
	CharShift    = IntShift + 1
	CharTypeMask = (1 << CharShift) - 1
	CharTag      = (0 << (CharShift - 1)) | NonIntTag
	NonCharTag   = (1 << (CharShift - 1)) | NonIntTag
)

// Singletons are compared by exact value.
const (
	ValTrue  = (0 << CharShift) | NonCharTag
	ValFalse = (1 << CharShift) | NonCharTag
	ValEOF   = (2 << CharShift) | NonCharTag
	ValVoid  = (3 << CharShift) | NonCharTag
	ValEmpty = (4 << CharShift) | NonCharTag
)

const (
	// IntBits is the number of payload bits in an immediate integer.
	IntBits = WordBits - IntShift
	MaxInt  = (1 << (IntBits - 1)) - 1
	MinInt  = -(1 << (IntBits - 1))

	// MaxCodePoint is the largest code point a character immediate can carry.
	MaxCodePoint = 0x10FFFF
)
