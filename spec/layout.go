package spec

// Record layouts, as byte offsets from a tag-stripped pointer.
const (
	// PairCdrOffset is the offset of the rest of a pair.
	PairCdrOffset = 0 * WordBytes
	// PairCarOffset is the offset of the first element of a pair.
	PairCarOffset = 1 * WordBytes
	// PairBytes is the size of a pair record.
	PairBytes = 2 * WordBytes

	// BoxBytes is the size of a box record.
	BoxBytes = 1 * WordBytes
)

// Closure records start with a code label and three counts.
// The slot region follows the header: free variables first, then predefined arguments.
const (
	ClosureCodeOffset     = 0 * WordBytes
	ClosureArityOffset    = 1 * WordBytes
	ClosurePredefOffset   = 2 * WordBytes
	ClosureFreeVarsOffset = 3 * WordBytes

	// ClosureHeaderBytes is the size of the header in bytes.
	ClosureHeaderBytes = 4 * WordBytes
)

// ClosureBytes returns the size of a closure record with the given slot counts.
func ClosureBytes(numPredef, numFree int) int {
	return ClosureHeaderBytes + WordBytes*(numFree+numPredef)
}

// PredefSlotOffset returns the offset of predefined argument i in a closure with numFree free variables.
func PredefSlotOffset(numFree, i int) int {
	return ClosureHeaderBytes + WordBytes*numFree + WordBytes*i
}

// FreeSlotOffset returns the offset of free variable i.
func FreeSlotOffset(i int) int {
	return ClosureHeaderBytes + WordBytes*i
}

// DefaultHeapWords is the heap size used when nothing else is configured.
const DefaultHeapWords = 10000
