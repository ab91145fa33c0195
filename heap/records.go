package heap

import (
	"myceliumweb.org/tagrt/spec"
	"myceliumweb.org/tagrt/tagval"
)

// Pair is a cons cell.
type Pair struct {
	Car Value
	Cdr Value
}

// Closure is a procedure record.
type Closure struct {
	// Code is the code label of the procedure. It is opaque to the runtime.
	Code Value
	// Arity is the number of arguments the procedure expects.
	Arity int64
	// Predef holds the arguments that have already been supplied.
	Predef []Value
	// Free holds the captured free variables.
	Free []Value
}

// Pair reads the pair v points to.
func (h *Heap) Pair(v Value) (Pair, error) {
	if !v.IsPair() {
		return Pair{}, ErrWrongCategory{Want: tagval.CatPair, Have: v}
	}
	addr := v.Addr()
	cdr, err := h.Load(addr + spec.PairCdrOffset)
	if err != nil {
		return Pair{}, err
	}
	car, err := h.Load(addr + spec.PairCarOffset)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Car: car, Cdr: cdr}, nil
}

// Unbox reads the value stored in the box v points to.
func (h *Heap) Unbox(v Value) (Value, error) {
	if !v.IsBox() {
		return 0, ErrWrongCategory{Want: tagval.CatBox, Have: v}
	}
	return h.Load(v.Addr())
}

// Closure reads the closure v points to.
// Predef and Free have exactly the lengths recorded in the header.
func (h *Heap) Closure(v Value) (Closure, error) {
	if !v.IsProc() {
		return Closure{}, ErrWrongCategory{Want: tagval.CatProc, Have: v}
	}
	addr := v.Addr()
	var hdr [4]Value
	for i, off := range []int{
		spec.ClosureCodeOffset,
		spec.ClosureArityOffset,
		spec.ClosurePredefOffset,
		spec.ClosureFreeVarsOffset,
	} {
		w, err := h.Load(addr + uint64(off))
		if err != nil {
			return Closure{}, err
		}
		hdr[i] = w
	}
	numPredef, numFree := int64(hdr[2]), int64(hdr[3])
	if numPredef < 0 || numFree < 0 ||
		numPredef > int64(h.Len()) || numFree > int64(h.Len()) ||
		numPredef+numFree > int64(h.Len()) {
		return Closure{}, ErrBadClosure{Addr: addr, Predef: numPredef, Free: numFree}
	}
	free := make([]Value, numFree)
	for i := range free {
		w, err := h.Load(addr + uint64(spec.FreeSlotOffset(i)))
		if err != nil {
			return Closure{}, err
		}
		free[i] = w
	}
	predef := make([]Value, numPredef)
	for i := range predef {
		w, err := h.Load(addr + uint64(spec.PredefSlotOffset(int(numFree), i)))
		if err != nil {
			return Closure{}, err
		}
		predef[i] = w
	}
	return Closure{
		Code:   hdr[0],
		Arity:  int64(hdr[1]),
		Predef: predef,
		Free:   free,
	}, nil
}

// Cons allocates a pair and returns a pointer to it.
func (h *Heap) Cons(car, cdr Value) (Value, error) {
	addr, err := h.Alloc(spec.PairBytes)
	if err != nil {
		return 0, err
	}
	h.mustStore(addr+spec.PairCdrOffset, cdr)
	h.mustStore(addr+spec.PairCarOffset, car)
	return tagval.PointerTo(spec.PairTag, addr), nil
}

// List allocates a proper list of xs, terminated by tagval.Empty.
func (h *Heap) List(xs ...Value) (Value, error) {
	ret := tagval.Empty
	for i := len(xs) - 1; i >= 0; i-- {
		var err error
		if ret, err = h.Cons(xs[i], ret); err != nil {
			return 0, err
		}
	}
	return ret, nil
}

// NewBox allocates a box holding x.
func (h *Heap) NewBox(x Value) (Value, error) {
	addr, err := h.Alloc(spec.BoxBytes)
	if err != nil {
		return 0, err
	}
	h.mustStore(addr, x)
	return tagval.PointerTo(spec.BoxTag, addr), nil
}

// NewClosure allocates a closure record laid out as the code generator would.
func (h *Heap) NewClosure(c Closure) (Value, error) {
	addr, err := h.Alloc(spec.ClosureBytes(len(c.Predef), len(c.Free)))
	if err != nil {
		return 0, err
	}
	h.mustStore(addr+spec.ClosureCodeOffset, c.Code)
	h.mustStore(addr+spec.ClosureArityOffset, Value(c.Arity))
	h.mustStore(addr+spec.ClosurePredefOffset, Value(len(c.Predef)))
	h.mustStore(addr+spec.ClosureFreeVarsOffset, Value(len(c.Free)))
	for i, x := range c.Free {
		h.mustStore(addr+uint64(spec.FreeSlotOffset(i)), x)
	}
	for i, x := range c.Predef {
		h.mustStore(addr+uint64(spec.PredefSlotOffset(len(c.Free), i)), x)
	}
	return tagval.PointerTo(spec.ProcTag, addr), nil
}

// mustStore is only used on addresses returned by Alloc
func (h *Heap) mustStore(addr uint64, v Value) {
	if err := h.Store(addr, v); err != nil {
		panic(err)
	}
}
