package heap

import (
	"fmt"

	"myceliumweb.org/tagrt/tagval"
)

// Check walks every record reachable from root, following the same fields the printer follows,
// and returns the first problem it finds.
// Free variable slots are not followed because they are never printed.
// Unlike printing, Check terminates on cyclic structures.
func (h *Heap) Check(root Value) error {
	seen := make(map[Value]struct{})
	stack := []Value{root}
	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := tagval.Classify(v)
		if c == tagval.Invalid {
			return tagval.ErrMalformed{Word: v}
		}
		if !v.IsPointer() {
			continue
		}
		if _, exists := seen[v]; exists {
			continue
		}
		seen[v] = struct{}{}
		switch c {
		case tagval.CatPair:
			p, err := h.Pair(v)
			if err != nil {
				return fmt.Errorf("pair %v: %w", v, err)
			}
			stack = append(stack, p.Cdr, p.Car)
		case tagval.CatBox:
			x, err := h.Unbox(v)
			if err != nil {
				return fmt.Errorf("box %v: %w", v, err)
			}
			stack = append(stack, x)
		case tagval.CatProc:
			clo, err := h.Closure(v)
			if err != nil {
				return fmt.Errorf("closure %v: %w", v, err)
			}
			for i := len(clo.Predef) - 1; i >= 0; i-- {
				stack = append(stack, clo.Predef[i])
			}
		}
	}
	return nil
}
