package driver

import (
	"context"

	"myceliumweb.org/tagrt/heap"
	"myceliumweb.org/tagrt/printer"
)

// Runtime is the execution context handed to an entry routine.
type Runtime struct {
	ctx  context.Context
	heap *heap.Heap
	out  printer.Writer
}

// Context returns the context passed to Run.
func (rt *Runtime) Context() context.Context {
	return rt.ctx
}

// Heap returns the program's heap.
func (rt *Runtime) Heap() *heap.Heap {
	return rt.heap
}

// Out returns the program's output.
// Anything written here comes before the printed result, or before the error token.
func (rt *Runtime) Out() printer.Writer {
	return rt.out
}

// Raise is the error hook.
// It never returns: the entry routine is abandoned and the run ends with StatusError.
func (rt *Runtime) Raise() {
	panic(raiseSignal{})
}

func (rt *Runtime) release() {
	rt.heap = nil
}

type raiseSignal struct{}
