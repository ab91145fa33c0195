// package driver runs a compiled program's entry routine and prints its result.
package driver

import (
	"bufio"
	"context"
	"io"

	"go.brendoncarroll.net/stdctx/logctx"

	"myceliumweb.org/tagrt/heap"
	"myceliumweb.org/tagrt/printer"
	"myceliumweb.org/tagrt/spec"
	"myceliumweb.org/tagrt/tagval"
)

// ErrorToken is written when a program raises an error.
const ErrorToken = "err\n"

const (
	StatusOK    = 0
	StatusError = 1
)

// Entry is a compiled program's entry routine.
// It builds its result in rt.Heap() and returns it.
// A non-nil error is a failure of the host, not of the program; programs signal errors with rt.Raise.
type Entry func(rt *Runtime) (tagval.Value, error)

type Config struct {
	// HeapWords is the size of the heap. spec.DefaultHeapWords is used when it is 0.
	HeapWords int
	Printer   printer.Printer
}

// Outcome is how a run ended.
type Outcome struct {
	Result tagval.Value
	// Raised is true if the program called Runtime.Raise.
	Raised bool
	// Status is the exit status for the process.
	// It is StatusError whenever Run also returns an error.
	Status int
}

// Run allocates a heap, calls entry, and writes the result to out.
// The heap is dropped when Run returns.
func Run(ctx context.Context, cfg Config, out io.Writer, entry Entry) (Outcome, error) {
	n := cfg.HeapWords
	if n <= 0 {
		n = spec.DefaultHeapWords
	}
	bw := bufio.NewWriter(out)
	rt := &Runtime{ctx: ctx, heap: heap.New(n), out: bw}
	defer rt.release()
	logctx.Infof(ctx, "allocated heap words=%d", n)

	res, raised, err := call(rt, entry)
	if err != nil {
		return Outcome{Status: StatusError}, flushAfter(bw, err)
	}
	if raised {
		logctx.Warnf(ctx, "program raised an error")
		if _, err := bw.WriteString(ErrorToken); err != nil {
			return Outcome{Raised: true, Status: StatusError}, err
		}
		return Outcome{Raised: true, Status: StatusError}, bw.Flush()
	}
	logctx.Infof(ctx, "entry returned category=%v used=%d", tagval.Classify(res), rt.heap.Used())
	if err := cfg.Printer.PrintResult(bw, rt.heap, res); err != nil {
		return Outcome{Result: res, Status: StatusError}, flushAfter(bw, err)
	}
	if res != tagval.Void {
		if err := bw.WriteByte('\n'); err != nil {
			return Outcome{Result: res, Status: StatusError}, err
		}
	}
	if err := bw.Flush(); err != nil {
		return Outcome{Result: res, Status: StatusError}, err
	}
	return Outcome{Result: res, Status: StatusOK}, nil
}

// call runs entry, converting a raise into raised = true.
// Any other panic is not ours and keeps unwinding.
func call(rt *Runtime, entry Entry) (res tagval.Value, raised bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(raiseSignal); !ok {
				panic(r)
			}
			raised = true
		}
	}()
	res, err = entry(rt)
	return res, false, err
}

// flushAfter keeps what was already written, and returns err.
func flushAfter(bw *bufio.Writer, err error) error {
	bw.Flush()
	return err
}
