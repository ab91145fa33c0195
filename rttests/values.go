// package rttests has heaps and values worth testing against, along with how they should print.
package rttests

import (
	"myceliumweb.org/tagrt/heap"
	"myceliumweb.org/tagrt/spec"
	"myceliumweb.org/tagrt/tagval"
)

type Value = tagval.Value

// Case is a value, the heap records it needs, and its expected output.
type Case struct {
	Name string
	// Build lays out the records for the value in h and returns it.
	Build func(h *heap.Heap) Value
	// Print is what Printer.Print writes.
	Print string
	// Stdout is what the driver writes when the value is the program's result.
	Stdout string
}

// Cases returns a list of values worth testing against.
func Cases() []Case {
	return []Case{
		// integers
		imm("Zero", tagval.FromInt(0), "0"),
		imm("Positive", tagval.FromInt(42), "42"),
		imm("Negative", tagval.FromInt(-17), "-17"),
		imm("MaxInt", tagval.FromInt(spec.MaxInt), "576460752303423487"),
		imm("MinInt", tagval.FromInt(spec.MinInt), "-576460752303423488"),

		// characters
		imm("Char", tagval.FromChar('a'), `#\a`),
		imm("CharSpace", tagval.FromChar(' '), `#\space`),
		imm("CharLambda", tagval.FromChar('λ'), `#\λ`),

		// singletons
		imm("True", tagval.True, "#t"),
		imm("False", tagval.False, "#f"),
		imm("EOF", tagval.EOF, "#<eof>"),
		imm("Empty", tagval.Empty, "()"),
		{
			Name:   "Void",
			Build:  func(h *heap.Heap) Value { return tagval.Void },
			Print:  "",
			Stdout: "",
		},

		// pairs
		pair("List12", func(h *heap.Heap) Value {
			return list(h, tagval.FromInt(1), tagval.FromInt(2))
		}, "(1 2)"),
		pair("Dotted", func(h *heap.Heap) Value {
			return cons(h, tagval.FromInt(1), tagval.FromInt(2))
		}, "(1 . 2)"),
		pair("ImproperTail", func(h *heap.Heap) Value {
			return cons(h, tagval.FromInt(1), cons(h, tagval.FromInt(2), tagval.FromInt(3)))
		}, "(1 2 . 3)"),
		pair("Nested", func(h *heap.Heap) Value {
			return list(h, list(h, tagval.FromInt(1), tagval.FromInt(2)), tagval.FromInt(3))
		}, "((1 2) 3)"),
		pair("ListOfEmpty", func(h *heap.Heap) Value {
			return list(h, tagval.Empty)
		}, "(())"),
		pair("CdrBox", func(h *heap.Heap) Value {
			return cons(h, tagval.FromInt(1), box(h, tagval.FromInt(2)))
		}, "(1 . #&2)"),
		pair("CdrVoid", func(h *heap.Heap) Value {
			return cons(h, tagval.FromInt(1), tagval.Void)
		}, "(1 . )"),
		pair("Mixed", func(h *heap.Heap) Value {
			return list(h, tagval.True, tagval.False, tagval.FromChar('z'), tagval.EOF)
		}, `(#t #f #\z #<eof>)`),

		// boxes
		nonPair("Box5", func(h *heap.Heap) Value {
			return box(h, tagval.FromInt(5))
		}, "#&5"),
		nonPair("BoxOfList", func(h *heap.Heap) Value {
			return box(h, list(h, tagval.FromInt(1), tagval.FromInt(2)))
		}, "#&(1 2)"),
		nonPair("BoxOfBox", func(h *heap.Heap) Value {
			return box(h, box(h, tagval.Empty))
		}, "#&#&()"),
		nonPair("BoxOfVoid", func(h *heap.Heap) Value {
			return box(h, tagval.Void)
		}, "#&"),

		// closures
		nonPair("ClosureEmpty", func(h *heap.Heap) Value {
			return closure(h, heap.Closure{})
		}, "<procedure>\nExpected args: 0 \n# of Predef args: 0\t{}\n# of Free Vars: 0"),
		nonPair("ClosurePartial", func(h *heap.Heap) Value {
			return closure(h, heap.Closure{
				Code:   Value(0x4000),
				Arity:  2,
				Predef: []Value{tagval.FromInt(1), list(h, tagval.FromInt(1), tagval.FromInt(2))},
				Free:   []Value{tagval.True, tagval.FromInt(99)},
			})
		}, "<procedure>\nExpected args: 2 \n# of Predef args: 2\t{1 (1 2) }\n# of Free Vars: 2"),
		pair("ListOfClosure", func(h *heap.Heap) Value {
			return list(h, closure(h, heap.Closure{Arity: 1, Free: []Value{tagval.False}}))
		}, "(<procedure>\nExpected args: 1 \n# of Predef args: 0\t{}\n# of Free Vars: 1)"),
	}
}

func imm(name string, x Value, out string) Case {
	return nonPair(name, func(*heap.Heap) Value { return x }, out)
}

func nonPair(name string, build func(h *heap.Heap) Value, out string) Case {
	return Case{Name: name, Build: build, Print: out, Stdout: out + "\n"}
}

func pair(name string, build func(h *heap.Heap) Value, out string) Case {
	return Case{Name: name, Build: build, Print: out, Stdout: "'" + out + "\n"}
}

func cons(h *heap.Heap, car, cdr Value) Value {
	return must(h.Cons(car, cdr))
}

func list(h *heap.Heap, xs ...Value) Value {
	return must(h.List(xs...))
}

func box(h *heap.Heap, x Value) Value {
	return must(h.NewBox(x))
}

func closure(h *heap.Heap, c heap.Closure) Value {
	return must(h.NewClosure(c))
}

func must[T any](x T, err error) T {
	if err != nil {
		panic(err)
	}
	return x
}
