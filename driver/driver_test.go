package driver

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"myceliumweb.org/tagrt/heap"
	"myceliumweb.org/tagrt/internal/testutil"
	"myceliumweb.org/tagrt/printer"
	"myceliumweb.org/tagrt/rttests"
	"myceliumweb.org/tagrt/spec"
	"myceliumweb.org/tagrt/tagval"
)

func TestRunCases(t *testing.T) {
	t.Parallel()
	for _, tc := range rttests.Cases() {
		tc := tc
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()
			ctx := testutil.Context(t)
			buf := bytes.Buffer{}
			out, err := Run(ctx, Config{HeapWords: 256}, &buf, func(rt *Runtime) (tagval.Value, error) {
				return tc.Build(rt.Heap()), nil
			})
			require.NoError(t, err)
			require.Equal(t, StatusOK, out.Status)
			require.False(t, out.Raised)
			require.Equal(t, tc.Stdout, buf.String())
		})
	}
}

func TestVoidHasNoNewline(t *testing.T) {
	ctx := testutil.Context(t)
	buf := bytes.Buffer{}
	out, err := Run(ctx, Config{}, &buf, func(rt *Runtime) (tagval.Value, error) {
		return tagval.Void, nil
	})
	require.NoError(t, err)
	require.Equal(t, tagval.Void, out.Result)
	require.Empty(t, buf.Bytes())
}

func TestDefaultHeapSize(t *testing.T) {
	ctx := testutil.Context(t)
	buf := bytes.Buffer{}
	_, err := Run(ctx, Config{}, &buf, func(rt *Runtime) (tagval.Value, error) {
		require.Equal(t, spec.DefaultHeapWords, rt.Heap().Len())
		return tagval.True, nil
	})
	require.NoError(t, err)
	require.Equal(t, "#t\n", buf.String())
}

func TestRaise(t *testing.T) {
	ctx := testutil.Context(t)
	buf := bytes.Buffer{}
	reached := false
	out, err := Run(ctx, Config{}, &buf, func(rt *Runtime) (tagval.Value, error) {
		rt.Out().WriteString("partial ")
		helper(rt)
		reached = true
		return tagval.True, nil
	})
	require.NoError(t, err)
	require.False(t, reached)
	require.True(t, out.Raised)
	require.Equal(t, StatusError, out.Status)
	require.Equal(t, "partial "+ErrorToken, buf.String())
}

// helper raises from a nested call, as a primitive in compiled code would.
func helper(rt *Runtime) {
	_, err := rt.Heap().Cons(tagval.True, tagval.False)
	if err == nil {
		rt.Raise()
	}
}

func TestHostError(t *testing.T) {
	ctx := testutil.Context(t)
	buf := bytes.Buffer{}
	out, err := Run(ctx, Config{HeapWords: 1}, &buf, func(rt *Runtime) (tagval.Value, error) {
		return rt.Heap().Cons(tagval.True, tagval.False)
	})
	require.ErrorIs(t, err, heap.ErrHeapFull)
	require.Equal(t, StatusError, out.Status)
	require.Empty(t, buf.Bytes())
}

func TestOtherPanicsPropagate(t *testing.T) {
	ctx := testutil.Context(t)
	buf := bytes.Buffer{}
	boom := errors.New("boom")
	require.PanicsWithError(t, "boom", func() {
		Run(ctx, Config{}, &buf, func(rt *Runtime) (tagval.Value, error) {
			panic(boom)
		})
	})
}

func TestPrintError(t *testing.T) {
	ctx := testutil.Context(t)
	buf := bytes.Buffer{}
	out, err := Run(ctx, Config{Printer: printer.Printer{MaxDepth: 1}}, &buf, func(rt *Runtime) (tagval.Value, error) {
		h := rt.Heap()
		b, err := h.NewBox(tagval.FromInt(1))
		if err != nil {
			return 0, err
		}
		return h.NewBox(b)
	})
	require.ErrorIs(t, err, printer.ErrTooDeep)
	require.Equal(t, StatusError, out.Status)
	require.Equal(t, "#&#&", buf.String())
}

func TestRuntimeContext(t *testing.T) {
	ctx := testutil.Context(t)
	buf := bytes.Buffer{}
	_, err := Run(ctx, Config{}, &buf, func(rt *Runtime) (tagval.Value, error) {
		require.Equal(t, ctx, rt.Context())
		return tagval.Void, nil
	})
	require.NoError(t, err)
}
