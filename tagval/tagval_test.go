package tagval

import (
	"fmt"
	"math/rand"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"

	"myceliumweb.org/tagrt/spec"
)

func TestSingletonWords(t *testing.T) {
	// these must match the code generator exactly.
	require.Equal(t, Value(24), True)
	require.Equal(t, Value(56), False)
	require.Equal(t, Value(88), EOF)
	require.Equal(t, Value(120), Void)
	require.Equal(t, Value(152), Empty)
}

func TestClassify(t *testing.T) {
	t.Parallel()
	type testCase struct {
		I Value
		O Category
	}
	tcs := []testCase{
		{I: True, O: CatTrue},
		{I: False, O: CatFalse},
		{I: EOF, O: CatEOF},
		{I: Empty, O: CatEmpty},
		{I: Void, O: CatVoid},

		{I: FromInt(0), O: CatInt},
		{I: FromInt(-1), O: CatInt},
		{I: FromInt(spec.MaxInt), O: CatInt},
		{I: FromInt(spec.MinInt), O: CatInt},
		{I: FromChar('a'), O: CatChar},
		{I: FromChar(0), O: CatChar},
		{I: FromChar(spec.MaxCodePoint), O: CatChar},

		{I: PointerTo(spec.PairTag, 0), O: CatPair},
		{I: PointerTo(spec.BoxTag, 8), O: CatBox},
		{I: PointerTo(spec.ProcTag, 1<<40), O: CatProc},

		// string tag, not understood by this runtime.
		{I: Value(3), O: Invalid},
		{I: Value(7), O: Invalid},
		{I: Value(spec.NonCharTag | 5<<spec.CharShift), O: Invalid},
	}
	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%#x", uint64(tc.I)), func(t *testing.T) {
			require.Equal(t, tc.O, Classify(tc.I))
		})
	}
}

func TestIntRoundTrip(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(0))
	for i := 0; i < 1000; i++ {
		n := rng.Int63n(spec.MaxInt) - rng.Int63n(-spec.MinInt)
		v := FromInt(n)
		require.Equal(t, CatInt, v.Category())
		require.Equal(t, n, v.Int())
	}
	_, ok := TryFromInt(spec.MaxInt + 1)
	require.False(t, ok)
	_, ok = TryFromInt(spec.MinInt - 1)
	require.False(t, ok)
}

func TestChar(t *testing.T) {
	for _, r := range []rune{0, 'a', 'λ', 0x1F600, spec.MaxCodePoint} {
		require.Equal(t, r, FromChar(r).Char())
	}
	require.Panics(t, func() { FromChar(spec.MaxCodePoint + 1) })
}

func TestCharBeyondUnicode(t *testing.T) {
	// the low 32 bits alone would read as 'a'
	v := Value(uint64((1<<32)+'a')<<spec.CharShift | spec.CharTag)
	require.Equal(t, CatChar, v.Category())
	require.Equal(t, uint64((1<<32)+'a'), v.CodePoint())
	require.Equal(t, utf8.RuneError, v.Char())

	v = Value(uint64(spec.MaxCodePoint+1)<<spec.CharShift | spec.CharTag)
	require.Equal(t, utf8.RuneError, v.Char())
}

func TestPointer(t *testing.T) {
	v := PointerTo(spec.PairTag, 0x1000)
	require.True(t, v.IsPair())
	require.True(t, v.IsPointer())
	require.False(t, v.IsBox())
	require.Equal(t, uint64(0x1000), v.Addr())
	require.Equal(t, uint64(spec.PairTag), v.Tag())

	require.Panics(t, func() { PointerTo(spec.BoxTag, 3) })
	require.Panics(t, func() { PointerTo(3, 8) })
	require.Panics(t, func() { FromInt(1).Addr() })
	require.Panics(t, func() { True.Int() })
}

func TestCategoryString(t *testing.T) {
	require.Equal(t, "Pair", CatPair.String())
	require.Equal(t, "Void", CatVoid.String())
	require.Equal(t, "Category(200)", Category(200).String())
	require.True(t, CatEmpty.IsSingleton())
	require.False(t, CatInt.IsSingleton())
}
