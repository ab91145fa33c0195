package chars

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"myceliumweb.org/tagrt/spec"
	"myceliumweb.org/tagrt/tagval"
)

func TestString(t *testing.T) {
	type testCase struct {
		I rune
		O string
	}
	tcs := []testCase{
		{I: 'a', O: `#\a`},
		{I: 'Z', O: `#\Z`},
		{I: '\\', O: `#\\`},
		{I: 'λ', O: `#\λ`},
		{I: 0x1F600, O: "#\\\U0001F600"},
		{I: 0, O: `#\nul`},
		{I: ' ', O: `#\space`},
		{I: '\n', O: `#\newline`},
		{I: '\t', O: `#\tab`},
		{I: 127, O: `#\rubout`},
		// surrogates are not scalar values
		{I: 0xD800, O: "#\\�"},
	}
	for _, tc := range tcs {
		require.Equal(t, tc.O, String(tc.I))
	}
}

func TestPrint(t *testing.T) {
	sb := &strings.Builder{}
	require.NoError(t, Print(sb, tagval.FromChar('q')))
	require.Equal(t, `#\q`, sb.String())
}

func TestNamesIsACopy(t *testing.T) {
	ns := Names()
	require.Len(t, ns, 9)
	ns['x'] = "ex"
	require.Equal(t, `#\x`, String('x'))
}

func TestPrintBeyondUnicode(t *testing.T) {
	// the payload truncated to 32 bits is 'a'
	v := tagval.Value(uint64((1<<32)+'a')<<spec.CharShift | spec.CharTag)
	sb := &strings.Builder{}
	require.NoError(t, Print(sb, v))
	require.Equal(t, "#\\�", sb.String())
}
