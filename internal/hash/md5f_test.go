package hash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum_Deterministic(t *testing.T) {
	data := []byte("BLUEPRINT:0,1,0,0,0,0,0,0,0,,,\"\"")

	a := Sum(data)
	b := Sum(data)

	require.Equal(t, a, b, "same input must produce the same digest")
}

func TestSum_DivergesFromInput(t *testing.T) {
	a := Sum([]byte("hello"))
	b := Sum([]byte("hellp"))

	require.NotEqual(t, a, b, "single-byte change must change the digest")
}

func TestSum_EmptyInput(t *testing.T) {
	sum := Sum(nil)
	require.Len(t, sum, 16)
}

func TestSumHex_FormatsUppercase(t *testing.T) {
	h := SumHex([]byte("BLUEPRINT:0,1,0,0,0,0,0,0,0,,,\"\""))

	require.Len(t, h, 32)
	require.Equal(t, strings.ToUpper(h), h)

	for _, r := range h {
		require.True(t, (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F'), "unexpected hex rune %q", r)
	}
}

func TestParseHex_RoundTrip(t *testing.T) {
	sum := Sum([]byte("round trip me"))
	hexStr := SumHex([]byte("round trip me"))

	parsed, err := ParseHex(hexStr)
	require.NoError(t, err)
	require.Equal(t, sum, parsed)
}

func TestParseHex_CaseInsensitive(t *testing.T) {
	upper, err := ParseHex("0123456789ABCDEF0123456789ABCDEF")
	require.NoError(t, err)

	lower, err := ParseHex("0123456789abcdef0123456789abcdef")
	require.NoError(t, err)

	require.Equal(t, upper, lower)
}

func TestParseHex_WrongLength(t *testing.T) {
	_, err := ParseHex("abc")
	require.Error(t, err)
}

func TestParseHex_InvalidHex(t *testing.T) {
	_, err := ParseHex(strings.Repeat("zz", 16))
	require.Error(t, err)
}

func TestBlocks_PaddingAlignsTo64Bytes(t *testing.T) {
	for _, n := range []int{0, 1, 55, 56, 57, 63, 64, 65, 128} {
		data := make([]byte, n)
		bs := blocks(data)

		total := 0
		for _, b := range bs {
			require.Len(t, b, 64)
			total += len(b)
		}

		require.GreaterOrEqual(t, total, n+9, "padding must fit the 0x80 byte and 8-byte length")
	}
}
