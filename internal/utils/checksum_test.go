package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecksumString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: "0"},
		{name: "single ascii", input: "a", want: "61"},
		{name: "two ascii", input: "ab", want: "c21"},
		{name: "three ascii", input: "abc", want: "17862"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChecksumString(tt.input))
		})
	}
}

func TestChecksumString_Overflow(t *testing.T) {
	// the rolling hash wraps around int32 and keeps its sign in hex form
	var hash int32
	for _, c := range "zzzzzzz" {
		hash = (hash << 5) - hash + int32(c)
	}

	assert.Equal(t, strconv.FormatInt(int64(hash), 16), ChecksumString("zzzzzzz"))
}

func TestChecksumString_UsesUTF16Units(t *testing.T) {
	// U+1F600 is one rune but two UTF-16 code units (0xD83D, 0xDE00)
	var hash int32
	for _, unit := range []int32{0xD83D, 0xDE00} {
		hash = (hash << 5) - hash + unit
	}

	assert.Equal(t, strconv.FormatInt(int64(hash), 16), ChecksumString("\U0001F600"))
}

func TestChecksum_OrderSensitive(t *testing.T) {
	a, err := Checksum([]string{"x", "y"})
	require.NoError(t, err)
	b, err := Checksum([]string{"y", "x"})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestChecksum_Deterministic(t *testing.T) {
	v := map[string]any{"id": "t1", "amount": 100.5}

	a, err := Checksum(v)
	require.NoError(t, err)
	b, err := Checksum(v)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestChecksum_MarshalError(t *testing.T) {
	_, err := Checksum(make(chan int))
	assert.Error(t, err)
}

func TestBlake2bChecksum(t *testing.T) {
	a, err := Blake2bChecksum(map[string]int{"a": 1})
	require.NoError(t, err)
	b, err := Blake2bChecksum(map[string]int{"a": 2})
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestUTF16Len(t *testing.T) {
	assert.Equal(t, 0, UTF16Len(""))
	assert.Equal(t, 3, UTF16Len("abc"))
	assert.Equal(t, 1, UTF16Len("ç"))
	assert.Equal(t, 2, UTF16Len("\U0001F600"))
}

func TestEstimateSize(t *testing.T) {
	// `"ab"` is 4 code units
	assert.Equal(t, int64(8), EstimateSize("ab"))
	assert.Equal(t, int64(0), EstimateSize(make(chan int)))
}
