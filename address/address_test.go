package address_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lightsout"
	"github.com/katalvlaran/lightsout/address"
)

// TestEncode_Properties checks width and injectivity for several batch sizes.
func TestEncode_Properties(t *testing.T) {
	cases := []struct {
		n     int
		width int
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
	}
	for _, tc := range cases {
		book, err := address.Encode(tc.n)
		require.NoError(t, err)
		require.Equal(t, tc.width, book.Width, "n=%d", tc.n)
		require.Len(t, book.Codes, tc.n)
		require.Equal(t, tc.n > 1, book.Batched())

		seen := map[address.Code]bool{}
		values := map[int]bool{}
		for _, c := range book.Codes {
			require.Equal(t, tc.width, c.Width(), "n=%d code=%q", tc.n, c)
			require.False(t, seen[c], "duplicate code %q", c)
			seen[c] = true
			values[c.Value()] = true
		}
		require.Len(t, values, tc.n, "values must be distinct too")
	}
}

// TestEncode_Codes pins the zero-padded strings.
func TestEncode_Codes(t *testing.T) {
	book, err := address.Encode(2)
	require.NoError(t, err)
	assert.Equal(t, []address.Code{"0", "1"}, book.Codes)

	book, err = address.Encode(5)
	require.NoError(t, err)
	assert.Equal(t, []address.Code{"000", "001", "010", "011", "100"}, book.Codes)
}

// TestEncode_Empty rejects an empty batch.
func TestEncode_Empty(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := address.Encode(n)
		require.ErrorIs(t, err, address.ErrEmptyBatch)
		require.ErrorIs(t, err, lightsout.ErrConfiguration)
	}
}

// TestCode_Helpers covers bit views of a code.
func TestCode_Helpers(t *testing.T) {
	c := address.Code("011")
	assert.Equal(t, "011", c.String())
	assert.Equal(t, []int{0}, c.ZeroPositions())
	assert.Equal(t, 6, c.Value())

	assert.Empty(t, address.Code("").ZeroPositions())
	assert.Equal(t, 0, address.Code("").Value())
}
