package client

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseGAS(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out int64
	}{
		{"0", 0},
		{"1", 1_0000_0000},
		{"0.5", 5000_0000},
		{"10.00000001", 10_0000_0001},
	} {
		v, err := ParseGAS(tc.in)
		require.NoError(t, err, tc.in)
		require.EqualValues(t, tc.out, v.Int64(), tc.in)
	}

	for _, in := range []string{"", "abc", "1.000000001", "-1"} {
		_, err := ParseGAS(in)
		require.Error(t, err, in)
	}
}

func TestFormatGAS(t *testing.T) {
	require.Equal(t, "0", FormatGAS(nil))
	require.Equal(t, "1.5", FormatGAS(big.NewInt(1_5000_0000)))
	require.Equal(t, "0.00000001", FormatGAS(big.NewInt(1)))
}
