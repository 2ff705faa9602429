package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseBlock(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected string
		size     uint64
	}{
		{
			name:     "cidr form",
			text:     "192.168.75.8/29",
			expected: "192.168.75.8/29",
			size:     8,
		},
		{
			name:     "cidr form with host bits",
			text:     "192.168.75.10/29",
			expected: "192.168.75.8/29",
			size:     8,
		},
		{
			name:     "address and netmask in one string",
			text:     "192.168.0.0 255.255.255.252",
			expected: "192.168.0.0/30",
			size:     4,
		},
		{
			name:     "address and hostmask in one string",
			text:     "192.168.75.10 0.0.0.7",
			expected: "192.168.75.8/29",
			size:     8,
		},
		{
			name:     "tab separated",
			text:     "10.0.0.0\t255.0.0.0",
			expected: "10.0.0.0/8",
			size:     1 << 24,
		},
		{
			name:     "zero prefix",
			text:     "5.6.7.8/0",
			expected: "0.0.0.0/0",
			size:     1 << 32,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			block, err := ParseBlock(tc.text)
			require.NoError(t, err)
			require.Equal(t, tc.expected, block.String())
			require.Equal(t, tc.size, block.Size())
		})
	}
}

func TestParseBlockErrors(t *testing.T) {
	testCases := []struct {
		name     string
		text     string
		expected error
	}{
		{name: "bad address", text: "192.168.75/29", expected: ErrMalformedAddress},
		{name: "bare address", text: "192.168.75.8", expected: ErrMalformedAddress},
		{name: "empty", text: "", expected: ErrMalformedAddress},
		{name: "prefix not a number", text: "192.168.75.8/x", expected: ErrInvalidPrefix},
		{name: "prefix too large", text: "192.168.75.8/33", expected: ErrInvalidPrefix},
		{name: "negative prefix", text: "192.168.75.8/-1", expected: ErrInvalidPrefix},
		{name: "mask neither net nor host", text: "192.168.75.8 255.0.255.0", expected: ErrInvalidMask},
		{name: "bad mask quad", text: "192.168.75.8 255.255.255", expected: ErrMalformedAddress},
		{name: "three fields", text: "1.2.3.4 5.6.7.8 9.10.11.12", expected: ErrMalformedAddress},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseBlock(tc.text)
			require.ErrorIs(t, err, tc.expected)
		})
	}
}

func TestBlockFromMasks(t *testing.T) {
	t.Run("netmask", func(t *testing.T) {
		block, err := BlockFromMasks("192.168.0.0", "255.255.255.252")
		require.NoError(t, err)
		require.Equal(t, "192.168.0.0/30", block.String())
		require.Equal(t, uint64(4), block.Size())
	})

	t.Run("hostmask auto-detected", func(t *testing.T) {
		block, err := BlockFromMasks("192.168.75.10", "0.0.0.7")
		require.NoError(t, err)
		require.Equal(t, "192.168.75.8/29", block.String())
	})

	t.Run("ambiguous quad read as netmask", func(t *testing.T) {
		// 0.0.0.0 is a valid /0 netmask and a valid /32 hostmask;
		// the netmask reading wins.
		block, err := BlockFromMasks("10.20.30.40", "0.0.0.0")
		require.NoError(t, err)
		require.Equal(t, "0.0.0.0/0", block.String())
	})

	t.Run("host inside block normalizes to base", func(t *testing.T) {
		block, err := BlockFromMasks("10.0.39.16", "255.0.0.0")
		require.NoError(t, err)
		require.Equal(t, "10.0.0.0/8", block.String())
	})

	t.Run("neither interpretation valid", func(t *testing.T) {
		_, err := BlockFromMasks("10.0.0.0", "170.170.170.170")
		require.ErrorIs(t, err, ErrInvalidMask)
	})

	t.Run("malformed address", func(t *testing.T) {
		_, err := BlockFromMasks("10.0.0", "255.0.0.0")
		require.ErrorIs(t, err, ErrMalformedAddress)
	})
}
