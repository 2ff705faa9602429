package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixFromBits(t *testing.T) {
	for _, n := range []int{-1, 33, 64} {
		_, err := PrefixFromBits(n)
		require.ErrorIs(t, err, ErrInvalidPrefix, "bits %d", n)
	}
	for _, n := range []int{0, 1, 29, 32} {
		p, err := PrefixFromBits(n)
		require.NoError(t, err)
		require.Equal(t, n, p.Bits())
	}
}

func TestPrefixMasks(t *testing.T) {
	testCases := []struct {
		bits     int
		mask     string
		hostmask string
	}{
		{bits: 0, mask: "0.0.0.0", hostmask: "255.255.255.255"},
		{bits: 8, mask: "255.0.0.0", hostmask: "0.255.255.255"},
		{bits: 16, mask: "255.255.0.0", hostmask: "0.0.255.255"},
		{bits: 29, mask: "255.255.255.248", hostmask: "0.0.0.7"},
		{bits: 30, mask: "255.255.255.252", hostmask: "0.0.0.3"},
		{bits: 32, mask: "255.255.255.255", hostmask: "0.0.0.0"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.mask, func(t *testing.T) {
			t.Parallel()
			p, err := PrefixFromBits(tc.bits)
			require.NoError(t, err)
			require.Equal(t, tc.mask, p.MaskAddr().String())
			require.Equal(t, tc.hostmask, p.HostmaskAddr().String())
			require.Equal(t, ^p.Mask(), p.Hostmask())
		})
	}
}

func TestPrefixFromMask(t *testing.T) {
	valid := map[string]int{
		"0.0.0.0":         0,
		"255.0.0.0":       8,
		"255.255.255.248": 29,
		"255.255.255.252": 30,
		"255.255.255.255": 32,
	}
	for text, bits := range valid {
		p, err := PrefixFromMask(text)
		require.NoError(t, err, text)
		require.Equal(t, bits, p.Bits())
	}

	for _, text := range []string{"255.0.255.0", "0.255.255.255", "255.255.255.249", "0.0.0.7"} {
		_, err := PrefixFromMask(text)
		require.ErrorIs(t, err, ErrInvalidMask, text)
	}

	_, err := PrefixFromMask("255.255.255")
	require.ErrorIs(t, err, ErrMalformedAddress)
}

func TestPrefixFromHostmask(t *testing.T) {
	valid := map[string]int{
		"255.255.255.255": 0,
		"0.255.255.255":   8,
		"0.0.0.7":         29,
		"0.0.0.3":         30,
		"0.0.0.0":         32,
	}
	for text, bits := range valid {
		p, err := PrefixFromHostmask(text)
		require.NoError(t, err, text)
		require.Equal(t, bits, p.Bits())
	}

	for _, text := range []string{"0.0.0.5", "255.0.255.255", "255.255.255.248"} {
		_, err := PrefixFromHostmask(text)
		require.ErrorIs(t, err, ErrInvalidHostmask, text)
	}

	_, err := PrefixFromHostmask("7")
	require.ErrorIs(t, err, ErrMalformedAddress)
}
