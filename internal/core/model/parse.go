package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ParseBlock normalizes the two single-string block forms: "A/B" with a
// prefix length, or "A M" with an address and a mask separated by
// whitespace. The supplied address may be any host inside the block;
// its host bits are discarded, which is intentional rather than an error.
func ParseBlock(text string) (Block, error) {
	if addrText, bitsText, found := strings.Cut(text, "/"); found {
		addr, err := ParseAddr(addrText)
		if err != nil {
			return Block{}, err
		}
		n, err := strconv.Atoi(bitsText)
		if err != nil {
			return Block{}, fmt.Errorf("%q: %w", bitsText, ErrInvalidPrefix)
		}
		prefix, err := PrefixFromBits(n)
		if err != nil {
			return Block{}, err
		}
		return NewBlock(addr, prefix), nil
	}

	if fields := strings.Fields(text); len(fields) == 2 {
		return BlockFromMasks(fields[0], fields[1])
	}

	return Block{}, fmt.Errorf("cidr %q: %w", text, ErrMalformedAddress)
}

// BlockFromMasks normalizes an address plus a dotted-quad mask. The mask is
// read as a netmask first; a quad that is no contiguous netmask but whose
// complement is one is taken as a hostmask.
func BlockFromMasks(addrText, maskText string) (Block, error) {
	addr, err := ParseAddr(addrText)
	if err != nil {
		return Block{}, err
	}
	prefix, err := PrefixFromMask(maskText)
	if errors.Is(err, ErrInvalidMask) {
		var hostErr error
		if prefix, hostErr = PrefixFromHostmask(maskText); hostErr != nil {
			return Block{}, err
		}
		err = nil
	}
	if err != nil {
		return Block{}, err
	}
	return NewBlock(addr, prefix), nil
}
