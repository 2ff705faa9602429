package model

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
)

var (
	// ErrInvalidPrefix means a prefix length is outside [0,32].
	ErrInvalidPrefix = errors.New("invalid prefix length")
	// ErrInvalidMask means a dotted quad is not a contiguous run of ones
	// from the most significant bit.
	ErrInvalidMask = errors.New("invalid netmask")
	// ErrInvalidHostmask means the complement of a dotted quad is not a
	// contiguous netmask.
	ErrInvalidHostmask = errors.New("invalid hostmask")
)

// Prefix is a CIDR prefix length: the count of leading netmask bits.
// Invariant 0 <= Prefix <= 32 is enforced by the constructors. Immutable.
type Prefix uint8

func PrefixFromBits(n int) (Prefix, error) {
	if n < 0 || n > 32 {
		return 0, fmt.Errorf("%d: %w", n, ErrInvalidPrefix)
	}
	return Prefix(n), nil
}

// PrefixFromMask parses a dotted-quad netmask such as "255.255.255.248".
func PrefixFromMask(text string) (Prefix, error) {
	addr, err := ParseAddr(text)
	if err != nil {
		return 0, err
	}
	ones := bits.OnesCount32(addr.Uint32())
	if addr.Uint32() != Prefix(ones).Mask() {
		return 0, fmt.Errorf("%s: %w", text, ErrInvalidMask)
	}
	return Prefix(ones), nil
}

// PrefixFromHostmask parses a dotted-quad wildcard mask such as "0.0.0.7".
func PrefixFromHostmask(text string) (Prefix, error) {
	addr, err := ParseAddr(text)
	if err != nil {
		return 0, err
	}
	ones := bits.OnesCount32(^addr.Uint32())
	if ^addr.Uint32() != Prefix(ones).Mask() {
		return 0, fmt.Errorf("%s: %w", text, ErrInvalidHostmask)
	}
	return Prefix(ones), nil
}

func (p Prefix) Bits() int {
	return int(p)
}

func (p Prefix) Mask() uint32 {
	return bits.Reverse32(math.MaxUint32 >> (32 - p))
}

func (p Prefix) Hostmask() uint32 {
	return ^p.Mask()
}

// MaskAddr is the netmask in address form, for rendering.
func (p Prefix) MaskAddr() Addr {
	return Addr(p.Mask())
}

// HostmaskAddr is the wildcard mask in address form, for rendering.
func (p Prefix) HostmaskAddr() Addr {
	return Addr(p.Hostmask())
}
