package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedAddress means a text is not four dot-separated octets in [0,255].
var ErrMalformedAddress = errors.New("malformed address")

// Addr is a single IPv4 address stored as a 32-bit unsigned value,
// big-endian octet order. Immutable.
type Addr uint32

// ParseAddr parses dotted-quad text. Leading zeros are read numerically,
// signs and surrounding whitespace are rejected.
func ParseAddr(text string) (Addr, error) {
	octets := strings.Split(text, ".")
	if len(octets) != 4 {
		return 0, errAddr(text)
	}
	var v uint32
	for _, octet := range octets {
		n, err := strconv.ParseUint(octet, 10, 8)
		if err != nil {
			return 0, errAddr(text)
		}
		v = v<<8 | uint32(n)
	}
	return Addr(v), nil
}

func errAddr(text string) error {
	return fmt.Errorf("address %q: %w", text, ErrMalformedAddress)
}

func AddrFromUint32(v uint32) Addr {
	return Addr(v)
}

func (a Addr) Uint32() uint32 {
	return uint32(a)
}

func (a Addr) String() string {
	buf := make([]byte, 0, 15)
	for shift := 24; shift >= 0; shift -= 8 {
		if shift < 24 {
			buf = append(buf, '.')
		}
		buf = strconv.AppendUint(buf, uint64(a>>shift&0xFF), 10)
	}
	return string(buf)
}
