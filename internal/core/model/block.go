package model

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"strconv"
)

var (
	// ErrInvalidSubdivision means a requested sub-block prefix is shorter
	// than the block's own prefix (would enlarge, not split).
	ErrInvalidSubdivision = errors.New("invalid subdivision")
	// ErrIndexOutOfRange means a requested position is past the last
	// sub-block of the split.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrAddressSpaceExhausted means an adjacent block would leave the
	// 32-bit address space.
	ErrAddressSpaceExhausted = errors.New("address space exhausted")
)

// Block is an IPv4 CIDR block: a network address plus a prefix length.
// The base always has its host bits zeroed; NewBlock masks whatever
// address it is given, so the invariant holds from construction on.
// Blocks are immutable values; Next and Prev return new ones.
type Block struct {
	base   Addr
	prefix Prefix
}

func NewBlock(addr Addr, prefix Prefix) Block {
	return Block{base: Addr(addr.Uint32() & prefix.Mask()), prefix: prefix}
}

func (b Block) Base() Addr {
	return b.base
}

func (b Block) Prefix() Prefix {
	return b.prefix
}

// Broadcast is the block's highest address: the base with host bits set.
func (b Block) Broadcast() Addr {
	return Addr(b.base.Uint32() | b.prefix.Hostmask())
}

// Size is the number of addresses in the block, 2^(32-bits).
// It is 2^32 for a /0 block, hence uint64.
func (b Block) Size() uint64 {
	return 1 << (32 - b.prefix)
}

// String renders the canonical "base/bits" form.
func (b Block) String() string {
	return b.base.String() + "/" + strconv.Itoa(b.prefix.Bits())
}

// Contains reports the zero-based position of addr inside the block.
// Position 0 is the base address itself, so presence is a separate flag.
func (b Block) Contains(addr Addr) (uint64, bool) {
	if addr.Uint32()&b.prefix.Mask() != b.base.Uint32() {
		return 0, false
	}
	return uint64(addr - b.base), true
}

// SubnetCount is the number of sub-blocks a split at subBits yields.
func (b Block) SubnetCount(subBits Prefix) (uint64, error) {
	if subBits < b.prefix || subBits > 32 {
		return 0, fmt.Errorf("/%d of a /%d block: %w", subBits, b.prefix, ErrInvalidSubdivision)
	}
	return 1 << (subBits - b.prefix), nil
}

// Subnets splits the block into equal sub-blocks of subBits and yields them
// in ascending address order. The sequence is lazy and restartable: each
// item is computed from its index, nothing is materialized, so a /0 block
// can be walked in constant memory.
func (b Block) Subnets(subBits Prefix) (iter.Seq[Block], error) {
	count, err := b.SubnetCount(subBits)
	if err != nil {
		return nil, err
	}
	return func(yield func(Block) bool) {
		for i := uint64(0); i < count; i++ {
			if !yield(b.subnetAt(i, subBits)) {
				return
			}
		}
	}, nil
}

// Addrs yields the base address of every sub-block of the split; at the
// default subBits of 32 that is each member address of the block.
func (b Block) Addrs(subBits Prefix) (iter.Seq[Addr], error) {
	subnets, err := b.Subnets(subBits)
	if err != nil {
		return nil, err
	}
	return func(yield func(Addr) bool) {
		for subnet := range subnets {
			if !yield(subnet.base) {
				return
			}
		}
	}, nil
}

// NthSubnet is the sub-block at position n of the split, computed in
// constant time; indexing a /8 block does not walk n items.
func (b Block) NthSubnet(n uint64, subBits Prefix) (Block, error) {
	count, err := b.SubnetCount(subBits)
	if err != nil {
		return Block{}, err
	}
	if n >= count {
		return Block{}, fmt.Errorf("%d of %d: %w", n, count, ErrIndexOutOfRange)
	}
	return b.subnetAt(n, subBits), nil
}

// NthAddr is the base address of the sub-block at position n.
func (b Block) NthAddr(n uint64, subBits Prefix) (Addr, error) {
	subnet, err := b.NthSubnet(n, subBits)
	if err != nil {
		return 0, err
	}
	return subnet.base, nil
}

// PickSubnets resolves a set of positions in the order given, without
// de-duplication. A failing position fails the whole call.
func (b Block) PickSubnets(ns []uint64, subBits Prefix) ([]Block, error) {
	picked := make([]Block, 0, len(ns))
	for _, n := range ns {
		subnet, err := b.NthSubnet(n, subBits)
		if err != nil {
			return nil, err
		}
		picked = append(picked, subnet)
	}
	return picked, nil
}

// PickAddrs is PickSubnets for addresses.
func (b Block) PickAddrs(ns []uint64, subBits Prefix) ([]Addr, error) {
	picked := make([]Addr, 0, len(ns))
	for _, n := range ns {
		addr, err := b.NthAddr(n, subBits)
		if err != nil {
			return nil, err
		}
		picked = append(picked, addr)
	}
	return picked, nil
}

// Next is the block of identical size immediately above this one.
// There is no wraparound past 255.255.255.255.
func (b Block) Next() (Block, error) {
	base := uint64(b.base.Uint32()) + b.Size()
	if base > math.MaxUint32 {
		return Block{}, fmt.Errorf("next of %s: %w", b, ErrAddressSpaceExhausted)
	}
	return Block{base: Addr(base), prefix: b.prefix}, nil
}

// Prev is the block of identical size immediately below this one.
func (b Block) Prev() (Block, error) {
	size := b.Size()
	if uint64(b.base.Uint32()) < size {
		return Block{}, fmt.Errorf("prev of %s: %w", b, ErrAddressSpaceExhausted)
	}
	return Block{base: Addr(uint64(b.base.Uint32()) - size), prefix: b.prefix}, nil
}

func (b Block) subnetAt(n uint64, subBits Prefix) Block {
	offset := n << (32 - subBits)
	return Block{base: Addr(uint64(b.base.Uint32()) + offset), prefix: subBits}
}
