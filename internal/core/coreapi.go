package core

import "github.com/ak7sky/cidr-calc/internal/core/model"

// NetCalculator is the operation surface the CLI layer talks to. Inputs are
// the raw textual forms; every model error kind propagates unchanged in the
// returned error chains.
type NetCalculator interface {
	// Describe normalizes any accepted single-string block form.
	Describe(cidr string) (model.Block, error)
	// DescribeMasked normalizes an explicit address + netmask/hostmask pair.
	DescribeMasked(addr, mask string) (model.Block, error)
	// Contains reports the position of addr in the block, comma-ok style.
	Contains(cidr, addr string) (uint64, bool, error)
	// Subnets lists up to limit sub-blocks of the split (limit <= 0: all).
	Subnets(cidr string, subBits, limit int) ([]model.Block, error)
	// Addrs lists up to limit member addresses of the split (limit <= 0: all).
	Addrs(cidr string, subBits, limit int) ([]model.Addr, error)
	// NthSubnets resolves positions in the order given, no de-duplication.
	NthSubnets(cidr string, ns []uint64, subBits int) ([]model.Block, error)
	// NthAddrs resolves positions to addresses in the order given.
	NthAddrs(cidr string, ns []uint64, subBits int) ([]model.Addr, error)
	// Next is the adjacent block of equal size above.
	Next(cidr string) (model.Block, error)
	// Prev is the adjacent block of equal size below.
	Prev(cidr string) (model.Block, error)
}
