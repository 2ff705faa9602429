package service

import (
	"fmt"

	"github.com/ak7sky/cidr-calc/internal/core/model"
	"github.com/ak7sky/cidr-calc/internal/logger"
)

var (
	errDescribe = "failed to describe block"
	errContains = "failed to check address in block"
	errSubnets  = "failed to enumerate block"
	errNth      = "failed to index block"
	errAdjacent = "failed to step to adjacent block"
)

// NetCalcService implements core.NetCalculator on the pure block model.
// It owns no state besides its logger; every call parses its textual
// inputs anew and works on immutable values.
type NetCalcService struct {
	logger logger.Logger
}

func New(logger logger.Logger) *NetCalcService {
	return &NetCalcService{logger: logger}
}

func (srv *NetCalcService) Describe(cidr string) (model.Block, error) {
	block, err := model.ParseBlock(cidr)
	if err != nil {
		return model.Block{}, fmt.Errorf("%s: %w", errDescribe, err)
	}
	srv.logger.Debug("normalized %q to %s", cidr, block)
	return block, nil
}

func (srv *NetCalcService) DescribeMasked(addr, mask string) (model.Block, error) {
	block, err := model.BlockFromMasks(addr, mask)
	if err != nil {
		return model.Block{}, fmt.Errorf("%s: %w", errDescribe, err)
	}
	srv.logger.Debug("normalized %q %q to %s", addr, mask, block)
	return block, nil
}

func (srv *NetCalcService) Contains(cidr, addr string) (uint64, bool, error) {
	block, err := model.ParseBlock(cidr)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", errContains, err)
	}
	parsed, err := model.ParseAddr(addr)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", errContains, err)
	}
	n, ok := block.Contains(parsed)
	return n, ok, nil
}

func (srv *NetCalcService) Subnets(cidr string, subBits, limit int) ([]model.Block, error) {
	block, split, err := srv.splitOf(cidr, subBits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errSubnets, err)
	}
	subnets, err := block.Subnets(split)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errSubnets, err)
	}
	collected := make([]model.Block, 0)
	for subnet := range subnets {
		if limit > 0 && len(collected) == limit {
			srv.logger.Debug("listing of %s cut at %d items", block, limit)
			break
		}
		collected = append(collected, subnet)
	}
	return collected, nil
}

func (srv *NetCalcService) Addrs(cidr string, subBits, limit int) ([]model.Addr, error) {
	block, split, err := srv.splitOf(cidr, subBits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errSubnets, err)
	}
	addrs, err := block.Addrs(split)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errSubnets, err)
	}
	collected := make([]model.Addr, 0)
	for addr := range addrs {
		if limit > 0 && len(collected) == limit {
			srv.logger.Debug("listing of %s cut at %d items", block, limit)
			break
		}
		collected = append(collected, addr)
	}
	return collected, nil
}

func (srv *NetCalcService) NthSubnets(cidr string, ns []uint64, subBits int) ([]model.Block, error) {
	block, split, err := srv.splitOf(cidr, subBits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errNth, err)
	}
	picked, err := block.PickSubnets(ns, split)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errNth, err)
	}
	return picked, nil
}

func (srv *NetCalcService) NthAddrs(cidr string, ns []uint64, subBits int) ([]model.Addr, error) {
	block, split, err := srv.splitOf(cidr, subBits)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errNth, err)
	}
	picked, err := block.PickAddrs(ns, split)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errNth, err)
	}
	return picked, nil
}

func (srv *NetCalcService) Next(cidr string) (model.Block, error) {
	block, err := model.ParseBlock(cidr)
	if err != nil {
		return model.Block{}, fmt.Errorf("%s: %w", errAdjacent, err)
	}
	next, err := block.Next()
	if err != nil {
		return model.Block{}, fmt.Errorf("%s: %w", errAdjacent, err)
	}
	return next, nil
}

func (srv *NetCalcService) Prev(cidr string) (model.Block, error) {
	block, err := model.ParseBlock(cidr)
	if err != nil {
		return model.Block{}, fmt.Errorf("%s: %w", errAdjacent, err)
	}
	prev, err := block.Prev()
	if err != nil {
		return model.Block{}, fmt.Errorf("%s: %w", errAdjacent, err)
	}
	return prev, nil
}

func (srv *NetCalcService) splitOf(cidr string, subBits int) (model.Block, model.Prefix, error) {
	block, err := model.ParseBlock(cidr)
	if err != nil {
		return model.Block{}, 0, err
	}
	split, err := model.PrefixFromBits(subBits)
	if err != nil {
		return model.Block{}, 0, err
	}
	return block, split, nil
}
