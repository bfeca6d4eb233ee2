// Package evm holds the small helpers shared by every component talking to an EVM node.
package evm

import (
	"context"
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	pokedexcommon "github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
)

// Dial connects to rpcURL and checks that the node serves network.
func Dial(ctx context.Context, rpcURL string, network pokedexcommon.Network) (*ethclient.Client, error) {
	if !network.IsSupported() {
		return nil, errors.Wrapf(errs.Unsupported, "unsupported network %q", network)
	}
	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to dial ethereum node %s", rpcURL), errs.ChainRead)
	}
	chainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, errors.Mark(errors.Wrap(err, "failed to read chain id"), errs.ChainRead)
	}
	if err := CheckChainID(network, chainID); err != nil {
		client.Close()
		return nil, errors.WithStack(err)
	}
	return client, nil
}

// CheckChainID fails with Unsupported when chainID is not the chain id of network.
func CheckChainID(network pokedexcommon.Network, chainID *big.Int) error {
	expected := network.ChainID()
	if expected == nil {
		return errors.Wrapf(errs.Unsupported, "unsupported network %q", network)
	}
	if chainID == nil || expected.Cmp(chainID) != 0 {
		return errors.Wrapf(errs.Unsupported, "node chain id %v does not match network %s (%v)", chainID, network, expected)
	}
	return nil
}

// ParseAddress parses a 0x-prefixed hex address.
func ParseAddress(s string) (common.Address, error) {
	s = strings.TrimSpace(s)
	if !common.IsHexAddress(s) {
		return common.Address{}, errors.Wrapf(errs.InvalidArgument, "invalid address %q", s)
	}
	return common.HexToAddress(s), nil
}

// ParseUint256 parses a non-negative decimal (or 0x-prefixed hex) integer such as a token id.
func ParseUint256(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok || n.Sign() < 0 || n.BitLen() > 256 {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid uint256 %q", s)
	}
	return n, nil
}
