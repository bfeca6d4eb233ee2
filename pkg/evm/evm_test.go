package evm

import (
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress(" 0x5FbDB2315678afecb367f032d93F642f64180aa3 ")
	require.NoError(t, err)
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", addr.Hex())

	for _, input := range []string{"", "0x1234", "not-an-address"} {
		_, err := ParseAddress(input)
		assert.True(t, errors.Is(err, errs.InvalidArgument), input)
	}
}

func TestParseUint256(t *testing.T) {
	n, err := ParseUint256("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n.Int64())

	n, err = ParseUint256("0x10")
	require.NoError(t, err)
	assert.Equal(t, int64(16), n.Int64())

	for _, input := range []string{"-1", "abc", "1e3"} {
		_, err := ParseUint256(input)
		assert.True(t, errors.Is(err, errs.InvalidArgument), input)
	}
}

func TestCheckChainID(t *testing.T) {
	assert.NoError(t, CheckChainID(common.NetworkSepolia, big.NewInt(11155111)))
	assert.True(t, errors.Is(CheckChainID(common.NetworkMainnet, big.NewInt(11155111)), errs.Unsupported))
	assert.True(t, errors.Is(CheckChainID(common.Network("ropsten"), big.NewInt(3)), errs.Unsupported))
	assert.True(t, errors.Is(CheckChainID(common.NetworkMainnet, nil), errs.Unsupported))
}
