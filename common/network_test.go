package common

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNetworkChainID(t *testing.T) {
	assert.True(t, NetworkSepolia.IsSupported())
	assert.Equal(t, int64(11155111), NetworkSepolia.ChainID().Int64())
	assert.False(t, Network("testnet").IsSupported())
	assert.Nil(t, Network("testnet").ChainID())

	// returned ids must not alias the table
	NetworkMainnet.ChainID().SetInt64(42)
	assert.Equal(t, int64(1), NetworkMainnet.ChainID().Int64())
}

func TestNetworkFromChainID(t *testing.T) {
	network, ok := NetworkFromChainID(big.NewInt(1337))
	assert.True(t, ok)
	assert.Equal(t, NetworkLocalhost, network)

	_, ok = NetworkFromChainID(big.NewInt(5))
	assert.False(t, ok)

	_, ok = NetworkFromChainID(nil)
	assert.False(t, ok)
}
