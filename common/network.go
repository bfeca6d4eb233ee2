package common

import "math/big"

type Network string

const (
	NetworkMainnet   Network = "mainnet"
	NetworkSepolia   Network = "sepolia"
	NetworkLocalhost Network = "localhost"
)

var chainIDs = map[Network]*big.Int{
	NetworkMainnet:   big.NewInt(1),
	NetworkSepolia:   big.NewInt(11155111),
	NetworkLocalhost: big.NewInt(1337),
}

func (n Network) IsSupported() bool {
	_, ok := chainIDs[n]
	return ok
}

// ChainID returns a copy of the EIP-155 chain id of the network, or nil if unsupported.
func (n Network) ChainID() *big.Int {
	id, ok := chainIDs[n]
	if !ok {
		return nil
	}
	return new(big.Int).Set(id)
}

func (n Network) String() string {
	return string(n)
}

// NetworkFromChainID resolves a network from the id reported by a node.
func NetworkFromChainID(chainID *big.Int) (Network, bool) {
	if chainID == nil {
		return "", false
	}
	for network, id := range chainIDs {
		if id.Cmp(chainID) == 0 {
			return network, true
		}
	}
	return "", false
}
