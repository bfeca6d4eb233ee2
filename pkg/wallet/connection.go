package wallet

import (
	"context"
	"math/big"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
)

// Connection is the state of one connected wallet. It is created by Connect and
// invalidated by Disconnect; every accessor fails with errs.Disconnected afterwards.
type Connection struct {
	mu           sync.RWMutex
	providerName string
	address      common.Address
	chainID      *big.Int
	opts         *bind.TransactOpts
	connected    bool
}

// Connect requests the accounts of provider and binds the first one to chainID.
func Connect(ctx context.Context, provider Provider, chainID *big.Int) (*Connection, error) {
	if provider == nil {
		return nil, errors.Wrap(errs.InvalidArgument, "wallet provider is required")
	}
	if chainID == nil {
		return nil, errors.Wrap(errs.InvalidArgument, "chain id is required")
	}
	accounts, err := provider.RequestAccounts(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "provider %s refused account access", provider.Name())
	}
	if len(accounts) == 0 {
		return nil, errors.Wrapf(errs.NotFound, "provider %s has no accounts", provider.Name())
	}
	opts, err := provider.Transactor(accounts[0], chainID)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &Connection{
		providerName: provider.Name(),
		address:      accounts[0],
		chainID:      new(big.Int).Set(chainID),
		opts:         opts,
		connected:    true,
	}, nil
}

func (c *Connection) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

func (c *Connection) ProviderName() string {
	return c.providerName
}

func (c *Connection) ChainID() *big.Int {
	return new(big.Int).Set(c.chainID)
}

func (c *Connection) Address() (common.Address, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.connected {
		return common.Address{}, errors.WithStack(errs.Disconnected)
	}
	return c.address, nil
}

// TransactOpts returns fresh transaction options bound to ctx.
func (c *Connection) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.connected {
		return nil, errors.WithStack(errs.Disconnected)
	}
	opts := *c.opts
	opts.Context = ctx
	return &opts, nil
}

// Disconnect drops the signer. It is safe to call more than once.
func (c *Connection) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connected = false
	c.opts = nil
}
