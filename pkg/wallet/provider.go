// Package wallet exposes signers behind named providers and an explicit connection value.
package wallet

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/samber/lo"
)

// Well known provider flags. A provider may carry several.
const (
	FlagMetaMask = "isMetaMask"
	FlagBrave    = "isBraveWallet"
	FlagCoinbase = "isCoinbaseWallet"
)

// Provider is a source of one or more signing accounts.
type Provider interface {
	Name() string
	HasFlag(flag string) bool
	RequestAccounts(ctx context.Context) ([]common.Address, error)
	Transactor(account common.Address, chainID *big.Int) (*bind.TransactOpts, error)
}

var _ Provider = (*KeyProvider)(nil)

// KeyProvider signs with an in-memory private key.
type KeyProvider struct {
	name  string
	key   *ecdsa.PrivateKey
	flags []string
}

func NewKeyProvider(name string, key *ecdsa.PrivateKey, flags ...string) (*KeyProvider, error) {
	if key == nil {
		return nil, errors.Wrap(errs.InvalidArgument, "private key is required")
	}
	return &KeyProvider{name: name, key: key, flags: flags}, nil
}

// NewHexKeyProvider parses a hex encoded secp256k1 private key, with or without 0x prefix.
func NewHexKeyProvider(name string, hexKey string, flags ...string) (*KeyProvider, error) {
	key, err := crypto.HexToECDSA(trim0x(hexKey))
	if err != nil {
		return nil, errors.Wrap(errors.Mark(err, errs.InvalidArgument), "invalid private key")
	}
	return NewKeyProvider(name, key, flags...)
}

// NewKeystoreProvider decrypts a V3 keystore file.
func NewKeystoreProvider(name string, keyJSON []byte, password string, flags ...string) (*KeyProvider, error) {
	key, err := keystore.DecryptKey(keyJSON, password)
	if err != nil {
		return nil, errors.Wrap(errors.Mark(err, errs.InvalidArgument), "failed to decrypt keystore")
	}
	return NewKeyProvider(name, key.PrivateKey, flags...)
}

func (p *KeyProvider) Name() string {
	return p.name
}

func (p *KeyProvider) HasFlag(flag string) bool {
	return lo.Contains(p.flags, flag)
}

func (p *KeyProvider) Address() common.Address {
	return crypto.PubkeyToAddress(p.key.PublicKey)
}

func (p *KeyProvider) RequestAccounts(ctx context.Context) ([]common.Address, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}
	return []common.Address{p.Address()}, nil
}

func (p *KeyProvider) Transactor(account common.Address, chainID *big.Int) (*bind.TransactOpts, error) {
	if account != p.Address() {
		return nil, errors.Wrapf(errs.NotFound, "account %s is not managed by provider %s", account, p.name)
	}
	opts, err := bind.NewKeyedTransactorWithChainID(p.key, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create transactor")
	}
	return opts, nil
}

// SelectProvider returns the first provider flagged as target that carries none of the exclude flags.
// Ties are broken by list order. An empty target matches every provider.
func SelectProvider(providers []Provider, target string, exclude ...string) (Provider, error) {
	p, ok := lo.Find(providers, func(p Provider) bool {
		if target != "" && !p.HasFlag(target) {
			return false
		}
		return !lo.SomeBy(exclude, p.HasFlag)
	})
	if !ok {
		return nil, errors.Wrapf(errs.NotFound, "no wallet provider flagged %q", target)
	}
	return p, nil
}

func trim0x(s string) string {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		return s[2:]
	}
	return s
}
