package pokedex

import (
	"context"
	"math/big"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/internal/config"
	"github.com/gaze-network/pokedex-nft/pkg/wallet"
)

const DefaultWalletProvider = "metamask"

type providerProfile struct {
	flag    string
	exclude []string
}

// Brave and Coinbase wallets also announce themselves as MetaMask.
var providerProfiles = map[string]providerProfile{
	"metamask": {flag: wallet.FlagMetaMask, exclude: []string{wallet.FlagBrave, wallet.FlagCoinbase}},
	"brave":    {flag: wallet.FlagBrave},
	"coinbase": {flag: wallet.FlagCoinbase},
}

func newProvider(conf config.Wallet) (wallet.Provider, error) {
	name := strings.ToLower(conf.Provider)
	if name == "" {
		name = DefaultWalletProvider
	}
	profile, ok := providerProfiles[name]
	if !ok {
		return nil, errors.Wrapf(errs.Unsupported, "%q wallet provider is not supported", conf.Provider)
	}

	var provider wallet.Provider
	switch {
	case conf.PrivateKey != "":
		p, err := wallet.NewHexKeyProvider(name, conf.PrivateKey, profile.flag)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		provider = p
	case conf.KeystorePath != "":
		keyJSON, err := os.ReadFile(conf.KeystorePath)
		if err != nil {
			return nil, errors.Wrapf(err, "can't read keystore %q", conf.KeystorePath)
		}
		p, err := wallet.NewKeystoreProvider(name, keyJSON, conf.KeystorePassword, profile.flag)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		provider = p
	default:
		return nil, errors.Wrap(errs.InvalidArgument, "wallet requires a private key or a keystore")
	}

	selected, err := wallet.SelectProvider([]wallet.Provider{provider}, profile.flag, profile.exclude...)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return selected, nil
}

// ConnectWallet connects the configured signer to chainID.
func ConnectWallet(ctx context.Context, conf config.Wallet, chainID *big.Int) (*wallet.Connection, error) {
	provider, err := newProvider(conf)
	if err != nil {
		return nil, errors.Wrap(err, "invalid wallet configuration")
	}
	conn, err := wallet.Connect(ctx, provider, chainID)
	if err != nil {
		return nil, errors.Wrap(err, "can't connect wallet")
	}
	return conn, nil
}
