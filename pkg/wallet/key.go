package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/accounts/keystore"
	"github.com/ethereum/go-ethereum/crypto"
)

// GenerateKey creates a new secp256k1 key.
func GenerateKey() (*ecdsa.PrivateKey, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate key")
	}
	return key, nil
}

// EncodeKey returns the 0x-prefixed hex encoding of key.
func EncodeKey(key *ecdsa.PrivateKey) string {
	return "0x" + hex.EncodeToString(crypto.FromECDSA(key))
}

// StoreKey encrypts key into a V3 keystore file under dir.
func StoreKey(dir string, key *ecdsa.PrivateKey, password string) (accounts.Account, error) {
	ks := keystore.NewKeyStore(dir, keystore.StandardScryptN, keystore.StandardScryptP)
	account, err := ks.ImportECDSA(key, password)
	if err != nil {
		return accounts.Account{}, errors.Wrap(err, "failed to import key into keystore")
	}
	return account, nil
}
