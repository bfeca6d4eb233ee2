package entity

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type WalletSummary struct {
	Address          common.Address   `json:"address"`
	NFTBalance       uint64           `json:"nftBalance"`
	NativeBalanceWei *big.Int         `json:"nativeBalanceWei,omitempty"`
	NativeBalance    *decimal.Decimal `json:"nativeBalance,omitempty"`
}

type TokenInfo struct {
	TokenId  *big.Int       `json:"tokenId"`
	Owner    common.Address `json:"owner"`
	URI      string         `json:"uri"`
	Approved common.Address `json:"approved"`
}
