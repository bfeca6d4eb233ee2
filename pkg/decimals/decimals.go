// Package decimals converts between on-chain integer amounts and human readable decimals.
package decimals

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/shopspring/decimal"
)

// EtherDecimals is the number of decimals of the native currency of every supported network.
const EtherDecimals = 18

// ToDecimal scales an integer amount down by 10^decimals. A nil amount is zero.
func ToDecimal(amount *big.Int, decimals int32) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(amount, -decimals)
}

// WeiToEther formats a wei balance in ether.
func WeiToEther(wei *big.Int) decimal.Decimal {
	return ToDecimal(wei, EtherDecimals)
}

// ToBigInt scales a decimal string up by 10^decimals. Fractions below the smallest unit are rejected.
func ToBigInt(amount string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid amount %q", amount)
	}
	scaled := d.Shift(decimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return nil, errors.Wrapf(errs.InvalidArgument, "amount %q has more than %d decimals", amount, decimals)
	}
	return scaled.BigInt(), nil
}
