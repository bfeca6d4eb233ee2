package entity

import (
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ClaimOutcome is the result of one claim attempt.
//
// Success with a TokenId, or failure with Error, never both. Annotated cases:
// Success without TokenId carries a Warning (confirmed, but no readable claim event).
// Success with a TokenId and a Warning was confirmed but could not be verified afterwards.
// UnknownOutcome marks a submitted transaction whose inclusion was never observed.
type ClaimOutcome struct {
	PokemonId      int64        `json:"pokemonId"`
	Success        bool         `json:"success"`
	TokenId        *big.Int     `json:"tokenId,omitempty"`
	TxHash         *common.Hash `json:"transactionHash,omitempty"`
	IsFirstClaim   *bool        `json:"isFirstClaim,omitempty"`
	Warning        string       `json:"warning,omitempty"`
	Error          string       `json:"error,omitempty"`
	UnknownOutcome bool         `json:"unknownOutcome,omitempty"`
}

// PipelineResult aggregates every stage of a successful claim pipeline run.
type PipelineResult struct {
	Creature         Creature       `json:"creature"`
	Status           ChainStatus    `json:"status"`
	WalletAddress    common.Address `json:"walletAddress"`
	HasClaimedBefore bool           `json:"hasClaimedBefore"`
	BalanceBefore    uint64         `json:"balanceBefore"`
	BalanceAfter     uint64         `json:"balanceAfter"`
	Claim            ClaimOutcome   `json:"claim"`
	TokenOwner       common.Address `json:"tokenOwner"`
	TokenURI         string         `json:"tokenUri"`
}

// ClaimRecord is a persisted claim attempt.
type ClaimRecord struct {
	Id             int64          `json:"id"`
	PokemonId      int64          `json:"pokemonId"`
	Wallet         common.Address `json:"wallet"`
	Success        bool           `json:"success"`
	TokenId        *big.Int       `json:"tokenId,omitempty"`
	TxHash         *common.Hash   `json:"transactionHash,omitempty"`
	IsFirstClaim   *bool          `json:"isFirstClaim,omitempty"`
	UnknownOutcome bool           `json:"unknownOutcome"`
	Warning        string         `json:"warning,omitempty"`
	Error          string         `json:"error,omitempty"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// NewClaimRecord builds the record persisted for an outcome of wallet.
func NewClaimRecord(wallet common.Address, outcome ClaimOutcome) ClaimRecord {
	return ClaimRecord{
		PokemonId:      outcome.PokemonId,
		Wallet:         wallet,
		Success:        outcome.Success,
		TokenId:        outcome.TokenId,
		TxHash:         outcome.TxHash,
		IsFirstClaim:   outcome.IsFirstClaim,
		UnknownOutcome: outcome.UnknownOutcome,
		Warning:        outcome.Warning,
		Error:          outcome.Error,
	}
}
