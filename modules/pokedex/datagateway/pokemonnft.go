package datagateway

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
)

type PokemonNFTDataGateway interface {
	PokemonNFTReader
	PokemonNFTWriter
	PokemonNFTReceipts
}

// PokemonNFTReader reads contract state. Reads are independent calls, two reads may observe different blocks.
type PokemonNFTReader interface {
	IsPokemonInitialized(ctx context.Context, pokemonId int64) (bool, error)
	GetTotalClaims(ctx context.Context, pokemonId int64) (uint64, error)
	GetPokemonMetadata(ctx context.Context, pokemonId int64) (*entity.OnchainPokemon, error)
	HasClaimed(ctx context.Context, wallet common.Address, pokemonId int64) (bool, error)
	GetTotalMinted(ctx context.Context) (uint64, error)
	BalanceOf(ctx context.Context, owner common.Address) (uint64, error)
	OwnerOf(ctx context.Context, tokenId *big.Int) (common.Address, error)
	TokenURI(ctx context.Context, tokenId *big.Int) (string, error)
	GetApproved(ctx context.Context, tokenId *big.Int) (common.Address, error)
}

// PokemonNFTWriter sends state-changing transactions. A returned transaction is only submitted, not mined.
type PokemonNFTWriter interface {
	ClaimPokemon(opts *bind.TransactOpts, pokemonId int64, pokemon entity.OnchainPokemon) (*types.Transaction, error)
	Approve(opts *bind.TransactOpts, to common.Address, tokenId *big.Int) (*types.Transaction, error)
	SetApprovalForAll(opts *bind.TransactOpts, operator common.Address, approved bool) (*types.Transaction, error)
	TransferFrom(opts *bind.TransactOpts, from, to common.Address, tokenId *big.Int) (*types.Transaction, error)
	SafeTransferFrom(opts *bind.TransactOpts, from, to common.Address, tokenId *big.Int, data []byte) (*types.Transaction, error)
}

type PokemonNFTReceipts interface {
	// WaitMined blocks until tx is included or ctx is done.
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)

	// FindClaimedEvent returns the PokemonClaimed event of receipt, or nil when the receipt has none.
	FindClaimedEvent(receipt *types.Receipt) (*entity.ClaimedEvent, error)
}

// NativeBalanceReader reads account balances in wei. Satisfied by *ethclient.Client.
type NativeBalanceReader interface {
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
}
