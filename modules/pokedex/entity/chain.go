package entity

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// OnchainPokemon mirrors the contract's Pokemon struct. Field names follow the ABI components.
type OnchainPokemon struct {
	PokemonId   *big.Int `json:"pokemonId"`
	Name        string   `json:"name"`
	PokemonType string   `json:"pokemonType"`
	ImageUrl    string   `json:"imageUrl"`
	Description string   `json:"description"`
	Hp          *big.Int `json:"hp"`
	Attack      *big.Int `json:"attack"`
	Defense     *big.Int `json:"defense"`
	SpAtk       *big.Int `json:"spAtk"`
	SpDef       *big.Int `json:"spDef"`
	Speed       *big.Int `json:"speed"`
	Abilities   []string `json:"abilities"`
}

// ChainStatus is a point-in-time projection of the contract state of one creature.
// Metadata is nil whenever Initialized is false.
type ChainStatus struct {
	PokemonId   int64           `json:"pokemonId"`
	Initialized bool            `json:"initialized"`
	TotalClaims uint64          `json:"totalClaims"`
	Metadata    *OnchainPokemon `json:"metadata,omitempty"`
}

// ClaimedEvent is the decoded PokemonClaimed log.
type ClaimedEvent struct {
	Claimer      common.Address
	TokenId      *big.Int
	PokemonId    *big.Int
	Name         string
	IsFirstClaim bool
}

// InitializedEvent is the decoded PokemonInitialized log.
type InitializedEvent struct {
	PokemonId   *big.Int
	Name        string
	PokemonType string
}
