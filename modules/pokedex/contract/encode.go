package contract

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
)

// EncodeCreature converts a catalog record into the struct claimPokemon expects.
// Names, types and abilities are capitalized the way the contract stores them.
func EncodeCreature(c entity.Creature) (entity.OnchainPokemon, error) {
	if c.Id <= 0 {
		return entity.OnchainPokemon{}, errors.Wrapf(errs.Encoding, "invalid pokemon id %d", c.Id)
	}
	if c.Name == "" {
		return entity.OnchainPokemon{}, errors.Wrapf(errs.Encoding, "pokemon #%d has no name", c.Id)
	}
	if len(c.Stats) != len(entity.StatNames) {
		return entity.OnchainPokemon{}, errors.Wrapf(errs.Encoding, "pokemon #%d has %d stats, want %d", c.Id, len(c.Stats), len(entity.StatNames))
	}

	stats := make([]*big.Int, len(entity.StatNames))
	for i, name := range entity.StatNames {
		value, ok := c.Stat(name)
		if !ok {
			return entity.OnchainPokemon{}, errors.Wrapf(errs.Encoding, "pokemon #%d lacks stat %q", c.Id, name)
		}
		if value < 0 {
			return entity.OnchainPokemon{}, errors.Wrapf(errs.Encoding, "pokemon #%d has negative %s %d", c.Id, name, value)
		}
		stats[i] = big.NewInt(int64(value))
	}

	return entity.OnchainPokemon{
		PokemonId:   big.NewInt(c.Id),
		Name:        c.DisplayName(),
		PokemonType: c.DisplayType(),
		ImageUrl:    c.ImageURL,
		Description: c.Description,
		Hp:          stats[0],
		Attack:      stats[1],
		Defense:     stats[2],
		SpAtk:       stats[3],
		SpDef:       stats[4],
		Speed:       stats[5],
		Abilities:   c.DisplayAbilities(),
	}, nil
}
