package httphandler

import (
	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	pokedexcommon "github.com/gaze-network/pokedex-nft/common"
	"github.com/gofiber/fiber/v2"
)

type getClaimedResult struct {
	PokemonId int64          `json:"pokemonId"`
	Wallet    common.Address `json:"wallet"`
	Claimed   bool           `json:"claimed"`
}

func (h *HttpHandler) GetClaimed(ctx *fiber.Ctx) (err error) {
	id, err := parsePokemonId(ctx.Params("id"))
	if err != nil {
		return errors.WithStack(err)
	}
	wallet, err := parseWallet(ctx.Params("wallet"))
	if err != nil {
		return errors.WithStack(err)
	}

	claimed, err := h.usecase.HasClaimed(ctx.UserContext(), wallet, id)
	if err != nil {
		return errors.Wrap(err, "error during HasClaimed")
	}
	return errors.WithStack(ctx.JSON(pokedexcommon.NewHttpResult(getClaimedResult{
		PokemonId: id,
		Wallet:    wallet,
		Claimed:   claimed,
	})))
}
