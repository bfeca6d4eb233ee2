package httphandler

import (
	"github.com/gofiber/fiber/v2"
)

func (h *HttpHandler) Mount(router fiber.Router) error {
	r := router.Group("/v1/pokedex")

	r.Get("/creatures", h.GetCreatures)
	r.Post("/creatures/batch", h.GetCreaturesBatch)
	r.Get("/creatures/:id", h.GetCreature)
	r.Get("/creatures/:id/status", h.GetStatus)
	r.Get("/creatures/:id/claimed/:wallet", h.GetClaimed)
	r.Get("/tokens/:tokenId", h.GetToken)
	r.Get("/wallets/:wallet", h.GetWallet)
	if h.usecase.HasClaimHistory() {
		r.Get("/claims/wallet/:wallet", h.GetClaimsByWallet)
	}
	if h.signer != nil {
		r.Post("/claims", h.PostClaims)
	}
	return nil
}
