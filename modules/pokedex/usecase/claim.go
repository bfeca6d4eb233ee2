package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/contract"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gaze-network/pokedex-nft/pkg/logger/slogx"
	"github.com/samber/lo"
)

const warningNoClaimedEvent = "transaction confirmed but no PokemonClaimed event could be read"

// Signer is the connected wallet claims are sent from. Satisfied by *wallet.Connection.
type Signer interface {
	Address() (common.Address, error)
	TransactOpts(ctx context.Context) (*bind.TransactOpts, error)
}

// SubmitClaim encodes creature and submits claimPokemon. The returned transaction is not yet mined.
func (u *Usecase) SubmitClaim(ctx context.Context, signer Signer, creature entity.Creature) (*types.Transaction, error) {
	pokemon, err := contract.EncodeCreature(creature)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to encode pokemon #%d", creature.Id)
	}
	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "wallet is not available"), errs.Submission)
	}
	tx, err := u.nftDg.ClaimPokemon(opts, creature.Id, pokemon)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to submit claim of pokemon #%d", creature.Id), errs.Submission)
	}
	logger.InfoContext(ctx, "Claim submitted",
		slogx.Int64("pokemonId", creature.Id),
		slogx.Stringer("txHash", tx.Hash()),
	)
	return tx, nil
}

// ConfirmClaim waits for tx and decodes its PokemonClaimed event.
//
// An error is returned alongside the outcome when the claim did not succeed. If waiting fails the
// outcome is marked unknown: the transaction may still be mined later.
func (u *Usecase) ConfirmClaim(ctx context.Context, pokemonId int64, tx *types.Transaction) (entity.ClaimOutcome, error) {
	outcome := entity.ClaimOutcome{
		PokemonId: pokemonId,
		TxHash:    lo.ToPtr(tx.Hash()),
	}

	receipt, err := u.nftDg.WaitMined(ctx, tx)
	if err != nil {
		err = errors.Mark(errors.Wrapf(err, "failed to confirm claim of pokemon #%d", pokemonId), errs.Confirmation)
		outcome.UnknownOutcome = true
		outcome.Error = err.Error()
		return outcome, err
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		err := errors.Wrapf(errs.Submission, "claim of pokemon #%d reverted in block %s", pokemonId, receipt.BlockNumber)
		outcome.Error = err.Error()
		return outcome, err
	}

	outcome.Success = true
	event, err := u.nftDg.FindClaimedEvent(receipt)
	if err != nil {
		logger.WarnContext(ctx, "Failed to decode claim event", slogx.Error(err), slogx.Stringer("txHash", tx.Hash()))
	}
	if event == nil {
		outcome.Warning = warningNoClaimedEvent
		return outcome, nil
	}
	outcome.TokenId = event.TokenId
	outcome.IsFirstClaim = lo.ToPtr(event.IsFirstClaim)
	return outcome, nil
}

// Claim submits and confirms a claim of creature. The outcome is always populated, even on error.
func (u *Usecase) Claim(ctx context.Context, signer Signer, creature entity.Creature) (entity.ClaimOutcome, error) {
	tx, err := u.SubmitClaim(ctx, signer, creature)
	if err != nil {
		return entity.ClaimOutcome{PokemonId: creature.Id, Error: err.Error()}, errors.WithStack(err)
	}
	outcome, err := u.ConfirmClaim(ctx, creature.Id, tx)
	return outcome, errors.WithStack(err)
}
