package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gaze-network/pokedex-nft/pkg/logger/slogx"
	"github.com/samber/lo"
)

// PipelineError annotates the first failure of a pipeline run with the stage it happened in.
type PipelineError struct {
	Stage     entity.Stage
	PokemonId int64
	Err       error

	// Outcome is set when the failure happened after the claim was submitted.
	Outcome *entity.ClaimOutcome
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline of pokemon #%d failed at %s: %v", e.PokemonId, e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

func (u *Usecase) publish(ctx context.Context, event entity.StageEvent) {
	if u.progress == nil {
		return
	}
	event.Time = time.Now()
	if err := u.progress.Send(ctx, event); err != nil {
		logger.DebugContext(ctx, "Dropped pipeline progress", slogx.String("stage", string(event.Stage)), slogx.Error(err))
	}
}

func runStage[T any](ctx context.Context, u *Usecase, pokemonId int64, stage entity.Stage, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	fail := func(err error) (T, error) {
		pipelineErr := &PipelineError{Stage: stage, PokemonId: pokemonId, Err: err}
		u.publish(ctx, entity.StageEvent{PokemonId: pokemonId, Stage: entity.StageFailed, FailedAt: stage, Err: pipelineErr})
		logger.ErrorContext(ctx, "Claim pipeline failed", err, slogx.Int64("pokemonId", pokemonId), slogx.String("stage", string(stage)))
		return zero, pipelineErr
	}

	if err := ctx.Err(); err != nil {
		return fail(errors.WithStack(err))
	}
	u.publish(ctx, entity.StageEvent{PokemonId: pokemonId, Stage: stage})

	stageCtx := ctx
	if timeout := u.pipeline.StageTimeouts[stage]; timeout > 0 {
		var cancel context.CancelFunc
		stageCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	result, err := fn(stageCtx)
	if err != nil {
		if ctx.Err() == nil && errors.Is(stageCtx.Err(), context.DeadlineExceeded) {
			err = errors.Mark(errors.Wrapf(err, "stage timed out after %s", u.pipeline.StageTimeouts[stage]), errs.Timeout)
		}
		return fail(err)
	}
	return result, nil
}

type userClaimState struct {
	address    common.Address
	balance    uint64
	hasClaimed bool
}

type verification struct {
	balance uint64
	owner   common.Address
	uri     string
}

// RunPipeline fetches creature id, checks it on chain, claims it with signer and verifies the minted token.
//
// The first failing stage aborts the run with a *PipelineError and no partial result.
// Once SUBMITTING has sent a transaction it is never cancelled: a failure after that point carries
// the claim outcome in PipelineError.Outcome. A claim confirmed on chain stays successful when
// VERIFYING fails, the failure is reported in its Warning.
func (u *Usecase) RunPipeline(ctx context.Context, signer Signer, id int64) (*entity.PipelineResult, error) {
	ctx = logger.WithContext(ctx, slogx.Int64("pokemonId", id))

	creature, err := runStage(ctx, u, id, entity.StageFetching, func(ctx context.Context) (*entity.Creature, error) {
		return u.GetCreature(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	status, err := runStage(ctx, u, id, entity.StageCheckingStatus, func(ctx context.Context) (*entity.ChainStatus, error) {
		return u.GetStatus(ctx, id)
	})
	if err != nil {
		return nil, err
	}

	user, err := runStage(ctx, u, id, entity.StageCheckingUserClaim, func(ctx context.Context) (*userClaimState, error) {
		address, err := signer.Address()
		if err != nil {
			return nil, errors.WithStack(err)
		}
		balance, err := u.BalanceOf(ctx, address)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		hasClaimed, err := u.HasClaimed(ctx, address, id)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		// the contract is the authority on duplicate claims, submission still goes ahead
		if hasClaimed {
			logger.WarnContext(ctx, "Wallet has already claimed this pokemon", slogx.Stringer("wallet", address))
		}
		return &userClaimState{address: address, balance: balance, hasClaimed: hasClaimed}, nil
	})
	if err != nil {
		return nil, err
	}

	tx, err := runStage(ctx, u, id, entity.StageSubmitting, func(ctx context.Context) (*types.Transaction, error) {
		return u.SubmitClaim(ctx, signer, *creature)
	})
	if err != nil {
		u.recordClaim(ctx, user.address, entity.ClaimOutcome{PokemonId: id, Error: err.Error()})
		return nil, err
	}

	// a cancelled context only stops waiting, the submitted transaction may still be mined
	var confirmed entity.ClaimOutcome
	outcome, err := runStage(ctx, u, id, entity.StageConfirming, func(ctx context.Context) (entity.ClaimOutcome, error) {
		outcome, err := u.ConfirmClaim(ctx, id, tx)
		confirmed = outcome
		return outcome, errors.WithStack(err)
	})
	if err != nil {
		var pipelineErr *PipelineError
		if errors.As(err, &pipelineErr) {
			if confirmed.TxHash == nil {
				confirmed = entity.ClaimOutcome{PokemonId: id, TxHash: lo.ToPtr(tx.Hash()), UnknownOutcome: true}
			}
			confirmed.Error = pipelineErr.Err.Error()
			pipelineErr.Outcome = &confirmed
			u.recordClaim(ctx, user.address, confirmed)
		}
		return nil, err
	}
	u.recordClaim(ctx, user.address, outcome)

	verified, err := runStage(ctx, u, id, entity.StageVerifying, func(ctx context.Context) (*verification, error) {
		balance, err := u.BalanceOf(ctx, user.address)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		result := &verification{balance: balance}
		if outcome.TokenId == nil {
			return result, nil
		}
		owner, err := u.OwnerOf(ctx, outcome.TokenId)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		if owner != user.address {
			return nil, errors.Wrapf(errs.OwnershipMismatch, "token %s is owned by %s, expected %s", outcome.TokenId, owner, user.address)
		}
		uri, err := u.TokenURI(ctx, outcome.TokenId)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		result.owner = owner
		result.uri = uri
		return result, nil
	})
	if err != nil {
		var pipelineErr *PipelineError
		if errors.As(err, &pipelineErr) {
			// the claim is on chain, only reading it back failed
			unverified := outcome
			unverified.Warning = joinWarnings(outcome.Warning, "verification failed: "+pipelineErr.Err.Error())
			pipelineErr.Outcome = &unverified
		}
		return nil, err
	}

	u.publish(ctx, entity.StageEvent{PokemonId: id, Stage: entity.StageDone})
	logger.InfoContext(ctx, "Claim pipeline completed",
		slogx.Stringer("wallet", user.address),
		slogx.BigInt("tokenId", outcome.TokenId),
	)
	return &entity.PipelineResult{
		Creature:         *creature,
		Status:           *status,
		WalletAddress:    user.address,
		HasClaimedBefore: user.hasClaimed,
		BalanceBefore:    user.balance,
		BalanceAfter:     verified.balance,
		Claim:            outcome,
		TokenOwner:       verified.owner,
		TokenURI:         verified.uri,
	}, nil
}

func joinWarnings(warnings ...string) string {
	return strings.Join(lo.Compact(warnings), "; ")
}

// ClaimMany runs the pipeline for every id, one after another, waiting ClaimDelay between items.
// A failing id never aborts the rest. Outcomes are aligned with ids.
func (u *Usecase) ClaimMany(ctx context.Context, signer Signer, ids []int64) []entity.ClaimOutcome {
	outcomes := make([]entity.ClaimOutcome, len(ids))
	for i, id := range ids {
		if i > 0 && u.pipeline.ClaimDelay > 0 {
			select {
			case <-ctx.Done():
			case <-time.After(u.pipeline.ClaimDelay):
			}
		}
		if err := ctx.Err(); err != nil {
			outcomes[i] = entity.ClaimOutcome{PokemonId: id, Error: errors.Wrap(err, "claim cancelled").Error()}
			continue
		}

		result, err := u.RunPipeline(ctx, signer, id)
		if err != nil {
			var pipelineErr *PipelineError
			if errors.As(err, &pipelineErr) && pipelineErr.Outcome != nil {
				outcome := *pipelineErr.Outcome
				if !outcome.Success {
					outcome.Error = err.Error()
				}
				outcomes[i] = outcome
				continue
			}
			outcomes[i] = entity.ClaimOutcome{PokemonId: id, Error: err.Error()}
			continue
		}
		outcomes[i] = result.Claim
	}

	successful := lo.CountBy(outcomes, func(o entity.ClaimOutcome) bool { return o.Success })
	logger.InfoContext(ctx, fmt.Sprintf("Claimed %d/%d successful", successful, len(outcomes)))
	return outcomes
}
