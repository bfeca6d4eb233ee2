package usecase

import (
	"context"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/pokedex-nft/common/errs"
)

func (u *Usecase) send(ctx context.Context, signer Signer, action string, submit func(opts *bind.TransactOpts) (*types.Transaction, error)) (*types.Receipt, error) {
	opts, err := signer.TransactOpts(ctx)
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "wallet is not available"), errs.Submission)
	}
	tx, err := submit(opts)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to submit %s", action), errs.Submission)
	}
	receipt, err := u.nftDg.WaitMined(ctx, tx)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "failed to confirm %s, tx %s", action, tx.Hash()), errs.Confirmation)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return receipt, errors.Wrapf(errs.Submission, "%s reverted, tx %s", action, tx.Hash())
	}
	return receipt, nil
}

func (u *Usecase) Approve(ctx context.Context, signer Signer, to common.Address, tokenId *big.Int) (*types.Receipt, error) {
	if err := validateTokenId(tokenId); err != nil {
		return nil, errors.WithStack(err)
	}
	return u.send(ctx, signer, "approve", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return u.nftDg.Approve(opts, to, tokenId)
	})
}

func (u *Usecase) SetApprovalForAll(ctx context.Context, signer Signer, operator common.Address, approved bool) (*types.Receipt, error) {
	return u.send(ctx, signer, "setApprovalForAll", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return u.nftDg.SetApprovalForAll(opts, operator, approved)
	})
}

// Transfer moves tokenId from the signer to to.
func (u *Usecase) Transfer(ctx context.Context, signer Signer, to common.Address, tokenId *big.Int) (*types.Receipt, error) {
	if err := validateTokenId(tokenId); err != nil {
		return nil, errors.WithStack(err)
	}
	from, err := signer.Address()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "wallet is not available"), errs.Submission)
	}
	return u.send(ctx, signer, "transferFrom", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return u.nftDg.TransferFrom(opts, from, to, tokenId)
	})
}

// SafeTransfer is Transfer through safeTransferFrom, which checks that a contract receiver accepts the token.
func (u *Usecase) SafeTransfer(ctx context.Context, signer Signer, to common.Address, tokenId *big.Int, data []byte) (*types.Receipt, error) {
	if err := validateTokenId(tokenId); err != nil {
		return nil, errors.WithStack(err)
	}
	from, err := signer.Address()
	if err != nil {
		return nil, errors.Mark(errors.Wrap(err, "wallet is not available"), errs.Submission)
	}
	return u.send(ctx, signer, "safeTransferFrom", func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return u.nftDg.SafeTransferFrom(opts, from, to, tokenId, data)
	})
}
