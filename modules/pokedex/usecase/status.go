package usecase

import (
	"context"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/pkg/decimals"
)

func chainReadError(err error, format string, args ...any) error {
	return errors.Mark(errors.Wrapf(err, format, args...), errs.ChainRead)
}

func validatePokemonId(id int64) error {
	if id <= 0 {
		return errors.Wrapf(errs.InvalidArgument, "invalid pokemon id %d", id)
	}
	return nil
}

func validateTokenId(tokenId *big.Int) error {
	if tokenId == nil || tokenId.Sign() < 0 {
		return errors.Wrap(errs.InvalidArgument, "invalid token id")
	}
	return nil
}

func (u *Usecase) IsInitialized(ctx context.Context, pokemonId int64) (bool, error) {
	if err := validatePokemonId(pokemonId); err != nil {
		return false, errors.WithStack(err)
	}
	initialized, err := u.nftDg.IsPokemonInitialized(ctx, pokemonId)
	if err != nil {
		return false, chainReadError(err, "failed to read initialization of pokemon #%d", pokemonId)
	}
	return initialized, nil
}

func (u *Usecase) TotalClaims(ctx context.Context, pokemonId int64) (uint64, error) {
	if err := validatePokemonId(pokemonId); err != nil {
		return 0, errors.WithStack(err)
	}
	claims, err := u.nftDg.GetTotalClaims(ctx, pokemonId)
	if err != nil {
		return 0, chainReadError(err, "failed to read total claims of pokemon #%d", pokemonId)
	}
	return claims, nil
}

func (u *Usecase) HasClaimed(ctx context.Context, wallet common.Address, pokemonId int64) (bool, error) {
	if err := validatePokemonId(pokemonId); err != nil {
		return false, errors.WithStack(err)
	}
	claimed, err := u.nftDg.HasClaimed(ctx, wallet, pokemonId)
	if err != nil {
		return false, chainReadError(err, "failed to read claim of %s on pokemon #%d", wallet, pokemonId)
	}
	return claimed, nil
}

// GetStatus reads the initialization flag, the claim counter and, only when initialized, the metadata.
// The reads are separate calls and may observe different blocks.
func (u *Usecase) GetStatus(ctx context.Context, pokemonId int64) (*entity.ChainStatus, error) {
	initialized, err := u.IsInitialized(ctx, pokemonId)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	claims, err := u.TotalClaims(ctx, pokemonId)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	status := &entity.ChainStatus{
		PokemonId:   pokemonId,
		Initialized: initialized,
		TotalClaims: claims,
	}
	if !initialized {
		return status, nil
	}
	metadata, err := u.nftDg.GetPokemonMetadata(ctx, pokemonId)
	if err != nil {
		return nil, chainReadError(err, "failed to read metadata of pokemon #%d", pokemonId)
	}
	status.Metadata = metadata
	return status, nil
}

func (u *Usecase) TotalMinted(ctx context.Context) (uint64, error) {
	minted, err := u.nftDg.GetTotalMinted(ctx)
	if err != nil {
		return 0, chainReadError(err, "failed to read total minted")
	}
	return minted, nil
}

func (u *Usecase) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	balance, err := u.nftDg.BalanceOf(ctx, owner)
	if err != nil {
		return 0, chainReadError(err, "failed to read balance of %s", owner)
	}
	return balance, nil
}

func (u *Usecase) OwnerOf(ctx context.Context, tokenId *big.Int) (common.Address, error) {
	if err := validateTokenId(tokenId); err != nil {
		return common.Address{}, errors.WithStack(err)
	}
	owner, err := u.nftDg.OwnerOf(ctx, tokenId)
	if err != nil {
		return common.Address{}, chainReadError(err, "failed to read owner of token %s", tokenId)
	}
	return owner, nil
}

func (u *Usecase) TokenURI(ctx context.Context, tokenId *big.Int) (string, error) {
	if err := validateTokenId(tokenId); err != nil {
		return "", errors.WithStack(err)
	}
	uri, err := u.nftDg.TokenURI(ctx, tokenId)
	if err != nil {
		return "", chainReadError(err, "failed to read uri of token %s", tokenId)
	}
	return uri, nil
}

func (u *Usecase) Approved(ctx context.Context, tokenId *big.Int) (common.Address, error) {
	if err := validateTokenId(tokenId); err != nil {
		return common.Address{}, errors.WithStack(err)
	}
	approved, err := u.nftDg.GetApproved(ctx, tokenId)
	if err != nil {
		return common.Address{}, chainReadError(err, "failed to read approval of token %s", tokenId)
	}
	return approved, nil
}

// GetToken reads owner, uri and approved address of tokenId.
func (u *Usecase) GetToken(ctx context.Context, tokenId *big.Int) (*entity.TokenInfo, error) {
	owner, err := u.OwnerOf(ctx, tokenId)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	uri, err := u.TokenURI(ctx, tokenId)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	approved, err := u.Approved(ctx, tokenId)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return &entity.TokenInfo{TokenId: tokenId, Owner: owner, URI: uri, Approved: approved}, nil
}

// GetWallet summarizes the NFT balance and, when a node is wired, the native balance of wallet.
func (u *Usecase) GetWallet(ctx context.Context, wallet common.Address) (*entity.WalletSummary, error) {
	balance, err := u.BalanceOf(ctx, wallet)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	summary := &entity.WalletSummary{Address: wallet, NFTBalance: balance}
	if u.balances == nil {
		return summary, nil
	}
	wei, err := u.balances.BalanceAt(ctx, wallet, nil)
	if err != nil {
		return nil, chainReadError(err, "failed to read native balance of %s", wallet)
	}
	ether := decimals.WeiToEther(wei)
	summary.NativeBalanceWei = wei
	summary.NativeBalance = &ether
	return summary, nil
}
