package postgres

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/repository/postgres/gen"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/samber/lo"
)

func bigIntFromNumeric(src pgtype.Numeric) (*big.Int, error) {
	if !src.Valid {
		return nil, nil
	}
	bytes, err := src.MarshalJSON()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	result, ok := new(big.Int).SetString(string(bytes), 10)
	if !ok {
		return nil, errors.Errorf("numeric %s is not an integer", bytes)
	}
	return result, nil
}

func numericFromBigInt(src *big.Int) (pgtype.Numeric, error) {
	if src == nil {
		return pgtype.Numeric{}, nil
	}
	var result pgtype.Numeric
	if err := result.UnmarshalJSON([]byte(src.String())); err != nil {
		return pgtype.Numeric{}, errors.WithStack(err)
	}
	return result, nil
}

// walletKey is the stored form of an address. Lookups must use the same form.
func walletKey(wallet common.Address) string {
	return strings.ToLower(wallet.Hex())
}

func mapClaimRecordTypeToParams(src entity.ClaimRecord) (gen.CreateClaimRecordParams, error) {
	tokenId, err := numericFromBigInt(src.TokenId)
	if err != nil {
		return gen.CreateClaimRecordParams{}, errors.Wrap(err, "failed to parse token id")
	}
	var txHash pgtype.Text
	if src.TxHash != nil {
		txHash = pgtype.Text{String: src.TxHash.Hex(), Valid: true}
	}
	var isFirstClaim pgtype.Bool
	if src.IsFirstClaim != nil {
		isFirstClaim = pgtype.Bool{Bool: *src.IsFirstClaim, Valid: true}
	}
	return gen.CreateClaimRecordParams{
		PokemonID:      src.PokemonId,
		Wallet:         walletKey(src.Wallet),
		Success:        src.Success,
		TokenID:        tokenId,
		TxHash:         txHash,
		IsFirstClaim:   isFirstClaim,
		UnknownOutcome: src.UnknownOutcome,
		Warning:        src.Warning,
		Error:          src.Error,
	}, nil
}

func mapClaimRecordModelToType(src gen.PokedexClaim) (entity.ClaimRecord, error) {
	tokenId, err := bigIntFromNumeric(src.TokenID)
	if err != nil {
		return entity.ClaimRecord{}, errors.Wrap(err, "failed to parse token id")
	}
	if !common.IsHexAddress(src.Wallet) {
		return entity.ClaimRecord{}, errors.Errorf("invalid wallet address %q", src.Wallet)
	}
	record := entity.ClaimRecord{
		Id:             src.ID,
		PokemonId:      src.PokemonID,
		Wallet:         common.HexToAddress(src.Wallet),
		Success:        src.Success,
		TokenId:        tokenId,
		UnknownOutcome: src.UnknownOutcome,
		Warning:        src.Warning,
		Error:          src.Error,
	}
	if src.TxHash.Valid {
		record.TxHash = lo.ToPtr(common.HexToHash(src.TxHash.String))
	}
	if src.IsFirstClaim.Valid {
		record.IsFirstClaim = lo.ToPtr(src.IsFirstClaim.Bool)
	}
	if src.CreatedAt.Valid {
		record.CreatedAt = src.CreatedAt.Time.UTC()
	}
	return record, nil
}

func mapClaimRecordModelsToTypes(src []gen.PokedexClaim) ([]entity.ClaimRecord, error) {
	records := make([]entity.ClaimRecord, 0, len(src))
	for _, model := range src {
		record, err := mapClaimRecordModelToType(model)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to map claim record %d", model.ID)
		}
		records = append(records, record)
	}
	return records, nil
}
