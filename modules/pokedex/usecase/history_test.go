package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/datagateway/mocks"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var ash = common.HexToAddress("0x00000000000000000000000000000000000a5400")

func TestClaimHistoryNotConfigured(t *testing.T) {
	u := New(mocks.NewCreatureDataGateway(t), newFakeChain())
	assert.False(t, u.HasClaimHistory())

	_, err := u.GetClaimHistory(context.Background(), ash, 10)
	assert.True(t, errors.Is(err, errs.Unsupported))
	_, err = u.GetClaimHistoryByPokemon(context.Background(), 25, 10)
	assert.True(t, errors.Is(err, errs.Unsupported))
}

func TestGetClaimHistory(t *testing.T) {
	history := mocks.NewClaimHistoryDataGateway(t)
	records := []entity.ClaimRecord{{Id: 2, PokemonId: 25, Wallet: ash, Success: true}}
	history.EXPECT().GetClaimRecordsByWallet(mock.Anything, ash, int32(DefaultHistoryLimit)).Return(records, nil).Twice()
	history.EXPECT().GetClaimRecordsByWallet(mock.Anything, ash, int32(5)).Return(records, nil).Once()

	u := New(mocks.NewCreatureDataGateway(t), newFakeChain(), WithClaimHistory(history))
	assert.True(t, u.HasClaimHistory())

	for _, limit := range []int32{0, DefaultHistoryLimit + 1} {
		result, err := u.GetClaimHistory(context.Background(), ash, limit)
		require.NoError(t, err)
		assert.Equal(t, records, result)
	}
	_, err := u.GetClaimHistory(context.Background(), ash, 5)
	require.NoError(t, err)
}

func TestGetClaimHistoryByPokemon(t *testing.T) {
	history := mocks.NewClaimHistoryDataGateway(t)
	history.EXPECT().GetClaimRecordsByPokemonId(mock.Anything, int64(25), int32(20)).Return(nil, errors.New("connection refused")).Once()

	u := New(mocks.NewCreatureDataGateway(t), newFakeChain(), WithClaimHistory(history))

	_, err := u.GetClaimHistoryByPokemon(context.Background(), 0, 20)
	assert.True(t, errors.Is(err, errs.InvalidArgument))

	_, err = u.GetClaimHistoryByPokemon(context.Background(), 25, 20)
	assert.ErrorContains(t, err, "connection refused")
}

func TestRecordClaimFailureKeepsOutcome(t *testing.T) {
	ctx := context.Background()
	history := mocks.NewClaimHistoryDataGateway(t)
	history.EXPECT().CreateClaimRecord(mock.Anything, mock.Anything).Return(nil, errors.New("disk full")).Once()

	u := New(newCatalog(t), newFakeChain(), WithClaimHistory(history))
	result, err := u.RunPipeline(ctx, newConnection(t), 25)
	require.NoError(t, err)
	assert.True(t, result.Claim.Success)
}

func TestRecordClaimSurvivesCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	history := mocks.NewClaimHistoryDataGateway(t)
	history.EXPECT().CreateClaimRecord(mock.Anything, mock.Anything).RunAndReturn(func(ctx context.Context, record entity.ClaimRecord) (*entity.ClaimRecord, error) {
		assert.NoError(t, ctx.Err())
		assert.Equal(t, ash, record.Wallet)
		assert.True(t, record.UnknownOutcome)
		return &record, nil
	}).Once()

	u := New(mocks.NewCreatureDataGateway(t), newFakeChain(), WithClaimHistory(history))
	cancel()
	u.recordClaim(ctx, ash, entity.ClaimOutcome{PokemonId: 25, UnknownOutcome: true})
}
