package usecase

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/datagateway/mocks"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestListCreatures(t *testing.T) {
	ctx := context.Background()
	creatures := mocks.NewCreatureDataGateway(t)
	creatures.EXPECT().ListCreatureIds(mock.Anything, 3, 0).Return([]int64{1, 2, 3}, 1302, nil)
	bulbasaur, ivysaur := creatureWithId(1), creatureWithId(3)
	creatures.EXPECT().FetchCreatureBatch(mock.Anything, []int64{1, 2, 3}).Return([]entity.BatchResult{
		{Id: 1, Creature: &bulbasaur},
		{Id: 2, Err: errors.Wrap(errs.Network, "connection reset")},
		{Id: 3, Creature: &ivysaur},
	})

	u := New(creatures, newFakeChain())
	page, err := u.ListCreatures(ctx, 3, 0)
	require.NoError(t, err)

	assert.Len(t, page.Items, 2)
	assert.Equal(t, int64(1), page.Items[0].Id)
	assert.Equal(t, int64(3), page.Items[1].Id)
	require.Len(t, page.Failed, 1)
	assert.Equal(t, int64(2), page.Failed[0].Id)
	assert.Equal(t, 1302, page.Total)
	assert.True(t, page.HasMore)
}

func TestListCreaturesLastPage(t *testing.T) {
	ctx := context.Background()
	creatures := mocks.NewCreatureDataGateway(t)
	creatures.EXPECT().ListCreatureIds(mock.Anything, 20, 1300).Return([]int64{1301, 1302}, 1302, nil)
	creatures.EXPECT().FetchCreatureBatch(mock.Anything, []int64{1301, 1302}).Return([]entity.BatchResult{
		{Id: 1301, Err: errors.Wrap(errs.NotFound, "gone")},
		{Id: 1302, Err: errors.Wrap(errs.NotFound, "gone")},
	})

	u := New(creatures, newFakeChain())
	page, err := u.ListCreatures(ctx, 20, 1300)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Len(t, page.Failed, 2)
	assert.False(t, page.HasMore)
}

func TestListCreaturesError(t *testing.T) {
	creatures := mocks.NewCreatureDataGateway(t)
	creatures.EXPECT().ListCreatureIds(mock.Anything, 0, 0).Return(nil, 0, errors.WithStack(errs.InvalidArgument))

	u := New(creatures, newFakeChain())
	_, err := u.ListCreatures(context.Background(), 0, 0)
	assert.True(t, errors.Is(err, errs.InvalidArgument))
}

func TestGetCreatureNotFound(t *testing.T) {
	creatures := mocks.NewCreatureDataGateway(t)
	creatures.EXPECT().FetchCreature(mock.Anything, int64(99999)).Return(nil, errors.Wrap(errs.NotFound, "pokemon 99999"))

	u := New(creatures, newFakeChain())
	_, err := u.GetCreature(context.Background(), 99999)
	assert.True(t, errors.Is(err, errs.NotFound))
}
