package usecase

import (
	"context"
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/datagateway/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClaim(t *testing.T) {
	ctx := context.Background()
	chain := newFakeChain()
	conn := newConnection(t)
	u := New(mocks.NewCreatureDataGateway(t), chain)

	outcome, err := u.Claim(ctx, conn, pikachu())
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Equal(t, int64(25), outcome.PokemonId)
	require.NotNil(t, outcome.TokenId)
	assert.Equal(t, "1", outcome.TokenId.String())
	require.NotNil(t, outcome.IsFirstClaim)
	assert.True(t, *outcome.IsFirstClaim)
	assert.NotNil(t, outcome.TxHash)
	assert.Empty(t, outcome.Warning)

	metadata := chain.metadata[25]
	require.NotNil(t, metadata)
	assert.Equal(t, "Pikachu", metadata.Name)
	assert.Equal(t, "Electric", metadata.PokemonType)
}

func TestClaimEncodingError(t *testing.T) {
	chain := newFakeChain()
	u := New(mocks.NewCreatureDataGateway(t), chain)

	creature := pikachu()
	creature.Stats = creature.Stats[:5]
	outcome, err := u.Claim(context.Background(), newConnection(t), creature)
	assert.True(t, errors.Is(err, errs.Encoding))
	assert.False(t, outcome.Success)
	assert.NotEmpty(t, outcome.Error)
	assert.Zero(t, chain.submissions)
}

func TestClaimRejectedByWallet(t *testing.T) {
	chain := newFakeChain()
	u := New(mocks.NewCreatureDataGateway(t), rejectingChain{chain})

	signer := rejectingSigner{address: common.HexToAddress("0x00000000000000000000000000000000000000b2")}
	outcome, err := u.Claim(context.Background(), signer, pikachu())
	assert.True(t, errors.Is(err, errs.Submission))
	assert.True(t, errors.Is(err, errUserRejected))
	assert.Contains(t, outcome.Error, "user rejected the request")
	assert.Zero(t, chain.minted)
}

func TestClaimDisconnectedWallet(t *testing.T) {
	conn := newConnection(t)
	conn.Disconnect()
	u := New(mocks.NewCreatureDataGateway(t), newFakeChain())

	_, err := u.Claim(context.Background(), conn, pikachu())
	assert.True(t, errors.Is(err, errs.Submission))
	assert.True(t, errors.Is(err, errs.Disconnected))
}

func TestClaimConfirmationFailure(t *testing.T) {
	chain := newFakeChain()
	chain.waitErr = errors.New("rpc timeout")
	u := New(mocks.NewCreatureDataGateway(t), chain)

	outcome, err := u.Claim(context.Background(), newConnection(t), pikachu())
	assert.True(t, errors.Is(err, errs.Confirmation))
	assert.False(t, outcome.Success)
	assert.True(t, outcome.UnknownOutcome)
	assert.NotNil(t, outcome.TxHash)
}

func TestClaimReverted(t *testing.T) {
	chain := newFakeChain()
	chain.revert = true
	u := New(mocks.NewCreatureDataGateway(t), chain)

	outcome, err := u.Claim(context.Background(), newConnection(t), pikachu())
	assert.True(t, errors.Is(err, errs.Submission))
	assert.False(t, outcome.Success)
	assert.False(t, outcome.UnknownOutcome)
}

func TestClaimWithoutEvent(t *testing.T) {
	chain := newFakeChain()
	chain.dropEvents = true
	u := New(mocks.NewCreatureDataGateway(t), chain)

	outcome, err := u.Claim(context.Background(), newConnection(t), pikachu())
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Nil(t, outcome.TokenId)
	assert.Equal(t, warningNoClaimedEvent, outcome.Warning)
}

func TestTransfer(t *testing.T) {
	ctx := context.Background()
	chain := newFakeChain()
	conn := newConnection(t)
	u := New(mocks.NewCreatureDataGateway(t), chain)

	outcome, err := u.Claim(ctx, conn, pikachu())
	require.NoError(t, err)

	recipient := common.HexToAddress("0x00000000000000000000000000000000000000c3")
	_, err = u.Transfer(ctx, conn, recipient, outcome.TokenId)
	require.NoError(t, err)

	owner, err := u.OwnerOf(ctx, outcome.TokenId)
	require.NoError(t, err)
	assert.Equal(t, recipient, owner)

	_, err = u.SafeTransfer(ctx, conn, recipient, outcome.TokenId, nil)
	assert.True(t, errors.Is(err, errs.Submission))

	_, err = u.Approve(ctx, conn, recipient, big.NewInt(-5))
	assert.True(t, errors.Is(err, errs.InvalidArgument))
}
