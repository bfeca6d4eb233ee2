package contract

import (
	"context"
	"math/big"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContract(t *testing.T) (*PokemonNFT, *fakeBackend) {
	t.Helper()
	backend := newFakeBackend()
	nft, err := New(contractAddress, backend)
	require.NoError(t, err)
	return nft, backend
}

func newTransactOpts(t *testing.T) *bind.TransactOpts {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	opts, err := bind.NewKeyedTransactorWithChainID(key, big.NewInt(1337))
	require.NoError(t, err)
	opts.Context = context.Background()
	return opts
}

func pikachuOnchain() entity.OnchainPokemon {
	return entity.OnchainPokemon{
		PokemonId:   big.NewInt(25),
		Name:        "Pikachu",
		PokemonType: "Electric",
		ImageUrl:    "https://img/artwork/25.png",
		Description: "Electric mouse.",
		Hp:          big.NewInt(35),
		Attack:      big.NewInt(55),
		Defense:     big.NewInt(40),
		SpAtk:       big.NewInt(50),
		SpDef:       big.NewInt(50),
		Speed:       big.NewInt(90),
		Abilities:   []string{"Static"},
	}
}

func TestNew(t *testing.T) {
	_, err := New(common.Address{}, newFakeBackend())
	assert.True(t, errors.Is(err, errs.InvalidArgument))
	_, err = New(contractAddress, nil)
	assert.True(t, errors.Is(err, errs.InvalidArgument))
}

func TestReads(t *testing.T) {
	ctx := context.Background()
	nft, backend := newTestContract(t)
	owner := common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")

	backend.returns["isPokemonInitialized"] = []any{true}
	backend.returns["getTotalClaims"] = []any{big.NewInt(3)}
	backend.returns["getPokemonMetadata"] = []any{pikachuOnchain()}
	backend.returns["hasClaimed"] = []any{false}
	backend.returns["getTotalMinted"] = []any{big.NewInt(12)}
	backend.returns["balanceOf"] = []any{big.NewInt(2)}
	backend.returns["ownerOf"] = []any{owner}
	backend.returns["tokenURI"] = []any{"data:application/json;base64,e30="}
	backend.returns["getApproved"] = []any{common.Address{}}

	initialized, err := nft.IsPokemonInitialized(ctx, 25)
	require.NoError(t, err)
	assert.True(t, initialized)

	claims, err := nft.GetTotalClaims(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), claims)

	metadata, err := nft.GetPokemonMetadata(ctx, 25)
	require.NoError(t, err)
	assert.Equal(t, pikachuOnchain(), *metadata)

	claimed, err := nft.HasClaimed(ctx, owner, 25)
	require.NoError(t, err)
	assert.False(t, claimed)

	minted, err := nft.GetTotalMinted(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(12), minted)

	balance, err := nft.BalanceOf(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), balance)

	gotOwner, err := nft.OwnerOf(ctx, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, owner, gotOwner)

	uri, err := nft.TokenURI(ctx, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, "data:application/json;base64,e30=", uri)

	approved, err := nft.GetApproved(ctx, big.NewInt(1))
	require.NoError(t, err)
	assert.Equal(t, common.Address{}, approved)
}

func TestReadFailureIsChainRead(t *testing.T) {
	nft, backend := newTestContract(t)
	backend.failures["getTotalClaims"] = errors.New("connection refused")

	_, err := nft.GetTotalClaims(context.Background(), 25)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.ChainRead))
	assert.Contains(t, err.Error(), "connection refused")
}

func TestClaimPokemonPacksStruct(t *testing.T) {
	nft, backend := newTestContract(t)
	opts := newTransactOpts(t)

	tx, err := nft.ClaimPokemon(opts, 25, pikachuOnchain())
	require.NoError(t, err)
	require.Len(t, backend.sent, 1)
	assert.Equal(t, tx.Hash(), backend.sent[0].Hash())
	assert.Equal(t, contractAddress, *tx.To())

	method, err := ABI.MethodById(tx.Data()[:4])
	require.NoError(t, err)
	assert.Equal(t, "claimPokemon", method.Name)

	args, err := method.Inputs.Unpack(tx.Data()[4:])
	require.NoError(t, err)
	require.Len(t, args, 2)
	assert.Equal(t, big.NewInt(25), args[0])
	assert.Equal(t, pikachuOnchain(), *abi.ConvertType(args[1], new(entity.OnchainPokemon)).(*entity.OnchainPokemon))
}

func TestTransactFailureIsSubmission(t *testing.T) {
	nft, backend := newTestContract(t)
	backend.sendErr = errors.New("insufficient funds for gas * price + value")

	_, err := nft.SafeTransferFrom(newTransactOpts(t), common.Address{1}, common.Address{2}, big.NewInt(1), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errs.Submission))
	assert.Equal(t, "insufficient funds for gas * price + value", err.Error())

	_, err = nft.Approve(nil, common.Address{2}, big.NewInt(1))
	assert.True(t, errors.Is(err, errs.InvalidArgument))
}

func TestWaitMined(t *testing.T) {
	nft, backend := newTestContract(t)
	tx, err := nft.SetApprovalForAll(newTransactOpts(t), common.Address{2}, true)
	require.NoError(t, err)

	t.Run("not yet mined", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := nft.WaitMined(ctx, tx)
		assert.True(t, errors.Is(err, errs.Confirmation))
	})
	t.Run("mined", func(t *testing.T) {
		backend.receipts[tx.Hash()] = &types.Receipt{Status: types.ReceiptStatusSuccessful, TxHash: tx.Hash()}
		receipt, err := nft.WaitMined(context.Background(), tx)
		require.NoError(t, err)
		assert.Equal(t, tx.Hash(), receipt.TxHash)
	})
}
