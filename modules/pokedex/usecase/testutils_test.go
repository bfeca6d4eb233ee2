package usecase

import (
	"context"
	"math/big"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/pkg/wallet"
	"github.com/stretchr/testify/require"
)

var errUserRejected = errors.New("user rejected the request")

// fakeChain is an in-memory PokemonNFT contract.
type fakeChain struct {
	mu          sync.Mutex
	metadata    map[int64]*entity.OnchainPokemon
	claims      map[int64]uint64
	claimed     map[common.Address]map[int64]bool
	owners      map[string]common.Address
	balances    map[common.Address]uint64
	events      map[common.Hash]*entity.ClaimedEvent
	minted      uint64
	nonce       uint64
	ownerOf     *common.Address
	waitErr     error
	dropEvents  bool
	readErr     error
	revert      bool
	submissions int
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		metadata: make(map[int64]*entity.OnchainPokemon),
		claims:   make(map[int64]uint64),
		claimed:  make(map[common.Address]map[int64]bool),
		owners:   make(map[string]common.Address),
		balances: make(map[common.Address]uint64),
		events:   make(map[common.Hash]*entity.ClaimedEvent),
	}
}

func (f *fakeChain) IsPokemonInitialized(ctx context.Context, pokemonId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.readErr != nil {
		return false, f.readErr
	}
	_, ok := f.metadata[pokemonId]
	return ok, nil
}

func (f *fakeChain) GetTotalClaims(ctx context.Context, pokemonId int64) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.claims[pokemonId], nil
}

func (f *fakeChain) GetPokemonMetadata(ctx context.Context, pokemonId int64) (*entity.OnchainPokemon, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.metadata[pokemonId], nil
}

func (f *fakeChain) HasClaimed(ctx context.Context, wallet common.Address, pokemonId int64) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.claimed[wallet][pokemonId], nil
}

func (f *fakeChain) GetTotalMinted(ctx context.Context) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.minted, nil
}

func (f *fakeChain) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.balances[owner], nil
}

func (f *fakeChain) OwnerOf(ctx context.Context, tokenId *big.Int) (common.Address, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.ownerOf != nil {
		return *f.ownerOf, nil
	}
	owner, ok := f.owners[tokenId.String()]
	if !ok {
		return common.Address{}, errors.New("execution reverted: ERC721NonexistentToken")
	}
	return owner, nil
}

func (f *fakeChain) TokenURI(ctx context.Context, tokenId *big.Int) (string, error) {
	return "data:application/json;base64,token-" + tokenId.String(), nil
}

func (f *fakeChain) GetApproved(ctx context.Context, tokenId *big.Int) (common.Address, error) {
	return common.Address{}, nil
}

func (f *fakeChain) newTx() *types.Transaction {
	tx := types.NewTx(&types.LegacyTx{Nonce: f.nonce, Gas: 21000, GasPrice: big.NewInt(1)})
	f.nonce++
	return tx
}

func (f *fakeChain) ClaimPokemon(opts *bind.TransactOpts, pokemonId int64, pokemon entity.OnchainPokemon) (*types.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.submissions++
	if f.claimed[opts.From][pokemonId] {
		return nil, errors.New("execution reverted: Already claimed this Pokemon")
	}

	_, initialized := f.metadata[pokemonId]
	if !initialized {
		f.metadata[pokemonId] = &pokemon
	}
	if f.claimed[opts.From] == nil {
		f.claimed[opts.From] = make(map[int64]bool)
	}
	f.claimed[opts.From][pokemonId] = true
	f.claims[pokemonId]++
	f.minted++
	f.balances[opts.From]++
	tokenId := new(big.Int).SetUint64(f.minted)
	f.owners[tokenId.String()] = opts.From

	tx := f.newTx()
	f.events[tx.Hash()] = &entity.ClaimedEvent{
		Claimer:      opts.From,
		TokenId:      tokenId,
		PokemonId:    big.NewInt(pokemonId),
		Name:         pokemon.Name,
		IsFirstClaim: !initialized,
	}
	return tx, nil
}

func (f *fakeChain) Approve(opts *bind.TransactOpts, to common.Address, tokenId *big.Int) (*types.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.newTx(), nil
}

func (f *fakeChain) SetApprovalForAll(opts *bind.TransactOpts, operator common.Address, approved bool) (*types.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.newTx(), nil
}

func (f *fakeChain) TransferFrom(opts *bind.TransactOpts, from, to common.Address, tokenId *big.Int) (*types.Transaction, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.owners[tokenId.String()] != from {
		return nil, errors.New("execution reverted: ERC721IncorrectOwner")
	}
	f.owners[tokenId.String()] = to
	f.balances[from]--
	f.balances[to]++
	return f.newTx(), nil
}

func (f *fakeChain) SafeTransferFrom(opts *bind.TransactOpts, from, to common.Address, tokenId *big.Int, data []byte) (*types.Transaction, error) {
	return f.TransferFrom(opts, from, to, tokenId)
}

func (f *fakeChain) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.waitErr != nil {
		return nil, f.waitErr
	}
	status := types.ReceiptStatusSuccessful
	if f.revert {
		status = types.ReceiptStatusFailed
	}
	return &types.Receipt{Status: status, TxHash: tx.Hash(), BlockNumber: big.NewInt(int64(f.nonce))}, nil
}

func (f *fakeChain) FindClaimedEvent(receipt *types.Receipt) (*entity.ClaimedEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.dropEvents {
		return nil, nil
	}
	return f.events[receipt.TxHash], nil
}

// rejectingSigner models a wallet whose user declines every signature.
type rejectingSigner struct {
	address common.Address
}

func (s rejectingSigner) Address() (common.Address, error) {
	return s.address, nil
}

func (s rejectingSigner) TransactOpts(ctx context.Context) (*bind.TransactOpts, error) {
	return &bind.TransactOpts{
		From:    s.address,
		Context: ctx,
		Signer: func(common.Address, *types.Transaction) (*types.Transaction, error) {
			return nil, errUserRejected
		},
	}, nil
}

// rejectingChain wraps fakeChain and signs every claim with the caller's signer, as a real backend would.
type rejectingChain struct {
	*fakeChain
}

func (r rejectingChain) ClaimPokemon(opts *bind.TransactOpts, pokemonId int64, pokemon entity.OnchainPokemon) (*types.Transaction, error) {
	if _, err := opts.Signer(opts.From, types.NewTx(&types.LegacyTx{})); err != nil {
		return nil, err
	}
	return r.fakeChain.ClaimPokemon(opts, pokemonId, pokemon)
}

func newConnection(t *testing.T) *wallet.Connection {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	provider, err := wallet.NewKeyProvider("MetaMask", key, wallet.FlagMetaMask)
	require.NoError(t, err)
	conn, err := wallet.Connect(context.Background(), provider, big.NewInt(11155111))
	require.NoError(t, err)
	return conn
}

func pikachu() entity.Creature {
	return entity.Creature{
		Id:          25,
		Name:        "pikachu",
		Types:       []string{"electric"},
		ImageURL:    "https://img.example/25.png",
		Description: "When several of these POKéMON gather, their electricity could build and cause lightning storms.",
		Stats: []entity.Stat{
			{Name: entity.StatHP, Value: 35},
			{Name: entity.StatAttack, Value: 55},
			{Name: entity.StatDefense, Value: 40},
			{Name: entity.StatSpecialAttack, Value: 50},
			{Name: entity.StatSpecialDefense, Value: 50},
			{Name: entity.StatSpeed, Value: 90},
		},
		Abilities: []string{"static"},
	}
}

func creatureWithId(id int64) entity.Creature {
	c := pikachu()
	c.Id = id
	return c
}
