package contract

import (
	"context"
	"math/big"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var contractAddress = common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3")

// fakeBackend answers contract calls from canned return values and records sent transactions.
// Methods it doesn't override panic through the nil embedded interfaces.
type fakeBackend struct {
	bind.ContractBackend
	bind.DeployBackend

	mu       sync.Mutex
	returns  map[string][]any
	failures map[string]error
	sendErr  error
	sent     []*types.Transaction
	receipts map[common.Hash]*types.Receipt
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		returns:  map[string][]any{},
		failures: map[string]error{},
		receipts: map[common.Hash]*types.Receipt{},
	}
}

func (f *fakeBackend) CodeAt(ctx context.Context, contract common.Address, blockNumber *big.Int) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (f *fakeBackend) CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	method, err := ABI.MethodById(call.Data[:4])
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := f.failures[method.Name]; err != nil {
		return nil, err
	}
	values, ok := f.returns[method.Name]
	if !ok {
		return nil, errors.Errorf("execution reverted: no canned return for %s", method.Name)
	}
	return method.Outputs.Pack(values...)
}

func (f *fakeBackend) HeaderByNumber(ctx context.Context, number *big.Int) (*types.Header, error) {
	return &types.Header{Number: big.NewInt(1), BaseFee: big.NewInt(1_000_000_000)}, nil
}

func (f *fakeBackend) PendingCodeAt(ctx context.Context, account common.Address) ([]byte, error) {
	return []byte{0x60, 0x80}, nil
}

func (f *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return uint64(len(f.sent)), nil
}

func (f *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(2_000_000_000), nil
}

func (f *fakeBackend) SuggestGasTipCap(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (f *fakeBackend) EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error) {
	return 300_000, nil
}

func (f *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, tx)
	return nil
}

func (f *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if receipt, ok := f.receipts[txHash]; ok {
		return receipt, nil
	}
	return nil, ethereum.NotFound
}

// claimedLog packs a PokemonClaimed log the way the contract emits it.
func claimedLog(claimer common.Address, tokenId, pokemonId int64, name string, isFirstClaim bool) *types.Log {
	event := ABI.Events[EventPokemonClaimed]
	data, err := event.Inputs.NonIndexed().Pack(name, isFirstClaim)
	if err != nil {
		panic(err)
	}
	return &types.Log{
		Address: contractAddress,
		Topics: []common.Hash{
			event.ID,
			common.BytesToHash(claimer.Bytes()),
			common.BigToHash(big.NewInt(tokenId)),
			common.BigToHash(big.NewInt(pokemonId)),
		},
		Data: data,
	}
}
