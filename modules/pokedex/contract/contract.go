// Package contract binds the PokemonNFT contract.
package contract

import (
	"bytes"
	"context"
	_ "embed"
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/datagateway"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
)

//go:embed PokemonNFT.abi.json
var abiJSON []byte

// ABI is the parsed interface of the PokemonNFT contract.
var ABI = func() abi.ABI {
	parsed, err := abi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		panic(errors.Wrap(err, "invalid PokemonNFT abi"))
	}
	return parsed
}()

const (
	EventPokemonClaimed     = "PokemonClaimed"
	EventPokemonInitialized = "PokemonInitialized"
)

// Backend is what a PokemonNFT binding needs from a node. Satisfied by *ethclient.Client.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
}

var _ datagateway.PokemonNFTDataGateway = (*PokemonNFT)(nil)

type PokemonNFT struct {
	address  common.Address
	backend  Backend
	contract *bind.BoundContract
}

func New(address common.Address, backend Backend) (*PokemonNFT, error) {
	if address == (common.Address{}) {
		return nil, errors.Wrap(errs.InvalidArgument, "contract address is required")
	}
	if backend == nil {
		return nil, errors.Wrap(errs.InvalidArgument, "backend is required")
	}
	return &PokemonNFT{
		address:  address,
		backend:  backend,
		contract: bind.NewBoundContract(address, ABI, backend, backend, backend),
	}, nil
}

func (p *PokemonNFT) Address() common.Address {
	return p.address
}

func (p *PokemonNFT) call(ctx context.Context, method string, params ...any) ([]any, error) {
	var out []any
	if err := p.contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "call %s", method), errs.ChainRead)
	}
	if len(out) == 0 {
		return nil, errors.Mark(errors.Errorf("call %s returned nothing", method), errs.ChainRead)
	}
	return out, nil
}

func (p *PokemonNFT) callBool(ctx context.Context, method string, params ...any) (bool, error) {
	out, err := p.call(ctx, method, params...)
	if err != nil {
		return false, err
	}
	return *abi.ConvertType(out[0], new(bool)).(*bool), nil
}

func (p *PokemonNFT) callUint64(ctx context.Context, method string, params ...any) (uint64, error) {
	out, err := p.call(ctx, method, params...)
	if err != nil {
		return 0, err
	}
	n := *abi.ConvertType(out[0], new(*big.Int)).(**big.Int)
	if !n.IsUint64() {
		return 0, errors.Mark(errors.Errorf("%s returned %v, out of range", method, n), errs.ChainRead)
	}
	return n.Uint64(), nil
}

func (p *PokemonNFT) callAddress(ctx context.Context, method string, params ...any) (common.Address, error) {
	out, err := p.call(ctx, method, params...)
	if err != nil {
		return common.Address{}, err
	}
	return *abi.ConvertType(out[0], new(common.Address)).(*common.Address), nil
}

func (p *PokemonNFT) IsPokemonInitialized(ctx context.Context, pokemonId int64) (bool, error) {
	return p.callBool(ctx, "isPokemonInitialized", big.NewInt(pokemonId))
}

func (p *PokemonNFT) GetTotalClaims(ctx context.Context, pokemonId int64) (uint64, error) {
	return p.callUint64(ctx, "getTotalClaims", big.NewInt(pokemonId))
}

func (p *PokemonNFT) GetPokemonMetadata(ctx context.Context, pokemonId int64) (*entity.OnchainPokemon, error) {
	out, err := p.call(ctx, "getPokemonMetadata", big.NewInt(pokemonId))
	if err != nil {
		return nil, err
	}
	metadata := *abi.ConvertType(out[0], new(entity.OnchainPokemon)).(*entity.OnchainPokemon)
	return &metadata, nil
}

func (p *PokemonNFT) HasClaimed(ctx context.Context, wallet common.Address, pokemonId int64) (bool, error) {
	return p.callBool(ctx, "hasClaimed", wallet, big.NewInt(pokemonId))
}

func (p *PokemonNFT) GetTotalMinted(ctx context.Context) (uint64, error) {
	return p.callUint64(ctx, "getTotalMinted")
}

func (p *PokemonNFT) BalanceOf(ctx context.Context, owner common.Address) (uint64, error) {
	return p.callUint64(ctx, "balanceOf", owner)
}

func (p *PokemonNFT) OwnerOf(ctx context.Context, tokenId *big.Int) (common.Address, error) {
	return p.callAddress(ctx, "ownerOf", tokenId)
}

func (p *PokemonNFT) TokenURI(ctx context.Context, tokenId *big.Int) (string, error) {
	out, err := p.call(ctx, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	return *abi.ConvertType(out[0], new(string)).(*string), nil
}

func (p *PokemonNFT) GetApproved(ctx context.Context, tokenId *big.Int) (common.Address, error) {
	return p.callAddress(ctx, "getApproved", tokenId)
}

// transact sends method. Every failure here happens before inclusion and is a submission error
// carrying the node or signer message unchanged.
func (p *PokemonNFT) transact(opts *bind.TransactOpts, method string, params ...any) (*types.Transaction, error) {
	if opts == nil {
		return nil, errors.Wrap(errs.InvalidArgument, "transact opts are required")
	}
	tx, err := p.contract.Transact(opts, method, params...)
	if err != nil {
		return nil, errors.Mark(errors.WithStack(err), errs.Submission)
	}
	return tx, nil
}

func (p *PokemonNFT) ClaimPokemon(opts *bind.TransactOpts, pokemonId int64, pokemon entity.OnchainPokemon) (*types.Transaction, error) {
	return p.transact(opts, "claimPokemon", big.NewInt(pokemonId), pokemon)
}

func (p *PokemonNFT) Approve(opts *bind.TransactOpts, to common.Address, tokenId *big.Int) (*types.Transaction, error) {
	return p.transact(opts, "approve", to, tokenId)
}

func (p *PokemonNFT) SetApprovalForAll(opts *bind.TransactOpts, operator common.Address, approved bool) (*types.Transaction, error) {
	return p.transact(opts, "setApprovalForAll", operator, approved)
}

func (p *PokemonNFT) TransferFrom(opts *bind.TransactOpts, from, to common.Address, tokenId *big.Int) (*types.Transaction, error) {
	return p.transact(opts, "transferFrom", from, to, tokenId)
}

func (p *PokemonNFT) SafeTransferFrom(opts *bind.TransactOpts, from, to common.Address, tokenId *big.Int, data []byte) (*types.Transaction, error) {
	if data == nil {
		data = []byte{}
	}
	return p.transact(opts, "safeTransferFrom", from, to, tokenId, data)
}

// WaitMined blocks until tx is included. Failures are confirmation errors: the transaction may still land.
func (p *PokemonNFT) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, p.backend, tx)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "waiting for %s", tx.Hash()), errs.Confirmation)
	}
	return receipt, nil
}
