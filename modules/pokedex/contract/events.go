package contract

import (
	"math/big"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
)

// FindClaimedEvent returns the first PokemonClaimed log emitted by the contract in receipt.
// A receipt without one yields (nil, nil).
func (p *PokemonNFT) FindClaimedEvent(receipt *types.Receipt) (*entity.ClaimedEvent, error) {
	if receipt == nil {
		return nil, nil
	}
	for _, log := range receipt.Logs {
		if log == nil || log.Address != p.address || !isEvent(*log, EventPokemonClaimed) {
			continue
		}
		event, err := ParseClaimed(*log)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		return event, nil
	}
	return nil, nil
}

// ParseClaimed decodes a PokemonClaimed log.
//
// Arguments are looked up by name. When the names don't match, e.g. a redeployed contract with
// renamed parameters, the declared positions are used: 0 claimer, 1 tokenId, 2 pokemonId, 3 name, 4 isFirstClaim.
func ParseClaimed(log types.Log) (*entity.ClaimedEvent, error) {
	args, err := unpackLog(log, EventPokemonClaimed)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	event := &entity.ClaimedEvent{}
	var ok bool
	if event.Claimer, ok = args.get("claimer", 0).(common.Address); !ok {
		return nil, errors.Wrap(errs.MalformedResponse, "PokemonClaimed lacks claimer")
	}
	if event.TokenId, ok = args.get("tokenId", 1).(*big.Int); !ok {
		return nil, errors.Wrap(errs.MalformedResponse, "PokemonClaimed lacks tokenId")
	}
	if event.PokemonId, ok = args.get("pokemonId", 2).(*big.Int); !ok {
		return nil, errors.Wrap(errs.MalformedResponse, "PokemonClaimed lacks pokemonId")
	}
	event.Name, _ = args.get("name", 3).(string)
	event.IsFirstClaim, _ = args.get("isFirstClaim", 4).(bool)
	return event, nil
}

// ParseInitialized decodes a PokemonInitialized log.
func ParseInitialized(log types.Log) (*entity.InitializedEvent, error) {
	args, err := unpackLog(log, EventPokemonInitialized)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	pokemonId, ok := args.get("pokemonId", 0).(*big.Int)
	if !ok {
		return nil, errors.Wrap(errs.MalformedResponse, "PokemonInitialized lacks pokemonId")
	}
	name, _ := args.get("name", 1).(string)
	pokemonType, _ := args.get("pokemonType", 2).(string)
	return &entity.InitializedEvent{PokemonId: pokemonId, Name: name, PokemonType: pokemonType}, nil
}

func isEvent(log types.Log, name string) bool {
	return len(log.Topics) > 0 && log.Topics[0] == ABI.Events[name].ID
}

type eventArgs struct {
	values map[string]any
	inputs abi.Arguments
}

func (a eventArgs) get(name string, position int) any {
	if v, ok := a.values[name]; ok {
		return v
	}
	if position < len(a.inputs) {
		return a.values[a.inputs[position].Name]
	}
	return nil
}

// unpackLog decodes both the indexed topics and the data of log into a name keyed map.
func unpackLog(log types.Log, name string) (eventArgs, error) {
	event, ok := ABI.Events[name]
	if !ok {
		return eventArgs{}, errors.Wrapf(errs.Unsupported, "unknown event %s", name)
	}
	if !isEvent(log, name) {
		return eventArgs{}, errors.Wrapf(errs.InvalidArgument, "log is not a %s event", name)
	}
	values := make(map[string]any, len(event.Inputs))
	if len(log.Data) > 0 {
		if err := ABI.UnpackIntoMap(values, name, log.Data); err != nil {
			return eventArgs{}, errors.Mark(errors.Wrapf(err, "unpack %s data", name), errs.MalformedResponse)
		}
	}
	var indexed abi.Arguments
	for _, input := range event.Inputs {
		if input.Indexed {
			indexed = append(indexed, input)
		}
	}
	if err := abi.ParseTopicsIntoMap(values, indexed, log.Topics[1:]); err != nil {
		return eventArgs{}, errors.Mark(errors.Wrapf(err, "unpack %s topics", name), errs.MalformedResponse)
	}
	return eventArgs{values: values, inputs: event.Inputs}, nil
}
