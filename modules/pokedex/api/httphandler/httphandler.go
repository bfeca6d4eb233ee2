package httphandler

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/usecase"
	"github.com/gaze-network/pokedex-nft/pkg/evm"
)

const (
	maxBatchSize = 100
	maxClaimSize = 20
)

type HttpHandler struct {
	usecase *usecase.Usecase
	signer  usecase.Signer
}

// New creates the handler. signer may be nil, claim routes are then not mounted.
func New(usecase *usecase.Usecase, signer usecase.Signer) *HttpHandler {
	return &HttpHandler{
		usecase: usecase,
		signer:  signer,
	}
}

func parsePokemonId(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.NewPublicError("'id' must be a positive integer")
	}
	return id, nil
}

func parseWallet(raw string) (common.Address, error) {
	wallet, err := evm.ParseAddress(raw)
	if err != nil {
		return common.Address{}, errs.WithPublicMessage(errors.WithStack(err), "invalid 'wallet'")
	}
	return wallet, nil
}

func validateIds(ids []int64, limit int) error {
	var errList []error
	if len(ids) == 0 {
		errList = append(errList, errors.New("'ids' is required"))
	}
	if len(ids) > limit {
		errList = append(errList, errors.Newf("cannot exceed %d ids", limit))
	}
	for i, id := range ids {
		if id <= 0 {
			errList = append(errList, errors.Newf("ids[%d]: must be a positive integer", i))
		}
	}
	return errs.WithPublicMessage(errors.Join(errList...), "validation error")
}
