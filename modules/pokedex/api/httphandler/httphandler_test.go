package httphandler

import (
	"encoding/json"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/ethereum/go-ethereum/common"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/datagateway/mocks"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/usecase"
	"github.com/gaze-network/pokedex-nft/pkg/errorhandler"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testWallet = "0x71C7656EC7ab88b098defB751B7401B5f6d8976F"

type response struct {
	Error  *string         `json:"error"`
	Result json.RawMessage `json:"result"`
}

func newTestApp(t *testing.T, opts ...usecase.Option) (*fiber.App, *mocks.CreatureDataGateway, *mocks.PokemonNFTDataGateway) {
	t.Helper()
	creatures := mocks.NewCreatureDataGateway(t)
	nft := mocks.NewPokemonNFTDataGateway(t)
	handler := New(usecase.New(creatures, nft, opts...), nil)

	app := fiber.New(fiber.Config{ErrorHandler: errorhandler.NewHTTPErrorHandler()})
	require.NoError(t, handler.Mount(app))
	return app, creatures, nft
}

func do(t *testing.T, app *fiber.App, method, path string, body string) (int, response) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func bulbasaur() *entity.Creature {
	return &entity.Creature{Id: 1, Name: "bulbasaur", Types: []string{"grass", "poison"}}
}

func TestGetCreature(t *testing.T) {
	app, creatures, _ := newTestApp(t)
	creatures.EXPECT().FetchCreature(mock.Anything, int64(1)).Return(bulbasaur(), nil)
	creatures.EXPECT().FetchCreature(mock.Anything, int64(99999)).Return(nil, errors.Wrap(errs.NotFound, "pokemon 99999"))

	status, resp := do(t, app, http.MethodGet, "/v1/pokedex/creatures/1", "")
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp.Error)
	var creature entity.Creature
	require.NoError(t, json.Unmarshal(resp.Result, &creature))
	assert.Equal(t, "bulbasaur", creature.Name)

	status, resp = do(t, app, http.MethodGet, "/v1/pokedex/creatures/99999", "")
	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, resp.Error)

	status, resp = do(t, app, http.MethodGet, "/v1/pokedex/creatures/abc", "")
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "'id' must be a positive integer", *resp.Error)
}

func TestGetCreatures(t *testing.T) {
	app, creatures, _ := newTestApp(t)
	creatures.EXPECT().ListCreatureIds(mock.Anything, 20, 0).Return([]int64{1}, 1302, nil)
	creatures.EXPECT().FetchCreatureBatch(mock.Anything, []int64{1}).Return([]entity.BatchResult{{Id: 1, Creature: bulbasaur()}})

	status, resp := do(t, app, http.MethodGet, "/v1/pokedex/creatures", "")
	require.Equal(t, http.StatusOK, status)
	var page entity.CreaturePage
	require.NoError(t, json.Unmarshal(resp.Result, &page))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, 1302, page.Total)
	assert.True(t, page.HasMore)

	status, _ = do(t, app, http.MethodGet, "/v1/pokedex/creatures?limit=500", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetCreaturesBatch(t *testing.T) {
	app, creatures, _ := newTestApp(t)
	creatures.EXPECT().FetchCreatureBatch(mock.Anything, []int64{1, 99999}).Return([]entity.BatchResult{
		{Id: 1, Creature: bulbasaur()},
		{Id: 99999, Err: errors.Wrap(errs.NotFound, "pokemon 99999")},
	})

	status, resp := do(t, app, http.MethodPost, "/v1/pokedex/creatures/batch", `{"ids":[1,99999]}`)
	require.Equal(t, http.StatusOK, status)
	var result getCreaturesBatchResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	require.Len(t, result.List, 2)
	assert.NotNil(t, result.List[0].Creature)
	assert.Nil(t, result.List[0].Error)
	assert.Nil(t, result.List[1].Creature)
	assert.NotNil(t, result.List[1].Error)

	status, _ = do(t, app, http.MethodPost, "/v1/pokedex/creatures/batch", `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, status)
	status, _ = do(t, app, http.MethodPost, "/v1/pokedex/creatures/batch", `{"ids":[1,-2]}`)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetStatus(t *testing.T) {
	app, _, nft := newTestApp(t)
	nft.EXPECT().IsPokemonInitialized(mock.Anything, int64(25)).Return(true, nil)
	nft.EXPECT().GetTotalClaims(mock.Anything, int64(25)).Return(uint64(4), nil)
	nft.EXPECT().GetPokemonMetadata(mock.Anything, int64(25)).Return(&entity.OnchainPokemon{PokemonId: big.NewInt(25), Name: "Pikachu", Hp: big.NewInt(35)}, nil)

	status, resp := do(t, app, http.MethodGet, "/v1/pokedex/creatures/25/status", "")
	require.Equal(t, http.StatusOK, status)
	var chainStatus entity.ChainStatus
	require.NoError(t, json.Unmarshal(resp.Result, &chainStatus))
	assert.True(t, chainStatus.Initialized)
	assert.Equal(t, uint64(4), chainStatus.TotalClaims)
	require.NotNil(t, chainStatus.Metadata)
	assert.Equal(t, "Pikachu", chainStatus.Metadata.Name)
	assert.Equal(t, "35", chainStatus.Metadata.Hp.String())
}

func TestGetStatusChainDown(t *testing.T) {
	app, _, nft := newTestApp(t)
	nft.EXPECT().IsPokemonInitialized(mock.Anything, int64(25)).Return(false, errors.New("connection refused"))

	status, resp := do(t, app, http.MethodGet, "/v1/pokedex/creatures/25/status", "")
	assert.Equal(t, http.StatusBadGateway, status)
	require.NotNil(t, resp.Error)
	assert.Contains(t, *resp.Error, "connection refused")
}

func TestGetClaimed(t *testing.T) {
	app, _, nft := newTestApp(t)
	nft.EXPECT().HasClaimed(mock.Anything, common.HexToAddress(testWallet), int64(25)).Return(true, nil)

	status, resp := do(t, app, http.MethodGet, "/v1/pokedex/creatures/25/claimed/"+testWallet, "")
	require.Equal(t, http.StatusOK, status)
	var result getClaimedResult
	require.NoError(t, json.Unmarshal(resp.Result, &result))
	assert.True(t, result.Claimed)

	status, _ = do(t, app, http.MethodGet, "/v1/pokedex/creatures/25/claimed/0x1234", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetToken(t *testing.T) {
	app, _, nft := newTestApp(t)
	owner := common.HexToAddress(testWallet)
	nft.EXPECT().OwnerOf(mock.Anything, big.NewInt(7)).Return(owner, nil)
	nft.EXPECT().TokenURI(mock.Anything, big.NewInt(7)).Return("ipfs://token/7", nil)
	nft.EXPECT().GetApproved(mock.Anything, big.NewInt(7)).Return(common.Address{}, nil)

	status, resp := do(t, app, http.MethodGet, "/v1/pokedex/tokens/7", "")
	require.Equal(t, http.StatusOK, status)
	var token entity.TokenInfo
	require.NoError(t, json.Unmarshal(resp.Result, &token))
	assert.Equal(t, owner, token.Owner)
	assert.Equal(t, "ipfs://token/7", token.URI)

	status, _ = do(t, app, http.MethodGet, "/v1/pokedex/tokens/-1", "")
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestGetWallet(t *testing.T) {
	app, _, nft := newTestApp(t)
	nft.EXPECT().BalanceOf(mock.Anything, common.HexToAddress(testWallet)).Return(uint64(3), nil)

	status, resp := do(t, app, http.MethodGet, "/v1/pokedex/wallets/"+testWallet, "")
	require.Equal(t, http.StatusOK, status)
	var summary entity.WalletSummary
	require.NoError(t, json.Unmarshal(resp.Result, &summary))
	assert.Equal(t, uint64(3), summary.NFTBalance)
	assert.Nil(t, summary.NativeBalance)
}

func TestClaimRoutes(t *testing.T) {
	t.Run("not mounted without wallet and history", func(t *testing.T) {
		app, _, _ := newTestApp(t)
		resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/v1/pokedex/claims", strings.NewReader(`{"ids":[1]}`)))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)

		resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/v1/pokedex/claims/wallet/"+testWallet, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("claim history", func(t *testing.T) {
		history := mocks.NewClaimHistoryDataGateway(t)
		history.EXPECT().GetClaimRecordsByWallet(mock.Anything, common.HexToAddress(testWallet), int32(usecase.DefaultHistoryLimit)).Return(nil, nil)
		app, _, _ := newTestApp(t, usecase.WithClaimHistory(history))

		status, resp := do(t, app, http.MethodGet, "/v1/pokedex/claims/wallet/"+testWallet, "")
		require.Equal(t, http.StatusOK, status)
		assert.JSONEq(t, `{"list":[]}`, string(resp.Result))
	})
}
