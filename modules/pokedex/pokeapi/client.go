// Package pokeapi fetches creature records from the public PokeAPI catalog.
package pokeapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/datagateway"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/pkg/httpclient"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gaze-network/pokedex-nft/pkg/logger/slogx"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBaseURL          = "https://pokeapi.co/api/v2/"
	DefaultTimeout          = 10 * time.Second
	DefaultBatchConcurrency = 8
	MaxListLimit            = 100
)

type Config struct {
	BaseURL          string
	Debug            bool
	Timeout          time.Duration
	BatchConcurrency int
}

var _ datagateway.CreatureDataGateway = (*Client)(nil)

type Client struct {
	http        *httpclient.Client
	concurrency int
}

func New(config Config) (*Client, error) {
	client, err := httpclient.New(utils.Default(config.BaseURL, DefaultBaseURL), httpclient.Config{
		Debug:   config.Debug,
		Timeout: utils.Default(config.Timeout, DefaultTimeout),
		Headers: map[string]string{"Accept": "application/json"},
	})
	if err != nil {
		return nil, errors.Wrap(err, "can't create pokeapi http client")
	}
	return &Client{
		http:        client,
		concurrency: utils.Default(config.BatchConcurrency, DefaultBatchConcurrency),
	}, nil
}

// FetchCreature performs two sequential lookups, the pokemon record then its species text.
// A not-found answer is final and never retried.
func (c *Client) FetchCreature(ctx context.Context, id int64) (*entity.Creature, error) {
	if id <= 0 {
		return nil, errors.Wrapf(errs.InvalidArgument, "invalid pokemon id %d", id)
	}
	ctx = logger.WithContext(ctx, slogx.String("package", "pokeapi"), slogx.Int64("pokemonId", id))

	var pokemon pokemonResponse
	if err := c.getJSON(ctx, fmt.Sprintf("pokemon/%d", id), nil, &pokemon); err != nil {
		if errors.Is(err, errs.NotFound) {
			return nil, errors.Wrapf(err, "pokemon #%d not found", id)
		}
		return nil, errors.Wrapf(err, "can't fetch pokemon #%d", id)
	}

	speciesPath := fmt.Sprintf("pokemon-species/%d", id)
	if pokemon.Species != nil && pokemon.Species.URL != "" {
		speciesPath = pokemon.Species.URL
	}
	var species speciesResponse
	if err := c.getJSON(ctx, speciesPath, nil, &species); err != nil {
		if errors.Is(err, errs.NotFound) {
			// the record points at a species the catalog doesn't serve, the pokemon itself exists
			return nil, errors.Mark(errors.HandledWithMessage(err, fmt.Sprintf("species of pokemon #%d is not served", id)), errs.MalformedResponse)
		}
		return nil, errors.Wrapf(err, "can't fetch species of pokemon #%d", id)
	}

	creature, err := mapCreature(pokemon, species)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	logger.DebugContext(ctx, "Fetched pokemon", slogx.String("name", creature.Name))
	return &creature, nil
}

// FetchCreatureBatch fetches every id concurrently. One failure never cancels its siblings;
// the result at index i always belongs to ids[i].
func (c *Client) FetchCreatureBatch(ctx context.Context, ids []int64) []entity.BatchResult {
	results := make([]entity.BatchResult, len(ids))
	var group errgroup.Group
	group.SetLimit(c.concurrency)
	for i, id := range ids {
		i, id := i, id
		group.Go(func() error {
			creature, err := c.FetchCreature(ctx, id)
			results[i] = entity.BatchResult{Id: id, Creature: creature, Err: err}
			return nil
		})
	}
	_ = group.Wait()

	if failed := lo.CountBy(results, func(r entity.BatchResult) bool { return r.Err != nil }); failed > 0 {
		logger.WarnContext(ctx, "Some pokemon could not be fetched",
			slog.String("package", "pokeapi"),
			slog.Int("failed", failed),
			slog.Int("total", len(ids)),
		)
	}
	return results
}

// ListCreatureIds returns the ids of one catalog page and the catalog size.
func (c *Client) ListCreatureIds(ctx context.Context, limit, offset int) ([]int64, int, error) {
	if limit <= 0 || limit > MaxListLimit {
		return nil, 0, errors.Wrapf(errs.InvalidArgument, "limit must be between 1 and %d", MaxListLimit)
	}
	if offset < 0 {
		return nil, 0, errors.Wrap(errs.InvalidArgument, "offset must not be negative")
	}

	var list listResponse
	query := url.Values{"limit": {strconv.Itoa(limit)}, "offset": {strconv.Itoa(offset)}}
	if err := c.getJSON(ctx, "pokemon", query, &list); err != nil {
		return nil, 0, errors.Wrap(err, "can't list pokemon")
	}

	ids := make([]int64, 0, len(list.Results))
	for _, item := range list.Results {
		id, err := idFromURL(item.URL)
		if err != nil {
			return nil, 0, errors.WithStack(err)
		}
		ids = append(ids, id)
	}
	return ids, list.Count, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	resp, err := c.http.Get(ctx, path, httpclient.RequestOptions{Query: query})
	if err != nil {
		if errors.Is(err, errs.Timeout) {
			return errors.Mark(err, errs.Network)
		}
		return errors.WithStack(err)
	}
	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return errors.Wrapf(errs.NotFound, "%s answered 404", resp.URL)
	case !resp.IsSuccess():
		return errors.Wrapf(errs.Network, "%s answered unexpected status %d", resp.URL, resp.StatusCode())
	}
	if err := resp.UnmarshalBody(out); err != nil {
		return errors.Mark(err, errs.MalformedResponse)
	}
	return nil
}
