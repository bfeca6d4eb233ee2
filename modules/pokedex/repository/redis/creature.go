package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/Cleverse/go-utilities/utils"
	"github.com/cockroachdb/errors"
	"github.com/gaze-network/pokedex-nft/common/errs"
	redisclient "github.com/gaze-network/pokedex-nft/internal/redis"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/datagateway"
	"github.com/gaze-network/pokedex-nft/modules/pokedex/entity"
	"github.com/gaze-network/pokedex-nft/pkg/logger"
	"github.com/gaze-network/pokedex-nft/pkg/logger/slogx"
	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"
)

const creatureKeyPrefix = "pokedex:creature:"

var _ datagateway.CreatureDataGateway = (*CreatureCache)(nil)

// CreatureCache serves creature records from redis and falls back to source on a miss.
// Records never change upstream, so entries only expire by TTL. Cache failures are logged
// and never fail a fetch.
type CreatureCache struct {
	source datagateway.CreatureDataGateway
	client redisclient.Client
	ttl    time.Duration
}

func NewCreatureCache(source datagateway.CreatureDataGateway, client redisclient.Client, ttl time.Duration) (*CreatureCache, error) {
	if source == nil {
		return nil, errors.Wrap(errs.InvalidArgument, "creature source is required")
	}
	if client == nil {
		return nil, errors.Wrap(errs.InvalidArgument, "redis client is required")
	}
	return &CreatureCache{
		source: source,
		client: client,
		ttl:    utils.Default(ttl, redisclient.DefaultCacheTTL),
	}, nil
}

func creatureKey(id int64) string {
	return creatureKeyPrefix + strconv.FormatInt(id, 10)
}

func (c *CreatureCache) FetchCreature(ctx context.Context, id int64) (*entity.Creature, error) {
	if id <= 0 {
		return c.source.FetchCreature(ctx, id)
	}

	data, err := c.client.Get(ctx, creatureKey(id)).Bytes()
	switch {
	case err == nil:
		var creature entity.Creature
		if err := json.Unmarshal(data, &creature); err == nil {
			return &creature, nil
		}
		logger.WarnContext(ctx, "Dropping unreadable cached creature", slogx.Int64("id", id))
	case !errors.Is(err, redis.Nil):
		logger.WarnContext(ctx, "Failed to read creature cache", slogx.Error(err), slogx.Int64("id", id))
	}

	creature, err := c.source.FetchCreature(ctx, id)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	c.store(ctx, []entity.Creature{*creature})
	return creature, nil
}

// FetchCreatureBatch reads every cached id with one MGET and fetches only the misses from source.
func (c *CreatureCache) FetchCreatureBatch(ctx context.Context, ids []int64) []entity.BatchResult {
	results := make([]entity.BatchResult, len(ids))
	if len(ids) == 0 {
		return results
	}

	values, err := c.client.MGet(ctx, lo.Map(ids, func(id int64, _ int) string { return creatureKey(id) })...).Result()
	if err != nil {
		logger.WarnContext(ctx, "Failed to read creature cache", slogx.Error(err), slogx.Int("count", len(ids)))
		values = make([]any, len(ids))
	}

	misses := make([]int, 0, len(ids))
	for i, id := range ids {
		results[i].Id = id
		raw, ok := values[i].(string)
		if !ok {
			misses = append(misses, i)
			continue
		}
		var creature entity.Creature
		if err := json.Unmarshal([]byte(raw), &creature); err != nil {
			misses = append(misses, i)
			continue
		}
		results[i].Creature = &creature
	}
	if len(misses) == 0 {
		return results
	}

	fetched := c.source.FetchCreatureBatch(ctx, lo.Map(misses, func(i int, _ int) int64 { return ids[i] }))
	fresh := make([]entity.Creature, 0, len(fetched))
	for j, result := range fetched {
		results[misses[j]] = result
		if result.Err == nil && result.Creature != nil {
			fresh = append(fresh, *result.Creature)
		}
	}
	c.store(ctx, fresh)
	return results
}

// ListCreatureIds is not cached, the catalog count grows over time.
func (c *CreatureCache) ListCreatureIds(ctx context.Context, limit, offset int) ([]int64, int, error) {
	return c.source.ListCreatureIds(ctx, limit, offset)
}

func (c *CreatureCache) store(ctx context.Context, creatures []entity.Creature) {
	if len(creatures) == 0 {
		return
	}
	_, err := c.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, creature := range creatures {
			data, err := json.Marshal(creature)
			if err != nil {
				return errors.Wrapf(err, "failed to marshal creature %d", creature.Id)
			}
			pipe.Set(ctx, creatureKey(creature.Id), data, c.ttl)
		}
		return nil
	})
	if err != nil {
		logger.WarnContext(ctx, "Failed to write creature cache", slogx.Error(err), slogx.Int("count", len(creatures)))
	}
}
