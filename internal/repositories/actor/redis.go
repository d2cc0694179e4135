package actor

import (
	"context"
	"encoding/json"
	"sort"

	redis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/KirkDiggler/vagabond-api/internal/entities/vagabond"
	"github.com/KirkDiggler/vagabond-api/internal/errors"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/clock"
	"github.com/KirkDiggler/vagabond-api/internal/pkg/logging"
	redisclient "github.com/KirkDiggler/vagabond-api/internal/redis"
)

const (
	// Documents and indexes live in separate key spaces so no actor ID can
	// name an index key
	actorKeyPrefix    = "actor:doc:"
	playerIndexPrefix = "actor:idx:player:"
	allIndexKey       = "actor:idx:all"

	// Error messages
	errActorNil     = "actor cannot be nil"
	errActorIDEmpty = "actor ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	logger *zap.Logger
}

// RedisConfig contains configuration for the Redis actor repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	Logger *zap.Logger
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed actor repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
		logger: logging.OrNop(cfg.Logger),
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	key := actorKeyPrefix + input.Actor.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("actor with ID %s already exists", input.Actor.ID)
	}

	now := r.clock.Now().Unix()
	input.Actor.CreatedAt = now
	input.Actor.UpdatedAt = now

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0)
	pipe.SAdd(ctx, allIndexKey, input.Actor.ID)
	if input.Actor.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Actor.PlayerID, input.Actor.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create actor")
	}

	return &CreateOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	actor, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Actor: actor}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Actor == nil {
		return nil, errors.InvalidArgument(errActorNil)
	}
	if input.Actor.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	existing, err := r.load(ctx, input.Actor.ID)
	if err != nil {
		return nil, err
	}

	input.Actor.CreatedAt = existing.CreatedAt
	input.Actor.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(input.Actor)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal actor")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, actorKeyPrefix+input.Actor.ID, data, 0)

	if existing.PlayerID != input.Actor.PlayerID {
		if existing.PlayerID != "" {
			pipe.SRem(ctx, playerIndexPrefix+existing.PlayerID, input.Actor.ID)
		}
		if input.Actor.PlayerID != "" {
			pipe.SAdd(ctx, playerIndexPrefix+input.Actor.PlayerID, input.Actor.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update actor")
	}

	return &UpdateOutput{Actor: input.Actor}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	existing, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, actorKeyPrefix+input.ID)
	pipe.SRem(ctx, allIndexKey, input.ID)
	if existing.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+existing.PlayerID, input.ID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete actor")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	indexKey := allIndexKey
	if input.PlayerID != "" {
		indexKey = playerIndexPrefix + input.PlayerID
	}

	actors, err := r.listByIndex(ctx, indexKey)
	if err != nil {
		r.logger.Error("failed to list actors",
			zap.String("index_key", indexKey),
			zap.Error(err))
		return nil, err
	}

	if input.Type != "" {
		filtered := actors[:0]
		for _, a := range actors {
			if a.Type == input.Type {
				filtered = append(filtered, a)
			}
		}
		actors = filtered
	}

	return &ListOutput{Actors: actors}, nil
}

func (r *redisRepository) load(ctx context.Context, id string) (*vagabond.Actor, error) {
	result, err := r.client.Get(ctx, actorKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("actor with ID %s not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get actor")
	}

	var actor vagabond.Actor
	if err := json.Unmarshal([]byte(result), &actor); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal actor")
	}

	return &actor, nil
}

// listByIndex loads every actor in a set index, pruning IDs whose document is gone.
// Results are ordered by name then ID.
func (r *redisRepository) listByIndex(ctx context.Context, indexKey string) ([]*vagabond.Actor, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get actors from index %s", indexKey)
	}

	r.logger.Debug("found actor IDs in index",
		zap.String("index_key", indexKey),
		zap.Int("count", len(ids)))

	actors := make([]*vagabond.Actor, 0, len(ids))
	for _, id := range ids {
		actor, err := r.load(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				r.logger.Warn("actor not found, cleaning up index",
					zap.String("actor_id", id),
					zap.String("index_key", indexKey))
				r.client.SRem(ctx, indexKey, id)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get actor %s", id)
		}
		actors = append(actors, actor)
	}

	sort.Slice(actors, func(i, j int) bool {
		if actors[i].Name != actors[j].Name {
			return actors[i].Name < actors[j].Name
		}
		return actors[i].ID < actors[j].ID
	})

	return actors, nil
}
