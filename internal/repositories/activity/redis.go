package activity

import (
	"context"
	"encoding/json"

	"github.com/KirkDiggler/vagabond-api/internal/errors"
	redisclient "github.com/KirkDiggler/vagabond-api/internal/redis"
)

const (
	// Key patterns: activity:actor:{actor_id} and activity:global. Actor IDs
	// never reach the global key.
	actorKeyPrefix = "activity:actor:"
	globalKey      = "activity:global"

	defaultMaxEntries = 500
	defaultListLimit  = 50

	// Error messages
	errEntryNil     = "entry cannot be nil"
	errEntryIDEmpty = "entry ID cannot be empty"
	errActorIDEmpty = "actor ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	// MaxEntries caps each list; older entries are trimmed. Defaults to 500.
	MaxEntries int64
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.MaxEntries < 0 {
		return errors.InvalidArgument("max entries must not be negative")
	}
	return nil
}

type redisRepository struct {
	client     redisclient.Client
	maxEntries int64
}

// NewRedisRepository creates a new Redis repository for the activity log
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	maxEntries := cfg.MaxEntries
	if maxEntries == 0 {
		maxEntries = defaultMaxEntries
	}

	return &redisRepository{
		client:     cfg.Client,
		maxEntries: maxEntries,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) buildKey(actorID string) string {
	if actorID == "" {
		return globalKey
	}
	return actorKeyPrefix + actorID
}

// Append pushes the entry onto both lists and trims them in one transaction
func (r *redisRepository) Append(ctx context.Context, input AppendInput) (*AppendOutput, error) {
	if input.Entry == nil {
		return nil, errors.InvalidArgument(errEntryNil)
	}
	if input.Entry.ID == "" {
		return nil, errors.InvalidArgument(errEntryIDEmpty)
	}
	if input.Entry.ActorID == "" {
		return nil, errors.InvalidArgument(errActorIDEmpty)
	}

	entryJSON, err := json.Marshal(input.Entry)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal entry")
	}

	actorKey := r.buildKey(input.Entry.ActorID)

	pipe := r.client.TxPipeline()
	pipe.LPush(ctx, actorKey, entryJSON)
	pipe.LTrim(ctx, actorKey, 0, r.maxEntries-1)
	pipe.LPush(ctx, globalKey, entryJSON)
	pipe.LTrim(ctx, globalKey, 0, r.maxEntries-1)

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to append activity entry")
	}

	return &AppendOutput{Entry: input.Entry}, nil
}

// List reads up to Limit entries, newest first
func (r *redisRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit must not be negative")
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	raw, err := r.client.LRange(ctx, r.buildKey(input.ActorID), 0, limit-1).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read activity log")
	}

	entries := make([]*Entry, 0, len(raw))
	for _, item := range raw {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal activity entry")
		}
		entries = append(entries, &entry)
	}

	return &ListOutput{Entries: entries}, nil
}
