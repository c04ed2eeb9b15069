// Package cache keeps loaded policy configurations in Redis so recomputes
// across a policy do not reload categories and tags for every transaction.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/MrJamesThe3rd/finnypolicy/internal/policy"
)

const keyPrefix = "policy_config:"

//go:generate mockgen -source=cache.go -destination=cache_mock.go -package=cache
type Source interface {
	Config(ctx context.Context, id uuid.UUID) (*policy.Config, error)
}

// Client is the subset of *redis.Client the cache uses.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type Cache struct {
	client Client
	source Source
	ttl    time.Duration
}

// New returns a read-through cache over source. A nil client disables
// caching and every call goes to source.
func New(client Client, source Source, ttl time.Duration) *Cache {
	return &Cache{client: client, source: source, ttl: ttl}
}

func key(id uuid.UUID) string {
	return keyPrefix + id.String()
}

func (c *Cache) Config(ctx context.Context, id uuid.UUID) (*policy.Config, error) {
	if c.client == nil {
		return c.source.Config(ctx, id)
	}

	raw, err := c.client.Get(ctx, key(id)).Bytes()
	switch {
	case err == nil:
		var cfg policy.Config
		if err := json.Unmarshal(raw, &cfg); err == nil {
			return &cfg, nil
		}

		slog.Warn("discarding undecodable cached policy config", "policy_id", id)
	case !errors.Is(err, redis.Nil):
		slog.Warn("failed to read cached policy config", "policy_id", id, "error", err)
	}

	cfg, err := c.source.Config(ctx, id)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(cfg); err != nil {
		slog.Warn("failed to encode policy config", "policy_id", id, "error", err)
	} else if err := c.client.Set(ctx, key(id), raw, c.ttl).Err(); err != nil {
		slog.Warn("failed to cache policy config", "policy_id", id, "error", err)
	}

	return cfg, nil
}

// Invalidate drops the cached configuration of a policy.
func (c *Cache) Invalidate(ctx context.Context, id uuid.UUID) error {
	if c.client == nil {
		return nil
	}

	if err := c.client.Del(ctx, key(id)).Err(); err != nil {
		return fmt.Errorf("invalidating policy config: %w", err)
	}

	return nil
}
