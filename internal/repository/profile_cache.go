package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/InnovationLadders/myprojectplateform12-sub002/internal/domain"
)

const profileCachePrefix = "profile:"

// ProfileCache stores resolved profile snapshots with a TTL. A miss is not an
// error; callers fall through to the authoritative store.
type ProfileCache interface {
	Get(ctx context.Context, id string) (*domain.Profile, bool)
	Set(ctx context.Context, profile *domain.Profile) error
	Invalidate(ctx context.Context, id string) error
}

type redisProfileCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewProfileCache builds a Redis-backed cache. A nil client yields a cache
// that always misses.
func NewProfileCache(client *redis.Client, ttl time.Duration) ProfileCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisProfileCache{client: client, ttl: ttl}
}

func (c *redisProfileCache) Get(ctx context.Context, id string) (*domain.Profile, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, profileCachePrefix+id).Bytes()
	if err != nil {
		return nil, false
	}
	var profile domain.Profile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return nil, false
	}
	return &profile, true
}

func (c *redisProfileCache) Set(ctx context.Context, profile *domain.Profile) error {
	if c.client == nil || profile == nil {
		return nil
	}
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, profileCachePrefix+profile.ID, raw, c.ttl).Err()
}

func (c *redisProfileCache) Invalidate(ctx context.Context, id string) error {
	if c.client == nil {
		return nil
	}
	err := c.client.Del(ctx, profileCachePrefix+id).Err()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
