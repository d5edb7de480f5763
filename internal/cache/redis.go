// Package cache provides a Redis-backed read-through cache for single
// vacation aggregates. Entries are JSON-encoded whole documents keyed by
// vacation ID and expire after a configurable TTL; every write path in the
// service layer invalidates the entry, so the TTL only bounds staleness in
// the face of dropped invalidations.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tripdesk/backend/internal/domain"
)

// VacationCache implements service.Cache on top of a Redis client.
type VacationCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// New constructs a VacationCache talking to the Redis instance at addr.
// ttl controls how long a cached vacation lives without invalidation.
func New(addr string, ttl time.Duration) *VacationCache {
	return &VacationCache{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: ttl,
	}
}

// Ping verifies the Redis connection, for use at startup.
func (c *VacationCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

// GetVacation returns the cached vacation for id and whether it was present.
// A missing key is not an error.
func (c *VacationCache) GetVacation(ctx context.Context, id uuid.UUID) (domain.Vacation, bool, error) {
	raw, err := c.rdb.Get(ctx, key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Vacation{}, false, nil
		}
		return domain.Vacation{}, false, err
	}
	var v domain.Vacation
	if err := json.Unmarshal(raw, &v); err != nil {
		// A corrupt entry is treated as a miss; it will be overwritten
		// by the next successful read.
		return domain.Vacation{}, false, nil
	}
	return v, true, nil
}

// SetVacation stores v under its ID with the configured TTL.
func (c *VacationCache) SetVacation(ctx context.Context, v domain.Vacation) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key(v.ID), raw, c.ttl).Err()
}

// DeleteVacation drops the cached entry for id. Deleting an absent key is a
// no-op.
func (c *VacationCache) DeleteVacation(ctx context.Context, id uuid.UUID) error {
	return c.rdb.Del(ctx, key(id)).Err()
}

func key(id uuid.UUID) string {
	return "vacation:" + id.String()
}
