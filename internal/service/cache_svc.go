package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// AllowedListTTL bounds staleness of the cached allowed-content list.
// Platform responses (channel metadata, upload pages) are deliberately NOT
// cached here: every proxy request pays its own API calls.
const AllowedListTTL = 30 * time.Second

const allowedListKey = "allowed:list"

// CacheService provides a Redis cache-aside layer for the allowed-content
// list. A nil client turns every operation into a no-op.
type CacheService struct {
	rdb    *redis.Client
	onHit  func()
	onMiss func()
}

// SetObservers wires hit/miss callbacks (Prometheus counters in main).
func (c *CacheService) SetObservers(onHit, onMiss func()) {
	c.onHit = onHit
	c.onMiss = onMiss
}

// NewCacheService creates a CacheService. If redisURL is empty or the
// connection fails, caching is disabled rather than failing startup.
func NewCacheService(redisURL string) *CacheService {
	if redisURL == "" {
		log.Info().Msg("redis: no URL configured, caching disabled")
		return &CacheService{}
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Warn().Err(err).Str("url", redisURL).Msg("redis: invalid URL, caching disabled")
		return &CacheService{}
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("redis: connection failed, caching disabled")
		return &CacheService{}
	}

	log.Info().Msg("redis: connected, caching enabled")
	return &CacheService{rdb: rdb}
}

// Client returns the underlying Redis client (for health checks). May be nil.
func (c *CacheService) Client() *redis.Client {
	return c.rdb
}

// GetAllowedList retrieves the cached allowed-content list. Returns nil when
// not cached or caching is disabled.
func (c *CacheService) GetAllowedList(ctx context.Context) ([]byte, error) {
	if c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, allowedListKey).Bytes()
	if err == redis.Nil {
		if c.onMiss != nil {
			c.onMiss()
		}
		return nil, nil
	}
	if err == nil && c.onHit != nil {
		c.onHit()
	}
	return data, err
}

// SetAllowedList stores the allowed-content list.
func (c *CacheService) SetAllowedList(ctx context.Context, list interface{}) error {
	if c.rdb == nil {
		return nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, allowedListKey, b, AllowedListTTL).Err()
}

// InvalidateAllowedList drops the cached list (called after any mutation).
func (c *CacheService) InvalidateAllowedList(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, allowedListKey).Err()
}

// Close shuts down the Redis connection.
func (c *CacheService) Close() error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
