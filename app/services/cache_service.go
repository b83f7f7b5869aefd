package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jageocoder-go/app/models"
)

// ICacheService is the result-cache boundary consulted by
// GeocodeController before running a query, generalized from the
// teacher's services.ICacheService (app/services/cache_interface.go)
// from caching models.AddressResult to models.GeocodeResult.
type ICacheService interface {
	Get(ctx context.Context, key string) (*models.GeocodeResult, bool, error)
	Set(ctx context.Context, key string, result *models.GeocodeResult) error
	InvalidateAll(ctx context.Context) error
	Stats() CacheStats
	Close() error
}

// CacheStats mirrors the teacher's CacheStats shape.
type CacheStats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
}

// RedisResultCache caches GeocodeResult by a key combining the
// query string and the dictionary signature (SPEC_FULL §5), so a
// dictionary reload naturally invalidates stale entries without a
// separate invalidation pass. Grounded on
// app/services/redis_cache_service.go's connection/TTL/prefix/stats
// pattern.
type RedisResultCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string

	hits   int64
	misses int64
}

// NewRedisResultCache dials redisURL (e.g. "redis://localhost:6379").
func NewRedisResultCache(redisURL string, ttl time.Duration) (*RedisResultCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("cache: parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	return &RedisResultCache{client: client, ttl: ttl, prefix: "jageocoder:"}, nil
}

// CacheKey combines the query string, as given, and the dictionary
// signature, so that a dictionary reload (a new signature) never serves
// a stale hit.
func CacheKey(query, dictionarySignature string) string {
	return query + "@" + dictionarySignature
}

func (c *RedisResultCache) redisKey(key string) string {
	return c.prefix + key
}

func (c *RedisResultCache) Get(ctx context.Context, key string) (*models.GeocodeResult, bool, error) {
	raw, err := c.client.Get(ctx, c.redisKey(key)).Bytes()
	if err == redis.Nil {
		atomic.AddInt64(&c.misses, 1)
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("cache: get: %w", err)
	}

	var result models.GeocodeResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, false, fmt.Errorf("cache: decoding cached result: %w", err)
	}
	atomic.AddInt64(&c.hits, 1)
	result.CacheHit = true
	return &result, true, nil
}

func (c *RedisResultCache) Set(ctx context.Context, key string, result *models.GeocodeResult) error {
	raw, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("cache: encoding result: %w", err)
	}
	if err := c.client.Set(ctx, c.redisKey(key), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: set: %w", err)
	}
	return nil
}

// InvalidateAll drops every cached result under this cache's key
// prefix, used when an operator forces a reload outside the normal
// signature-keyed expiry.
func (c *RedisResultCache) InvalidateAll(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("cache: scanning keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *RedisResultCache) Stats() CacheStats {
	hits := atomic.LoadInt64(&c.hits)
	misses := atomic.LoadInt64(&c.misses)
	total := hits + misses
	rate := 0.0
	if total > 0 {
		rate = float64(hits) / float64(total)
	}
	return CacheStats{Hits: hits, Misses: misses, HitRate: rate}
}

func (c *RedisResultCache) Close() error {
	return c.client.Close()
}

// NoopCacheService satisfies ICacheService when the operator disables
// result caching (cache.enabled: false); every lookup misses.
type NoopCacheService struct{}

func NewNoopCacheService() *NoopCacheService { return &NoopCacheService{} }

func (c *NoopCacheService) Get(ctx context.Context, key string) (*models.GeocodeResult, bool, error) {
	return nil, false, nil
}

func (c *NoopCacheService) Set(ctx context.Context, key string, result *models.GeocodeResult) error {
	return nil
}

func (c *NoopCacheService) InvalidateAll(ctx context.Context) error { return nil }

func (c *NoopCacheService) Stats() CacheStats { return CacheStats{} }

func (c *NoopCacheService) Close() error { return nil }
