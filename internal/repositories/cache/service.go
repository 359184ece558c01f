package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// CacheService wraps Redis with JSON marshaling and the key conventions
// used across the app: month-scoped usage counters and cached analysis
// results.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Get unmarshals the cached value into dest. The bool result reports
// whether the key existed.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Usage counters. Keys are scoped to the calendar month so counters reset
// naturally with the billing period; the TTL only has to outlive the month.

func usageKey(userID uint, action string, month time.Time) string {
	return fmt.Sprintf("usage:%d:%s:%s", userID, action, month.Format("2006-01"))
}

// IncrementUsage bumps a user's counter for an action in the given month.
func (s *CacheService) IncrementUsage(ctx context.Context, userID uint, action string, month time.Time) error {
	key := usageKey(userID, action, month)
	if err := s.client.Incr(ctx, key).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, 35*24*time.Hour).Err()
}

// GetUsage returns a user's cached counter for an action in the given
// month. Missing keys count as zero with ok=false so callers can fall back
// to the database.
func (s *CacheService) GetUsage(ctx context.Context, userID uint, action string, month time.Time) (int, bool, error) {
	val, err := s.client.Get(ctx, usageKey(userID, action, month)).Int()
	if err != nil {
		if err == redis.Nil {
			return 0, false, nil
		}
		return 0, false, err
	}
	return val, true, nil
}

// SetUsage primes a counter from the database count.
func (s *CacheService) SetUsage(ctx context.Context, userID uint, action string, month time.Time, count int) error {
	return s.client.Set(ctx, usageKey(userID, action, month), count, 35*24*time.Hour).Err()
}

// InvalidateUsage drops all cached counters for a user in the given month.
func (s *CacheService) InvalidateUsage(ctx context.Context, userID uint, month time.Time) error {
	pattern := fmt.Sprintf("usage:%d:*:%s", userID, month.Format("2006-01"))
	keys, err := s.client.Keys(ctx, pattern).Result()
	if err != nil {
		return err
	}
	if len(keys) > 0 {
		return s.client.Del(ctx, keys...).Err()
	}
	return nil
}

// AnalysisKey builds the cache key for a stored analysis result.
func AnalysisKey(reference string) string {
	return "analysis:" + reference
}

// FlushAll clears the cache. Used on startup.
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// HealthCheck pings Redis.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// PoolStats exposes connection pool statistics.
func (s *CacheService) PoolStats() *redis.PoolStats {
	return s.client.PoolStats()
}

// Close closes the underlying client.
func (s *CacheService) Close() error {
	return s.client.Close()
}
