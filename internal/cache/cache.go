// Package cache keeps computed analytics summaries so repeated dashboard
// requests over the same range skip the aggregation pass
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"cashflow/internal/config"
	"cashflow/internal/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix     = "cashflow:analytics:"
	generationKey = "cashflow:analytics-generation:"
	scanBatchSize = 100
	pingTimeout   = 5 * time.Second
)

// commander is the subset of *redis.Client used by RedisCache
type commander interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// RedisCache stores financial summaries as JSON under per-user keys. Each
// user has a generation counter that is part of every summary key; bumping it
// orphans summaries computed before the last write
type RedisCache struct {
	client commander
	ttl    time.Duration
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(cfg config.RedisConfig, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return newRedisCache(client, ttl), nil
}

func newRedisCache(client commander, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func userPattern(userID uuid.UUID) string {
	return keyPrefix + userID.String() + ":*"
}

func summaryKey(userID uuid.UUID, generation int64, rangeKey string) string {
	return keyPrefix + userID.String() + ":" + strconv.FormatInt(generation, 10) + ":" + rangeKey
}

func generationKeyFor(userID uuid.UUID) string {
	return generationKey + userID.String()
}

// Generation returns the user's current cache generation, zero when the user
// has never been invalidated
func (c *RedisCache) Generation(ctx context.Context, userID uuid.UUID) (int64, error) {
	generation, err := c.client.Get(ctx, generationKeyFor(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read cache generation: %w", err)
	}
	return generation, nil
}

// GetSummary returns the cached summary, reporting false on a miss
func (c *RedisCache) GetSummary(ctx context.Context, userID uuid.UUID, generation int64, rangeKey string) (*models.FinancialSummary, bool, error) {
	raw, err := c.client.Get(ctx, summaryKey(userID, generation, rangeKey)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached summary: %w", err)
	}

	var summary models.FinancialSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached summary: %w", err)
	}

	return &summary, true, nil
}

// SetSummary stores the summary for the configured TTL
func (c *RedisCache) SetSummary(ctx context.Context, userID uuid.UUID, generation int64, rangeKey string, summary *models.FinancialSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}

	if err := c.client.Set(ctx, summaryKey(userID, generation, rangeKey), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache summary: %w", err)
	}

	return nil
}

// InvalidateUser advances the user's generation and drops every cached range.
// The generation key outlives any summary written under an older generation
func (c *RedisCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	key := generationKeyFor(userID)
	if err := c.client.Incr(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to advance cache generation: %w", err)
	}
	if c.ttl > 0 {
		if err := c.client.Expire(ctx, key, 2*c.ttl).Err(); err != nil {
			return fmt.Errorf("failed to expire cache generation: %w", err)
		}
	}

	var cursor uint64
	pattern := userPattern(userID)

	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return fmt.Errorf("failed to scan cached summaries: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("failed to delete cached summaries: %w", err)
			}
		}

		if next == 0 {
			return nil
		}
		cursor = next
	}
}

// Ping checks that Redis is reachable
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoopCache never stores anything. Used when Redis is disabled
type NoopCache struct{}

func (NoopCache) Generation(context.Context, uuid.UUID) (int64, error) { return 0, nil }

func (NoopCache) GetSummary(context.Context, uuid.UUID, int64, string) (*models.FinancialSummary, bool, error) {
	return nil, false, nil
}

func (NoopCache) SetSummary(context.Context, uuid.UUID, int64, string, *models.FinancialSummary) error {
	return nil
}

func (NoopCache) InvalidateUser(context.Context, uuid.UUID) error { return nil }

func (NoopCache) Ping(context.Context) error { return nil }

func (NoopCache) Close() error { return nil }
