package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/persistence"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

const (
	keyPrefix        = "evr:stats:"
	generationPrefix = "evr:stats-gen:"
	// generationTTL outlives any in-flight read by a wide margin
	generationTTL = 7 * 24 * time.Hour
)

var errStaleGeneration = errors.New("stats cache generation changed")

// cachedStats is the JSON shape stored in redis. Decimals are kept as
// strings so no precision is lost.
type cachedStats struct {
	TotalUploads     int64           `json:"totalUploads"`
	TotalKm          int64           `json:"totalKm"`
	TotalEarned      decimal.Decimal `json:"totalEarned"`
	TotalCarbonSaved decimal.Decimal `json:"totalCarbonSaved"`
}

// RedisStatsCache stores user statistics in redis with a fixed TTL
type RedisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
	logger coreport.Logger
}

var _ persistence.StatsCache = (*RedisStatsCache)(nil)

// NewRedisStatsCache wraps an existing client
func NewRedisStatsCache(client *redis.Client, ttl time.Duration, logger coreport.Logger) *RedisStatsCache {
	return &RedisStatsCache{client: client, ttl: ttl, logger: logger}
}

// Dial connects to redis and verifies the connection
func Dial(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}
	return client, nil
}

func statsKey(userID uint64) string {
	return fmt.Sprintf("%s%d", keyPrefix, userID)
}

func generationKey(userID uint64) string {
	return fmt.Sprintf("%s%d", generationPrefix, userID)
}

// Get returns the cached statistics together with the user's current
// generation; a missing key is not an error
func (c *RedisStatsCache) Get(ctx context.Context, userID uint64) (persistence.StatsLookup, error) {
	pipe := c.client.Pipeline()
	statsCmd := pipe.Get(ctx, statsKey(userID))
	genCmd := pipe.Get(ctx, generationKey(userID))
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return persistence.StatsLookup{}, err
	}

	generation, err := genCmd.Uint64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return persistence.StatsLookup{}, err
	}
	lookup := persistence.StatsLookup{Generation: generation}

	raw, err := statsCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return lookup, nil
	}
	if err != nil {
		return persistence.StatsLookup{}, err
	}

	var cached cachedStats
	if err := json.Unmarshal(raw, &cached); err != nil {
		c.logger.Warn("Dropping unreadable stats cache entry", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		_ = c.client.Del(ctx, statsKey(userID)).Err()
		return lookup, nil
	}

	lookup.Found = true
	lookup.Stats = entity.UserStats{
		TotalUploads:     cached.TotalUploads,
		TotalKm:          cached.TotalKm,
		TotalEarned:      cached.TotalEarned,
		TotalCarbonSaved: cached.TotalCarbonSaved,
	}
	return lookup, nil
}

// Set stores the statistics until the TTL expires, unless the user's
// generation moved past generation since the caller's Get
func (c *RedisStatsCache) Set(ctx context.Context, userID uint64, generation uint64, stats entity.UserStats) error {
	payload, err := json.Marshal(cachedStats{
		TotalUploads:     stats.TotalUploads,
		TotalKm:          stats.TotalKm,
		TotalEarned:      stats.TotalEarned,
		TotalCarbonSaved: stats.TotalCarbonSaved,
	})
	if err != nil {
		return err
	}

	genKey := generationKey(userID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Uint64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return errStaleGeneration
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, statsKey(userID), payload, c.ttl)
			return nil
		})
		return err
	}, genKey)

	if errors.Is(err, errStaleGeneration) || errors.Is(err, redis.TxFailedErr) {
		c.logger.Debug("Skipped stale stats cache fill", map[string]any{
			"userId":     userID,
			"generation": generation,
		})
		return nil
	}
	return err
}

// Invalidate removes the user's entry and bumps the generation so fills
// computed before this call are rejected
func (c *RedisStatsCache) Invalidate(ctx context.Context, userID uint64) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey(userID))
		pipe.Expire(ctx, generationKey(userID), generationTTL)
		pipe.Del(ctx, statsKey(userID))
		return nil
	})
	return err
}
