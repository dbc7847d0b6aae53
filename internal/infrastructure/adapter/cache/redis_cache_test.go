package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/logger"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *RedisStatsCache) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, NewRedisStatsCache(client, time.Minute, logger.NewNoopLogger())
}

func TestRedisStatsCache(t *testing.T) {
	ctx := context.Background()
	stats := entity.UserStats{
		TotalUploads:     3,
		TotalKm:          250,
		TotalEarned:      decimal.RequireFromString("18.75"),
		TotalCarbonSaved: decimal.RequireFromString("12.500"),
	}

	t.Run("Miss", func(t *testing.T) {
		_, c := setupRedis(t)

		lookup, err := c.Get(ctx, 1)

		require.NoError(t, err)
		assert.False(t, lookup.Found)
		assert.Equal(t, uint64(0), lookup.Generation)
	})

	t.Run("Round trip keeps decimals exact", func(t *testing.T) {
		_, c := setupRedis(t)
		require.NoError(t, c.Set(ctx, 1, 0, stats))

		lookup, err := c.Get(ctx, 1)

		require.NoError(t, err)
		require.True(t, lookup.Found)
		assert.Equal(t, int64(250), lookup.Stats.TotalKm)
		assert.True(t, stats.TotalEarned.Equal(lookup.Stats.TotalEarned))
		assert.True(t, stats.TotalCarbonSaved.Equal(lookup.Stats.TotalCarbonSaved))
	})

	t.Run("Entries expire", func(t *testing.T) {
		mr, c := setupRedis(t)
		require.NoError(t, c.Set(ctx, 1, 0, stats))

		mr.FastForward(2 * time.Minute)

		lookup, err := c.Get(ctx, 1)
		require.NoError(t, err)
		assert.False(t, lookup.Found)
	})

	t.Run("Invalidate removes the entry and bumps the generation", func(t *testing.T) {
		mr, c := setupRedis(t)
		require.NoError(t, c.Set(ctx, 7, 0, stats))
		require.True(t, mr.Exists("evr:stats:7"))

		require.NoError(t, c.Invalidate(ctx, 7))
		require.NoError(t, c.Invalidate(ctx, 7))

		assert.False(t, mr.Exists("evr:stats:7"))
		lookup, err := c.Get(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, uint64(2), lookup.Generation)
		assert.Positive(t, mr.TTL("evr:stats-gen:7"))
	})

	t.Run("Fill that raced an invalidation is dropped", func(t *testing.T) {
		_, c := setupRedis(t)
		stale := entity.UserStats{TotalUploads: 0, TotalEarned: decimal.Zero, TotalCarbonSaved: decimal.Zero}

		// reader misses and computes stats from storage
		lookup, err := c.Get(ctx, 4)
		require.NoError(t, err)
		require.False(t, lookup.Found)

		// an upload commits and invalidates before the reader writes back
		require.NoError(t, c.Invalidate(ctx, 4))

		require.NoError(t, c.Set(ctx, 4, lookup.Generation, stale))

		after, err := c.Get(ctx, 4)
		require.NoError(t, err)
		assert.False(t, after.Found)

		// a fresh read at the new generation fills normally
		require.NoError(t, c.Set(ctx, 4, after.Generation, stats))
		filled, err := c.Get(ctx, 4)
		require.NoError(t, err)
		require.True(t, filled.Found)
		assert.Equal(t, int64(3), filled.Stats.TotalUploads)
	})

	t.Run("Corrupt entry counts as miss", func(t *testing.T) {
		mr, c := setupRedis(t)
		require.NoError(t, mr.Set("evr:stats:9", "{not json"))

		lookup, err := c.Get(ctx, 9)

		require.NoError(t, err)
		assert.False(t, lookup.Found)
		assert.False(t, mr.Exists("evr:stats:9"))
	})

	t.Run("Server down surfaces an error", func(t *testing.T) {
		mr, c := setupRedis(t)
		mr.Close()

		_, err := c.Get(ctx, 1)

		assert.Error(t, err)
	})
}

func TestDial(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()

	client, err := Dial(context.Background(), addr, "", 0)
	require.NoError(t, err)
	_ = client.Close()

	mr.Close()
	_, err = Dial(context.Background(), addr, "", 0)
	assert.Error(t, err)
}

func TestNoopStatsCache(t *testing.T) {
	var c NoopStatsCache
	require.NoError(t, c.Set(context.Background(), 1, 0, entity.EmptyStats()))
	require.NoError(t, c.Invalidate(context.Background(), 1))

	lookup, err := c.Get(context.Background(), 1)

	require.NoError(t, err)
	assert.False(t, lookup.Found)
}
