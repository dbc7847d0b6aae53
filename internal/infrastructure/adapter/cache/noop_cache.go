package cache

import (
	"context"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/persistence"
)

// NoopStatsCache never holds anything, so every read goes to storage
type NoopStatsCache struct{}

var _ persistence.StatsCache = NoopStatsCache{}

func (NoopStatsCache) Get(context.Context, uint64) (persistence.StatsLookup, error) {
	return persistence.StatsLookup{}, nil
}

func (NoopStatsCache) Set(context.Context, uint64, uint64, entity.UserStats) error { return nil }

func (NoopStatsCache) Invalidate(context.Context, uint64) error { return nil }
