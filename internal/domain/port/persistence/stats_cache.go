package persistence

import (
	"context"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
)

// StatsLookup is the outcome of a cache read. Generation identifies the
// entry version the read observed and must be handed back to Set.
type StatsLookup struct {
	Stats      entity.UserStats
	Found      bool
	Generation uint64
}

// StatsCache holds recently computed user statistics.
// A miss is reported as Found=false with a nil error.
type StatsCache interface {
	Get(ctx context.Context, userID uint64) (StatsLookup, error)
	// Set stores stats only while the user's generation still equals
	// generation. A fill that raced an Invalidate is dropped silently.
	Set(ctx context.Context, userID uint64, generation uint64, stats entity.UserStats) error
	// Invalidate removes the entry and bumps the user's generation
	Invalidate(ctx context.Context, userID uint64) error
}
