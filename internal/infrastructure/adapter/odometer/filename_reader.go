package odometer

import (
	"context"
	"math/rand"
	"regexp"
	"strconv"
	"sync"

	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
)

var digitRun = regexp.MustCompile(`\d+`)

// FilenameReader stands in for OCR. It takes the first run of digits in the
// uploaded filename as the distance and otherwise picks a random distance
// in [minKm, maxKm]. The image itself is not inspected.
type FilenameReader struct {
	minKm  int64
	maxKm  int64
	mu     sync.Mutex
	rng    *rand.Rand
	logger coreport.Logger
}

var _ media.OdometerReader = (*FilenameReader)(nil)

// NewFilenameReader uses rng for the fallback distance. Swapped bounds are reordered.
func NewFilenameReader(minKm, maxKm int64, rng *rand.Rand, logger coreport.Logger) *FilenameReader {
	if minKm > maxKm {
		minKm, maxKm = maxKm, minKm
	}
	return &FilenameReader{minKm: minKm, maxKm: maxKm, rng: rng, logger: logger}
}

func (r *FilenameReader) ReadDistance(_ context.Context, filename string, _ *media.Image) (int64, error) {
	if match := digitRun.FindString(filename); match != "" {
		km, err := strconv.ParseInt(match, 10, 64)
		if err == nil {
			return km, nil
		}
		r.logger.Debug("Ignoring out of range odometer digits", map[string]any{
			"filename": filename,
		})
	}

	r.mu.Lock()
	km := r.minKm + r.rng.Int63n(r.maxKm-r.minKm+1)
	r.mu.Unlock()
	return km, nil
}
