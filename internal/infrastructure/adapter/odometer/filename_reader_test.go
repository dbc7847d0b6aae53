package odometer

import (
	"context"
	"math/rand"
	"testing"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadDistance(t *testing.T) {
	reader := NewFilenameReader(50, 199, rand.New(rand.NewSource(1)), logger.NewNoopLogger())
	ctx := context.Background()

	tests := []struct {
		filename string
		expected int64
	}{
		{"odo_100.jpg", 100},
		{"IMG_20240601_0931.jpg", 20240601},
		{"trip-0042km.png", 42},
		{"0.jpg", 0},
	}

	for _, tc := range tests {
		t.Run(tc.filename, func(t *testing.T) {
			km, err := reader.ReadDistance(ctx, tc.filename, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, km)
		})
	}
}

func TestReadDistanceFallback(t *testing.T) {
	reader := NewFilenameReader(50, 199, rand.New(rand.NewSource(7)), logger.NewNoopLogger())
	ctx := context.Background()

	for _, name := range []string{"", "photo.jpg", "odometer.jpeg", "99999999999999999999.jpg"} {
		km, err := reader.ReadDistance(ctx, name, nil)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, km, int64(50))
		assert.LessOrEqual(t, km, int64(199))
	}
}

func TestReadDistanceDeterministicWithSeed(t *testing.T) {
	a := NewFilenameReader(50, 199, rand.New(rand.NewSource(42)), logger.NewNoopLogger())
	b := NewFilenameReader(50, 199, rand.New(rand.NewSource(42)), logger.NewNoopLogger())

	for i := 0; i < 5; i++ {
		x, _ := a.ReadDistance(context.Background(), "photo.jpg", nil)
		y, _ := b.ReadDistance(context.Background(), "photo.jpg", nil)
		assert.Equal(t, x, y)
	}
}

func TestSingleValueRange(t *testing.T) {
	reader := NewFilenameReader(80, 80, rand.New(rand.NewSource(3)), logger.NewNoopLogger())

	km, err := reader.ReadDistance(context.Background(), "x.jpg", nil)

	require.NoError(t, err)
	assert.Equal(t, int64(80), km)
}
