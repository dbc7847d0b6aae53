package repository

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stepClock advances one second on every Now call
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func newStepClock() *stepClock {
	return &stepClock{now: time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

func (c *stepClock) Since(t time.Time) coreport.Duration {
	return coreport.Duration(c.Now().Sub(t))
}

func (c *stepClock) After(d coreport.Duration) <-chan time.Time {
	return time.After(d.Std())
}

func (c *stepClock) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout.Std())
}

// expiringClock hands out already expired deadlines once armed
type expiringClock struct {
	*stepClock
	armed atomic.Bool
}

func (c *expiringClock) WithTimeout(ctx context.Context, timeout coreport.Duration) (context.Context, context.CancelFunc) {
	if c.armed.Load() {
		return context.WithDeadline(ctx, time.Now().Add(-time.Second))
	}
	return c.stepClock.WithTimeout(ctx, timeout)
}

type storageFactory func(t *testing.T, clock coreport.TimeProvider) persistence.Storage

func backends() map[string]storageFactory {
	return map[string]storageFactory{
		"memory": func(_ *testing.T, clock coreport.TimeProvider) persistence.Storage {
			return NewMemoryStorage(clock)
		},
		"sqlite": func(t *testing.T, clock coreport.TimeProvider) persistence.Storage {
			manager := database.NewTestManager(t, logger.NewNoopLogger())
			return NewGormStorage(manager, clock, logger.NewNoopLogger())
		},
	}
}

func newDriver(t *testing.T, store persistence.Storage, email string, vt entity.VehicleType) *entity.User {
	t.Helper()
	user, err := store.CreateUser(context.Background(), &entity.User{
		Email:       email,
		Name:        "Driver",
		VehicleType: vt,
		CreatedAt:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return user
}

func newUploadFor(userID uint64, km int64, vt entity.VehicleType, key string) *entity.Upload {
	reward := entity.ComputeReward(km, vt)
	upload := &entity.Upload{
		UserID:        userID,
		ImageID:       fmt.Sprintf("odometer/%d/%d.jpg", userID, km),
		EstimatedKm:   reward.DistanceKm,
		CarbonSavedKg: reward.CarbonSavedKg,
		CarbonCredits: reward.CarbonCredits,
		RewardAmount:  reward.RewardAmount,
	}
	if key != "" {
		upload.IdempotencyKey = &key
	}
	return upload
}

func TestStorageUsers(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t, newStepClock())

			user := newDriver(t, store, "Asha@Example.com", entity.VehicleEVBike)
			assert.NotZero(t, user.ID)
			assert.Equal(t, "asha@example.com", user.Email)
			assert.Equal(t, "0.00", user.GetBalance())
			assert.Equal(t, "0.000000", user.GetCarbonCredits())

			byEmail, err := store.GetUserByEmail(ctx, "ASHA@example.com ")
			require.NoError(t, err)
			assert.Equal(t, user.ID, byEmail.ID)

			_, err = store.CreateUser(ctx, &entity.User{Email: "asha@example.com", Name: "Again", VehicleType: entity.VehicleEVCar})
			assert.ErrorIs(t, err, errs.ErrDuplicateUser)

			_, err = store.GetUserByID(ctx, 999)
			assert.ErrorIs(t, err, errs.ErrUserNotFound)

			name := "Asha K"
			vt := entity.VehicleEVCar
			rc := "registration/1/rc.jpg"
			updated, err := store.UpdateUser(ctx, user.ID, entity.UserUpdate{Name: &name, VehicleType: &vt, RCImageID: &rc})
			require.NoError(t, err)
			assert.Equal(t, "Asha K", updated.Name)
			assert.Equal(t, entity.VehicleEVCar, updated.VehicleType)
			require.NotNil(t, updated.RCImageID)
			assert.Equal(t, rc, *updated.RCImageID)

			reloaded, err := store.GetUserByID(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, entity.VehicleEVCar, reloaded.VehicleType)

			_, err = store.UpdateUser(ctx, 999, entity.UserUpdate{Name: &name})
			assert.ErrorIs(t, err, errs.ErrUserNotFound)

			require.NoError(t, store.Ping(ctx))
		})
	}
}

func TestStorageCreateUpload(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t, newStepClock())
			user := newDriver(t, store, "ravi@example.com", entity.VehicleERickshaw)

			upload, credited, err := store.CreateUpload(ctx, newUploadFor(user.ID, 100, entity.VehicleERickshaw, ""))
			require.NoError(t, err)
			assert.NotZero(t, upload.ID)
			assert.False(t, upload.CreatedAt.IsZero())
			assert.Equal(t, "7.50", credited.GetBalance())
			assert.Equal(t, "0.005000", credited.GetCarbonCredits())

			_, credited, err = store.CreateUpload(ctx, newUploadFor(user.ID, 57, entity.VehicleERickshaw, ""))
			require.NoError(t, err)
			assert.Equal(t, "11.78", credited.GetBalance())
			assert.Equal(t, "0.007850", credited.GetCarbonCredits())

			reloaded, err := store.GetUserByID(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, "11.78", reloaded.GetBalance())

			fetched, err := store.GetUploadByID(ctx, upload.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(100), fetched.EstimatedKm)
			assert.Equal(t, "5.000", entity.FormatCarbon(fetched.CarbonSavedKg))

			_, err = store.GetUploadByID(ctx, 9999)
			assert.ErrorIs(t, err, errs.ErrUploadNotFound)
		})
	}
}

func TestGormWritesUseQueryTimeout(t *testing.T) {
	ctx := context.Background()
	clock := &expiringClock{stepClock: newStepClock()}
	manager := database.NewTestManagerWithTimeProvider(t, logger.NewNoopLogger(), clock)
	store := NewGormStorage(manager, clock, logger.NewNoopLogger())
	user := newDriver(t, store, "timeout@example.com", entity.VehicleEVCar)

	clock.armed.Store(true)
	_, _, err := store.CreateUpload(ctx, newUploadFor(user.ID, 100, entity.VehicleEVCar, ""))
	assert.Error(t, err)
	name := "Renamed"
	_, err = store.UpdateUser(ctx, user.ID, entity.UserUpdate{Name: &name})
	assert.Error(t, err)
	clock.armed.Store(false)

	reloaded, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "0.00", reloaded.GetBalance())
	assert.Equal(t, user.Name, reloaded.Name)
	stats, err := store.GetUserStats(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalUploads)
}

func TestStorageCreateUploadUnknownUser(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t, newStepClock())

			_, _, err := store.CreateUpload(ctx, newUploadFor(42, 10, entity.VehicleEVCar, ""))
			assert.ErrorIs(t, err, errs.ErrUserNotFound)

			uploads, err := store.GetUploadsByUserID(ctx, 42)
			require.NoError(t, err)
			assert.Empty(t, uploads)
		})
	}
}

func TestStorageIdempotencyKey(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t, newStepClock())
			user := newDriver(t, store, "kiran@example.com", entity.VehicleEVCar)
			other := newDriver(t, store, "meena@example.com", entity.VehicleEVCar)

			first, _, err := store.CreateUpload(ctx, newUploadFor(user.ID, 40, entity.VehicleEVCar, "trip-1"))
			require.NoError(t, err)

			_, _, err = store.CreateUpload(ctx, newUploadFor(user.ID, 40, entity.VehicleEVCar, "trip-1"))
			require.ErrorIs(t, err, errs.ErrDuplicateUpload)
			var dup *errs.DuplicateUploadError
			require.ErrorAs(t, err, &dup)
			assert.Equal(t, first.ID, dup.ExistingUploadID)

			// keys are scoped per user
			_, _, err = store.CreateUpload(ctx, newUploadFor(other.ID, 40, entity.VehicleEVCar, "trip-1"))
			require.NoError(t, err)

			found, err := store.GetUploadByIdempotencyKey(ctx, user.ID, "trip-1")
			require.NoError(t, err)
			assert.Equal(t, first.ID, found.ID)

			_, err = store.GetUploadByIdempotencyKey(ctx, user.ID, "trip-2")
			assert.ErrorIs(t, err, errs.ErrUploadNotFound)

			reloaded, err := store.GetUserByID(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, first.RewardAmount.StringFixed(2), reloaded.GetBalance())
		})
	}
}

func TestStorageListAndStats(t *testing.T) {
	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t, newStepClock())
			user := newDriver(t, store, "list@example.com", entity.VehicleEVBike)

			stats, err := store.GetUserStats(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(0), stats.TotalUploads)
			assert.Equal(t, int64(0), stats.TotalKm)
			assert.True(t, stats.TotalEarned.IsZero())
			assert.True(t, stats.TotalCarbonSaved.IsZero())

			var ids []uint64
			for _, km := range []int64{50, 120, 80} {
				upload, _, err := store.CreateUpload(ctx, newUploadFor(user.ID, km, entity.VehicleEVBike, ""))
				require.NoError(t, err)
				ids = append(ids, upload.ID)
			}

			uploads, err := store.GetUploadsByUserID(ctx, user.ID)
			require.NoError(t, err)
			require.Len(t, uploads, 3)
			assert.Equal(t, []uint64{ids[2], ids[1], ids[0]}, []uint64{uploads[0].ID, uploads[1].ID, uploads[2].ID})

			stats, err = store.GetUserStats(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(3), stats.TotalUploads)
			assert.Equal(t, int64(250), stats.TotalKm)

			expected := entity.EmptyStats()
			for _, u := range uploads {
				expected.Add(u)
			}
			expected = expected.Normalize()
			assert.Equal(t, expected.TotalEarned.StringFixed(2), stats.TotalEarned.StringFixed(2))
			assert.Equal(t, expected.TotalCarbonSaved.StringFixed(3), stats.TotalCarbonSaved.StringFixed(3))
		})
	}
}

func TestStorageConcurrentUploads(t *testing.T) {
	const workers = 8

	for name, factory := range backends() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := factory(t, newStepClock())
			user := newDriver(t, store, "busy@example.com", entity.VehicleERickshaw)

			var wg sync.WaitGroup
			errCh := make(chan error, workers)
			for i := 0; i < workers; i++ {
				wg.Add(1)
				go func() {
					defer wg.Done()
					_, _, err := store.CreateUpload(ctx, newUploadFor(user.ID, 100, entity.VehicleERickshaw, ""))
					errCh <- err
				}()
			}
			wg.Wait()
			close(errCh)

			for err := range errCh {
				require.NoError(t, err)
			}

			reloaded, err := store.GetUserByID(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, "60.00", reloaded.GetBalance())
			assert.Equal(t, "0.040000", reloaded.GetCarbonCredits())

			stats, err := store.GetUserStats(ctx, user.ID)
			require.NoError(t, err)
			assert.Equal(t, int64(workers), stats.TotalUploads)
		})
	}
}

func TestMemoryStorageReset(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage(newStepClock())
	user := newDriver(t, store, "reset@example.com", entity.VehicleEVCar)

	store.Reset()

	_, err := store.GetUserByID(ctx, user.ID)
	assert.ErrorIs(t, err, errs.ErrUserNotFound)

	again := newDriver(t, store, "reset@example.com", entity.VehicleEVCar)
	assert.Equal(t, uint64(1), again.ID)
}

func TestMemoryStorageReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStorage(newStepClock())
	user := newDriver(t, store, "copy@example.com", entity.VehicleEVCar)

	user.Name = "mutated"

	reloaded, err := store.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Driver", reloaded.Name)
}
