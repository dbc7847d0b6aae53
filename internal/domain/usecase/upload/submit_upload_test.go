package upload

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/identity"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
	coremocks "github.com/amirhossein-jamali/ev-carbon-rewards/mocks/port/core"
	mediamocks "github.com/amirhossein-jamali/ev-carbon-rewards/mocks/port/media"
	persistencemocks "github.com/amirhossein-jamali/ev-carbon-rewards/mocks/port/persistence"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type uploadFixture struct {
	users     *persistencemocks.MockUserRepository
	uploads   *persistencemocks.MockUploadRepository
	cache     *persistencemocks.MockStatsCache
	processor *mediamocks.MockImageProcessor
	images    *mediamocks.MockImageStore
	odometer  *mediamocks.MockOdometerReader
	time      *coremocks.MockTimeProvider
	logger    *coremocks.MockLogger
	service   usecase.UploadUseCase
}

func newUploadFixture(t *testing.T) *uploadFixture {
	f := &uploadFixture{
		users:     persistencemocks.NewMockUserRepository(t),
		uploads:   persistencemocks.NewMockUploadRepository(t),
		cache:     persistencemocks.NewMockStatsCache(t),
		processor: mediamocks.NewMockImageProcessor(t),
		images:    mediamocks.NewMockImageStore(t),
		odometer:  mediamocks.NewMockOdometerReader(t),
		time:      coremocks.NewMockTimeProvider(t),
		logger:    coremocks.NewMockLogger(t),
	}
	f.service = NewUploadService(Dependencies{
		UserRepo:     f.users,
		UploadRepo:   f.uploads,
		StatsCache:   f.cache,
		Processor:    f.processor,
		Images:       f.images,
		Odometer:     f.odometer,
		TimeProvider: f.time,
		Logger:       f.logger,
	})
	return f
}

func TestSubmitUpload(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	driver := &entity.User{ID: 3, Email: "d@x.io", VehicleType: entity.VehicleERickshaw, Balance: decimal.Zero, CarbonCredits: decimal.Zero}
	img := &media.Image{Data: []byte{1, 2, 3}, ContentType: "image/jpeg", Extension: ".jpg"}

	t.Run("Successful upload credits the wallet", func(t *testing.T) {
		f := newUploadFixture(t)
		body := bytes.NewReader([]byte("jpeg"))

		f.users.EXPECT().GetUserByID(mock.Anything, uint64(3)).Return(driver, nil).Once()
		f.processor.EXPECT().Process(mock.Anything, body).Return(img, nil).Once()
		f.odometer.EXPECT().ReadDistance(mock.Anything, "odo_100.jpg", img).Return(int64(100), nil).Once()
		f.images.EXPECT().Save(mock.Anything, media.FolderOdometer, uint64(3), img).Return("odometer/3/x.jpg", nil).Once()
		f.time.EXPECT().Now().Return(now).Once()
		f.uploads.EXPECT().CreateUpload(mock.Anything, mock.MatchedBy(func(u *entity.Upload) bool {
			return u.UserID == 3 &&
				u.ImageID == "odometer/3/x.jpg" &&
				u.EstimatedKm == 100 &&
				entity.FormatAmount(u.RewardAmount) == "7.50" &&
				entity.FormatCredits(u.CarbonCredits) == "0.005000" &&
				entity.FormatCarbon(u.CarbonSavedKg) == "5.000" &&
				u.IdempotencyKey == nil
		})).RunAndReturn(func(_ context.Context, u *entity.Upload) (*entity.Upload, *entity.User, error) {
			stored := *u
			stored.ID = 11
			wallet := *driver
			wallet.ApplyReward(u.Reward(), now)
			return &stored, &wallet, nil
		}).Once()
		f.cache.EXPECT().Invalidate(mock.Anything, uint64(3)).Return(nil).Once()
		f.logger.EXPECT().Info("Upload rewarded", mock.Anything).Once()

		result, err := f.service.SubmitUpload(ctx, usecase.SubmitUploadRequest{
			UserID:   3,
			Filename: "C:\\photos\\odo_100.jpg",
			Body:     body,
		})

		require.NoError(t, err)
		assert.False(t, result.Replayed)
		assert.Equal(t, uint64(11), result.Upload.ID)
		assert.Equal(t, "7.50", result.User.GetBalance())
		assert.Equal(t, "0.005000", result.User.GetCarbonCredits())
	})

	t.Run("Replayed idempotency key returns the earlier upload", func(t *testing.T) {
		f := newUploadFixture(t)
		earlier := &entity.Upload{ID: 4, UserID: 3, EstimatedKm: 80}

		f.users.EXPECT().GetUserByID(mock.Anything, uint64(3)).Return(driver, nil).Once()
		f.uploads.EXPECT().GetUploadByIdempotencyKey(mock.Anything, uint64(3), "abc").Return(earlier, nil).Once()
		f.logger.EXPECT().Info("Replayed upload returned", mock.Anything).Once()

		result, err := f.service.SubmitUpload(ctx, usecase.SubmitUploadRequest{
			UserID:         3,
			Filename:       "odo.jpg",
			Body:           bytes.NewReader([]byte("jpeg")),
			IdempotencyKey: " abc ",
		})

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, earlier, result.Upload)
	})

	t.Run("Concurrent duplicate resolves to the winning upload", func(t *testing.T) {
		f := newUploadFixture(t)
		body := bytes.NewReader([]byte("jpeg"))
		winner := &entity.Upload{ID: 21, UserID: 3}

		f.users.EXPECT().GetUserByID(mock.Anything, uint64(3)).Return(driver, nil).Once()
		f.uploads.EXPECT().GetUploadByIdempotencyKey(mock.Anything, uint64(3), "k").Return(nil, errs.ErrUploadNotFound).Once()
		f.processor.EXPECT().Process(mock.Anything, body).Return(img, nil).Once()
		f.odometer.EXPECT().ReadDistance(mock.Anything, "odo.jpg", img).Return(int64(60), nil).Once()
		f.images.EXPECT().Save(mock.Anything, media.FolderOdometer, uint64(3), img).Return("odometer/3/y.jpg", nil).Once()
		f.time.EXPECT().Now().Return(now).Once()
		f.uploads.EXPECT().CreateUpload(mock.Anything, mock.Anything).Return(nil, nil, errs.NewDuplicateUploadError("k", 3, 21)).Once()
		f.images.EXPECT().Delete(mock.Anything, "odometer/3/y.jpg").Return(nil).Once()
		f.uploads.EXPECT().GetUploadByIdempotencyKey(mock.Anything, uint64(3), "k").Return(winner, nil).Once()

		result, err := f.service.SubmitUpload(ctx, usecase.SubmitUploadRequest{
			UserID: 3, Filename: "odo.jpg", Body: body, IdempotencyKey: "k",
		})

		require.NoError(t, err)
		assert.True(t, result.Replayed)
		assert.Equal(t, uint64(21), result.Upload.ID)
	})

	t.Run("Persistence failure removes the stored image", func(t *testing.T) {
		f := newUploadFixture(t)
		body := bytes.NewReader([]byte("jpeg"))

		f.users.EXPECT().GetUserByID(mock.Anything, uint64(3)).Return(driver, nil).Once()
		f.processor.EXPECT().Process(mock.Anything, body).Return(img, nil).Once()
		f.odometer.EXPECT().ReadDistance(mock.Anything, "odo.jpg", img).Return(int64(10), nil).Once()
		f.images.EXPECT().Save(mock.Anything, media.FolderOdometer, uint64(3), img).Return("odometer/3/z.jpg", nil).Once()
		f.time.EXPECT().Now().Return(now).Once()
		f.uploads.EXPECT().CreateUpload(mock.Anything, mock.Anything).Return(nil, nil, errors.New("connection reset")).Once()
		f.images.EXPECT().Delete(mock.Anything, "odometer/3/z.jpg").Return(nil).Once()
		f.logger.EXPECT().Error("Upload processing failed", mock.Anything).Once()

		_, err := f.service.SubmitUpload(ctx, usecase.SubmitUploadRequest{UserID: 3, Filename: "odo.jpg", Body: body})

		var upErr *errs.UploadError
		require.ErrorAs(t, err, &upErr)
		assert.Equal(t, "persist", upErr.Stage)
	})

	t.Run("Failed image cleanup is only logged", func(t *testing.T) {
		f := newUploadFixture(t)
		body := bytes.NewReader([]byte("jpeg"))

		f.users.EXPECT().GetUserByID(mock.Anything, uint64(3)).Return(driver, nil).Once()
		f.processor.EXPECT().Process(mock.Anything, body).Return(img, nil).Once()
		f.odometer.EXPECT().ReadDistance(mock.Anything, "odo.jpg", img).Return(int64(10), nil).Once()
		f.images.EXPECT().Save(mock.Anything, media.FolderOdometer, uint64(3), img).Return("odometer/3/z.jpg", nil).Once()
		f.time.EXPECT().Now().Return(now).Once()
		f.uploads.EXPECT().CreateUpload(mock.Anything, mock.Anything).Return(nil, nil, errs.ErrUserNotFound).Once()
		f.images.EXPECT().Delete(mock.Anything, "odometer/3/z.jpg").Return(errs.ErrImageStorage).Once()
		f.logger.EXPECT().Warn("Failed to discard unreferenced image", mock.Anything).Once()

		_, err := f.service.SubmitUpload(ctx, usecase.SubmitUploadRequest{UserID: 3, Filename: "odo.jpg", Body: body})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Unknown user", func(t *testing.T) {
		f := newUploadFixture(t)
		f.users.EXPECT().GetUserByID(mock.Anything, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()

		_, err := f.service.SubmitUpload(ctx, usecase.SubmitUploadRequest{UserID: 99, Body: bytes.NewReader(nil)})

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("Request validation", func(t *testing.T) {
		f := newUploadFixture(t)

		_, err := f.service.SubmitUpload(ctx, usecase.SubmitUploadRequest{Body: bytes.NewReader(nil)})
		assert.ErrorIs(t, err, errs.ErrInvalidUserID)

		_, err = f.service.SubmitUpload(ctx, usecase.SubmitUploadRequest{UserID: 1})
		assert.ErrorIs(t, err, errs.ErrMissingImage)
	})

	t.Run("Rejected image", func(t *testing.T) {
		f := newUploadFixture(t)
		body := bytes.NewReader([]byte("%PDF-1.4"))

		f.users.EXPECT().GetUserByID(mock.Anything, uint64(3)).Return(driver, nil).Once()
		f.processor.EXPECT().Process(mock.Anything, body).Return(nil, errs.ErrUnsupportedImage).Once()

		_, err := f.service.SubmitUpload(ctx, usecase.SubmitUploadRequest{UserID: 3, Filename: "doc.pdf", Body: body})

		assert.ErrorIs(t, err, errs.ErrUnsupportedImage)
		var upErr *errs.UploadError
		require.ErrorAs(t, err, &upErr)
		assert.Equal(t, "validate", upErr.Stage)
	})

	t.Run("Image storage failure", func(t *testing.T) {
		f := newUploadFixture(t)
		body := bytes.NewReader([]byte("jpeg"))

		f.users.EXPECT().GetUserByID(mock.Anything, uint64(3)).Return(driver, nil).Once()
		f.processor.EXPECT().Process(mock.Anything, body).Return(img, nil).Once()
		f.odometer.EXPECT().ReadDistance(mock.Anything, "odo.jpg", img).Return(int64(10), nil).Once()
		f.images.EXPECT().Save(mock.Anything, media.FolderOdometer, uint64(3), img).Return("", errs.ErrImageStorage).Once()
		f.logger.EXPECT().Error("Upload processing failed", mock.Anything).Once()

		_, err := f.service.SubmitUpload(ctx, usecase.SubmitUploadRequest{UserID: 3, Filename: "odo.jpg", Body: body})

		assert.ErrorIs(t, err, errs.ErrImageStorage)
	})

	t.Run("Cache invalidation failure does not fail the upload", func(t *testing.T) {
		f := newUploadFixture(t)
		body := bytes.NewReader([]byte("jpeg"))

		f.users.EXPECT().GetUserByID(mock.Anything, uint64(3)).Return(driver, nil).Once()
		f.processor.EXPECT().Process(mock.Anything, body).Return(img, nil).Once()
		f.odometer.EXPECT().ReadDistance(mock.Anything, "", img).Return(int64(120), nil).Once()
		f.images.EXPECT().Save(mock.Anything, media.FolderOdometer, uint64(3), img).Return("id", nil).Once()
		f.time.EXPECT().Now().Return(now).Once()
		f.uploads.EXPECT().CreateUpload(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, u *entity.Upload) (*entity.Upload, *entity.User, error) {
			return u, driver, nil
		}).Once()
		f.cache.EXPECT().Invalidate(mock.Anything, uint64(3)).Return(errors.New("redis down")).Once()
		f.logger.EXPECT().Warn("Failed to invalidate stats cache", mock.Anything).Once()
		f.logger.EXPECT().Info("Upload rewarded", mock.Anything).Once()

		result, err := f.service.SubmitUpload(ctx, usecase.SubmitUploadRequest{UserID: 3, Body: body})

		require.NoError(t, err)
		assert.Equal(t, int64(120), result.Upload.EstimatedKm)
	})

	t.Run("Uploads for another identity are forbidden", func(t *testing.T) {
		f := newUploadFixture(t)
		authCtx := identity.WithIdentity(ctx, &identity.Identity{Email: "other@x.io"})

		f.users.EXPECT().GetUserByID(mock.Anything, uint64(3)).Return(driver, nil).Once()

		_, err := f.service.SubmitUpload(authCtx, usecase.SubmitUploadRequest{UserID: 3, Body: bytes.NewReader(nil)})

		assert.ErrorIs(t, err, errs.ErrForbidden)
	})
}
