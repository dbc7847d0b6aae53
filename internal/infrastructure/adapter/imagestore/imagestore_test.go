package imagestore

import (
	"context"
	"errors"
	"io"
	"os"
	"regexp"
	"testing"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/infrastructure/adapter/logger"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^odometer/7/[0-9a-f-]{36}\.jpg$`)

func testImage() *media.Image {
	return &media.Image{Data: []byte{0xff, 0xd8, 0xff}, ContentType: "image/jpeg", Extension: ".jpg"}
}

func TestObjectKey(t *testing.T) {
	assert.Regexp(t, keyPattern, objectKey(media.FolderOdometer, 7, ".jpg"))
	assert.Regexp(t, keyPattern, objectKey(media.FolderOdometer, 7, "jpg"))
	assert.Regexp(t, keyPattern, objectKey(media.FolderOdometer, 7, ""))
	assert.NotEqual(t, objectKey("a", 1, ".jpg"), objectKey("a", 1, ".jpg"))
}

func TestLocalStore(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalStore(root, logger.NewNoopLogger())
	require.NoError(t, err)

	key, err := store.Save(context.Background(), media.FolderOdometer, 7, testImage())
	require.NoError(t, err)
	assert.Regexp(t, keyPattern, key)

	data, err := os.ReadFile(store.Path(key))
	require.NoError(t, err)
	assert.Equal(t, testImage().Data, data)

	require.NoError(t, store.Delete(context.Background(), key))
	_, err = os.Stat(store.Path(key))
	assert.True(t, os.IsNotExist(err))
	assert.NoError(t, store.Delete(context.Background(), key), "deleting twice is fine")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = store.Save(ctx, media.FolderOdometer, 7, testImage())
	assert.ErrorIs(t, err, context.Canceled)
}

type fakePutter struct {
	input   *s3.PutObjectInput
	deleted *s3.DeleteObjectInput
	body    []byte
	err     error
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, nil
}

func (f *fakePutter) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.deleted = in
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3Store(t *testing.T) {
	t.Run("Puts the object under its key", func(t *testing.T) {
		putter := &fakePutter{}
		store := NewS3StoreWithClient(putter, "odometer-photos", logger.NewNoopLogger())

		key, err := store.Save(context.Background(), media.FolderOdometer, 7, testImage())

		require.NoError(t, err)
		assert.Regexp(t, keyPattern, key)
		assert.Equal(t, "odometer-photos", *putter.input.Bucket)
		assert.Equal(t, key, *putter.input.Key)
		assert.Equal(t, "image/jpeg", *putter.input.ContentType)
		assert.Equal(t, testImage().Data, putter.body)
	})

	t.Run("Deletes the object by key", func(t *testing.T) {
		putter := &fakePutter{}
		store := NewS3StoreWithClient(putter, "odometer-photos", logger.NewNoopLogger())

		require.NoError(t, store.Delete(context.Background(), "odometer/7/a.jpg"))

		assert.Equal(t, "odometer-photos", *putter.deleted.Bucket)
		assert.Equal(t, "odometer/7/a.jpg", *putter.deleted.Key)
	})

	t.Run("Backend failure", func(t *testing.T) {
		store := NewS3StoreWithClient(&fakePutter{err: errors.New("access denied")}, "b", logger.NewNoopLogger())

		_, err := store.Save(context.Background(), media.FolderRegistration, 7, testImage())
		assert.ErrorIs(t, err, errs.ErrImageStorage)

		err = store.Delete(context.Background(), "odometer/7/a.jpg")
		assert.ErrorIs(t, err, errs.ErrImageStorage)
	})
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	img := testImage()

	key, err := store.Save(context.Background(), media.FolderOdometer, 7, img)
	require.NoError(t, err)

	img.Data[0] = 0
	stored, ok := store.Load(key)
	require.True(t, ok)
	assert.Equal(t, byte(0xff), stored.Data[0])
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(context.Background(), key))
	_, ok = store.Load(key)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}
