package imagestore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
)

// LocalStore writes images below a root directory on the local disk
type LocalStore struct {
	root   string
	logger coreport.Logger
}

var _ media.ImageStore = (*LocalStore)(nil)

// NewLocalStore creates the root directory if it does not exist
func NewLocalStore(root string, logger coreport.Logger) (*LocalStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image directory %s: %w", root, err)
	}
	return &LocalStore{root: root, logger: logger}, nil
}

// Save writes the image to a temporary file and renames it into place, so
// readers never see a partial image
func (s *LocalStore) Save(ctx context.Context, folder string, userID uint64, img *media.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := objectKey(folder, userID, img.Extension)
	path := filepath.Join(s.root, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", s.fail(key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".upload-*")
	if err != nil {
		return "", s.fail(key, err)
	}
	if _, err := tmp.Write(img.Data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return "", s.fail(key, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return "", s.fail(key, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return "", s.fail(key, err)
	}

	return key, nil
}

// Delete removes the image file; a missing file counts as deleted
func (s *LocalStore) Delete(ctx context.Context, imageID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(s.Path(imageID)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %v", errs.ErrImageStorage, err)
	}
	return nil
}

// Path resolves an image ID to its file
func (s *LocalStore) Path(imageID string) string {
	return filepath.Join(s.root, filepath.FromSlash(imageID))
}

func (s *LocalStore) fail(key string, err error) error {
	s.logger.Error("Failed to write image", map[string]any{
		"key":   key,
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %v", errs.ErrImageStorage, err)
}
