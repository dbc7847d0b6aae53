package imagestore

import (
	"context"
	"sync"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/media"
)

// MemoryStore keeps images in a map; used by tests and the memory profile
type MemoryStore struct {
	mu      sync.RWMutex
	objects map[string]media.Image
}

var _ media.ImageStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{objects: make(map[string]media.Image)}
}

func (s *MemoryStore) Save(ctx context.Context, folder string, userID uint64, img *media.Image) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	key := objectKey(folder, userID, img.Extension)

	stored := *img
	stored.Data = append([]byte(nil), img.Data...)

	s.mu.Lock()
	s.objects[key] = stored
	s.mu.Unlock()
	return key, nil
}

func (s *MemoryStore) Delete(ctx context.Context, imageID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.objects, imageID)
	s.mu.Unlock()
	return nil
}

// Load returns a stored image by ID
func (s *MemoryStore) Load(imageID string) (media.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	img, ok := s.objects[imageID]
	return img, ok
}

// Len reports how many images are stored
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
