package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	coreport "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/core"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/persistence"
	"github.com/shopspring/decimal"
)

// MemoryStorage keeps users and uploads in process memory. A single mutex
// serialises every operation, which also makes CreateUpload atomic.
type MemoryStorage struct {
	mu           sync.Mutex
	users        map[uint64]*entity.User
	emails       map[string]uint64
	uploads      map[uint64]*entity.Upload
	byUser       map[uint64][]uint64
	nextUserID   uint64
	nextUploadID uint64
	timeProvider coreport.TimeProvider
}

var _ persistence.Storage = (*MemoryStorage)(nil)

// NewMemoryStorage creates an empty store
func NewMemoryStorage(timeProvider coreport.TimeProvider) *MemoryStorage {
	s := &MemoryStorage{timeProvider: timeProvider}
	s.reset()
	return s
}

// Reset drops all data and restarts ID sequences
func (s *MemoryStorage) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
}

func (s *MemoryStorage) reset() {
	s.users = make(map[uint64]*entity.User)
	s.emails = make(map[string]uint64)
	s.uploads = make(map[uint64]*entity.Upload)
	s.byUser = make(map[uint64][]uint64)
	s.nextUserID = 1
	s.nextUploadID = 1
}

func copyUser(u *entity.User) *entity.User {
	c := *u
	if u.RCImageID != nil {
		id := *u.RCImageID
		c.RCImageID = &id
	}
	return &c
}

func copyUpload(u *entity.Upload) *entity.Upload {
	c := *u
	if u.IdempotencyKey != nil {
		key := *u.IdempotencyKey
		c.IdempotencyKey = &key
	}
	return &c
}

// GetUserByID retrieves a user by ID
func (s *MemoryStorage) GetUserByID(_ context.Context, id uint64) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return copyUser(user), nil
}

// GetUserByEmail retrieves a user by normalised email
func (s *MemoryStorage) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.emails[entity.NormalizeEmail(email)]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	return copyUser(s.users[id]), nil
}

// CreateUser stores the user with an empty wallet
func (s *MemoryStorage) CreateUser(_ context.Context, user *entity.User) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	email := entity.NormalizeEmail(user.Email)
	if _, taken := s.emails[email]; taken {
		return nil, errs.NewDuplicateUserError(email)
	}

	stored := copyUser(user)
	stored.ID = s.nextUserID
	stored.Email = email
	stored.Balance = decimal.Zero
	stored.CarbonCredits = decimal.Zero
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.timeProvider.Now()
	}
	stored.UpdatedAt = stored.CreatedAt
	s.nextUserID++

	s.users[stored.ID] = stored
	s.emails[email] = stored.ID
	return copyUser(stored), nil
}

// UpdateUser merges a partial profile change
func (s *MemoryStorage) UpdateUser(_ context.Context, id uint64, update entity.UserUpdate) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	update.Apply(user, s.timeProvider.Now())
	return copyUser(user), nil
}

// CreateUpload stores the upload and credits the owner
func (s *MemoryStorage) CreateUpload(_ context.Context, upload *entity.Upload) (*entity.Upload, *entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[upload.UserID]
	if !ok {
		return nil, nil, errs.ErrUserNotFound
	}

	if upload.IdempotencyKey != nil {
		if existing := s.findByKey(upload.UserID, *upload.IdempotencyKey); existing != nil {
			return nil, nil, errs.NewDuplicateUploadError(*upload.IdempotencyKey, upload.UserID, existing.ID)
		}
	}

	stored := copyUpload(upload)
	stored.ID = s.nextUploadID
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = s.timeProvider.Now()
	}
	s.nextUploadID++

	s.uploads[stored.ID] = stored
	s.byUser[stored.UserID] = append(s.byUser[stored.UserID], stored.ID)
	user.ApplyReward(stored.Reward(), s.timeProvider.Now())

	return copyUpload(stored), copyUser(user), nil
}

func (s *MemoryStorage) findByKey(userID uint64, key string) *entity.Upload {
	for _, id := range s.byUser[userID] {
		u := s.uploads[id]
		if u.IdempotencyKey != nil && *u.IdempotencyKey == key {
			return u
		}
	}
	return nil
}

// GetUploadByID retrieves a single upload
func (s *MemoryStorage) GetUploadByID(_ context.Context, id uint64) (*entity.Upload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	upload, ok := s.uploads[id]
	if !ok {
		return nil, errs.ErrUploadNotFound
	}
	return copyUpload(upload), nil
}

// GetUploadByIdempotencyKey finds the upload a user submitted under key
func (s *MemoryStorage) GetUploadByIdempotencyKey(_ context.Context, userID uint64, key string) (*entity.Upload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if upload := s.findByKey(userID, key); upload != nil {
		return copyUpload(upload), nil
	}
	return nil, errs.ErrUploadNotFound
}

// GetUploadsByUserID lists the user's uploads newest first
func (s *MemoryStorage) GetUploadsByUserID(_ context.Context, userID uint64) ([]*entity.Upload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := s.byUser[userID]
	uploads := make([]*entity.Upload, 0, len(ids))
	for _, id := range ids {
		uploads = append(uploads, copyUpload(s.uploads[id]))
	}

	sort.Slice(uploads, func(i, j int) bool {
		if !uploads[i].CreatedAt.Equal(uploads[j].CreatedAt) {
			return uploads[i].CreatedAt.After(uploads[j].CreatedAt)
		}
		return uploads[i].ID > uploads[j].ID
	})
	return uploads, nil
}

// GetUserStats aggregates the user's uploads
func (s *MemoryStorage) GetUserStats(_ context.Context, userID uint64) (entity.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := entity.EmptyStats()
	for _, id := range s.byUser[userID] {
		stats.Add(s.uploads[id])
	}
	return stats.Normalize(), nil
}

// Ping always succeeds
func (s *MemoryStorage) Ping(context.Context) error { return nil }

// Close is a no-op
func (s *MemoryStorage) Close() error { return nil }
