package persistence

import "context"

// Storage is the complete persistence contract of the service
type Storage interface {
	UserRepository
	UploadRepository

	// Ping checks that the backend is reachable
	Ping(ctx context.Context) error
	// Close releases backend resources
	Close() error
}
