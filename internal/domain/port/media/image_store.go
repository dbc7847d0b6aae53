package media

import (
	"context"
	"io"
)

// Folders group stored images by purpose
const (
	FolderOdometer     = "odometer"
	FolderRegistration = "registration"
)

// Image is a validated, normalised image ready to be stored
type Image struct {
	Data        []byte
	ContentType string
	Extension   string
	Width       int
	Height      int
}

// ImageStore persists image objects and returns an opaque image ID
type ImageStore interface {
	// Save writes the image for the user under folder and returns the image ID to record.
	//
	// Possible errors:
	// - ErrImageStorage: If the backend rejects the write
	Save(ctx context.Context, folder string, userID uint64, img *Image) (string, error)

	// Delete removes a stored image. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, imageID string) error
}

// ImageProcessor validates raw uploads and normalises them for storage
type ImageProcessor interface {
	// Process reads at most the configured size limit from r.
	//
	// Possible errors:
	// - ErrMissingImage: If r is empty
	// - ErrImageTooLarge: If the payload exceeds the limit
	// - ErrUnsupportedImage: If the payload is not a decodable image
	Process(ctx context.Context, r io.Reader) (*Image, error)
}
