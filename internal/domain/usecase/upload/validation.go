package upload

import (
	"path/filepath"
	"strings"

	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/entity"
	errs "github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/error"
	"github.com/amirhossein-jamali/ev-carbon-rewards/internal/domain/port/usecase"
)

// MaxFilenameLength bounds the client filename kept for distance estimation
const MaxFilenameLength = 255

// UploadValidator checks submission requests before any work is done
type UploadValidator struct{}

// NewUploadValidator creates a new UploadValidator
func NewUploadValidator() *UploadValidator {
	return &UploadValidator{}
}

// ValidateSubmission validates the request and returns it with a cleaned
// filename and idempotency key
func (v *UploadValidator) ValidateSubmission(req usecase.SubmitUploadRequest) (usecase.SubmitUploadRequest, *string, error) {
	if req.UserID == 0 {
		return req, nil, errs.ErrInvalidUserID
	}

	if req.Body == nil {
		return req, nil, errs.ErrMissingImage
	}

	req.Filename = v.cleanFilename(req.Filename)

	key, err := entity.NormalizeIdempotencyKey(req.IdempotencyKey)
	if err != nil {
		return req, nil, err
	}

	return req, key, nil
}

// cleanFilename drops any client path and truncates overly long names
func (v *UploadValidator) cleanFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(strings.TrimSpace(name))
	if name == "." || name == "/" {
		return ""
	}
	if len(name) > MaxFilenameLength {
		name = name[:MaxFilenameLength]
	}
	return name
}
