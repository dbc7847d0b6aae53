package imagestore

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// objectKey builds "<folder>/<userID>/<uuid><ext>". The key doubles as the
// image ID recorded on users and uploads.
func objectKey(folder string, userID uint64, extension string) string {
	if extension == "" {
		extension = ".jpg"
	}
	if !strings.HasPrefix(extension, ".") {
		extension = "." + extension
	}
	return fmt.Sprintf("%s/%d/%s%s", folder, userID, uuid.NewString(), extension)
}
