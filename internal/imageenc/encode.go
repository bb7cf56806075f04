package imageenc

import (
	"encoding/base64"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"stampvoice/internal/services"
)

const defaultMIMEType = "image/jpeg"

var mimeTypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// Inline is a base64-encoded image ready to embed in a chat request.
type Inline struct {
	Data string
	MIME string
}

// DataURL renders the inline image as a data URL.
func (i Inline) DataURL() string {
	return "data:" + i.MIME + ";base64," + i.Data
}

// MIMEType infers the image MIME type from the file extension,
// case-insensitively. Unknown extensions fall back to image/jpeg.
func MIMEType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if mime, ok := mimeTypes[ext]; ok {
		return mime
	}
	return defaultMIMEType
}

// EncodeFile reads the image at path and returns its base64 encoding plus the
// inferred MIME type. A missing file is tagged with services.ErrNotFound.
func EncodeFile(path string) (Inline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Inline{}, services.Wrap(services.ErrNotFound, "encode", "read image", path, err)
		}
		return Inline{}, services.Wrap(services.ErrUnexpected, "encode", "read image", path, err)
	}
	return Inline{
		Data: base64.StdEncoding.EncodeToString(data),
		MIME: MIMEType(path),
	}, nil
}
