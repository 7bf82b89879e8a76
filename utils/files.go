package utils

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const (
	// MaxImageCount limits how many photos a listing may carry.
	MaxImageCount = 10
	// MaxImageSize limits each upload to 10MB.
	MaxImageSize = 10 << 20
)

// IsAllowedImage reports whether the upload is a JPEG or PNG image. A
// declared content type is authoritative; the extension only decides when
// the client sent none.
func IsAllowedImage(file *multipart.FileHeader) bool {
	switch file.Header.Get("Content-Type") {
	case "image/jpeg", "image/png":
		return true
	case "":
		switch strings.ToLower(filepath.Ext(file.Filename)) {
		case ".jpg", ".jpeg", ".png":
			return true
		}
	}
	return false
}

// ImageFilename generates a unique filename preserving the extension.
func ImageFilename(original string) string {
	ext := strings.ToLower(filepath.Ext(original))
	return fmt.Sprintf("%s%s", uuid.NewString(), ext)
}

// EnsureUploadDir creates the upload directory if it does not exist yet.
func EnsureUploadDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
