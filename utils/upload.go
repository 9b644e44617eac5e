// utils/upload.go - User-based upload folder helpers
package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowedUploadExts is the extension allow-list for submission and document files.
var allowedUploadExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// MaxUploadSize caps uploaded files at 10MB.
const MaxUploadSize = int64(10 * 1024 * 1024)

// AllowedUploadExt reports whether the filename carries an accepted extension.
func AllowedUploadExt(filename string) bool {
	return allowedUploadExts[strings.ToLower(filepath.Ext(filename))]
}

// UploadBasePath returns the configured upload root, defaulting to ./uploads.
func UploadBasePath() string {
	uploadPath := os.Getenv("UPLOAD_PATH")
	if uploadPath == "" {
		uploadPath = "./uploads"
	}
	return uploadPath
}

// CreateUserFolderIfNotExists ensures the per-user upload folder exists and
// returns its path.
func CreateUserFolderIfNotExists(userID int, basePath string) (string, error) {
	folder := filepath.Join(basePath, fmt.Sprintf("user_%d", userID))
	if err := os.MkdirAll(folder, os.ModePerm); err != nil {
		return "", err
	}
	return folder, nil
}

// GenerateUniqueFilename prefixes the sanitized original name with a uuid so
// repeated uploads of the same file never collide.
func GenerateUniqueFilename(original string) string {
	base := filepath.Base(original)
	base = strings.ReplaceAll(base, " ", "_")
	return fmt.Sprintf("%s_%s", uuid.New().String(), base)
}
