package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	// MaxFileSize is 10MB in bytes
	MaxFileSize = 10 * 1024 * 1024
)

// allowedExtensions is the upload allow-list: images and PDF documents.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".pdf":  true,
}

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ValidateUploadFile checks the file's extension against the allow-list and
// its size against the 10MB cap.
func ValidateUploadFile(path string) error {
	ext := strings.ToLower(filepath.Ext(path))
	if !allowedExtensions[ext] {
		return &FileUploadError{
			Code:    "INVALID_FILE_FORMAT",
			Message: "Unsupported file format. Use JPG, PNG, or PDF",
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		return &FileUploadError{
			Code:    "FILE_NOT_FOUND",
			Message: "File could not be read",
		}
	}
	if info.Size() > MaxFileSize {
		return &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxFileSize/(1024*1024)),
		}
	}
	return nil
}

// SaveUploadedFile copies a validated file into app-private storage under a
// generated name and returns the new path. The original external location is
// never referenced again after the copy.
func SaveUploadedFile(srcPath, uploadDir string) (dstPath string, err error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create upload directory: %w", err)
	}

	// Timestamp-based name; the uuid fragment guards against two uploads in
	// the same millisecond.
	ext := strings.ToLower(filepath.Ext(srcPath))
	filename := fmt.Sprintf("upload_%d_%s%s",
		time.Now().UnixMilli(),
		uuid.NewString()[:8],
		ext)
	dstPath = filepath.Join(uploadDir, filename)

	src, err := os.Open(srcPath)
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create destination file: %w", err)
	}
	defer func() {
		if closeErr := dst.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close destination file: %w", closeErr)
		}
	}()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return dstPath, err
}
