package utils

import (
	"fmt"
	"io"
	"log"
	"mime/multipart"
)

// MaxFileSize is 10MB in bytes
const MaxFileSize = 10 * 1024 * 1024

// FileUploadError represents a file upload validation error
type FileUploadError struct {
	Code    string
	Message string
}

func (e *FileUploadError) Error() string {
	return e.Message
}

// ReadImageFile reads an uploaded file into memory and returns its bytes and
// declared content type. Files over MaxFileSize are rejected before reading.
func ReadImageFile(fileHeader *multipart.FileHeader) ([]byte, string, error) {
	if fileHeader.Size > MaxFileSize {
		return nil, "", &FileUploadError{
			Code:    "FILE_TOO_LARGE",
			Message: fmt.Sprintf("File size exceeds maximum allowed size of %d MB", MaxFileSize/(1024*1024)),
		}
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer func() {
		if closeErr := src.Close(); closeErr != nil {
			// Not critical enough to fail the operation
			log.Printf("warning: failed to close uploaded file: %v", closeErr)
		}
	}()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	return data, fileHeader.Header.Get("Content-Type"), nil
}
