package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MaxPhotoSize limits injection photos. They are embedded in the record
// as data URIs, so the cap keeps the stored blob reasonable.
const MaxPhotoSize = 5 << 20 // 5MB

var allowedPhotoTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// ValidatePhoto checks an uploaded photo by size and by the content type
// detected from the file's leading bytes (the declared Content-Type
// header is not trusted). It returns the detected MIME type for use in
// the data URI.
func ValidatePhoto(header *multipart.FileHeader) (string, error) {
	if header.Size > MaxPhotoSize {
		return "", fmt.Errorf("photo too large: maximum size is %d MB", MaxPhotoSize/(1<<20))
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open photo: %w", err)
	}
	defer func() { _ = file.Close() }()

	// http.DetectContentType reads at most 512 bytes
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read photo: %w", err)
	}

	detected := http.DetectContentType(buffer[:n])
	if !allowedPhotoTypes[detected] {
		return "", fmt.Errorf("invalid photo type (detected: %s)", detected)
	}

	return detected, nil
}
