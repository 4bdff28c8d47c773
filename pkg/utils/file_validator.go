package utils

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// MaxDocumentSizeMB is the cap enforced before anything reaches the media
// host.
const MaxDocumentSizeMB = 5

// allowedDocumentMimeTypes — supporting documents are PDF or scans only.
var allowedDocumentMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// ValidateDocumentFile sniffs the real content type and checks the size cap.
// The reader is rewound so the caller can hand it straight to storage.
func ValidateDocumentFile(fileHeader *multipart.FileHeader, file io.ReadSeeker) error {
	maxSizeBytes := int64(MaxDocumentSizeMB * 1024 * 1024)
	if fileHeader.Size > maxSizeBytes {
		return fmt.Errorf("ukuran file %d KB melebihi batas %d MB", fileHeader.Size/1024, MaxDocumentSizeMB)
	}

	buffer := make([]byte, 512)
	if _, err := file.Read(buffer); err != nil && err != io.EOF {
		return fmt.Errorf("file tidak dapat dibaca")
	}
	if _, err := file.Seek(0, 0); err != nil {
		return fmt.Errorf("file tidak dapat dibaca ulang")
	}

	mimeType := http.DetectContentType(buffer)
	if !allowedDocumentMimeTypes[mimeType] {
		return fmt.Errorf("tipe file %s tidak diizinkan, gunakan PDF/JPEG/PNG", mimeType)
	}
	return nil
}
