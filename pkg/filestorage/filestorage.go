package filestorage

import (
	"context"
	"io"
)

// StoredFile is what the media host reports back after an upload. PublicID
// is the handle used for later deletion.
type StoredFile struct {
	FileName string
	URL      string
	PublicID string
}

// FileStorage is the contract for the document media host.
type FileStorage interface {
	Store(ctx context.Context, file io.Reader, originalFileName string, folder string) (*StoredFile, error)
	Delete(ctx context.Context, publicID string) error
}
