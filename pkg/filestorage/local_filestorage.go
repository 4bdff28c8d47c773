package filestorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalFileStorage keeps documents on disk. Used in development when no
// Cloudinary credentials are configured.
type LocalFileStorage struct {
	basePath string
}

func NewLocalFileStorage(basePath string) (FileStorage, error) {
	if _, err := os.Stat(basePath); os.IsNotExist(err) {
		if err := os.MkdirAll(basePath, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}
	return &LocalFileStorage{basePath: basePath}, nil
}

func (s *LocalFileStorage) Store(_ context.Context, file io.Reader, originalFileName string, folder string) (*StoredFile, error) {
	ext := filepath.Ext(originalFileName)
	uniqueFileName := fmt.Sprintf("%s-%s%s", time.Now().Format("2006-01-02"), uuid.New().String(), ext)

	fullDirPath := filepath.Join(s.basePath, folder)
	if err := os.MkdirAll(fullDirPath, 0o755); err != nil {
		return nil, err
	}

	dst, err := os.Create(filepath.Join(fullDirPath, uniqueFileName))
	if err != nil {
		return nil, err
	}
	defer dst.Close()

	if _, err = io.Copy(dst, file); err != nil {
		return nil, err
	}

	relative := filepath.ToSlash(filepath.Join(folder, uniqueFileName))
	return &StoredFile{
		FileName: originalFileName,
		URL:      "/uploads/" + relative,
		PublicID: relative,
	}, nil
}

func (s *LocalFileStorage) Delete(_ context.Context, publicID string) error {
	relativePath := strings.TrimPrefix(publicID, "/uploads/")
	fullPath := filepath.Join(s.basePath, relativePath)

	// Already gone counts as success.
	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		return nil
	}
	return os.Remove(fullPath)
}
