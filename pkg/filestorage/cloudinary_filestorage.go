package filestorage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/dapittriandi/simdor-service/pkg/config"
)

type CloudinaryStorage struct {
	client       *cloudinary.Cloudinary
	uploadPreset string
}

func NewCloudinaryStorage(cfg config.CloudinaryConfig) (FileStorage, error) {
	client, err := cloudinary.NewFromParams(cfg.CloudName, cfg.APIKey, cfg.APISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary client: %w", err)
	}
	return &CloudinaryStorage{
		client:       client,
		uploadPreset: cfg.UploadPreset,
	}, nil
}

func (s *CloudinaryStorage) Store(ctx context.Context, file io.Reader, originalFileName string, folder string) (*StoredFile, error) {
	// Random public id keeps re-uploads of the same document from
	// overwriting each other.
	publicID := uuid.New().String()

	res, err := s.client.Upload.Upload(ctx, file, uploader.UploadParams{
		PublicID:     publicID,
		Folder:       folder,
		UploadPreset: s.uploadPreset,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload failed: %w", err)
	}

	return &StoredFile{
		FileName: originalFileName,
		URL:      res.SecureURL,
		PublicID: res.PublicID,
	}, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, publicID string) error {
	res, err := s.client.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("cloudinary destroy failed: %w", err)
	}
	if res.Result != "ok" && res.Result != "not found" {
		return fmt.Errorf("cloudinary destroy returned %q", res.Result)
	}
	return nil
}
