package storage

import (
	"context"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService defines the interface for media storage operations.
type StorageService interface {
	// UploadImage stores an image under the given folder and returns its
	// permanent public ID and serving URL.
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, string, error)
	// DeleteImage removes an image given its public ID.
	DeleteImage(ctx context.Context, publicID string) error
}

// CloudinaryStorage implements StorageService using Cloudinary.
type CloudinaryStorage struct {
	cld       *cloudinary.Cloudinary
	cloudName string
}

// NewStorageService creates a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName string) StorageService {
	return &CloudinaryStorage{
		cld:       cld,
		cloudName: cloudName,
	}
}
