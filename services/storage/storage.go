package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadImage uploads an image to Cloudinary into the specified folder and
// returns the permanent identifier plus the HTTPS delivery URL.
func (s *CloudinaryStorage) UploadImage(ctx context.Context, file io.Reader, folder string) (string, string, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:       folder,
		ResourceType: "image",
	})
	if err != nil {
		return "", "", fmt.Errorf("CloudinaryStorage: failed to upload image: %w", err)
	}
	if result.PublicID == "" {
		return "", "", fmt.Errorf("CloudinaryStorage: no public ID returned")
	}
	return result.PublicID, result.SecureURL, nil
}

// DeleteImage deletes an image from Cloudinary given its public ID.
func (s *CloudinaryStorage) DeleteImage(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("CloudinaryStorage: failed to delete image: %w", err)
	}
	return nil
}
