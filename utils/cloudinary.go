package utils

import (
	"fmt"
	"os"

	"bookify/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/spf13/viper"
)

// Cloudinary initializes and returns a Cloudinary-based StorageService.
// Credentials come from utils/cloudinary.yaml when present, otherwise from
// the CLOUDINARY_* environment variables.
func Cloudinary() (storage.StorageService, error) {
	v := viper.New()
	v.SetConfigFile("utils/cloudinary.yaml")
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err == nil {
		cloudName := v.GetString("cloudinary.cloudName")
		apiKey := v.GetString("cloudinary.apiKey")
		apiSecret := v.GetString("cloudinary.apiSecret")
		if cloudName != "" && apiKey != "" && apiSecret != "" {
			cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
			if err != nil {
				return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
			}
			return storage.NewStorageService(cld, cloudName), nil
		}
	}

	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}

	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("utils.Cloudinary: failed to initialize Cloudinary: %w", err)
	}
	return storage.NewStorageService(cld, cloudName), nil
}
