package handlers

import (
	"net/http"

	"bookify/services/storage"
	"bookify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// mediaFolders whitelists Cloudinary upload folders per area.
var mediaFolders = map[string]bool{
	"profiles": true,
	"services": true,
	"landing":  true,
}

// MediaHandler exposes image upload and deletion backed by Cloudinary.
type MediaHandler struct {
	Storage storage.StorageService
}

func NewMediaHandler(svc storage.StorageService) *MediaHandler {
	return &MediaHandler{Storage: svc}
}

// UploadImageHandler accepts a multipart image and stores it in the
// requested folder.
func (h *MediaHandler) UploadImageHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing file in upload", err.Error())
		return
	}

	folder := c.DefaultPostForm("folder", "profiles")
	if !mediaFolders[folder] {
		utils.JSONError(c, http.StatusBadRequest, "Invalid folder. Use profiles, services, or landing", "")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Could not read uploaded file", err.Error())
		return
	}
	defer file.Close()

	publicID, url, err := h.Storage.UploadImage(c.Request.Context(), file, folder)
	if err != nil {
		utils.GetLogger().Error("Image upload failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to upload image", "")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"public_id": publicID,
		"url":       url,
	})
}

// DeleteImageHandler removes an uploaded asset by its public ID.
func (h *MediaHandler) DeleteImageHandler(c *gin.Context) {
	publicID := c.Param("publicId")
	if publicID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Missing public ID", "")
		return
	}

	if err := h.Storage.DeleteImage(c.Request.Context(), publicID); err != nil {
		utils.GetLogger().Error("Image delete failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete image", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Image deleted"})
}
