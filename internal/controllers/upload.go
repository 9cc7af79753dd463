package controllers

import (
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/memorylane634/RealEstateMarketplace/internal/config"
)

// saveUpload writes a multipart file into the upload directory under a
// collision-free name and returns its path. Files are always persisted
// before the metadata row referencing them is created; a crash in between
// leaves an orphaned file, never a dangling row.
func saveUpload(c *gin.Context, file *multipart.FileHeader) (string, error) {
	dir := config.UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	dest := filepath.Join(dir, uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, dest); err != nil {
		return "", err
	}
	return dest, nil
}
