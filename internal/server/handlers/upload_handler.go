package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxPhotoSizeBytes = 5 << 20 // 5 MiB

var allowedPhotoExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadHandler stores rabbit photos on local disk and hands back the URL the
// static route serves them under.
type UploadHandler struct {
	dir    string
	logger *zap.Logger
}

// NewUploadHandler constructs the HTTP handler adapter.
func NewUploadHandler(dir string, logger *zap.Logger) *UploadHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadHandler{dir: dir, logger: logger}
}

// UploadPhoto accepts a multipart "photo" file, image types only, 5 MiB max.
func (h *UploadHandler) UploadPhoto(c *gin.Context) {
	file, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}

	if file.Size > maxPhotoSizeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds 5MB limit"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedPhotoExtensions[ext] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "only image files are allowed"})
		return
	}

	filename := fmt.Sprintf("rabbit-%s%s", uuid.NewString(), ext)
	if err := c.SaveUploadedFile(file, filepath.Join(h.dir, filename)); err != nil {
		h.logger.Error("failed to store uploaded photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	h.logger.Info("photo uploaded", zap.String("filename", filename), zap.Int64("size", file.Size))
	c.JSON(http.StatusOK, gin.H{"photoUrl": "/uploads/" + filename})
}
