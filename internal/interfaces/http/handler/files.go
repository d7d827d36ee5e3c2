package handler

import (
	"errors"
	"net/http"

	"github.com/acme/dashboard/internal/application/files"
	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/acme/dashboard/internal/infrastructure/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FileHandler accepts customer image uploads
type FileHandler struct {
	uploads *files.UploadService
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(uploads *files.UploadService) *FileHandler {
	return &FileHandler{uploads: uploads}
}

// RegisterRoutes registers file routes
func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/files", h.Upload)
}

// Upload stores a multipart image and returns the path to submit in the
// customer form's imageURL field
func (h *FileHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing file field."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unreadable file."})
		return
	}
	defer file.Close()

	imagePath, err := h.uploads.UploadCustomerImage(
		c.Request.Context(),
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		file,
		fileHeader.Size,
	)
	if err != nil {
		var domainErr *shared.DomainError
		if errors.As(err, &domainErr) && domainErr.Code == "INVALID_FILE" {
			c.JSON(http.StatusBadRequest, gin.H{"message": domainErr.Message})
			return
		}
		logger.GetGinLogger(c).Error("Upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store uploaded file."})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": imagePath})
}
