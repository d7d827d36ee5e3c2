// Package files handles image uploads for customer pictures. The returned
// path lives under the reserved customer-images namespace so it satisfies
// the image path rule enforced on customer updates.
package files

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/acme/dashboard/internal/domain/partner"
	"github.com/acme/dashboard/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxImageSize is the largest accepted upload in bytes
const MaxImageSize = 4 << 20 // 4MB

var allowedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// ObjectStorage stores uploaded blobs under a key
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
}

// UploadService accepts image uploads and stores them as customer images
type UploadService struct {
	storage ObjectStorage
	logger  *zap.Logger
}

// NewUploadService creates a new UploadService
func NewUploadService(storage ObjectStorage, logger *zap.Logger) *UploadService {
	return &UploadService{
		storage: storage,
		logger:  logger,
	}
}

// UploadCustomerImage stores the file and returns the image path to submit
// in the customer form's imageURL field.
func (s *UploadService) UploadCustomerImage(ctx context.Context, filename, contentType string, body io.Reader, size int64) (string, error) {
	if size <= 0 || size > MaxImageSize {
		return "", shared.NewDomainError("INVALID_FILE", "File must be between 1 byte and 4MB")
	}
	ext := strings.ToLower(path.Ext(filename))
	if !allowedExtensions[ext] {
		return "", shared.NewDomainError("INVALID_FILE", "File must be a png, jpg, jpeg, gif or webp image")
	}

	imagePath := partner.ImagePathPrefix + uuid.NewString() + ext
	key := strings.TrimPrefix(imagePath, "/")

	if err := s.storage.Put(ctx, key, contentType, body, size); err != nil {
		s.logger.Error("Failed to store uploaded image", zap.String("key", key), zap.Error(err))
		return "", shared.NewDomainError("UPLOAD_FAILED", "Failed to store uploaded file")
	}

	s.logger.Info("Stored customer image", zap.String("key", key), zap.Int64("size", size))
	return imagePath, nil
}
