package repository

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gorm.io/gorm"

	"github.com/candebarcelo/New-Zealand-Walks-Api/models"
)

// ImageRepository persists an uploaded binary under the content root and
// records its metadata. Rows are append-only.
type ImageRepository interface {
	// Upload writes the binary to <root>/<FileName><FileExtension>, sets
	// image.FilePath to <baseURL>/Images/<FileName><FileExtension> and
	// inserts the metadata row. Uploads reusing a file name overwrite the
	// previous binary; no uniqueness is enforced. File names that resolve
	// outside the root are rejected.
	Upload(ctx context.Context, image *models.Image, content io.Reader, baseURL string) error
}

type localImageRepository struct {
	db   *gorm.DB
	root string
}

// NewLocalImageRepository stores binaries on the local filesystem under root.
func NewLocalImageRepository(db *gorm.DB, root string) ImageRepository {
	return &localImageRepository{db: db, root: root}
}

func (r *localImageRepository) Upload(ctx context.Context, image *models.Image, content io.Reader, baseURL string) error {
	fileName := image.FileName + image.FileExtension
	localPath := filepath.Join(r.root, fileName)
	if filepath.Dir(localPath) != filepath.Clean(r.root) {
		return fmt.Errorf("file name %q escapes the content root", image.FileName)
	}

	if err := os.MkdirAll(r.root, 0o755); err != nil {
		return fmt.Errorf("failed to create content root: %w", err)
	}

	file, err := os.Create(localPath)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, content); err != nil {
		return fmt.Errorf("failed to write image file: %w", err)
	}

	image.FilePath = fmt.Sprintf("%s/Images/%s", baseURL, fileName)

	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("failed to save image metadata: %w", err)
	}
	return nil
}
