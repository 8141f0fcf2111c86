package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/candebarcelo/New-Zealand-Walks-Api/models"
)

// RegionRepository defines storage operations for regions. Update and Delete
// report ErrNotFound instead of silently creating or ignoring rows.
type RegionRepository interface {
	GetAll(ctx context.Context) ([]models.Region, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error)
	Create(ctx context.Context, region *models.Region) error
	Update(ctx context.Context, id uuid.UUID, region models.Region) (*models.Region, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Region, error)
}

type regionRepository struct {
	db *gorm.DB
}

func NewRegionRepository(db *gorm.DB) RegionRepository {
	return &regionRepository{db: db}
}

func (r *regionRepository) GetAll(ctx context.Context) ([]models.Region, error) {
	var regions []models.Region
	if err := r.db.WithContext(ctx).Find(&regions).Error; err != nil {
		return nil, fmt.Errorf("failed to list regions: %w", err)
	}
	return regions, nil
}

func (r *regionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	var region models.Region
	if err := r.db.WithContext(ctx).First(&region, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &region, nil
}

func (r *regionRepository) Create(ctx context.Context, region *models.Region) error {
	if err := r.db.WithContext(ctx).Create(region).Error; err != nil {
		return fmt.Errorf("failed to create region: %w", err)
	}
	return nil
}

func (r *regionRepository) Update(ctx context.Context, id uuid.UUID, region models.Region) (*models.Region, error) {
	var existing models.Region
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	existing.Code = region.Code
	existing.Name = region.Name
	existing.RegionImageUrl = region.RegionImageUrl

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to update region %s: %w", id, err)
	}
	return &existing, nil
}

func (r *regionRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Region, error) {
	var existing models.Region
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	if err := r.db.WithContext(ctx).Delete(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to delete region %s: %w", id, err)
	}
	return &existing, nil
}
