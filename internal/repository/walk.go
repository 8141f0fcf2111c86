package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/query"
	"github.com/candebarcelo/New-Zealand-Walks-Api/models"
)

// WalkRepository defines storage operations for walks. Reads preload the
// walk's region and difficulty so the wire representation can nest them.
type WalkRepository interface {
	GetAll(ctx context.Context, params query.Params) ([]models.Walk, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Walk, error)
	Create(ctx context.Context, walk *models.Walk) error
	Update(ctx context.Context, id uuid.UUID, walk models.Walk) (*models.Walk, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Walk, error)
}

type walkRepository struct {
	db *gorm.DB
}

func NewWalkRepository(db *gorm.DB) WalkRepository {
	return &walkRepository{db: db}
}

func (r *walkRepository) GetAll(ctx context.Context, params query.Params) ([]models.Walk, error) {
	var walks []models.Walk
	db := params.Apply(r.db.WithContext(ctx).Model(&models.Walk{}))
	if err := db.Preload("Region").Preload("Difficulty").Find(&walks).Error; err != nil {
		return nil, fmt.Errorf("failed to list walks: %w", err)
	}
	return walks, nil
}

func (r *walkRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Walk, error) {
	var walk models.Walk
	err := r.db.WithContext(ctx).
		Preload("Region").
		Preload("Difficulty").
		First(&walk, "id = ?", id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &walk, nil
}

func (r *walkRepository) Create(ctx context.Context, walk *models.Walk) error {
	if err := r.db.WithContext(ctx).Create(walk).Error; err != nil {
		return fmt.Errorf("failed to create walk: %w", err)
	}
	// Reload associations so the response can include them.
	reloaded, err := r.GetByID(ctx, walk.ID)
	if err != nil {
		return fmt.Errorf("failed to reload walk %s: %w", walk.ID, err)
	}
	*walk = *reloaded
	return nil
}

func (r *walkRepository) Update(ctx context.Context, id uuid.UUID, walk models.Walk) (*models.Walk, error) {
	var existing models.Walk
	if err := r.db.WithContext(ctx).First(&existing, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}

	existing.Name = walk.Name
	existing.Description = walk.Description
	existing.LengthInKm = walk.LengthInKm
	existing.WalkImageUrl = walk.WalkImageUrl
	existing.RegionID = walk.RegionID
	existing.DifficultyID = walk.DifficultyID

	if err := r.db.WithContext(ctx).Omit("Region", "Difficulty").Save(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to update walk %s: %w", id, err)
	}
	return r.GetByID(ctx, id)
}

func (r *walkRepository) Delete(ctx context.Context, id uuid.UUID) (*models.Walk, error) {
	existing, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&models.Walk{}, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to delete walk %s: %w", id, err)
	}
	return existing, nil
}
