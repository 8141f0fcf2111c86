package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/candebarcelo/New-Zealand-Walks-Api/models"
)

// DifficultyRepository exposes the read-only difficulty reference data.
type DifficultyRepository interface {
	GetAll(ctx context.Context) ([]models.Difficulty, error)
}

type difficultyRepository struct {
	db *gorm.DB
}

func NewDifficultyRepository(db *gorm.DB) DifficultyRepository {
	return &difficultyRepository{db: db}
}

func (r *difficultyRepository) GetAll(ctx context.Context) ([]models.Difficulty, error) {
	var difficulties []models.Difficulty
	if err := r.db.WithContext(ctx).Find(&difficulties).Error; err != nil {
		return nil, fmt.Errorf("failed to list difficulties: %w", err)
	}
	return difficulties, nil
}
