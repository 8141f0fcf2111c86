package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/candebarcelo/New-Zealand-Walks-Api/models"
)

// UserRepository defines storage operations for accounts and their roles.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	// CreateWithRoles persists the user and its role assignments in one
	// transaction. An unknown role name rolls the whole registration back.
	CreateWithRoles(ctx context.Context, user *models.User, roleNames []string) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		First(&user, "username = ?", username).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) CreateWithRoles(ctx context.Context, user *models.User, roleNames []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var roles []models.Role
		if err := tx.Where("name IN ?", roleNames).Find(&roles).Error; err != nil {
			return fmt.Errorf("failed to look up roles: %w", err)
		}
		if len(roles) != len(roleNames) {
			return fmt.Errorf("unknown role in %v", roleNames)
		}

		user.Roles = roles
		if err := tx.Create(user).Error; err != nil {
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
}
