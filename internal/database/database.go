// Package database opens the store, runs migrations and seeds reference data.
package database

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/candebarcelo/New-Zealand-Walks-Api/models"
)

// Connect opens the relational store.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Region{},
		&models.Difficulty{},
		&models.Walk{},
		&models.Image{},
		&models.User{},
		&models.Role{},
	)
}

// Stable ids for seeded reference rows, so reseeding is idempotent across
// environments.
var (
	difficultyEasyID   = uuid.MustParse("54466f17-02af-48e7-8ed3-5a4a8bfacf6f")
	difficultyMediumID = uuid.MustParse("ea294873-7a8c-4c0f-bfa7-a2eb492cbf8c")
	difficultyHardID   = uuid.MustParse("f808ddcd-b5e5-4d80-b732-1ca523e48434")

	roleReaderID = uuid.MustParse("6f99d3b5-d25d-4977-97a3-03d87d675f5c")
	roleWriterID = uuid.MustParse("d4d2d93d-8e21-4222-88b6-b2b80be4c34e")
)

// Seed inserts the difficulty reference data and the two recognized roles if
// they are not already present.
func Seed(db *gorm.DB) error {
	difficulties := []models.Difficulty{
		{ID: difficultyEasyID, Name: "Easy"},
		{ID: difficultyMediumID, Name: "Medium"},
		{ID: difficultyHardID, Name: "Hard"},
	}
	for _, difficulty := range difficulties {
		err := db.Where(models.Difficulty{ID: difficulty.ID}).
			FirstOrCreate(&difficulty).Error
		if err != nil {
			return fmt.Errorf("failed to seed difficulty %s: %w", difficulty.Name, err)
		}
	}

	roles := []models.Role{
		{ID: roleReaderID, Name: models.RoleReader},
		{ID: roleWriterID, Name: models.RoleWriter},
	}
	for _, role := range roles {
		err := db.Where(models.Role{ID: role.ID}).FirstOrCreate(&role).Error
		if err != nil {
			return fmt.Errorf("failed to seed role %s: %w", role.Name, err)
		}
	}
	return nil
}
