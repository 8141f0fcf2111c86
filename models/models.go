package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Region is a geographic area that walks belong to.
type Region struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code           string    `gorm:"size:3;not null"`
	Name           string    `gorm:"size:100;not null"`
	RegionImageUrl *string
}

func (r *Region) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Difficulty is reference data seeded at startup. No endpoint mutates it.
type Difficulty struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"size:100;not null"`
}

// Walk is a single trail, tied to a region and a difficulty rating.
type Walk struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"size:100;not null"`
	Description  string    `gorm:"size:1000;not null"`
	LengthInKm   float64   `gorm:"not null"`
	WalkImageUrl *string
	RegionID     uuid.UUID `gorm:"type:uuid;not null"`
	DifficultyID uuid.UUID `gorm:"type:uuid;not null"`
	Region       Region
	Difficulty   Difficulty
}

func (w *Walk) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}

// Image holds metadata about an uploaded file. The binary itself lives on
// disk under the content root, never in the row.
type Image struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	FileName        string    `gorm:"not null"`
	FileDescription *string
	FileExtension   string `gorm:"not null"`
	FileSizeInBytes int64  `gorm:"not null"`
	FilePath        string `gorm:"not null"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
