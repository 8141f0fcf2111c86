// Package dto defines the wire-shaped records exchanged with API clients.
// They are a deliberate subset of the storage models: nothing here ever
// exposes a password hash or an uploaded binary.
package dto

import "github.com/google/uuid"

type RegionDto struct {
	ID             uuid.UUID `json:"id"`
	Code           string    `json:"code"`
	Name           string    `json:"name"`
	RegionImageUrl *string   `json:"regionImageUrl"`
}

type AddRegionRequestDto struct {
	Code           string  `json:"code" validate:"required,len=3"`
	Name           string  `json:"name" validate:"required,max=100"`
	RegionImageUrl *string `json:"regionImageUrl" validate:"omitempty,max=2000"`
}

type UpdateRegionRequestDto struct {
	Code           string  `json:"code" validate:"required,len=3"`
	Name           string  `json:"name" validate:"required,max=100"`
	RegionImageUrl *string `json:"regionImageUrl" validate:"omitempty,max=2000"`
}

type DifficultyDto struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type WalkDto struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	LengthInKm   float64       `json:"lengthInKm"`
	WalkImageUrl *string       `json:"walkImageUrl"`
	Region       RegionDto     `json:"region"`
	Difficulty   DifficultyDto `json:"difficulty"`
}

type AddWalkRequestDto struct {
	Name         string    `json:"name" validate:"required,max=100"`
	Description  string    `json:"description" validate:"required,max=1000"`
	LengthInKm   float64   `json:"lengthInKm" validate:"gte=0,lte=100"`
	WalkImageUrl *string   `json:"walkImageUrl" validate:"omitempty,max=2000"`
	RegionID     uuid.UUID `json:"regionId" validate:"required"`
	DifficultyID uuid.UUID `json:"difficultyId" validate:"required"`
}

type UpdateWalkRequestDto struct {
	Name         string    `json:"name" validate:"required,max=100"`
	Description  string    `json:"description" validate:"required,max=1000"`
	LengthInKm   float64   `json:"lengthInKm" validate:"gte=0,lte=100"`
	WalkImageUrl *string   `json:"walkImageUrl" validate:"omitempty,max=2000"`
	RegionID     uuid.UUID `json:"regionId" validate:"required"`
	DifficultyID uuid.UUID `json:"difficultyId" validate:"required"`
}

type ImageDto struct {
	ID              uuid.UUID `json:"id"`
	FileName        string    `json:"fileName"`
	FileDescription *string   `json:"fileDescription"`
	FileExtension   string    `json:"fileExtension"`
	FileSizeInBytes int64     `json:"fileSizeInBytes"`
	FilePath        string    `json:"filePath"`
}

type RegisterRequestDto struct {
	Username string   `json:"username" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Roles    []string `json:"roles" validate:"required,min=1,dive,oneof=Reader Writer"`
}

type LoginRequestDto struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponseDto struct {
	JwtToken string `json:"jwtToken"`
}
