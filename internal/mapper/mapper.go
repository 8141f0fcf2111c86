// Package mapper converts between storage models and wire DTOs. Each
// conversion is an explicit pure function so a field mismatch is a compile
// error, not a silent drop.
package mapper

import (
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/dto"
	"github.com/candebarcelo/New-Zealand-Walks-Api/models"
)

func RegionToDto(region models.Region) dto.RegionDto {
	return dto.RegionDto{
		ID:             region.ID,
		Code:           region.Code,
		Name:           region.Name,
		RegionImageUrl: region.RegionImageUrl,
	}
}

func RegionsToDto(regions []models.Region) []dto.RegionDto {
	out := make([]dto.RegionDto, 0, len(regions))
	for _, region := range regions {
		out = append(out, RegionToDto(region))
	}
	return out
}

func RegionFromAddDto(req dto.AddRegionRequestDto) models.Region {
	return models.Region{
		Code:           req.Code,
		Name:           req.Name,
		RegionImageUrl: req.RegionImageUrl,
	}
}

func RegionFromUpdateDto(req dto.UpdateRegionRequestDto) models.Region {
	return models.Region{
		Code:           req.Code,
		Name:           req.Name,
		RegionImageUrl: req.RegionImageUrl,
	}
}

func DifficultyToDto(difficulty models.Difficulty) dto.DifficultyDto {
	return dto.DifficultyDto{
		ID:   difficulty.ID,
		Name: difficulty.Name,
	}
}

func DifficultiesToDto(difficulties []models.Difficulty) []dto.DifficultyDto {
	out := make([]dto.DifficultyDto, 0, len(difficulties))
	for _, difficulty := range difficulties {
		out = append(out, DifficultyToDto(difficulty))
	}
	return out
}

func WalkToDto(walk models.Walk) dto.WalkDto {
	return dto.WalkDto{
		ID:           walk.ID,
		Name:         walk.Name,
		Description:  walk.Description,
		LengthInKm:   walk.LengthInKm,
		WalkImageUrl: walk.WalkImageUrl,
		Region:       RegionToDto(walk.Region),
		Difficulty:   DifficultyToDto(walk.Difficulty),
	}
}

func WalksToDto(walks []models.Walk) []dto.WalkDto {
	out := make([]dto.WalkDto, 0, len(walks))
	for _, walk := range walks {
		out = append(out, WalkToDto(walk))
	}
	return out
}

func WalkFromAddDto(req dto.AddWalkRequestDto) models.Walk {
	return models.Walk{
		Name:         req.Name,
		Description:  req.Description,
		LengthInKm:   req.LengthInKm,
		WalkImageUrl: req.WalkImageUrl,
		RegionID:     req.RegionID,
		DifficultyID: req.DifficultyID,
	}
}

func WalkFromUpdateDto(req dto.UpdateWalkRequestDto) models.Walk {
	return models.Walk{
		Name:         req.Name,
		Description:  req.Description,
		LengthInKm:   req.LengthInKm,
		WalkImageUrl: req.WalkImageUrl,
		RegionID:     req.RegionID,
		DifficultyID: req.DifficultyID,
	}
}

func ImageToDto(image models.Image) dto.ImageDto {
	return dto.ImageDto{
		ID:              image.ID,
		FileName:        image.FileName,
		FileDescription: image.FileDescription,
		FileExtension:   image.FileExtension,
		FileSizeInBytes: image.FileSizeInBytes,
		FilePath:        image.FilePath,
	}
}
