package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/dto"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/mapper"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/repository"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/validation"
)

// Regions serves the /api/regions endpoints.
type Regions struct {
	repo repository.RegionRepository
}

func NewRegions(repo repository.RegionRepository) *Regions {
	return &Regions{repo: repo}
}

// List handles GET /api/regions.
func (h *Regions) List(w http.ResponseWriter, r *http.Request) error {
	regions, err := h.repo.GetAll(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, mapper.RegionsToDto(regions))
}

// Get handles GET /api/regions/{id}.
func (h *Regions) Get(w http.ResponseWriter, r *http.Request) error {
	id, ok := parseID(w, r)
	if !ok {
		return nil
	}

	region, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return nil
		}
		return err
	}
	return writeJSON(w, http.StatusOK, mapper.RegionToDto(*region))
}

// Create handles POST /api/regions.
func (h *Regions) Create(w http.ResponseWriter, r *http.Request) error {
	var req dto.AddRegionRequestDto
	if ok, err := decodeBody(w, r, &req); !ok {
		return err
	}
	if violations := validation.Check(req); violations != nil {
		return writeViolations(w, violations)
	}

	region := mapper.RegionFromAddDto(req)
	if err := h.repo.Create(r.Context(), &region); err != nil {
		return err
	}

	w.Header().Set("Location", fmt.Sprintf("/api/regions/%s", region.ID))
	return writeJSON(w, http.StatusCreated, mapper.RegionToDto(region))
}

// Update handles PUT /api/regions/{id}.
func (h *Regions) Update(w http.ResponseWriter, r *http.Request) error {
	id, ok := parseID(w, r)
	if !ok {
		return nil
	}

	var req dto.UpdateRegionRequestDto
	if ok, err := decodeBody(w, r, &req); !ok {
		return err
	}
	if violations := validation.Check(req); violations != nil {
		return writeViolations(w, violations)
	}

	region, err := h.repo.Update(r.Context(), id, mapper.RegionFromUpdateDto(req))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return nil
		}
		return err
	}
	return writeJSON(w, http.StatusOK, mapper.RegionToDto(*region))
}

// Delete handles DELETE /api/regions/{id} and returns the deleted record.
func (h *Regions) Delete(w http.ResponseWriter, r *http.Request) error {
	id, ok := parseID(w, r)
	if !ok {
		return nil
	}

	region, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return nil
		}
		return err
	}
	return writeJSON(w, http.StatusOK, mapper.RegionToDto(*region))
}

// parseID reads the {id} route parameter. A malformed id behaves like a
// missing row. Reports whether parsing succeeded; on failure the 404 has
// already been written.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return uuid.Nil, false
	}
	return id, true
}
