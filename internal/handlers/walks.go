package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/dto"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/mapper"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/query"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/repository"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/validation"
)

// Walks serves the /api/walks endpoints.
type Walks struct {
	repo repository.WalkRepository
}

func NewWalks(repo repository.WalkRepository) *Walks {
	return &Walks{repo: repo}
}

// List handles GET /api/walks with optional filtering, sorting and
// pagination: ?filterOn=Name&filterQuery=Track&sortBy=Name&isAscending=true&pageNumber=1&pageSize=10
func (h *Walks) List(w http.ResponseWriter, r *http.Request) error {
	params, violations := query.Parse(r.URL.Query())
	if violations != nil {
		return writeViolations(w, violations)
	}

	walks, err := h.repo.GetAll(r.Context(), params)
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, mapper.WalksToDto(walks))
}

// Get handles GET /api/walks/{id}.
func (h *Walks) Get(w http.ResponseWriter, r *http.Request) error {
	id, ok := parseID(w, r)
	if !ok {
		return nil
	}

	walk, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return nil
		}
		return err
	}
	return writeJSON(w, http.StatusOK, mapper.WalkToDto(*walk))
}

// Create handles POST /api/walks.
func (h *Walks) Create(w http.ResponseWriter, r *http.Request) error {
	var req dto.AddWalkRequestDto
	if ok, err := decodeBody(w, r, &req); !ok {
		return err
	}
	if violations := validation.Check(req); violations != nil {
		return writeViolations(w, violations)
	}

	walk := mapper.WalkFromAddDto(req)
	if err := h.repo.Create(r.Context(), &walk); err != nil {
		return err
	}

	w.Header().Set("Location", fmt.Sprintf("/api/walks/%s", walk.ID))
	return writeJSON(w, http.StatusCreated, mapper.WalkToDto(walk))
}

// Update handles PUT /api/walks/{id}.
func (h *Walks) Update(w http.ResponseWriter, r *http.Request) error {
	id, ok := parseID(w, r)
	if !ok {
		return nil
	}

	var req dto.UpdateWalkRequestDto
	if ok, err := decodeBody(w, r, &req); !ok {
		return err
	}
	if violations := validation.Check(req); violations != nil {
		return writeViolations(w, violations)
	}

	walk, err := h.repo.Update(r.Context(), id, mapper.WalkFromUpdateDto(req))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return nil
		}
		return err
	}
	return writeJSON(w, http.StatusOK, mapper.WalkToDto(*walk))
}

// Delete handles DELETE /api/walks/{id} and returns the deleted record.
func (h *Walks) Delete(w http.ResponseWriter, r *http.Request) error {
	id, ok := parseID(w, r)
	if !ok {
		return nil
	}

	walk, err := h.repo.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.NotFound(w, r)
			return nil
		}
		return err
	}
	return writeJSON(w, http.StatusOK, mapper.WalkToDto(*walk))
}
