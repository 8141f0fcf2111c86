package handlers

import (
	"net/http"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/mapper"
	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/repository"
)

// Difficulties serves the read-only /api/difficulties endpoint.
type Difficulties struct {
	repo repository.DifficultyRepository
}

func NewDifficulties(repo repository.DifficultyRepository) *Difficulties {
	return &Difficulties{repo: repo}
}

// List handles GET /api/difficulties.
func (h *Difficulties) List(w http.ResponseWriter, r *http.Request) error {
	difficulties, err := h.repo.GetAll(r.Context())
	if err != nil {
		return err
	}
	return writeJSON(w, http.StatusOK, mapper.DifficultiesToDto(difficulties))
}
