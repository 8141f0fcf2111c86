// Package boundary converts unhandled endpoint failures into a uniform,
// opaque error response. It is the only place a 500 body is produced.
package boundary

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrorMessage is the fixed text returned to callers. Internal detail never
// leaves the process; it is logged against the correlation id instead.
const ErrorMessage = "Something went wrong! We are looking into resolving this."

type errorResponse struct {
	ID           uuid.UUID `json:"id"`
	ErrorMessage string    `json:"errorMessage"`
}

// Handler is an endpoint that reports failures instead of writing 500s
// itself.
type Handler func(w http.ResponseWriter, r *http.Request) error

// Wrap adapts a Handler for the router. A returned error or a panic gets a
// fresh correlation id, a log entry with the failure detail, and the fixed
// error body.
func Wrap(logger zerolog.Logger, h Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				respond(w, r, logger, fmt.Errorf("panic: %v", recovered))
			}
		}()

		if err := h(w, r); err != nil {
			respond(w, r, logger, err)
		}
	}
}

func respond(w http.ResponseWriter, r *http.Request, logger zerolog.Logger, err error) {
	errorID := uuid.New()
	logger.Error().
		Err(err).
		Stringer("errorId", errorID).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("unhandled endpoint failure")

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	json.NewEncoder(w).Encode(errorResponse{
		ID:           errorID,
		ErrorMessage: ErrorMessage,
	})
}
