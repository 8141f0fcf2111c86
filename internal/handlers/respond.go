// Package handlers contains one endpoint per (resource, method) pair. Client
// errors are written in place; anything unexpected is returned so the error
// boundary can deal with it.
package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/candebarcelo/New-Zealand-Walks-Api/internal/validation"
)

func writeJSON(w http.ResponseWriter, status int, payload any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	return nil
}

func writeText(w http.ResponseWriter, status int, message string) error {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, err := fmt.Fprintln(w, message)
	return err
}

// writeViolations sends the complete field-level violation set as a 400.
func writeViolations(w http.ResponseWriter, violations validation.Violations) error {
	return writeJSON(w, http.StatusBadRequest, map[string]validation.Violations{
		"errors": violations,
	})
}

// decodeBody rejects malformed JSON as a client error. It reports whether
// decoding succeeded; on failure the response has already been written.
func decodeBody(w http.ResponseWriter, r *http.Request, payload any) (bool, error) {
	if err := json.NewDecoder(r.Body).Decode(payload); err != nil {
		return false, writeViolations(w, validation.Violations{
			"": {"request body is not valid JSON"},
		})
	}
	return true, nil
}

// requestBaseURL reconstructs scheme://host for building externally
// reachable URLs, e.g. for uploaded images. Behind a TLS-terminating
// proxy the forwarded headers carry the client-facing values.
func requestBaseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	host := r.Host
	if forwarded := r.Header.Get("X-Forwarded-Host"); forwarded != "" {
		host = forwarded
	}
	return fmt.Sprintf("%s://%s", scheme, host)
}
