// Package api holds the JSON response helpers, request validation and the
// error mapper shared by the HTTP handlers.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// WriteJSON writes payload with the given status code.
func WriteJSON(w http.ResponseWriter, r *http.Request, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to encode response")
	}
}

// WriteError writes {"error": message} with the given status code.
func WriteError(w http.ResponseWriter, r *http.Request, code int, message string) {
	WriteJSON(w, r, code, map[string]string{"error": message})
}

// BadRequest reports a missing or malformed request parameter.
func BadRequest(w http.ResponseWriter, r *http.Request, message string) {
	WriteError(w, r, http.StatusBadRequest, message)
}

// NoContent answers a successful request that has no body.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}
