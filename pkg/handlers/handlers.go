// Package handlers provides JSON and plain-text HTTP response helpers
// shared by all domain handlers.
package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse is the JSON envelope for error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RespondJSON writes a JSON response with the given status code.
func RespondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// RespondError logs the error and writes it as a JSON error envelope.
// Server errors (5xx) log at error level, client errors at warn.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Warn("request rejected", "status", status, "error", err)
	}
	RespondJSON(w, status, ErrorResponse{Error: err.Error()})
}

// RespondText writes a plain-text response with the given status code.
func RespondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
