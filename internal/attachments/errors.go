package attachments

import (
	"errors"
	"net/http"
)

// Domain errors for attachment operations.
var (
	ErrNotFound        = errors.New("attachment not found")
	ErrDuplicate       = errors.New("attachment already exists")
	ErrProjectNotFound = errors.New("project not found")
	ErrFileTooLarge    = errors.New("file exceeds maximum upload size")
	ErrInvalidFile     = errors.New("invalid file")
)

// MapHTTPStatus maps attachment domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrProjectNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, ErrInvalidFile) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
