package workflows

import (
	"errors"
	"net/http"
)

// Domain errors for workflow operations.
var (
	ErrNotFound        = errors.New("workflow not found")
	ErrDuplicate       = errors.New("workflow already exists")
	ErrInvalidID       = errors.New("invalid workflow identifier")
	ErrProjectNotFound = errors.New("project not found")
	ErrNoLineItems     = errors.New("project has no line items to sequence")
	ErrInvalidPlan     = errors.New("invalid plan request")
)

// MapHTTPStatus maps workflow domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrProjectNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrNoLineItems) ||
		errors.Is(err, ErrInvalidPlan) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
