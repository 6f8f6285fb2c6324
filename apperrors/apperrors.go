// Package apperrors defines the sentinel errors shared by the domain
// packages. Handlers translate them to HTTP statuses at the boundary.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	ErrInvalidRequest  = errors.New("invalid request")
	ErrUnauthorized    = errors.New("unauthorized")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrUnsupportedType = errors.New("unsupported file type")
	ErrConfig          = errors.New("service not configured")
	ErrGeneration      = errors.New("generation failed")
)

// HTTPStatus maps a sentinel (possibly wrapped) to its response status.
// Anything unrecognized is an internal error.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest), errors.Is(err, ErrUnsupportedType):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
