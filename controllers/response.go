package controllers

import (
	"errors"

	"assetverse-backend/services"
)

// Response is the JSON envelope shared by all controllers
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// statusForError translates a domain error kind into an HTTP status.
// Unknown errors become 500 so nothing gets silently swallowed.
func statusForError(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation):
		return 400
	case errors.Is(err, services.ErrNotFound):
		return 404
	case errors.Is(err, services.ErrNotAuthorized):
		return 403
	case errors.Is(err, services.ErrConflict):
		return 409
	case errors.Is(err, services.ErrOutOfStock):
		return 400
	case errors.Is(err, services.ErrLimitExceeded):
		return 403
	default:
		return 500
	}
}
