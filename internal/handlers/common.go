package handlers

import (
	"errors"
	"net/http"

	"github.com/agritrack/agritrack-server/internal/services"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// statusFor maps service errors to HTTP statuses. Validation rejections are a
// client problem, not a server one; everything unexpected is a 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrRejected):
		return http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrHarvestNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
