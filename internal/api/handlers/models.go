package handlers

import "github.com/Darioantonio20/BarberPlatform/internal/domain"

// ErrorResponse is the error envelope for every non-2xx response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ValidationErrorResponse carries the collected form violations.
type ValidationErrorResponse struct {
	Error  string                   `json:"error"`
	Fields []domain.ValidationError `json:"fields"`
}
