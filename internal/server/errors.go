package server

import (
	"errors"
	"net/http"

	"github.com/Kieseatic/Ats/internal/ingestion"
	"github.com/Kieseatic/Ats/internal/parsing"
)

// ErrJobNotFound indicates no stored job matches the requested ID.
type ErrJobNotFound struct {
	JobID string
}

func (e *ErrJobNotFound) Error() string {
	return "job not found: " + e.JobID
}

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Field + " - " + e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		emptyInput    *parsing.EmptyInputError
		validationErr *ingestion.ValidationError
	)
	switch {
	case errors.As(err, &emptyInput):
		return http.StatusBadRequest
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	default:
	}

	switch err.(type) {
	case *ErrJobNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
