package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-site/internal/session"
	"github.com/jonathan/resume-site/internal/store"
)

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var invalidPassword *session.ErrInvalidPassword
	var notFound *store.ErrEntryNotFound

	switch {
	case errors.As(err, &invalidPassword):
		return http.StatusUnauthorized
	case errors.As(err, &notFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
