package http

import (
	"errors"
	"net/http"

	"crawler-console/internal/session"
	pkgErrors "crawler-console/pkg/errors"
)

var (
	errSessionNotFound = pkgErrors.NewHTTPStatusError(
		http.StatusNotFound, 110001, "Session not found",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return errSessionNotFound
	default:
		panic(err)
	}
}
