package http

import (
	"errors"
	"net/http"

	"crawler-console/internal/ingestion"
	"crawler-console/internal/session"
	"crawler-console/internal/transform"
	pkgErrors "crawler-console/pkg/errors"
)

var (
	errSessionNotFound = pkgErrors.NewHTTPStatusError(
		http.StatusNotFound, 110001, "Session not found",
	)
	errFileNotFound = pkgErrors.NewHTTPStatusError(
		http.StatusNotFound, 120004, "File not found",
	)
	errNoInputSelected = pkgErrors.NewHTTPError(
		130001, "No files selected",
	)
	errTransformFailed = pkgErrors.NewHTTPStatusError(
		http.StatusUnprocessableEntity, 130002, "Transform failed",
	)
	errUnsupportedFormat = pkgErrors.NewHTTPError(
		130003, "Format must be json or csv",
	)
	errJobNotFound = pkgErrors.NewHTTPStatusError(
		http.StatusNotFound, 130004, "Job not found",
	)
	errInvalidRequest = pkgErrors.NewHTTPError(
		130005, "Invalid transform request",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, ingestion.ErrFileNotFound):
		return errFileNotFound
	case errors.Is(err, transform.ErrNoInputSelected):
		return errNoInputSelected
	case errors.Is(err, transform.ErrTransformFailed):
		return pkgErrors.NewHTTPStatusError(errTransformFailed.StatusCode, errTransformFailed.Code, err.Error())
	case errors.Is(err, transform.ErrUnsupportedFormat):
		return errUnsupportedFormat
	case errors.Is(err, transform.ErrJobNotFound):
		return errJobNotFound
	default:
		panic(err)
	}
}
