package http

import (
	"errors"
	"net/http"

	"crawler-console/internal/ingestion"
	"crawler-console/internal/session"
	pkgErrors "crawler-console/pkg/errors"
)

var (
	errSessionNotFound = pkgErrors.NewHTTPStatusError(
		http.StatusNotFound, 110001, "Session not found",
	)
	errMalformedInput = pkgErrors.NewHTTPError(
		120001, "File could not be parsed",
	)
	errUnsupportedFormat = pkgErrors.NewHTTPError(
		120002, "Only .json and .csv files are supported",
	)
	errReadFailure = pkgErrors.NewHTTPError(
		120003, "File could not be read",
	)
	errFileNotFound = pkgErrors.NewHTTPStatusError(
		http.StatusNotFound, 120004, "File not found",
	)
	errStorageUnavailable = pkgErrors.NewHTTPStatusError(
		http.StatusServiceUnavailable, 120005, "Object storage unavailable",
	)
	errInvalidUpload = pkgErrors.NewHTTPError(
		120006, "Invalid multipart upload",
	)
	errNoFiles = pkgErrors.NewHTTPError(
		120007, "No files uploaded",
	)
	errInvalidImport = pkgErrors.NewHTTPError(
		120008, "Invalid import request",
	)
	errInvalidPage = pkgErrors.NewHTTPError(
		120009, "Invalid page or limit",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, ingestion.ErrMalformedInput):
		return errMalformedInput
	case errors.Is(err, ingestion.ErrUnsupportedFormat):
		return errUnsupportedFormat
	case errors.Is(err, ingestion.ErrReadFailure):
		return errReadFailure
	case errors.Is(err, ingestion.ErrFileNotFound):
		return errFileNotFound
	case errors.Is(err, ingestion.ErrStorageUnavailable):
		return errStorageUnavailable
	default:
		panic(err)
	}
}
