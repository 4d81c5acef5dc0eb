package event

import (
	"errors"
	"net/http"

	pkgErrors "events-portal/pkg/errors"
)

// Upstream failures. Each carries the status and message the error view renders.
var (
	ErrFetchEvent  = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Could not fetch details for selected event.")
	ErrFetchEvents = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Could not fetch events.")
	ErrDeleteEvent = pkgErrors.NewHTTPError(http.StatusInternalServerError, "Could not delete event.")
)

var (
	ErrMissingID     = errors.New("event id is required")
	ErrMissingMethod = errors.New("method is required")
)
