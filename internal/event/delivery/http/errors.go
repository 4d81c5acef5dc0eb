package http

import (
	"errors"
	"net/http"

	"events-portal/internal/event"
	pkgErrors "events-portal/pkg/errors"
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) *pkgErrors.HTTPError {
	switch {
	case errors.Is(err, event.ErrMissingID), errors.Is(err, event.ErrMissingMethod):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if httpErr, ok := pkgErrors.AsHTTPError(err); ok {
		return httpErr
	}
	return pkgErrors.ErrInternalServerError
}
