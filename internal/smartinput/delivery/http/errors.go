package http

import (
	"errors"
	"net/http"

	"smart-task-input/internal/smartinput"
	pkgErrors "smart-task-input/pkg/errors"
)

var (
	errEmptyInput      = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is empty")
	errInputTooLong    = pkgErrors.NewHTTPError(http.StatusBadRequest, "text is too long")
	errInvalidTimezone = pkgErrors.NewHTTPError(http.StatusBadRequest, "unknown timezone")
	errMissingTitle    = pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "task needs a title besides its date, project, label and priority")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Anything unrecognized becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, smartinput.ErrEmptyInput):
		return errEmptyInput
	case errors.Is(err, smartinput.ErrInputTooLong):
		return errInputTooLong
	case errors.Is(err, smartinput.ErrInvalidTimezone):
		return errInvalidTimezone
	case errors.Is(err, smartinput.ErrMissingTitle):
		return errMissingTitle
	default:
		return pkgErrors.ErrInternalServerError
	}
}
