package http

import (
	"errors"
	"net/http"

	"dispatch/internal/pkg/errs"
)

// statusOf maps an application error to its HTTP status. The second result
// reports whether the client may retry the same request after reloading.
func statusOf(err error) (int, bool) {
	switch {
	case errors.Is(err, errs.ErrVersionConflict):
		return http.StatusConflict, true
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, false
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest, false
	case errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusConflict, false
	default:
		return http.StatusInternalServerError, false
	}
}
