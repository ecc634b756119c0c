// Package errhttp maps application errors to HTTP status codes.
// Context sentinels are declared through pkg/apperr, so mapping by kind covers
// every bounded context without listing each sentinel here.
package errhttp

import (
	"errors"
	"net/http"

	"github.com/ghuser/wardrobe/pkg/apperr"
	"github.com/ghuser/wardrobe/pkg/httpx"
	"github.com/ghuser/wardrobe/pkg/logger"
)

const genericMessage = "internal server error"

// WriteError maps err to an HTTP status code and writes a JSON error response.
// 5xx responses carry a generic message; the full error is logged instead.
func WriteError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	status := mapErrorToStatus(err)
	if status >= http.StatusInternalServerError {
		if log != nil {
			log.ErrorContext(r.Context(), "request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"error", err,
			)
		}
		httpx.JSONError(w, status, genericMessage)
		return
	}
	httpx.JSONError(w, status, err.Error())
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound // 404
	case errors.Is(err, apperr.ErrConflict):
		return http.StatusConflict // 409
	case errors.Is(err, apperr.ErrValidation):
		return http.StatusUnprocessableEntity // 422
	case errors.Is(err, apperr.ErrUnauthorized):
		return http.StatusUnauthorized // 401
	default:
		return http.StatusInternalServerError // 500, including apperr.ErrStorage
	}
}
