// Package httperr maps service and core errors onto HTTP replies.
package httperr

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"lucky_wheel/internal/repository"
	"lucky_wheel/internal/service"
	"lucky_wheel/pkg/resp"
	"lucky_wheel/pkg/wheel"
)

// Status returns the HTTP status for err.
func Status(err error) int {
	switch {
	case errors.Is(err, wheel.ErrInvalidColor),
		errors.Is(err, wheel.ErrInvalidLabel),
		errors.Is(err, service.ErrUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, wheel.ErrIndexOutOfRange),
		errors.Is(err, service.ErrNoResult),
		errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, wheel.ErrInvalidState),
		errors.Is(err, wheel.ErrEmptySet):
		return http.StatusConflict
	case errors.Is(err, wheel.ErrTooFewSegments),
		errors.Is(err, wheel.ErrPaletteExhausted):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Write replies with the mapped status. Internal errors are logged and their
// text is not sent to the client.
func Write(w http.ResponseWriter, err error, log *zap.SugaredLogger) {
	status := Status(err)
	if status == http.StatusInternalServerError {
		log.Errorw("request failed", "error", err)
		resp.WriteError(w, status, "internal error")
		return
	}
	resp.WriteError(w, status, err.Error())
}
