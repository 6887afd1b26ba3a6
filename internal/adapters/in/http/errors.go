package http

import (
	"errors"
	"net/http"

	"freight/internal/generated/servers"
	"freight/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// StatusFor maps a use case error to its HTTP status. Business rule
// violations are checked before validation so that a joined error carrying
// both reports the rule.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrLegality):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrCapacity), errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(ctx echo.Context, err error) error {
	status := StatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		message = "Internal server error"
	}

	return ctx.JSON(status, servers.Error{
		Code:    status,
		Message: message,
	})
}
