package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "accounts/internal/delivery/context"
	"accounts/internal/delivery/http/response"
	domainerrors "accounts/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ErrorMiddleware converts errors escaping the handlers into the response
// envelope. Domain errors keep their message; everything else is reported as
// an opaque internal error so no implementation detail leaks to the client.
type ErrorMiddleware struct {
	logger *slog.Logger
}

func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleHTTPError is installed as echo's HTTPErrorHandler.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	log := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message()
		if details := appErr.Details(); details != "" {
			message = details
		}
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			log.Error("request failed", slog.String("error", err.Error()))
			message = domainerrors.ErrInternalError.Message()
		}
		if writeErr := response.Failure(c, appErr.HTTPCode(), message); writeErr != nil {
			log.Error("failed to write error response", slog.String("error", writeErr.Error()))
		}
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message, ok := httpErr.Message.(string)
		if !ok {
			message = http.StatusText(httpErr.Code)
		}
		if writeErr := response.Failure(c, httpErr.Code, message); writeErr != nil {
			log.Error("failed to write error response", slog.String("error", writeErr.Error()))
		}
		return
	}

	log.Error("unhandled error", slog.String("error", err.Error()))
	if writeErr := response.Failure(c, http.StatusInternalServerError, domainerrors.ErrInternalError.Message()); writeErr != nil {
		log.Error("failed to write error response", slog.String("error", writeErr.Error()))
	}
}
