package handler

import (
	stdErrors "errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-analyzer/errors"
	"github.com/johnquangdev/meeting-analyzer/internal/adapter/dto/common"
	usecaseerrors "github.com/johnquangdev/meeting-analyzer/internal/usecase/errors"
)

// getRequestID tries to read X-Request-ID from the request or the response
func getRequestID(c echo.Context) string {
	if c == nil || c.Request() == nil {
		return ""
	}
	if id := c.Request().Header.Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

// HandleSuccess writes data as the JSON body with the given status
func HandleSuccess(logger *zap.Logger, c echo.Context, status int, data interface{}) error {
	if logger != nil {
		logger.Info("http.response.success",
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.Int("status", status),
		)
	}

	return c.JSON(status, data)
}

// HandleError translates err once and writes the {error, errorCode, canRetry} envelope.
// Technical detail is only logged.
func HandleError(logger *zap.Logger, c echo.Context, err error) error {
	appErr := usecaseerrors.Translate(err)

	if logger != nil {
		fields := []zap.Field{
			zap.String("request_id", getRequestID(c)),
			zap.String("path", c.Path()),
			zap.String("app_code", appErr.Code.String()),
			zap.Int("status", appErr.HTTPCode),
			zap.Error(err),
		}
		if appErr.HTTPCode >= http.StatusInternalServerError {
			logger.Error("http.response.error", fields...)
		} else {
			logger.Warn("http.response.error", fields...)
		}
	}

	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Error:     appErr.Message,
		ErrorCode: appErr.Code.String(),
		CanRetry:  appErr.CanRetry,
	})
}

// HTTPErrorHandler renders errors raised by Echo itself (unknown routes, bad
// payloads, oversized bodies, recovered panics) with the same envelope.
func HTTPErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if stdErrors.As(err, &he) {
			err = fromHTTPError(he)
		}

		if writeErr := HandleError(logger, c, err); writeErr != nil && logger != nil {
			logger.Error("failed to write error response", zap.Error(writeErr))
		}
	}
}

func fromHTTPError(he *echo.HTTPError) error {
	var appErr errors.AppError
	switch he.Code {
	case http.StatusNotFound:
		appErr = errors.ErrNotFound("Route")
	case http.StatusMethodNotAllowed:
		appErr = errors.ErrNotFound("Route").WithStatus(http.StatusMethodNotAllowed)
	case http.StatusRequestEntityTooLarge:
		appErr = errors.ErrValidation("Transcript is too long").WithStatus(http.StatusRequestEntityTooLarge)
	case http.StatusBadRequest, http.StatusUnsupportedMediaType:
		appErr = errors.ErrValidation("Invalid request body").WithStatus(he.Code)
	default:
		appErr = errors.ErrUnknown()
		if he.Code >= http.StatusBadRequest {
			appErr = appErr.WithStatus(he.Code)
		}
	}
	return appErr.WithRaw(he)
}
