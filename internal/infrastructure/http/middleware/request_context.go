package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/meeting-analyzer/pkg/reqcontext"
)

// RequestContext copies the request ID into the request context so use cases
// can correlate their logs. It must run after middleware.RequestID.
func RequestContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(echo.HeaderXRequestID)
			if id == "" {
				id = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(reqcontext.Begin(req.Context(), id)))
			return next(c)
		}
	}
}
