package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware attaches a request id to every request, generating one
// when the caller did not send an X-Request-ID header
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}

			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			return next(c)
		}
	}
}
