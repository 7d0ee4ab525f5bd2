package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware creates request-logging middleware for Echo using the
// Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			path := c.Request().URL.Path
			raw := c.Request().URL.RawQuery

			err := next(c)

			latency := time.Since(start)
			statusCode := c.Response().Status
			clientIP := c.RealIP()
			method := c.Request().Method

			if raw != "" {
				path = path + "?" + raw
			}

			userIDStr := "anonymous"
			if userID := c.Get("user_id"); userID != nil {
				userIDStr = fmt.Sprintf("%v", userID)
			}

			requestID := c.Response().Header().Get("X-Request-ID")

			if txn != nil {
				txn.AddAttribute("user_id", userIDStr)
				txn.AddAttribute("request_id", requestID)
				txn.AddAttribute("response_time_ms", latency.Milliseconds())
				if err != nil {
					txn.NoticeError(err)
				}
			}

			fields := []Field{
				String("method", method),
				String("path", path),
				String("client_ip", clientIP),
				String("user_id", userIDStr),
				String("request_id", requestID),
				Int("status", statusCode),
				Duration("latency", latency),
			}
			if err != nil {
				fields = append(fields, Err(err))
				logger.Error("HTTP request", fields...)
			} else if statusCode >= 500 {
				logger.Error("HTTP request", fields...)
			} else if statusCode >= 400 {
				logger.Warn("HTTP request", fields...)
			} else {
				logger.Info("HTTP request", fields...)
			}

			return err
		}
	}
}
