package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/logger"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/utils"
)

// PanicRecoveryMiddleware creates a middleware that recovers from panics,
// logs them with a stack trace, and reports them to New Relic when a
// transaction is active
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("panic: %v", r)
					}

					if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
						txn.NoticeError(err)
					}

					zapLogger.Error("panic recovered",
						logger.String("path", c.Path()),
						logger.String("method", c.Request().Method),
						logger.String("client_ip", c.RealIP()),
						logger.Err(err),
						logger.String("stack", string(debug.Stack())))

					_ = utils.ErrorResponseHandler(c, http.StatusInternalServerError, "internal server error")
				}
			}()

			return next(c)
		}
	}
}
