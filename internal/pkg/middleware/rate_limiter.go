package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// RateLimiterMiddleware creates a middleware for rate limiting using Redis
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID := c.Get("user_id"); userID != nil {
				identifier = fmt.Sprintf("%v", userID)
			}

			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			count, err := config.RedisClient.Incr(ctx, key).Result()
			if err != nil {
				// Do not block traffic when the limiter store is down.
				return next(c)
			}
			if count == 1 {
				config.RedisClient.Expire(ctx, key, config.Period)
			}

			if count > int64(config.Limit) {
				ttl, err := config.RedisClient.TTL(ctx, key).Result()
				if err != nil {
					return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
				}

				c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
				c.Response().Header().Set("X-RateLimit-Remaining", "0")
				c.Response().Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Rate limit exceeded")
			}

			remaining := config.Limit - int(count)
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			return next(c)
		}
	}
}
