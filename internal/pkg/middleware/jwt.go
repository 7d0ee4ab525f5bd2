package middleware

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/jwt"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/utils"
)

const actorContextKey = "actor"

// JWTAuthMiddleware creates a middleware for JWT authentication. It attaches
// the authenticated identity to the Echo context as a models.Actor.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userIDStr, ok := (*claims)["user_id"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			userID, err := uuid.Parse(fmt.Sprintf("%v", userIDStr))
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: user_id is not a valid UUID")
			}

			actor := models.Actor{
				UserID: userID,
				Role:   models.Role(fmt.Sprintf("%v", role)),
			}
			if name, ok := (*claims)["name"]; ok {
				actor.Name = fmt.Sprintf("%v", name)
			}
			if phone, ok := (*claims)["phone"]; ok {
				actor.Phone = fmt.Sprintf("%v", phone)
			}
			if email, ok := (*claims)["email"]; ok {
				actor.Email = fmt.Sprintf("%v", email)
			}

			c.Set(actorContextKey, actor)
			c.Set("user_id", userID)
			c.Set("user_role", string(actor.Role))

			return next(c)
		}
	}
}

// ActorFromContext returns the authenticated actor set by JWTAuthMiddleware
func ActorFromContext(c echo.Context) (models.Actor, bool) {
	actor, ok := c.Get(actorContextKey).(models.Actor)
	return actor, ok
}
