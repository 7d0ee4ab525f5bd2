package jwt

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

// GenerateToken generates a JWT token for the given user details. Session
// issuance lives in the external auth service; this is used by tooling and
// tests.
func GenerateToken(userID uuid.UUID, phone string, role models.Role, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Minute)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"phone":   phone,
		"role":    string(role),
		"exp":     expiresAt,
		"iss":     cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken validates a JWT token and returns the claims
func ValidateToken(tokenString string, secret string) (*jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return &claims, nil
	}

	return nil, err
}
