package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cabBazarApp/cabbazar-backend-sub000/internal/pkg/models"
)

func testConfig() *models.Config {
	cfg := &models.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.Expiration = 60
	cfg.JWT.Issuer = "cabbazar-test"
	return cfg
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	tokenString, expiresAt, err := GenerateToken(userID, "9876543210", models.RoleCustomer, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.JWT.Secret)
	require.NoError(t, err)

	assert.Equal(t, userID.String(), (*claims)["user_id"])
	assert.Equal(t, "customer", (*claims)["role"])
	assert.Equal(t, "cabbazar-test", (*claims)["iss"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testConfig()

	tokenString, _, err := GenerateToken(uuid.New(), "9876543210", models.RoleDriver, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
