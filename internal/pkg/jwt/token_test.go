package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentride/rentride/internal/pkg/models"
)

func tokenTestConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			AccessSecret:      "access-secret",
			RefreshSecret:     "refresh-secret",
			AccessExpiration:  15,
			RefreshExpiration: 10080,
			Issuer:            "rentride",
		},
	}
}

func tokenTestUser() *models.User {
	return &models.User{
		ID:    uuid.New(),
		Email: "driver@example.com",
		Role:  models.RoleDriver,
	}
}

func TestGenerateAccessToken(t *testing.T) {
	cfg := tokenTestConfig()
	user := tokenTestUser()

	tokenString, expiresAt, err := GenerateAccessToken(user, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.JWT.AccessSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims["user_id"])
	assert.Equal(t, user.Email, claims["email"])
	assert.Equal(t, models.RoleDriver, claims["role"])
	assert.Equal(t, "rentride", claims["iss"])
}

func TestGenerateRefreshTokenHasUniqueID(t *testing.T) {
	cfg := tokenTestConfig()
	user := tokenTestUser()

	tokenString, tokenID, _, err := GenerateRefreshToken(user, cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tokenID)

	_, secondID, _, err := GenerateRefreshToken(user, cfg)
	require.NoError(t, err)
	assert.NotEqual(t, tokenID, secondID)

	claims, err := ValidateToken(tokenString, cfg.JWT.RefreshSecret)
	require.NoError(t, err)
	assert.Equal(t, tokenID, claims["jti"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := tokenTestConfig()

	tokenString, _, err := GenerateAccessToken(tokenTestUser(), cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "not-the-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not.a.token", "access-secret")
	assert.Error(t, err)
}
