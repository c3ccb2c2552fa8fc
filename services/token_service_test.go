package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_SignedClaims(t *testing.T) {
	svc := NewTokenService("test-secret")

	signed, err := svc.Generate(models.Identity{UserID: "u1", Email: "buyer@example.com"})
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "u1", claims["userId"])
	assert.Equal(t, "buyer@example.com", claims["email"])
	assert.NotEmpty(t, claims["jti"])

	iat := int64(claims["iat"].(float64))
	exp := int64(claims["exp"].(float64))
	assert.Equal(t, int64(sessionTTL.Seconds()), exp-iat)
}

func TestGenerate_TokensAreUnique(t *testing.T) {
	svc := NewTokenService("test-secret")
	identity := models.Identity{UserID: "u1", Email: "buyer@example.com"}

	first, err := svc.Generate(identity)
	require.NoError(t, err)
	second, err := svc.Generate(identity)
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "jti must differ per token")
}

func TestNewTokenService_PanicsWithoutSecret(t *testing.T) {
	assert.Panics(t, func() { NewTokenService("") })
}
