package services

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/sheikh-riyadh/captake-server/models"
)

const sessionTTL = 24 * time.Hour

// TokenService signs session tokens for the captake_user_token cookie.
type TokenService struct {
	secretKey []byte
}

func NewTokenService(secret string) *TokenService {
	if secret == "" {
		// The service cannot function without a secret; config validation
		// should have caught this before wiring.
		panic("session token secret not configured")
	}
	return &TokenService{secretKey: []byte(secret)}
}

// Generate signs a one-day session token for the given identity.
func (s *TokenService) Generate(identity models.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": identity.UserID,
		"email":  identity.Email,
		"jti":    uuid.NewString(),
		"iat":    now.Unix(),
		"exp":    now.Add(sessionTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}
