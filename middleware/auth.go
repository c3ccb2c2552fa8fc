package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sheikh-riyadh/captake-server/models"
)

// SessionCookie is the cookie carrying the signed session token.
const SessionCookie = "captake_user_token"

// IdentityKey is the gin context key holding the decoded caller identity.
const IdentityKey = "identity"

// Verify parses the session cookie and stores the decoded identity in the
// gin context. Missing or invalid credentials abort with 401.
func Verify(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookie)
		if err != nil || tokenStr == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return secret, nil
		})
		if err != nil || token == nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		email, _ := claims["email"].(string)
		userID, _ := claims["userId"].(string)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		c.Set(IdentityKey, models.Identity{UserID: userID, Email: email})
		c.Next()
	}
}

// CallerIdentity returns the identity stored by Verify.
func CallerIdentity(c *gin.Context) (models.Identity, error) {
	if val, ok := c.Get(IdentityKey); ok {
		if id, ok := val.(models.Identity); ok && id.Email != "" {
			return id, nil
		}
	}
	return models.Identity{}, errors.New("caller identity not found in context")
}
