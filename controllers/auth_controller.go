package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sheikh-riyadh/captake-server/apperrors"
	"github.com/sheikh-riyadh/captake-server/middleware"
	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/sheikh-riyadh/captake-server/services"
)

const sessionCookieMaxAge = 24 * 60 * 60

// AuthController issues and clears the signed session cookie. Identity
// verification itself happens in an external collaborator; this endpoint
// only signs whatever identity the frontend's auth provider produced.
type AuthController struct {
	tokens     *services.TokenService
	production bool
}

func NewAuthController(tokens *services.TokenService, production bool) *AuthController {
	return &AuthController{tokens: tokens, production: production}
}

// IssueToken signs a session token and sets it as the session cookie.
func (ac *AuthController) IssueToken(c *gin.Context) {
	var identity models.Identity
	if err := c.ShouldBindJSON(&identity); err != nil || identity.Email == "" {
		respondError(c, apperrors.InvalidArgument("A user email is required"))
		return
	}

	token, err := ac.tokens.Generate(identity)
	if err != nil {
		respondError(c, apperrors.Internal("Failed to sign session token", err))
		return
	}

	ac.setSessionCookie(c, token, sessionCookieMaxAge)
	c.JSON(http.StatusCreated, gin.H{"message": "success"})
}

// Logout clears the session cookie.
func (ac *AuthController) Logout(c *gin.Context) {
	ac.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "success"})
}

func (ac *AuthController) setSessionCookie(c *gin.Context, value string, maxAge int) {
	// Cross-site frontends need SameSite=None, which browsers only accept
	// on secure cookies.
	if ac.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", ac.production, true)
}
