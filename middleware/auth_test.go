package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sheikh-riyadh/captake-server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func protectedRouter() (*gin.Engine, *models.Identity) {
	gin.SetMode(gin.TestMode)
	var captured models.Identity
	r := gin.New()
	r.GET("/protected", Verify(testSecret), func(c *gin.Context) {
		id, err := CallerIdentity(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		captured = id
		c.JSON(http.StatusOK, gin.H{"email": id.Email})
	})
	return r, &captured
}

func TestVerify_ValidCookie(t *testing.T) {
	r, captured := protectedRouter()

	token := signToken(t, testSecret, jwt.MapClaims{
		"userId": "u1",
		"email":  "buyer@example.com",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "buyer@example.com", captured.Email)
	assert.Equal(t, "u1", captured.UserID)
}

func TestVerify_MissingCookie(t *testing.T) {
	r, _ := protectedRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestVerify_WrongSignature(t *testing.T) {
	r, _ := protectedRouter()

	token := signToken(t, []byte("some-other-secret"), jwt.MapClaims{
		"userId": "u1",
		"email":  "buyer@example.com",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerify_ExpiredToken(t *testing.T) {
	r, _ := protectedRouter()

	token := signToken(t, testSecret, jwt.MapClaims{
		"userId": "u1",
		"email":  "buyer@example.com",
		"exp":    time.Now().Add(-time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestVerify_MissingEmailClaim(t *testing.T) {
	r, _ := protectedRouter()

	token := signToken(t, testSecret, jwt.MapClaims{
		"userId": "u1",
		"exp":    time.Now().Add(time.Hour).Unix(),
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCallerIdentity_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	_, err := CallerIdentity(c)
	assert.Error(t, err)
}
