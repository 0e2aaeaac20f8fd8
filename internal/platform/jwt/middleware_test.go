package jwtmw

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

const testSecret = "test-secret"

// setupProtectedRouter builds a router with one route behind AuthRequired
// that echoes the user ID the middleware stored.
func setupProtectedRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/protected", AuthRequired(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetUint(ContextUserID)})
	})
	return r
}

func request(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestAuthRequired_ValidToken(t *testing.T) {
	gen := NewGenerator(testSecret, 15*time.Minute)
	token, err := gen.GenerateToken(42, "taro@example.com")
	require.NoError(t, err)

	w := request(setupProtectedRouter(testSecret), "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code, "unexpected status: %s", w.Body.String())
	assert.Contains(t, w.Body.String(), `"user_id":42`, "middleware should expose the user ID")
}

func TestAuthRequired_MissingHeader(t *testing.T) {
	w := request(setupProtectedRouter(testSecret), "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_MalformedHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no bearer prefix", "some-token"},
		{"wrong scheme", "Basic dXNlcjpwYXNz"},
		{"empty token", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := request(setupProtectedRouter(testSecret), tt.header)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAuthRequired_InvalidSignature(t *testing.T) {
	gen := NewGenerator("other-secret", 15*time.Minute)
	token, err := gen.GenerateToken(42, "taro@example.com")
	require.NoError(t, err)

	w := request(setupProtectedRouter(testSecret), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	gen := NewGenerator(testSecret, -time.Minute)
	token, err := gen.GenerateToken(42, "taro@example.com")
	require.NoError(t, err)

	w := request(setupProtectedRouter(testSecret), "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_RejectsNonHMACAlg(t *testing.T) {
	// alg=none style tokens must never pass.
	token := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": 42})
	tokenStr, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	w := request(setupProtectedRouter(testSecret), "Bearer "+tokenStr)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequired_EmptySecretIsServerError(t *testing.T) {
	gen := NewGenerator(testSecret, 15*time.Minute)
	token, err := gen.GenerateToken(42, "taro@example.com")
	require.NoError(t, err)

	w := request(setupProtectedRouter(""), "Bearer "+token)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
