package jwtmw

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerator_GenerateToken(t *testing.T) {
	gen := NewGenerator("test-secret", 15*time.Minute)

	tokenStr, err := gen.GenerateToken(42, "taro@example.com")
	require.NoError(t, err, "failed to generate token")
	require.NotEmpty(t, tokenStr)

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err, "generated token should parse")
	require.True(t, token.Valid, "generated token should be valid")

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, float64(42), claims["sub"], "sub should carry the user ID")
	assert.Equal(t, "taro@example.com", claims["email"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok, "exp claim missing")
	wantExp := time.Now().Add(15 * time.Minute).Unix()
	assert.InDelta(t, wantExp, exp, 5, "exp should be about 15 minutes out")
}

func TestGenerator_GenerateToken_WrongSecretFailsVerification(t *testing.T) {
	gen := NewGenerator("test-secret", 15*time.Minute)

	tokenStr, err := gen.GenerateToken(42, "taro@example.com")
	require.NoError(t, err)

	_, err = jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err, "verification with the wrong secret should fail")
}
