package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccessToken(t *testing.T) {
	access, err := NewAccessToken("secret", "alice", "CUSTOMER", 15)
	require.NoError(t, err)
	assert.NotEmpty(t, access.Token)
	assert.WithinDuration(t, time.Now().UTC().Add(15*time.Minute), access.Exp, 5*time.Second)

	tok, err := jwt.Parse(access.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, tok.Valid)

	claims, ok := tok.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "alice", claims["sub"])
	assert.Equal(t, "CUSTOMER", claims["role"])
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret", 4)
	require.NoError(t, err)
	assert.True(t, VerifyPassword(hash, "secret"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}
