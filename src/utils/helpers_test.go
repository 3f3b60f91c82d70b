package utils

import (
	"testing"
	"time"

	"vrs/src/types"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

func TestCalculateDays(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, CalculateDays(start, end))

	// A fraction of a day counts as a full day.
	start = time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)
	end = time.Date(2024, 1, 2, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, CalculateDays(start, end))

	start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 1, CalculateDays(start, end))
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	assert.Nil(t, err)
	assert.NotEqual(t, "hunter2secret", hash)
	assert.True(t, VerifyPassword(hash, "hunter2secret"))
	assert.False(t, VerifyPassword(hash, "wrong-password"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "someone@example.com", NormalizeEmail(" Someone@Example.COM "))
}

func TestGenerateJWT(t *testing.T) {
	token, err := GenerateJWT("someone@example.com", 42, types.ROLE_CUSTOMER)
	assert.Nil(t, err)

	claims := &types.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return jwtKey, nil
	})
	assert.Nil(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "someone@example.com", claims.Email)
	assert.Equal(t, string(types.ROLE_CUSTOMER), claims.Role)
	assert.NotEmpty(t, claims.ID)
}

func TestDateOnly(t *testing.T) {
	d := DateOnly(time.Date(2024, 3, 10, 17, 45, 12, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), d)
}
