package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasetoMaker_RoundTrip(t *testing.T) {
	maker, err := NewPasetoMaker(GenerateSymmetricKey())
	require.NoError(t, err)

	token, exp := maker.CreateToken("auth-1", "lead@example.com", "session-1", time.Hour)
	payload, err := maker.VerifyToken(token)
	require.NoError(t, err)

	assert.Equal(t, "auth-1", payload.AuthUserID)
	assert.Equal(t, "lead@example.com", payload.Email)
	assert.Equal(t, "session-1", payload.JTI)
	assert.WithinDuration(t, exp, payload.ExpiresAt, time.Second)
}

func TestPasetoMaker_RejectsForeignKey(t *testing.T) {
	a, _ := NewPasetoMaker(GenerateSymmetricKey())
	b, _ := NewPasetoMaker(GenerateSymmetricKey())

	token, _ := a.CreateToken("auth-1", "x@example.com", "s", time.Hour)
	_, err := b.VerifyToken(token)
	assert.Error(t, err)
}

func TestNewPasetoMaker_InvalidHex(t *testing.T) {
	_, err := NewPasetoMaker("zz")
	assert.Error(t, err)
}
