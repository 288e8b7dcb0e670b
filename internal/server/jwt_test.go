package server

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-site/internal/config"
)

func newTestJWTService(t *testing.T) *JWTService {
	t.Helper()
	cfg, err := config.NewJWTConfig()
	require.NoError(t, err)
	return NewJWTService(cfg)
}

func TestJWT_GenerateAndValidate(t *testing.T) {
	svc := newTestJWTService(t)

	token, err := svc.GenerateToken()
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, claims.GetSessionID())
}

func TestJWT_EachTokenHasFreshSessionID(t *testing.T) {
	svc := newTestJWTService(t)

	first, err := svc.GenerateToken()
	require.NoError(t, err)
	second, err := svc.GenerateToken()
	require.NoError(t, err)

	a, err := svc.ValidateToken(first)
	require.NoError(t, err)
	b, err := svc.ValidateToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, a.GetSessionID(), b.GetSessionID())
}

func TestJWT_ValidateErrors(t *testing.T) {
	svc := newTestJWTService(t)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestJWT_RejectsForeignSecret(t *testing.T) {
	issuer := NewJWTService(&config.JWTConfig{Secret: "secret-a", ExpirationHours: 1})
	verifier := NewJWTService(&config.JWTConfig{Secret: "secret-b", ExpirationHours: 1})

	token, err := issuer.GenerateToken()
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}
