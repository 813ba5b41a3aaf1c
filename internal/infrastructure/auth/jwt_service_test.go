package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/saradorri/safecasino/internal/config"
)

func newTestService(expiry time.Duration) JWTService {
	return NewJWTService(&config.JWTConfig{Secret: "test-secret", Expiry: expiry})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestService(time.Hour)

	token, err := svc.GenerateToken("acc-1", "player@example.com", []string{"Player"})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "acc-1", claims.AccountID)
	assert.Equal(t, "player@example.com", claims.Email)
	assert.Equal(t, []string{"Player"}, claims.Roles)
	assert.Equal(t, "safecasino", claims.Issuer)
	assert.Equal(t, "acc-1", claims.Subject)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newTestService(-time.Minute)

	token, err := svc.GenerateToken("acc-1", "player@example.com", nil)
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	token, err := newTestService(time.Hour).GenerateToken("acc-1", "player@example.com", nil)
	assert.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{Secret: "different-secret", Expiry: time.Hour})
	claims, err := other.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newTestService(time.Hour)

	claims, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestClaimsHasRole(t *testing.T) {
	claims := &Claims{Roles: []string{"Player", "Moderator"}}

	assert.True(t, claims.HasRole("Moderator"))
	assert.False(t, claims.HasRole("Admin"))
}
