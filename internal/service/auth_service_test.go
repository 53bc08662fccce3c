package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyhive/studyhive-api/internal/models"
	"github.com/studyhive/studyhive-api/pkg/config"
)

func newAuthService(secret string, expiry time.Duration) *AuthService {
	return NewAuthService(config.JWTConfig{Secret: secret, Expiration: expiry}, nil)
}

func TestIssueAndValidateRoundTrip(t *testing.T) {
	svc := newAuthService("test-secret", time.Hour)

	token, err := svc.IssueToken(models.TokenClaims{Email: "a@x.com", Name: "Alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alice", claims.Name)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestValidateExpiredToken(t *testing.T) {
	svc := newAuthService("test-secret", -time.Minute)

	token, err := svc.IssueToken(models.TokenClaims{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateWrongSecret(t *testing.T) {
	issuer := newAuthService("secret-one", time.Hour)
	verifier := newAuthService("secret-two", time.Hour)

	token, err := issuer.IssueToken(models.TokenClaims{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateMalformedToken(t *testing.T) {
	svc := newAuthService("test-secret", time.Hour)

	for _, garbage := range []string{"", "not-a-token", "a.b.c", "%%%"} {
		_, err := svc.ValidateToken(garbage)
		assert.Error(t, err, "token %q should not validate", garbage)
	}
}

func TestIssueSignsClaimsAsGiven(t *testing.T) {
	svc := newAuthService("test-secret", time.Hour)

	token, err := svc.IssueToken(models.TokenClaims{Email: "definitely not an email"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "definitely not an email", claims.Email)
}
