// filepath: internal/services/auth/token_service_test.go
package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"lumina/internal/config"
	"lumina/internal/store"
)

func setupTokenService(t *testing.T) (TokenService, *config.Config, func()) {
	t.Helper()

	s, err := store.Open(":memory:", &store.SequenceGenerator{})
	if err != nil {
		t.Fatalf("Failed to open store: %v", err)
	}
	if err := s.Migrate(); err != nil {
		t.Fatalf("Failed to migrate store: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret"}
	cfg.ApplyDefaults()

	return NewTokenService(cfg, s), cfg, func() { s.Close() }
}

func TestAuthenticateAdmin(t *testing.T) {
	svc, _, cleanup := setupTokenService(t)
	defer cleanup()

	assert.NoError(t, svc.AuthenticateAdmin("admin", "admin123"))
	assert.Error(t, svc.AuthenticateAdmin("admin", "wrong"))
	assert.Error(t, svc.AuthenticateAdmin("root", "admin123"))
	assert.Error(t, svc.AuthenticateAdmin("", ""))
}

func TestGenerateAndValidateTokens(t *testing.T) {
	svc, _, cleanup := setupTokenService(t)
	defer cleanup()

	access, refresh, err := svc.GenerateTokens("admin")
	assert.NoError(t, err)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
	assert.NotEqual(t, access, refresh)

	claims, err := svc.ValidateAccessToken(access)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, RoleAdmin, claims.Role)

	claims, err = svc.ValidateRefreshToken(refresh)
	assert.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
}

func TestLogoutRevokesRefreshToken(t *testing.T) {
	svc, _, cleanup := setupTokenService(t)
	defer cleanup()

	_, refresh, err := svc.GenerateTokens("admin")
	assert.NoError(t, err)

	_, err = svc.ValidateRefreshToken(refresh)
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(refresh))
	_, err = svc.ValidateRefreshToken(refresh)
	assert.Error(t, err)
}

func TestLogoutAllRevokesEverySession(t *testing.T) {
	svc, _, cleanup := setupTokenService(t)
	defer cleanup()

	// Two live sessions for the same subject.
	_, first, err := svc.GenerateTokens("admin")
	assert.NoError(t, err)
	_, second, err := svc.GenerateTokens("admin")
	assert.NoError(t, err)

	assert.NoError(t, svc.LogoutAll("admin"))

	_, err = svc.ValidateRefreshToken(first)
	assert.Error(t, err)
	_, err = svc.ValidateRefreshToken(second)
	assert.Error(t, err)
}

func TestViewerToken(t *testing.T) {
	svc, _, cleanup := setupTokenService(t)
	defer cleanup()

	token, err := svc.IssueViewerToken("sarah@example.com")
	assert.NoError(t, err)

	claims, err := svc.ValidateAccessToken(token)
	assert.NoError(t, err)
	assert.Equal(t, RoleViewer, claims.Role)
	assert.Equal(t, "sarah@example.com", claims.Subject)

	// A viewer token is stateless and is not a refresh token.
	_, err = svc.ValidateRefreshToken(token)
	assert.Error(t, err)
}

func TestRejectsForgedTokens(t *testing.T) {
	svc, _, cleanup := setupTokenService(t)
	defer cleanup()

	// Signed with a different secret.
	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Subject:   "admin",
		},
	})
	signed, err := forged.SignedString([]byte("other-secret"))
	assert.NoError(t, err)

	_, err = svc.ValidateAccessToken(signed)
	assert.Error(t, err)

	// Unsigned algorithm is rejected outright.
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &Claims{Role: RoleAdmin})
	signedNone, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	assert.NoError(t, err)
	_, err = svc.ValidateAccessToken(signedNone)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	svc, cfg, cleanup := setupTokenService(t)
	defer cleanup()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Subject:   "admin",
		},
	})
	signed, err := expired.SignedString([]byte(cfg.JWTSecret))
	assert.NoError(t, err)

	_, err = svc.ValidateAccessToken(signed)
	assert.Error(t, err)
}

func TestGenerateSecret(t *testing.T) {
	a, err := GenerateSecret()
	assert.NoError(t, err)
	b, err := GenerateSecret()
	assert.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
