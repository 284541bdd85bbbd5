// filepath: internal/services/auth/tokenservice.go
// Package auth issues and checks the JWTs behind the admin console and
// the unlocked gallery. Access tokens are stateless; refresh tokens are
// stateful, stored as SHA-256 hashes so a leaked store never yields a
// usable token.
package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"lumina/internal/config"
	"lumina/internal/store"
)

// Roles carried in the token's role claim.
const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// Claims are the custom claims on every token this service signs.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

var _ TokenService = (*tokenService)(nil)

type tokenService struct {
	cfg   *config.Config
	store *store.Store
}

// NewTokenService creates a new instance of the tokenService.
func NewTokenService(cfg *config.Config, s *store.Store) TokenService {
	return &tokenService{cfg: cfg, store: s}
}

// hashToken securely hashes a token string (using SHA-256) for storage.
func hashToken(token string) string {
	hash := sha256.Sum256([]byte(token))
	return hex.EncodeToString(hash[:])
}

// AuthenticateAdmin checks the fixed demo credential pair. The compare
// is constant-time even though the credential is not secret, so the
// check stays correct when the credential source is swapped out.
func (s *tokenService) AuthenticateAdmin(username, password string) error {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Auth.AdminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.Auth.AdminPassword)) == 1
	if !userOK || !passOK {
		return errors.New("invalid credentials")
	}
	return nil
}

// GenerateTokens creates, signs, and stores a new admin token pair.
func (s *tokenService) GenerateTokens(username string) (string, string, error) {
	accessExpiry := time.Now().Add(time.Minute * time.Duration(s.cfg.Auth.AccessDurationMin))
	signedAccessToken, err := s.sign(&Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(accessExpiry),
			Issuer:    "lumina",
			Subject:   username,
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshExpiry := time.Now().Add(time.Hour * time.Duration(s.cfg.Auth.RefreshDurationHours))
	// Random jti so two refresh tokens for the same subject never hash
	// to the same stored value.
	jtiBytes := make([]byte, 16)
	if _, err := rand.Read(jtiBytes); err != nil {
		return "", "", fmt.Errorf("failed to generate token id: %w", err)
	}

	signedRefreshToken, err := s.sign(&Claims{
		Role: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(refreshExpiry),
			Issuer:    "lumina",
			Subject:   username,
			ID:        hex.EncodeToString(jtiBytes),
		},
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to sign refresh token: %w", err)
	}

	if err := s.store.StoreRefreshToken(username, hashToken(signedRefreshToken), refreshExpiry); err != nil {
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	return signedAccessToken, signedRefreshToken, nil
}

// IssueViewerToken signs a short-lived stateless token for an unlocked
// gallery session.
func (s *tokenService) IssueViewerToken(email string) (string, error) {
	expiry := time.Now().Add(time.Hour * time.Duration(s.cfg.Auth.ViewerDurationHours))
	token, err := s.sign(&Claims{
		Role: RoleViewer,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			Issuer:    "lumina",
			Subject:   email,
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign viewer token: %w", err)
	}
	return token, nil
}

func (s *tokenService) sign(claims *Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// ValidateAccessToken checks an access token (stateless). It verifies
// the signature and expiry and returns the claims.
func (s *tokenService) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.parse(tokenString)
}

// ValidateRefreshToken checks a refresh token (stateful). It verifies
// the signature AND checks the store to ensure it hasn't been revoked.
func (s *tokenService) ValidateRefreshToken(tokenString string) (*Claims, error) {
	claims, err := s.parse(tokenString)
	if err != nil {
		return nil, err
	}

	subject, err := s.store.ValidateRefreshToken(hashToken(tokenString))
	if err != nil {
		return nil, fmt.Errorf("token not found in store (revoked or expired): %w", err)
	}
	if subject != claims.Subject {
		return nil, errors.New("refresh token subject mismatch")
	}
	return claims, nil
}

func (s *tokenService) parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	})
	if err != nil {
		return nil, err // Handles expired tokens as well
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// Logout invalidates a refresh token by deleting its hash from the
// store.
func (s *tokenService) Logout(refreshToken string) error {
	return s.store.DeleteRefreshToken(hashToken(refreshToken))
}

// LogoutAll revokes every refresh token issued to a subject, ending all
// of their sessions at once.
func (s *tokenService) LogoutAll(subject string) error {
	return s.store.DeleteAllRefreshTokensForSubject(subject)
}
