// filepath: internal/services/auth/interfaces.go
package auth

// TokenService defines the contract for JWT operations.
type TokenService interface {
	AuthenticateAdmin(username, password string) error
	GenerateTokens(username string) (accessToken string, refreshToken string, err error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ValidateRefreshToken(tokenString string) (*Claims, error)
	IssueViewerToken(email string) (string, error)
	Logout(refreshToken string) error
	LogoutAll(subject string) error
}
