// filepath: internal/services/auth/middleware.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"lumina/internal/logging"
)

type contextKey string

// ClaimsContextKey is where the middleware parks the validated claims.
const ClaimsContextKey contextKey = "claims"

// writeError sends a JSON error response.
func writeError(w http.ResponseWriter, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// Middleware provides authentication and authorization middleware.
type Middleware struct {
	Token TokenService
}

// NewMiddleware creates a new instance of Middleware.
func NewMiddleware(token TokenService) *Middleware {
	return &Middleware{Token: token}
}

// Authenticate checks for a valid JWT Bearer token and parks its claims
// in the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			w.Header().Set("WWW-Authenticate", `Bearer realm="restricted"`)
			writeError(w, http.StatusUnauthorized, "Authorization header required")
			return
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := m.Token.ValidateAccessToken(tokenString)
		if err != nil {
			logging.Log.Warnf("Authenticate: invalid bearer token: %v", err)
			if strings.Contains(err.Error(), "expired") {
				writeError(w, http.StatusUnauthorized, "Token expired")
			} else {
				writeError(w, http.StatusUnauthorized, "Invalid token")
			}
			return
		}

		ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole rejects requests whose token does not carry the required
// role. Admins pass viewer checks; a viewer token opens the gallery,
// not the console.
func (m *Middleware) RequireRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := r.Context().Value(ClaimsContextKey).(*Claims)
			if !ok {
				logging.Log.Warnf("RequireRole: no claims in context for %s", r.URL.Path)
				writeError(w, http.StatusForbidden, "Forbidden")
				return
			}

			if claims.Role == requiredRole || claims.Role == RoleAdmin {
				next.ServeHTTP(w, r)
				return
			}

			logging.Log.Warnf("RequireRole: access denied for %q, missing role %q on %s", claims.Subject, requiredRole, r.URL.Path)
			writeError(w, http.StatusForbidden, "Forbidden")
		})
	}
}

// ClaimsFromContext extracts validated claims, if any.
func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*Claims)
	return claims, ok
}
