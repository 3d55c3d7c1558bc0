package middleware

import (
	"context"
	"net/http"
	"strings"

	"neuma/internal/model"
	"neuma/internal/service"
)

type contextKey string

const (
	UserIDKey contextKey = "userId"
	RoleKey   contextKey = "role"
)

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authSvc *service.AuthService
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(authSvc *service.AuthService) *AuthMiddleware {
	return &AuthMiddleware{authSvc: authSvc}
}

// RequireAuth validates the JWT from the Authorization header and accepts
// either role.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return m.require(next, "")
}

// RequireTeacher validates the JWT and rejects non-teacher accounts.
func (m *AuthMiddleware) RequireTeacher(next http.Handler) http.Handler {
	return m.require(next, model.RoleTeacher)
}

// RequireStudent validates the JWT and rejects non-student accounts.
func (m *AuthMiddleware) RequireStudent(next http.Handler) http.Handler {
	return m.require(next, model.RoleStudent)
}

func (m *AuthMiddleware) require(next http.Handler, role model.Role) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := extractBearerToken(r)
		if token == "" {
			http.Error(w, `{"error":"missing authorization header"}`, http.StatusUnauthorized)
			return
		}

		claims, err := m.authSvc.ValidateToken(token)
		if err != nil {
			http.Error(w, `{"error":"invalid or expired token"}`, http.StatusUnauthorized)
			return
		}
		if role != "" && claims.Role != role {
			http.Error(w, `{"error":"forbidden for this role"}`, http.StatusForbidden)
			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, RoleKey, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user ID from context
func GetUserID(ctx context.Context) string {
	if v := ctx.Value(UserIDKey); v != nil {
		return v.(string)
	}
	return ""
}

// GetRole extracts the authenticated role from context
func GetRole(ctx context.Context) model.Role {
	if v := ctx.Value(RoleKey); v != nil {
		return v.(model.Role)
	}
	return ""
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
