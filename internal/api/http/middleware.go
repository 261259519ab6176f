package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"lankadrive-backend/internal/domain"
	"lankadrive-backend/internal/identity"
	"lankadrive-backend/internal/logger"
	"lankadrive-backend/internal/repository"
)

type contextKey string

const authContextKey contextKey = "auth"

// AuthFromRequest returns the identity attached by the auth middleware, or
// nil for unauthenticated requests on optional-auth routes.
func AuthFromRequest(r *http.Request) *identity.AuthContext {
	ac, _ := r.Context().Value(authContextKey).(*identity.AuthContext)
	return ac
}

// AuthMiddleware verifies bearer tokens and mirrors authenticated users
// into the local user table so bookings can reference them.
type AuthMiddleware struct {
	provider identity.Provider
	userRepo repository.UserRepository
}

func NewAuthMiddleware(provider identity.Provider, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{provider: provider, userRepo: userRepo}
}

func (m *AuthMiddleware) authenticate(r *http.Request) (*identity.AuthContext, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return nil, false
	}
	token := strings.TrimPrefix(header, "Bearer ")
	if token == header || token == "" {
		return nil, false
	}

	ac, err := m.provider.Verify(r.Context(), token)
	if err != nil {
		return nil, false
	}

	// Keep the local row in sync with the identity provider. Failure here
	// must not reject the request.
	err = m.userRepo.Upsert(r.Context(), &domain.User{
		ID:        ac.UserID,
		Email:     ac.Email,
		Name:      ac.Name,
		Role:      ac.Role,
		CreatedOn: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		logger.Warn("failed to sync user record", "user_id", ac.UserID, "error", err)
	}

	return ac, true
}

// Optional attaches the identity when a valid token is present but lets
// anonymous requests through.
func (m *AuthMiddleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ac, ok := m.authenticate(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), authContextKey, ac))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireUser rejects requests without a valid token.
func (m *AuthMiddleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ac, ok := m.authenticate(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		r = r.WithContext(context.WithValue(r.Context(), authContextKey, ac))
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin rejects requests whose identity does not carry the admin role.
func (m *AuthMiddleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ac, ok := m.authenticate(r)
		if !ok {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if ac.Role != domain.UserRoleAdmin {
			writeError(w, http.StatusForbidden, "admin access required")
			return
		}
		r = r.WithContext(context.WithValue(r.Context(), authContextKey, ac))
		next.ServeHTTP(w, r)
	})
}

// RequestLogging logs one line per request.
func RequestLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Debug("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
