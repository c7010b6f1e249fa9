// Package middlewares holds the route gates that need application state:
// bearer-token authentication and the admin role check.
package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/gokart/app/repositories"
	"github.com/shashiranjanraj/gokart/pkg/auth"
	"github.com/shashiranjanraj/gokart/pkg/logger"
	"github.com/shashiranjanraj/gokart/pkg/response"
)

// identityKey is the unexported context key for the verified claims.
type identityKey struct{}

// IdentityFrom returns the verified token claims attached by RequireSignIn.
func IdentityFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(identityKey{}).(*auth.Claims)
	return claims, ok
}

// WithIdentity attaches claims to ctx. Exported for handler tests that
// bypass the middleware.
func WithIdentity(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, identityKey{}, claims)
}

// RequireSignIn verifies the bearer token and attaches the decoded identity
// to the request. The SPA historically sent the raw token in the
// Authorization header; a "Bearer " prefix is also accepted. Any
// verification failure is an explicit 401 — the request never reaches the
// downstream handler.
func RequireSignIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimSpace(strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer "))
		if token == "" {
			response.Fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			logger.WithCtx(r.Context()).Warn("token rejected", "error", err.Error())
			response.Fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), claims)))
	})
}

// AdminGate checks the administrator role against the user store — the
// role inside the token is not trusted on its own, a demoted admin is
// locked out as soon as the record changes.
type AdminGate struct {
	users repositories.UserRepository
}

func NewAdminGate(users repositories.UserRepository) *AdminGate {
	return &AdminGate{users: users}
}

// RequireAdmin loads the authenticated user and requires the admin role.
func (g *AdminGate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := IdentityFrom(r.Context())
		if !ok {
			response.Fail(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := g.users.FindByID(r.Context(), claims.UserID)
		if err != nil {
			logger.WithCtx(r.Context()).Error("admin gate lookup failed", "error", err.Error())
			response.Fail(w, http.StatusUnauthorized, "Error in admin middleware")
			return
		}
		if user == nil || !user.IsAdmin() {
			response.Fail(w, http.StatusUnauthorized, "UnAuthorized Access")
			return
		}

		next.ServeHTTP(w, r)
	})
}
