package middleware

import (
	"context"
	"net/http"

	"github.com/bloghub/bloghub-be/internal/apperr"
	"github.com/bloghub/bloghub-be/internal/auth"
	"github.com/bloghub/bloghub-be/internal/http/respond"
	"github.com/bloghub/bloghub-be/internal/models"
)

type principalKey struct{}

// RequireAuth resolves the bearer token before any handler logic runs and
// stores the principal in the request context. Requests without a valid token
// never reach the wrapped handler.
func RequireAuth(resolver *auth.PrincipalResolver, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, err := resolver.Resolve(r.Header.Get("Authorization"))
		if err != nil {
			respond.Error(w, r, err)
			return
		}
		ctx := context.WithValue(r.Context(), principalKey{}, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole layers an exact role check on top of RequireAuth.
func RequireRole(resolver *auth.PrincipalResolver, role models.Role, next http.Handler) http.Handler {
	return RequireAuth(resolver, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		principal, _ := PrincipalFrom(r.Context())
		if !auth.RequiresRole(principal, role) {
			respond.Error(w, r, apperr.Forbidden("insufficient role"))
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// PrincipalFrom returns the authenticated principal stored by RequireAuth.
func PrincipalFrom(ctx context.Context) (auth.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(auth.Principal)
	return principal, ok
}
