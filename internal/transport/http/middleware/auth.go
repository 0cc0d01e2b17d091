package middleware

import (
	"context"
	"net/http"
	"strings"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/registry"
	"hrms/internal/session"
)

type ctxKey string

const ctxKeyIdentity ctxKey = "identity"

// Identity attaches the caller's demo identity to the request context. A
// valid bearer token selects its own role; otherwise the session manager's
// current identity applies, which is how the role switcher drives the API.
func Identity(secret string, sessions *session.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity := sessions.Current()

			if header := r.Header.Get("Authorization"); header != "" {
				parts := strings.Split(header, " ")
				if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
					if claims, err := auth.ParseToken(secret, parts[1]); err == nil {
						if resolved, err := resolveClaims(claims); err == nil {
							identity = resolved
						}
					}
				}
			}

			ctx := context.WithValue(r.Context(), ctxKeyIdentity, identity)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveClaims(claims *auth.Claims) (registry.Identity, error) {
	role, err := registry.ParseRole(claims.Role)
	if err != nil {
		return registry.Identity{}, err
	}
	return registry.ResolveIdentity(role)
}

func GetIdentity(ctx context.Context) (registry.Identity, bool) {
	identity, ok := ctx.Value(ctxKeyIdentity).(registry.Identity)
	return identity, ok
}
