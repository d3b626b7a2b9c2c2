package middleware

import (
	"net/http"

	"github.com/rs/zerolog"

	"employee-api/internal/auth"
)

// WithAuth attaches the caller identity, if any, to the request context.
// It never rejects: resolvers decide what an anonymous caller may do.
func WithAuth(authn *auth.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := authn.Authenticate(r.Header.Get("Authorization"))
			if err != nil {
				zerolog.Ctx(r.Context()).Debug().Err(err).Msg("ignoring invalid token")
			}
			if id == nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), id)))
		})
	}
}
