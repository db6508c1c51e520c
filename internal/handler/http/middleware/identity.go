package middleware

import (
	"net/http"

	"github.com/empdash/empdash-backend-go/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
)

// Identity attaches the decoded caller identity to the request context.
// Requests without a token, or with one that fails verification, continue
// as anonymous; protected operations reject them at the resolver layer.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			next.ServeHTTP(w, r)
			return
		}

		identity, err := auth.IdentityFromClaims(claims)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), identity)))
	})
}
