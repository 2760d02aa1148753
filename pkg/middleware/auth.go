package middleware

import (
	"net/http"
	"strings"

	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/atelier-dourado/backoffice/pkg/identity"
	"github.com/gorilla/mux"
)

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}

// Authenticate resolves the caller's bearer credential through the
// identity provider and stores the outcome in the request context.
// Resolution failures are carried, not rejected here; guards decide the
// status per route so public endpoints stay reachable.
func Authenticate(provider identity.Provider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			id, err := provider.Resolve(ctx, bearerToken(r))
			if err != nil {
				ctx = composables.WithAuthError(ctx, err)
			} else {
				ctx = composables.WithIdentity(ctx, id)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
