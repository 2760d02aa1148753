package middleware

import (
	"net/http"

	"github.com/atelier-dourado/backoffice/pkg/composables"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
)

// WithPool makes the shared connection pool available to repositories
// through the request context. Transactions are opened per operation by
// composables.InTx, never held across unrelated awaits.
func WithPool(pool *pgxpool.Pool) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := composables.WithPool(r.Context(), pool)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
