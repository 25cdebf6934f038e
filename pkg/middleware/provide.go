package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/altora/backoffice/pkg/constants"
)

// Provide injects a static value into every request context under the given
// key. Used to thread process-wide resources, e.g. the database pool.
func Provide(key constants.ContextKey, value interface{}) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), key, value)))
			},
		)
	}
}
