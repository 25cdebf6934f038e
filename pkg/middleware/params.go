package middleware

import (
	"net"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/altora/backoffice/pkg/composables"
)

// WithParams attaches request metadata (IP, user agent, writer) to the
// context so lower layers can reach it without the raw request.
func WithParams() mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}
			params := &composables.Params{
				IP:        ip,
				UserAgent: r.UserAgent(),
				Request:   r,
				Writer:    w,
			}
			next.ServeHTTP(w, r.WithContext(composables.WithParams(r.Context(), params)))
		})
	}
}
