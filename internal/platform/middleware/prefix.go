package middleware

import (
	"net/http"
	"strings"
)

// ForPathPrefix applies mw only to requests whose path starts with prefix. It scopes
// router-level middleware to operations that huma registers on the shared mux.
func ForPathPrefix(prefix string, mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		wrapped := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, prefix) {
				wrapped.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
