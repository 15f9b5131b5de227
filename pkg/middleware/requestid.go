package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request and response with an id, keeping a
// caller-supplied one when present.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
				r.Header.Set(requestIDHeader, id)
			}
			w.Header().Set(requestIDHeader, id)

			next.ServeHTTP(w, r)
		})
	}
}
