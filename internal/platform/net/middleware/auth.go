package middleware

import (
	"net/http"

	pnet "textmate/internal/platform/net"
)

// AuthPort is a tiny seam the auth service implements
type AuthPort interface {
	// Parse returns the authenticated user id from the request or an error
	Parse(r *http.Request) (userID string, err error)
}

// Auth rejects requests the port cannot authenticate.
// A nil port makes it a no-op
func Auth(p AuthPort, write func(w http.ResponseWriter, status int, body any)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p == nil {
				next.ServeHTTP(w, r)
				return
			}
			uid, err := p.Parse(r)
			if err != nil {
				status, body := pnet.Error(err, pnet.RequestID(r.Context()))
				write(w, status, body)
				return
			}
			next.ServeHTTP(w, r.WithContext(pnet.WithUser(r.Context(), uid)))
		})
	}
}

// OptionalAuth annotates the context when the port authenticates the request
// and passes it through anonymous otherwise. Bad tokens never block here
func OptionalAuth(p AuthPort) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if p != nil {
				if uid, err := p.Parse(r); err == nil && uid != "" {
					r = r.WithContext(pnet.WithUser(r.Context(), uid))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}
