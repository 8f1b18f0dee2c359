// Package middleware provides HTTP middleware for the admin gate.
package middleware

import (
	"net/http"
)

// LoginPath is where unauthenticated page requests are sent.
const LoginPath = "/login"

// Gate reports whether the admin area is currently unlocked.
type Gate interface {
	Authenticated() bool
}

// RequireAdmin blocks admin routes while the gate is closed. GET and HEAD
// requests are redirected to the login page; everything else gets a 401.
func RequireAdmin(gate Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if gate.Authenticated() {
				next.ServeHTTP(w, r)
				return
			}

			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"authentication required"}` + "\n"))
		})
	}
}
