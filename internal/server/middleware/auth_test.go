package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// staticGate is a Gate with a fixed answer.
type staticGate bool

func (g staticGate) Authenticated() bool { return bool(g) }

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name         string
		open         bool
		method       string
		wantStatus   int
		wantLocation string
	}{
		{name: "open gate passes GET", open: true, method: http.MethodGet, wantStatus: http.StatusTeapot},
		{name: "open gate passes DELETE", open: true, method: http.MethodDelete, wantStatus: http.StatusTeapot},
		{name: "closed gate redirects GET", open: false, method: http.MethodGet, wantStatus: http.StatusFound, wantLocation: LoginPath},
		{name: "closed gate redirects HEAD", open: false, method: http.MethodHead, wantStatus: http.StatusFound, wantLocation: LoginPath},
		{name: "closed gate rejects POST", open: false, method: http.MethodPost, wantStatus: http.StatusUnauthorized},
		{name: "closed gate rejects PUT", open: false, method: http.MethodPut, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequireAdmin(staticGate(tt.open))(okHandler())
			req := httptest.NewRequest(tt.method, "/admin/projects", nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantLocation, rec.Header().Get("Location"))
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"authentication required"}`, rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin_ReadsGateOnEveryRequest(t *testing.T) {
	gate := &toggleGate{}
	handler := RequireAdmin(gate)(okHandler())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/skills", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	gate.open = true
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/admin/skills", nil))
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

type toggleGate struct{ open bool }

func (g *toggleGate) Authenticated() bool { return g.open }
