package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	okHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name          string
		allowed       []string
		method        string
		origin        string
		preflight     bool
		wantStatus    int
		wantOrigin    string
		wantCreds     string
		wantNextCalls bool
	}{
		{
			name:          "allowed origin simple request",
			allowed:       []string{"https://app.example.com/"},
			method:        http.MethodGet,
			origin:        "https://app.example.com",
			wantStatus:    http.StatusOK,
			wantOrigin:    "https://app.example.com",
			wantCreds:     "true",
			wantNextCalls: true,
		},
		{
			name:          "unknown origin passes without headers",
			allowed:       []string{"https://app.example.com"},
			method:        http.MethodGet,
			origin:        "https://evil.example.com",
			wantStatus:    http.StatusOK,
			wantNextCalls: true,
		},
		{
			name:       "preflight for allowed origin",
			allowed:    []string{"https://app.example.com"},
			method:     http.MethodOptions,
			origin:     "https://app.example.com",
			preflight:  true,
			wantStatus: http.StatusNoContent,
			wantOrigin: "https://app.example.com",
			wantCreds:  "true",
		},
		{
			name:          "wildcard",
			allowed:       []string{"*"},
			method:        http.MethodPost,
			origin:        "https://anyone.example.com",
			wantStatus:    http.StatusOK,
			wantOrigin:    "*",
			wantNextCalls: true,
		},
		{
			name:          "disabled when no origins configured",
			allowed:       nil,
			method:        http.MethodGet,
			origin:        "https://app.example.com",
			wantStatus:    http.StatusOK,
			wantNextCalls: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				okHandler(w, r)
			})
			req := httptest.NewRequest(tt.method, "/events", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.preflight {
				req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
			}
			rr := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNextCalls, called)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCreds, rr.Header().Get("Access-Control-Allow-Credentials"))
			if tt.preflight {
				assert.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
