package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	tests := []struct {
		name            string
		allowed         []string
		method          string
		origin          string
		wantStatus      int
		wantOrigin      string
		wantCredentials string
	}{
		{"allowed origin", []string{"https://wedding.example.com/"}, http.MethodGet, "https://wedding.example.com", http.StatusOK, "https://wedding.example.com", "true"},
		{"other origin", []string{"https://wedding.example.com"}, http.MethodGet, "https://evil.example.com", http.StatusOK, "", ""},
		{"preflight allowed", []string{"https://wedding.example.com"}, http.MethodOptions, "https://wedding.example.com", http.StatusNoContent, "https://wedding.example.com", "true"},
		{"preflight other", []string{"https://wedding.example.com"}, http.MethodOptions, "https://evil.example.com", http.StatusNoContent, "", ""},
		{"wildcard", []string{"*"}, http.MethodPost, "https://anywhere.example.com", http.StatusOK, "https://anywhere.example.com", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/rsvp", nil)
			req.Header.Set("Origin", tt.origin)
			rr := httptest.NewRecorder()

			CORS(tt.allowed, ok).ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, tt.wantCredentials, rr.Header().Get("Access-Control-Allow-Credentials"))
			if tt.method == http.MethodOptions && tt.wantOrigin != "" {
				assert.Equal(t, corsAllowMethods, rr.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
