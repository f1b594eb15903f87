package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestAPIDocsHandler(t *testing.T) {
	handler := APIDocsHandler()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{
			name:           "GET root returns index.html",
			method:         http.MethodGet,
			path:           "/api-docs",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "GET with trailing slash returns index.html",
			method:         http.MethodGet,
			path:           "/api-docs/",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "GET unknown file is 404",
			method:         http.MethodGet,
			path:           "/api-docs/missing.js",
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "POST not allowed",
			method:         http.MethodPost,
			path:           "/api-docs",
			expectedStatus: http.StatusMethodNotAllowed,
		},
		{
			name:           "HEAD allowed",
			method:         http.MethodHead,
			path:           "/api-docs",
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			res := httptest.NewRecorder()

			handler.ServeHTTP(res, req)

			if res.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", res.Code, tt.expectedStatus)
			}
			if tt.method == http.MethodGet && tt.expectedStatus == http.StatusOK {
				if !strings.Contains(res.Body.String(), "api-reference") {
					t.Fatalf("expected docs page body, got %q", res.Body.String())
				}
			}
		})
	}
}
