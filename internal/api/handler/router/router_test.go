package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
}

func tag(name string, calls *[]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*calls = append(*calls, name)
			next.ServeHTTP(w, r)
		})
	}
}

func TestRouter_MiddlewareOrder(t *testing.T) {
	var calls []string

	rt := New(WithRoutes(Route{
		Path:        "/v1/matches/:id/approve",
		Method:      http.MethodPost,
		Handler:     okHandler(),
		Middlewares: []func(http.Handler) http.Handler{tag("auth", &calls), tag("role", &calls)},
	}))

	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/matches/M1/approve", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"auth", "role"}, calls)
}

func TestRouter_ErrorResponses(t *testing.T) {
	rt := New(WithRoutes(Route{Path: "/healthcheck", Method: http.MethodGet, Handler: okHandler()}))

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
		expectedCode   string
	}{
		{
			name:           "Rota inexistente",
			method:         http.MethodGet,
			path:           "/v1/unknown",
			expectedStatus: http.StatusNotFound,
			expectedCode:   `"code":"RES_001"`,
		},
		{
			name:           "Método não suportado",
			method:         http.MethodDelete,
			path:           "/healthcheck",
			expectedStatus: http.StatusMethodNotAllowed,
			expectedCode:   `"code":"RES_005"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.expectedStatus, rec.Code)
			assert.True(t, strings.Contains(rec.Body.String(), tt.expectedCode), rec.Body.String())
		})
	}
}
