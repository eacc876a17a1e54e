package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-match-api/internal/usecases/authenticating/mocks"
	"go.uber.org/mock/gomock"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func TestAuthMiddleware(t *testing.T) {
	brandClaims := &domain.Claims{BrandID: "BRD001", RoleID: domain.RoleBrand}

	tests := []struct {
		name           string
		method         string
		path           string
		authorization  string
		setup          func(auth *mocks.MockAuthenticator)
		expectedStatus int
	}{
		{
			name:           "Rota pública de login não exige token",
			method:         http.MethodPost,
			path:           "/v1/login",
			setup:          func(*mocks.MockAuthenticator) {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Cadastro de marca é público",
			method:         http.MethodPost,
			path:           "/v1/brands",
			setup:          func(*mocks.MockAuthenticator) {},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:           "Consulta de marca exige token",
			method:         http.MethodGet,
			path:           "/v1/brands/BRD001",
			setup:          func(*mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Header sem Bearer",
			method:         http.MethodGet,
			path:           "/v1/campaigns/CMP001",
			authorization:  "Token abc",
			setup:          func(*mocks.MockAuthenticator) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "Token expirado",
			method:        http.MethodGet,
			path:          "/v1/campaigns/CMP001",
			authorization: "Bearer abc",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("abc").Return(nil, authenticating.ErrExpiredToken)
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "Token inválido",
			method:        http.MethodGet,
			path:          "/v1/campaigns/CMP001",
			authorization: "Bearer abc",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("abc").Return(nil, errors.New("bad signature"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:          "Token válido segue com as claims no contexto",
			method:        http.MethodGet,
			path:          "/v1/campaigns/CMP001",
			authorization: "Bearer abc",
			setup: func(auth *mocks.MockAuthenticator) {
				auth.EXPECT().ValidateToken("abc").Return(brandClaims, nil)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			auth := mocks.NewMockAuthenticator(ctrl)
			tt.setup(auth)

			var seen *domain.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusNoContent)
			})

			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.authorization != "" {
				req.Header.Set("Authorization", tt.authorization)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.authorization == "Bearer abc" && rec.Code == http.StatusNoContent {
				assert.Same(t, brandClaims, seen)
			}
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		middleware     func(http.Handler) http.Handler
		expectedStatus int
	}{
		{name: "Sem autenticação", claims: nil, middleware: AllRoles(), expectedStatus: http.StatusUnauthorized},
		{name: "Marca em rota de todos os roles", claims: &domain.Claims{RoleID: domain.RoleBrand}, middleware: AllRoles(), expectedStatus: http.StatusNoContent},
		{name: "Marca em rota de administrador", claims: &domain.Claims{RoleID: domain.RoleBrand}, middleware: AdminOnly(), expectedStatus: http.StatusForbidden},
		{name: "Administrador em rota de administrador", claims: &domain.Claims{RoleID: domain.RoleAdmin}, middleware: AdminOnly(), expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil)
			if tt.claims != nil {
				req = req.WithContext(withClaims(req, tt.claims))
			}
			rec := httptest.NewRecorder()

			tt.middleware(okHandler()).ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestBrandScoped(t *testing.T) {
	tests := []struct {
		name           string
		claims         *domain.Claims
		expectedStatus int
	}{
		{name: "Própria marca", claims: &domain.Claims{BrandID: "BRD001", RoleID: domain.RoleBrand}, expectedStatus: http.StatusNoContent},
		{name: "Outra marca", claims: &domain.Claims{BrandID: "BRD002", RoleID: domain.RoleBrand}, expectedStatus: http.StatusForbidden},
		{name: "Administrador acessa qualquer marca", claims: &domain.Claims{RoleID: domain.RoleAdmin}, expectedStatus: http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := httprouter.New()
			router.Handler(http.MethodGet, "/v1/brands/:id", BrandScoped("id")(okHandler()))

			req := httptest.NewRequest(http.MethodGet, "/v1/brands/BRD001", nil)
			req = req.WithContext(withClaims(req, tt.claims))
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCors(t *testing.T) {
	t.Run("Origem permitida recebe headers", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		rec := httptest.NewRecorder()

		Cors()(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("Preflight responde sem chamar o handler", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/v1/brands", nil)
		req.Header.Set("Origin", "https://desconhecido.com")
		rec := httptest.NewRecorder()

		Cors()(okHandler()).ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	LoggingMiddleware()(LogPanicMiddleware()(panicking)).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/x", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func withClaims(req *http.Request, claims *domain.Claims) context.Context {
	return context.WithValue(req.Context(), ContextKeyClaims, claims)
}
