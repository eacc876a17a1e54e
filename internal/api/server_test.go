package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/authenticating"
	authmocks "github.com/vfg2006/influencer-match-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/influencer-match-api/internal/usecases/catalog"
	catalogmocks "github.com/vfg2006/influencer-match-api/internal/usecases/catalog/mocks"
	"github.com/vfg2006/influencer-match-api/internal/usecases/matching"
	matchingmocks "github.com/vfg2006/influencer-match-api/internal/usecases/matching/mocks"
	"github.com/vfg2006/influencer-match-api/internal/usecases/outreach"
	outreachmocks "github.com/vfg2006/influencer-match-api/internal/usecases/outreach/mocks"
	profilingmocks "github.com/vfg2006/influencer-match-api/internal/usecases/profiling/mocks"
	searchingmocks "github.com/vfg2006/influencer-match-api/internal/usecases/searching/mocks"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

const (
	brandToken = "brand-token"
	adminToken = "admin-token"
	otherToken = "other-token"
)

type testDeps struct {
	auth     *authmocks.MockAuthenticator
	catalog  *catalogmocks.MockCatalog
	searcher *searchingmocks.MockInfluencerSearcher
	ledger   *matchingmocks.MockMatchLedger
	resolver *profilingmocks.MockProfileResolver
	driver   *outreachmocks.MockContactDriver
}

func newTestHandler(t *testing.T) (http.Handler, *testDeps) {
	ctrl := gomock.NewController(t)

	deps := &testDeps{
		auth:     authmocks.NewMockAuthenticator(ctrl),
		catalog:  catalogmocks.NewMockCatalog(ctrl),
		searcher: searchingmocks.NewMockInfluencerSearcher(ctrl),
		ledger:   matchingmocks.NewMockMatchLedger(ctrl),
		resolver: profilingmocks.NewMockProfileResolver(ctrl),
		driver:   outreachmocks.NewMockContactDriver(ctrl),
	}

	deps.auth.EXPECT().ValidateToken(brandToken).Return(&domain.Claims{BrandID: "BRD001", RoleID: domain.RoleBrand}, nil).AnyTimes()
	deps.auth.EXPECT().ValidateToken(otherToken).Return(&domain.Claims{BrandID: "BRD002", RoleID: domain.RoleBrand}, nil).AnyTimes()
	deps.auth.EXPECT().ValidateToken(adminToken).Return(&domain.Claims{RoleID: domain.RoleAdmin}, nil).AnyTimes()

	handler := NewHandler(Services{
		Authenticator:   deps.auth,
		Catalog:         deps.catalog,
		Searcher:        deps.searcher,
		Ledger:          deps.ledger,
		ProfileResolver: deps.resolver,
		ContactDriver:   deps.driver,
	})

	return handler, deps
}

func doRequest(handler http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	var payload bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&payload).Encode(body)
	}

	req := httptest.NewRequest(method, path, &payload)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	t.Helper()

	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

var offering = &domain.Offering{ID: "OFF001", BrandID: "BRD001", Name: "Smartphone X"}

func TestHealthcheck(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := doRequest(handler, http.MethodGet, "/healthcheck", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(deps *testDeps)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "Credenciais válidas retornam token",
			setup: func(deps *testDeps) {
				deps.auth.EXPECT().Login(gomock.Any(), "marca@acme.com", "senha-forte").Return("jwt", nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "Marca inexistente responde como credencial inválida",
			setup: func(deps *testDeps) {
				deps.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", authenticating.NewAuthError(authenticating.ErrBrandNotFound, apiErrors.ErrBrandNotFound, ""))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedCode:   apiErrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, deps := newTestHandler(t)
			tt.setup(deps)

			rec := doRequest(handler, http.MethodPost, "/v1/login", "", map[string]string{
				"email":    "marca@acme.com",
				"password": "senha-forte",
			})

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeError(t, rec).Code)
			} else {
				assert.Contains(t, rec.Body.String(), `"token":"jwt"`)
			}
		})
	}
}

func TestBrands(t *testing.T) {
	t.Run("Cadastro é público", func(t *testing.T) {
		handler, deps := newTestHandler(t)
		deps.catalog.EXPECT().RegisterBrand(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.CreateBrandRequest) (*domain.Brand, error) {
				return &domain.Brand{ID: "BRD001", Name: req.Name, Email: req.Email}, nil
			})

		rec := doRequest(handler, http.MethodPost, "/v1/brands", "", map[string]string{
			"name": "Acme", "email": "marca@acme.com", "password": "senha-forte",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("Email duplicado", func(t *testing.T) {
		handler, deps := newTestHandler(t)
		deps.catalog.EXPECT().RegisterBrand(gomock.Any(), gomock.Any()).
			Return(nil, catalog.NewCatalogError(catalog.ErrBrandAlreadyExists, apiErrors.ErrBrandAlreadyExists, ""))

		rec := doRequest(handler, http.MethodPost, "/v1/brands", "", map[string]string{"name": "Acme"})

		assert.Equal(t, apiErrors.ErrBrandAlreadyExists, decodeError(t, rec).Code)
	})

	t.Run("Consulta exige token", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := doRequest(handler, http.MethodGet, "/v1/brands/BRD001", "", nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("Marca não acessa outra marca", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := doRequest(handler, http.MethodGet, "/v1/brands/BRD001", otherToken, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Criação de produto usa a marca da URL", func(t *testing.T) {
		handler, deps := newTestHandler(t)
		deps.catalog.EXPECT().CreateOffering(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.CreateOfferingRequest) (*domain.Offering, error) {
				assert.Equal(t, "BRD001", req.BrandID)
				return &domain.Offering{ID: "OFF001", BrandID: req.BrandID, Name: req.Name}, nil
			})

		rec := doRequest(handler, http.MethodPost, "/v1/brands/BRD001/offerings", brandToken, map[string]string{"name": "Smartphone X"})

		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestSearchInfluencers(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		body           map[string]any
		setup          func(deps *testDeps)
		expectedStatus int
	}{
		{
			name:  "Busca do próprio produto",
			token: brandToken,
			body:  map[string]any{"product_id": "OFF001", "max_results": 5},
			setup: func(deps *testDeps) {
				deps.catalog.EXPECT().GetOffering(gomock.Any(), "OFF001").Return(offering, nil)
				deps.searcher.EXPECT().Search(gomock.Any(), domain.SearchRequest{OfferingID: "OFF001", MaxResults: 5}).
					Return([]*domain.SearchResult{{MatchID: "M1", FitScore: 0.9, Status: domain.MatchStatusPending}}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Produto obrigatório",
			token:          brandToken,
			body:           map[string]any{"max_results": 5},
			setup:          func(*testDeps) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Nota mínima fora do intervalo",
			token:          brandToken,
			body:           map[string]any{"product_id": "OFF001", "min_fit_score": 1.5},
			setup:          func(*testDeps) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "Produto de outra marca",
			token: otherToken,
			body:  map[string]any{"product_id": "OFF001"},
			setup: func(deps *testDeps) {
				deps.catalog.EXPECT().GetOffering(gomock.Any(), "OFF001").Return(offering, nil)
			},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:  "Produto inexistente",
			token: brandToken,
			body:  map[string]any{"product_id": "OFF404"},
			setup: func(deps *testDeps) {
				deps.catalog.EXPECT().GetOffering(gomock.Any(), "OFF404").
					Return(nil, catalog.NewCatalogError(catalog.ErrOfferingNotFound, apiErrors.ErrResourceNotFound, "OFF404"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, deps := newTestHandler(t)
			tt.setup(deps)

			rec := doRequest(handler, http.MethodPost, "/v1/influencers/search", tt.token, tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestMatchTransitions(t *testing.T) {
	match := &domain.Match{ID: "M1", OfferingID: "OFF001", Status: domain.MatchStatusPending}

	t.Run("Aprovação", func(t *testing.T) {
		handler, deps := newTestHandler(t)
		deps.ledger.EXPECT().Get(gomock.Any(), "M1").Return(match, nil)
		deps.catalog.EXPECT().GetOffering(gomock.Any(), "OFF001").Return(offering, nil)
		deps.ledger.EXPECT().Approve(gomock.Any(), "M1").Return(&domain.Match{ID: "M1", Status: domain.MatchStatusApproved}, nil)

		rec := doRequest(handler, http.MethodPost, "/v1/matches/M1/approve", brandToken, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"approved"`)
	})

	t.Run("Transição inválida responde 409", func(t *testing.T) {
		handler, deps := newTestHandler(t)
		deps.ledger.EXPECT().Get(gomock.Any(), "M1").Return(match, nil)
		deps.catalog.EXPECT().GetOffering(gomock.Any(), "OFF001").Return(offering, nil)
		deps.ledger.EXPECT().Reject(gomock.Any(), "M1").
			Return(nil, matching.NewMatchErrorWithID(matching.ErrInvalidTransition, apiErrors.ErrInvalidTransition, "M1", "contacted -> rejected"))

		rec := doRequest(handler, http.MethodPost, "/v1/matches/M1/reject", brandToken, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrInvalidTransition, decodeError(t, rec).Code)
	})

	t.Run("Partida inexistente responde 404", func(t *testing.T) {
		handler, deps := newTestHandler(t)
		deps.ledger.EXPECT().Get(gomock.Any(), "M404").
			Return(nil, matching.NewMatchErrorWithID(matching.ErrMatchNotFound, apiErrors.ErrResourceNotFound, "M404", ""))

		rec := doRequest(handler, http.MethodPost, "/v1/matches/M404/rescore", brandToken, nil)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Filtro de status inválido", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := doRequest(handler, http.MethodGet, "/v1/offerings/OFF001/matches?status=pending,unknown", brandToken, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Listagem filtrada", func(t *testing.T) {
		handler, deps := newTestHandler(t)
		deps.catalog.EXPECT().GetOffering(gomock.Any(), "OFF001").Return(offering, nil)
		deps.ledger.EXPECT().ListByOffering(gomock.Any(), "OFF001", []domain.MatchStatus{domain.MatchStatusPending, domain.MatchStatusApproved}).
			Return([]*domain.MatchWithCreator{}, nil)

		rec := doRequest(handler, http.MethodGet, "/v1/offerings/OFF001/matches?status=pending,approved", brandToken, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestCampaigns(t *testing.T) {
	campaign := &domain.Campaign{ID: "CMP001", BrandID: "BRD001", OfferingID: "OFF001", Status: domain.CampaignStatusActive}

	t.Run("Marca cria campanha para si mesma", func(t *testing.T) {
		handler, deps := newTestHandler(t)
		deps.catalog.EXPECT().CreateCampaign(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, req *domain.CreateCampaignRequest) (*domain.Campaign, error) {
				assert.Equal(t, "BRD001", req.BrandID)
				assert.Equal(t, "OFF001", req.OfferingID)
				return campaign, nil
			})

		rec := doRequest(handler, http.MethodPost, "/v1/campaigns", brandToken, map[string]any{
			"company_id": "BRD999",
			"product_id": "OFF001",
			"name":       "Lançamento",
		})

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("Contato de campanha pausada responde 409", func(t *testing.T) {
		handler, deps := newTestHandler(t)
		deps.catalog.EXPECT().GetCampaign(gomock.Any(), "CMP001").Return(campaign, nil)
		deps.driver.EXPECT().RunForCampaign(gomock.Any(), "CMP001").
			Return(nil, outreach.NewOutreachError(outreach.ErrCampaignNotActive, apiErrors.ErrCampaignNotActive, "CMP001", "paused"))

		rec := doRequest(handler, http.MethodPost, "/v1/campaigns/CMP001/contact-influencers", brandToken, nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, apiErrors.ErrCampaignNotActive, decodeError(t, rec).Code)
	})

	t.Run("Contato com sucesso", func(t *testing.T) {
		handler, deps := newTestHandler(t)
		deps.catalog.EXPECT().GetCampaign(gomock.Any(), "CMP001").Return(campaign, nil)
		deps.driver.EXPECT().RunForCampaign(gomock.Any(), "CMP001").
			Return(&domain.ContactResult{CampaignID: "CMP001", ContactedCount: 2, Message: "Contacted 2 influencers"}, nil)

		rec := doRequest(handler, http.MethodPost, "/v1/campaigns/CMP001/contact-influencers", brandToken, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"contacted_count":2`)
	})

	t.Run("Campanha de outra marca", func(t *testing.T) {
		handler, deps := newTestHandler(t)
		deps.catalog.EXPECT().GetCampaign(gomock.Any(), "CMP001").Return(campaign, nil)

		rec := doRequest(handler, http.MethodPut, "/v1/campaigns/CMP001/status", otherToken, map[string]string{"status": "paused"})

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCronJobs(t *testing.T) {
	t.Run("Apenas administradores", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := doRequest(handler, http.MethodGet, "/v1/cron/status", brandToken, nil)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("Tipo inválido", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := doRequest(handler, http.MethodPost, "/v1/cron/meta/run", adminToken, nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Agendador indisponível", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		rec := doRequest(handler, http.MethodPost, "/v1/cron/auto-contact/run", adminToken, nil)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
