package handler

import (
	"context"
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/authenticating"
	"github.com/vfg2006/influencer-match-api/internal/usecases/catalog"
	"github.com/vfg2006/influencer-match-api/internal/usecases/matching"
	"github.com/vfg2006/influencer-match-api/internal/usecases/outreach"
	"github.com/vfg2006/influencer-match-api/internal/usecases/profiling"
	"github.com/vfg2006/influencer-match-api/internal/usecases/searching"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-match-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errForbidden = errors.New("forbidden")

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

func decodeBody(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}

// writeServiceError traduz os erros tipados dos casos de uso para a resposta de API
func writeServiceError(w http.ResponseWriter, err error, fallbackMessage string) {
	var (
		catalogErr  *catalog.CatalogError
		matchErr    *matching.MatchError
		searchErr   *searching.SearchError
		outreachErr *outreach.OutreachError
		profileErr  *profiling.ProfileError
		authErr     *authenticating.AuthError
	)

	switch {
	case errors.Is(err, errForbidden):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "You are not allowed to access this resource", nil)
	case errors.As(err, &catalogErr):
		apiErrors.WriteError(w, catalogErr.Code, catalogErr.Error(), nil)
	case errors.As(err, &matchErr):
		var details any
		if matchErr.MatchID != "" {
			details = map[string]any{"match_id": matchErr.MatchID}
		}
		apiErrors.WriteError(w, matchErr.Code, matchErr.Error(), details)
	case errors.As(err, &searchErr):
		apiErrors.WriteError(w, searchErr.Code, searchErr.Error(), nil)
	case errors.As(err, &outreachErr):
		apiErrors.WriteError(w, outreachErr.Code, outreachErr.Error(), map[string]any{"campaign_id": outreachErr.CampaignID})
	case errors.As(err, &profileErr):
		apiErrors.WriteError(w, profileErr.Code, profileErr.Error(), nil)
	case errors.As(err, &authErr):
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded):
		apiErrors.WriteError(w, apiErrors.ErrCommunication, "Request timed out", nil)
	default:
		logrus.WithError(err).Error(fallbackMessage)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallbackMessage, nil)
	}
}

func claimsFrom(w http.ResponseWriter, r *http.Request) (*domain.Claims, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Not authenticated", nil)
	}
	return claims, ok
}

// authorizedOffering carrega a oferta e confere se a sessão pode operar sobre a marca dona
func authorizedOffering(ctx context.Context, claims *domain.Claims, service catalog.Catalog, offeringID string) (*domain.Offering, error) {
	offering, err := service.GetOffering(ctx, offeringID)
	if err != nil {
		return nil, err
	}
	if !claims.CanAccessBrand(offering.BrandID) {
		return nil, errForbidden
	}
	return offering, nil
}

func authorizedCampaign(ctx context.Context, claims *domain.Claims, service catalog.Catalog, campaignID string) (*domain.Campaign, error) {
	campaign, err := service.GetCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if !claims.CanAccessBrand(campaign.BrandID) {
		return nil, errForbidden
	}
	return campaign, nil
}

func authorizedMatch(ctx context.Context, claims *domain.Claims, service catalog.Catalog, ledger matching.MatchLedger, matchID string) (*domain.Match, error) {
	match, err := ledger.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if _, err := authorizedOffering(ctx, claims, service, match.OfferingID); err != nil {
		return nil, err
	}
	return match, nil
}
