package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/catalog"
	"github.com/vfg2006/influencer-match-api/internal/usecases/matching"
	"github.com/vfg2006/influencer-match-api/internal/usecases/profiling"
	"github.com/vfg2006/influencer-match-api/internal/usecases/searching"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
)

// SearchInfluencers busca, pontua e registra criadores para o produto da marca
func SearchInfluencers(service catalog.Catalog, searcher searching.InfluencerSearcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req domain.SearchRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}
		if req.OfferingID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "product_id is required", nil)
			return
		}
		if req.MinFitScore != nil && (*req.MinFitScore < 0 || *req.MinFitScore > 1) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "min_fit_score must be between 0 and 1", nil)
			return
		}

		if _, err := authorizedOffering(r.Context(), claims, service, req.OfferingID); err != nil {
			writeServiceError(w, err, "Error fetching product")
			return
		}

		logrus.WithFields(logrus.Fields{
			"offering_id": req.OfferingID,
			"max_results": req.MaxResults,
		}).Info("Iniciando busca de influenciadores")

		results, err := searcher.Search(r.Context(), req)
		if err != nil {
			writeServiceError(w, err, "Error searching influencers")
			return
		}

		writeJSON(w, http.StatusOK, results)
	}
}

// ListMatches aceita ?status=pending,approved para filtrar
func ListMatches(service catalog.Catalog, ledger matching.MatchLedger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		offeringID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var statuses []domain.MatchStatus
		if filter := r.URL.Query().Get("status"); filter != "" {
			for _, raw := range strings.Split(filter, ",") {
				status := domain.MatchStatus(strings.TrimSpace(raw))
				if !status.IsValid() {
					apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid status filter", map[string]any{"status": raw})
					return
				}
				statuses = append(statuses, status)
			}
		}

		if _, err := authorizedOffering(r.Context(), claims, service, offeringID); err != nil {
			writeServiceError(w, err, "Error fetching product")
			return
		}

		matches, err := ledger.ListByOffering(r.Context(), offeringID, statuses)
		if err != nil {
			writeServiceError(w, err, "Error listing matches")
			return
		}

		writeJSON(w, http.StatusOK, matches)
	}
}

func ApproveMatch(service catalog.Catalog, ledger matching.MatchLedger) http.HandlerFunc {
	return matchTransition(service, ledger, ledger.Approve)
}

func RejectMatch(service catalog.Catalog, ledger matching.MatchLedger) http.HandlerFunc {
	return matchTransition(service, ledger, ledger.Reject)
}

// RescoreMatch recalcula nota e preço com os dados atuais do criador
func RescoreMatch(service catalog.Catalog, ledger matching.MatchLedger, searcher searching.InfluencerSearcher) http.HandlerFunc {
	return matchTransition(service, ledger, searcher.Rescore)
}

type matchOperation func(ctx context.Context, matchID string) (*domain.Match, error)

func matchTransition(service catalog.Catalog, ledger matching.MatchLedger, operation matchOperation) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		matchID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, err := authorizedMatch(r.Context(), claims, service, ledger, matchID); err != nil {
			writeServiceError(w, err, "Error fetching match")
			return
		}

		match, err := operation(r.Context(), matchID)
		if err != nil {
			writeServiceError(w, err, "Error updating match")
			return
		}

		writeJSON(w, http.StatusOK, match)
	}
}

// RefreshInfluencer reanalisa o canal e atualiza o perfil salvo
func RefreshInfluencer(resolver profiling.ProfileResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		channelID := httprouter.ParamsFromContext(r.Context()).ByName("channel_id")

		creator, err := resolver.Refresh(r.Context(), channelID)
		if err != nil {
			writeServiceError(w, err, "Error refreshing influencer")
			return
		}

		writeJSON(w, http.StatusOK, creator)
	}
}
