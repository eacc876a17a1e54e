package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/catalog"
	"github.com/vfg2006/influencer-match-api/internal/usecases/outreach"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
)

type CreateCampaignRequest struct {
	domain.CreateCampaignRequest
	// BrandID só é aceito de administradores; marcas sempre criam para si mesmas
	BrandID string `json:"company_id"`
}

type UpdateCampaignStatusRequest struct {
	Status domain.CampaignStatus `json:"status"`
}

func CreateCampaign(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req CreateCampaignRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		request := req.CreateCampaignRequest
		request.BrandID = claims.BrandID
		if claims.IsAdmin() && req.BrandID != "" {
			request.BrandID = req.BrandID
		}
		if request.BrandID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "company_id is required", nil)
			return
		}

		campaign, err := service.CreateCampaign(r.Context(), &request)
		if err != nil {
			writeServiceError(w, err, "Error creating campaign")
			return
		}

		writeJSON(w, http.StatusCreated, campaign)
	}
}

func GetCampaign(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		campaign, err := authorizedCampaign(r.Context(), claims, service, campaignID)
		if err != nil {
			writeServiceError(w, err, "Error fetching campaign")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

func UpdateCampaignStatus(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		var req UpdateCampaignStatusRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, err := authorizedCampaign(r.Context(), claims, service, campaignID); err != nil {
			writeServiceError(w, err, "Error fetching campaign")
			return
		}

		campaign, err := service.UpdateCampaignStatus(r.Context(), campaignID, req.Status)
		if err != nil {
			writeServiceError(w, err, "Error updating campaign status")
			return
		}

		writeJSON(w, http.StatusOK, campaign)
	}
}

// ContactInfluencers dispara o contato das partidas elegíveis da campanha
func ContactInfluencers(service catalog.Catalog, driver outreach.ContactDriver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := claimsFrom(w, r)
		if !ok {
			return
		}

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if _, err := authorizedCampaign(r.Context(), claims, service, campaignID); err != nil {
			writeServiceError(w, err, "Error fetching campaign")
			return
		}

		result, err := driver.RunForCampaign(r.Context(), campaignID)
		if err != nil {
			writeServiceError(w, err, "Error contacting influencers")
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}
