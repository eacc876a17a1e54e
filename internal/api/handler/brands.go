package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/catalog"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
)

func RegisterBrand(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateBrandRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}

		brand, err := service.RegisterBrand(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Error registering brand")
			return
		}

		writeJSON(w, http.StatusCreated, brand)
	}
}

func GetBrand(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		brand, err := service.GetBrand(r.Context(), brandID)
		if err != nil {
			writeServiceError(w, err, "Error fetching brand")
			return
		}

		writeJSON(w, http.StatusOK, brand)
	}
}

// RefreshBrandProfile reanalisa o site da marca de forma síncrona
func RefreshBrandProfile(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		brand, err := service.RefreshBrandProfile(r.Context(), brandID)
		if err != nil {
			writeServiceError(w, err, "Error refreshing brand profile")
			return
		}

		writeJSON(w, http.StatusOK, brand)
	}
}

func CreateOffering(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateOfferingRequest
		if err := decodeBody(r, &req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid request body", nil)
			return
		}
		req.BrandID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		offering, err := service.CreateOffering(r.Context(), &req)
		if err != nil {
			writeServiceError(w, err, "Error creating product")
			return
		}

		writeJSON(w, http.StatusCreated, offering)
	}
}

func ListOfferings(service catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		brandID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		offerings, err := service.ListOfferings(r.Context(), brandID)
		if err != nil {
			writeServiceError(w, err, "Error listing products")
			return
		}

		writeJSON(w, http.StatusOK, offerings)
	}
}
