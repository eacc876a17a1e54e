package catalog

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-match-api/pkg/utils"
)

func (s *Service) CreateOffering(ctx context.Context, request *domain.CreateOfferingRequest) (*domain.Offering, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" || request.BrandID == "" {
		return nil, NewCatalogError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome do produto é obrigatório")
	}

	if _, err := s.GetBrand(ctx, request.BrandID); err != nil {
		return nil, err
	}

	offeringID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	offering := &domain.Offering{
		ID:          offeringID,
		BrandID:     request.BrandID,
		Name:        strings.TrimSpace(request.Name),
		Description: strings.TrimSpace(request.Description),
		Category:    normalizeOptional(request.Category),
		PriceRange:  normalizeOptional(request.PriceRange),
	}

	if err := s.offeringRepository.Create(ctx, offering); err != nil {
		logrus.WithError(err).WithField("brand_id", request.BrandID).Error("Erro ao criar produto")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar produto")
	}

	return offering, nil
}

func (s *Service) GetOffering(ctx context.Context, offeringID string) (*domain.Offering, error) {
	offering, err := s.offeringRepository.GetByID(ctx, offeringID)
	if err != nil {
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar produto")
	}
	if offering == nil {
		return nil, NewCatalogError(ErrOfferingNotFound, apiErrors.ErrResourceNotFound, offeringID)
	}

	return offering, nil
}

func (s *Service) ListOfferings(ctx context.Context, brandID string) ([]*domain.Offering, error) {
	offerings, err := s.offeringRepository.ListByBrand(ctx, brandID)
	if err != nil {
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar produtos")
	}

	return offerings, nil
}
