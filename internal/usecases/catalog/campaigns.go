package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/infrastructure/repository"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-match-api/pkg/utils"
)

// CreateCampaign cria a campanha ativa. Sem valores explícitos, a nota mínima é 0.7
// e o contato automático fica ligado.
func (s *Service) CreateCampaign(ctx context.Context, request *domain.CreateCampaignRequest) (*domain.Campaign, error) {
	if request == nil || strings.TrimSpace(request.Name) == "" || request.OfferingID == "" {
		return nil, NewCatalogError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Nome e produto são obrigatórios")
	}

	offering, err := s.GetOffering(ctx, request.OfferingID)
	if err != nil {
		return nil, err
	}

	if request.BrandID != "" && offering.BrandID != request.BrandID {
		return nil, NewCatalogError(ErrOfferingNotFound, apiErrors.ErrResourceNotFound, request.OfferingID)
	}

	targetFitScore := domain.DefaultTargetFitScore
	if request.TargetFitScore != nil {
		targetFitScore = *request.TargetFitScore
	}
	if !utils.IsFinite(targetFitScore) || targetFitScore < 0 || targetFitScore > 1 {
		return nil, NewCatalogError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "target_fit_score deve estar entre 0 e 1")
	}

	if request.Budget != nil && (!utils.IsFinite(*request.Budget) || *request.Budget < 0) {
		return nil, NewCatalogError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, "budget não pode ser negativo")
	}

	autoContact := true
	if request.AutoContact != nil {
		autoContact = *request.AutoContact
	}

	campaignID, err := utils.GenerateID()
	if err != nil {
		return nil, NewCatalogError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	campaign := &domain.Campaign{
		ID:             campaignID,
		BrandID:        offering.BrandID,
		OfferingID:     offering.ID,
		Name:           strings.TrimSpace(request.Name),
		Description:    strings.TrimSpace(request.Description),
		Budget:         request.Budget,
		TargetFitScore: targetFitScore,
		AutoContact:    autoContact,
		Status:         domain.CampaignStatusActive,
	}

	if err := s.campaignRepository.Create(ctx, campaign); err != nil {
		logrus.WithError(err).WithField("offering_id", offering.ID).Error("Erro ao criar campanha")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao criar campanha")
	}

	return campaign, nil
}

func (s *Service) GetCampaign(ctx context.Context, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepository.GetByID(ctx, campaignID)
	if err != nil {
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao buscar campanha")
	}
	if campaign == nil {
		return nil, NewCatalogError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID)
	}

	return campaign, nil
}

func (s *Service) UpdateCampaignStatus(ctx context.Context, campaignID string, status domain.CampaignStatus) (*domain.Campaign, error) {
	if !status.IsValid() {
		return nil, NewCatalogError(ErrInvalidRequest, apiErrors.ErrInvalidFormat, fmt.Sprintf("unknown campaign status %q", status))
	}

	if err := s.campaignRepository.UpdateStatus(ctx, campaignID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewCatalogError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID)
		}
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao atualizar status da campanha")
		return nil, NewCatalogError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Erro ao atualizar status da campanha")
	}

	return s.GetCampaign(ctx, campaignID)
}
