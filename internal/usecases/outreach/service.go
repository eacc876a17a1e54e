package outreach

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/infrastructure/repository"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/matching"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
)

// Deliverer envia o contato ao criador. false sem erro significa que o envio
// foi recusado (por exemplo, criador sem email).
type Deliverer interface {
	Deliver(ctx context.Context, outreach domain.Outreach) (bool, error)
}

type ContactDriver interface {
	RunAutoContact(ctx context.Context, campaign *domain.Campaign) (int, error)
	RunForCampaign(ctx context.Context, campaignID string) (*domain.ContactResult, error)
	RunAllActive(ctx context.Context) (int, error)
}

type Service struct {
	campaignRepository repository.CampaignRepository
	offeringRepository repository.OfferingRepository
	brandRepository    repository.BrandRepository
	ledger             matching.MatchLedger
	deliverer          Deliverer
	now                func() time.Time
}

func NewService(
	campaignRepository repository.CampaignRepository,
	offeringRepository repository.OfferingRepository,
	brandRepository repository.BrandRepository,
	ledger matching.MatchLedger,
	deliverer Deliverer,
) ContactDriver {
	return &Service{
		campaignRepository: campaignRepository,
		offeringRepository: offeringRepository,
		brandRepository:    brandRepository,
		ledger:             ledger,
		deliverer:          deliverer,
		now:                time.Now,
	}
}

// RunAutoContact contata as partidas pending da oferta da campanha com nota mínima.
// Falhas individuais não interrompem o lote; a partida continua pending.
func (s *Service) RunAutoContact(ctx context.Context, campaign *domain.Campaign) (int, error) {
	logger := logrus.WithFields(logrus.Fields{
		"campaign_id": campaign.ID,
		"offering_id": campaign.OfferingID,
	})

	offering, err := s.offeringRepository.GetByID(ctx, campaign.OfferingID)
	if err != nil {
		return 0, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaign.ID, "Falha ao buscar oferta")
	}
	if offering == nil {
		return 0, NewOutreachError(ErrOfferingNotFound, apiErrors.ErrResourceNotFound, campaign.ID, campaign.OfferingID)
	}

	brand, err := s.brandRepository.GetByID(ctx, offering.BrandID)
	if err != nil {
		return 0, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaign.ID, "Falha ao buscar marca")
	}
	if brand == nil {
		return 0, NewOutreachError(ErrBrandNotFound, apiErrors.ErrResourceNotFound, campaign.ID, offering.BrandID)
	}

	matches, err := s.ledger.ListContactable(ctx, campaign.OfferingID, campaign.TargetFitScore)
	if err != nil {
		return 0, err
	}

	logger.Infof("Iniciando contato com %d criadores", len(matches))

	contacted := 0
	for _, match := range matches {
		if err := ctx.Err(); err != nil {
			logger.WithError(err).Warn("Contato interrompido")
			return contacted, err
		}

		if s.contact(ctx, logger, campaign, offering, brand, match) {
			contacted++
		}
	}

	logger.Infof("Contato concluído: %d de %d criadores", contacted, len(matches))

	return contacted, nil
}

func (s *Service) contact(ctx context.Context, logger *logrus.Entry, campaign *domain.Campaign, offering *domain.Offering, brand *domain.Brand, match *domain.MatchWithCreator) bool {
	logger = logger.WithFields(logrus.Fields{
		"match_id":   match.ID,
		"creator_id": match.CreatorID,
	})

	delivered, err := s.deliverer.Deliver(ctx, domain.Outreach{
		Match:    &match.Match,
		Creator:  &match.Creator,
		Offering: offering,
		Brand:    brand,
		Campaign: campaign,
	})
	if err != nil {
		logger.WithError(err).Warn("Falha ao enviar contato")
		return false
	}
	if !delivered {
		logger.Warn("Contato não enviado")
		return false
	}

	if _, err := s.ledger.MarkContacted(ctx, match.ID, s.now()); err != nil {
		logger.WithError(err).Error("Contato enviado mas status não atualizado")
		return false
	}

	return true
}

func (s *Service) RunForCampaign(ctx context.Context, campaignID string) (*domain.ContactResult, error) {
	campaign, err := s.campaignRepository.GetByID(ctx, campaignID)
	if err != nil {
		return nil, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, campaignID, "Falha ao buscar campanha")
	}
	if campaign == nil {
		return nil, NewOutreachError(ErrCampaignNotFound, apiErrors.ErrResourceNotFound, campaignID, "Campanha não encontrada")
	}

	if campaign.Status != domain.CampaignStatusActive {
		return nil, NewOutreachError(ErrCampaignNotActive, apiErrors.ErrCampaignNotActive, campaignID,
			fmt.Sprintf("campaign status is %s", campaign.Status))
	}

	count, err := s.RunAutoContact(ctx, campaign)
	if err != nil {
		return nil, err
	}

	return &domain.ContactResult{
		CampaignID:     campaign.ID,
		ContactedCount: count,
		Message:        fmt.Sprintf("Contacted %d influencers", count),
	}, nil
}

// RunAllActive percorre as campanhas ativas com contato automático. Uma campanha com
// erro é registrada e as demais seguem.
func (s *Service) RunAllActive(ctx context.Context) (int, error) {
	campaigns, err := s.campaignRepository.ListActiveAutoContact(ctx)
	if err != nil {
		return 0, NewOutreachError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "", "Falha ao listar campanhas ativas")
	}

	total := 0
	for _, campaign := range campaigns {
		if err := ctx.Err(); err != nil {
			return total, err
		}

		count, err := s.RunAutoContact(ctx, campaign)
		total += count
		if err != nil {
			logrus.WithError(err).WithField("campaign_id", campaign.ID).Error("Erro no contato automático da campanha")
		}
	}

	return total, nil
}
