package profiling

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/infrastructure/repository"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-match-api/pkg/utils"
)

// ChannelAnalyzer coleta estatísticas e perfil de um canal pelo id externo
type ChannelAnalyzer interface {
	AnalyzeChannel(ctx context.Context, externalID string) (*domain.Creator, error)
}

type ProfileResolver interface {
	Resolve(ctx context.Context, candidate domain.ChannelCandidate) (*domain.Creator, error)
	Refresh(ctx context.Context, externalID string) (*domain.Creator, error)
}

type Service struct {
	creatorRepository repository.CreatorRepository
	analyzer          ChannelAnalyzer
	now               func() time.Time
}

func NewService(creatorRepository repository.CreatorRepository, analyzer ChannelAnalyzer) ProfileResolver {
	return &Service{
		creatorRepository: creatorRepository,
		analyzer:          analyzer,
		now:               time.Now,
	}
}

// Resolve devolve o criador já conhecido ou analisa o canal e grava o resultado.
// Falhas da análise nunca impedem a resolução.
func (s *Service) Resolve(ctx context.Context, candidate domain.ChannelCandidate) (*domain.Creator, error) {
	if strings.TrimSpace(candidate.ExternalID) == "" {
		return nil, NewProfileError(ErrInvalidCandidate, apiErrors.ErrMissingRequiredData, "", "")
	}

	existing, err := s.creatorRepository.GetByExternalID(ctx, candidate.ExternalID)
	if err != nil {
		logrus.WithError(err).WithField("external_id", candidate.ExternalID).Error("Erro ao buscar criador")
		return nil, NewProfileError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, candidate.ExternalID, "Falha ao buscar criador")
	}
	if existing != nil {
		return existing, nil
	}

	creator := s.analyze(ctx, candidate)

	creatorID, err := utils.GenerateID()
	if err != nil {
		return nil, NewProfileError(ErrGenerateID, apiErrors.ErrInternalServer, candidate.ExternalID, err.Error())
	}
	creator.ID = creatorID

	stored, err := s.creatorRepository.InsertIfAbsent(ctx, creator)
	if err != nil {
		logrus.WithError(err).WithField("external_id", candidate.ExternalID).Error("Erro ao gravar criador")
		return nil, NewProfileError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, candidate.ExternalID, "Falha ao gravar criador")
	}

	return stored, nil
}

// Refresh analisa novamente um criador já gravado e atualiza a mesma linha
func (s *Service) Refresh(ctx context.Context, externalID string) (*domain.Creator, error) {
	existing, err := s.creatorRepository.GetByExternalID(ctx, externalID)
	if err != nil {
		return nil, NewProfileError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, externalID, "Falha ao buscar criador")
	}
	if existing == nil {
		return nil, NewProfileError(ErrCreatorNotFound, apiErrors.ErrResourceNotFound, externalID, "Criador não encontrado")
	}

	creator := s.analyze(ctx, domain.ChannelCandidate{
		ExternalID:   existing.ExternalID,
		Title:        existing.Name,
		Description:  existing.Description,
		ThumbnailURL: existing.ThumbnailURL,
	})
	creator.ID = existing.ID
	creator.CreatedAt = existing.CreatedAt
	if creator.Email == nil {
		creator.Email = existing.Email
	}

	if err := s.creatorRepository.UpdateAnalysis(ctx, creator); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewProfileError(ErrCreatorNotFound, apiErrors.ErrResourceNotFound, externalID, "Criador não encontrado")
		}
		logrus.WithError(err).WithField("external_id", externalID).Error("Erro ao atualizar criador")
		return nil, NewProfileError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, externalID, "Falha ao atualizar criador")
	}

	return creator, nil
}

func (s *Service) analyze(ctx context.Context, candidate domain.ChannelCandidate) *domain.Creator {
	var creator *domain.Creator

	if s.analyzer != nil {
		analyzed, err := s.analyzer.AnalyzeChannel(ctx, candidate.ExternalID)
		if err != nil || analyzed == nil {
			logrus.WithError(err).WithField("external_id", candidate.ExternalID).Warn("Análise do canal indisponível, usando perfil sintético")
		} else {
			creator = analyzed
		}
	}

	if creator == nil {
		creator = syntheticProfile(candidate)
	}

	applyDefaults(creator, candidate)
	creator.ExternalID = candidate.ExternalID
	creator.LastAnalyzedAt = s.now()

	return creator
}

func applyDefaults(creator *domain.Creator, candidate domain.ChannelCandidate) {
	if creator.Name == "" {
		creator.Name = candidate.Title
	}
	if creator.ChannelTitle == "" {
		creator.ChannelTitle = creator.Name
	}
	if creator.Description == "" {
		creator.Description = candidate.Description
	}
	if creator.ThumbnailURL == "" {
		creator.ThumbnailURL = candidate.ThumbnailURL
	}
	if creator.CPM <= 0 || !utils.IsFinite(creator.CPM) {
		creator.CPM = domain.DefaultCPM
	}
	if creator.EngagementRate < 0 || !utils.IsFinite(creator.EngagementRate) {
		creator.EngagementRate = 0
	} else if creator.EngagementRate > 1 {
		creator.EngagementRate = 1
	}
	if creator.UploadFrequency == "" {
		creator.UploadFrequency = domain.UploadFrequencyUnknown
	}
	if creator.Categories == nil {
		creator.Categories = []string{}
	}
}
