package matching

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/infrastructure/repository"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
	"github.com/vfg2006/influencer-match-api/pkg/utils"
)

const minimumPriceEstimate = 50.0

// MatchLedger é o registro das partidas criador x oferta e do seu ciclo de vida
type MatchLedger interface {
	Upsert(ctx context.Context, draft domain.MatchDraft) (*domain.Match, error)
	Get(ctx context.Context, matchID string) (*domain.Match, error)
	Approve(ctx context.Context, matchID string) (*domain.Match, error)
	Reject(ctx context.Context, matchID string) (*domain.Match, error)
	MarkContacted(ctx context.Context, matchID string, at time.Time) (*domain.Match, error)
	Refresh(ctx context.Context, matchID string, draft domain.MatchDraft) (*domain.Match, error)
	ListByOffering(ctx context.Context, offeringID string, statuses []domain.MatchStatus) ([]*domain.MatchWithCreator, error)
	ListContactable(ctx context.Context, offeringID string, minFitScore float64) ([]*domain.MatchWithCreator, error)
}

type Service struct {
	matchRepository repository.MatchRepository
}

func NewService(matchRepository repository.MatchRepository) MatchLedger {
	return &Service{
		matchRepository: matchRepository,
	}
}

// Upsert cria a partida como pending. Se o par já existir, a partida gravada
// é devolvida sem alteração.
func (s *Service) Upsert(ctx context.Context, draft domain.MatchDraft) (*domain.Match, error) {
	if err := validateDraft(draft); err != nil {
		return nil, err
	}

	matchID, err := utils.GenerateID()
	if err != nil {
		return nil, NewMatchError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	stored, err := s.matchRepository.InsertIfAbsent(ctx, &domain.Match{
		ID:              matchID,
		CreatorID:       draft.CreatorID,
		OfferingID:      draft.OfferingID,
		FitScore:        draft.FitScore,
		PriceEstimate:   draft.PriceEstimate,
		MatchReasons:    draft.MatchReasons,
		MismatchReasons: draft.MismatchReasons,
		Status:          domain.MatchStatusPending,
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"creator_id":  draft.CreatorID,
			"offering_id": draft.OfferingID,
		}).Error("Erro ao gravar partida")
		return nil, NewMatchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao gravar partida")
	}

	return stored, nil
}

func (s *Service) Get(ctx context.Context, matchID string) (*domain.Match, error) {
	match, err := s.matchRepository.GetByID(ctx, matchID)
	if err != nil {
		return nil, NewMatchErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, matchID, "Falha ao buscar partida")
	}

	if match == nil {
		return nil, NewMatchErrorWithID(ErrMatchNotFound, apiErrors.ErrResourceNotFound, matchID, "Partida não encontrada")
	}

	return match, nil
}

func (s *Service) Approve(ctx context.Context, matchID string) (*domain.Match, error) {
	return s.transition(ctx, matchID, domain.MatchStatusApproved, nil)
}

func (s *Service) Reject(ctx context.Context, matchID string) (*domain.Match, error) {
	return s.transition(ctx, matchID, domain.MatchStatusRejected, nil)
}

func (s *Service) MarkContacted(ctx context.Context, matchID string, at time.Time) (*domain.Match, error) {
	return s.transition(ctx, matchID, domain.MatchStatusContacted, &at)
}

// transitionAttempts limita as novas tentativas quando a partida muda entre a escrita e a releitura
const transitionAttempts = 2

// transition aplica a mudança de status de forma atômica no banco. Quando nada é
// alterado, a partida é relida para distinguir inexistência de transição inválida.
func (s *Service) transition(ctx context.Context, matchID string, target domain.MatchStatus, contactedAt *time.Time) (*domain.Match, error) {
	var current *domain.Match

	for attempt := 1; attempt <= transitionAttempts; attempt++ {
		updated, err := s.matchRepository.UpdateStatus(ctx, matchID, target, contactedAt)
		if err != nil {
			logrus.WithError(err).WithFields(logrus.Fields{
				"match_id": matchID,
				"target":   target,
			}).Error("Erro ao atualizar status da partida")
			return nil, NewMatchErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, matchID, "Falha ao atualizar status")
		}

		current, err = s.Get(ctx, matchID)
		if err != nil {
			return nil, err
		}

		if updated {
			logrus.WithFields(logrus.Fields{
				"match_id": matchID,
				"status":   target,
			}).Debug("Status da partida atualizado")
			return current, nil
		}

		// status lido que aceita o destino indica alteração concorrente da partida
		if !current.Status.CanTransitionTo(target) {
			break
		}
		logrus.WithFields(logrus.Fields{
			"match_id": matchID,
			"status":   current.Status,
			"target":   target,
		}).Warn("Partida alterada durante a transição, tentando novamente")
	}

	return nil, NewMatchErrorWithID(ErrInvalidTransition, apiErrors.ErrInvalidTransition, matchID,
		fmt.Sprintf("cannot move match from %s to %s", current.Status, target))
}

// Refresh grava uma nova pontuação para a partida sem alterar o status
func (s *Service) Refresh(ctx context.Context, matchID string, draft domain.MatchDraft) (*domain.Match, error) {
	if err := validateScores(draft.FitScore, draft.PriceEstimate); err != nil {
		return nil, err
	}

	if err := s.matchRepository.UpdateScores(ctx, matchID, draft); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, NewMatchErrorWithID(ErrMatchNotFound, apiErrors.ErrResourceNotFound, matchID, "Partida não encontrada")
		}
		logrus.WithError(err).WithField("match_id", matchID).Error("Erro ao atualizar pontuação da partida")
		return nil, NewMatchErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, matchID, "Falha ao atualizar pontuação")
	}

	return s.Get(ctx, matchID)
}

func (s *Service) ListByOffering(ctx context.Context, offeringID string, statuses []domain.MatchStatus) ([]*domain.MatchWithCreator, error) {
	for _, status := range statuses {
		if !status.IsValid() {
			return nil, NewMatchError(ErrInvalidStatus, apiErrors.ErrInvalidFormat, fmt.Sprintf("unknown status %q", status))
		}
	}

	matches, err := s.matchRepository.ListByOffering(ctx, offeringID, statuses)
	if err != nil {
		logrus.WithError(err).WithField("offering_id", offeringID).Error("Erro ao listar partidas")
		return nil, NewMatchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar partidas")
	}

	return matches, nil
}

// ListContactable devolve as partidas pending com nota mínima, da maior para a menor
func (s *Service) ListContactable(ctx context.Context, offeringID string, minFitScore float64) ([]*domain.MatchWithCreator, error) {
	matches, err := s.matchRepository.ListContactable(ctx, offeringID, minFitScore)
	if err != nil {
		logrus.WithError(err).WithField("offering_id", offeringID).Error("Erro ao listar partidas para contato")
		return nil, NewMatchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao listar partidas para contato")
	}

	return matches, nil
}

func validateDraft(draft domain.MatchDraft) error {
	if draft.CreatorID == "" || draft.OfferingID == "" {
		return NewMatchError(ErrInvalidMatch, apiErrors.ErrMissingRequiredData, "creator and offering are required")
	}
	return validateScores(draft.FitScore, draft.PriceEstimate)
}

func validateScores(fitScore, priceEstimate float64) error {
	if !utils.IsFinite(fitScore) || fitScore < 0 || fitScore > 1 {
		return NewMatchError(ErrInvalidMatch, apiErrors.ErrInvalidRequest, fmt.Sprintf("fit score %v out of range", fitScore))
	}
	if !utils.IsFinite(priceEstimate) || priceEstimate < minimumPriceEstimate {
		return NewMatchError(ErrInvalidMatch, apiErrors.ErrInvalidRequest, fmt.Sprintf("price estimate %v below minimum", priceEstimate))
	}
	return nil
}
