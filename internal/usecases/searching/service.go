package searching

import (
	"context"
	"math"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/infrastructure/repository"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/matching"
	"github.com/vfg2006/influencer-match-api/internal/usecases/profiling"
	"github.com/vfg2006/influencer-match-api/internal/usecases/scoring"
	"github.com/vfg2006/influencer-match-api/pkg/apiErrors"
)

const querySuffix = "review unboxing"

// ChannelSearcher encontra canais candidatos para uma consulta livre
type ChannelSearcher interface {
	SearchChannels(ctx context.Context, query string, maxResults int) ([]domain.ChannelCandidate, error)
}

type InfluencerSearcher interface {
	Search(ctx context.Context, request domain.SearchRequest) ([]*domain.SearchResult, error)
	SearchForOffering(ctx context.Context, offering *domain.Offering, brand *domain.Brand, maxResults int, minFitScore float64) ([]*domain.SearchResult, error)
	Rescore(ctx context.Context, matchID string) (*domain.Match, error)
}

// Defaults são aplicados quando a requisição não informa limites
type Defaults struct {
	MaxResults  int
	MinFitScore float64
}

type Service struct {
	offeringRepository repository.OfferingRepository
	brandRepository    repository.BrandRepository
	creatorRepository  repository.CreatorRepository
	channelSearcher    ChannelSearcher
	resolver           profiling.ProfileResolver
	scorer             scoring.Scorer
	pricer             scoring.Pricer
	ledger             matching.MatchLedger
	defaults           Defaults
}

func NewService(
	offeringRepository repository.OfferingRepository,
	brandRepository repository.BrandRepository,
	creatorRepository repository.CreatorRepository,
	channelSearcher ChannelSearcher,
	resolver profiling.ProfileResolver,
	scorer scoring.Scorer,
	pricer scoring.Pricer,
	ledger matching.MatchLedger,
	defaults Defaults,
) InfluencerSearcher {
	if defaults.MaxResults <= 0 {
		defaults.MaxResults = domain.DefaultMaxResults
	}
	if defaults.MinFitScore <= 0 || defaults.MinFitScore > 1 {
		defaults.MinFitScore = domain.DefaultMinFitScore
	}

	return &Service{
		offeringRepository: offeringRepository,
		brandRepository:    brandRepository,
		creatorRepository:  creatorRepository,
		channelSearcher:    channelSearcher,
		resolver:           resolver,
		scorer:             scorer,
		pricer:             pricer,
		ledger:             ledger,
		defaults:           defaults,
	}
}

func (s *Service) Search(ctx context.Context, request domain.SearchRequest) ([]*domain.SearchResult, error) {
	offering, brand, err := s.loadOffering(ctx, request.OfferingID)
	if err != nil {
		return nil, err
	}

	minFitScore := s.defaults.MinFitScore
	if request.MinFitScore != nil {
		minFitScore = *request.MinFitScore
	}

	return s.SearchForOffering(ctx, offering, brand, request.MaxResults, minFitScore)
}

// SearchForOffering processa os candidatos em sequência. Um candidato com falha é
// registrado em log e ignorado, sem interromper os demais. Com o contexto cancelado
// a busca para e devolve os resultados já gravados junto com o erro do contexto.
func (s *Service) SearchForOffering(ctx context.Context, offering *domain.Offering, brand *domain.Brand, maxResults int, minFitScore float64) ([]*domain.SearchResult, error) {
	maxResults = s.normalizeMaxResults(maxResults)
	minFitScore = clampFitScore(minFitScore)

	query := buildQuery(offering)
	candidates := s.findCandidates(ctx, query, maxResults)

	logger := logrus.WithFields(logrus.Fields{
		"offering_id": offering.ID,
		"query":       query,
	})
	logger.Infof("Processando %d candidatos", len(candidates))

	seen := make(map[string]struct{}, len(candidates))
	results := make([]*domain.SearchResult, 0, len(candidates))

	var ctxErr error
	for _, candidate := range candidates {
		if ctxErr = ctx.Err(); ctxErr != nil {
			logger.WithError(ctxErr).Warnf("Busca interrompida após %d resultados", len(results))
			break
		}

		if _, dup := seen[candidate.ExternalID]; dup {
			continue
		}
		seen[candidate.ExternalID] = struct{}{}

		result, ok := s.processCandidate(ctx, offering, brand, candidate, minFitScore)
		if ok {
			results = append(results, result)
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].FitScore > results[j].FitScore
	})

	if ctxErr != nil {
		return results, ctxErr
	}

	logger.Infof("Busca concluída com %d resultados", len(results))

	return results, nil
}

func (s *Service) processCandidate(ctx context.Context, offering *domain.Offering, brand *domain.Brand, candidate domain.ChannelCandidate, minFitScore float64) (*domain.SearchResult, bool) {
	logger := logrus.WithFields(logrus.Fields{
		"offering_id": offering.ID,
		"external_id": candidate.ExternalID,
	})

	creator, err := s.resolver.Resolve(ctx, candidate)
	if err != nil {
		logger.WithError(err).Warn("Falha ao resolver criador, candidato ignorado")
		return nil, false
	}

	fit := s.scorer.Score(ctx, offering, brand, creator)
	if fit.Value < minFitScore {
		logger.Debugf("Nota %.2f abaixo do mínimo %.2f", fit.Value, minFitScore)
		return nil, false
	}

	price := s.pricer.Estimate(creator.AvgViews, creator.EngagementRate, creator.CPM)

	match, err := s.ledger.Upsert(ctx, domain.MatchDraft{
		CreatorID:       creator.ID,
		OfferingID:      offering.ID,
		FitScore:        fit.Value,
		PriceEstimate:   price,
		MatchReasons:    fit.MatchReasons,
		MismatchReasons: fit.MismatchReasons,
	})
	if err != nil {
		logger.WithError(err).Warn("Falha ao gravar partida, candidato ignorado")
		return nil, false
	}

	return &domain.SearchResult{
		Creator:       creator.Summary(),
		FitScore:      fit.Value,
		PriceEstimate: price,
		ROI:           s.pricer.EstimateROI(price, creator.AvgViews),
		MatchID:       match.ID,
		Status:        match.Status,
	}, true
}

func (s *Service) findCandidates(ctx context.Context, query string, maxResults int) []domain.ChannelCandidate {
	if s.channelSearcher == nil {
		logrus.Debug("Busca de canais não configurada, usando canais de demonstração")
		return demoCandidates(maxResults)
	}

	candidates, err := s.channelSearcher.SearchChannels(ctx, query, maxResults)
	if err != nil {
		logrus.WithError(err).WithField("query", query).Warn("Falha na busca de canais, usando canais de demonstração")
		return demoCandidates(maxResults)
	}

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	return candidates
}

// Rescore recalcula nota e preço de uma partida existente com os dados atuais
func (s *Service) Rescore(ctx context.Context, matchID string) (*domain.Match, error) {
	match, err := s.ledger.Get(ctx, matchID)
	if err != nil {
		return nil, err
	}

	creator, err := s.creatorRepository.GetByID(ctx, match.CreatorID)
	if err != nil {
		return nil, NewSearchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar criador")
	}
	if creator == nil {
		return nil, NewSearchError(ErrCreatorNotFound, apiErrors.ErrResourceNotFound, match.CreatorID)
	}

	offering, brand, err := s.loadOffering(ctx, match.OfferingID)
	if err != nil {
		return nil, err
	}

	fit := s.scorer.Score(ctx, offering, brand, creator)
	price := s.pricer.Estimate(creator.AvgViews, creator.EngagementRate, creator.CPM)

	return s.ledger.Refresh(ctx, matchID, domain.MatchDraft{
		CreatorID:       creator.ID,
		OfferingID:      offering.ID,
		FitScore:        fit.Value,
		PriceEstimate:   price,
		MatchReasons:    fit.MatchReasons,
		MismatchReasons: fit.MismatchReasons,
	})
}

func (s *Service) loadOffering(ctx context.Context, offeringID string) (*domain.Offering, *domain.Brand, error) {
	offering, err := s.offeringRepository.GetByID(ctx, offeringID)
	if err != nil {
		return nil, nil, NewSearchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar oferta")
	}
	if offering == nil {
		return nil, nil, NewSearchError(ErrOfferingNotFound, apiErrors.ErrResourceNotFound, offeringID)
	}

	brand, err := s.brandRepository.GetByID(ctx, offering.BrandID)
	if err != nil {
		return nil, nil, NewSearchError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, "Falha ao buscar marca")
	}
	if brand == nil {
		return nil, nil, NewSearchError(ErrBrandNotFound, apiErrors.ErrResourceNotFound, offering.BrandID)
	}

	return offering, brand, nil
}

func (s *Service) normalizeMaxResults(maxResults int) int {
	if maxResults <= 0 {
		maxResults = s.defaults.MaxResults
	}
	if maxResults > domain.MaxSearchResults {
		maxResults = domain.MaxSearchResults
	}
	return maxResults
}

func clampFitScore(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return domain.DefaultMinFitScore
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func buildQuery(offering *domain.Offering) string {
	return strings.Join(strings.Fields(offering.Name+" "+offering.CategoryValue()+" "+querySuffix), " ")
}
