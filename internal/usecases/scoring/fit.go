package scoring

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/domain"
)

const (
	contentWeight    = 0.2
	audienceWeight   = 0.2
	engagementWeight = 0.3
	brandWeight      = 0.3

	leniencyBoost = 0.2

	// FallbackFitScore é usado quando o cálculo inteiro falha
	FallbackFitScore = 0.7
	// NeutralSubScore substitui avaliações consultivas indisponíveis
	NeutralSubScore = 0.5

	defaultContentFit    = 0.6
	exactCategoryFit     = 0.9
	relatedCategoryFit   = 0.7
	maxKeywordOverlapFit = 0.8
)

// relatedCategories é a tabela de categorias vizinhas, consultada nos dois sentidos
var relatedCategories = map[string][]string{
	"beauty & fashion": {"lifestyle", "fashion", "beauty"},
	"technology":       {"tech", "gadgets", "electronics", "gaming"},
	"food & cooking":   {"lifestyle", "cooking", "food"},
	"gaming":           {"technology", "entertainment"},
	"lifestyle":        {"beauty & fashion", "food & cooking", "travel"},
}

type AudienceAligner interface {
	AlignAudience(ctx context.Context, targetAudience string, demographics domain.Demographics) (*domain.Alignment, error)
}

type BrandAligner interface {
	AlignBrand(ctx context.Context, input domain.BrandAlignmentInput) (*domain.Alignment, error)
}

type Scorer interface {
	Score(ctx context.Context, offering *domain.Offering, brand *domain.Brand, creator *domain.Creator) FitResult
}

// FitResult traz o valor final, os componentes e, quando houve substituição por
// valor padrão, o erro classificado que a causou.
type FitResult struct {
	Value           float64
	Content         float64
	Audience        float64
	Engagement      float64
	BrandAlignment  float64
	MatchReasons    []string
	MismatchReasons []string
	Fallback        bool
	Err             error
}

type FitScorer struct {
	audienceAligner AudienceAligner
	brandAligner    BrandAligner
}

func NewFitScorer(audienceAligner AudienceAligner, brandAligner BrandAligner) *FitScorer {
	return &FitScorer{
		audienceAligner: audienceAligner,
		brandAligner:    brandAligner,
	}
}

// Score nunca falha: em caso de erro interno devolve FallbackFitScore
func (s *FitScorer) Score(ctx context.Context, offering *domain.Offering, brand *domain.Brand, creator *domain.Creator) (result FitResult) {
	defer func() {
		if r := recover(); r != nil {
			result = s.fallback(newScoringError(ErrScoringFailed, "fit", fmt.Sprintf("panic: %v", r)))
		}
	}()

	if offering == nil || brand == nil || creator == nil {
		return s.fallback(newScoringError(ErrScoringFailed, "fit", "offering, brand and creator are required"))
	}

	result.Content = ContentFit(offering, creator)
	result.Engagement = EngagementFit(creator.EngagementRate)

	audience, audienceErr := s.audienceFit(ctx, brand, creator, &result)
	result.Audience = audience

	brandScore, brandErr := s.brandAlignment(ctx, brand, creator, &result)
	result.BrandAlignment = brandScore

	raw := result.Content*contentWeight +
		result.Audience*audienceWeight +
		result.Engagement*engagementWeight +
		result.BrandAlignment*brandWeight

	score := math.Min(1.0, raw+leniencyBoost)
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return s.fallback(newScoringError(ErrScoringFailed, "fit", "non-finite score"))
	}
	result.Value = clamp01(score)

	describeContent(offering, result.Content, &result)
	describeEngagement(result.Engagement, &result)

	if audienceErr != nil {
		result.Err = audienceErr
	} else if brandErr != nil {
		result.Err = brandErr
	}

	return result
}

func (s *FitScorer) fallback(err error) FitResult {
	logrus.WithError(err).WithField("fit_score", FallbackFitScore).Warn("Falha no cálculo de compatibilidade, usando valor padrão")

	return FitResult{
		Value:    FallbackFitScore,
		Fallback: true,
		Err:      err,
	}
}

// ContentFit compara a categoria da oferta com as categorias do criador
func ContentFit(offering *domain.Offering, creator *domain.Creator) float64 {
	category := strings.ToLower(strings.TrimSpace(offering.CategoryValue()))
	if len(creator.Categories) == 0 || category == "" {
		return defaultContentFit
	}

	for _, creatorCategory := range creator.Categories {
		if strings.ToLower(creatorCategory) == category {
			return exactCategoryFit
		}
	}

	for _, creatorCategory := range creator.Categories {
		if areRelated(category, strings.ToLower(creatorCategory)) {
			return relatedCategoryFit
		}
	}

	offeringKeywords := keywordSet(offering.Name + " " + offering.Description)
	if len(offeringKeywords) == 0 {
		return 0.0
	}

	creatorKeywords := keywordSet(creator.Categories...)
	common := 0
	for keyword := range offeringKeywords {
		if _, ok := creatorKeywords[keyword]; ok {
			common++
		}
	}

	return math.Min(maxKeywordOverlapFit, float64(common)/float64(len(offeringKeywords)))
}

func areRelated(offeringCategory, creatorCategory string) bool {
	return contains(relatedCategories[creatorCategory], offeringCategory) ||
		contains(relatedCategories[offeringCategory], creatorCategory)
}

// EngagementFit converte a taxa de engajamento em uma nota em degraus
func EngagementFit(rate float64) float64 {
	switch {
	case rate > 0.10:
		return 1.0
	case rate > 0.05:
		return 0.8
	case rate > 0.02:
		return 0.6
	case rate > 0.01:
		return 0.4
	default:
		return 0.2
	}
}

func (s *FitScorer) audienceFit(ctx context.Context, brand *domain.Brand, creator *domain.Creator, result *FitResult) (float64, error) {
	if strings.TrimSpace(brand.Profile.TargetAudience) == "" || creator.Demographics.IsZero() {
		return NeutralSubScore, nil
	}

	if s.audienceAligner == nil {
		return NeutralSubScore, newScoringError(ErrAdvisoryUnavailable, "audience", "no aligner configured")
	}

	alignment, err := s.audienceAligner.AlignAudience(ctx, brand.Profile.TargetAudience, creator.Demographics)
	if err != nil || alignment == nil {
		scoringErr := newScoringError(ErrAdvisoryUnavailable, "audience", errDetails(err))
		logrus.WithError(scoringErr).WithField("creator_id", creator.ID).Warn("Avaliação de público indisponível, usando nota neutra")
		return NeutralSubScore, scoringErr
	}

	appendReasons(result, alignment)
	return advisoryScore(alignment.Score), nil
}

func (s *FitScorer) brandAlignment(ctx context.Context, brand *domain.Brand, creator *domain.Creator, result *FitResult) (float64, error) {
	if len(brand.Profile.Values) == 0 || len(creator.Categories) == 0 {
		return NeutralSubScore, nil
	}

	if s.brandAligner == nil {
		return NeutralSubScore, newScoringError(ErrAdvisoryUnavailable, "brand", "no aligner configured")
	}

	alignment, err := s.brandAligner.AlignBrand(ctx, domain.BrandAlignmentInput{
		BrandValues:        brand.Profile.Values,
		BrandKeywords:      brand.Profile.Keywords,
		CreatorCategories:  creator.Categories,
		CreatorDescription: creator.Description,
	})
	if err != nil || alignment == nil {
		scoringErr := newScoringError(ErrAdvisoryUnavailable, "brand", errDetails(err))
		logrus.WithError(scoringErr).WithField("creator_id", creator.ID).Warn("Avaliação de alinhamento com a marca indisponível, usando nota neutra")
		return NeutralSubScore, scoringErr
	}

	appendReasons(result, alignment)
	return advisoryScore(alignment.Score), nil
}

func describeContent(offering *domain.Offering, content float64, result *FitResult) {
	switch content {
	case exactCategoryFit:
		result.MatchReasons = append(result.MatchReasons, fmt.Sprintf("Creates %s content", offering.CategoryValue()))
	case relatedCategoryFit:
		result.MatchReasons = append(result.MatchReasons, fmt.Sprintf("Content related to %s", offering.CategoryValue()))
	case defaultContentFit:
	default:
		if content == 0 {
			result.MismatchReasons = append(result.MismatchReasons, "No content overlap with product")
		} else {
			result.MatchReasons = append(result.MatchReasons, "Content keywords overlap with product")
		}
	}
}

func describeEngagement(engagement float64, result *FitResult) {
	if engagement >= 0.8 {
		result.MatchReasons = append(result.MatchReasons, "High audience engagement")
	} else if engagement <= 0.2 {
		result.MismatchReasons = append(result.MismatchReasons, "Low audience engagement")
	}
}

func appendReasons(result *FitResult, alignment *domain.Alignment) {
	result.MatchReasons = append(result.MatchReasons, alignment.MatchReasons...)
	result.MismatchReasons = append(result.MismatchReasons, alignment.MismatchReasons...)
}

func advisoryScore(score float64) float64 {
	if math.IsNaN(score) {
		return NeutralSubScore
	}
	return clamp01(score)
}

func clamp01(v float64) float64 {
	return math.Max(0.0, math.Min(1.0, v))
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func errDetails(err error) string {
	if err == nil {
		return "empty response"
	}
	return err.Error()
}
