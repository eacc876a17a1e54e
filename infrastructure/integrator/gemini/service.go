package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/domain"
)

const maxWebsiteText = 5000

var ErrNotConfigured = errors.New("gemini is not configured")

// GeminiIntegrator responde às avaliações consultivas. Sem gerador configurado,
// devolve valores de demonstração.
type GeminiIntegrator struct {
	generator Generator
}

func New(generator Generator) *GeminiIntegrator {
	return &GeminiIntegrator{generator: generator}
}

func (s *GeminiIntegrator) configured() bool {
	return s != nil && s.generator != nil
}

func (s *GeminiIntegrator) AlignAudience(ctx context.Context, targetAudience string, demographics domain.Demographics) (*domain.Alignment, error) {
	if !s.configured() {
		return &domain.Alignment{Score: 0.7, MatchReasons: []string{"Content category match"}, MismatchReasons: []string{}}, nil
	}

	prompt := fmt.Sprintf(audiencePrompt,
		targetAudience,
		demographics.AgeRange,
		demographics.Gender,
		joinOrNone(demographics.Interests),
		demographics.IncomeLevel,
		demographics.Location,
	)

	return s.alignment(ctx, "audience", prompt)
}

func (s *GeminiIntegrator) AlignBrand(ctx context.Context, input domain.BrandAlignmentInput) (*domain.Alignment, error) {
	if !s.configured() {
		return &domain.Alignment{Score: 0.6, MatchReasons: []string{"Brand values alignment"}, MismatchReasons: []string{}}, nil
	}

	prompt := fmt.Sprintf(brandAlignmentPrompt,
		joinOrNone(input.BrandValues),
		joinOrNone(input.BrandKeywords),
		joinOrNone(input.CreatorCategories),
		input.CreatorDescription,
	)

	return s.alignment(ctx, "brand", prompt)
}

func (s *GeminiIntegrator) alignment(ctx context.Context, kind, prompt string) (*domain.Alignment, error) {
	answer, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		logrus.WithError(err).WithField("kind", kind).Warn("gemini: falha na avaliação de alinhamento")
		return nil, err
	}

	result, err := parseJSON(answer)
	if err != nil {
		return nil, err
	}

	score := result.Get("alignment_score")
	if !score.Exists() {
		return nil, fmt.Errorf("%w: missing alignment_score", ErrInvalidResponse)
	}

	return &domain.Alignment{
		Score:           score.Float(),
		MatchReasons:    stringList(result.Get("match_reasons")),
		MismatchReasons: stringList(result.Get("mismatch_reasons")),
	}, nil
}

// AnalyzeBrand gera o perfil da marca a partir do texto do site
func (s *GeminiIntegrator) AnalyzeBrand(ctx context.Context, websiteText string) (*domain.BrandProfile, error) {
	if !s.configured() {
		return nil, ErrNotConfigured
	}

	if len(websiteText) > maxWebsiteText {
		websiteText = strings.ToValidUTF8(websiteText[:maxWebsiteText], "")
	}

	answer, err := s.generator.GenerateContent(ctx, fmt.Sprintf(brandProfilePrompt, websiteText))
	if err != nil {
		return nil, err
	}

	result, err := parseJSON(answer)
	if err != nil {
		return nil, err
	}

	return &domain.BrandProfile{
		Summary:             result.Get("summary").String(),
		Keywords:            stringList(result.Get("keywords")),
		TargetAudience:      result.Get("target_audience").String(),
		Values:              stringList(result.Get("brand_values")),
		ContentCategories:   stringList(result.Get("content_categories")),
		Tone:                result.Get("tone").String(),
		UniqueSellingPoints: stringList(result.Get("unique_selling_points")),
	}, nil
}

func (s *GeminiIntegrator) EstimateDemographics(ctx context.Context, content domain.ChannelContent) (domain.Demographics, error) {
	if !s.configured() {
		return domain.DefaultDemographics(), nil
	}

	prompt := fmt.Sprintf(demographicsPrompt, content.Title, content.Description, joinOrNone(content.VideoTitles))

	answer, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return domain.Demographics{}, err
	}

	result, err := parseJSON(answer)
	if err != nil {
		return domain.Demographics{}, err
	}

	return domain.Demographics{
		AgeRange:    result.Get("age_range").String(),
		Gender:      result.Get("gender").String(),
		Interests:   stringList(result.Get("interests")),
		IncomeLevel: result.Get("income_level").String(),
		Location:    result.Get("location").String(),
	}, nil
}

// WriteOutreach redige assunto e corpo do email de contato
func (s *GeminiIntegrator) WriteOutreach(ctx context.Context, outreach domain.Outreach) (*domain.OutreachEmail, error) {
	if !s.configured() {
		return nil, ErrNotConfigured
	}

	creator := outreach.Creator
	prompt := fmt.Sprintf(outreachPrompt,
		outreach.Brand.Name,
		outreach.Offering.Name,
		outreach.Offering.Description,
		creator.Name,
		creator.ChannelTitle,
		joinOrNone(creator.Categories),
		outreach.Match.FitScore,
		outreach.Match.PriceEstimate,
		creator.SubscriberCount,
		creator.AvgViews,
		creator.EngagementRate*100,
	)

	answer, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	result, err := parseJSON(answer)
	if err != nil {
		return nil, err
	}

	email := &domain.OutreachEmail{
		Subject: strings.TrimSpace(result.Get("subject").String()),
		Body:    strings.TrimSpace(result.Get("body").String()),
	}
	if email.Subject == "" || email.Body == "" {
		return nil, fmt.Errorf("%w: empty subject or body", ErrInvalidResponse)
	}

	return email, nil
}
