package scoring

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/internal/usecases/scoring/mocks"
	"go.uber.org/mock/gomock"
)

func stringPtr(s string) *string {
	return &s
}

func TestContentFit(t *testing.T) {
	tests := []struct {
		name       string
		offering   *domain.Offering
		categories []string
		expected   float64
	}{
		{
			name:       "Categoria idêntica ignorando maiúsculas",
			offering:   &domain.Offering{Name: "Smartphone X", Category: stringPtr("Technology")},
			categories: []string{"technology", "gaming"},
			expected:   0.9,
		},
		{
			name:       "Criador sem categorias usa valor padrão",
			offering:   &domain.Offering{Name: "Smartphone X", Category: stringPtr("Technology")},
			categories: nil,
			expected:   0.6,
		},
		{
			name:       "Oferta sem categoria usa valor padrão",
			offering:   &domain.Offering{Name: "Smartphone X"},
			categories: []string{"Technology"},
			expected:   0.6,
		},
		{
			name:       "Categoria relacionada pela tabela do criador",
			offering:   &domain.Offering{Name: "Console", Category: stringPtr("Gaming")},
			categories: []string{"Technology"},
			expected:   0.7,
		},
		{
			name:       "Categoria relacionada pela tabela da oferta",
			offering:   &domain.Offering{Name: "Mala", Category: stringPtr("Lifestyle")},
			categories: []string{"Travel"},
			expected:   0.7,
		},
		{
			name: "Sobreposição parcial de palavras-chave",
			offering: &domain.Offering{
				Name:        "Wireless Headphones",
				Description: "Premium audio headphones for music lovers",
				Category:    stringPtr("Audio"),
			},
			categories: []string{"Music", "Audio Reviews"},
			expected:   2.0 / 6.0,
		},
		{
			name:       "Sobreposição total limitada a 0.8",
			offering:   &domain.Offering{Name: "Music Audio", Category: stringPtr("Sound")},
			categories: []string{"music", "audio"},
			expected:   0.8,
		},
		{
			name:       "Oferta sem palavras-chave relevantes",
			offering:   &domain.Offering{Name: "TV", Category: stringPtr("Other")},
			categories: []string{"Cooking"},
			expected:   0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creator := &domain.Creator{Categories: tt.categories}
			assert.InDelta(t, tt.expected, ContentFit(tt.offering, creator), 1e-9)
		})
	}
}

func TestEngagementFit(t *testing.T) {
	tests := []struct {
		rate     float64
		expected float64
	}{
		{rate: 0.2, expected: 1.0},
		{rate: 0.1001, expected: 1.0},
		{rate: 0.10, expected: 0.8},
		{rate: 0.06, expected: 0.8},
		{rate: 0.05, expected: 0.6},
		{rate: 0.03, expected: 0.6},
		{rate: 0.02, expected: 0.4},
		{rate: 0.015, expected: 0.4},
		{rate: 0.01, expected: 0.2},
		{rate: 0, expected: 0.2},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, EngagementFit(tt.rate), "rate %v", tt.rate)
	}
}

func TestFitScorer_Score(t *testing.T) {
	ctx := context.Background()

	techOffering := &domain.Offering{ID: "OFF001", Name: "Smartphone X", Category: stringPtr("Technology")}
	techCreator := &domain.Creator{
		ID:             "CRT001",
		Categories:     []string{"technology", "gaming"},
		EngagementRate: 0.06,
		Demographics:   domain.DefaultDemographics(),
		Description:    "Reviews de gadgets",
	}
	profiledBrand := &domain.Brand{
		ID: "BRD001",
		Profile: domain.BrandProfile{
			TargetAudience: "Jovens adultos interessados em tecnologia",
			Values:         []string{"inovação", "qualidade"},
			Keywords:       []string{"smartphone"},
		},
	}

	tests := []struct {
		name     string
		offering *domain.Offering
		brand    *domain.Brand
		creator  *domain.Creator
		setup    func(audience *mocks.MockAudienceAligner, brand *mocks.MockBrandAligner)
		validate func(t *testing.T, result FitResult)
	}{
		{
			name:     "Marca sem perfil usa notas neutras nas avaliações consultivas",
			offering: techOffering,
			brand:    &domain.Brand{ID: "BRD002"},
			creator:  techCreator,
			setup:    func(*mocks.MockAudienceAligner, *mocks.MockBrandAligner) {},
			validate: func(t *testing.T, result FitResult) {
				// 0.2*0.9 + 0.2*0.5 + 0.3*0.8 + 0.3*0.5 = 0.67, mais 0.2
				assert.InDelta(t, 0.87, result.Value, 1e-9)
				assert.Equal(t, 0.9, result.Content)
				assert.Equal(t, 0.5, result.Audience)
				assert.Equal(t, 0.8, result.Engagement)
				assert.Equal(t, 0.5, result.BrandAlignment)
				assert.False(t, result.Fallback)
				assert.NoError(t, result.Err)
				assert.Contains(t, result.MatchReasons, "Creates Technology content")
				assert.Contains(t, result.MatchReasons, "High audience engagement")
			},
		},
		{
			name:     "Notas máximas são limitadas a 1.0",
			offering: techOffering,
			brand:    profiledBrand,
			creator:  &domain.Creator{ID: "CRT002", Categories: []string{"Technology"}, EngagementRate: 0.2, Demographics: domain.DefaultDemographics()},
			setup: func(audience *mocks.MockAudienceAligner, brand *mocks.MockBrandAligner) {
				audience.EXPECT().
					AlignAudience(gomock.Any(), profiledBrand.Profile.TargetAudience, domain.DefaultDemographics()).
					Return(&domain.Alignment{Score: 1.0, MatchReasons: []string{"Público jovem"}}, nil)
				brand.EXPECT().
					AlignBrand(gomock.Any(), gomock.Any()).
					Return(&domain.Alignment{Score: 1.0, MismatchReasons: []string{"Tom informal"}}, nil)
			},
			validate: func(t *testing.T, result FitResult) {
				assert.Equal(t, 1.0, result.Value)
				assert.Contains(t, result.MatchReasons, "Público jovem")
				assert.Contains(t, result.MismatchReasons, "Tom informal")
			},
		},
		{
			name:     "Falha na avaliação de público usa 0.5 e classifica o erro",
			offering: techOffering,
			brand:    profiledBrand,
			creator:  techCreator,
			setup: func(audience *mocks.MockAudienceAligner, brand *mocks.MockBrandAligner) {
				audience.EXPECT().AlignAudience(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("timeout"))
				brand.EXPECT().
					AlignBrand(gomock.Any(), domain.BrandAlignmentInput{
						BrandValues:        profiledBrand.Profile.Values,
						BrandKeywords:      profiledBrand.Profile.Keywords,
						CreatorCategories:  techCreator.Categories,
						CreatorDescription: techCreator.Description,
					}).
					Return(&domain.Alignment{Score: 0.5}, nil)
			},
			validate: func(t *testing.T, result FitResult) {
				assert.Equal(t, 0.5, result.Audience)
				assert.InDelta(t, 0.87, result.Value, 1e-9)
				assert.False(t, result.Fallback)
				assert.ErrorIs(t, result.Err, ErrAdvisoryUnavailable)
			},
		},
		{
			name:     "Nota consultiva fora do intervalo é ajustada",
			offering: techOffering,
			brand:    profiledBrand,
			creator:  techCreator,
			setup: func(audience *mocks.MockAudienceAligner, brand *mocks.MockBrandAligner) {
				audience.EXPECT().AlignAudience(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.Alignment{Score: 1.7}, nil)
				brand.EXPECT().AlignBrand(gomock.Any(), gomock.Any()).Return(&domain.Alignment{Score: -3}, nil)
			},
			validate: func(t *testing.T, result FitResult) {
				assert.Equal(t, 1.0, result.Audience)
				assert.Equal(t, 0.0, result.BrandAlignment)
				assert.GreaterOrEqual(t, result.Value, 0.0)
				assert.LessOrEqual(t, result.Value, 1.0)
			},
		},
		{
			name:     "Criador ausente retorna exatamente 0.7",
			offering: techOffering,
			brand:    profiledBrand,
			creator:  nil,
			setup:    func(*mocks.MockAudienceAligner, *mocks.MockBrandAligner) {},
			validate: func(t *testing.T, result FitResult) {
				assert.Equal(t, 0.7, result.Value)
				assert.True(t, result.Fallback)
				assert.ErrorIs(t, result.Err, ErrScoringFailed)
			},
		},
		{
			name:     "Pânico em colaborador retorna exatamente 0.7",
			offering: techOffering,
			brand:    profiledBrand,
			creator:  techCreator,
			setup: func(audience *mocks.MockAudienceAligner, brand *mocks.MockBrandAligner) {
				audience.EXPECT().AlignAudience(gomock.Any(), gomock.Any(), gomock.Any()).Return(&domain.Alignment{Score: 0.6}, nil)
				brand.EXPECT().AlignBrand(gomock.Any(), gomock.Any()).DoAndReturn(
					func(context.Context, domain.BrandAlignmentInput) (*domain.Alignment, error) {
						panic("unexpected response")
					})
			},
			validate: func(t *testing.T, result FitResult) {
				assert.Equal(t, 0.7, result.Value)
				assert.True(t, result.Fallback)
				var scoringErr *ScoringError
				require.ErrorAs(t, result.Err, &scoringErr)
				assert.Equal(t, "fit", scoringErr.Component)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			audience := mocks.NewMockAudienceAligner(ctrl)
			brand := mocks.NewMockBrandAligner(ctrl)
			tt.setup(audience, brand)

			scorer := NewFitScorer(audience, brand)
			tt.validate(t, scorer.Score(ctx, tt.offering, tt.brand, tt.creator))
		})
	}
}

func TestFitScorer_ScoreWithoutAligners(t *testing.T) {
	scorer := NewFitScorer(nil, nil)

	brand := &domain.Brand{Profile: domain.BrandProfile{TargetAudience: "Gamers", Values: []string{"diversão"}}}
	creator := &domain.Creator{Categories: []string{"Gaming"}, EngagementRate: 0.001, Demographics: domain.DefaultDemographics()}

	result := scorer.Score(context.Background(), &domain.Offering{Name: "Mouse", Category: stringPtr("Gaming")}, brand, creator)

	// 0.2*0.9 + 0.2*0.5 + 0.3*0.2 + 0.3*0.5 = 0.49, mais 0.2
	assert.InDelta(t, 0.69, result.Value, 1e-9)
	assert.ErrorIs(t, result.Err, ErrAdvisoryUnavailable)
	assert.Contains(t, result.MismatchReasons, "Low audience engagement")
}

func TestFitScorer_ScoreIsBounded(t *testing.T) {
	scorer := NewFitScorer(nil, nil)
	offering := &domain.Offering{Name: "Produto", Category: stringPtr("Technology")}

	for _, rate := range []float64{-1, 0, 0.015, 0.03, 0.07, 0.5, 10} {
		for _, categories := range [][]string{nil, {"Technology"}, {"Gaming"}, {"Cooking"}} {
			result := scorer.Score(context.Background(), offering, &domain.Brand{}, &domain.Creator{Categories: categories, EngagementRate: rate})
			assert.GreaterOrEqual(t, result.Value, 0.0)
			assert.LessOrEqual(t, result.Value, 1.0)
		}
	}
}
