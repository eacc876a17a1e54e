package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/influencer-match-api/internal/domain"
)

func TestEstimatePrice(t *testing.T) {
	tests := []struct {
		name           string
		avgViews       int64
		engagementRate float64
		cpm            float64
		expected       float64
	}{
		{
			name:           "Canal grande com engajamento alto",
			avgViews:       200_000,
			engagementRate: 0.06,
			cpm:            15,
			expected:       4680.0,
		},
		{
			name:           "Canal pequeno fica no preço mínimo",
			avgViews:       5_000,
			engagementRate: 0.005,
			cpm:            15,
			expected:       50.0,
		},
		{
			name:           "Canal acima de um milhão de visualizações",
			avgViews:       2_000_000,
			engagementRate: 0.02,
			cpm:            20,
			expected:       60000.0,
		},
		{
			name:           "Engajamento intermediário",
			avgViews:       50_000,
			engagementRate: 0.04,
			cpm:            15,
			expected:       825.0,
		},
		{
			name:           "Sem visualizações",
			avgViews:       0,
			engagementRate: 0.2,
			cpm:            15,
			expected:       50.0,
		},
		{
			name:           "CPM inválido usa cálculo padrão",
			avgViews:       200_000,
			engagementRate: 0.06,
			cpm:            math.NaN(),
			expected:       3000.0,
		},
		{
			name:           "Engajamento infinito usa cálculo padrão",
			avgViews:       10_000,
			engagementRate: math.Inf(1),
			cpm:            15,
			expected:       150.0,
		},
		{
			name:           "Visualizações negativas usam cálculo padrão com piso",
			avgViews:       -100,
			engagementRate: 0.03,
			cpm:            15,
			expected:       50.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimatePrice(tt.avgViews, tt.engagementRate, tt.cpm))
		})
	}
}

func TestEstimatePrice_NeverBelowMinimum(t *testing.T) {
	views := []int64{0, 1, 999, 9_999, 10_000, 99_999, 100_001, 1_000_001}
	rates := []float64{0, 0.005, 0.01, 0.02, 0.04, 0.08}
	cpms := []float64{0, 1, 15, 40}

	for _, v := range views {
		for _, r := range rates {
			for _, c := range cpms {
				assert.GreaterOrEqual(t, EstimatePrice(v, r, c), MinimumPrice, "views=%d rate=%v cpm=%v", v, r, c)
			}
		}
	}
}

func TestEstimateROI(t *testing.T) {
	tests := []struct {
		name           string
		price          float64
		avgViews       int64
		conversionRate float64
		expected       domain.ROIEstimate
	}{
		{
			name:           "Retorno positivo",
			price:          1000,
			avgViews:       100_000,
			conversionRate: 0.02,
			expected: domain.ROIEstimate{
				EstimatedClicks:      2000,
				EstimatedConversions: 40,
				EstimatedRevenue:     2000,
				ROIPercentage:        100,
				CostPerConversion:    25,
			},
		},
		{
			name:           "Sem conversões divide o custo por um",
			price:          50,
			avgViews:       1_000,
			conversionRate: 0.02,
			expected: domain.ROIEstimate{
				EstimatedClicks:      20,
				EstimatedConversions: 0,
				EstimatedRevenue:     0,
				ROIPercentage:        -100,
				CostPerConversion:    50,
			},
		},
		{
			name:           "Preço zero não calcula percentual",
			price:          0,
			avgViews:       100_000,
			conversionRate: 0,
			expected: domain.ROIEstimate{
				EstimatedClicks:      2000,
				EstimatedConversions: 40,
				EstimatedRevenue:     2000,
				ROIPercentage:        0,
				CostPerConversion:    0,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EstimateROI(tt.price, tt.avgViews, tt.conversionRate))
		})
	}
}

func TestPriceEstimator_DefaultConversionRate(t *testing.T) {
	estimator := NewPriceEstimator(0)

	assert.Equal(t, 4680.0, estimator.Estimate(200_000, 0.06, 15))
	assert.Equal(t, int64(40), estimator.EstimateROI(1000, 100_000).EstimatedConversions)
}

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "Remove palavras curtas, repetidas e comuns",
			text:     "The Best gaming headset for Gamers, gaming!",
			expected: []string{"best", "gaming", "headset", "gamers"},
		},
		{
			name:     "Mantém letras acentuadas",
			text:     "Café Über é top",
			expected: []string{"café", "über", "top"},
		},
		{
			name:     "Texto vazio",
			text:     "",
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractKeywords(tt.text))
		})
	}
}
