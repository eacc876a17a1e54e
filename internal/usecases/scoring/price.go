package scoring

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/influencer-match-api/internal/domain"
	"github.com/vfg2006/influencer-match-api/pkg/utils"
)

const (
	MinimumPrice = 50.0

	defaultConversionRate = 0.02
	clickThroughRate      = 0.02
	averageOrderValue     = 50.0
)

type Pricer interface {
	Estimate(avgViews int64, engagementRate, cpm float64) float64
	EstimateROI(price float64, avgViews int64) domain.ROIEstimate
}

type PriceEstimator struct {
	conversionRate float64
}

func NewPriceEstimator(conversionRate float64) *PriceEstimator {
	if conversionRate <= 0 || !utils.IsFinite(conversionRate) {
		conversionRate = defaultConversionRate
	}

	return &PriceEstimator{conversionRate: conversionRate}
}

func (p *PriceEstimator) Estimate(avgViews int64, engagementRate, cpm float64) float64 {
	return EstimatePrice(avgViews, engagementRate, cpm)
}

func (p *PriceEstimator) EstimateROI(price float64, avgViews int64) domain.ROIEstimate {
	return EstimateROI(price, avgViews, p.conversionRate)
}

// EstimatePrice calcula o valor sugerido da colaboração. Nunca fica abaixo de MinimumPrice.
func EstimatePrice(avgViews int64, engagementRate, cpm float64) float64 {
	price, err := estimatePrice(avgViews, engagementRate, cpm)
	if err != nil {
		fallback := fallbackPrice(avgViews)
		logrus.WithError(err).WithFields(logrus.Fields{
			"avg_views": avgViews,
			"price":     fallback,
		}).Warn("Falha na estimativa de preço, usando CPM padrão")
		return fallback
	}

	return price
}

func estimatePrice(avgViews int64, engagementRate, cpm float64) (float64, error) {
	if avgViews < 0 || !utils.IsFinite(engagementRate) || !utils.IsFinite(cpm) {
		return 0, newScoringError(ErrPriceEstimationFailed, "price",
			fmt.Sprintf("invalid input views=%d engagement=%v cpm=%v", avgViews, engagementRate, cpm))
	}

	base := (float64(avgViews) / 1000) * cpm

	price := base * engagementMultiplier(engagementRate) * viewMultiplier(avgViews)
	if !utils.IsFinite(price) {
		return 0, newScoringError(ErrPriceEstimationFailed, "price", "non-finite price")
	}

	return math.Max(MinimumPrice, utils.RoundWithTwoDecimalPlace(price)), nil
}

func engagementMultiplier(rate float64) float64 {
	switch {
	case rate > 0.05:
		return 1.3
	case rate > 0.03:
		return 1.1
	case rate < 0.01:
		return 0.8
	default:
		return 1.0
	}
}

func viewMultiplier(avgViews int64) float64 {
	switch {
	case avgViews > 1_000_000:
		return 1.5
	case avgViews > 100_000:
		return 1.2
	case avgViews < 10_000:
		return 0.7
	default:
		return 1.0
	}
}

func fallbackPrice(avgViews int64) float64 {
	price := utils.RoundWithTwoDecimalPlace((float64(avgViews) / 1000) * domain.DefaultCPM)
	return math.Max(MinimumPrice, price)
}

// EstimateROI projeta cliques, conversões e retorno esperado para o preço informado
func EstimateROI(price float64, avgViews int64, conversionRate float64) domain.ROIEstimate {
	if avgViews < 0 || !utils.IsFinite(price) || !utils.IsFinite(conversionRate) {
		return domain.ROIEstimate{}
	}

	if conversionRate <= 0 {
		conversionRate = defaultConversionRate
	}

	clicks := int64(float64(avgViews) * clickThroughRate)
	conversions := int64(float64(clicks) * conversionRate)
	revenue := float64(conversions) * averageOrderValue

	roi := 0.0
	if price > 0 {
		roi = (revenue - price) / price * 100
	}

	return domain.ROIEstimate{
		EstimatedClicks:      clicks,
		EstimatedConversions: conversions,
		EstimatedRevenue:     utils.RoundWithTwoDecimalPlace(revenue),
		ROIPercentage:        utils.RoundWithOneDecimalPlace(roi),
		CostPerConversion:    utils.RoundWithTwoDecimalPlace(price / float64(max(1, conversions))),
	}
}
