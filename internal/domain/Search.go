package domain

const (
	DefaultMaxResults  = 20
	MaxSearchResults   = 50
	DefaultMinFitScore = 0.5
)

type SearchRequest struct {
	OfferingID  string   `json:"product_id"`
	MaxResults  int      `json:"max_results"`
	MinFitScore *float64 `json:"min_fit_score"`
}

type ROIEstimate struct {
	EstimatedClicks      int64   `json:"estimated_clicks"`
	EstimatedConversions int64   `json:"estimated_conversions"`
	EstimatedRevenue     float64 `json:"estimated_revenue"`
	ROIPercentage        float64 `json:"roi_percentage"`
	CostPerConversion    float64 `json:"cost_per_conversion"`
}

type SearchResult struct {
	Creator       CreatorSummary `json:"influencer"`
	FitScore      float64        `json:"fit_score"`
	PriceEstimate float64        `json:"price_estimate"`
	ROI           ROIEstimate    `json:"roi_estimate"`
	MatchID       string         `json:"match_id"`
	Status        MatchStatus    `json:"status"`
}
