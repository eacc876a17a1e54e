package domain

import "time"

const (
	DefaultCPM             = 15.0
	UploadFrequencyUnknown = "Unknown"
)

type Creator struct {
	ID              string       `json:"id"`
	ExternalID      string       `json:"external_id"`
	Name            string       `json:"name"`
	ChannelTitle    string       `json:"channel_title"`
	Description     string       `json:"description"`
	ThumbnailURL    string       `json:"thumbnail_url"`
	SubscriberCount int64        `json:"subscriber_count"`
	ViewCount       int64        `json:"view_count"`
	VideoCount      int64        `json:"video_count"`
	AvgViews        int64        `json:"avg_views"`
	EngagementRate  float64      `json:"engagement_rate"`
	CPM             float64      `json:"cpm"`
	Email           *string      `json:"email"`
	Categories      []string     `json:"content_categories"`
	Demographics    Demographics `json:"audience_demographics"`
	UploadFrequency string       `json:"upload_frequency"`
	LastUploadAt    *time.Time   `json:"last_upload_at"`
	LastAnalyzedAt  time.Time    `json:"last_analyzed_at"`
	CreatedAt       time.Time    `json:"created_at"`
}

type Demographics struct {
	AgeRange    string   `json:"age_range"`
	Gender      string   `json:"gender"`
	Interests   []string `json:"interests"`
	IncomeLevel string   `json:"income_level"`
	Location    string   `json:"location"`
}

// IsZero indica que nenhuma informação demográfica foi coletada
func (d Demographics) IsZero() bool {
	return d.AgeRange == "" && d.Gender == "" && len(d.Interests) == 0 && d.IncomeLevel == "" && d.Location == ""
}

func DefaultDemographics() Demographics {
	return Demographics{
		AgeRange:    "25-34",
		Gender:      "Mixed",
		Interests:   []string{"Technology", "Gaming", "Lifestyle"},
		IncomeLevel: "Middle",
		Location:    "Global",
	}
}

func UnknownDemographics() Demographics {
	return Demographics{
		AgeRange:    "Unknown",
		Gender:      "Unknown",
		Interests:   []string{},
		IncomeLevel: "Unknown",
		Location:    "Unknown",
	}
}

// ChannelCandidate é o resultado bruto de uma busca de canais
type ChannelCandidate struct {
	ExternalID   string `json:"channel_id"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail"`
}

// CreatorSummary é a visão resumida do criador devolvida na busca
type CreatorSummary struct {
	ID              string   `json:"id"`
	ExternalID      string   `json:"channel_id"`
	Name            string   `json:"name"`
	ChannelTitle    string   `json:"channel_title"`
	SubscriberCount int64    `json:"subscriber_count"`
	AvgViews        int64    `json:"avg_views"`
	EngagementRate  float64  `json:"engagement_rate"`
	Categories      []string `json:"content_categories"`
	ThumbnailURL    string   `json:"thumbnail_url"`
}

func (c *Creator) Summary() CreatorSummary {
	return CreatorSummary{
		ID:              c.ID,
		ExternalID:      c.ExternalID,
		Name:            c.Name,
		ChannelTitle:    c.ChannelTitle,
		SubscriberCount: c.SubscriberCount,
		AvgViews:        c.AvgViews,
		EngagementRate:  c.EngagementRate,
		Categories:      c.Categories,
		ThumbnailURL:    c.ThumbnailURL,
	}
}

// ChannelContent resume o conteúdo do canal para estimativa de público
type ChannelContent struct {
	Title       string
	Description string
	VideoTitles []string
}
