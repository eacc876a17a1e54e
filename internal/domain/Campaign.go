package domain

import "time"

type CampaignStatus string

const (
	CampaignStatusActive    CampaignStatus = "active"
	CampaignStatusPaused    CampaignStatus = "paused"
	CampaignStatusCompleted CampaignStatus = "completed"

	DefaultTargetFitScore = 0.7
)

func (s CampaignStatus) IsValid() bool {
	switch s {
	case CampaignStatusActive, CampaignStatusPaused, CampaignStatusCompleted:
		return true
	}
	return false
}

type Campaign struct {
	ID             string         `json:"id"`
	BrandID        string         `json:"company_id"`
	OfferingID     string         `json:"product_id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Budget         *float64       `json:"budget"`
	TargetFitScore float64        `json:"target_fit_score"`
	AutoContact    bool           `json:"auto_contact"`
	Status         CampaignStatus `json:"status"`
	CreatedAt      time.Time      `json:"created_at"`
}

type CreateCampaignRequest struct {
	BrandID        string   `json:"-"`
	OfferingID     string   `json:"product_id"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Budget         *float64 `json:"budget"`
	TargetFitScore *float64 `json:"target_fit_score"`
	AutoContact    *bool    `json:"auto_contact"`
}

type ContactResult struct {
	CampaignID     string `json:"campaign_id"`
	ContactedCount int    `json:"contacted_count"`
	Message        string `json:"message"`
}
