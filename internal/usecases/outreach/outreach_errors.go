package outreach

import (
	"errors"
	"fmt"
)

var (
	ErrCampaignNotFound  = errors.New("campaign not found")
	ErrCampaignNotActive = errors.New("campaign is not active")
	ErrOfferingNotFound  = errors.New("offering not found")
	ErrBrandNotFound     = errors.New("brand not found")
	ErrDatabaseOperation = errors.New("database operation error")
)

type OutreachError struct {
	Err        error
	Code       string
	CampaignID string
	Details    string
}

func (e *OutreachError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *OutreachError) Unwrap() error {
	return e.Err
}

func NewOutreachError(err error, code string, campaignID string, details string) *OutreachError {
	return &OutreachError{
		Err:        err,
		Code:       code,
		CampaignID: campaignID,
		Details:    details,
	}
}
