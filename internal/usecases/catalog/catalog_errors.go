package catalog

import (
	"errors"
	"fmt"
)

var (
	ErrBrandNotFound       = errors.New("brand not found")
	ErrBrandAlreadyExists  = errors.New("brand already exists")
	ErrOfferingNotFound    = errors.New("offering not found")
	ErrCampaignNotFound    = errors.New("campaign not found")
	ErrMissingRequiredData = errors.New("missing required data")
	ErrInvalidRequest      = errors.New("invalid request")
	ErrWebsiteNotSet       = errors.New("brand has no website")
	ErrProfileAnalysis     = errors.New("brand profile analysis failed")
	ErrDatabaseOperation   = errors.New("database operation error")
	ErrGenerateID          = errors.New("error generating id")
)

// CatalogError carrega o código de API do erro
type CatalogError struct {
	Err     error
	Code    string
	Details string
}

func (e *CatalogError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *CatalogError) Unwrap() error {
	return e.Err
}

func NewCatalogError(err error, code string, details string) *CatalogError {
	return &CatalogError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
