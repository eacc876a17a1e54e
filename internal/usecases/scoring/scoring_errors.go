package scoring

import (
	"errors"
	"fmt"
)

var (
	ErrScoringFailed         = errors.New("fit score calculation failed")
	ErrAdvisoryUnavailable   = errors.New("advisory collaborator unavailable")
	ErrPriceEstimationFailed = errors.New("price estimation failed")
)

// ScoringError classifica o motivo de um valor padrão ter sido usado
type ScoringError struct {
	Err       error
	Component string
	Details   string
}

func (e *ScoringError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s (%s): %s", e.Err.Error(), e.Component, e.Details)
	}
	return fmt.Sprintf("%s (%s)", e.Err.Error(), e.Component)
}

func (e *ScoringError) Unwrap() error {
	return e.Err
}

func newScoringError(err error, component, details string) *ScoringError {
	return &ScoringError{
		Err:       err,
		Component: component,
		Details:   details,
	}
}
