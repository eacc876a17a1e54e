package profiling

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCandidate  = errors.New("channel candidate without external id")
	ErrCreatorNotFound   = errors.New("creator not found")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating creator id")
)

type ProfileError struct {
	Err        error
	Code       string
	ExternalID string
	Details    string
}

func (e *ProfileError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

func NewProfileError(err error, code string, externalID string, details string) *ProfileError {
	return &ProfileError{
		Err:        err,
		Code:       code,
		ExternalID: externalID,
		Details:    details,
	}
}
