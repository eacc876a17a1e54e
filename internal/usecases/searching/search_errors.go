package searching

import (
	"errors"
	"fmt"
)

var (
	ErrOfferingNotFound  = errors.New("offering not found")
	ErrBrandNotFound     = errors.New("brand not found")
	ErrCreatorNotFound   = errors.New("creator not found")
	ErrDatabaseOperation = errors.New("database operation error")
)

type SearchError struct {
	Err     error
	Code    string
	Details string
}

func (e *SearchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *SearchError) Unwrap() error {
	return e.Err
}

func NewSearchError(err error, code string, details string) *SearchError {
	return &SearchError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
