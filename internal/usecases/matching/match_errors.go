package matching

import (
	"errors"
	"fmt"
)

var (
	ErrMatchNotFound     = errors.New("match not found")
	ErrInvalidTransition = errors.New("invalid match status transition")
	ErrInvalidMatch      = errors.New("invalid match values")
	ErrInvalidStatus     = errors.New("invalid match status")
	ErrDatabaseOperation = errors.New("database operation error")
	ErrGenerateID        = errors.New("error generating match id")
)

// MatchError carrega o código de API e a partida envolvida
type MatchError struct {
	Err     error
	Code    string
	MatchID string
	Details string
}

func (e *MatchError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *MatchError) Unwrap() error {
	return e.Err
}

func NewMatchError(err error, code string, details string) *MatchError {
	return &MatchError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewMatchErrorWithID(err error, code string, matchID string, details string) *MatchError {
	return &MatchError{
		Err:     err,
		Code:    code,
		MatchID: matchID,
		Details: details,
	}
}
