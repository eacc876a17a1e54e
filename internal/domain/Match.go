package domain

import "time"

type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusApproved  MatchStatus = "approved"
	MatchStatusContacted MatchStatus = "contacted"
	MatchStatusRejected  MatchStatus = "rejected"
)

// matchTransitions lista, para cada estado de destino, os estados de origem aceitos.
// contacted é terminal.
var matchTransitions = map[MatchStatus][]MatchStatus{
	MatchStatusApproved:  {MatchStatusPending, MatchStatusApproved, MatchStatusRejected},
	MatchStatusRejected:  {MatchStatusPending, MatchStatusApproved, MatchStatusRejected},
	MatchStatusContacted: {MatchStatusPending, MatchStatusApproved},
}

func (s MatchStatus) IsValid() bool {
	switch s {
	case MatchStatusPending, MatchStatusApproved, MatchStatusContacted, MatchStatusRejected:
		return true
	}
	return false
}

// CanTransitionTo indica se a partida pode ir do estado atual para o destino
func (s MatchStatus) CanTransitionTo(target MatchStatus) bool {
	for _, from := range matchTransitions[target] {
		if from == s {
			return true
		}
	}
	return false
}

// AllowedSources retorna os estados de origem aceitos para o destino
func AllowedSources(target MatchStatus) []MatchStatus {
	return matchTransitions[target]
}

type Match struct {
	ID              string      `json:"id"`
	CreatorID       string      `json:"influencer_id"`
	OfferingID      string      `json:"product_id"`
	FitScore        float64     `json:"fit_score"`
	PriceEstimate   float64     `json:"price_estimate"`
	MatchReasons    []string    `json:"match_reasons"`
	MismatchReasons []string    `json:"mismatch_reasons"`
	Status          MatchStatus `json:"status"`
	ContactedAt     *time.Time  `json:"contacted_at"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// MatchDraft contém os valores calculados antes da primeira gravação da partida
type MatchDraft struct {
	CreatorID       string
	OfferingID      string
	FitScore        float64
	PriceEstimate   float64
	MatchReasons    []string
	MismatchReasons []string
}

// MatchWithCreator junta a partida aos dados do criador para listagens e contato
type MatchWithCreator struct {
	Match
	Creator Creator `json:"influencer"`
}
