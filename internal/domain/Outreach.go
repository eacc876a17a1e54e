package domain

// Outreach reúne tudo que é necessário para redigir e enviar um contato
type Outreach struct {
	Match    *Match
	Creator  *Creator
	Offering *Offering
	Brand    *Brand
	Campaign *Campaign
}

type OutreachEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Alignment é a resposta de um avaliador consultivo (público ou valores da marca)
type Alignment struct {
	Score           float64  `json:"alignment_score"`
	MatchReasons    []string `json:"match_reasons"`
	MismatchReasons []string `json:"mismatch_reasons"`
}

type BrandAlignmentInput struct {
	BrandValues        []string
	BrandKeywords      []string
	CreatorCategories  []string
	CreatorDescription string
}
