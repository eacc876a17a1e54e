package domain

import "time"

type Brand struct {
	ID                string       `json:"id"`
	Name              string       `json:"name"`
	Email             string       `json:"email"`
	Website           *string      `json:"website"`
	PasswordHash      string       `json:"-"`
	RoleID            int          `json:"role_id"`
	Profile           BrandProfile `json:"profile"`
	ProfileAnalyzedAt *time.Time   `json:"profile_analyzed_at"`
	CreatedAt         time.Time    `json:"created_at"`
}

// BrandProfile é preenchido apenas pela análise do site da marca
type BrandProfile struct {
	Summary             string   `json:"summary"`
	Keywords            []string `json:"keywords"`
	TargetAudience      string   `json:"target_audience"`
	Values              []string `json:"values"`
	ContentCategories   []string `json:"content_categories"`
	Tone                string   `json:"tone"`
	UniqueSellingPoints []string `json:"unique_selling_points"`
}

type CreateBrandRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Website  *string `json:"website"`
}
