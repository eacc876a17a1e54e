package domain

import "time"

type Offering struct {
	ID          string    `json:"id"`
	BrandID     string    `json:"brand_id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    *string   `json:"category"`
	PriceRange  *string   `json:"price_range"`
	CreatedAt   time.Time `json:"created_at"`
}

// CategoryValue retorna a categoria ou string vazia quando não informada
func (o *Offering) CategoryValue() string {
	if o == nil || o.Category == nil {
		return ""
	}
	return *o.Category
}

type CreateOfferingRequest struct {
	BrandID     string  `json:"-"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    *string `json:"category"`
	PriceRange  *string `json:"price_range"`
}
