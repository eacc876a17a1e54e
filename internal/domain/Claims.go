package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin = 1
	RoleBrand = 3
)

// Claims identifica a marca autenticada na sessão
type Claims struct {
	BrandID    string
	BrandName  string
	BrandEmail string
	RoleID     int
	jwt.RegisteredClaims
}

func (c *Claims) IsAdmin() bool {
	return c != nil && c.RoleID == RoleAdmin
}

// CanAccessBrand indica se a sessão pode operar sobre a marca informada
func (c *Claims) CanAccessBrand(brandID string) bool {
	if c == nil {
		return false
	}
	return c.IsAdmin() || c.BrandID == brandID
}
