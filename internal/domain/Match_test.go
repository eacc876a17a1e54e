package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from     MatchStatus
		to       MatchStatus
		expected bool
	}{
		{MatchStatusPending, MatchStatusApproved, true},
		{MatchStatusPending, MatchStatusRejected, true},
		{MatchStatusPending, MatchStatusContacted, true},
		{MatchStatusApproved, MatchStatusApproved, true},
		{MatchStatusApproved, MatchStatusContacted, true},
		{MatchStatusApproved, MatchStatusRejected, true},
		{MatchStatusRejected, MatchStatusApproved, true},
		{MatchStatusRejected, MatchStatusContacted, false},
		{MatchStatusContacted, MatchStatusApproved, false},
		{MatchStatusContacted, MatchStatusRejected, false},
		{MatchStatusContacted, MatchStatusContacted, false},
		{MatchStatusApproved, MatchStatusPending, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.from.CanTransitionTo(tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestClaims_CanAccessBrand(t *testing.T) {
	var anonymous *Claims
	assert.False(t, anonymous.CanAccessBrand("BRD001"))

	brand := &Claims{BrandID: "BRD001", RoleID: RoleBrand}
	assert.True(t, brand.CanAccessBrand("BRD001"))
	assert.False(t, brand.CanAccessBrand("BRD002"))

	admin := &Claims{RoleID: RoleAdmin}
	assert.True(t, admin.CanAccessBrand("BRD002"))
}

func TestDemographics_IsZero(t *testing.T) {
	assert.True(t, Demographics{}.IsZero())
	assert.False(t, DefaultDemographics().IsZero())
	assert.False(t, UnknownDemographics().IsZero())
}
