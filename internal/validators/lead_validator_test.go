package validators

import (
	"strings"
	"testing"

	"aura-crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeadValidateAcceptsEmptyPayload(t *testing.T) {
	v := NewLeadValidator()
	ok, errs := v.Validate(&models.LeadPayload{})
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestLeadValidateAcceptsFullPayload(t *testing.T) {
	v := NewLeadValidator()
	min, max := 100000.0, 500000.0
	bedrooms := 3
	bathrooms := 2.0
	ok, errs := v.Validate(&models.LeadPayload{
		Status:               "contacted",
		Source:               "website",
		PreferredContact:     "email",
		PreferredContactTime: "morning",
		BudgetMin:            &min,
		BudgetMax:            &max,
		DesiredLocation:      "Springfield",
		DesiredPropertyType:  "townhouse",
		DesiredBedrooms:      &bedrooms,
		DesiredBathrooms:     &bathrooms,
	})
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestLeadValidateBudgets(t *testing.T) {
	v := NewLeadValidator()

	min, max := 500000.0, 100000.0
	ok, errs := v.Validate(&models.LeadPayload{BudgetMin: &min, BudgetMax: &max})
	require.False(t, ok)
	assert.Contains(t, errs, "Minimum budget cannot be greater than maximum budget")

	negMin, negMax := -100.0, -50.0
	ok, errs = v.Validate(&models.LeadPayload{BudgetMin: &negMin, BudgetMax: &negMax})
	require.False(t, ok)
	assert.Contains(t, errs, "Budget values cannot be negative")
}

func TestLeadValidateEnums(t *testing.T) {
	v := NewLeadValidator()

	ok, errs := v.Validate(&models.LeadPayload{
		Status:               "archived",
		PreferredContact:     "carrier_pigeon",
		PreferredContactTime: "midnight",
		DesiredPropertyType:  "castle",
	})
	require.False(t, ok)
	assert.Contains(t, errs, "Invalid lead status")
	assert.Contains(t, errs, "Invalid contact preference")
	assert.Contains(t, errs, "Invalid contact time preference")
	assert.Contains(t, errs, "Invalid desired property type")
}

func TestLeadValidateNegativeDesiredRooms(t *testing.T) {
	v := NewLeadValidator()

	bedrooms := -1
	bathrooms := -0.5
	ok, errs := v.Validate(&models.LeadPayload{DesiredBedrooms: &bedrooms, DesiredBathrooms: &bathrooms})
	require.False(t, ok)
	assert.Contains(t, errs, "Desired bedrooms cannot be negative")
	assert.Contains(t, errs, "Desired bathrooms cannot be negative")
}

func TestLeadValidateLengthCaps(t *testing.T) {
	v := NewLeadValidator()

	ok, errs := v.Validate(&models.LeadPayload{
		Source:          strings.Repeat("a", 101),
		DesiredLocation: strings.Repeat("b", 501),
	})
	require.False(t, ok)
	assert.Contains(t, errs, "Source must be less than 100 characters")
	assert.Contains(t, errs, "Desired location must be less than 500 characters")
}
