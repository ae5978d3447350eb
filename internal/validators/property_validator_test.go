package validators

import (
	"strings"
	"testing"

	"aura-crm/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPropertyPayload() *models.PropertyPayload {
	price := 450000.0
	return &models.PropertyPayload{
		Title:        "Sunny three bedroom house",
		Address:      "12 Ocean Drive",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		Price:        &price,
		PropertyType: "townhouse",
	}
}

func TestValidateCreateAcceptsValidPayload(t *testing.T) {
	v := NewPropertyValidator()
	ok, errs := v.ValidateCreate(validPropertyPayload())
	assert.True(t, ok)
	assert.Empty(t, errs)
}

func TestValidateCreateCountsTitleCharacters(t *testing.T) {
	v := NewPropertyValidator()

	payload := validPropertyPayload()
	payload.Title = strings.Repeat("é", 200)
	ok, errs := v.ValidateCreate(payload)
	assert.True(t, ok)
	assert.Empty(t, errs)

	payload.Title = strings.Repeat("é", 201)
	ok, errs = v.ValidateCreate(payload)
	require.False(t, ok)
	assert.Contains(t, errs, "Title must be less than 200 characters")
}

func TestValidateCreateCollectsAllMissingFields(t *testing.T) {
	v := NewPropertyValidator()
	ok, errs := v.ValidateCreate(&models.PropertyPayload{})
	require.False(t, ok)

	assert.Contains(t, errs, "Title is required")
	assert.Contains(t, errs, "Property Type is required")
	assert.Contains(t, errs, "Price is required")
	assert.Contains(t, errs, "Address is required")
	assert.Contains(t, errs, "City is required")
	assert.Contains(t, errs, "State is required")
	assert.Contains(t, errs, "Zip Code is required")
}

func TestValidateCreateTreatsZeroPriceAsMissing(t *testing.T) {
	v := NewPropertyValidator()
	payload := validPropertyPayload()
	zero := 0.0
	payload.Price = &zero

	ok, errs := v.ValidateCreate(payload)
	require.False(t, ok)
	assert.Contains(t, errs, "Price is required")
}

func TestValidateCreateRules(t *testing.T) {
	v := NewPropertyValidator()

	tests := []struct {
		name    string
		mutate  func(*models.PropertyPayload)
		message string
	}{
		{"short title", func(p *models.PropertyPayload) { p.Title = "Hut" }, "Title must be at least 5 characters long"},
		{"long title", func(p *models.PropertyPayload) { p.Title = strings.Repeat("a", 201) }, "Title must be less than 200 characters"},
		{"negative price", func(p *models.PropertyPayload) { price := -1.0; p.Price = &price }, "Price must be greater than 0"},
		{"huge price", func(p *models.PropertyPayload) { price := 1e10; p.Price = &price }, "Price is too high"},
		{"long address", func(p *models.PropertyPayload) { p.Address = strings.Repeat("a", 256) }, "Address must be less than 255 characters"},
		{"city digits", func(p *models.PropertyPayload) { p.City = "Spring4field" }, "City can only contain letters, spaces, hyphens, and apostrophes"},
		{"zip letters", func(p *models.PropertyPayload) { p.ZipCode = "ABC123" }, "Zip code can only contain numbers, hyphens, and spaces"},
		{"negative bedrooms", func(p *models.PropertyPayload) { n := -1; p.Bedrooms = &n }, "Bedrooms cannot be negative"},
		{"too many bedrooms", func(p *models.PropertyPayload) { n := 51; p.Bedrooms = &n }, "Bedrooms seems unreasonably high"},
		{"too many bathrooms", func(p *models.PropertyPayload) { n := 21.0; p.Bathrooms = &n }, "Number of bathrooms seems unreasonably high"},
		{"year built too old", func(p *models.PropertyPayload) { n := 1750; p.YearBuilt = &n }, "Year built must be between 1800 and 2030"},
		{"year built too new", func(p *models.PropertyPayload) { n := 2050; p.YearBuilt = &n }, "Year built must be between 1800 and 2030"},
		{"latitude out of range", func(p *models.PropertyPayload) { f := 91.0; p.Latitude = &f }, "Latitude must be between -90 and 90"},
		{"longitude out of range", func(p *models.PropertyPayload) { f := -181.0; p.Longitude = &f }, "Longitude must be between -180 and 180"},
		{"unknown property type", func(p *models.PropertyPayload) { p.PropertyType = "castle" }, "Invalid property type"},
		{"unknown status", func(p *models.PropertyPayload) { p.Status = "haunted" }, "Invalid status"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validPropertyPayload()
			tt.mutate(payload)
			ok, errs := v.ValidateCreate(payload)
			require.False(t, ok)
			assert.Contains(t, errs, tt.message)
		})
	}
}

func TestValidateUpdateAllowsPartialPayload(t *testing.T) {
	v := NewPropertyValidator()

	ok, errs := v.ValidateUpdate(&models.PropertyPayload{})
	assert.True(t, ok)
	assert.Empty(t, errs)

	ok, errs = v.ValidateUpdate(&models.PropertyPayload{Status: "sold"})
	assert.True(t, ok)
	assert.Empty(t, errs)

	ok, errs = v.ValidateUpdate(&models.PropertyPayload{Title: "Hut"})
	require.False(t, ok)
	assert.Contains(t, errs, "Title must be at least 5 characters long")
}
