package validators

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"aura-crm/internal/models"
)

var zipPattern = regexp.MustCompile(`^[\d\-\s]+$`)

type propertyValidator struct{}

func NewPropertyValidator() PropertyValidator {
	return &propertyValidator{}
}

// ValidateCreate aggregates every violated rule; it never stops at the first.
func (v *propertyValidator) ValidateCreate(payload *models.PropertyPayload) (bool, []string) {
	var errs []string

	if payload.Title == "" {
		errs = append(errs, "Title is required")
	}
	if payload.PropertyType == "" {
		errs = append(errs, "Property Type is required")
	}
	if payload.Price == nil || *payload.Price == 0 {
		errs = append(errs, "Price is required")
	}
	if payload.Address == "" {
		errs = append(errs, "Address is required")
	}
	if payload.City == "" {
		errs = append(errs, "City is required")
	}
	if payload.State == "" {
		errs = append(errs, "State is required")
	}
	if payload.ZipCode == "" {
		errs = append(errs, "Zip Code is required")
	}

	errs = append(errs, checkPropertyRules(payload)...)
	return len(errs) == 0, errs
}

// ValidateUpdate applies the same rules without requiring any field.
func (v *propertyValidator) ValidateUpdate(payload *models.PropertyPayload) (bool, []string) {
	errs := checkPropertyRules(payload)
	return len(errs) == 0, errs
}

func checkPropertyRules(payload *models.PropertyPayload) []string {
	var errs []string

	if payload.Title != "" {
		if utf8.RuneCountInString(payload.Title) < 5 {
			errs = append(errs, "Title must be at least 5 characters long")
		}
		if utf8.RuneCountInString(payload.Title) > 200 {
			errs = append(errs, "Title must be less than 200 characters")
		}
	}

	if payload.Price != nil && *payload.Price != 0 {
		if *payload.Price < 0 {
			errs = append(errs, "Price must be greater than 0")
		}
		if *payload.Price > 999999999 {
			errs = append(errs, "Price is too high")
		}
	}

	if payload.Address != "" && utf8.RuneCountInString(payload.Address) > 255 {
		errs = append(errs, "Address must be less than 255 characters")
	}

	if payload.City != "" {
		if utf8.RuneCountInString(payload.City) > 100 {
			errs = append(errs, "City must be less than 100 characters")
		}
		if !namePattern.MatchString(payload.City) {
			errs = append(errs, "City can only contain letters, spaces, hyphens, and apostrophes")
		}
	}

	if payload.State != "" && utf8.RuneCountInString(payload.State) > 100 {
		errs = append(errs, "State must be less than 100 characters")
	}

	if payload.ZipCode != "" {
		if !zipPattern.MatchString(payload.ZipCode) {
			errs = append(errs, "Zip code can only contain numbers, hyphens, and spaces")
		}
		if utf8.RuneCountInString(payload.ZipCode) > 20 {
			errs = append(errs, "Zip code must be less than 20 characters")
		}
	}

	errs = append(errs, checkNumericField(payload.Bedrooms, "Bedrooms", 50)...)
	errs = append(errs, checkNumericFloatField(payload.Bathrooms, "Bathrooms")...)
	errs = append(errs, checkNumericField(payload.SquareFeet, "Square Feet", 0)...)
	errs = append(errs, checkNumericFloatField(payload.LotSize, "Lot Size")...)
	errs = append(errs, checkNumericField(payload.ParkingSpaces, "Parking Spaces", 50)...)

	if payload.YearBuilt != nil {
		if *payload.YearBuilt < 0 {
			errs = append(errs, "Year Built cannot be negative")
		}
		if *payload.YearBuilt < 1800 || *payload.YearBuilt > 2030 {
			errs = append(errs, "Year built must be between 1800 and 2030")
		}
	}
	if payload.Bathrooms != nil && *payload.Bathrooms > 20 {
		errs = append(errs, "Number of bathrooms seems unreasonably high")
	}

	if payload.Latitude != nil && (*payload.Latitude < -90 || *payload.Latitude > 90) {
		errs = append(errs, "Latitude must be between -90 and 90")
	}
	if payload.Longitude != nil && (*payload.Longitude < -180 || *payload.Longitude > 180) {
		errs = append(errs, "Longitude must be between -180 and 180")
	}

	if payload.PropertyType != "" && !models.ValidPropertyType(payload.PropertyType) {
		errs = append(errs, "Invalid property type")
	}
	if payload.Status != "" && !models.ValidPropertyStatus(payload.Status) {
		errs = append(errs, "Invalid status")
	}

	return errs
}

// maxValue of 0 means no upper bound beyond the shared checks.
func checkNumericField(value *int, label string, maxValue int) []string {
	if value == nil {
		return nil
	}
	var errs []string
	if *value < 0 {
		errs = append(errs, fmt.Sprintf("%s cannot be negative", label))
	}
	if maxValue > 0 && *value > maxValue {
		errs = append(errs, fmt.Sprintf("%s seems unreasonably high", label))
	}
	return errs
}

func checkNumericFloatField(value *float64, label string) []string {
	if value == nil {
		return nil
	}
	if *value < 0 {
		return []string{fmt.Sprintf("%s cannot be negative", label)}
	}
	return nil
}
