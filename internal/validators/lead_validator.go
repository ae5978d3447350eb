package validators

import (
	"unicode/utf8"

	"aura-crm/internal/models"
)

type leadValidator struct{}

func NewLeadValidator() LeadValidator {
	return &leadValidator{}
}

// Validate aggregates every violated rule for a lead payload.
func (v *leadValidator) Validate(payload *models.LeadPayload) (bool, []string) {
	var errs []string

	if payload.BudgetMin != nil && payload.BudgetMax != nil {
		if *payload.BudgetMin > *payload.BudgetMax {
			errs = append(errs, "Minimum budget cannot be greater than maximum budget")
		}
		if *payload.BudgetMin < 0 || *payload.BudgetMax < 0 {
			errs = append(errs, "Budget values cannot be negative")
		}
	}

	if payload.PreferredContact != "" && !models.ValidContactMethod(payload.PreferredContact) {
		errs = append(errs, "Invalid contact preference")
	}
	if payload.PreferredContactTime != "" && !models.ValidContactTime(payload.PreferredContactTime) {
		errs = append(errs, "Invalid contact time preference")
	}
	if payload.Status != "" && !models.ValidLeadStatus(payload.Status) {
		errs = append(errs, "Invalid lead status")
	}
	if payload.DesiredPropertyType != "" && !models.ValidPropertyType(payload.DesiredPropertyType) {
		errs = append(errs, "Invalid desired property type")
	}

	if payload.DesiredBedrooms != nil && *payload.DesiredBedrooms < 0 {
		errs = append(errs, "Desired bedrooms cannot be negative")
	}
	if payload.DesiredBathrooms != nil && *payload.DesiredBathrooms < 0 {
		errs = append(errs, "Desired bathrooms cannot be negative")
	}

	if utf8.RuneCountInString(payload.Source) > 100 {
		errs = append(errs, "Source must be less than 100 characters")
	}
	if utf8.RuneCountInString(payload.DesiredLocation) > 500 {
		errs = append(errs, "Desired location must be less than 500 characters")
	}
	if utf8.RuneCountInString(payload.DesiredPropertyType) > 500 {
		errs = append(errs, "Desired property type must be less than 500 characters")
	}

	return len(errs) == 0, errs
}
