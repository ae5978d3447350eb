package validators

import (
	"aura-crm/internal/models"
)

type UserValidator interface {
	ValidateRegister(req *models.RegisterRequest) error
	ValidateLogin(email, password string) error
	ValidateUpdate(payload *models.UserPayload) error
}

type PropertyValidator interface {
	ValidateCreate(payload *models.PropertyPayload) (bool, []string)
	ValidateUpdate(payload *models.PropertyPayload) (bool, []string)
}

type LeadValidator interface {
	Validate(payload *models.LeadPayload) (bool, []string)
}
