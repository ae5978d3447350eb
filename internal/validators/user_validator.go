package validators

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"aura-crm/internal/models"
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	namePattern     = regexp.MustCompile(`^[a-zA-Z\s\-'\.]+$`)
	nonDigitPattern = regexp.MustCompile(`\D`)

	upperPattern   = regexp.MustCompile(`[A-Z]`)
	lowerPattern   = regexp.MustCompile(`[a-z]`)
	digitPattern   = regexp.MustCompile(`\d`)
	specialPattern = regexp.MustCompile(`[!@#$%^&*(),.?":{}|<>]`)
)

// ValidateEmail checks format and length, failing on the first violation.
func ValidateEmail(email string) error {
	if email == "" {
		return newFieldError("email", "Email is required")
	}
	if !emailPattern.MatchString(email) {
		return newFieldError("email", "Invalid email format")
	}
	if utf8.RuneCountInString(email) > 120 {
		return newFieldError("email", "Email must be less than 120 characters")
	}
	return nil
}

// ValidatePassword enforces length plus at least one uppercase letter,
// lowercase letter, digit and special character.
func ValidatePassword(password string) error {
	if password == "" {
		return newFieldError("password", "Password is required")
	}
	if utf8.RuneCountInString(password) < 8 {
		return newFieldError("password", "Password must be at least 8 characters long")
	}
	if utf8.RuneCountInString(password) > 128 {
		return newFieldError("password", "Password must be less than 128 characters")
	}
	if !upperPattern.MatchString(password) {
		return newFieldError("password", "Password must contain at least one uppercase letter")
	}
	if !lowerPattern.MatchString(password) {
		return newFieldError("password", "Password must contain at least one lowercase letter")
	}
	if !digitPattern.MatchString(password) {
		return newFieldError("password", "Password must contain at least one number")
	}
	if !specialPattern.MatchString(password) {
		return newFieldError("password", "Password must contain at least one special character")
	}
	return nil
}

// ValidateName checks a name-like field against length and character rules.
func ValidateName(name, fieldName string) error {
	title := capitalize(fieldName)
	if name == "" {
		return newFieldError(fieldName, fmt.Sprintf("%s is required", title))
	}
	if utf8.RuneCountInString(strings.TrimSpace(name)) < 2 {
		return newFieldError(fieldName, fmt.Sprintf("%s must be at least 2 characters long", title))
	}
	if utf8.RuneCountInString(name) > 100 {
		return newFieldError(fieldName, fmt.Sprintf("%s must be less than 100 characters", title))
	}
	if !namePattern.MatchString(name) {
		return newFieldError(fieldName, fmt.Sprintf("%s can only contain letters, spaces, hyphens, and apostrophes", title))
	}
	return nil
}

// ValidatePhone accepts an absent phone; otherwise the digit count after
// stripping formatting must be between 10 and 15.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}
	digits := nonDigitPattern.ReplaceAllString(phone, "")
	if len(digits) < 10 || len(digits) > 15 {
		return newFieldError("phone", "Phone number must be between 10 and 15 digits")
	}
	return nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

type userValidator struct{}

func NewUserValidator() UserValidator {
	return &userValidator{}
}

func (v *userValidator) ValidateRegister(req *models.RegisterRequest) error {
	if err := ValidateName(req.Name, "name"); err != nil {
		return err
	}
	if err := ValidateEmail(req.Email); err != nil {
		return err
	}
	if err := ValidatePassword(req.Password); err != nil {
		return err
	}
	if err := ValidatePhone(req.Phone); err != nil {
		return err
	}
	if req.Role != "" && !models.ValidUserRole(req.Role) {
		return newFieldError("role", "Invalid role")
	}
	return nil
}

func (v *userValidator) ValidateLogin(email, password string) error {
	if email == "" {
		return newFieldError("email", "Email is required")
	}
	if password == "" {
		return newFieldError("password", "Password is required")
	}
	return ValidateEmail(email)
}

func (v *userValidator) ValidateUpdate(payload *models.UserPayload) error {
	if payload.Name != "" {
		if err := ValidateName(payload.Name, "name"); err != nil {
			return err
		}
	}
	if payload.Email != "" {
		if err := ValidateEmail(payload.Email); err != nil {
			return err
		}
	}
	if payload.Phone != "" {
		if err := ValidatePhone(payload.Phone); err != nil {
			return err
		}
	}
	if payload.BudgetMin != nil && payload.BudgetMax != nil && *payload.BudgetMin > *payload.BudgetMax {
		return newFieldError("budget_min", "Minimum budget cannot be greater than maximum budget")
	}
	return nil
}
