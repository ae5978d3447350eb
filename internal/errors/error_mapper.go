package errors

import (
	stderrors "errors"

	"aura-crm/internal/validators"

	"gorm.io/gorm"
)

// MapError converts any error into an AppError. Unrecognized errors become a
// redacted server error; the raw message survives only in TechnicalMessage.
func MapError(err error) *AppError {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}

	var fieldErr *validators.FieldError
	if stderrors.As(err, &fieldErr) {
		return ValidationField(fieldErr.Field, fieldErr.Message)
	}

	switch {
	case stderrors.Is(err, gorm.ErrRecordNotFound):
		return NotFound("Resource not found")
	case stderrors.Is(err, gorm.ErrDuplicatedKey):
		return Conflict("Email already exists")
	default:
		return ServerError(err)
	}
}
