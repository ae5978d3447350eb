package errors

import (
	"fmt"
	"net/http"
)

// AppError is a structured application error carrying both the message shown
// to clients and the technical detail kept for logs.
type AppError struct {
	Name             string
	Code             string
	HTTPStatus       int
	UserMessage      string
	TechnicalMessage string
	Errors           []string
	OriginalError    error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.OriginalError != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.OriginalError)
	}
	return e.UserMessage
}

// Unwrap returns the original error for error chaining.
func (e *AppError) Unwrap() error {
	return e.OriginalError
}

// Error codes
const (
	ErrCodeBadRequest       = "BAD_REQUEST"
	ErrCodeValidationFailed = "VALIDATION_FAILED"
	ErrCodeUnauthorized     = "UNAUTHORIZED"
	ErrCodeForbidden        = "FORBIDDEN"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeConflict         = "CONFLICT"
	ErrCodeServerError      = "SERVER_ERROR"
	ErrCodeRateLimited      = "RATE_LIMITED"
)

func BadRequest(message string) *AppError {
	return &AppError{
		Name:             "Bad Request",
		Code:             ErrCodeBadRequest,
		HTTPStatus:       http.StatusBadRequest,
		UserMessage:      message,
		TechnicalMessage: message,
	}
}

// ValidationFailed carries the full list of violated rules.
func ValidationFailed(errs []string) *AppError {
	return &AppError{
		Name:             "Validation Error",
		Code:             ErrCodeValidationFailed,
		HTTPStatus:       http.StatusBadRequest,
		UserMessage:      "Please correct the following errors",
		TechnicalMessage: fmt.Sprintf("validation failed: %v", errs),
		Errors:           errs,
	}
}

// ValidationField wraps a single fail-fast field violation.
func ValidationField(field, message string) *AppError {
	return &AppError{
		Name:             "Validation Error",
		Code:             ErrCodeValidationFailed,
		HTTPStatus:       http.StatusBadRequest,
		UserMessage:      message,
		TechnicalMessage: fmt.Sprintf("validation failed on %s: %s", field, message),
		Errors:           []string{message},
	}
}

func Unauthorized(message string) *AppError {
	return &AppError{
		Name:             "Unauthorized",
		Code:             ErrCodeUnauthorized,
		HTTPStatus:       http.StatusUnauthorized,
		UserMessage:      message,
		TechnicalMessage: message,
	}
}

func Forbidden(message string) *AppError {
	return &AppError{
		Name:             "Forbidden",
		Code:             ErrCodeForbidden,
		HTTPStatus:       http.StatusForbidden,
		UserMessage:      message,
		TechnicalMessage: message,
	}
}

func NotFound(message string) *AppError {
	return &AppError{
		Name:             "Not Found",
		Code:             ErrCodeNotFound,
		HTTPStatus:       http.StatusNotFound,
		UserMessage:      message,
		TechnicalMessage: message,
	}
}

func Conflict(message string) *AppError {
	return &AppError{
		Name:             "Conflict",
		Code:             ErrCodeConflict,
		HTTPStatus:       http.StatusConflict,
		UserMessage:      message,
		TechnicalMessage: message,
	}
}

func RateLimited() *AppError {
	return &AppError{
		Name:             "Too Many Requests",
		Code:             ErrCodeRateLimited,
		HTTPStatus:       http.StatusTooManyRequests,
		UserMessage:      MsgRateLimited,
		TechnicalMessage: "rate limit exceeded",
	}
}

// ServerError keeps the technical detail for logs; clients only ever see the
// fixed message.
func ServerError(err error) *AppError {
	technical := "unknown server error"
	if err != nil {
		technical = err.Error()
	}
	return &AppError{
		Name:             "Server Error",
		Code:             ErrCodeServerError,
		HTTPStatus:       http.StatusInternalServerError,
		UserMessage:      MsgInternalError,
		TechnicalMessage: technical,
		OriginalError:    err,
	}
}
