package validators

// FieldError is a single-field validation failure. The registration-time
// primitives (email, password, name, phone) fail fast and return one of
// these; the payload validators collect every violation instead.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func newFieldError(field, message string) *FieldError {
	return &FieldError{Field: field, Message: message}
}
