package errors

// User-facing messages
const (
	MsgInternalError      = "Something went wrong on our end. Please try again later."
	MsgInvalidCredentials = "Invalid credentials"
	MsgRateLimited        = "You're making requests too quickly! Please wait a moment and try again."
	MsgEmailExists        = "Email already exists"
)
