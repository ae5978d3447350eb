package respond

import (
	apperrors "aura-crm/internal/errors"

	"github.com/gin-gonic/gin"
)

// Success writes the uniform success envelope.
func Success(c *gin.Context, status int, data interface{}, message string) {
	body := gin.H{
		"status": "success",
		"data":   data,
	}
	if message != "" {
		body["message"] = message
	}
	c.JSON(status, body)
}

// Error writes the uniform error envelope from an AppError.
func Error(c *gin.Context, appErr *apperrors.AppError) {
	body := gin.H{
		"status": "error",
		"error":  appErr.Name,
	}
	if appErr.UserMessage != "" {
		body["message"] = appErr.UserMessage
	}
	if len(appErr.Errors) > 0 {
		body["errors"] = appErr.Errors
	}
	c.JSON(appErr.HTTPStatus, body)
}
