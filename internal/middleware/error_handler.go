package middleware

import (
	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/respond"
	"aura-crm/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached to the context into envelope responses.
// Technical detail is logged here and never serialized to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			appErr := apperrors.MapError(err)

			logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, error=%s",
				c.Request.URL.Path,
				c.Request.Method,
				c.ClientIP(),
				appErr.TechnicalMessage)

			respond.Error(c, appErr)
		}
	}
}
