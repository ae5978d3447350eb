package handlers

import (
	"strconv"

	"aura-crm/internal/authz"
	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/middleware"
	"aura-crm/internal/respond"
	"aura-crm/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps any error to the envelope, logging technical detail.
func respondError(c *gin.Context, err error) {
	appErr := apperrors.MapError(err)
	if appErr.HTTPStatus >= 500 {
		logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, error=%s",
			c.Request.URL.Path, c.Request.Method, appErr.TechnicalMessage)
	}
	respond.Error(c, appErr)
}

// identity pulls the authenticated caller or writes a 401.
func identity(c *gin.Context) (authz.Identity, bool) {
	id, ok := middleware.IdentityFromContext(c)
	if !ok {
		respond.Error(c, apperrors.Unauthorized("authentication required"))
		return authz.Identity{}, false
	}
	return id, true
}

// pathID parses the numeric :id path parameter. A well-formed id that
// cannot match any row, such as 0, reads as a missing record.
func pathID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respond.Error(c, apperrors.BadRequest("Invalid ID"))
		return 0, false
	}
	if id == 0 {
		respond.Error(c, apperrors.NotFound("Record not found"))
		return 0, false
	}
	return uint(id), true
}
