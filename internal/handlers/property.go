package handlers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/models"
	"aura-crm/internal/respond"
	"aura-crm/internal/services"

	"github.com/gin-gonic/gin"
)

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(propertyService *services.PropertyService) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService}
}

// ListProperties godoc
// @Summary List properties
// @Description Public listing with filters and offset pagination
// @Tags Properties
// @Produce json
// @Param city query string false "Filter by city"
// @Param property_type query string false "Filter by property type"
// @Param status query string false "Filter by status"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param offset query int false "Pagination offset"
// @Param limit query int false "Page size (max 100)"
// @Success 200 {object} map[string]interface{}
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
	filter := models.PropertyFilter{
		City:         c.Query("city"),
		PropertyType: c.Query("property_type"),
		Status:       c.Query("status"),
	}
	if v := c.Query("min_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respond.Error(c, apperrors.BadRequest("Invalid min_price"))
			return
		}
		filter.MinPrice = &p
	}
	if v := c.Query("max_price"); v != "" {
		p, err := strconv.ParseFloat(v, 64)
		if err != nil {
			respond.Error(c, apperrors.BadRequest("Invalid max_price"))
			return
		}
		filter.MaxPrice = &p
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respond.Error(c, apperrors.BadRequest("Invalid offset"))
			return
		}
		filter.Offset = n
	}
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			respond.Error(c, apperrors.BadRequest("Invalid limit"))
			return
		}
		filter.Limit = n
	}

	page, err := h.propertyService.List(c.Request.Context(), filter, c.Request.URL.Path, c.Request.URL.Query())
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, page, "Properties fetched successfully")
}

// GetProperty godoc
// @Summary Get a property by ID
// @Tags Properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /properties/{id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	propertyID, ok := pathID(c)
	if !ok {
		return
	}

	property, cacheHit, err := h.propertyService.Get(c.Request.Context(), propertyID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Set("cache_hit", cacheHit)

	respond.Success(c, http.StatusOK, property, "Property fetched successfully")
}

// CreateProperty godoc
// @Summary Create a property
// @Description Accepts JSON or multipart form data with image files
// @Tags Properties
// @Accept json
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param property body models.PropertyPayload true "Property data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	payload, images, err := h.bindPropertyPayload(c)
	if err != nil {
		respond.Error(c, apperrors.BadRequest(err.Error()))
		return
	}

	property, err := h.propertyService.Create(c.Request.Context(), id, payload, images)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, property, "Property created successfully")
}

// UpdateProperty godoc
// @Summary Update a property
// @Tags Properties
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Param property body models.PropertyPayload true "Property fields"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /properties/{id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	propertyID, ok := pathID(c)
	if !ok {
		return
	}

	var payload models.PropertyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, apperrors.BadRequest("Invalid JSON payload"))
		return
	}

	property, err := h.propertyService.Update(c.Request.Context(), id, propertyID, &payload)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, property, "Property updated successfully")
}

// DeleteProperty godoc
// @Summary Delete a property
// @Tags Properties
// @Produce json
// @Security BearerAuth
// @Param id path int true "Property ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /properties/{id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	propertyID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.propertyService.Delete(c.Request.Context(), id, propertyID); err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, nil, fmt.Sprintf("Property %d deleted successfully", propertyID))
}

// bindPropertyPayload reads either a JSON body or a multipart form. Multipart
// forms may carry image files under the "images" field.
func (h *PropertyHandler) bindPropertyPayload(c *gin.Context) (*models.PropertyPayload, []*multipart.FileHeader, error) {
	var payload models.PropertyPayload

	contentType := c.GetHeader("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		if err := c.ShouldBind(&payload); err != nil {
			return nil, nil, fmt.Errorf("Invalid form data")
		}
		form, err := c.MultipartForm()
		if err != nil {
			return nil, nil, fmt.Errorf("Invalid form data")
		}
		return &payload, form.File["images"], nil
	}

	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, nil, fmt.Errorf("Invalid JSON payload")
	}
	return &payload, nil, nil
}
