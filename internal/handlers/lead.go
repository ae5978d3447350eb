package handlers

import (
	"fmt"
	"net/http"

	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/models"
	"aura-crm/internal/respond"
	"aura-crm/internal/services"

	"github.com/gin-gonic/gin"
)

type LeadHandler struct {
	leadService *services.LeadService
}

func NewLeadHandler(leadService *services.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// CreateLead godoc
// @Summary Create a lead
// @Description Clients create leads for themselves; agents and admins must name the client
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param lead body models.LeadPayload true "Lead data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Router /leads [post]
func (h *LeadHandler) CreateLead(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var payload models.LeadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, apperrors.BadRequest("Invalid JSON payload"))
		return
	}

	lead, err := h.leadService.Create(c.Request.Context(), id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, lead, "Lead created successfully")
}

// ListLeads godoc
// @Summary List leads
// @Description Clients see only their own leads; agents and admins see all
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /leads [get]
func (h *LeadHandler) ListLeads(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	leads, err := h.leadService.List(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, leads, "Leads fetched successfully")
}

// GetLead godoc
// @Summary Get a lead by ID
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /leads/{id} [get]
func (h *LeadHandler) GetLead(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	leadID, ok := pathID(c)
	if !ok {
		return
	}

	lead, err := h.leadService.Get(c.Request.Context(), id, leadID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, lead, "Lead fetched successfully")
}

// UpdateLead godoc
// @Summary Update a lead
// @Description Status and assignment fields require agent or admin role
// @Tags Leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Param lead body models.LeadPayload true "Lead fields"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /leads/{id} [put]
func (h *LeadHandler) UpdateLead(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	leadID, ok := pathID(c)
	if !ok {
		return
	}

	var payload models.LeadPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, apperrors.BadRequest("Invalid JSON payload"))
		return
	}

	lead, err := h.leadService.Update(c.Request.Context(), id, leadID, &payload)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, lead, "Lead updated successfully")
}

// DeleteLead godoc
// @Summary Delete a lead
// @Tags Leads
// @Produce json
// @Security BearerAuth
// @Param id path int true "Lead ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /leads/{id} [delete]
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	leadID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.leadService.Delete(c.Request.Context(), id, leadID); err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, nil, fmt.Sprintf("Lead %d deleted successfully", leadID))
}
