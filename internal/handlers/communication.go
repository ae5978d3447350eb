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

type CommunicationHandler struct {
	communicationService *services.CommunicationService
}

func NewCommunicationHandler(communicationService *services.CommunicationService) *CommunicationHandler {
	return &CommunicationHandler{communicationService: communicationService}
}

// CreateCommunication godoc
// @Summary Create a message on a lead
// @Tags Communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param communication body models.CommunicationPayload true "Message data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /communications [post]
func (h *CommunicationHandler) CreateCommunication(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var payload models.CommunicationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, apperrors.BadRequest("Invalid JSON payload"))
		return
	}

	comm, err := h.communicationService.Create(c.Request.Context(), id, &payload)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, comm, "Message sent successfully")
}

// ListCommunications godoc
// @Summary List messages
// @Description Clients see only messages on their own leads
// @Tags Communications
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Router /communications [get]
func (h *CommunicationHandler) ListCommunications(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	comms, err := h.communicationService.List(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, comms, "Messages fetched successfully")
}

// UpdateCommunication godoc
// @Summary Update a message
// @Description Edits the message body or toggles the read flag
// @Tags Communications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Communication ID"
// @Param communication body models.CommunicationPayload true "Message fields"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /communications/{id} [put]
func (h *CommunicationHandler) UpdateCommunication(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	commID, ok := pathID(c)
	if !ok {
		return
	}

	var payload models.CommunicationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, apperrors.BadRequest("Invalid JSON payload"))
		return
	}

	comm, err := h.communicationService.Update(c.Request.Context(), id, commID, &payload)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, comm, "Message updated successfully")
}

// DeleteCommunication godoc
// @Summary Delete a message
// @Tags Communications
// @Produce json
// @Security BearerAuth
// @Param id path int true "Communication ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /communications/{id} [delete]
func (h *CommunicationHandler) DeleteCommunication(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	commID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.communicationService.Delete(c.Request.Context(), id, commID); err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, nil, fmt.Sprintf("Message %d deleted successfully", commID))
}
