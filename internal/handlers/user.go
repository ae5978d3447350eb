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

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// ListUsers godoc
// @Summary List users
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	users, err := h.userService.List(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, users, "Users fetched successfully")
}

// CreateUser godoc
// @Summary Create a user
// @Description Admin-only account provisioning
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user body models.RegisterRequest true "User data"
// @Success 201 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, apperrors.BadRequest("Invalid JSON payload"))
		return
	}

	user, err := h.userService.Create(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, user, "User created successfully")
}

// GetUser godoc
// @Summary Get a user by ID
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	userID, ok := pathID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, user, "User fetched successfully")
}

// UpdateUser godoc
// @Summary Update a user
// @Tags Users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param user body models.UserPayload true "User fields"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	userID, ok := pathID(c)
	if !ok {
		return
	}

	var payload models.UserPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respond.Error(c, apperrors.BadRequest("Invalid JSON payload"))
		return
	}

	user, err := h.userService.Update(c.Request.Context(), id, userID, &payload)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, user, "User updated successfully")
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}
	userID, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, nil, fmt.Sprintf("User %d deleted successfully", userID))
}
