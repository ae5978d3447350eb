package handlers

import (
	"net/http"

	apperrors "aura-crm/internal/errors"
	"aura-crm/internal/models"
	"aura-crm/internal/respond"
	"aura-crm/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	userService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// Register godoc
// @Summary Register a new account
// @Description Create an account and return a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "Registration data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 409 {object} map[string]interface{}
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, apperrors.BadRequest("Invalid JSON payload"))
		return
	}

	user, token, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusCreated, gin.H{"user": user, "token": token}, "User registered successfully")
}

// Login godoc
// @Summary Log in
// @Description Authenticate and return a bearer token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, apperrors.BadRequest("Invalid JSON payload"))
		return
	}

	user, token, err := h.userService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, gin.H{"user": user, "token": token}, "Login successful")
}

// Me godoc
// @Summary Current account
// @Description Return the authenticated caller's account
// @Tags Authentication
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	id, ok := identity(c)
	if !ok {
		return
	}

	user, err := h.userService.Me(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	respond.Success(c, http.StatusOK, user, "")
}
