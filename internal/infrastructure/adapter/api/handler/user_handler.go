package handler

import (
	"net/http"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	domainerr "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	usecaseport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// UserHandler handles the admin account management endpoints
type UserHandler struct {
	userService usecaseport.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService usecaseport.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// List handles GET /api/v1/user
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(users),
		"users": dto.NewUserResponses(users),
	})
}

// Get handles GET /api/v1/user/:id
func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Update handles PUT /api/v1/user/:id
func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	input := usecaseport.UpdateUserInput{
		Username:   req.Username,
		ProfileURL: req.ProfileURL,
	}
	if req.Approved != nil {
		status := entity.ApprovalStatus(*req.Approved)
		if !entity.ValidStatus(status) {
			respondError(c, domainerr.ErrMissingFields)
			return
		}
		input.Approved = &status
	}

	user, err := h.userService.Update(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Reject handles DELETE /api/v1/user/:id. Accounts are deactivated, never
// removed.
func (h *UserHandler) Reject(c *gin.Context) {
	user, err := h.userService.Reject(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}
