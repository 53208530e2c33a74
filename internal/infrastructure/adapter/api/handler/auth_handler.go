package handler

import (
	"net/http"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	usecaseport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/dto"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and self-service account requests
type AuthHandler struct {
	authService usecaseport.AuthUseCase
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(authService usecaseport.AuthUseCase, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Register handles POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	h.register(c, entity.RoleUser)
}

// RegisterAdmin handles POST /api/v1/auth/admin/register
func (h *AuthHandler) RegisterAdmin(c *gin.Context) {
	h.register(c, entity.RoleAdmin)
}

func (h *AuthHandler) register(c *gin.Context, role entity.Role) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), usecaseport.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		ProfileURL: req.ProfileURL,
	}, role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// Login handles POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: result.AccessToken,
		User:        dto.NewUserResponse(result.User),
	})
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.authService.GetProfile(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// ChangePassword handles PUT /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	err := h.authService.ChangePassword(c.Request.Context(),
		middleware.CurrentUserID(c), req.CurrentPassword, req.NewPassword)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}
