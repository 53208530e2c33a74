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

// CategoryHandler handles category management endpoints
type CategoryHandler struct {
	categoryService usecaseport.CategoryUseCase
	logger          coreport.Logger
}

// NewCategoryHandler creates a new category handler instance
func NewCategoryHandler(categoryService usecaseport.CategoryUseCase, logger coreport.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// List handles GET /api/v1/category
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryResponses(categories))
}

// Create handles POST /api/v1/category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), middleware.CurrentUserID(c),
		usecaseport.CreateCategoryInput{
			Name:  req.Name,
			Type:  entity.CategoryType(req.Type),
			Icon:  req.Icon,
			Color: req.Color,
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewCategoryResponse(category))
}

// Update handles PUT /api/v1/category/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	input := usecaseport.UpdateCategoryInput{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
	}
	if req.Type != nil {
		catType := entity.CategoryType(*req.Type)
		input.Type = &catType
	}

	category, err := h.categoryService.Update(c.Request.Context(),
		middleware.CurrentUserID(c), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCategoryResponse(category))
}

// Delete handles DELETE /api/v1/category/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	err := h.categoryService.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "category deleted"})
}
