package handler

import (
	"net/http"
	"strconv"

	domainerr "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	usecaseport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/dto"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// BudgetHandler handles budget management endpoints
type BudgetHandler struct {
	budgetService usecaseport.BudgetUseCase
	logger        coreport.Logger
	latestLimit   int
}

// NewBudgetHandler creates a new budget handler instance
func NewBudgetHandler(budgetService usecaseport.BudgetUseCase, logger coreport.Logger, latestLimit int) *BudgetHandler {
	if latestLimit <= 0 {
		latestLimit = 5
	}
	return &BudgetHandler{
		budgetService: budgetService,
		logger:        logger,
		latestLimit:   latestLimit,
	}
}

// Create handles POST /api/v1/budget
func (h *BudgetHandler) Create(c *gin.Context) {
	var req dto.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	budget, err := h.budgetService.Create(c.Request.Context(), middleware.CurrentUserID(c),
		usecaseport.CreateBudgetInput{
			CategoryID: req.CategoryID,
			Amount:     req.Amount,
			Month:      req.Month,
			Year:       req.Year,
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewBudgetResponse(budget))
}

// List handles GET /api/v1/budget with optional month/year query filters
func (h *BudgetHandler) List(c *gin.Context) {
	month, ok := queryInt(c, "month")
	if !ok {
		respondError(c, domainerr.ErrInvalidPeriod)
		return
	}
	year, ok := queryInt(c, "year")
	if !ok {
		respondError(c, domainerr.ErrInvalidPeriod)
		return
	}

	budgets, err := h.budgetService.List(c.Request.Context(), middleware.CurrentUserID(c), month, year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponses(budgets))
}

// Latest handles GET /api/v1/budget/latest
func (h *BudgetHandler) Latest(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		respondError(c, domainerr.ErrMissingFields)
		return
	}
	if limit <= 0 {
		limit = h.latestLimit
	}

	budgets, err := h.budgetService.Latest(c.Request.Context(), middleware.CurrentUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponses(budgets))
}

// ListAll handles GET /api/v1/budget/all (admin)
func (h *BudgetHandler) ListAll(c *gin.Context) {
	budgets, err := h.budgetService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponses(budgets))
}

// Update handles PUT /api/v1/budget/:id
func (h *BudgetHandler) Update(c *gin.Context) {
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	budget, err := h.budgetService.Update(c.Request.Context(),
		middleware.CurrentUserID(c), c.Param("id"),
		usecaseport.UpdateBudgetInput{
			CategoryID: req.CategoryID,
			Amount:     req.Amount,
			Month:      req.Month,
			Year:       req.Year,
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// Delete handles DELETE /api/v1/budget/:id
func (h *BudgetHandler) Delete(c *gin.Context) {
	err := h.budgetService.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "budget deleted"})
}

// Reconcile handles POST /api/v1/budget/:id/reconcile
func (h *BudgetHandler) Reconcile(c *gin.Context) {
	budget, err := h.budgetService.Reconcile(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// queryInt parses an optional integer query parameter; absent means 0
func queryInt(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return val, true
}
