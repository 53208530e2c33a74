package handler

import (
	"net/http"
	"time"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	domainerr "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	usecaseport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/dto"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// TransactionHandler handles transaction CRUD endpoints
type TransactionHandler struct {
	transactionService usecaseport.TransactionUseCase
	logger             coreport.Logger
	latestLimit        int
}

// NewTransactionHandler creates a new transaction handler instance
func NewTransactionHandler(transactionService usecaseport.TransactionUseCase, logger coreport.Logger, latestLimit int) *TransactionHandler {
	if latestLimit <= 0 {
		latestLimit = 5
	}
	return &TransactionHandler{
		transactionService: transactionService,
		logger:             logger,
		latestLimit:        latestLimit,
	}
}

// Create handles POST /api/v1/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	input := usecaseport.CreateTransactionInput{
		CategoryID: req.CategoryID,
		Type:       entity.CategoryType(req.Type),
		Amount:     req.Amount,
		Note:       req.Note,
		Merchant:   req.Merchant,
		RawText:    req.RawText,
		AICategory: req.AICategory,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	tx, err := h.transactionService.Create(c.Request.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewTransactionResponse(tx))
}

// List handles GET /api/v1/transactions with category/type/date filters
func (h *TransactionHandler) List(c *gin.Context) {
	input, err := listInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	txs, err := h.transactionService.List(c.Request.Context(), middleware.CurrentUserID(c), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(txs))
}

// Latest handles GET /api/v1/transactions/latest
func (h *TransactionHandler) Latest(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		respondError(c, domainerr.ErrMissingFields)
		return
	}
	if limit <= 0 {
		limit = h.latestLimit
	}

	txs, err := h.transactionService.Latest(c.Request.Context(), middleware.CurrentUserID(c), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(txs))
}

// Get handles GET /api/v1/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	tx, err := h.transactionService.Get(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// Update handles PUT /api/v1/transactions/:id
func (h *TransactionHandler) Update(c *gin.Context) {
	var req dto.UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tx, err := h.transactionService.Update(c.Request.Context(),
		middleware.CurrentUserID(c), c.Param("id"),
		usecaseport.UpdateTransactionInput{
			CategoryID: req.CategoryID,
			Amount:     req.Amount,
			Date:       req.Date,
			Note:       req.Note,
			Merchant:   req.Merchant,
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponse(tx))
}

// Delete handles DELETE /api/v1/transactions/:id
func (h *TransactionHandler) Delete(c *gin.Context) {
	err := h.transactionService.Delete(c.Request.Context(), middleware.CurrentUserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "transaction deleted"})
}

// ListAll handles GET /api/v1/transactions/admin/all (admin)
func (h *TransactionHandler) ListAll(c *gin.Context) {
	input, err := listInput(c)
	if err != nil {
		respondError(c, err)
		return
	}

	txs, err := h.transactionService.ListAll(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewTransactionResponses(txs))
}

// listInput parses the shared listing filters from the query string
func listInput(c *gin.Context) (usecaseport.ListTransactionsInput, error) {
	input := usecaseport.ListTransactionsInput{
		CategoryID: c.Query("category_id"),
		Type:       entity.CategoryType(c.Query("type")),
	}

	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return input, domainerr.ErrInvalidPeriod
		}
		input.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return input, domainerr.ErrInvalidPeriod
		}
		// Make the end bound inclusive for the whole day
		end = end.Add(24*time.Hour - time.Millisecond)
		input.EndDate = &end
	}

	return input, nil
}
