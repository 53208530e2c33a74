package handler

import (
	"fmt"
	"net/http"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	domainerr "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	usecaseport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// ReportRenderer turns an assembled report into a downloadable document
type ReportRenderer interface {
	Render(report *usecaseport.ReportData) ([]byte, error)
}

// AnalyticsHandler handles the derived-view and export endpoints
type AnalyticsHandler struct {
	analyticsService usecaseport.AnalyticsUseCase
	pdfRenderer      ReportRenderer
	excelRenderer    ReportRenderer
	logger           coreport.Logger
	topLimit         int
}

// NewAnalyticsHandler creates a new analytics handler instance
func NewAnalyticsHandler(
	analyticsService usecaseport.AnalyticsUseCase,
	pdfRenderer ReportRenderer,
	excelRenderer ReportRenderer,
	logger coreport.Logger,
	topLimit int,
) *AnalyticsHandler {
	if topLimit <= 0 {
		topLimit = 5
	}
	return &AnalyticsHandler{
		analyticsService: analyticsService,
		pdfRenderer:      pdfRenderer,
		excelRenderer:    excelRenderer,
		logger:           logger,
		topLimit:         topLimit,
	}
}

// Summary handles GET /api/v1/analytics/summary
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	summary, err := h.analyticsService.Summary(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// Monthly handles GET /api/v1/analytics/monthly
func (h *AnalyticsHandler) Monthly(c *gin.Context) {
	rows, err := h.analyticsService.Monthly(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// CategoryBreakdown handles GET /api/v1/analytics/category
func (h *AnalyticsHandler) CategoryBreakdown(c *gin.Context) {
	rows, err := h.analyticsService.CategoryBreakdown(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// BalanceTrend handles GET /api/v1/analytics/balance-trend
func (h *AnalyticsHandler) BalanceTrend(c *gin.Context) {
	rows, err := h.analyticsService.BalanceTrend(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// filterRequest is the POST /filter body
type filterRequest struct {
	Month      *int   `json:"month"`
	Year       *int   `json:"year"`
	Type       string `json:"type"`
	CategoryID string `json:"category_id"`
}

// Filter handles POST /api/v1/analytics/filter
func (h *AnalyticsHandler) Filter(c *gin.Context) {
	var req filterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	result, err := h.analyticsService.Filtered(c.Request.Context(), middleware.CurrentUserID(c),
		usecaseport.FilterInput{
			Month:      req.Month,
			Year:       req.Year,
			Type:       entity.CategoryType(req.Type),
			CategoryID: req.CategoryID,
		})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AdminSummary handles GET /api/v1/analytics/admin/summary
func (h *AnalyticsHandler) AdminSummary(c *gin.Context) {
	summary, err := h.analyticsService.AdminSummary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// TopCategories handles GET /api/v1/analytics/admin/top-categories
func (h *AnalyticsHandler) TopCategories(c *gin.Context) {
	limit, ok := queryInt(c, "limit")
	if !ok {
		respondError(c, domainerr.ErrMissingFields)
		return
	}
	if limit <= 0 {
		limit = h.topLimit
	}

	rows, err := h.analyticsService.TopCategories(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, rows)
}

// UserEngagement handles GET /api/v1/analytics/admin/users
func (h *AnalyticsHandler) UserEngagement(c *gin.Context) {
	engagement, err := h.analyticsService.UserEngagement(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total":          engagement.Total,
		"new_this_month": engagement.NewThisMonth,
		"active":         engagement.Active,
	})
}

// exportRequest is the optional POST /export/pdf body
type exportRequest struct {
	Month *int `json:"month"`
	Year  *int `json:"year"`
}

// ExportPDF handles POST /api/v1/analytics/export/pdf
func (h *AnalyticsHandler) ExportPDF(c *gin.Context) {
	var req exportRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, err)
			return
		}
	}

	report, err := h.analyticsService.Report(c.Request.Context(), middleware.CurrentUserID(c), req.Month, req.Year)
	if err != nil {
		respondError(c, err)
		return
	}

	payload, err := h.pdfRenderer.Render(report)
	if err != nil {
		h.logger.Error("PDF rendering failed", map[string]any{"error": err.Error()})
		respondError(c, domainerr.ErrInternalServer)
		return
	}

	filename := fmt.Sprintf("finance-report-%s.pdf", report.GeneratedAt.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", payload)
}

// ExportExcel handles GET /api/v1/analytics/export/excel
func (h *AnalyticsHandler) ExportExcel(c *gin.Context) {
	report, err := h.analyticsService.Report(c.Request.Context(), middleware.CurrentUserID(c), nil, nil)
	if err != nil {
		respondError(c, err)
		return
	}

	payload, err := h.excelRenderer.Render(report)
	if err != nil {
		h.logger.Error("Excel rendering failed", map[string]any{"error": err.Error()})
		respondError(c, domainerr.ErrInternalServer)
		return
	}

	filename := fmt.Sprintf("transactions-%s.xlsx", report.GeneratedAt.Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", payload)
}
