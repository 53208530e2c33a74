package routes

import (
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/handler"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler for registration
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Category    *handler.CategoryHandler
	Budget      *handler.BudgetHandler
	Transaction *handler.TransactionHandler
	Analytics   *handler.AnalyticsHandler
	Receipt     *handler.ReceiptHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, tokens coreport.TokenManager, logger coreport.Logger) {
	api := router.Group("/api/v1")

	authn := middleware.Auth(tokens, logger)
	adminOnly := middleware.RequireRole(entity.RoleAdmin)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Auth.Register)
		auth.POST("/login", h.Auth.Login)
		auth.POST("/admin/register", authn, adminOnly, h.Auth.RegisterAdmin)
		auth.GET("/me", authn, h.Auth.Me)
		auth.PUT("/change-password", authn, h.Auth.ChangePassword)
	}

	users := api.Group("/user", authn, adminOnly)
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Reject)
	}

	categories := api.Group("/category", authn)
	{
		categories.GET("", h.Category.List)
		categories.POST("", h.Category.Create)
		categories.PUT("/:id", h.Category.Update)
		categories.DELETE("/:id", h.Category.Delete)
	}

	budgets := api.Group("/budget", authn)
	{
		budgets.POST("", h.Budget.Create)
		budgets.GET("", h.Budget.List)
		budgets.GET("/latest", h.Budget.Latest)
		budgets.GET("/all", adminOnly, h.Budget.ListAll)
		budgets.PUT("/:id", h.Budget.Update)
		budgets.DELETE("/:id", h.Budget.Delete)
		budgets.POST("/:id/reconcile", h.Budget.Reconcile)
	}

	transactions := api.Group("/transactions", authn)
	{
		transactions.POST("", h.Transaction.Create)
		transactions.GET("", h.Transaction.List)
		transactions.GET("/latest", h.Transaction.Latest)
		transactions.GET("/admin/all", adminOnly, h.Transaction.ListAll)
		transactions.GET("/:id", h.Transaction.Get)
		transactions.PUT("/:id", h.Transaction.Update)
		transactions.DELETE("/:id", h.Transaction.Delete)
	}

	analytics := api.Group("/analytics", authn)
	{
		analytics.GET("/summary", h.Analytics.Summary)
		analytics.GET("/monthly", h.Analytics.Monthly)
		analytics.GET("/category", h.Analytics.CategoryBreakdown)
		analytics.GET("/balance-trend", h.Analytics.BalanceTrend)
		analytics.POST("/filter", h.Analytics.Filter)
		analytics.POST("/export/pdf", h.Analytics.ExportPDF)
		analytics.GET("/export/excel", h.Analytics.ExportExcel)

		admin := analytics.Group("/admin", adminOnly)
		{
			admin.GET("/summary", h.Analytics.AdminSummary)
			admin.GET("/top-categories", h.Analytics.TopCategories)
			admin.GET("/users", h.Analytics.UserEngagement)
		}
	}

	ocr := api.Group("/ocr", authn)
	{
		ocr.POST("/receipt", h.Receipt.Scan)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
}
