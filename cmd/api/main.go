package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	analyticsUseCase "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/usecase/analytics"
	authUseCase "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/usecase/auth"
	budgetUseCase "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/usecase/budget"
	categoryUseCase "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/usecase/category"
	receiptUseCase "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/usecase/receipt"
	transactionUseCase "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/usecase/transaction"
	userUseCase "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/usecase/user"

	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/handler"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/routes"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/auth"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/database"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/database/migration"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/export"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/logger"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/mail"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/ocr"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/repository"
	timeProvider "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/time"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)
	appLogger.SetLevel(parseLogLevel(cfg.Logger.Level))
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	dbConfig := &database.Config{
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Database.LogLevel,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}

	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	migrationMgr := migration.NewMigrationManager(dbManager.DB(), appLogger, tp)
	if err := migrationMgr.MigrateAll(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Repositories
	userRepo := repository.NewUserRepository(dbManager.DB(), appLogger)
	categoryRepo := repository.NewCategoryRepository(dbManager.DB(), appLogger)
	transactionRepo := repository.NewTransactionRepository(dbManager.DB(), appLogger)
	budgetRepo := repository.NewBudgetRepository(dbManager.DB(), appLogger)
	uow := database.NewUnitOfWork(dbManager.DB(), appLogger)

	// Outbound adapters
	tokens := auth.NewJWTTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, tp)
	hasher := auth.NewBcryptHasher(cfg.Auth.BcryptCost)
	var mailer coreport.Mailer
	if cfg.Mail.Enabled {
		mailer = mail.NewSMTPMailer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username,
			cfg.Mail.Password, cfg.Mail.From, appLogger)
	} else {
		mailer = mail.NewNoopMailer(appLogger)
	}
	extractor := ocr.NewClient(cfg.OCR.Endpoint, cfg.OCR.APIKey, cfg.OCR.Timeout, appLogger)

	// Use cases
	authService := authUseCase.NewService(userRepo, hasher, tokens, mailer, tp, appLogger)
	userService := userUseCase.NewService(userRepo, mailer, tp, appLogger)
	categoryService := categoryUseCase.NewService(categoryRepo, tp, appLogger)
	budgetService := budgetUseCase.NewService(budgetRepo, transactionRepo, categoryRepo, tp, appLogger)
	transactionService := transactionUseCase.NewService(uow, transactionRepo, categoryRepo, tp, appLogger)
	analyticsService := analyticsUseCase.NewService(transactionRepo, categoryRepo, userRepo, tp, appLogger)
	receiptService := receiptUseCase.NewService(extractor, categoryRepo, tp, appLogger)

	// HTTP layer
	handlers := routes.Handlers{
		Auth:        handler.NewAuthHandler(authService, appLogger),
		User:        handler.NewUserHandler(userService, appLogger),
		Category:    handler.NewCategoryHandler(categoryService, appLogger),
		Budget:      handler.NewBudgetHandler(budgetService, appLogger, cfg.Analytics.LatestLimit),
		Transaction: handler.NewTransactionHandler(transactionService, appLogger, cfg.Analytics.LatestLimit),
		Analytics: handler.NewAnalyticsHandler(analyticsService, export.NewPDFExporter(),
			export.NewExcelExporter(), appLogger, cfg.Analytics.TopCategoriesLimit),
		Receipt: handler.NewReceiptHandler(receiptService, appLogger),
	}

	router := gin.New()
	routes.SetupMiddlewares(router, appLogger)
	routes.SetupRoutes(router, handlers, tokens, appLogger)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

func parseLogLevel(level string) coreport.LogLevel {
	switch level {
	case "debug":
		return coreport.LogLevelDebug
	case "warn":
		return coreport.LogLevelWarn
	case "error":
		return coreport.LogLevelError
	default:
		return coreport.LogLevelInfo
	}
}
