package migration

import (
	"context"
	"errors"
	"time"

	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

const (
	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = "1.0.0"
)

// MigrationManager manages database migrations
type MigrationManager struct {
	db           *gorm.DB
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:           db,
		logger:       logger,
		timeProvider: timeProvider,
	}
}

// MigrateAll performs all migrations and seeds the default categories
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	// Create migration version table first
	if err := m.db.AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion != CurrentSchemaVersion {
		if err := m.autoMigrateModels(); err != nil {
			m.logger.Error("Failed to auto-migrate models", map[string]any{
				"error": err.Error(),
			})
			return err
		}

		if err := m.createIndexes(); err != nil {
			m.logger.Error("Failed to create indexes", map[string]any{
				"error": err.Error(),
			})
			return err
		}

		if err := m.setVersion(ctx, CurrentSchemaVersion, "Full schema migration"); err != nil {
			m.logger.Error("Failed to update schema version", map[string]any{
				"error":   err.Error(),
				"version": CurrentSchemaVersion,
			})
			return err
		}
	} else {
		m.logger.Info("Database already at target version, skipping schema migration", map[string]any{
			"version": currentVersion,
		})
	}

	// Seeding is idempotent and runs on every start so new defaults appear
	// after upgrades
	if err := SeedDefaultCategories(ctx, m.db, m.logger, m.timeProvider); err != nil {
		m.logger.Error("Failed to seed default categories", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("applied_at desc").First(&version)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil // No version found
		}
		return "", result.Error
	}

	return version.Version, nil
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	var appliedAt time.Time
	if m.timeProvider != nil {
		appliedAt = m.timeProvider.Now()
	} else {
		appliedAt = time.Now()
	}

	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: appliedAt,
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// autoMigrateModels auto-migrates database models
func (m *MigrationManager) autoMigrateModels() error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Transaction{},
		&model.Budget{},
	)
}

// createIndexes creates indexes AutoMigrate cannot express
func (m *MigrationManager) createIndexes() error {
	m.logger.Info("Creating database indexes", nil)

	// Composite index for period-scoped transaction aggregations
	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_transactions_user_date ON transactions (user_id, date)").Error; err != nil {
		return err
	}

	// Case-insensitive category name lookups used by the receipt scanner
	if err := m.db.Exec("CREATE INDEX IF NOT EXISTS idx_categories_lower_name ON categories (LOWER(name))").Error; err != nil {
		return err
	}

	return nil
}
