package migration

import (
	"context"
	"errors"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const defaultCategoryColor = "#4D96FF"

// SeedDefaultCategories inserts the global default categories. Defaults have
// no owner and are visible to every user. Existing rows are left untouched,
// so the seed is safe to run on every start.
func SeedDefaultCategories(ctx context.Context, db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) error {
	created := 0

	for _, seed := range entity.DefaultCategories {
		var existing model.Category
		err := db.WithContext(ctx).
			Where("user_id IS NULL AND LOWER(name) = LOWER(?)", seed.Name).
			First(&existing).Error

		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := timeProvider.Now()
		categoryModel := model.Category{
			ID:        uuid.NewString(),
			UserID:    nil,
			Name:      seed.Name,
			Type:      string(seed.Type),
			Icon:      seed.Icon,
			Color:     defaultCategoryColor,
			IsDefault: true,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := db.WithContext(ctx).Create(&categoryModel).Error; err != nil {
			return err
		}
		created++
	}

	if created > 0 {
		logger.Info("Seeded default categories", map[string]any{
			"created": created,
		})
	}
	return nil
}
