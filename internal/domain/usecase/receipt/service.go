package receipt

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
	errs "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/persistence"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
)

// Service implements the receipt use case: raw OCR text in, transaction
// draft out. The OCR engine is an external collaborator behind the
// TextExtractor port.
type Service struct {
	extractor    coreport.TextExtractor
	categories   persistence.CategoryRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a receipt service instance
func NewService(
	extractor coreport.TextExtractor,
	categories persistence.CategoryRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.ReceiptUseCase {
	return &Service{
		extractor:    extractor,
		categories:   categories,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Scan runs OCR on the uploaded image and applies the field heuristics. The
// guessed category is resolved against the user's categories and created for
// them when missing.
func (s *Service) Scan(ctx context.Context, userID, filename string, image []byte) (*usecase.ReceiptDraft, error) {
	if len(image) == 0 {
		return nil, errs.ErrMissingFields
	}

	rawText, err := s.extractor.ExtractText(ctx, filename, image)
	if err != nil {
		s.logger.Error("OCR extraction failed", map[string]any{
			"user_id":  userID,
			"filename": filename,
			"error":    err.Error(),
		})
		return nil, fmt.Errorf("%w: %s", errs.ErrInternalServer, err.Error())
	}

	rawText = strings.TrimSpace(rawText)
	if rawText == "" {
		return nil, fmt.Errorf("%w: OCR returned empty text", errs.ErrInternalServer)
	}

	amount := extractAmount(rawText)
	merchant := extractMerchant(rawText)
	name, catType := extractCategory(rawText)

	category, err := s.resolveCategory(ctx, userID, name, catType)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Receipt scanned", map[string]any{
		"user_id":  userID,
		"merchant": merchant,
		"amount":   amount,
		"category": category.Name,
	})

	return &usecase.ReceiptDraft{
		Merchant:   merchant,
		Amount:     amount,
		Date:       s.timeProvider.Now().Format("2006-01-02"),
		AICategory: category.Name,
		CategoryID: category.ID,
		Type:       catType,
		RawText:    rawText,
	}, nil
}

// resolveCategory finds the guessed category among the user's visible
// categories, creating a user-owned one when no match exists.
func (s *Service) resolveCategory(ctx context.Context, userID, name string, catType entity.CategoryType) (*entity.Category, error) {
	category, err := s.categories.FindByName(ctx, userID, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, errs.ErrCategoryNotFound) {
		return nil, err
	}

	category, err = entity.NewCategory(userID, name, catType, "📁", "#6366f1", s.timeProvider.Now())
	if err != nil {
		return nil, err
	}
	if err := s.categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}
