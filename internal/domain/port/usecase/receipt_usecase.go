package usecase

import (
	"context"

	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/entity"
)

// ReceiptDraft is the transaction suggestion extracted from a receipt image.
// The heuristics are best-effort: a wrong guess is returned silently, never
// reported as an error.
type ReceiptDraft struct {
	Merchant   string              `json:"merchant"`
	Amount     string              `json:"amount"`
	Date       string              `json:"date"`
	AICategory string              `json:"ai_category"`
	CategoryID string              `json:"category_id"`
	Type       entity.CategoryType `json:"type"`
	RawText    string              `json:"raw_text"`
}

// ReceiptUseCase turns an uploaded receipt image into a transaction draft.
type ReceiptUseCase interface {
	Scan(ctx context.Context, userID, filename string, image []byte) (*ReceiptDraft, error)
}
