package core

import "context"

// TextExtractor turns a receipt image into raw text. The extraction engine is
// an opaque external service.
type TextExtractor interface {
	ExtractText(ctx context.Context, filename string, image []byte) (string, error)
}
