package handler

import (
	"io"
	"net/http"

	domainerr "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/error"
	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
	usecaseport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/usecase"
	"github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// maxReceiptBytes bounds receipt uploads to 10 MiB
const maxReceiptBytes = 10 << 20

// ReceiptHandler handles the receipt scanning endpoint
type ReceiptHandler struct {
	receiptService usecaseport.ReceiptUseCase
	logger         coreport.Logger
}

// NewReceiptHandler creates a new receipt handler instance
func NewReceiptHandler(receiptService usecaseport.ReceiptUseCase, logger coreport.Logger) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
		logger:         logger,
	}
}

// Scan handles POST /api/v1/ocr/receipt with a multipart "receipt" file
func (h *ReceiptHandler) Scan(c *gin.Context) {
	fileHeader, err := c.FormFile("receipt")
	if err != nil {
		respondError(c, domainerr.ErrMissingFields)
		return
	}
	if fileHeader.Size > maxReceiptBytes {
		respondError(c, domainerr.ErrMissingFields)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, domainerr.ErrInternalServer)
		return
	}
	defer func() { _ = file.Close() }()

	image, err := io.ReadAll(io.LimitReader(file, maxReceiptBytes))
	if err != nil {
		respondError(c, domainerr.ErrInternalServer)
		return
	}

	draft, err := h.receiptService.Scan(c.Request.Context(),
		middleware.CurrentUserID(c), fileHeader.Filename, image)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, draft)
}
