package ocr

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
)

// Client extracts text from receipt images through an external OCR service.
// The service takes a multipart image upload and answers with the
// recognized text as JSON.
type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	logger     coreport.Logger
}

// NewClient creates a new OCR client
func NewClient(endpoint, apiKey string, timeout time.Duration, logger coreport.Logger) *Client {
	return &Client{
		endpoint: endpoint,
		apiKey:   apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// extractResponse is the service's answer shape
type extractResponse struct {
	Text  string `json:"text"`
	Error string `json:"error"`
}

// ExtractText sends the image to the OCR service and returns the raw text
func (c *Client) ExtractText(ctx context.Context, filename string, image []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := part.Write(image); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build OCR request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("OCR request failed", map[string]any{
			"endpoint": c.endpoint,
			"error":    err.Error(),
		})
		return "", fmt.Errorf("OCR request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("failed to read OCR response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("OCR service returned an error", map[string]any{
			"endpoint": c.endpoint,
			"status":   resp.StatusCode,
		})
		return "", fmt.Errorf("OCR service returned status %d", resp.StatusCode)
	}

	var parsed extractResponse
	if err := json.Unmarshal(payload, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode OCR response: %w", err)
	}
	if parsed.Error != "" {
		return "", fmt.Errorf("OCR processing failed: %s", parsed.Error)
	}

	c.logger.Debug("OCR extraction completed", map[string]any{
		"filename": filename,
		"elapsed":  time.Since(start).String(),
		"chars":    len(parsed.Text),
	})

	return parsed.Text, nil
}
