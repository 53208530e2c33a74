package mail

import (
	"context"

	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
)

// NoopMailer drops messages. Used when mail delivery is disabled.
type NoopMailer struct {
	logger coreport.Logger
}

// NewNoopMailer creates a mailer that only logs
func NewNoopMailer(logger coreport.Logger) *NoopMailer {
	return &NoopMailer{logger: logger}
}

// Send logs the message instead of delivering it
func (m *NoopMailer) Send(ctx context.Context, to, subject, body string) error {
	m.logger.Debug("Mail delivery disabled, dropping message", map[string]any{
		"to":      to,
		"subject": subject,
	})
	return nil
}
