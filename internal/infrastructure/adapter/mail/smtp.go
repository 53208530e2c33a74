package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	coreport "github.com/Alokafernando/Smart-Personal-Finance-Tracker/internal/domain/port/core"
)

// SMTPMailer sends plain-text mail through an SMTP relay
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   coreport.Logger
}

// NewSMTPMailer creates a new SMTPMailer
func NewSMTPMailer(host string, port int, username, password, from string, logger coreport.Logger) *SMTPMailer {
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		logger:   logger,
	}
}

// Send delivers a plain-text message. The context deadline is not honored by
// net/smtp mid-session, so callers should treat delivery as best-effort.
func (m *SMTPMailer) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := strings.Join([]string{
		"From: " + m.from,
		"To: " + to,
		"Subject: " + subject,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
		"",
		body,
	}, "\r\n")

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.username, m.password, m.host)

	if err := smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg)); err != nil {
		m.logger.Error("Failed to send mail", map[string]any{
			"to":      to,
			"subject": subject,
			"error":   err.Error(),
		})
		return fmt.Errorf("failed to send mail: %w", err)
	}

	m.logger.Debug("Mail sent", map[string]any{
		"to":      to,
		"subject": subject,
	})
	return nil
}
