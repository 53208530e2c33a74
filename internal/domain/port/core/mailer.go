package core

import "context"

// Mailer delivers plain-text notification mail. Delivery is best-effort:
// callers log failures and continue.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}
