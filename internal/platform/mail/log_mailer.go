package mail

import (
	"context"
	"log/slog"
)

// LogMailer writes reset codes to the log instead of sending email. It is the
// fallback when SES is not configured, for local development.
type LogMailer struct{}

// NewLogMailer creates a LogMailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendResetCode logs the code instead of delivering it.
func (m *LogMailer) SendResetCode(_ context.Context, to, code string) error {
	slog.Info("password reset code (email delivery disabled)", "to", to, "code", code)
	return nil
}
