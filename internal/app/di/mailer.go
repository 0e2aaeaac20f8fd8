package di

import (
	"context"
	"log/slog"
	"time"

	"wellness_backend/internal/app/config"
	"wellness_backend/internal/feature/auth/usecase"
	"wellness_backend/internal/platform/mail"
	"wellness_backend/internal/shared/ratelimiter"
)

// NewMailer creates a Mailer implementation. With a configured SES region and
// sender it returns the SES-backed mailer; otherwise reset codes go to the
// log, which is only suitable for local development.
func NewMailer(ctx context.Context, cfg config.MailConfig) usecase.Mailer {
	if cfg.Region == "" || cfg.From == "" {
		slog.Warn("SES not configured, reset codes will be logged instead of emailed")
		return mail.NewLogMailer()
	}

	limiter := ratelimiter.NewRateLimiter(cfg.SendsPerMinute, time.Minute)
	m, err := mail.NewSESMailer(ctx, cfg.Region, cfg.From, limiter)
	if err != nil {
		slog.Error("SES init failed, falling back to log mailer", "error", err)
		return mail.NewLogMailer()
	}
	return m
}
