// Package mail provides outbound email delivery for verification codes.
package mail

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"wellness_backend/internal/shared/ratelimiter"
)

// SESMailer sends email through Amazon SES. SES enforces a per-second send
// quota, so sends pass through a rate limiter before hitting the API.
type SESMailer struct {
	client  *ses.Client
	from    string
	limiter ratelimiter.RateLimiterInterface
}

// NewSESMailer builds an SES client from the default AWS credential chain.
func NewSESMailer(ctx context.Context, region, from string, limiter ratelimiter.RateLimiterInterface) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &SESMailer{
		client:  ses.NewFromConfig(cfg),
		from:    from,
		limiter: limiter,
	}, nil
}

// SendResetCode emails a password-reset verification code to the user.
func (m *SESMailer) SendResetCode(ctx context.Context, to, code string) error {
	subject := "Password Reset Code"
	body := fmt.Sprintf("Your password reset code is: %s\n\nThe code expires in 15 minutes. Use it in the app to set a new password.", code)
	return m.send(ctx, to, subject, body)
}

func (m *SESMailer) send(ctx context.Context, to, subject, body string) error {
	if m.limiter != nil {
		m.limiter.WaitIfNeeded()
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(m.from),
	}

	if _, err := m.client.SendEmail(ctx, input); err != nil {
		slog.Error("ses send failed", "to", to, "error", err)
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
