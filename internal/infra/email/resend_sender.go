package email

import (
	"context"

	"peterparts/config"
	"peterparts/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/resend/resend-go/v2"
)

type resendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender delivers mail through the Resend HTTP API.
func NewResendSender(cfg *config.EmailConfig) (service.EmailSender, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("email.apiKey is required for the resend provider")
	}
	if cfg.From == "" {
		return nil, errors.New("email.from is required for the resend provider")
	}

	return &resendSender{
		client: resend.NewClient(cfg.APIKey),
		from:   cfg.From,
	}, nil
}

func (s *resendSender) Send(ctx context.Context, msg *service.EmailMessage) error {
	req := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
		Text:    msg.Text,
	}

	if _, err := s.client.Emails.SendWithContext(ctx, req); err != nil {
		return errors.Wrapf(err, "resend: failed to send %q", msg.Subject)
	}

	return nil
}
