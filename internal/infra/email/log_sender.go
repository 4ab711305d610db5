package email

import (
	"context"
	"log/slog"

	"peterparts/internal/domain/service"
)

type logSender struct {
	logger *slog.Logger
}

// NewLogSender writes messages to the logger instead of delivering them.
// Used for local development.
func NewLogSender(logger *slog.Logger) service.EmailSender {
	return &logSender{logger: logger}
}

func (s *logSender) Send(ctx context.Context, msg *service.EmailMessage) error {
	s.logger.InfoContext(ctx, "Email not delivered, log provider active",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text),
	)

	return nil
}
