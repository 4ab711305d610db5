// Package email delivers account emails through a configurable provider.
package email

import (
	"log/slog"
	"strings"

	"peterparts/config"
	"peterparts/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	ProviderResend = "resend"
	ProviderLog    = "log"
)

// NewSender picks the provider named by email.provider.
func NewSender(cfg *config.Config, logger *slog.Logger) (service.EmailSender, error) {
	emailCfg := cfg.Email
	if emailCfg == nil {
		emailCfg = &config.EmailConfig{Provider: ProviderLog}
	}

	switch strings.ToLower(emailCfg.Provider) {
	case ProviderResend:
		return NewResendSender(emailCfg)
	case ProviderLog, "":
		if cfg.IsProduction() {
			logger.Warn("Email provider is 'log' in production, verification codes will only be logged")
		}

		return NewLogSender(logger), nil
	default:
		return nil, errors.Errorf("unknown email provider %q", emailCfg.Provider)
	}
}
