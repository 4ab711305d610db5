package service

import (
	"context"
	"time"
)

// EmailMessage is a rendered message ready for delivery.
type EmailMessage struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// EmailSender delivers rendered messages. The concrete provider is picked at
// start-up from configuration.
type EmailSender interface {
	Send(ctx context.Context, msg *EmailMessage) error
}

// AuthMailer renders and sends the account emails.
type AuthMailer interface {
	// SendVerificationCode mails a login code valid for ttl.
	SendVerificationCode(ctx context.Context, to, code string, ttl time.Duration) error

	// SendWelcome greets a newly created account.
	SendWelcome(ctx context.Context, to string, name *string) error
}
