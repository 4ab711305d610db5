package email

import (
	"bytes"
	"context"
	"embed"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"peterparts/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	verificationSubject = "Your PeterParts Verification Code"
	welcomeSubject      = "Welcome to PeterParts!"
	defaultDisplayName  = "there"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type otpData struct {
	Code             string
	ExpiresInMinutes int
	Year             int
}

type welcomeData struct {
	Name string
	Year int
}

type mailer struct {
	sender service.EmailSender
	html   *htmltemplate.Template
	text   *texttemplate.Template
	now    func() time.Time
}

// NewMailer parses the embedded templates and binds them to sender.
func NewMailer(sender service.EmailSender) (service.AuthMailer, error) {
	return newMailer(sender)
}

func newMailer(sender service.EmailSender) (*mailer, error) {
	html, err := htmltemplate.ParseFS(templateFS, "templates/*.html.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse html email templates")
	}

	text, err := texttemplate.ParseFS(templateFS, "templates/*.txt.tmpl")
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse text email templates")
	}

	return &mailer{
		sender: sender,
		html:   html,
		text:   text,
		now:    time.Now,
	}, nil
}

func (m *mailer) SendVerificationCode(ctx context.Context, to, code string, ttl time.Duration) error {
	data := otpData{
		Code:             code,
		ExpiresInMinutes: int(ttl / time.Minute),
		Year:             m.now().Year(),
	}

	msg, err := m.render(to, verificationSubject, "otp", data)
	if err != nil {
		return err
	}

	return m.sender.Send(ctx, msg)
}

func (m *mailer) SendWelcome(ctx context.Context, to string, name *string) error {
	displayName := defaultDisplayName
	if name != nil && strings.TrimSpace(*name) != "" {
		displayName = *name
	}

	msg, err := m.render(to, welcomeSubject, "welcome", welcomeData{Name: displayName, Year: m.now().Year()})
	if err != nil {
		return err
	}

	return m.sender.Send(ctx, msg)
}

func (m *mailer) render(to, subject, name string, data any) (*service.EmailMessage, error) {
	var html, text bytes.Buffer

	if err := m.html.ExecuteTemplate(&html, name+".html.tmpl", data); err != nil {
		return nil, errors.Wrapf(err, "failed to render %s html template", name)
	}
	if err := m.text.ExecuteTemplate(&text, name+".txt.tmpl", data); err != nil {
		return nil, errors.Wrapf(err, "failed to render %s text template", name)
	}

	return &service.EmailMessage{
		To:      to,
		Subject: subject,
		HTML:    html.String(),
		Text:    strings.TrimSpace(text.String()),
	}, nil
}
