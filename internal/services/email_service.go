package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/url"
	"time"

	"github.com/BradenHooton/gardenbook/internal/config"
)

// EmailService delivers verification codes.
type EmailService interface {
	SendVerificationCode(ctx context.Context, msg VerificationEmail) error
	Close() error
}

// VerificationEmail is one outbound verification message.
type VerificationEmail struct {
	To        string
	Name      string
	Code      string
	ExpiresAt time.Time
	TTL       time.Duration
}

// renderedEmail is a composed message ready for a transport.
type renderedEmail struct {
	Subject string
	HTML    string
	Text    string
}

// EmailComposer renders verification messages with the application's name
// and public URL.
type EmailComposer struct {
	AppName string
	AppURL  string
}

var verificationHTML = template.Must(template.New("verification").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 560px; margin: 0 auto; padding: 20px;">
    <h2>{{.AppName}}</h2>
    <p>Hello{{if .Name}}, {{.Name}}{{end}}!</p>
    <p>Your verification code:</p>
    <p style="font-size: 28px; font-weight: bold; letter-spacing: 6px;">{{.Code}}</p>
    <p>The code is valid for {{.Minutes}} minutes.</p>
    {{if .Link}}<p><a href="{{.Link}}">Open the verification page</a></p>{{end}}
    <p style="color: #666; font-size: 12px;">If you did not sign up, ignore this email.</p>
  </div>
</body>
</html>`))

func (c EmailComposer) compose(msg VerificationEmail) (renderedEmail, error) {
	minutes := int(msg.TTL.Round(time.Minute) / time.Minute)

	var link string
	if c.AppURL != "" {
		link = c.AppURL + "/verify?email=" + url.QueryEscape(msg.To)
	}

	var html bytes.Buffer
	err := verificationHTML.Execute(&html, map[string]any{
		"AppName": c.AppName,
		"Name":    msg.Name,
		"Code":    msg.Code,
		"Minutes": minutes,
		"Link":    link,
	})
	if err != nil {
		return renderedEmail{}, fmt.Errorf("failed to render email: %w", err)
	}

	text := fmt.Sprintf("%s\n\nYour verification code: %s\nThe code is valid for %d minutes.\n",
		c.AppName, msg.Code, minutes)
	if link != "" {
		text += "Verify here: " + link + "\n"
	}

	return renderedEmail{
		Subject: fmt.Sprintf("%s verification code: %s", c.AppName, msg.Code),
		HTML:    html.String(),
		Text:    text,
	}, nil
}

// NewEmailService builds the transport selected by cfg.Driver. The returned
// service is created once per process and closed at shutdown.
func NewEmailService(ctx context.Context, cfg config.MailConfig, app config.AppConfig, env string, logger *slog.Logger) (EmailService, error) {
	composer := EmailComposer{AppName: app.Name, AppURL: app.URL}

	switch cfg.Driver {
	case config.MailDriverSMTP:
		return NewSMTPEmailService(cfg, composer, logger), nil
	case config.MailDriverSES:
		return NewSESEmailService(ctx, cfg.AWSRegion, cfg.From, composer, logger)
	case config.MailDriverLog:
		return NewLogEmailService(composer, env, logger), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
	}
}
