package services

import (
	"context"
	"fmt"
	"log/slog"

	"gopkg.in/gomail.v2"

	"github.com/BradenHooton/gardenbook/internal/config"
	pkglogger "github.com/BradenHooton/gardenbook/pkg/logger"
)

// SMTPEmailService sends emails through an authenticated SMTP relay
// (Gmail app passwords by default).
type SMTPEmailService struct {
	dialer   *gomail.Dialer
	from     string
	composer EmailComposer
	logger   *slog.Logger
}

func NewSMTPEmailService(cfg config.MailConfig, composer EmailComposer, logger *slog.Logger) *SMTPEmailService {
	return &SMTPEmailService{
		dialer:   gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:     cfg.From,
		composer: composer,
		logger:   logger,
	}
}

func (s *SMTPEmailService) SendVerificationCode(ctx context.Context, msg VerificationEmail) error {
	rendered, err := s.composer.compose(msg)
	if err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, s.composer.AppName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", rendered.Subject)
	m.SetBody("text/plain", rendered.Text)
	m.AddAlternative("text/html", rendered.HTML)

	// gomail has no context support; honour cancellation before dialing.
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via SMTP: %w", err)
	}

	s.logger.Info("verification email sent", slog.String("email", pkglogger.SanitizedEmail(msg.To)))
	return nil
}

func (s *SMTPEmailService) Close() error { return nil }
