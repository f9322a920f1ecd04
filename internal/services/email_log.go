package services

import (
	"context"
	"log/slog"

	pkglogger "github.com/BradenHooton/gardenbook/pkg/logger"
)

// LogEmailService writes verification messages to the log instead of
// delivering them. Codes are redacted in production.
type LogEmailService struct {
	composer EmailComposer
	env      string
	logger   *slog.Logger
}

func NewLogEmailService(composer EmailComposer, env string, logger *slog.Logger) *LogEmailService {
	return &LogEmailService{composer: composer, env: env, logger: logger}
}

func (s *LogEmailService) SendVerificationCode(ctx context.Context, msg VerificationEmail) error {
	rendered, err := s.composer.compose(msg)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "verification email (log driver)",
		slog.String("email", pkglogger.SanitizedEmail(msg.To)),
		slog.String("subject_app", s.composer.AppName),
		pkglogger.RedactedAttr("code", msg.Code, s.env),
		slog.Int("text_bytes", len(rendered.Text)))
	return nil
}

func (s *LogEmailService) Close() error { return nil }
