package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	pkglogger "github.com/BradenHooton/gardenbook/pkg/logger"
)

// SESEmailService sends emails using AWS SES
type SESEmailService struct {
	client      *ses.Client
	fromAddress string
	composer    EmailComposer
	logger      *slog.Logger
}

func NewSESEmailService(ctx context.Context, region, fromAddress string, composer EmailComposer, logger *slog.Logger) (*SESEmailService, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return &SESEmailService{
		client:      ses.NewFromConfig(cfg),
		fromAddress: fromAddress,
		composer:    composer,
		logger:      logger,
	}, nil
}

func (s *SESEmailService) SendVerificationCode(ctx context.Context, msg VerificationEmail) error {
	rendered, err := s.composer.compose(msg)
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Source: aws.String(s.fromAddress),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(rendered.Subject), Charset: aws.String("UTF-8")},
			Body: &types.Body{
				Html: &types.Content{Data: aws.String(rendered.HTML), Charset: aws.String("UTF-8")},
				Text: &types.Content{Data: aws.String(rendered.Text), Charset: aws.String("UTF-8")},
			},
		},
	}

	result, err := s.client.SendEmail(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send email via SES: %w", err)
	}

	s.logger.Info("verification email sent",
		slog.String("email", pkglogger.SanitizedEmail(msg.To)),
		slog.String("message_id", aws.ToString(result.MessageId)))

	return nil
}

func (s *SESEmailService) Close() error { return nil }
