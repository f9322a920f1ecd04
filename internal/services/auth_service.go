package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/BradenHooton/gardenbook/internal/auth"
	"github.com/BradenHooton/gardenbook/internal/models"
	pkgauth "github.com/BradenHooton/gardenbook/pkg/auth"
	pkglogger "github.com/BradenHooton/gardenbook/pkg/logger"
)

// UserRepository defines the user store operations the services need
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	CreateWithCode(ctx context.Context, user *models.User, code string, expiresAt time.Time) (*models.User, *models.VerificationCode, error)
	Delete(ctx context.Context, id int64) error
}

// VerificationCodeRepository defines the verification code store operations
type VerificationCodeRepository interface {
	Create(ctx context.Context, userID int64, code string, expiresAt time.Time) (*models.VerificationCode, error)
	Consume(ctx context.Context, userID int64, code string, now time.Time) (*models.User, error)
}

// TokenIssuer signs access tokens.
type TokenIssuer interface {
	Generate(user *models.User) (string, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hashedPassword, password string) bool
}

// Acknowledgement messages
const (
	MsgRegistered      = "Registration successful. A verification code has been sent to your email"
	MsgCodeResent      = "A new verification code has been sent to your email"
	MsgAlreadyVerified = "Email already verified"
)

// RegisterInput carries a validated registration request.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Status   string
}

type RegisterResult struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

// AuthService handles registration, login and email verification
type AuthService struct {
	users   UserRepository
	codes   VerificationCodeRepository
	tokens  TokenIssuer
	hasher  PasswordHasher
	mailer  EmailService
	delay   *auth.FailureDelay
	codeTTL time.Duration
	logger  *slog.Logger
	audit   *pkglogger.AuditLogger

	now          func() time.Time
	generateCode func() (string, error)
}

// AuthServiceConfig groups the collaborators of AuthService.
type AuthServiceConfig struct {
	Users        UserRepository
	Codes        VerificationCodeRepository
	Tokens       TokenIssuer
	Hasher       PasswordHasher
	Mailer       EmailService
	FailureDelay *auth.FailureDelay
	CodeTTL      time.Duration
	Logger       *slog.Logger
}

func NewAuthService(cfg AuthServiceConfig) *AuthService {
	return &AuthService{
		users:        cfg.Users,
		codes:        cfg.Codes,
		tokens:       cfg.Tokens,
		hasher:       cfg.Hasher,
		mailer:       cfg.Mailer,
		delay:        cfg.FailureDelay,
		codeTTL:      cfg.CodeTTL,
		logger:       cfg.Logger,
		audit:        pkglogger.NewAuditLogger(cfg.Logger),
		now:          time.Now,
		generateCode: pkgauth.GenerateNumericCode,
	}
}

// Register creates an unverified user with a first verification code and
// attempts to mail the code. Mail failures are logged, not returned.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*RegisterResult, error) {
	email := normalizeEmail(in.Email)

	_, err := s.users.GetByEmail(ctx, email)
	switch {
	case err == nil:
		s.auditFailure(ctx, pkglogger.EventRegister, email, "", "email_taken")
		return nil, models.ErrConflict
	case !errors.Is(err, models.ErrNotFound):
		return nil, storeError(s.logger, "lookup user", err)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		s.logger.Error("failed to hash password", slog.Any("error", err))
		return nil, fmt.Errorf("%w: could not process password", models.ErrBadRequest)
	}

	code, err := s.generateCode()
	if err != nil {
		return nil, fmt.Errorf("%w: could not issue code", models.ErrBadRequest)
	}

	user := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Role:         defaultString(in.Role, models.RoleUser),
		Status:       defaultString(in.Status, models.StatusActive),
	}

	created, issued, err := s.users.CreateWithCode(ctx, user, code, s.now().Add(s.codeTTL))
	if err != nil {
		return nil, storeError(s.logger, "create user", err)
	}

	s.deliverCode(ctx, created, issued)

	s.audit.LogAuthAttempt(ctx, pkglogger.AuditEvent{
		EventType: pkglogger.EventRegister,
		UserID:    userIDString(created.ID),
		Email:     created.Email,
		Success:   true,
	})

	return &RegisterResult{Message: MsgRegistered, UserID: created.ID}, nil
}

// Login checks credentials and issues an access token. Unverified accounts
// are refused before the password is considered.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.AuthToken, error) {
	start := time.Now()
	email = normalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			return nil, storeError(s.logger, "lookup user", err)
		}
		s.hasher.Compare("", password)
		s.auditFailure(ctx, pkglogger.EventLogin, email, "", "invalid_credentials")
		s.delay.WaitFrom(ctx, start)
		return nil, models.ErrInvalidCredentials
	}

	if !user.IsVerified {
		s.auditFailure(ctx, pkglogger.EventLogin, email, userIDString(user.ID), "email_not_verified")
		return nil, models.ErrEmailNotVerified
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		s.auditFailure(ctx, pkglogger.EventLogin, email, userIDString(user.ID), "invalid_credentials")
		s.delay.WaitFrom(ctx, start)
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.audit.LogAuthAttempt(ctx, pkglogger.AuditEvent{
		EventType: pkglogger.EventLogin,
		UserID:    userIDString(user.ID),
		Success:   true,
	})

	return token, nil
}

// VerifyEmail consumes a matching code and marks the user verified in one
// atomic step, then issues an access token.
func (s *AuthService) VerifyEmail(ctx context.Context, email, code string) (*models.AuthToken, error) {
	email = normalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, storeError(s.logger, "lookup user", err)
	}

	verified, err := s.codes.Consume(ctx, user.ID, strings.TrimSpace(code), s.now())
	if err != nil {
		if errors.Is(err, models.ErrCodeInvalid) {
			s.auditFailure(ctx, pkglogger.EventVerifyEmail, email, userIDString(user.ID), "code_invalid_or_expired")
		}
		return nil, storeError(s.logger, "consume code", err)
	}

	s.audit.LogAuthAttempt(ctx, pkglogger.AuditEvent{
		EventType: pkglogger.EventVerifyEmail,
		UserID:    userIDString(verified.ID),
		Success:   true,
	})

	return s.issueToken(verified)
}

// ResendCode issues and mails a fresh code for an unverified user. Earlier
// codes stay valid until they expire. Verified users get an acknowledgement
// and no new code.
func (s *AuthService) ResendCode(ctx context.Context, email string) (string, error) {
	email = normalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", storeError(s.logger, "lookup user", err)
	}

	if user.IsVerified {
		return MsgAlreadyVerified, nil
	}

	code, err := s.generateCode()
	if err != nil {
		return "", fmt.Errorf("%w: could not issue code", models.ErrBadRequest)
	}

	issued, err := s.codes.Create(ctx, user.ID, code, s.now().Add(s.codeTTL))
	if err != nil {
		return "", storeError(s.logger, "create code", err)
	}

	s.deliverCode(ctx, user, issued)

	s.audit.LogAuthAttempt(ctx, pkglogger.AuditEvent{
		EventType: pkglogger.EventResendCode,
		UserID:    userIDString(user.ID),
		Success:   true,
	})

	return MsgCodeResent, nil
}

// GetProfile returns the non-secret profile of the given user.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*models.UserProfile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, storeError(s.logger, "get user", err)
	}
	profile := user.Profile()
	return &profile, nil
}

func (s *AuthService) issueToken(user *models.User) (*models.AuthToken, error) {
	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("failed to sign token", slog.Int64("user_id", user.ID), slog.Any("error", err))
		return nil, models.ErrInternalServer
	}
	return &models.AuthToken{AccessToken: token}, nil
}

// deliverCode mails code to user. Delivery errors are logged only.
func (s *AuthService) deliverCode(ctx context.Context, user *models.User, code *models.VerificationCode) {
	err := s.mailer.SendVerificationCode(ctx, VerificationEmail{
		To:        user.Email,
		Name:      user.Name,
		Code:      code.Code,
		ExpiresAt: code.ExpiresAt,
		TTL:       s.codeTTL,
	})
	if err != nil {
		s.logger.Error("failed to send verification email",
			slog.Int64("user_id", user.ID),
			slog.String("email", pkglogger.SanitizedEmail(user.Email)),
			slog.Any("error", err))
	}
}

func (s *AuthService) auditFailure(ctx context.Context, eventType, email, userID, reason string) {
	s.audit.LogAuthAttempt(ctx, pkglogger.AuditEvent{
		EventType:     eventType,
		UserID:        userID,
		Email:         email,
		Success:       false,
		FailureReason: reason,
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func userIDString(id int64) string {
	return strconv.FormatInt(id, 10)
}
