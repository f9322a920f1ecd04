package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/BradenHooton/gardenbook/internal/models"
	pkglogger "github.com/BradenHooton/gardenbook/pkg/logger"
)

// UserService handles account administration
type UserService struct {
	repo   UserRepository
	hasher PasswordHasher
	logger *slog.Logger
	audit  *pkglogger.AuditLogger
}

// NewUserService creates a new UserService
func NewUserService(repo UserRepository, hasher PasswordHasher, logger *slog.Logger) *UserService {
	return &UserService{
		repo:   repo,
		hasher: hasher,
		logger: logger,
		audit:  pkglogger.NewAuditLogger(logger),
	}
}

// ListUsers returns every account profile, newest first.
func (s *UserService) ListUsers(ctx context.Context) ([]models.UserProfile, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, storeError(s.logger, "list users", err)
	}

	profiles := make([]models.UserProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, u.Profile())
	}
	return profiles, nil
}

// DeleteUser removes the user and its verification codes.
func (s *UserService) DeleteUser(ctx context.Context, actorID, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			s.logger.Info("user not found", slog.Int64("user_id", id))
		}
		return storeError(s.logger, "delete user", err)
	}

	s.audit.LogAccountAction(ctx, pkglogger.EventUserDeleted, userIDString(actorID), userIDString(id), nil)
	return nil
}

// EnsureAdmin creates a verified administrator with the given credentials
// unless an account with that email already exists. It reports whether an
// account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = normalizeEmail(email)

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, models.ErrNotFound) {
		return false, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return false, err
	}

	created, err := s.repo.Create(ctx, &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		Status:       models.StatusActive,
		IsVerified:   true,
	})
	if err != nil {
		return false, err
	}

	s.logger.Info("admin account created", slog.Int64("user_id", created.ID))
	return true, nil
}
