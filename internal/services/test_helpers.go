package services

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
)

// MockUserRepository implements UserRepository for testing
type MockUserRepository struct {
	GetByIDFunc        func(ctx context.Context, id int64) (*models.User, error)
	GetByEmailFunc     func(ctx context.Context, email string) (*models.User, error)
	ListFunc           func(ctx context.Context) ([]*models.User, error)
	CreateFunc         func(ctx context.Context, user *models.User) (*models.User, error)
	CreateWithCodeFunc func(ctx context.Context, user *models.User, code string, expiresAt time.Time) (*models.User, *models.VerificationCode, error)
	DeleteFunc         func(ctx context.Context, id int64) error
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, models.ErrNotFound
}

func (m *MockUserRepository) List(ctx context.Context) ([]*models.User, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return []*models.User{}, nil
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil, models.ErrInternalServer
}

func (m *MockUserRepository) CreateWithCode(ctx context.Context, user *models.User, code string, expiresAt time.Time) (*models.User, *models.VerificationCode, error) {
	if m.CreateWithCodeFunc != nil {
		return m.CreateWithCodeFunc(ctx, user, code, expiresAt)
	}
	return nil, nil, models.ErrInternalServer
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockVerificationCodeRepository implements VerificationCodeRepository for testing
type MockVerificationCodeRepository struct {
	CreateFunc  func(ctx context.Context, userID int64, code string, expiresAt time.Time) (*models.VerificationCode, error)
	ConsumeFunc func(ctx context.Context, userID int64, code string, now time.Time) (*models.User, error)
}

func (m *MockVerificationCodeRepository) Create(ctx context.Context, userID int64, code string, expiresAt time.Time) (*models.VerificationCode, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, userID, code, expiresAt)
	}
	return &models.VerificationCode{UserID: userID, Code: code, ExpiresAt: expiresAt}, nil
}

func (m *MockVerificationCodeRepository) Consume(ctx context.Context, userID int64, code string, now time.Time) (*models.User, error) {
	if m.ConsumeFunc != nil {
		return m.ConsumeFunc(ctx, userID, code, now)
	}
	return nil, models.ErrCodeInvalid
}

// MockTokenIssuer implements TokenIssuer for testing
type MockTokenIssuer struct {
	GenerateFunc func(user *models.User) (string, error)
}

func (m *MockTokenIssuer) Generate(user *models.User) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(user)
	}
	return "token-for-" + user.Email, nil
}

// MockPasswordHasher stores passwords with a fixed prefix.
type MockPasswordHasher struct {
	mu       sync.Mutex
	compared []string
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *MockPasswordHasher) Compare(hashedPassword, password string) bool {
	m.mu.Lock()
	m.compared = append(m.compared, hashedPassword)
	m.mu.Unlock()
	return hashedPassword != "" && hashedPassword == "hashed:"+password
}

// Compared returns the hashes passed to Compare so far.
func (m *MockPasswordHasher) Compared() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.compared...)
}

// MockEmailService records sent messages.
type MockEmailService struct {
	SendFunc func(ctx context.Context, msg VerificationEmail) error

	mu   sync.Mutex
	sent []VerificationEmail
}

func (m *MockEmailService) SendVerificationCode(ctx context.Context, msg VerificationEmail) error {
	m.mu.Lock()
	m.sent = append(m.sent, msg)
	m.mu.Unlock()
	if m.SendFunc != nil {
		return m.SendFunc(ctx, msg)
	}
	return nil
}

func (m *MockEmailService) Close() error { return nil }

func (m *MockEmailService) Sent() []VerificationEmail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]VerificationEmail(nil), m.sent...)
}

// MockRecordRepository implements RecordRepository[T] for testing
type MockRecordRepository[T any] struct {
	CreateFunc  func(ctx context.Context, rec *T) (*T, error)
	GetByIDFunc func(ctx context.Context, id int64) (*T, error)
	UpdateFunc  func(ctx context.Context, rec *T) (*T, error)
	DeleteFunc  func(ctx context.Context, id int64) error
	ListFunc    func(ctx context.Context, q *listing.Query) (*listing.Page[*T], error)
}

func (m *MockRecordRepository[T]) Create(ctx context.Context, rec *T) (*T, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, rec)
	}
	return rec, nil
}

func (m *MockRecordRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, models.ErrNotFound
}

func (m *MockRecordRepository[T]) Update(ctx context.Context, rec *T) (*T, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, rec)
	}
	return rec, nil
}

func (m *MockRecordRepository[T]) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockRecordRepository[T]) List(ctx context.Context, q *listing.Query) (*listing.Page[*T], error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, q)
	}
	return &listing.Page[*T]{Data: []*T{}}, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
