package repositories

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/jackc/pgx/v5"
)

const userColumns = `id, name, email, password_hash, role, status, is_verified, created_at, updated_at`

type UserRepository struct {
	db *database.DB
}

func NewUserRepository(db *database.DB) *UserRepository {
	return &UserRepository{db: db}
}

// rowScanner interface for scanning rows (supports both single row and multiple rows)
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUserRow(scanner rowScanner) (*models.User, error) {
	var user models.User

	err := scanner.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.Status, &user.IsVerified,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUserRow(r.db.Pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUserRow(r.db.Pool.QueryRow(ctx, query, normalizeEmail(email)))
}

// List returns every user, newest id first.
func (r *UserRepository) List(ctx context.Context) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id DESC`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	return collectRows(rows, scanUserRow)
}

// Create inserts a user with no verification code. Used for seeded accounts.
func (r *UserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	return insertUser(ctx, r.db.Pool, user)
}

// CreateWithCode inserts user and its first verification code in one
// transaction.
func (r *UserRepository) CreateWithCode(ctx context.Context, user *models.User, code string, expiresAt time.Time) (*models.User, *models.VerificationCode, error) {
	var created *models.User
	var issued *models.VerificationCode

	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		if created, err = insertUser(ctx, tx, user); err != nil {
			return err
		}
		issued, err = insertCode(ctx, tx, created.ID, code, expiresAt)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	return created, issued, nil
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertUser(ctx context.Context, q querier, user *models.User) (*models.User, error) {
	if user.Role == "" {
		user.Role = models.RoleUser
	}
	if user.Status == "" {
		user.Status = models.StatusActive
	}

	query := `
		INSERT INTO users (name, email, password_hash, role, status, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + userColumns

	return scanUserRow(q.QueryRow(ctx, query,
		user.Name, normalizeEmail(user.Email), user.PasswordHash,
		user.Role, user.Status, user.IsVerified,
	))
}

// Delete removes the user's verification codes and then the user, atomically.
// Returns models.ErrNotFound when no such user exists.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM verification_codes WHERE user_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete verification codes: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		if result.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		return nil
	})
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// collectRows drains rows through scan.
func collectRows[T any](rows pgx.Rows, scan func(rowScanner) (*T, error)) ([]*T, error) {
	defer rows.Close()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, nil
}
