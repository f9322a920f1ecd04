package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/jackc/pgx/v5"
)

const codeColumns = `id, user_id, code, expires_at, used_at, created_at`

// VerificationCodeRepository handles verification code data access
type VerificationCodeRepository struct {
	db *database.DB
}

func NewVerificationCodeRepository(db *database.DB) *VerificationCodeRepository {
	return &VerificationCodeRepository{db: db}
}

func scanCodeRow(row rowScanner) (*models.VerificationCode, error) {
	var code models.VerificationCode

	err := row.Scan(
		&code.ID, &code.UserID, &code.Code,
		&code.ExpiresAt, &code.UsedAt, &code.CreatedAt,
	)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return &code, nil
}

func insertCode(ctx context.Context, q querier, userID int64, code string, expiresAt time.Time) (*models.VerificationCode, error) {
	query := `
		INSERT INTO verification_codes (user_id, code, expires_at)
		VALUES ($1, $2, $3)
		RETURNING ` + codeColumns

	return scanCodeRow(q.QueryRow(ctx, query, userID, code, expiresAt))
}

// Create issues a new code for userID. Earlier outstanding codes are left
// untouched.
func (r *VerificationCodeRepository) Create(ctx context.Context, userID int64, code string, expiresAt time.Time) (*models.VerificationCode, error) {
	return insertCode(ctx, r.db.Pool, userID, code, expiresAt)
}

// ListByUser returns the user's codes, newest first.
func (r *VerificationCodeRepository) ListByUser(ctx context.Context, userID int64) ([]*models.VerificationCode, error) {
	query := `SELECT ` + codeColumns + ` FROM verification_codes WHERE user_id = $1 ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query verification codes: %w", err)
	}

	return collectRows(rows, scanCodeRow)
}

// Consume marks the newest unused code matching userID and code that is still
// valid at now, and flips the user's verification flag, in one transaction.
// The candidate row is locked so concurrent attempts on the same code
// serialize; the loser sees the row as used and gets models.ErrCodeInvalid.
func (r *VerificationCodeRepository) Consume(ctx context.Context, userID int64, code string, now time.Time) (*models.User, error) {
	var user *models.User

	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		var codeID int64
		err := tx.QueryRow(ctx, `
			SELECT id FROM verification_codes
			WHERE user_id = $1 AND code = $2 AND used_at IS NULL AND expires_at > $3
			ORDER BY created_at DESC, id DESC
			LIMIT 1
			FOR UPDATE`,
			userID, code, now,
		).Scan(&codeID)
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ErrCodeInvalid
		}
		if err != nil {
			return fmt.Errorf("failed to select verification code: %w", err)
		}

		result, err := tx.Exec(ctx,
			`UPDATE verification_codes SET used_at = $2 WHERE id = $1 AND used_at IS NULL`,
			codeID, now,
		)
		if err != nil {
			return fmt.Errorf("failed to mark code used: %w", err)
		}
		if result.RowsAffected() == 0 {
			return models.ErrCodeInvalid
		}

		user, err = scanUserRow(tx.QueryRow(ctx, `
			UPDATE users SET is_verified = TRUE, updated_at = $2
			WHERE id = $1
			RETURNING `+userColumns,
			userID, now,
		))
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}
