package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestMapPostgresError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil", in: nil, want: nil},
		{name: "no rows", in: pgx.ErrNoRows, want: models.ErrNotFound},
		{name: "wrapped no rows", in: fmt.Errorf("scan: %w", pgx.ErrNoRows), want: models.ErrNotFound},
		{name: "unique violation", in: &pgconn.PgError{Code: "23505"}, want: models.ErrConflict},
		{name: "wrapped unique violation", in: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), want: models.ErrConflict},
		{name: "fk violation", in: &pgconn.PgError{Code: "23503"}, want: models.ErrBadRequest},
		{name: "check violation", in: &pgconn.PgError{Code: "23514"}, want: models.ErrBadRequest},
		{name: "unknown", in: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapPostgresError(tt.in))
		})
	}
}
