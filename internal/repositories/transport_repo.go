package repositories

import (
	"context"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
)

const transportColumns = `id, plate, type, model, note, created_at, updated_at`

var TransportSpec = &listing.Spec{
	Table:        "transports",
	DefaultLimit: 20,
	DefaultSort:  "createdAt",
	SortFields: map[string]string{
		"createdAt": "created_at",
		"updatedAt": "updated_at",
		"plate":     "plate",
		"type":      "type",
		"model":     "model",
	},
	Search: []string{"plate", "model", "note"},
	Enums:  []listing.Enum{{Param: "type", Column: "type", Values: models.TransportTypes}},
}

type TransportRepository struct {
	db *database.DB
}

func NewTransportRepository(db *database.DB) *TransportRepository {
	return &TransportRepository{db: db}
}

func scanTransportRow(row rowScanner) (*models.Transport, error) {
	var t models.Transport
	if err := row.Scan(&t.ID, &t.Plate, &t.Type, &t.Model, &t.Note, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, database.MapPostgresError(err)
	}
	return &t, nil
}

// Create returns models.ErrConflict when the plate is already registered.
func (r *TransportRepository) Create(ctx context.Context, t *models.Transport) (*models.Transport, error) {
	query := `
		INSERT INTO transports (plate, type, model, note)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + transportColumns
	return scanTransportRow(r.db.Pool.QueryRow(ctx, query, t.Plate, t.Type, t.Model, t.Note))
}

func (r *TransportRepository) GetByID(ctx context.Context, id int64) (*models.Transport, error) {
	return scanTransportRow(r.db.Pool.QueryRow(ctx, `SELECT `+transportColumns+` FROM transports WHERE id = $1`, id))
}

func (r *TransportRepository) Update(ctx context.Context, t *models.Transport) (*models.Transport, error) {
	query := `
		UPDATE transports
		SET plate = $2, type = $3, model = $4, note = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + transportColumns
	return scanTransportRow(r.db.Pool.QueryRow(ctx, query, t.ID, t.Plate, t.Type, t.Model, t.Note))
}

func (r *TransportRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "transports", id)
}

func (r *TransportRepository) List(ctx context.Context, q *listing.Query) (*listing.Page[*models.Transport], error) {
	return listPage(ctx, r.db, q, transportColumns, scanTransportRow)
}
