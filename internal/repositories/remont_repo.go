package repositories

import (
	"context"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
)

const remontColumns = `id, record_date, description, cost, note, created_at, updated_at`

var RemontSpec = &listing.Spec{
	Table:        "remont_records",
	DefaultLimit: 20,
	DefaultSort:  "date",
	SortFields: map[string]string{
		"date":        "record_date",
		"cost":        "cost",
		"description": "description",
		"note":        "note",
		"createdAt":   "created_at",
	},
	Search: []string{"description", "note"},
	Ranges: []listing.Range{
		{MinParam: "dateFrom", MaxParam: "dateTo", Column: "record_date", Kind: listing.Date},
		{MinParam: "minCost", MaxParam: "maxCost", Column: "cost", Kind: listing.Number},
	},
	Sums: []listing.Sum{{Key: "sumCost", Column: "cost"}},
}

type RemontRepository struct {
	db *database.DB
}

func NewRemontRepository(db *database.DB) *RemontRepository {
	return &RemontRepository{db: db}
}

func scanRemontRow(row rowScanner) (*models.Remont, error) {
	var m models.Remont
	if err := row.Scan(&m.ID, &m.Date, &m.Description, &m.Cost, &m.Note, &m.CreatedAt, &m.UpdatedAt); err != nil {
		return nil, database.MapPostgresError(err)
	}
	return &m, nil
}

func (r *RemontRepository) Create(ctx context.Context, m *models.Remont) (*models.Remont, error) {
	query := `
		INSERT INTO remont_records (record_date, description, cost, note)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + remontColumns
	return scanRemontRow(r.db.Pool.QueryRow(ctx, query, m.Date, m.Description, m.Cost, m.Note))
}

func (r *RemontRepository) GetByID(ctx context.Context, id int64) (*models.Remont, error) {
	return scanRemontRow(r.db.Pool.QueryRow(ctx, `SELECT `+remontColumns+` FROM remont_records WHERE id = $1`, id))
}

func (r *RemontRepository) Update(ctx context.Context, m *models.Remont) (*models.Remont, error) {
	query := `
		UPDATE remont_records
		SET record_date = $2, description = $3, cost = $4, note = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + remontColumns
	return scanRemontRow(r.db.Pool.QueryRow(ctx, query, m.ID, m.Date, m.Description, m.Cost, m.Note))
}

func (r *RemontRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "remont_records", id)
}

func (r *RemontRepository) List(ctx context.Context, q *listing.Query) (*listing.Page[*models.Remont], error) {
	return listPage(ctx, r.db, q, remontColumns, scanRemontRow)
}
