package repositories

import (
	"context"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
)

const taxColumns = `id, record_date, title, amount, comment, created_at, updated_at`

var TaxSpec = &listing.Spec{
	Table:        "tax_records",
	DefaultLimit: 20,
	MaxLimit:     100,
	DefaultSort:  "date",
	SortFields: map[string]string{
		"date":      "record_date",
		"title":     "title",
		"amount":    "amount",
		"createdAt": "created_at",
	},
	Search: []string{"title", "comment"},
	Ranges: []listing.Range{
		{MinParam: "dateFrom", MaxParam: "dateTo", Column: "record_date", Kind: listing.Date},
		{MinParam: "minAmount", MaxParam: "maxAmount", Column: "amount", Kind: listing.Number},
	},
	Sums: []listing.Sum{{Key: "sumAmount", Column: "amount"}},
}

type TaxRepository struct {
	db *database.DB
}

func NewTaxRepository(db *database.DB) *TaxRepository {
	return &TaxRepository{db: db}
}

func scanTaxRow(row rowScanner) (*models.Tax, error) {
	var t models.Tax
	if err := row.Scan(&t.ID, &t.Date, &t.Title, &t.Amount, &t.Comment, &t.CreatedAt, &t.UpdatedAt); err != nil {
		return nil, database.MapPostgresError(err)
	}
	return &t, nil
}

func (r *TaxRepository) Create(ctx context.Context, t *models.Tax) (*models.Tax, error) {
	query := `
		INSERT INTO tax_records (record_date, title, amount, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + taxColumns
	return scanTaxRow(r.db.Pool.QueryRow(ctx, query, t.Date, t.Title, t.Amount, t.Comment))
}

func (r *TaxRepository) GetByID(ctx context.Context, id int64) (*models.Tax, error) {
	return scanTaxRow(r.db.Pool.QueryRow(ctx, `SELECT `+taxColumns+` FROM tax_records WHERE id = $1`, id))
}

func (r *TaxRepository) Update(ctx context.Context, t *models.Tax) (*models.Tax, error) {
	query := `
		UPDATE tax_records
		SET record_date = $2, title = $3, amount = $4, comment = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + taxColumns
	return scanTaxRow(r.db.Pool.QueryRow(ctx, query, t.ID, t.Date, t.Title, t.Amount, t.Comment))
}

func (r *TaxRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "tax_records", id)
}

func (r *TaxRepository) List(ctx context.Context, q *listing.Query) (*listing.Page[*models.Tax], error) {
	return listPage(ctx, r.db, q, taxColumns, scanTaxRow)
}
