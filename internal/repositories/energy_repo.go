package repositories

import (
	"context"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
)

const energyColumns = `id, record_date, amount_paid, comment, created_at, updated_at`

var EnergySpec = &listing.Spec{
	Table:        "energy_records",
	DefaultLimit: 20,
	DefaultSort:  "date",
	SortFields: map[string]string{
		"date":       "record_date",
		"amountPaid": "amount_paid",
		"comment":    "comment",
		"createdAt":  "created_at",
	},
	Search: []string{"comment"},
	Ranges: []listing.Range{
		{MinParam: "dateFrom", MaxParam: "dateTo", Column: "record_date", Kind: listing.Date},
		{MinParam: "minAmount", MaxParam: "maxAmount", Column: "amount_paid", Kind: listing.Number},
	},
	Sums: []listing.Sum{{Key: "sumAmount", Column: "amount_paid"}},
}

type EnergyRepository struct {
	db *database.DB
}

func NewEnergyRepository(db *database.DB) *EnergyRepository {
	return &EnergyRepository{db: db}
}

func scanEnergyRow(row rowScanner) (*models.Energy, error) {
	var e models.Energy
	if err := row.Scan(&e.ID, &e.Date, &e.AmountPaid, &e.Comment, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, database.MapPostgresError(err)
	}
	return &e, nil
}

func (r *EnergyRepository) Create(ctx context.Context, e *models.Energy) (*models.Energy, error) {
	query := `
		INSERT INTO energy_records (record_date, amount_paid, comment)
		VALUES ($1, $2, $3)
		RETURNING ` + energyColumns
	return scanEnergyRow(r.db.Pool.QueryRow(ctx, query, e.Date, e.AmountPaid, e.Comment))
}

func (r *EnergyRepository) GetByID(ctx context.Context, id int64) (*models.Energy, error) {
	return scanEnergyRow(r.db.Pool.QueryRow(ctx, `SELECT `+energyColumns+` FROM energy_records WHERE id = $1`, id))
}

func (r *EnergyRepository) Update(ctx context.Context, e *models.Energy) (*models.Energy, error) {
	query := `
		UPDATE energy_records
		SET record_date = $2, amount_paid = $3, comment = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + energyColumns
	return scanEnergyRow(r.db.Pool.QueryRow(ctx, query, e.ID, e.Date, e.AmountPaid, e.Comment))
}

func (r *EnergyRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "energy_records", id)
}

func (r *EnergyRepository) List(ctx context.Context, q *listing.Query) (*listing.Page[*models.Energy], error) {
	return listPage(ctx, r.db, q, energyColumns, scanEnergyRow)
}
