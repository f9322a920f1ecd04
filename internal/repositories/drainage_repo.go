package repositories

import (
	"context"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
)

const drainageColumns = `id, record_date, hours_worked, total_salary, created_at, updated_at`

var DrainageSpec = &listing.Spec{
	Table:        "drainage_records",
	DefaultLimit: 10,
	DefaultSort:  "date",
	SortFields: map[string]string{
		"date":        "record_date",
		"hoursWorked": "hours_worked",
		"totalSalary": "total_salary",
		"createdAt":   "created_at",
	},
	Ranges: []listing.Range{
		{MinParam: "dateFrom", MaxParam: "dateTo", Column: "record_date", Kind: listing.Date},
		{MinParam: "minHours", MaxParam: "maxHours", Column: "hours_worked", Kind: listing.Number},
		{MinParam: "minTotal", MaxParam: "maxTotal", Column: "total_salary", Kind: listing.Number},
	},
	Sums: []listing.Sum{{Key: "sumTotalSalary", Column: "total_salary"}},
}

type DrainageRepository struct {
	db *database.DB
}

func NewDrainageRepository(db *database.DB) *DrainageRepository {
	return &DrainageRepository{db: db}
}

func scanDrainageRow(row rowScanner) (*models.Drainage, error) {
	var d models.Drainage
	if err := row.Scan(&d.ID, &d.Date, &d.HoursWorked, &d.TotalSalary, &d.CreatedAt, &d.UpdatedAt); err != nil {
		return nil, database.MapPostgresError(err)
	}
	return &d, nil
}

func (r *DrainageRepository) Create(ctx context.Context, d *models.Drainage) (*models.Drainage, error) {
	query := `
		INSERT INTO drainage_records (record_date, hours_worked, total_salary)
		VALUES ($1, $2, $3)
		RETURNING ` + drainageColumns
	return scanDrainageRow(r.db.Pool.QueryRow(ctx, query, d.Date, d.HoursWorked, d.TotalSalary))
}

func (r *DrainageRepository) GetByID(ctx context.Context, id int64) (*models.Drainage, error) {
	return scanDrainageRow(r.db.Pool.QueryRow(ctx, `SELECT `+drainageColumns+` FROM drainage_records WHERE id = $1`, id))
}

func (r *DrainageRepository) Update(ctx context.Context, d *models.Drainage) (*models.Drainage, error) {
	query := `
		UPDATE drainage_records
		SET record_date = $2, hours_worked = $3, total_salary = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + drainageColumns
	return scanDrainageRow(r.db.Pool.QueryRow(ctx, query, d.ID, d.Date, d.HoursWorked, d.TotalSalary))
}

func (r *DrainageRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "drainage_records", id)
}

func (r *DrainageRepository) List(ctx context.Context, q *listing.Query) (*listing.Page[*models.Drainage], error) {
	return listPage(ctx, r.db, q, drainageColumns, scanDrainageRow)
}
