package repositories

import (
	"context"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
)

const workerColumns = `id, record_date, worker_count, salary_per_one, total_salary, comment, created_at, updated_at`

var WorkerSpec = &listing.Spec{
	Table:        "worker_records",
	DefaultLimit: 20,
	DefaultSort:  "date",
	SortFields: map[string]string{
		"date":         "record_date",
		"workerCount":  "worker_count",
		"salaryPerOne": "salary_per_one",
		"totalSalary":  "total_salary",
		"createdAt":    "created_at",
	},
	Search: []string{"comment"},
	Ranges: []listing.Range{
		{MinParam: "dateFrom", MaxParam: "dateTo", Column: "record_date", Kind: listing.Date},
	},
	Sums: []listing.Sum{{Key: "sumTotalSalary", Column: "total_salary"}},
}

type WorkerRepository struct {
	db *database.DB
}

func NewWorkerRepository(db *database.DB) *WorkerRepository {
	return &WorkerRepository{db: db}
}

func scanWorkerRow(row rowScanner) (*models.Worker, error) {
	var w models.Worker
	err := row.Scan(&w.ID, &w.Date, &w.WorkerCount, &w.SalaryPerOne, &w.TotalSalary, &w.Comment, &w.CreatedAt, &w.UpdatedAt)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}
	return &w, nil
}

func (r *WorkerRepository) Create(ctx context.Context, w *models.Worker) (*models.Worker, error) {
	query := `
		INSERT INTO worker_records (record_date, worker_count, salary_per_one, total_salary, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + workerColumns
	return scanWorkerRow(r.db.Pool.QueryRow(ctx, query, w.Date, w.WorkerCount, w.SalaryPerOne, w.TotalSalary, w.Comment))
}

func (r *WorkerRepository) GetByID(ctx context.Context, id int64) (*models.Worker, error) {
	return scanWorkerRow(r.db.Pool.QueryRow(ctx, `SELECT `+workerColumns+` FROM worker_records WHERE id = $1`, id))
}

func (r *WorkerRepository) Update(ctx context.Context, w *models.Worker) (*models.Worker, error) {
	query := `
		UPDATE worker_records
		SET record_date = $2, worker_count = $3, salary_per_one = $4, total_salary = $5, comment = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + workerColumns
	return scanWorkerRow(r.db.Pool.QueryRow(ctx, query, w.ID, w.Date, w.WorkerCount, w.SalaryPerOne, w.TotalSalary, w.Comment))
}

func (r *WorkerRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "worker_records", id)
}

func (r *WorkerRepository) List(ctx context.Context, q *listing.Query) (*listing.Page[*models.Worker], error) {
	return listPage(ctx, r.db, q, workerColumns, scanWorkerRow)
}
