package repositories

import (
	"context"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
)

const fertilizerColumns = `id, record_date, fertilizer_type, machine_count, ton_amount, comment, created_at, updated_at`

var FertilizerSpec = &listing.Spec{
	Table:        "fertilizer_records",
	DefaultLimit: 20,
	DefaultSort:  "date",
	SortFields: map[string]string{
		"date":           "record_date",
		"tonAmount":      "ton_amount",
		"fertilizerType": "fertilizer_type",
		"machineCount":   "machine_count",
		"comment":        "comment",
		"createdAt":      "created_at",
	},
	Search:  []string{"fertilizer_type", "machine_count", "comment"},
	Matches: []listing.Match{{Param: "machineCount", Column: "machine_count"}},
	Ranges: []listing.Range{
		{MinParam: "dateFrom", MaxParam: "dateTo", Column: "record_date", Kind: listing.Date},
		{MinParam: "minTon", MaxParam: "maxTon", Column: "ton_amount", Kind: listing.Number},
	},
	Sums: []listing.Sum{{Key: "sumTonAmount", Column: "ton_amount"}},
}

type FertilizerRepository struct {
	db *database.DB
}

func NewFertilizerRepository(db *database.DB) *FertilizerRepository {
	return &FertilizerRepository{db: db}
}

func scanFertilizerRow(row rowScanner) (*models.Fertilizer, error) {
	var f models.Fertilizer
	err := row.Scan(&f.ID, &f.Date, &f.FertilizerType, &f.MachineCount, &f.TonAmount, &f.Comment, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, database.MapPostgresError(err)
	}
	return &f, nil
}

func (r *FertilizerRepository) Create(ctx context.Context, f *models.Fertilizer) (*models.Fertilizer, error) {
	query := `
		INSERT INTO fertilizer_records (record_date, fertilizer_type, machine_count, ton_amount, comment)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + fertilizerColumns
	return scanFertilizerRow(r.db.Pool.QueryRow(ctx, query, f.Date, f.FertilizerType, f.MachineCount, f.TonAmount, f.Comment))
}

func (r *FertilizerRepository) GetByID(ctx context.Context, id int64) (*models.Fertilizer, error) {
	return scanFertilizerRow(r.db.Pool.QueryRow(ctx, `SELECT `+fertilizerColumns+` FROM fertilizer_records WHERE id = $1`, id))
}

func (r *FertilizerRepository) Update(ctx context.Context, f *models.Fertilizer) (*models.Fertilizer, error) {
	query := `
		UPDATE fertilizer_records
		SET record_date = $2, fertilizer_type = $3, machine_count = $4, ton_amount = $5, comment = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + fertilizerColumns
	return scanFertilizerRow(r.db.Pool.QueryRow(ctx, query, f.ID, f.Date, f.FertilizerType, f.MachineCount, f.TonAmount, f.Comment))
}

func (r *FertilizerRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "fertilizer_records", id)
}

func (r *FertilizerRepository) List(ctx context.Context, q *listing.Query) (*listing.Page[*models.Fertilizer], error) {
	return listPage(ctx, r.db, q, fertilizerColumns, scanFertilizerRow)
}
