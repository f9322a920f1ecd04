package repositories

import (
	"context"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
)

const oilColumns = `id, record_date, liters, price, note, created_at, updated_at`

var OilSpec = &listing.Spec{
	Table:        "oil_records",
	DefaultLimit: 20,
	DefaultSort:  "date",
	SortFields: map[string]string{
		"date":      "record_date",
		"liters":    "liters",
		"price":     "price",
		"note":      "note",
		"createdAt": "created_at",
	},
	Search: []string{"note"},
	Ranges: []listing.Range{
		{MinParam: "dateFrom", MaxParam: "dateTo", Column: "record_date", Kind: listing.Date},
		{MinParam: "minLiters", MaxParam: "maxLiters", Column: "liters", Kind: listing.Number},
		{MinParam: "minPrice", MaxParam: "maxPrice", Column: "price", Kind: listing.Number},
	},
	Sums: []listing.Sum{
		{Key: "sumLiters", Column: "liters"},
		{Key: "sumPrice", Column: "price"},
	},
}

type OilRepository struct {
	db *database.DB
}

func NewOilRepository(db *database.DB) *OilRepository {
	return &OilRepository{db: db}
}

func scanOilRow(row rowScanner) (*models.Oil, error) {
	var o models.Oil
	if err := row.Scan(&o.ID, &o.Date, &o.Liters, &o.Price, &o.Note, &o.CreatedAt, &o.UpdatedAt); err != nil {
		return nil, database.MapPostgresError(err)
	}
	return &o, nil
}

func (r *OilRepository) Create(ctx context.Context, o *models.Oil) (*models.Oil, error) {
	query := `
		INSERT INTO oil_records (record_date, liters, price, note)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + oilColumns
	return scanOilRow(r.db.Pool.QueryRow(ctx, query, o.Date, o.Liters, o.Price, o.Note))
}

func (r *OilRepository) GetByID(ctx context.Context, id int64) (*models.Oil, error) {
	return scanOilRow(r.db.Pool.QueryRow(ctx, `SELECT `+oilColumns+` FROM oil_records WHERE id = $1`, id))
}

func (r *OilRepository) Update(ctx context.Context, o *models.Oil) (*models.Oil, error) {
	query := `
		UPDATE oil_records
		SET record_date = $2, liters = $3, price = $4, note = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + oilColumns
	return scanOilRow(r.db.Pool.QueryRow(ctx, query, o.ID, o.Date, o.Liters, o.Price, o.Note))
}

func (r *OilRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "oil_records", id)
}

func (r *OilRepository) List(ctx context.Context, q *listing.Query) (*listing.Page[*models.Oil], error) {
	return listPage(ctx, r.db, q, oilColumns, scanOilRow)
}
