package repositories

import (
	"context"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
)

const foodColumns = `id, record_date, shop_name, amount, comment, created_at, updated_at`

var FoodSpec = &listing.Spec{
	Table:        "food_records",
	DefaultLimit: 20,
	DefaultSort:  "date",
	SortFields: map[string]string{
		"date":      "record_date",
		"amount":    "amount",
		"shopName":  "shop_name",
		"comment":   "comment",
		"createdAt": "created_at",
	},
	Search:  []string{"shop_name", "comment"},
	Matches: []listing.Match{{Param: "shopName", Column: "shop_name"}},
	Ranges: []listing.Range{
		{MinParam: "dateFrom", MaxParam: "dateTo", Column: "record_date", Kind: listing.Date},
		{MinParam: "minAmount", MaxParam: "maxAmount", Column: "amount", Kind: listing.Number},
	},
	Sums: []listing.Sum{{Key: "sumAmount", Column: "amount"}},
}

type FoodRepository struct {
	db *database.DB
}

func NewFoodRepository(db *database.DB) *FoodRepository {
	return &FoodRepository{db: db}
}

func scanFoodRow(row rowScanner) (*models.Food, error) {
	var f models.Food
	if err := row.Scan(&f.ID, &f.Date, &f.ShopName, &f.Amount, &f.Comment, &f.CreatedAt, &f.UpdatedAt); err != nil {
		return nil, database.MapPostgresError(err)
	}
	return &f, nil
}

func (r *FoodRepository) Create(ctx context.Context, f *models.Food) (*models.Food, error) {
	query := `
		INSERT INTO food_records (record_date, shop_name, amount, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + foodColumns
	return scanFoodRow(r.db.Pool.QueryRow(ctx, query, f.Date, f.ShopName, f.Amount, f.Comment))
}

func (r *FoodRepository) GetByID(ctx context.Context, id int64) (*models.Food, error) {
	return scanFoodRow(r.db.Pool.QueryRow(ctx, `SELECT `+foodColumns+` FROM food_records WHERE id = $1`, id))
}

func (r *FoodRepository) Update(ctx context.Context, f *models.Food) (*models.Food, error) {
	query := `
		UPDATE food_records
		SET record_date = $2, shop_name = $3, amount = $4, comment = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + foodColumns
	return scanFoodRow(r.db.Pool.QueryRow(ctx, query, f.ID, f.Date, f.ShopName, f.Amount, f.Comment))
}

func (r *FoodRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "food_records", id)
}

func (r *FoodRepository) List(ctx context.Context, q *listing.Query) (*listing.Page[*models.Food], error) {
	return listPage(ctx, r.db, q, foodColumns, scanFoodRow)
}
