package repositories

import (
	"context"
	"fmt"

	"github.com/BradenHooton/gardenbook/internal/database"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/jackc/pgx/v5"
)

// listPage runs the aggregate and page statements for q against one snapshot,
// so the count, the sums and the rows agree.
func listPage[T any](ctx context.Context, db *database.DB, q *listing.Query, columns string, scan func(rowScanner) (*T, error)) (*listing.Page[*T], error) {
	page := &listing.Page[*T]{}

	err := db.WithSnapshot(ctx, func(tx pgx.Tx) error {
		aggSQL, aggArgs := q.AggregateSQL()
		total, sums, err := q.ScanAggregate(tx.QueryRow(ctx, aggSQL, aggArgs...))
		if err != nil {
			return fmt.Errorf("failed to aggregate: %w", err)
		}

		pageSQL, pageArgs := q.PageSQL(columns)
		rows, err := tx.Query(ctx, pageSQL, pageArgs...)
		if err != nil {
			return fmt.Errorf("failed to query page: %w", err)
		}
		if page.Data, err = collectRows(rows, scan); err != nil {
			return err
		}

		page.Meta = listing.NewMeta(q, total, sums)
		return nil
	})
	if err != nil {
		return nil, database.MapPostgresError(err)
	}

	return page, nil
}

// deleteByID removes one row from table, returning models.ErrNotFound when
// nothing matched.
func deleteByID(ctx context.Context, db *database.DB, table string, id int64) error {
	result, err := db.Pool.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return database.MapPostgresError(err)
	}
	if result.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
