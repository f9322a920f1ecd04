package services

import (
	"context"
	"log/slog"

	"github.com/BradenHooton/gardenbook/internal/listing"
)

// ExportLimit caps the rows rendered by a single export.
const ExportLimit = 1000

// RecordRepository is the store contract every record type implements.
type RecordRepository[T any] interface {
	Create(ctx context.Context, rec *T) (*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	Update(ctx context.Context, rec *T) (*T, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q *listing.Query) (*listing.Page[*T], error)
}

// Patch is a partial update of a record of type T.
type Patch[T any] interface {
	Apply(rec *T)
}

// RecordService provides create, read, update, delete and listing for one
// record type.
type RecordService[T any] struct {
	name   string
	repo   RecordRepository[T]
	logger *slog.Logger
}

func NewRecordService[T any](name string, repo RecordRepository[T], logger *slog.Logger) *RecordService[T] {
	return &RecordService[T]{
		name:   name,
		repo:   repo,
		logger: logger.With(slog.String("record", name)),
	}
}

func (s *RecordService[T]) Create(ctx context.Context, rec *T) (*T, error) {
	created, err := s.repo.Create(ctx, rec)
	if err != nil {
		return nil, storeError(s.logger, "create "+s.name, err)
	}
	return created, nil
}

func (s *RecordService[T]) Get(ctx context.Context, id int64) (*T, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "get "+s.name, err)
	}
	return rec, nil
}

// Update loads the record, merges patch into it and stores the result.
func (s *RecordService[T]) Update(ctx context.Context, id int64, patch Patch[T]) (*T, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, storeError(s.logger, "get "+s.name, err)
	}

	patch.Apply(rec)

	updated, err := s.repo.Update(ctx, rec)
	if err != nil {
		return nil, storeError(s.logger, "update "+s.name, err)
	}
	return updated, nil
}

func (s *RecordService[T]) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return storeError(s.logger, "delete "+s.name, err)
	}
	return nil
}

func (s *RecordService[T]) List(ctx context.Context, q *listing.Query) (*listing.Page[*T], error) {
	page, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, storeError(s.logger, "list "+s.name, err)
	}
	return page, nil
}

// Export returns up to ExportLimit rows matching q's filters and sort, with
// meta computed over the whole filtered set.
func (s *RecordService[T]) Export(ctx context.Context, q *listing.Query) (*listing.Page[*T], error) {
	return s.List(ctx, q.Unpaged(ExportLimit))
}
