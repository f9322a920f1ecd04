package services

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestRecordService_UpdateRecomputesWorkerTotal(t *testing.T) {
	var stored *models.Worker
	repo := &MockRecordRepository[models.Worker]{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.Worker, error) {
			return &models.Worker{ID: id, WorkerCount: 3, SalaryPerOne: 100, TotalSalary: 300}, nil
		},
		UpdateFunc: func(ctx context.Context, w *models.Worker) (*models.Worker, error) {
			stored = w
			return w, nil
		},
	}
	svc := NewRecordService[models.Worker]("worker", repo, discardLogger())

	updated, err := svc.Update(context.Background(), 11, models.WorkerPatch{WorkerCount: ptr(5)})
	require.NoError(t, err)
	assert.Equal(t, int64(11), stored.ID)
	assert.Equal(t, 500.0, updated.TotalSalary)
}

func TestRecordService_UpdateMissing(t *testing.T) {
	repo := &MockRecordRepository[models.Energy]{
		UpdateFunc: func(ctx context.Context, e *models.Energy) (*models.Energy, error) {
			t.Fatal("must not update a missing record")
			return nil, nil
		},
	}
	svc := NewRecordService[models.Energy]("energy", repo, discardLogger())

	_, err := svc.Update(context.Background(), 1, models.EnergyPatch{AmountPaid: ptr(10.0)})
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRecordService_ErrorPassThrough(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "not found", repoErr: models.ErrNotFound, wantErr: models.ErrNotFound},
		{name: "duplicate plate", repoErr: models.ErrConflict, wantErr: models.ErrConflict},
		{name: "unknown failure", repoErr: errors.New("connection refused"), wantErr: models.ErrBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockRecordRepository[models.Transport]{
				CreateFunc: func(ctx context.Context, rec *models.Transport) (*models.Transport, error) {
					return nil, tt.repoErr
				},
			}
			svc := NewRecordService[models.Transport]("transport", repo, discardLogger())

			_, err := svc.Create(context.Background(), &models.Transport{Plate: "01A123BC", Type: "TRUCK"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRecordService_ExportIgnoresPaging(t *testing.T) {
	spec := &listing.Spec{
		Table:       "tax_records",
		DefaultSort: "date",
		SortFields:  map[string]string{"date": "record_date"},
	}
	q, err := listing.Parse(spec, url.Values{"page": {"3"}, "limit": {"5"}})
	require.NoError(t, err)

	var got *listing.Query
	repo := &MockRecordRepository[models.Tax]{
		ListFunc: func(ctx context.Context, q *listing.Query) (*listing.Page[*models.Tax], error) {
			got = q
			return &listing.Page[*models.Tax]{Data: []*models.Tax{{ID: 1, Date: time.Now()}}}, nil
		},
	}
	svc := NewRecordService[models.Tax]("tax", repo, discardLogger())

	page, err := svc.Export(context.Background(), q)
	require.NoError(t, err)
	assert.Len(t, page.Data, 1)
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, ExportLimit, got.Limit)
	assert.Equal(t, 3, q.Page)
}
