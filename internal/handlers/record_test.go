package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BradenHooton/gardenbook/internal/handlers"
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/repositories"
	"github.com/BradenHooton/gardenbook/internal/services"
)

func serve(t *testing.T, mount func(chi.Router), req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	mount(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestWorkerCreate_ComputesTotal(t *testing.T) {
	var got *models.Worker
	svc := &mockRecordService[models.Worker]{
		CreateFunc: func(ctx context.Context, w *models.Worker) (*models.Worker, error) {
			got = w
			out := *w
			out.ID = 1
			return &out, nil
		},
	}
	h := handlers.NewWorkerHandler(svc, repositories.WorkerSpec)

	body := `{"date":"2024-03-01","workerCount":12,"salaryPerOne":150000,"comment":"weeding"}`
	w := serve(t, func(r chi.Router) { h.RegisterRoutes(r, "/worker") },
		newTestRequest(t, http.MethodPost, "/worker", body))

	var resp struct {
		Message string        `json:"message"`
		Data    models.Worker `json:"data"`
	}
	assertJSONResponse(t, w, http.StatusCreated, &resp)
	assert.Equal(t, 1800000.0, got.TotalSalary)
	assert.Equal(t, 1800000.0, resp.Data.TotalSalary)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), got.Date)
	assert.Equal(t, "Worker record created successfully", resp.Message)
}

func TestWorkerCreate_ExplicitTotalKept(t *testing.T) {
	var got *models.Worker
	svc := &mockRecordService[models.Worker]{
		CreateFunc: func(ctx context.Context, w *models.Worker) (*models.Worker, error) {
			got = w
			return w, nil
		},
	}
	h := handlers.NewWorkerHandler(svc, repositories.WorkerSpec)

	body := `{"date":"2024-03-01T08:00:00Z","workerCount":2,"salaryPerOne":100,"totalSalary":250,"comment":""}`
	w := serve(t, func(r chi.Router) { h.RegisterRoutes(r, "/worker") },
		newTestRequest(t, http.MethodPost, "/worker", body))

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 250.0, got.TotalSalary)
}

func TestRecordCreate_Validation(t *testing.T) {
	h := handlers.NewEnergyHandler(&mockRecordService[models.Energy]{
		CreateFunc: func(ctx context.Context, e *models.Energy) (*models.Energy, error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}, repositories.EnergySpec)

	tests := []struct {
		name  string
		body  string
		field string
	}{
		{name: "missing date", body: `{"amountPaid":10}`, field: "date"},
		{name: "negative amount", body: `{"date":"2024-01-01","amountPaid":-1}`, field: "amountPaid"},
		{name: "bad date", body: `{"date":"01/02/2024","amountPaid":1}`, field: "body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, func(r chi.Router) { h.RegisterRoutes(r, "/energy") },
				newTestRequest(t, http.MethodPost, "/energy", tt.body))

			resp := assertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
			assert.Contains(t, resp.Details, tt.field)
		})
	}
}

func TestRecordGet_NotFound(t *testing.T) {
	h := handlers.NewTaxHandler(&mockRecordService[models.Tax]{}, repositories.TaxSpec)

	w := serve(t, func(r chi.Router) { h.RegisterRoutes(r, "/tax") },
		newTestRequest(t, http.MethodGet, "/tax/42", nil))

	resp := assertErrorResponse(t, w, http.StatusNotFound, "not_found")
	assert.Equal(t, "Tax record not found", resp.Message)
}

func TestRecordUpdate_PassesPatch(t *testing.T) {
	var gotID int64
	svc := &mockRecordService[models.Oil]{
		UpdateFunc: func(ctx context.Context, id int64, patch services.Patch[models.Oil]) (*models.Oil, error) {
			gotID = id
			rec := &models.Oil{ID: id, Liters: 10, Price: 5}
			patch.Apply(rec)
			return rec, nil
		},
	}
	h := handlers.NewOilHandler(svc, repositories.OilSpec)

	w := serve(t, func(r chi.Router) { h.RegisterRoutes(r, "/oil") },
		newTestRequest(t, http.MethodPatch, "/oil/3", `{"price":7.5}`))

	var resp struct {
		Data models.Oil `json:"data"`
	}
	assertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, int64(3), gotID)
	assert.Equal(t, 10.0, resp.Data.Liters)
	assert.Equal(t, 7.5, resp.Data.Price)
}

func TestTransportCreate_DuplicatePlate(t *testing.T) {
	h := handlers.NewTransportHandler(&mockRecordService[models.Transport]{
		CreateFunc: func(ctx context.Context, rec *models.Transport) (*models.Transport, error) {
			return nil, models.ErrConflict
		},
	}, repositories.TransportSpec)

	w := serve(t, func(r chi.Router) { h.RegisterRoutes(r, "/transport") },
		newTestRequest(t, http.MethodPost, "/transport", `{"plate":"01A777AA","type":"TRACTOR"}`))

	assertErrorResponse(t, w, http.StatusConflict, "conflict")
}

func TestTransportCreate_UnknownType(t *testing.T) {
	h := handlers.NewTransportHandler(&mockRecordService[models.Transport]{}, repositories.TransportSpec)

	w := serve(t, func(r chi.Router) { h.RegisterRoutes(r, "/transport") },
		newTestRequest(t, http.MethodPost, "/transport", `{"plate":"01A777AA","type":"BICYCLE"}`))

	assertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
}

func TestRecordList(t *testing.T) {
	var gotQuery *listing.Query
	svc := &mockRecordService[models.Energy]{
		ListFunc: func(ctx context.Context, q *listing.Query) (*listing.Page[*models.Energy], error) {
			gotQuery = q
			return &listing.Page[*models.Energy]{
				Data: []*models.Energy{{ID: 11, AmountPaid: 5}},
				Meta: listing.NewMeta(q, 35, map[string]float64{"sumAmount": 1234.5}),
			}, nil
		},
	}
	h := handlers.NewEnergyHandler(svc, repositories.EnergySpec)

	w := serve(t, func(r chi.Router) { h.RegisterRoutes(r, "/energy") },
		newTestRequest(t, http.MethodGet, "/energy?page=2&limit=10&sortBy=amountPaid&sortOrder=asc", nil))

	var resp struct {
		Data []models.Energy `json:"data"`
		Meta map[string]any  `json:"meta"`
	}
	assertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, 2, gotQuery.Page)
	assert.Equal(t, 10, gotQuery.Limit)
	assert.Equal(t, "amountPaid", gotQuery.SortBy)
	assert.Equal(t, listing.Asc, gotQuery.SortOrder)
	assert.EqualValues(t, 4, resp.Meta["lastPage"])
	assert.EqualValues(t, 1234.5, resp.Meta["sumAmount"])
	assert.Equal(t, true, resp.Meta["hasPrev"])
}

func TestRecordList_RejectsUnknownSort(t *testing.T) {
	h := handlers.NewEnergyHandler(&mockRecordService[models.Energy]{
		ListFunc: func(ctx context.Context, q *listing.Query) (*listing.Page[*models.Energy], error) {
			t.Fatal("service must not be called")
			return nil, nil
		},
	}, repositories.EnergySpec)

	w := serve(t, func(r chi.Router) { h.RegisterRoutes(r, "/energy") },
		newTestRequest(t, http.MethodGet, "/energy?sortBy=password_hash", nil))

	resp := assertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
	assert.Contains(t, resp.Details, "sortBy")
}

func TestRecordExport(t *testing.T) {
	var gotLimit int
	svc := &mockRecordService[models.Food]{
		ExportFunc: func(ctx context.Context, q *listing.Query) (*listing.Page[*models.Food], error) {
			gotLimit = q.Limit
			return &listing.Page[*models.Food]{
				Data: []*models.Food{{ID: 1, ShopName: "Bazaar", Amount: 120}},
				Meta: listing.NewMeta(q, 1, map[string]float64{"sumAmount": 120}),
			}, nil
		},
	}
	h := handlers.NewFoodHandler(svc, repositories.FoodSpec)

	w := serve(t, func(r chi.Router) { h.RegisterRoutes(r, "/food") },
		newTestRequest(t, http.MethodGet, "/food/export?shopName=baz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "food-records-")
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
	assert.Equal(t, services.ExportLimit, gotLimit)
}

func TestRecordDelete(t *testing.T) {
	h := handlers.NewRemontHandler(&mockRecordService[models.Remont]{
		DeleteFunc: func(ctx context.Context, id int64) error {
			if id == 1 {
				return nil
			}
			return models.ErrNotFound
		},
	}, repositories.RemontSpec)
	mount := func(r chi.Router) { h.RegisterRoutes(r, "/remont") }

	w := serve(t, mount, newTestRequest(t, http.MethodDelete, "/remont/1", nil))
	var resp map[string]string
	assertJSONResponse(t, w, http.StatusOK, &resp)
	assert.Equal(t, "Repair record deleted successfully", resp["message"])

	w = serve(t, mount, newTestRequest(t, http.MethodDelete, "/remont/2", nil))
	assertErrorResponse(t, w, http.StatusNotFound, "not_found")

	w = serve(t, mount, newTestRequest(t, http.MethodDelete, "/remont/0", nil))
	assertErrorResponse(t, w, http.StatusBadRequest, "bad_request")
}

func TestDate_UnmarshalJSON(t *testing.T) {
	var d handlers.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-02-29"`), &d))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), d.Time)

	assert.Error(t, json.Unmarshal([]byte(`"2024-02-30"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`123`), &d))
}
