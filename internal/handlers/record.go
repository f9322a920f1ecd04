package handlers

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/report"
	"github.com/BradenHooton/gardenbook/internal/services"
	pkghttp "github.com/BradenHooton/gardenbook/pkg/http"
)

// RecordService defines the business operations behind one record module
type RecordService[T any] interface {
	Create(ctx context.Context, rec *T) (*T, error)
	Get(ctx context.Context, id int64) (*T, error)
	Update(ctx context.Context, id int64, patch services.Patch[T]) (*T, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, q *listing.Query) (*listing.Page[*T], error)
	Export(ctx context.Context, q *listing.Query) (*listing.Page[*T], error)
}

// createRequest is a validated create body for records of type T.
type createRequest[T any] interface {
	toModel() *T
}

// updateRequest is a validated partial update body for records of type T.
type updateRequest[T any] interface {
	toPatch() services.Patch[T]
}

// RecordConfig describes how one record type is exposed over HTTP.
type RecordConfig[T any] struct {
	// Name is the singular display name used in messages, e.g. "Energy record".
	Name string
	// Title heads exported reports.
	Title   string
	Spec    *listing.Spec
	Headers []string
	Cells   func(*T) []string
	// SumLabels names the listing sums in exported reports.
	SumLabels map[string]string
}

// RecordHandler serves create, read, update, delete, list and export for one
// record type. C and U are the create and update request bodies.
type RecordHandler[T any, C createRequest[T], U updateRequest[T]] struct {
	service RecordService[T]
	cfg     RecordConfig[T]
	now     func() time.Time
}

func NewRecordHandler[T any, C createRequest[T], U updateRequest[T]](service RecordService[T], cfg RecordConfig[T]) *RecordHandler[T, C, U] {
	return &RecordHandler[T, C, U]{service: service, cfg: cfg, now: time.Now}
}

// RecordResponse wraps a single record.
type RecordResponse[T any] struct {
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data"`
}

// RegisterRoutes mounts the record endpoints under path.
func (h *RecordHandler[T, C, U]) RegisterRoutes(router chi.Router, path string) {
	router.Route(path, func(r chi.Router) {
		r.Post("/", h.Create)       // POST /{path}
		r.Get("/", h.List)          // GET /{path}
		r.Get("/export", h.Export)  // GET /{path}/export
		r.Get("/{id}", h.Get)       // GET /{path}/{id}
		r.Patch("/{id}", h.Update)  // PATCH /{path}/{id}
		r.Delete("/{id}", h.Delete) // DELETE /{path}/{id}
	})
}

// Create handles POST /{path}
func (h *RecordHandler[T, C, U]) Create(w http.ResponseWriter, r *http.Request) {
	var req C
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	created, err := h.service.Create(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	pkghttp.WriteJSON(w, http.StatusCreated, RecordResponse[T]{
		Message: h.cfg.Name + " created successfully",
		Data:    created,
	})
}

// Get handles GET /{path}/{id}
func (h *RecordHandler[T, C, U]) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	rec, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, RecordResponse[T]{Data: rec})
}

// Update handles PATCH /{path}/{id}
func (h *RecordHandler[T, C, U]) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	var req U
	if err := decodeJSON(r, &req); err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	updated, err := h.service.Update(r.Context(), id, req.toPatch())
	if err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, RecordResponse[T]{
		Message: h.cfg.Name + " updated successfully",
		Data:    updated,
	})
}

// Delete handles DELETE /{path}/{id}
func (h *RecordHandler[T, C, U]) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	pkghttp.WriteMessage(w, http.StatusOK, h.cfg.Name+" deleted successfully")
}

// List handles GET /{path}
func (h *RecordHandler[T, C, U]) List(w http.ResponseWriter, r *http.Request) {
	q, err := listing.Parse(h.cfg.Spec, r.URL.Query())
	if err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	page, err := h.service.List(r.Context(), q)
	if err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	pkghttp.WriteJSON(w, http.StatusOK, page)
}

// Export handles GET /{path}/export, rendering the filtered rows as a PDF.
func (h *RecordHandler[T, C, U]) Export(w http.ResponseWriter, r *http.Request) {
	q, err := listing.Parse(h.cfg.Spec, r.URL.Query())
	if err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	page, err := h.service.Export(r.Context(), q)
	if err != nil {
		writeServiceError(w, err, h.notFound())
		return
	}

	now := h.now()
	doc := report.Document{
		Title:     h.cfg.Title,
		Generated: now,
		Headers:   h.cfg.Headers,
		Rows:      make([][]string, 0, len(page.Data)),
		Total:     page.Meta.Total,
	}
	for _, rec := range page.Data {
		doc.Rows = append(doc.Rows, h.cfg.Cells(rec))
	}
	for _, s := range h.cfg.Spec.Sums {
		label := h.cfg.SumLabels[s.Key]
		if label == "" {
			label = s.Key
		}
		doc.Totals = append(doc.Totals, report.Total{Label: label, Value: page.Meta.Sums[s.Key]})
	}

	var buf bytes.Buffer
	if err := report.Render(&buf, doc); err != nil {
		pkghttp.WriteInternalError(w, "Failed to render report")
		return
	}

	filename := fmt.Sprintf("%s-%s.pdf", strings.ReplaceAll(h.cfg.Spec.Table, "_", "-"), now.Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

func (h *RecordHandler[T, C, U]) notFound() string {
	return h.cfg.Name + " not found"
}
