package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkerPatch_Apply(t *testing.T) {
	base := func() *Worker {
		return &Worker{WorkerCount: 10, SalaryPerOne: 100000, TotalSalary: 1000000, Comment: "weeding"}
	}
	intPtr := func(v int) *int { return &v }
	floatPtr := func(v float64) *float64 { return &v }

	t.Run("count change recomputes total", func(t *testing.T) {
		w := base()
		WorkerPatch{WorkerCount: intPtr(12)}.Apply(w)
		assert.Equal(t, 1200000.0, w.TotalSalary)
	})

	t.Run("rate change recomputes total", func(t *testing.T) {
		w := base()
		WorkerPatch{SalaryPerOne: floatPtr(150000)}.Apply(w)
		assert.Equal(t, 1500000.0, w.TotalSalary)
	})

	t.Run("explicit total wins", func(t *testing.T) {
		w := base()
		WorkerPatch{WorkerCount: intPtr(12), TotalSalary: floatPtr(999)}.Apply(w)
		assert.Equal(t, 999.0, w.TotalSalary)
	})

	t.Run("unrelated change keeps total", func(t *testing.T) {
		w := base()
		w.TotalSalary = 5
		date := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
		WorkerPatch{Date: &date}.Apply(w)
		assert.Equal(t, 5.0, w.TotalSalary)
		assert.Equal(t, date, w.Date)
	})
}
