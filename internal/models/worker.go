package models

import "time"

// Worker is a day-labour payroll record.
type Worker struct {
	ID           int64     `json:"id"`
	Date         time.Time `json:"date"`
	WorkerCount  int       `json:"workerCount"`
	SalaryPerOne float64   `json:"salaryPerOne"`
	TotalSalary  float64   `json:"totalSalary"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type WorkerPatch struct {
	Date         *time.Time
	WorkerCount  *int
	SalaryPerOne *float64
	TotalSalary  *float64
	Comment      *string
}

// Apply merges the patch into w. When the head count or rate changes and no
// explicit total is given, the total is recomputed from the merged values.
func (p WorkerPatch) Apply(w *Worker) {
	if p.Date != nil {
		w.Date = *p.Date
	}
	if p.WorkerCount != nil {
		w.WorkerCount = *p.WorkerCount
	}
	if p.SalaryPerOne != nil {
		w.SalaryPerOne = *p.SalaryPerOne
	}
	if p.Comment != nil {
		w.Comment = *p.Comment
	}
	switch {
	case p.TotalSalary != nil:
		w.TotalSalary = *p.TotalSalary
	case p.WorkerCount != nil || p.SalaryPerOne != nil:
		w.TotalSalary = w.ComputedTotal()
	}
}

func (w *Worker) ComputedTotal() float64 {
	return float64(w.WorkerCount) * w.SalaryPerOne
}

func (w *Worker) ReportCells() []string {
	return []string{
		formatDate(w.Date),
		formatAmount(float64(w.WorkerCount)),
		formatAmount(w.SalaryPerOne),
		formatAmount(w.TotalSalary),
		w.Comment,
	}
}
