package handlers

import (
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
)

type CreateWorkerRequest struct {
	Date         *Date    `json:"date" validate:"required"`
	WorkerCount  *int     `json:"workerCount" validate:"required,gte=1"`
	SalaryPerOne *float64 `json:"salaryPerOne" validate:"required,gte=0"`
	TotalSalary  *float64 `json:"totalSalary" validate:"omitempty,gte=0"`
	Comment      string   `json:"comment" validate:"max=1000"`
}

// toModel fills in totalSalary from the head count and rate when it is not
// given.
func (r CreateWorkerRequest) toModel() *models.Worker {
	w := &models.Worker{
		Date:         r.Date.Time,
		WorkerCount:  *r.WorkerCount,
		SalaryPerOne: *r.SalaryPerOne,
		Comment:      r.Comment,
	}
	if r.TotalSalary != nil {
		w.TotalSalary = *r.TotalSalary
	} else {
		w.TotalSalary = w.ComputedTotal()
	}
	return w
}

type UpdateWorkerRequest struct {
	Date         *Date    `json:"date"`
	WorkerCount  *int     `json:"workerCount" validate:"omitempty,gte=1"`
	SalaryPerOne *float64 `json:"salaryPerOne" validate:"omitempty,gte=0"`
	TotalSalary  *float64 `json:"totalSalary" validate:"omitempty,gte=0"`
	Comment      *string  `json:"comment" validate:"omitempty,max=1000"`
}

func (r UpdateWorkerRequest) toPatch() services.Patch[models.Worker] {
	return models.WorkerPatch{
		Date:         timePtr(r.Date),
		WorkerCount:  r.WorkerCount,
		SalaryPerOne: r.SalaryPerOne,
		TotalSalary:  r.TotalSalary,
		Comment:      r.Comment,
	}
}

type WorkerHandler = RecordHandler[models.Worker, CreateWorkerRequest, UpdateWorkerRequest]

func NewWorkerHandler(service RecordService[models.Worker], spec *listing.Spec) *WorkerHandler {
	return NewRecordHandler[models.Worker, CreateWorkerRequest, UpdateWorkerRequest](service, RecordConfig[models.Worker]{
		Name:      "Worker record",
		Title:     "Day labour payroll",
		Spec:      spec,
		Headers:   []string{"Date", "Workers", "Salary per one", "Total salary", "Comment"},
		Cells:     (*models.Worker).ReportCells,
		SumLabels: map[string]string{"sumTotalSalary": "Total salary"},
	})
}
