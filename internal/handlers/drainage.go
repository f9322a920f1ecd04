package handlers

import (
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
)

type CreateDrainageRequest struct {
	Date        *Date    `json:"date"`
	HoursWorked *float64 `json:"hoursWorked" validate:"required,gte=0"`
	TotalSalary *float64 `json:"totalSalary" validate:"required,gte=0"`
}

func (r CreateDrainageRequest) toModel() *models.Drainage {
	return &models.Drainage{
		Date:        dateOrNow(r.Date),
		HoursWorked: *r.HoursWorked,
		TotalSalary: *r.TotalSalary,
	}
}

type UpdateDrainageRequest struct {
	Date        *Date    `json:"date"`
	HoursWorked *float64 `json:"hoursWorked" validate:"omitempty,gte=0"`
	TotalSalary *float64 `json:"totalSalary" validate:"omitempty,gte=0"`
}

func (r UpdateDrainageRequest) toPatch() services.Patch[models.Drainage] {
	return models.DrainagePatch{
		Date:        timePtr(r.Date),
		HoursWorked: r.HoursWorked,
		TotalSalary: r.TotalSalary,
	}
}

type DrainageHandler = RecordHandler[models.Drainage, CreateDrainageRequest, UpdateDrainageRequest]

func NewDrainageHandler(service RecordService[models.Drainage], spec *listing.Spec) *DrainageHandler {
	return NewRecordHandler[models.Drainage, CreateDrainageRequest, UpdateDrainageRequest](service, RecordConfig[models.Drainage]{
		Name:      "Drainage record",
		Title:     "Drainage works",
		Spec:      spec,
		Headers:   []string{"Date", "Hours worked", "Total salary"},
		Cells:     (*models.Drainage).ReportCells,
		SumLabels: map[string]string{"sumTotalSalary": "Total salary"},
	})
}
