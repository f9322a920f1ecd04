package handlers

import (
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
)

type CreateEnergyRequest struct {
	Date       *Date    `json:"date" validate:"required"`
	AmountPaid *float64 `json:"amountPaid" validate:"required,gte=0"`
	Comment    *string  `json:"comment" validate:"omitempty,max=1000"`
}

func (r CreateEnergyRequest) toModel() *models.Energy {
	return &models.Energy{
		Date:       r.Date.Time,
		AmountPaid: *r.AmountPaid,
		Comment:    r.Comment,
	}
}

type UpdateEnergyRequest struct {
	Date       *Date    `json:"date"`
	AmountPaid *float64 `json:"amountPaid" validate:"omitempty,gte=0"`
	Comment    *string  `json:"comment" validate:"omitempty,max=1000"`
}

func (r UpdateEnergyRequest) toPatch() services.Patch[models.Energy] {
	return models.EnergyPatch{
		Date:       timePtr(r.Date),
		AmountPaid: r.AmountPaid,
		Comment:    r.Comment,
	}
}

type EnergyHandler = RecordHandler[models.Energy, CreateEnergyRequest, UpdateEnergyRequest]

func NewEnergyHandler(service RecordService[models.Energy], spec *listing.Spec) *EnergyHandler {
	return NewRecordHandler[models.Energy, CreateEnergyRequest, UpdateEnergyRequest](service, RecordConfig[models.Energy]{
		Name:      "Energy record",
		Title:     "Energy payments",
		Spec:      spec,
		Headers:   []string{"Date", "Amount paid", "Comment"},
		Cells:     (*models.Energy).ReportCells,
		SumLabels: map[string]string{"sumAmount": "Total paid"},
	})
}
