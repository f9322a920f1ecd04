package handlers

import (
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
)

type CreateFertilizerRequest struct {
	Date           *Date    `json:"date"`
	FertilizerType string   `json:"fertilizerType" validate:"required,max=255"`
	MachineCount   string   `json:"machineCount" validate:"required,max=255"`
	TonAmount      *float64 `json:"tonAmount" validate:"required,gte=0"`
	Comment        *string  `json:"comment" validate:"omitempty,max=1000"`
}

func (r CreateFertilizerRequest) toModel() *models.Fertilizer {
	return &models.Fertilizer{
		Date:           dateOrNow(r.Date),
		FertilizerType: r.FertilizerType,
		MachineCount:   r.MachineCount,
		TonAmount:      *r.TonAmount,
		Comment:        r.Comment,
	}
}

type UpdateFertilizerRequest struct {
	Date           *Date    `json:"date"`
	FertilizerType *string  `json:"fertilizerType" validate:"omitempty,min=1,max=255"`
	MachineCount   *string  `json:"machineCount" validate:"omitempty,min=1,max=255"`
	TonAmount      *float64 `json:"tonAmount" validate:"omitempty,gte=0"`
	Comment        *string  `json:"comment" validate:"omitempty,max=1000"`
}

func (r UpdateFertilizerRequest) toPatch() services.Patch[models.Fertilizer] {
	return models.FertilizerPatch{
		Date:           timePtr(r.Date),
		FertilizerType: r.FertilizerType,
		MachineCount:   r.MachineCount,
		TonAmount:      r.TonAmount,
		Comment:        r.Comment,
	}
}

type FertilizerHandler = RecordHandler[models.Fertilizer, CreateFertilizerRequest, UpdateFertilizerRequest]

func NewFertilizerHandler(service RecordService[models.Fertilizer], spec *listing.Spec) *FertilizerHandler {
	return NewRecordHandler[models.Fertilizer, CreateFertilizerRequest, UpdateFertilizerRequest](service, RecordConfig[models.Fertilizer]{
		Name:      "Fertilizer record",
		Title:     "Fertilizer applications",
		Spec:      spec,
		Headers:   []string{"Date", "Fertilizer", "Machines", "Tons", "Comment"},
		Cells:     (*models.Fertilizer).ReportCells,
		SumLabels: map[string]string{"sumTonAmount": "Total tons"},
	})
}
