package handlers

import (
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
)

type CreateRemontRequest struct {
	Date        *Date    `json:"date"`
	Description string   `json:"description" validate:"required,max=1000"`
	Cost        *float64 `json:"cost" validate:"required,gte=0"`
	Note        *string  `json:"note" validate:"omitempty,max=1000"`
}

func (r CreateRemontRequest) toModel() *models.Remont {
	return &models.Remont{
		Date:        dateOrNow(r.Date),
		Description: r.Description,
		Cost:        *r.Cost,
		Note:        r.Note,
	}
}

type UpdateRemontRequest struct {
	Date        *Date    `json:"date"`
	Description *string  `json:"description" validate:"omitempty,min=1,max=1000"`
	Cost        *float64 `json:"cost" validate:"omitempty,gte=0"`
	Note        *string  `json:"note" validate:"omitempty,max=1000"`
}

func (r UpdateRemontRequest) toPatch() services.Patch[models.Remont] {
	return models.RemontPatch{
		Date:        timePtr(r.Date),
		Description: r.Description,
		Cost:        r.Cost,
		Note:        r.Note,
	}
}

type RemontHandler = RecordHandler[models.Remont, CreateRemontRequest, UpdateRemontRequest]

func NewRemontHandler(service RecordService[models.Remont], spec *listing.Spec) *RemontHandler {
	return NewRecordHandler[models.Remont, CreateRemontRequest, UpdateRemontRequest](service, RecordConfig[models.Remont]{
		Name:      "Repair record",
		Title:     "Repairs",
		Spec:      spec,
		Headers:   []string{"Date", "Description", "Cost", "Note"},
		Cells:     (*models.Remont).ReportCells,
		SumLabels: map[string]string{"sumCost": "Total cost"},
	})
}
