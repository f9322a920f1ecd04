package handlers

import (
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
)

type CreateOilRequest struct {
	Date   *Date    `json:"date"`
	Liters *float64 `json:"liters" validate:"required,gte=0"`
	Price  *float64 `json:"price" validate:"required,gte=0"`
	Note   *string  `json:"note" validate:"omitempty,max=1000"`
}

func (r CreateOilRequest) toModel() *models.Oil {
	return &models.Oil{
		Date:   dateOrNow(r.Date),
		Liters: *r.Liters,
		Price:  *r.Price,
		Note:   r.Note,
	}
}

type UpdateOilRequest struct {
	Date   *Date    `json:"date"`
	Liters *float64 `json:"liters" validate:"omitempty,gte=0"`
	Price  *float64 `json:"price" validate:"omitempty,gte=0"`
	Note   *string  `json:"note" validate:"omitempty,max=1000"`
}

func (r UpdateOilRequest) toPatch() services.Patch[models.Oil] {
	return models.OilPatch{
		Date:   timePtr(r.Date),
		Liters: r.Liters,
		Price:  r.Price,
		Note:   r.Note,
	}
}

type OilHandler = RecordHandler[models.Oil, CreateOilRequest, UpdateOilRequest]

func NewOilHandler(service RecordService[models.Oil], spec *listing.Spec) *OilHandler {
	return NewRecordHandler[models.Oil, CreateOilRequest, UpdateOilRequest](service, RecordConfig[models.Oil]{
		Name:    "Oil record",
		Title:   "Fuel and oil",
		Spec:    spec,
		Headers: []string{"Date", "Liters", "Price", "Note"},
		Cells:   (*models.Oil).ReportCells,
		SumLabels: map[string]string{
			"sumLiters": "Total liters",
			"sumPrice":  "Total price",
		},
	})
}
