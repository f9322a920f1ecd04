package handlers

import (
	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
)

type CreateTaxRequest struct {
	Date    *Date    `json:"date" validate:"required"`
	Title   string   `json:"title" validate:"required,max=255"`
	Amount  *float64 `json:"amount" validate:"required,gte=0"`
	Comment *string  `json:"comment" validate:"omitempty,max=1000"`
}

func (r CreateTaxRequest) toModel() *models.Tax {
	return &models.Tax{
		Date:    r.Date.Time,
		Title:   r.Title,
		Amount:  *r.Amount,
		Comment: r.Comment,
	}
}

type UpdateTaxRequest struct {
	Date    *Date    `json:"date"`
	Title   *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Amount  *float64 `json:"amount" validate:"omitempty,gte=0"`
	Comment *string  `json:"comment" validate:"omitempty,max=1000"`
}

func (r UpdateTaxRequest) toPatch() services.Patch[models.Tax] {
	return models.TaxPatch{
		Date:    timePtr(r.Date),
		Title:   r.Title,
		Amount:  r.Amount,
		Comment: r.Comment,
	}
}

type TaxHandler = RecordHandler[models.Tax, CreateTaxRequest, UpdateTaxRequest]

func NewTaxHandler(service RecordService[models.Tax], spec *listing.Spec) *TaxHandler {
	return NewRecordHandler[models.Tax, CreateTaxRequest, UpdateTaxRequest](service, RecordConfig[models.Tax]{
		Name:      "Tax record",
		Title:     "Taxes",
		Spec:      spec,
		Headers:   []string{"Date", "Title", "Amount", "Comment"},
		Cells:     (*models.Tax).ReportCells,
		SumLabels: map[string]string{"sumAmount": "Total amount"},
	})
}
