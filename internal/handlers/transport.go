package handlers

import (
	"strings"

	"github.com/BradenHooton/gardenbook/internal/listing"
	"github.com/BradenHooton/gardenbook/internal/models"
	"github.com/BradenHooton/gardenbook/internal/services"
)

type CreateTransportRequest struct {
	Plate string  `json:"plate" validate:"required,max=32"`
	Type  string  `json:"type" validate:"required,oneof=TRUCK TRACTOR CAR COMBINE OTHER"`
	Model *string `json:"model" validate:"omitempty,max=255"`
	Note  *string `json:"note" validate:"omitempty,max=1000"`
}

func (r CreateTransportRequest) toModel() *models.Transport {
	return &models.Transport{
		Plate: strings.TrimSpace(r.Plate),
		Type:  r.Type,
		Model: r.Model,
		Note:  r.Note,
	}
}

type UpdateTransportRequest struct {
	Plate *string `json:"plate" validate:"omitempty,min=1,max=32"`
	Type  *string `json:"type" validate:"omitempty,oneof=TRUCK TRACTOR CAR COMBINE OTHER"`
	Model *string `json:"model" validate:"omitempty,max=255"`
	Note  *string `json:"note" validate:"omitempty,max=1000"`
}

func (r UpdateTransportRequest) toPatch() services.Patch[models.Transport] {
	p := models.TransportPatch{Type: r.Type, Model: r.Model, Note: r.Note}
	if r.Plate != nil {
		plate := strings.TrimSpace(*r.Plate)
		p.Plate = &plate
	}
	return p
}

type TransportHandler = RecordHandler[models.Transport, CreateTransportRequest, UpdateTransportRequest]

func NewTransportHandler(service RecordService[models.Transport], spec *listing.Spec) *TransportHandler {
	return NewRecordHandler[models.Transport, CreateTransportRequest, UpdateTransportRequest](service, RecordConfig[models.Transport]{
		Name:    "Transport",
		Title:   "Vehicles",
		Spec:    spec,
		Headers: []string{"Plate", "Type", "Model", "Note", "Added"},
		Cells:   (*models.Transport).ReportCells,
	})
}
