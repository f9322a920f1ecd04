package models

import "time"

const (
	TransportTruck   = "TRUCK"
	TransportTractor = "TRACTOR"
	TransportCar     = "CAR"
	TransportCombine = "COMBINE"
	TransportOther   = "OTHER"
)

// TransportTypes lists the accepted vehicle types.
var TransportTypes = []string{TransportTruck, TransportTractor, TransportCar, TransportCombine, TransportOther}

type Transport struct {
	ID        int64     `json:"id"`
	Plate     string    `json:"plate"`
	Type      string    `json:"type"`
	Model     *string   `json:"model"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TransportPatch struct {
	Plate *string
	Type  *string
	Model *string
	Note  *string
}

func (p TransportPatch) Apply(t *Transport) {
	if p.Plate != nil {
		t.Plate = *p.Plate
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Model != nil {
		t.Model = p.Model
	}
	if p.Note != nil {
		t.Note = p.Note
	}
}

func (t *Transport) ReportCells() []string {
	return []string{t.Plate, t.Type, deref(t.Model), deref(t.Note), formatDate(t.CreatedAt)}
}
