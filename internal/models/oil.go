package models

import "time"

type Oil struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Liters    float64   `json:"liters"`
	Price     float64   `json:"price"`
	Note      *string   `json:"note"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type OilPatch struct {
	Date   *time.Time
	Liters *float64
	Price  *float64
	Note   *string
}

func (p OilPatch) Apply(o *Oil) {
	if p.Date != nil {
		o.Date = *p.Date
	}
	if p.Liters != nil {
		o.Liters = *p.Liters
	}
	if p.Price != nil {
		o.Price = *p.Price
	}
	if p.Note != nil {
		o.Note = p.Note
	}
}

func (o *Oil) ReportCells() []string {
	return []string{formatDate(o.Date), formatAmount(o.Liters), formatAmount(o.Price), deref(o.Note)}
}
