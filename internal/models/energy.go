package models

import "time"

type Energy struct {
	ID         int64     `json:"id"`
	Date       time.Time `json:"date"`
	AmountPaid float64   `json:"amountPaid"`
	Comment    *string   `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type EnergyPatch struct {
	Date       *time.Time
	AmountPaid *float64
	Comment    *string
}

func (p EnergyPatch) Apply(e *Energy) {
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.AmountPaid != nil {
		e.AmountPaid = *p.AmountPaid
	}
	if p.Comment != nil {
		e.Comment = p.Comment
	}
}

func (e *Energy) ReportCells() []string {
	return []string{formatDate(e.Date), formatAmount(e.AmountPaid), deref(e.Comment)}
}
