package models

import "time"

// Remont is a repair record.
type Remont struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"`
	Note        *string   `json:"note"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type RemontPatch struct {
	Date        *time.Time
	Description *string
	Cost        *float64
	Note        *string
}

func (p RemontPatch) Apply(r *Remont) {
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Cost != nil {
		r.Cost = *p.Cost
	}
	if p.Note != nil {
		r.Note = p.Note
	}
}

func (r *Remont) ReportCells() []string {
	return []string{formatDate(r.Date), r.Description, formatAmount(r.Cost), deref(r.Note)}
}
