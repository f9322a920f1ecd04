package models

import "time"

type Tax struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type TaxPatch struct {
	Date    *time.Time
	Title   *string
	Amount  *float64
	Comment *string
}

func (p TaxPatch) Apply(t *Tax) {
	if p.Date != nil {
		t.Date = *p.Date
	}
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Comment != nil {
		t.Comment = p.Comment
	}
}

func (t *Tax) ReportCells() []string {
	return []string{formatDate(t.Date), t.Title, formatAmount(t.Amount), deref(t.Comment)}
}
