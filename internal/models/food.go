package models

import "time"

type Food struct {
	ID        int64     `json:"id"`
	Date      time.Time `json:"date"`
	ShopName  string    `json:"shopName"`
	Amount    float64   `json:"amount"`
	Comment   *string   `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type FoodPatch struct {
	Date     *time.Time
	ShopName *string
	Amount   *float64
	Comment  *string
}

func (p FoodPatch) Apply(f *Food) {
	if p.Date != nil {
		f.Date = *p.Date
	}
	if p.ShopName != nil {
		f.ShopName = *p.ShopName
	}
	if p.Amount != nil {
		f.Amount = *p.Amount
	}
	if p.Comment != nil {
		f.Comment = p.Comment
	}
}

func (f *Food) ReportCells() []string {
	return []string{formatDate(f.Date), f.ShopName, formatAmount(f.Amount), deref(f.Comment)}
}
