package models

import "time"

type Fertilizer struct {
	ID             int64     `json:"id"`
	Date           time.Time `json:"date"`
	FertilizerType string    `json:"fertilizerType"`
	MachineCount   string    `json:"machineCount"`
	TonAmount      float64   `json:"tonAmount"`
	Comment        *string   `json:"comment"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type FertilizerPatch struct {
	Date           *time.Time
	FertilizerType *string
	MachineCount   *string
	TonAmount      *float64
	Comment        *string
}

func (p FertilizerPatch) Apply(f *Fertilizer) {
	if p.Date != nil {
		f.Date = *p.Date
	}
	if p.FertilizerType != nil {
		f.FertilizerType = *p.FertilizerType
	}
	if p.MachineCount != nil {
		f.MachineCount = *p.MachineCount
	}
	if p.TonAmount != nil {
		f.TonAmount = *p.TonAmount
	}
	if p.Comment != nil {
		f.Comment = p.Comment
	}
}

func (f *Fertilizer) ReportCells() []string {
	return []string{formatDate(f.Date), f.FertilizerType, f.MachineCount, formatAmount(f.TonAmount), deref(f.Comment)}
}
