package models

import "time"

type Drainage struct {
	ID          int64     `json:"id"`
	Date        time.Time `json:"date"`
	HoursWorked float64   `json:"hoursWorked"`
	TotalSalary float64   `json:"totalSalary"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type DrainagePatch struct {
	Date        *time.Time
	HoursWorked *float64
	TotalSalary *float64
}

func (p DrainagePatch) Apply(d *Drainage) {
	if p.Date != nil {
		d.Date = *p.Date
	}
	if p.HoursWorked != nil {
		d.HoursWorked = *p.HoursWorked
	}
	if p.TotalSalary != nil {
		d.TotalSalary = *p.TotalSalary
	}
}

func (d *Drainage) ReportCells() []string {
	return []string{formatDate(d.Date), formatAmount(d.HoursWorked), formatAmount(d.TotalSalary)}
}
