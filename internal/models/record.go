package models

import (
	"strconv"
	"time"
)

// Report cell formatting shared by the record types.
const reportDateLayout = "2006-01-02"

func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatDate(t time.Time) string {
	return t.Format(reportDateLayout)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
