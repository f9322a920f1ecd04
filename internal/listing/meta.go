package listing

import "encoding/json"

// Meta describes a returned page and the filtered set it was cut from.
type Meta struct {
	Total     int64
	Page      int
	Limit     int
	LastPage  int
	HasNext   bool
	HasPrev   bool
	SortBy    string
	SortOrder SortOrder
	Filters   map[string]string
	// Sums are keyed by the Spec's Sum.Key and rendered at the top level.
	Sums map[string]float64
}

// Page is a listing result.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

func NewMeta(q *Query, total int64, sums map[string]float64) Meta {
	lastPage := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return Meta{
		Total:     total,
		Page:      q.Page,
		Limit:     q.Limit,
		LastPage:  lastPage,
		HasNext:   q.Page < lastPage,
		HasPrev:   q.Page > 1,
		SortBy:    q.SortBy,
		SortOrder: q.SortOrder,
		Filters:   q.Filters,
		Sums:      sums,
	}
}

func (m Meta) MarshalJSON() ([]byte, error) {
	out := map[string]any{
		"total":     m.Total,
		"page":      m.Page,
		"limit":     m.Limit,
		"lastPage":  m.LastPage,
		"hasNext":   m.HasNext,
		"hasPrev":   m.HasPrev,
		"sortBy":    m.SortBy,
		"sortOrder": m.SortOrder,
		"filters":   m.Filters,
	}
	if m.Filters == nil {
		out["filters"] = map[string]string{}
	}
	for k, v := range m.Sums {
		out[k] = v
	}
	return json.Marshal(out)
}
