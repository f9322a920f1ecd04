package listing

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/BradenHooton/gardenbook/internal/models"
)

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

const dateOnly = "2006-01-02"

// Query is a validated listing request.
type Query struct {
	Page      int
	Limit     int
	SortBy    string
	SortOrder SortOrder
	// Filters echoes the accepted filter parameters.
	Filters map[string]string

	spec  *Spec
	conds []string
	args  []any
}

// Parse validates values against spec. Any rejected parameter yields a
// *models.FieldError, which matches models.ErrBadRequest.
func Parse(spec *Spec, values url.Values) (*Query, error) {
	q := &Query{
		Page:      1,
		Limit:     spec.defaultLimit(),
		SortBy:    spec.DefaultSort,
		SortOrder: Desc,
		Filters:   map[string]string{},
		spec:      spec,
	}

	var err error
	if q.Page, err = positiveInt(values, "page", q.Page); err != nil {
		return nil, err
	}
	if q.Limit, err = positiveInt(values, "limit", q.Limit); err != nil {
		return nil, err
	}
	if q.Limit > spec.maxLimit() {
		return nil, &models.FieldError{Field: "limit", Message: fmt.Sprintf("must not exceed %d", spec.maxLimit())}
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return nil, &models.FieldError{Field: "page", Message: "is out of range"}
	}

	if v := strings.TrimSpace(values.Get("sortBy")); v != "" {
		if _, ok := spec.SortFields[v]; !ok {
			return nil, &models.FieldError{Field: "sortBy", Message: fmt.Sprintf("invalid sort field %q", v)}
		}
		q.SortBy = v
	}

	if v := strings.ToLower(strings.TrimSpace(values.Get("sortOrder"))); v != "" {
		switch SortOrder(v) {
		case Asc, Desc:
			q.SortOrder = SortOrder(v)
		default:
			return nil, &models.FieldError{Field: "sortOrder", Message: "must be asc or desc"}
		}
	}

	if v := strings.TrimSpace(values.Get("search")); v != "" && len(spec.Search) > 0 {
		q.Filters["search"] = v
		placeholder := q.bind("%" + escapeLike(v) + "%")
		parts := make([]string, len(spec.Search))
		for i, col := range spec.Search {
			parts[i] = fmt.Sprintf("%s ILIKE %s", col, placeholder)
		}
		q.conds = append(q.conds, "("+strings.Join(parts, " OR ")+")")
	}

	for _, m := range spec.Matches {
		if v := strings.TrimSpace(values.Get(m.Param)); v != "" {
			q.Filters[m.Param] = v
			q.conds = append(q.conds, fmt.Sprintf("%s ILIKE %s", m.Column, q.bind("%"+escapeLike(v)+"%")))
		}
	}

	for _, e := range spec.Enums {
		v := strings.TrimSpace(values.Get(e.Param))
		if v == "" {
			continue
		}
		if !contains(e.Values, v) {
			return nil, &models.FieldError{Field: e.Param, Message: "must be one of " + strings.Join(e.Values, ", ")}
		}
		q.Filters[e.Param] = v
		q.conds = append(q.conds, fmt.Sprintf("%s = %s", e.Column, q.bind(v)))
	}

	for _, r := range spec.Ranges {
		if err := q.addRange(r, values); err != nil {
			return nil, err
		}
	}

	return q, nil
}

func (q *Query) addRange(r Range, values url.Values) error {
	minRaw := strings.TrimSpace(values.Get(r.MinParam))
	maxRaw := strings.TrimSpace(values.Get(r.MaxParam))

	switch r.Kind {
	case Date:
		var from, to time.Time
		var toDateOnly bool
		var err error
		if minRaw != "" {
			if from, _, err = ParseDate(minRaw); err != nil {
				return &models.FieldError{Field: r.MinParam, Message: "must be a date (YYYY-MM-DD or RFC 3339)"}
			}
		}
		if maxRaw != "" {
			if to, toDateOnly, err = ParseDate(maxRaw); err != nil {
				return &models.FieldError{Field: r.MaxParam, Message: "must be a date (YYYY-MM-DD or RFC 3339)"}
			}
		}
		if minRaw != "" && maxRaw != "" && from.After(to) {
			return &models.FieldError{Field: r.MinParam, Message: "must not be after " + r.MaxParam}
		}
		if minRaw != "" {
			q.Filters[r.MinParam] = minRaw
			q.conds = append(q.conds, fmt.Sprintf("%s >= %s", r.Column, q.bind(from)))
		}
		if maxRaw != "" {
			q.Filters[r.MaxParam] = maxRaw
			// A bare date covers the whole day.
			if toDateOnly {
				q.conds = append(q.conds, fmt.Sprintf("%s < %s", r.Column, q.bind(to.AddDate(0, 0, 1))))
			} else {
				q.conds = append(q.conds, fmt.Sprintf("%s <= %s", r.Column, q.bind(to)))
			}
		}
	default:
		var lo, hi float64
		var err error
		if minRaw != "" {
			if lo, err = strconv.ParseFloat(minRaw, 64); err != nil {
				return &models.FieldError{Field: r.MinParam, Message: "must be a number"}
			}
		}
		if maxRaw != "" {
			if hi, err = strconv.ParseFloat(maxRaw, 64); err != nil {
				return &models.FieldError{Field: r.MaxParam, Message: "must be a number"}
			}
		}
		if minRaw != "" && maxRaw != "" && lo > hi {
			return &models.FieldError{Field: r.MinParam, Message: "must not exceed " + r.MaxParam}
		}
		if minRaw != "" {
			q.Filters[r.MinParam] = minRaw
			q.conds = append(q.conds, fmt.Sprintf("%s >= %s", r.Column, q.bind(lo)))
		}
		if maxRaw != "" {
			q.Filters[r.MaxParam] = maxRaw
			q.conds = append(q.conds, fmt.Sprintf("%s <= %s", r.Column, q.bind(hi)))
		}
	}
	return nil
}

// ParseDate accepts YYYY-MM-DD or RFC 3339. isDateOnly reports which form
// matched.
func ParseDate(s string) (t time.Time, isDateOnly bool, err error) {
	if t, err = time.Parse(dateOnly, s); err == nil {
		return t, true, nil
	}
	t, err = time.Parse(time.RFC3339, s)
	return t, false, err
}

func (q *Query) bind(v any) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

// Offset is the number of rows skipped before the current page.
func (q *Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// Where renders the filter predicates, or an empty string when there are
// none. The returned args are owned by the caller.
func (q *Query) Where() (string, []any) {
	args := append([]any(nil), q.args...)
	if len(q.conds) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(q.conds, " AND "), args
}

// OrderBy renders the sort clause with id as tie-breaker.
func (q *Query) OrderBy() string {
	col := q.spec.SortFields[q.SortBy]
	dir := "DESC"
	if q.SortOrder == Asc {
		dir = "ASC"
	}
	if col == idColumn {
		return fmt.Sprintf(" ORDER BY %s %s", col, dir)
	}
	return fmt.Sprintf(" ORDER BY %s %s, %s %s", col, dir, idColumn, dir)
}

// PageSQL renders the statement selecting one page of rows.
func (q *Query) PageSQL(columns string) (string, []any) {
	where, args := q.Where()
	args = append(args, q.Limit, q.Offset())
	sql := fmt.Sprintf("SELECT %s FROM %s%s%s LIMIT $%d OFFSET $%d",
		columns, q.spec.Table, where, q.OrderBy(), len(args)-1, len(args))
	return sql, args
}

// AggregateSQL renders the statement counting the filtered set and summing
// the Spec's aggregate columns over it.
func (q *Query) AggregateSQL() (string, []any) {
	where, args := q.Where()
	cols := []string{"COUNT(*)"}
	for _, s := range q.spec.Sums {
		cols = append(cols, fmt.Sprintf("COALESCE(SUM(%s), 0)::float8", s.Column))
	}
	return fmt.Sprintf("SELECT %s FROM %s%s", strings.Join(cols, ", "), q.spec.Table, where), args
}

type rowScanner interface {
	Scan(dest ...any) error
}

// ScanAggregate reads the row produced by AggregateSQL.
func (q *Query) ScanAggregate(row rowScanner) (int64, map[string]float64, error) {
	var total int64
	sums := make([]float64, len(q.spec.Sums))
	dest := []any{&total}
	for i := range sums {
		dest = append(dest, &sums[i])
	}
	if err := row.Scan(dest...); err != nil {
		return 0, nil, err
	}

	var out map[string]float64
	if len(q.spec.Sums) > 0 {
		out = make(map[string]float64, len(sums))
		for i, s := range q.spec.Sums {
			out[s.Key] = sums[i]
		}
	}
	return total, out, nil
}

// Unpaged returns a copy of q selecting the first limit rows.
func (q *Query) Unpaged(limit int) *Query {
	c := *q
	c.Page = 1
	c.Limit = limit
	return &c
}

func positiveInt(values url.Values, key string, def int) (int, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, &models.FieldError{Field: key, Message: "must be a positive integer"}
	}
	return n, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
