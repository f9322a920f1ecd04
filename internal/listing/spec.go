// Package listing implements the filter, sort and paginate contract shared by
// every record listing endpoint.
//
// Each record type declares a Spec naming the query parameters it accepts and
// the SQL columns they bind to. Parse validates raw query values against the
// Spec and yields a Query whose SQL fragments only ever reference columns
// declared in the Spec.
package listing

// Kind is the value type of a range filter.
type Kind int

const (
	Number Kind = iota
	Date
)

// Range is an inclusive min/max filter over one column.
type Range struct {
	MinParam string
	MaxParam string
	Column   string
	Kind     Kind
}

// Match is a case-insensitive substring filter over one column.
type Match struct {
	Param  string
	Column string
}

// Enum is an equality filter restricted to a fixed set of values.
type Enum struct {
	Param  string
	Column string
	Values []string
}

// Sum is an aggregate reported in the listing meta under Key.
type Sum struct {
	Key    string
	Column string
}

type Spec struct {
	Table        string
	DefaultLimit int
	MaxLimit     int
	DefaultSort  string
	// SortFields maps API field names to SQL columns.
	SortFields map[string]string
	// Search columns are matched against the free-text search parameter.
	Search  []string
	Ranges  []Range
	Matches []Match
	Enums   []Enum
	Sums    []Sum
}

const (
	defaultMaxLimit = 100
	idColumn        = "id"
)

func (s *Spec) maxLimit() int {
	if s.MaxLimit > 0 {
		return s.MaxLimit
	}
	return defaultMaxLimit
}

func (s *Spec) defaultLimit() int {
	if s.DefaultLimit > 0 {
		return s.DefaultLimit
	}
	return 20
}
