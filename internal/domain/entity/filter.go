package entity

import "time"

// FilterCriteria is the value object behind every list view's filter
// bar. It carries no identity and is replaced wholesale on each change.
// An empty field means "no constraint", never "match empty".
type FilterCriteria struct {
	SearchTerm string `json:"searchTerm,omitempty" query:"search"`
	Status     string `json:"status,omitempty" query:"status"`
	DateFrom   string `json:"dateFrom,omitempty" query:"date_from"`
	DateTo     string `json:"dateTo,omitempty" query:"date_to"`
}

// IsZero reports whether no dimension is constrained.
func (c FilterCriteria) IsZero() bool {
	return c.SearchTerm == "" && c.Status == "" && c.DateFrom == "" && c.DateTo == ""
}

// DateBounds resolves the criteria's date range. The upper bound is
// pushed to the end of its day (23:59:59.999) so "to 2025-01-31"
// includes the whole of January 31. A malformed bound is treated as
// unset.
func (c FilterCriteria) DateBounds() (from, to time.Time, hasFrom, hasTo bool) {
	if t, ok := ParseTimestamp(c.DateFrom); ok {
		from, hasFrom = t, true
	}
	if t, ok := ParseTimestamp(c.DateTo); ok {
		to = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
		hasTo = true
	}

	return from, to, hasFrom, hasTo
}
