package entity

import "time"

// timestampLayouts are the wire formats the backend has been observed
// to emit. The Spring side sends zone-less ISO timestamps for most
// records and date-only strings for promotion windows.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses a backend timestamp string, tolerating the
// known layout drift. Returns the zero time and false for empty or
// unparseable input.
func ParseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
