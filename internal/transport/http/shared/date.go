package shared

import "time"

const dateOnly = "2006-01-02"

// ParseDate reads the two date shapes clients send: bare YYYY-MM-DD
// days and full RFC3339 timestamps. Empty input parses to the zero
// time so optional fields stay optional.
func ParseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if day, err := time.Parse(dateOnly, value); err == nil {
		return day, nil
	}
	return time.Parse(time.RFC3339, value)
}
