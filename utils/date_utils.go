package utils

import "time"

// dateFormats are the accepted layouts for dates arriving from clients and
// from the dataset, most specific first.
var dateFormats = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a date string, trying multiple formats.
func ParseDate(dateStr string) (time.Time, error) {
	var lastErr error
	for _, format := range dateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		} else {
			lastErr = err
		}
	}
	return time.Time{}, lastErr
}

// ParseMonth parses a month label ("2024-01" or any full date form) and
// returns the first day of that month, so labels can be ordered by the
// underlying date rather than lexically.
func ParseMonth(label string) (time.Time, error) {
	if t, err := time.Parse("2006-01", label); err == nil {
		return t, nil
	}
	t, err := ParseDate(label)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
}
