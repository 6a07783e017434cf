package dedup

import "time"

// Accepted discovery timestamp layouts: RFC 3339 with "Z" or a numeric
// offset, T- or space-separated naive date-times (assumed UTC) with or
// without seconds, and bare dates. Fractional seconds are accepted after
// any seconds field.
var timestampLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseTimestamp parses a discoveredAt value. The second return is false
// when the value matches no accepted layout; callers fall back silently.
func parseTimestamp(s string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
