package dedup

import "testing"

func TestParseTimestamp_AcceptedLayouts(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"rfc3339 utc", "2024-01-01T00:00:00Z"},
		{"rfc3339 offset", "2024-01-01T00:00:00+05:00"},
		{"rfc3339 fractional", "2024-01-01T00:00:00.123456Z"},
		{"naive datetime", "2024-01-01T00:00:00"},
		{"naive no seconds", "2024-01-01T00:00"},
		{"space separator", "2024-01-01 12:30:45"},
		{"space no seconds", "2024-01-01 12:30"},
		{"bare date", "2024-01-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := parseTimestamp(tt.value); !ok {
				t.Errorf("parseTimestamp(%q) not accepted", tt.value)
			}
		})
	}
}

func TestParseTimestamp_Rejected(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"garbage", "not-a-date"},
		{"unix seconds", "1704067200"},
		{"month only", "2024-01"},
		{"trailing text", "2024-01-01T00:00:00Z oops"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := parseTimestamp(tt.value); ok {
				t.Errorf("parseTimestamp(%q) accepted, want rejected", tt.value)
			}
		})
	}
}

func TestParseTimestamp_Ordering(t *testing.T) {
	early, ok := parseTimestamp("2023-12-01T00:00:00Z")
	if !ok {
		t.Fatal("failed to parse early timestamp")
	}
	late, ok := parseTimestamp("2024-01-01T00:00:00Z")
	if !ok {
		t.Fatal("failed to parse late timestamp")
	}
	if !early.Before(late) {
		t.Errorf("expected %v before %v", early, late)
	}
}

func TestParseTimestamp_OffsetsCompareOnInstant(t *testing.T) {
	utc, _ := parseTimestamp("2024-01-01T10:00:00Z")
	offset, _ := parseTimestamp("2024-01-01T12:00:00+02:00")
	if !utc.Equal(offset) {
		t.Errorf("10:00Z and 12:00+02:00 should be the same instant, got %v and %v", utc, offset)
	}
}
