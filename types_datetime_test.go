package expenselog

import (
	"testing"
	"time"
)

func edmonton(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("America/Edmonton")
	if err != nil {
		t.Fatalf("cannot load location: %v", err)
	}
	return loc
}

func TestParseDateTime(t *testing.T) {
	loc := edmonton(t)

	tests := []struct {
		date, clock string
		want        string // UTC instant in StampFormat
	}{
		// winter, Edmonton is UTC-7
		{"15/01/24", "14:30", "2024-01-15T21:30:00Z"},
		// summer, Edmonton is UTC-6
		{"01/07/24", "14:30", "2024-07-01T20:30:00Z"},
		// the offset in force on the parsed date applies, not today's:
		// just before the spring transition the zone is still UTC-7
		{"10/03/24", "01:59", "2024-03-10T08:59:00Z"},
		// and just after the fall transition it is UTC-7 again
		{"03/11/24", "03:00", "2024-11-03T10:00:00Z"},
		// midnight and single digit fields
		{"1/2/24", "0:05", "2024-02-01T07:05:00Z"},
		// two-digit years always mean 2000+YY
		{"01/01/99", "12:00", "2099-01-01T19:00:00Z"},
	}
	for _, tc := range tests {
		got, err := ParseDateTime(tc.date, tc.clock, loc)
		if err != nil {
			t.Errorf("ParseDateTime(%q, %q) returned an unexpected error: %v", tc.date, tc.clock, err)
			continue
		}
		if got.Location() != time.UTC {
			t.Errorf("ParseDateTime(%q, %q) is not in UTC", tc.date, tc.clock)
		}
		if s := FormatStamp(got); s != tc.want {
			t.Errorf("ParseDateTime(%q, %q) = %s, want %s", tc.date, tc.clock, s, tc.want)
		}
	}
}

func TestParseDateTimeRejectsMalformedInput(t *testing.T) {
	loc := edmonton(t)

	tests := []struct{ date, clock string }{
		{"15-01-24", "14:30"}, // wrong date separator
		{"15/01", "14:30"},    // missing year
		{"aa/bb/cc", "14:30"}, // non numeric date
		{"32/01/24", "14:30"}, // day out of range
		{"29/02/23", "14:30"}, // not a leap year
		{"15/13/24", "14:30"}, // month out of range
		{"00/01/24", "14:30"}, // day zero
		{"15/01/24", "14h30"}, // wrong time separator
		{"15/01/24", "14"},    // missing minutes
		{"15/01/24", "24:00"}, // hour out of range
		{"15/01/24", "14:60"}, // minute out of range
		{"15/01/24", "aa:30"}, // non numeric time
	}
	for _, tc := range tests {
		if _, err := ParseDateTime(tc.date, tc.clock, loc); err == nil {
			t.Errorf("ParseDateTime(%q, %q) succeeded, want error", tc.date, tc.clock)
		}
	}
}

func TestParseDateTimeLeapDay(t *testing.T) {
	got, err := ParseDateTime("29/02/24", "12:00", time.UTC)
	if err != nil {
		t.Fatalf("ParseDateTime returned an unexpected error: %v", err)
	}
	if s := FormatStamp(got); s != "2024-02-29T12:00:00Z" {
		t.Errorf("ParseDateTime = %s, want 2024-02-29T12:00:00Z", s)
	}
}

func TestFormatStampUsesZSuffix(t *testing.T) {
	loc := edmonton(t)
	local := time.Date(2024, time.January, 15, 14, 30, 0, 0, loc)
	if got, want := FormatStamp(local), "2024-01-15T21:30:00Z"; got != want {
		t.Errorf("FormatStamp() = %q, want %q", got, want)
	}
}
