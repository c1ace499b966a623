package expenselog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The expense log stores civil timestamps split over two fields.
//
// Dates are "DD/MM/YY" with a two-digit year meaning 2000+YY, times are
// "HH:MM" with seconds implicitly zero. Both are written in the log's
// civil timezone and are normalized to UTC on import.

// StampFormat is the format used to render instants in the output document:
// ISO-8601 UTC with a literal "Z" suffix.
const StampFormat = time.RFC3339

// ParseDateTime parses one "DD/MM/YY" date field and one "HH:MM" time field
// expressed in loc, and returns the instant converted to UTC.
//
// The zone rules in force on the parsed civil date apply, so a seasonal
// offset change is resolved against the date being read, not against the
// current date.
func ParseDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	day, month, year, err := parseCivilDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	hour, minute, err := parseCivilTime(timeStr)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc).UTC(), nil
}

func parseCivilDate(s string) (day, month, year int, err error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: want \"DD/MM/YY\"", s)
	}
	day, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	year, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid date %q: %w", s, err)
	}
	year += 2000

	if month < 1 || month > 12 {
		return 0, 0, 0, fmt.Errorf("invalid date %q: month out of range", s)
	}
	if day < 1 || day > daysIn(year, time.Month(month)) {
		return 0, 0, 0, fmt.Errorf("invalid date %q: day out of range", s)
	}
	return day, month, year, nil
}

func parseCivilTime(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q: want \"HH:MM\"", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hour, minute, nil
}

// daysIn returns the number of days in the given month.
func daysIn(year int, month time.Month) int {
	// day 0 of the next month normalizes to the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FormatStamp renders an instant in the output document format.
func FormatStamp(t time.Time) string {
	return t.UTC().Format(StampFormat)
}
