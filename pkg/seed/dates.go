package seed

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const isoDate = "2006-01-02"

// ReferenceDate anchors trips, flashcard study dates and the character reset.
const ReferenceDate = "2026-02-14"

// ReferenceInstant stands in for "now" wherever a generated document needs a
// timestamp, so output never depends on the wall clock.
const ReferenceInstant = "2026-02-14T12:00:00.000Z"

var referenceEpochMs = time.Date(2026, time.February, 14, 12, 0, 0, 0, time.UTC).UnixMilli()

// AddDays shifts an ISO date by n calendar days in UTC.
func AddDays(date string, n int) (string, error) {
	t, err := time.Parse(isoDate, date)
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", date, err)
	}
	return t.AddDate(0, 0, n).Format(isoDate), nil
}

func mustAddDays(date string, n int) string {
	d, err := AddDays(date, n)
	if err != nil {
		panic(err)
	}
	return d
}

// DateRange returns days consecutive ISO dates starting at start.
func DateRange(start string, days int) ([]string, error) {
	if _, err := time.Parse(isoDate, start); err != nil {
		return nil, fmt.Errorf("parse date %q: %w", start, err)
	}
	dates := make([]string, 0, max(days, 0))
	for i := 0; i < days; i++ {
		dates = append(dates, mustAddDays(start, i))
	}
	return dates, nil
}

// ValidDate reports whether s is a YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(isoDate, s)
	return err == nil
}

// WeekID formats a year and week number as "YYYY-Www".
func WeekID(year, week int) string {
	return fmt.Sprintf("%d-W%02d", year, week)
}

// ParseWeekID splits a "YYYY-Www" identifier.
func ParseWeekID(id string) (year, week int, err error) {
	y, w, ok := strings.Cut(id, "-W")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeekID, id)
	}
	year, err = strconv.Atoi(y)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeekID, id)
	}
	week, err = strconv.Atoi(w)
	if err != nil || week < 1 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidWeekID, id)
	}
	return year, week, nil
}
