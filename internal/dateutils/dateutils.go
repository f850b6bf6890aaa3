// Package dateutils normalizes the mixed date formats found in issuance
// exports and derives the day and week bucket keys used for trend grouping.
package dateutils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Common date format constants used throughout the application
const (
	DateLayoutISO  = "2006-01-02"
	DateLayoutFull = "2006-01-02 15:04:05"
	DayLabelLayout = "02 Jan"
)

// dmyPattern matches day[sep]month[sep]year at the start of a token, where
// sep is "/" or "-", day and month are 1-2 digits and the year is 2 or 4
// digits. Source data is non-US; an ambiguous "05/03/2024" always means
// 5 March, never 3 May.
var dmyPattern = regexp.MustCompile(`^(\d{1,2})[/\-](\d{1,2})[/\-](\d{2,4})`)

// fallbackFormats is tried in order when a token does not match the
// day-month-year pattern.
var fallbackFormats = []string{
	DateLayoutISO,
	DateLayoutFull,
	time.RFC3339,
	"2006/01/02",
	"2-Jan-2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"January 2, 2006",
}

// Normalize parses a raw date token. Day-month-year order wins for
// slash/dash separated numeric tokens; a 2-digit year is taken as
// 2000+year. Anything that cannot be resolved to a valid calendar date
// reports ok=false, which excludes the record from date-bucketed grouping
// only.
func Normalize(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}

	if m := dmyPattern.FindStringSubmatch(raw); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}

		t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
		// time.Date normalizes out-of-range components; an impossible
		// calendar date like 31/02 must stay unparseable.
		if t.Year() != year || int(t.Month()) != month || t.Day() != day {
			return time.Time{}, false
		}
		return t, true
	}

	for _, format := range fallbackFormats {
		if t, err := time.Parse(format, raw); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

// DayKey returns the daily bucket key, YYYY-MM-DD with zero padding.
func DayKey(t time.Time) string {
	return t.Format(DateLayoutISO)
}

// WeekKey returns the weekly bucket key in the form YYYY-W<n> without zero
// padding on n. The week number is a simplified scheme, not ISO 8601:
// ceil((weekday index + 1 + whole days since January 1) / 7). Kept
// deliberately; trend keys only need to be stable and ordered within a
// dataset.
func WeekKey(t time.Time) string {
	days := t.YearDay() - 1
	weekday := int(t.Weekday()) + 1
	week := (weekday + days + 6) / 7
	return fmt.Sprintf("%d-W%d", t.Year(), week)
}

// DayLabel converts a YYYY-MM-DD bucket key into the short axis label used
// by daily trend charts ("05 Mar"). Keys that do not parse are returned
// unchanged.
func DayLabel(key string) string {
	t, err := time.Parse(DateLayoutISO, key)
	if err != nil {
		return key
	}
	return t.Format(DayLabelLayout)
}
