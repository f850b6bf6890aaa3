package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDayMonthYear(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expectOk  bool
		expectedY int
		expectedM time.Month
		expectedD int
	}{
		{"DMY slashes", "05/03/2024", true, 2024, time.March, 5},
		{"DMY dashes", "05-03-2024", true, 2024, time.March, 5},
		{"Two digit year", "05-03-26", true, 2026, time.March, 5},
		{"Single digit day and month", "7/4/2024", true, 2024, time.April, 7},
		{"Mixed separators", "15/11-2023", true, 2023, time.November, 15},
		{"Day beyond 12 disambiguates nothing, still DMY", "25/12/2024", true, 2024, time.December, 25},
		{"Impossible calendar date", "31/02/2024", false, 0, 0, 0},
		{"Month out of range", "05/13/2024", false, 0, 0, 0},
		{"Empty", "", false, 0, 0, 0},
		{"Garbage", "not a date", false, 0, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, ok := Normalize(tc.input)
			assert.Equal(t, tc.expectOk, ok)
			if tc.expectOk {
				assert.Equal(t, tc.expectedY, date.Year())
				assert.Equal(t, tc.expectedM, date.Month())
				assert.Equal(t, tc.expectedD, date.Day())
			}
		})
	}
}

func TestNormalizeFallbackFormats(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"ISO", "2024-03-05"},
		{"ISO with time", "2024-03-05 10:30:00"},
		{"Slash ISO", "2024/03/05"},
		{"Month name", "5-Mar-2024"},
		{"Long month name", "March 5, 2024"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			date, ok := Normalize(tc.input)
			assert.True(t, ok)
			assert.Equal(t, 2024, date.Year())
			assert.Equal(t, time.March, date.Month())
			assert.Equal(t, 5, date.Day())
		})
	}
}

func TestDayKey(t *testing.T) {
	date := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-03-05", DayKey(date))

	// Zero padding on single-digit month and day
	date = time.Date(2024, time.January, 2, 0, 0, 0, 0, time.Local)
	assert.Equal(t, "2024-01-02", DayKey(date))
}

func TestWeekKey(t *testing.T) {
	tests := []struct {
		name     string
		date     time.Time
		expected string
	}{
		{"First of year", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local), "2024-W1"},
		{"Early March", time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local), "2024-W10"},
		{"No zero padding", time.Date(2024, time.February, 1, 0, 0, 0, 0, time.Local), "2024-W6"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, WeekKey(tc.date))
		})
	}
}

func TestDayLabel(t *testing.T) {
	assert.Equal(t, "05 Mar", DayLabel("2024-03-05"))
	assert.Equal(t, "02 Jan", DayLabel("2024-01-02"))
	// Unparseable keys pass through untouched
	assert.Equal(t, "2024-W9", DayLabel("2024-W9"))
}
