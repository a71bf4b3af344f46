// Package datetime provides date and time-of-day utility functions.
package datetime

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/iwvelando/occupancy-schedule/pkg/constants"
)

const (
	// DateLayout is the format expected in config files and is also the output
	// date format.
	DateLayout = constants.DateLayout
)

// TimeOfDay is a number of seconds since midnight. 24:00 is a valid value and
// marks the end of a day.
type TimeOfDay int

// EndOfDay is the 24:00 boundary that terminates every day profile.
const EndOfDay TimeOfDay = 24 * 60 * 60

// Clock builds a TimeOfDay from hours, minutes and seconds.
func Clock(hours, minutes, seconds int) TimeOfDay {
	return TimeOfDay(hours*3600 + minutes*60 + seconds)
}

// Hours builds a TimeOfDay from a whole number of hours.
func Hours(hours int) TimeOfDay {
	return Clock(hours, 0, 0)
}

// Valid reports whether t lies within [00:00, 24:00].
func (t TimeOfDay) Valid() bool {
	return t >= 0 && t <= EndOfDay
}

// String formats t as HH:MM, or HH:MM:SS when seconds are present.
func (t TimeOfDay) String() string {
	h := int(t) / 3600
	m := (int(t) % 3600) / 60
	s := int(t) % 60
	if s != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// ParseClock parses "HH:MM" or "HH:MM:SS" into a TimeOfDay. "24:00" is accepted.
func ParseClock(value string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid time of day %q: expected HH:MM or HH:MM:SS", value)
	}

	fields := make([]int, 3)
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, fmt.Errorf("invalid time of day %q: %w", value, err)
		}
		fields[i] = n
	}

	if fields[1] < 0 || fields[1] > 59 || fields[2] < 0 || fields[2] > 59 {
		return 0, fmt.Errorf("invalid time of day %q: minutes and seconds must be 00-59", value)
	}

	t := Clock(fields[0], fields[1], fields[2])
	if !t.Valid() {
		return 0, fmt.Errorf("invalid time of day %q: must be between 00:00 and 24:00", value)
	}
	return t, nil
}

// MustParseDate parses a date string using DateLayout and panics on error.
// This is intended for use in tests where the date string is known to be valid.
func MustParseDate(dateStr string) time.Time {
	t, err := time.Parse(DateLayout, dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

// ParseDate parses a DateLayout date.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(dateStr))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return t, nil
}

// SameDay reports whether a and b fall on the same calendar date.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// TruncateDay returns midnight UTC of the calendar date of t.
func TruncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"sun":       time.Sunday,
	"monday":    time.Monday,
	"mon":       time.Monday,
	"tuesday":   time.Tuesday,
	"tue":       time.Tuesday,
	"wednesday": time.Wednesday,
	"wed":       time.Wednesday,
	"thursday":  time.Thursday,
	"thu":       time.Thursday,
	"friday":    time.Friday,
	"fri":       time.Friday,
	"saturday":  time.Saturday,
	"sat":       time.Saturday,
}

// ParseWeekday parses an English weekday name or three-letter abbreviation,
// case-insensitively.
func ParseWeekday(name string) (time.Weekday, error) {
	day, ok := weekdayNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("unknown weekday %q", name)
	}
	return day, nil
}

// WeekOrder lists weekdays Monday through Sunday, the order rules are emitted in.
var WeekOrder = [7]time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
	time.Sunday,
}
