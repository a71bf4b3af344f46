// Package calendar provides the date and weekday arithmetic for one target year,
// including optional observed-holiday lookup.
package calendar

import (
	"strings"
	"time"

	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/schederrors"
	"github.com/rickar/cal/v2"
	"github.com/rickar/cal/v2/us"
)

// Year enumerates the calendar days of a single year. All dates are midnight UTC.
type Year struct {
	year     int
	holidays *cal.BusinessCalendar
}

// New builds the calendar for year. holidays selects an observed-holiday set
// ("" for none, "us" for US federal holidays).
func New(year int, holidays string) (*Year, error) {
	if year < 1 || year > 9999 {
		return nil, schederrors.NewConfigurationError("year", "must be between 1 and 9999, got %d", year)
	}

	y := &Year{year: year}
	switch strings.ToLower(strings.TrimSpace(holidays)) {
	case constants.HolidaysNone:
	case constants.HolidaysUS:
		c := cal.NewBusinessCalendar()
		c.AddHoliday(
			us.NewYear,
			us.MlkDay,
			us.PresidentsDay,
			us.MemorialDay,
			us.Juneteenth,
			us.IndependenceDay,
			us.LaborDay,
			us.ColumbusDay,
			us.VeteransDay,
			us.ThanksgivingDay,
			us.ChristmasDay,
		)
		y.holidays = c
	default:
		return nil, schederrors.NewConfigurationError("holidays", "unknown holiday calendar %q", holidays)
	}
	return y, nil
}

// Number returns the calendar year.
func (y *Year) Number() int {
	return y.year
}

// IsLeap reports whether the year has a February 29th.
func (y *Year) IsLeap() bool {
	return y.DaysInYear() == 366
}

// DaysInYear returns 365 or 366.
func (y *Year) DaysInYear() int {
	return y.Last().YearDay()
}

// First returns January 1st.
func (y *Year) First() time.Time {
	return time.Date(y.year, time.January, 1, 0, 0, 0, 0, time.UTC)
}

// Last returns December 31st.
func (y *Year) Last() time.Time {
	return time.Date(y.year, time.December, 31, 0, 0, 0, 0, time.UTC)
}

// Contains reports whether date falls within the year.
func (y *Year) Contains(date time.Time) bool {
	return date.Year() == y.year
}

// Dates returns every date of the year in order.
func (y *Year) Dates() []time.Time {
	n := y.DaysInYear()
	dates := make([]time.Time, n)
	first := y.First()
	for i := 0; i < n; i++ {
		dates[i] = first.AddDate(0, 0, i)
	}
	return dates
}

// DatesOn returns every date of the year falling on weekday, in order.
func (y *Year) DatesOn(weekday time.Weekday) []time.Time {
	first := y.First()
	offset := (int(weekday) - int(first.Weekday()) + 7) % 7

	var dates []time.Time
	for d := first.AddDate(0, 0, offset); d.Year() == y.year; d = d.AddDate(0, 0, 7) {
		dates = append(dates, d)
	}
	return dates
}

// HasHolidays reports whether a holiday calendar is attached.
func (y *Year) HasHolidays() bool {
	return y.holidays != nil
}

// IsHoliday reports whether a holiday is observed on date. Always false when
// no holiday calendar is attached.
func (y *Year) IsHoliday(date time.Time) bool {
	if y.holidays == nil {
		return false
	}
	_, observed, _ := y.holidays.IsHoliday(date)
	return observed
}

// Holidays returns the observed holidays falling within the year.
func (y *Year) Holidays() []time.Time {
	if y.holidays == nil {
		return nil
	}
	var dates []time.Time
	for _, d := range y.Dates() {
		if y.IsHoliday(d) {
			dates = append(dates, d)
		}
	}
	return dates
}
