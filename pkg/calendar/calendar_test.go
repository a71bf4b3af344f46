package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/iwvelando/occupancy-schedule/pkg/schederrors"
	"github.com/matryer/is"
)

func TestDaysInYear(t *testing.T) {
	is := is.New(t)

	common, err := New(2025, "")
	is.NoErr(err)
	is.Equal(common.DaysInYear(), 365)
	is.True(!common.IsLeap())
	is.Equal(len(common.Dates()), 365)

	leap, err := New(2024, "")
	is.NoErr(err)
	is.Equal(leap.DaysInYear(), 366)
	is.True(leap.IsLeap())
	is.Equal(leap.Dates()[59], time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC))
}

func TestDatesAreConsecutive(t *testing.T) {
	is := is.New(t)

	y, err := New(2025, "")
	is.NoErr(err)

	dates := y.Dates()
	is.Equal(dates[0], y.First())
	is.Equal(dates[len(dates)-1], y.Last())
	for i := 1; i < len(dates); i++ {
		is.Equal(dates[i].Sub(dates[i-1]), 24*time.Hour)
	}
}

func TestDatesOn(t *testing.T) {
	is := is.New(t)

	// 2025-01-01 is a Wednesday, so Wednesday appears 53 times and the rest 52.
	y, err := New(2025, "")
	is.NoErr(err)

	total := 0
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		dates := y.DatesOn(wd)
		for _, d := range dates {
			is.Equal(d.Weekday(), wd)
			is.True(y.Contains(d))
		}
		if wd == time.Wednesday {
			is.Equal(len(dates), 53)
		} else {
			is.Equal(len(dates), 52)
		}
		total += len(dates)
	}
	is.Equal(total, 365)

	is.Equal(y.DatesOn(time.Wednesday)[0], y.First())
	is.Equal(y.DatesOn(time.Monday)[0], time.Date(2025, 1, 6, 0, 0, 0, 0, time.UTC))
}

func TestInvalidYear(t *testing.T) {
	is := is.New(t)

	_, err := New(0, "")
	is.True(errors.Is(err, schederrors.ErrConfiguration))
}

func TestHolidays(t *testing.T) {
	is := is.New(t)

	plain, err := New(2025, "")
	is.NoErr(err)
	is.True(!plain.HasHolidays())
	is.True(!plain.IsHoliday(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)))
	is.Equal(len(plain.Holidays()), 0)

	y, err := New(2025, "US")
	is.NoErr(err)
	is.True(y.HasHolidays())
	is.True(y.IsHoliday(time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)))
	is.True(y.IsHoliday(time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC)))
	is.True(!y.IsHoliday(time.Date(2025, 7, 8, 0, 0, 0, 0, time.UTC)))
	is.True(len(y.Holidays()) >= 10)
}

func TestUnknownHolidayCalendar(t *testing.T) {
	is := is.New(t)

	_, err := New(2025, "mars")
	is.True(errors.Is(err, schederrors.ErrConfiguration))
}
