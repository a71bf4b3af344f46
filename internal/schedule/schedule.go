// Package schedule assembles compressed weekday rules into a queryable
// occupancy schedule and drives the full build pipeline.
package schedule

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/occupancy-schedule/pkg/calendar"
	"github.com/iwvelando/occupancy-schedule/pkg/compress"
	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
	"github.com/iwvelando/occupancy-schedule/pkg/schederrors"
)

// SpecialDays holds the profiles supplied by the caller rather than derived
// from the sources. Holiday is optional.
type SpecialDays struct {
	WinterDesign profile.Day
	SummerDesign profile.Day
	Holiday      *profile.Day
}

// DefaultSpecialDays returns fully-on design days and no holiday profile.
func DefaultSpecialDays() SpecialDays {
	return SpecialDays{
		WinterDesign: profile.AlwaysOn(),
		SummerDesign: profile.AlwaysOn(),
	}
}

// Schedule is an immutable year of weekday rules plus the special-day
// profiles. It can itself be used as an aggregation source.
type Schedule struct {
	handle         uuid.UUID
	name           string
	year           *calendar.Year
	weight         float64
	defaultProfile profile.Day
	special        SpecialDays
	rules          []compress.Rule
}

// Assemble packages rules and the caller's special-day profiles into a
// Schedule. The rules must cover every date of year exactly once; gaps or
// overlaps are a DataError.
func Assemble(name string, year *calendar.Year, rules []compress.Rule, defaultProfile profile.Day, special SpecialDays) (*Schedule, error) {
	if year == nil {
		return nil, schederrors.NewConfigurationError("year", "a target year is required")
	}
	if defaultProfile.IsEmpty() {
		return nil, schederrors.NewDataError(name, time.Time{}, fmt.Errorf("default profile is empty"))
	}
	if special.WinterDesign.IsEmpty() || special.SummerDesign.IsEmpty() {
		return nil, schederrors.NewDataError(name, time.Time{}, fmt.Errorf("design day profiles must not be empty"))
	}
	if err := checkCoverage(year, rules); err != nil {
		return nil, schederrors.NewDataError(name, time.Time{}, err)
	}

	if name == "" {
		name = constants.DefaultScheduleName
	}
	if special.Holiday != nil {
		h := *special.Holiday
		special.Holiday = &h
	}

	return &Schedule{
		handle:         uuid.New(),
		name:           name,
		year:           year,
		weight:         1,
		defaultProfile: defaultProfile,
		special:        special,
		rules:          append([]compress.Rule(nil), rules...),
	}, nil
}

// checkCoverage verifies that, per weekday, the rules tile the year's dates in
// order with no gap or overlap.
func checkCoverage(year *calendar.Year, rules []compress.Rule) error {
	for _, weekday := range datetime.WeekOrder {
		dates := year.DatesOn(weekday)
		group := compress.ForWeekday(rules, weekday)
		if len(group) == 0 {
			return fmt.Errorf("no rules for %s", weekday)
		}

		next := dates[0]
		for _, r := range group {
			if !r.StartDate.Equal(next) {
				return fmt.Errorf("%s rule %s starts on %s, expected %s", weekday, r, r.StartDate.Format(constants.DateLayout), next.Format(constants.DateLayout))
			}
			if r.EndDate.Before(r.StartDate) {
				return fmt.Errorf("%s rule %s ends before it starts", weekday, r)
			}
			next = r.EndDate.AddDate(0, 0, 7)
		}
		if last := dates[len(dates)-1]; !group[len(group)-1].EndDate.Equal(last) {
			return fmt.Errorf("%s rules end on %s, expected %s", weekday, group[len(group)-1].EndDate.Format(constants.DateLayout), last.Format(constants.DateLayout))
		}
	}
	return nil
}

// Handle returns the unique identifier assigned when the schedule was assembled.
func (s *Schedule) Handle() uuid.UUID {
	return s.handle
}

// Name returns the schedule name.
func (s *Schedule) Name() string {
	return s.name
}

// Year returns the target year.
func (s *Schedule) Year() int {
	return s.year.Number()
}

// ID returns the schedule name so a Schedule can feed another aggregation.
func (s *Schedule) ID() string {
	return s.name
}

// Weight returns the weight used when the schedule is aggregated.
func (s *Schedule) Weight() float64 {
	return s.weight
}

// WithWeight returns a copy of s that aggregates with weight w.
func (s *Schedule) WithWeight(w float64) *Schedule {
	c := *s
	c.weight = w
	return &c
}

// Rules returns a copy of all rules, Monday through Sunday.
func (s *Schedule) Rules() []compress.Rule {
	return append([]compress.Rule(nil), s.rules...)
}

// RulesFor returns the rules for one weekday in date order.
func (s *Schedule) RulesFor(weekday time.Weekday) []compress.Rule {
	return compress.ForWeekday(s.rules, weekday)
}

// DefaultProfile returns the profile used for dates no rule covers.
func (s *Schedule) DefaultProfile() profile.Day {
	return s.defaultProfile
}

// SpecialDays returns the special-day profiles.
func (s *Schedule) SpecialDays() SpecialDays {
	special := s.special
	if special.Holiday != nil {
		h := *special.Holiday
		special.Holiday = &h
	}
	return special
}

// DayProfile returns the profile of the rule covering date, or the default
// profile outside the year. Holidays are already part of the rules when the
// schedule comes from Build; the holiday profile kept in SpecialDays is
// informational.
func (s *Schedule) DayProfile(date time.Time) (profile.Day, error) {
	if r, ok := compress.Find(s.rules, datetime.TruncateDay(date)); ok {
		return r.Profile, nil
	}
	return s.defaultProfile, nil
}

// ValueAt returns the scheduled value at time of day t on date.
func (s *Schedule) ValueAt(date time.Time, t datetime.TimeOfDay) float64 {
	day, _ := s.DayProfile(date)
	return day.ValueAt(t)
}
