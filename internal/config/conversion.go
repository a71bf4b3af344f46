// Package config defines conversion utilities for configuration objects.
package config

import (
	"errors"
	"time"

	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
	"github.com/iwvelando/occupancy-schedule/pkg/schederrors"
	"github.com/iwvelando/occupancy-schedule/pkg/sources"
)

func configError(field, format string, args ...interface{}) error {
	return schederrors.NewConfigurationError(field, format, args...)
}

// ToDay parses config breakpoints into a validated day profile. Malformed
// times or breakpoint orderings are reported as DataErrors.
func ToDay(points []Breakpoint) (profile.Day, error) {
	parsed := make([]profile.Breakpoint, 0, len(points))
	for _, p := range points {
		t, err := datetime.ParseClock(p.Time)
		if err != nil {
			return profile.Day{}, schederrors.NewDataError("", time.Time{}, err)
		}
		parsed = append(parsed, profile.Breakpoint{Time: t, Value: p.Value})
	}

	day, err := profile.NewDay(parsed)
	if err != nil {
		return profile.Day{}, schederrors.NewDataError("", time.Time{}, err)
	}
	return day, nil
}

func (rule SourceRule) weekdays() ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(rule.Days))
	for _, name := range rule.Days {
		day, err := datetime.ParseWeekday(name)
		if err != nil {
			return nil, configError("days", "rule '%s': %v", rule.Name, err)
		}
		days = append(days, day)
	}
	return days, nil
}

// ToSourceRule converts a config rule into a sources.Rule.
func (rule SourceRule) ToSourceRule() (sources.Rule, error) {
	days, err := rule.weekdays()
	if err != nil {
		return sources.Rule{}, err
	}
	start, end, err := rule.dateRange()
	if err != nil {
		return sources.Rule{}, err
	}
	day, err := ToDay(rule.Profile)
	if err != nil {
		return sources.Rule{}, err
	}

	return sources.Rule{
		Name:      rule.Name,
		StartDate: start,
		EndDate:   end,
		Profile:   day,
	}.OnDays(days...), nil
}

// ToRuleset converts a config source into a sources.Ruleset.
func (source Source) ToRuleset() (*sources.Ruleset, error) {
	var defaultProfile *profile.Day
	if len(source.Default) > 0 {
		day, err := ToDay(source.Default)
		if err != nil {
			return nil, withSource(err, source.ID)
		}
		defaultProfile = &day
	}

	rules := make([]sources.Rule, 0, len(source.Rules))
	for _, rule := range source.Rules {
		converted, err := rule.ToSourceRule()
		if err != nil {
			return nil, withSource(err, source.ID)
		}
		rules = append(rules, converted)
	}

	return sources.NewRuleset(source.ID, source.Weight, defaultProfile, rules), nil
}

// SpecialProfiles holds the parsed special-day profiles.
type SpecialProfiles struct {
	WinterDesign profile.Day
	SummerDesign profile.Day
	Holiday      *profile.Day
}

// ToSpecialProfiles parses the special-day profiles, defaulting the design
// days to fully on.
func (sd SpecialDays) ToSpecialProfiles() (SpecialProfiles, error) {
	out := SpecialProfiles{
		WinterDesign: profile.AlwaysOn(),
		SummerDesign: profile.AlwaysOn(),
	}

	if len(sd.WinterDesign) > 0 {
		day, err := ToDay(sd.WinterDesign)
		if err != nil {
			return out, err
		}
		out.WinterDesign = day
	}
	if len(sd.SummerDesign) > 0 {
		day, err := ToDay(sd.SummerDesign)
		if err != nil {
			return out, err
		}
		out.SummerDesign = day
	}
	if len(sd.Holiday) > 0 {
		day, err := ToDay(sd.Holiday)
		if err != nil {
			return out, err
		}
		out.Holiday = &day
	}
	return out, nil
}

// withSource attaches the source id to a DataError that has none.
func withSource(err error, id string) error {
	var dataErr *schederrors.DataError
	if errors.As(err, &dataErr) && dataErr.Source == "" {
		return schederrors.NewDataError(id, dataErr.Date, dataErr.Err)
	}
	return err
}
