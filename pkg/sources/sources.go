// Package sources provides ContributingSource implementations built from
// declarative recurring day patterns.
package sources

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
)

// ErrNoProfile is returned when no rule matches a date and there is no default.
var ErrNoProfile = errors.New("no rule matches and no default profile is defined")

// Rule selects Profile for dates within [StartDate, EndDate] that fall on one
// of Days. A zero StartDate or EndDate leaves that side open.
type Rule struct {
	Name      string
	Days      [7]bool
	StartDate time.Time
	EndDate   time.Time
	Profile   profile.Day
}

// OnDays returns a copy of r applying to the given weekdays only.
func (r Rule) OnDays(days ...time.Weekday) Rule {
	r.Days = [7]bool{}
	for _, d := range days {
		r.Days[d] = true
	}
	return r
}

// Matches reports whether the rule applies to date.
func (r Rule) Matches(date time.Time) bool {
	date = datetime.TruncateDay(date)
	if !r.Days[date.Weekday()] {
		return false
	}
	if !r.StartDate.IsZero() && date.Before(r.StartDate) {
		return false
	}
	if !r.EndDate.IsZero() && date.After(r.EndDate) {
		return false
	}
	return true
}

func (r Rule) String() string {
	var days []string
	for wd, on := range r.Days {
		if on {
			days = append(days, time.Weekday(wd).String()[:3])
		}
	}
	start, end := "*", "*"
	if !r.StartDate.IsZero() {
		start = r.StartDate.Format(constants.DateLayout)
	}
	if !r.EndDate.IsZero() {
		end = r.EndDate.Format(constants.DateLayout)
	}
	return fmt.Sprintf("%s [%s] %s..%s", r.Name, strings.Join(days, ","), start, end)
}

// Ruleset is a weighted recurring schedule: the first matching rule supplies
// the day profile, otherwise the default does.
type Ruleset struct {
	id             string
	weight         float64
	defaultProfile profile.Day
	hasDefault     bool
	rules          []Rule
}

// NewRuleset builds a Ruleset. defaultProfile may be nil, in which case every
// date must be matched by a rule.
func NewRuleset(id string, weight float64, defaultProfile *profile.Day, rules []Rule) *Ruleset {
	rs := &Ruleset{
		id:     id,
		weight: weight,
		rules:  append([]Rule(nil), rules...),
	}
	if defaultProfile != nil {
		rs.defaultProfile = *defaultProfile
		rs.hasDefault = true
	}
	return rs
}

// ID returns the source identifier.
func (rs *Ruleset) ID() string {
	return rs.id
}

// Weight returns the source weight.
func (rs *Ruleset) Weight() float64 {
	return rs.weight
}

// Rules returns a copy of the rules in priority order.
func (rs *Ruleset) Rules() []Rule {
	return append([]Rule(nil), rs.rules...)
}

// DayProfile returns the profile in effect on date.
func (rs *Ruleset) DayProfile(date time.Time) (profile.Day, error) {
	for _, r := range rs.rules {
		if r.Matches(date) {
			return r.Profile, nil
		}
	}
	if rs.hasDefault {
		return rs.defaultProfile, nil
	}
	return profile.Day{}, fmt.Errorf("%s: %w", date.Format(constants.DateLayout), ErrNoProfile)
}
