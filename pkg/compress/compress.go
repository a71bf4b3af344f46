// Package compress turns a year of daily step profiles into the minimal set of
// weekday-scoped, date-ranged rules that reproduce them exactly.
package compress

import (
	"context"
	"fmt"
	"time"

	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
	"github.com/iwvelando/occupancy-schedule/pkg/schederrors"
	"golang.org/x/sync/errgroup"
)

// DayRecord is the simplified step profile for one date.
type DayRecord struct {
	Date    time.Time
	Weekday time.Weekday
	Profile profile.Day
}

// Rule applies Profile to every date between StartDate and EndDate, inclusive,
// that falls on Weekday.
type Rule struct {
	Weekday   time.Weekday
	StartDate time.Time
	EndDate   time.Time
	Profile   profile.Day
}

// Covers reports whether the rule applies to date.
func (r Rule) Covers(date time.Time) bool {
	date = datetime.TruncateDay(date)
	return date.Weekday() == r.Weekday && !date.Before(r.StartDate) && !date.After(r.EndDate)
}

// Days returns how many dates the rule applies to.
func (r Rule) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24)/7 + 1
}

func (r Rule) String() string {
	return fmt.Sprintf("%s %s..%s %s", r.Weekday, r.StartDate.Format(constants.DateLayout), r.EndDate.Format(constants.DateLayout), r.Profile)
}

// Compress groups records by weekday and merges consecutive same-weekday dates
// with structurally equal profiles into single rules. Rules are returned
// Monday through Sunday, each weekday's rules in date order. records must be in
// date order without duplicates and hold at least minDays entries.
func Compress(ctx context.Context, records []DayRecord, minDays int) ([]Rule, error) {
	if len(records) < minDays {
		return nil, schederrors.NewDataError("", time.Time{}, fmt.Errorf("rule compression needs at least %d daily records, got %d", minDays, len(records)))
	}

	byWeekday := make(map[time.Weekday][]DayRecord, 7)
	for i, record := range records {
		if i > 0 && !record.Date.After(records[i-1].Date) {
			return nil, schederrors.NewDataError("", record.Date, fmt.Errorf("daily records out of order or duplicated after %s", records[i-1].Date.Format(constants.DateLayout)))
		}
		if record.Date.Weekday() != record.Weekday {
			return nil, schederrors.NewDataError("", record.Date, fmt.Errorf("record weekday %s does not match date", record.Weekday))
		}
		byWeekday[record.Weekday] = append(byWeekday[record.Weekday], record)
	}

	groups := make([][]Rule, len(datetime.WeekOrder))
	g, ctx := errgroup.WithContext(ctx)
	for i, weekday := range datetime.WeekOrder {
		i, days := i, byWeekday[weekday]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			groups[i] = CompressWeekday(days)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var rules []Rule
	for _, group := range groups {
		rules = append(rules, group...)
	}
	return rules, nil
}

// CompressWeekday scans the records of a single weekday left to right and
// emits one rule per maximal run of equal profiles.
func CompressWeekday(days []DayRecord) []Rule {
	if len(days) == 0 {
		return nil
	}

	var rules []Rule
	current := Rule{
		Weekday:   days[0].Weekday,
		StartDate: days[0].Date,
		EndDate:   days[0].Date,
		Profile:   days[0].Profile,
	}
	for _, day := range days[1:] {
		if day.Profile.Equal(current.Profile) {
			current.EndDate = day.Date
			continue
		}
		rules = append(rules, current)
		current = Rule{
			Weekday:   day.Weekday,
			StartDate: day.Date,
			EndDate:   day.Date,
			Profile:   day.Profile,
		}
	}
	return append(rules, current)
}

// Find returns the rule covering date, if any.
func Find(rules []Rule, date time.Time) (Rule, bool) {
	for _, r := range rules {
		if r.Covers(date) {
			return r, true
		}
	}
	return Rule{}, false
}

// ForWeekday returns the rules that apply to weekday, in date order.
func ForWeekday(rules []Rule, weekday time.Weekday) []Rule {
	var out []Rule
	for _, r := range rules {
		if r.Weekday == weekday {
			out = append(out, r)
		}
	}
	return out
}
