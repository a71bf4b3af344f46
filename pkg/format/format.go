// Package format renders schedule quantities for people.
package format

import (
	"fmt"
	"strings"

	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
	"github.com/iwvelando/occupancy-schedule/pkg/mathutil"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
)

// Percent returns a fraction as a percentage with one decimal (e.g., "37.5%").
func Percent(fraction float64) string {
	return fmt.Sprintf("%.1f%%", fraction*100)
}

// Hours renders a duration in seconds as hours and minutes (e.g., "9h30m").
func Hours(seconds datetime.TimeOfDay) string {
	total := int(seconds) / 60
	h, m := total/60, total%60
	if m == 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dh%02dm", h, m)
}

// Value renders a profile value rounded to display precision without
// trailing zeros.
func Value(v float64) string {
	return fmt.Sprintf("%g", mathutil.Round(v))
}

// Profile renders breakpoints as "HH:MM=value" pairs joined by sep.
func Profile(day profile.Day, sep string) string {
	points := day.Breakpoints()
	parts := make([]string, len(points))
	for i, p := range points {
		parts[i] = p.Time.String() + "=" + Value(p.Value)
	}
	return strings.Join(parts, sep)
}

// OccupiedSeconds returns how long a step profile is occupied over the day.
// Each breakpoint's value holds from the previous breakpoint up to its time.
func OccupiedSeconds(day profile.Day) datetime.TimeOfDay {
	var occupied, previous datetime.TimeOfDay
	for _, p := range day.Breakpoints() {
		if mathutil.IsOccupied(p.Value) {
			occupied += p.Time - previous
		}
		previous = p.Time
	}
	return occupied
}
