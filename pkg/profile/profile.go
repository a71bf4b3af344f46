// Package profile defines day profiles: ordered time-of-day breakpoints that
// describe a step function over one day, plus the thresholding and
// simplification applied to them.
package profile

import (
	"fmt"
	"strings"

	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
)

// Breakpoint is a single (time of day, value) pair.
type Breakpoint struct {
	Time  datetime.TimeOfDay
	Value float64
}

func (b Breakpoint) String() string {
	return fmt.Sprintf("(%s, %g)", b.Time, b.Value)
}

// Day is an immutable, validated day profile. The zero Day has no breakpoints
// and evaluates to 0 everywhere.
type Day struct {
	points []Breakpoint
}

// NewDay validates points and returns a Day holding a copy of them. Points must
// be non-empty, strictly increasing in time, within [00:00, 24:00], and end at
// 24:00.
func NewDay(points []Breakpoint) (Day, error) {
	if len(points) == 0 {
		return Day{}, fmt.Errorf("day profile has no breakpoints")
	}
	for i, p := range points {
		if !p.Time.Valid() {
			return Day{}, fmt.Errorf("breakpoint %d time %d outside 00:00-24:00", i, int(p.Time))
		}
		if i > 0 && p.Time <= points[i-1].Time {
			return Day{}, fmt.Errorf("breakpoint %d time %s does not follow %s", i, p.Time, points[i-1].Time)
		}
	}
	if last := points[len(points)-1].Time; last != datetime.EndOfDay {
		return Day{}, fmt.Errorf("day profile ends at %s instead of 24:00", last)
	}

	copied := make([]Breakpoint, len(points))
	copy(copied, points)
	return Day{points: copied}, nil
}

// MustNewDay is NewDay that panics on invalid input. Intended for constants and tests.
func MustNewDay(points ...Breakpoint) Day {
	d, err := NewDay(points)
	if err != nil {
		panic(err)
	}
	return d
}

// Constant returns a day profile holding value all day.
func Constant(value float64) Day {
	return Day{points: []Breakpoint{{Time: datetime.EndOfDay, Value: value}}}
}

// AlwaysOn is the conventional "fully on" profile used for design days.
func AlwaysOn() Day {
	return Constant(constants.OccupiedValue)
}

// Len returns the number of breakpoints.
func (d Day) Len() int {
	return len(d.points)
}

// IsEmpty reports whether the profile has no breakpoints.
func (d Day) IsEmpty() bool {
	return len(d.points) == 0
}

// Breakpoints returns a copy of the breakpoints.
func (d Day) Breakpoints() []Breakpoint {
	out := make([]Breakpoint, len(d.points))
	copy(out, d.points)
	return out
}

// Times returns the breakpoint times in order.
func (d Day) Times() []datetime.TimeOfDay {
	out := make([]datetime.TimeOfDay, len(d.points))
	for i, p := range d.points {
		out[i] = p.Time
	}
	return out
}

// Sample returns the value of the last breakpoint at or before t, or 0 before
// the first breakpoint. Contributing sources are read this way: a value holds
// from its breakpoint onward.
func (d Day) Sample(t datetime.TimeOfDay) float64 {
	value := 0.0
	for _, p := range d.points {
		if p.Time > t {
			break
		}
		value = p.Value
	}
	return value
}

// ValueAt returns the value in effect at t under schedule-ruleset semantics:
// breakpoint i holds its value over (time[i-1], time[i]], so this is the value
// of the first breakpoint at or after t.
func (d Day) ValueAt(t datetime.TimeOfDay) float64 {
	if len(d.points) == 0 {
		return 0
	}
	for _, p := range d.points {
		if p.Time >= t {
			return p.Value
		}
	}
	return d.points[len(d.points)-1].Value
}

// Equal reports structural equality: same breakpoint times and same values.
// Profiles with the same value sequence at different times are not equal.
func (d Day) Equal(other Day) bool {
	if len(d.points) != len(other.points) {
		return false
	}
	for i := range d.points {
		if d.points[i] != other.points[i] {
			return false
		}
	}
	return true
}

// Threshold maps each value to OccupiedValue when it is >= cutoff and to
// UnoccupiedValue otherwise. Breakpoint times are unchanged.
func (d Day) Threshold(cutoff float64) Day {
	out := make([]Breakpoint, len(d.points))
	for i, p := range d.points {
		v := constants.UnoccupiedValue
		if p.Value >= cutoff {
			v = constants.OccupiedValue
		}
		out[i] = Breakpoint{Time: p.Time, Value: v}
	}
	return Day{points: out}
}

// Simplify drops every breakpoint whose value equals the value of the
// breakpoint after it. The final 24:00 breakpoint is always kept. The result
// evaluates identically under ValueAt.
func (d Day) Simplify() Day {
	if len(d.points) == 0 {
		return Day{}
	}
	out := make([]Breakpoint, 0, len(d.points))
	for i := 0; i < len(d.points)-1; i++ {
		if d.points[i].Value != d.points[i+1].Value {
			out = append(out, d.points[i])
		}
	}
	out = append(out, d.points[len(d.points)-1])
	return Day{points: out}
}

func (d Day) String() string {
	parts := make([]string, len(d.points))
	for i, p := range d.points {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
