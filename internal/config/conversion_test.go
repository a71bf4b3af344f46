package config

import (
	"errors"
	"testing"
	"time"

	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
	"github.com/iwvelando/occupancy-schedule/pkg/schederrors"
	"github.com/iwvelando/occupancy-schedule/pkg/sources"
)

func TestToDay(t *testing.T) {
	tests := []struct {
		name     string
		points   []Breakpoint
		expected []profile.Breakpoint
		wantErr  bool
	}{
		{
			name:   "Office hours",
			points: []Breakpoint{{Time: "00:00", Value: 0}, {Time: "08:30", Value: 0.9}, {Time: "24:00", Value: 0}},
			expected: []profile.Breakpoint{
				{Time: 0, Value: 0},
				{Time: datetime.Clock(8, 30, 0), Value: 0.9},
				{Time: datetime.EndOfDay, Value: 0},
			},
		},
		{
			name:     "Constant",
			points:   []Breakpoint{{Time: "24:00", Value: 1}},
			expected: []profile.Breakpoint{{Time: datetime.EndOfDay, Value: 1}},
		},
		{
			name:    "Bad time",
			points:  []Breakpoint{{Time: "8am", Value: 1}, {Time: "24:00", Value: 0}},
			wantErr: true,
		},
		{
			name:    "Missing end of day",
			points:  []Breakpoint{{Time: "08:00", Value: 1}},
			wantErr: true,
		},
		{
			name:    "Empty",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			day, err := ToDay(tt.points)
			if tt.wantErr {
				if !errors.Is(err, schederrors.ErrData) {
					t.Errorf("ToDay() = %v, expected a data error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ToDay() error = %v", err)
			}
			if !day.Equal(profile.MustNewDay(tt.expected...)) {
				t.Errorf("ToDay() = %s, expected %v", day, tt.expected)
			}
		})
	}
}

func TestSourceToRuleset(t *testing.T) {
	c := validConfiguration()
	c.Sources[0].Rules[0].StartDate = "2025-02-01"

	rs, err := c.Sources[0].ToRuleset()
	if err != nil {
		t.Fatalf("ToRuleset() error = %v", err)
	}

	if rs.ID() != "office" || rs.Weight() != 10 {
		t.Errorf("unexpected identity %s/%g", rs.ID(), rs.Weight())
	}

	rules := rs.Rules()
	if len(rules) != 1 {
		t.Fatalf("expected 1 rule, got %d", len(rules))
	}
	if !rules[0].Days[time.Monday] || !rules[0].Days[time.Friday] || rules[0].Days[time.Tuesday] {
		t.Errorf("unexpected days %v", rules[0].Days)
	}
	if !rules[0].StartDate.Equal(datetime.MustParseDate("2025-02-01")) || !rules[0].EndDate.IsZero() {
		t.Errorf("unexpected range %v..%v", rules[0].StartDate, rules[0].EndDate)
	}

	// January Monday falls back to the default.
	day, err := rs.DayProfile(datetime.MustParseDate("2025-01-06"))
	if err != nil {
		t.Fatalf("DayProfile() error = %v", err)
	}
	if !day.Equal(profile.Constant(0)) {
		t.Errorf("expected default profile, got %s", day)
	}
}

func TestSourceToRulesetWithoutDefault(t *testing.T) {
	c := validConfiguration()
	c.Sources[0].Default = nil

	rs, err := c.Sources[0].ToRuleset()
	if err != nil {
		t.Fatalf("ToRuleset() error = %v", err)
	}
	if _, err := rs.DayProfile(datetime.MustParseDate("2025-01-07")); !errors.Is(err, sources.ErrNoProfile) {
		t.Errorf("expected ErrNoProfile on a Tuesday, got %v", err)
	}
}

func TestSourceToRulesetBadProfile(t *testing.T) {
	c := validConfiguration()
	c.Sources[0].Rules[0].Profile = []Breakpoint{{Time: "18:00", Value: 0}, {Time: "08:00", Value: 1}, {Time: "24:00", Value: 0}}

	_, err := c.Sources[0].ToRuleset()
	var dataErr *schederrors.DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("expected a data error, got %v", err)
	}
	if dataErr.Source != "office" {
		t.Errorf("expected the source id on the error, got %q", dataErr.Source)
	}
}

func TestSourceToRulesetBadWeekday(t *testing.T) {
	c := validConfiguration()
	c.Sources[0].Rules[0].Days = []string{"caturday"}

	if _, err := c.Sources[0].ToRuleset(); !errors.Is(err, schederrors.ErrConfiguration) {
		t.Errorf("expected configuration error, got %v", err)
	}
}

func TestToSpecialProfiles(t *testing.T) {
	special, err := SpecialDays{}.ToSpecialProfiles()
	if err != nil {
		t.Fatalf("ToSpecialProfiles() error = %v", err)
	}
	if !special.WinterDesign.Equal(profile.AlwaysOn()) || !special.SummerDesign.Equal(profile.AlwaysOn()) {
		t.Errorf("expected design days to default to fully on")
	}
	if special.Holiday != nil {
		t.Errorf("expected no holiday profile by default")
	}

	special, err = SpecialDays{
		SummerDesign: []Breakpoint{{Time: "06:00", Value: 0}, {Time: "24:00", Value: 1}},
		Holiday:      []Breakpoint{{Time: "24:00", Value: 0}},
	}.ToSpecialProfiles()
	if err != nil {
		t.Fatalf("ToSpecialProfiles() error = %v", err)
	}
	if special.SummerDesign.Len() != 2 {
		t.Errorf("expected custom summer design profile, got %s", special.SummerDesign)
	}
	if special.Holiday == nil || !special.Holiday.Equal(profile.Constant(0)) {
		t.Errorf("expected holiday profile to be parsed")
	}

	if _, err := (SpecialDays{WinterDesign: []Breakpoint{{Time: "25:00", Value: 1}}}).ToSpecialProfiles(); err == nil {
		t.Errorf("expected error for malformed winter design profile")
	}
}
