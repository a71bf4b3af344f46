// Package testutil provides common utility functions for testing.
package testutil

import (
	"bytes"
	"context"
	"io"
	"os"
	"testing"
	"time"

	"github.com/iwvelando/occupancy-schedule/internal/schedule"
	"github.com/iwvelando/occupancy-schedule/pkg/calendar"
	"github.com/iwvelando/occupancy-schedule/pkg/compress"
	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
)

// FindRule finds the rule that covers date.
// Returns a pointer to the rule if found, nil otherwise.
func FindRule(rules []compress.Rule, date time.Time) *compress.Rule {
	for i := range rules {
		if rules[i].Covers(date) {
			return &rules[i]
		}
	}
	return nil
}

// BuildSchedule assembles a schedule for year whose profile on each date is
// pick(date), without going through aggregation.
func BuildSchedule(tb testing.TB, name string, year int, pick func(time.Time) profile.Day) *schedule.Schedule {
	tb.Helper()

	y, err := calendar.New(year, constants.HolidaysNone)
	if err != nil {
		tb.Fatalf("calendar.New(%d) error = %v", year, err)
	}

	records := make([]compress.DayRecord, 0, y.DaysInYear())
	for _, d := range y.Dates() {
		records = append(records, compress.DayRecord{Date: d, Weekday: d.Weekday(), Profile: pick(d)})
	}

	rules, err := compress.Compress(context.Background(), records, constants.MinDaysPerYear)
	if err != nil {
		tb.Fatalf("compress.Compress() error = %v", err)
	}

	s, err := schedule.Assemble(name, y, rules, profile.AlwaysOn(), schedule.DefaultSpecialDays())
	if err != nil {
		tb.Fatalf("schedule.Assemble() error = %v", err)
	}
	return s
}

// CaptureStdout runs fn and returns everything it wrote to os.Stdout.
func CaptureStdout(tb testing.TB, fn func()) string {
	tb.Helper()

	oldStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		tb.Fatalf("os.Pipe() error = %v", err)
	}
	os.Stdout = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	fn()

	_ = w.Close()
	os.Stdout = oldStdout
	return <-done
}
