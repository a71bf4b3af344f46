package integration

import (
	"context"
	"os"
	"runtime"
	"testing"
	"time"

	"github.com/iwvelando/occupancy-schedule/internal/config"
	"github.com/iwvelando/occupancy-schedule/internal/schedule"
	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
	"github.com/matryer/is"
	"go.uber.org/zap"
)

// TestMain runs the integration suite.
func TestMain(m *testing.M) {
	code := m.Run()
	os.Exit(code)
}

// TestPerformance checks that a full build of the test configuration stays fast.
func TestPerformance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping performance test in short mode")
	}
	is := is.New(t)

	conf, err := config.LoadConfiguration(testConfigPath)
	is.NoErr(err)

	const iterations = 10
	start := time.Now()
	for i := 0; i < iterations; i++ {
		_, err := schedule.Build(context.Background(), zap.NewNop(), conf)
		is.NoErr(err)
	}
	avg := time.Since(start) / iterations
	t.Logf("Average build time: %v", avg)

	is.True(avg < 2*time.Second) // a single build should finish well inside two seconds
}

// TestMemoryUsage reports heap growth across repeated builds.
func TestMemoryUsage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping memory test in short mode")
	}
	is := is.New(t)

	conf, err := config.LoadConfiguration(testConfigPath)
	is.NoErr(err)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	for i := 0; i < 5; i++ {
		_, err := schedule.Build(context.Background(), zap.NewNop(), conf)
		is.NoErr(err)
	}

	runtime.GC()
	runtime.ReadMemStats(&after)
	t.Logf("Total allocated across builds: %d KB", (after.TotalAlloc-before.TotalAlloc)/1024)
}

// TestDataConsistency checks that repeated builds produce identical schedules.
func TestDataConsistency(t *testing.T) {
	is := is.New(t)

	conf, err := config.LoadConfiguration(testConfigPath)
	is.NoErr(err)

	first, err := schedule.Build(context.Background(), zap.NewNop(), conf)
	is.NoErr(err)
	second, err := schedule.Build(context.Background(), zap.NewNop(), conf)
	is.NoErr(err)

	is.True(first.Schedule.Handle() != second.Schedule.Handle()) // every build gets its own handle

	a, b := first.Schedule.Rules(), second.Schedule.Rules()
	is.Equal(len(a), len(b))
	for i := range a {
		is.Equal(a[i].Weekday, b[i].Weekday)
		is.True(a[i].StartDate.Equal(b[i].StartDate))
		is.True(a[i].EndDate.Equal(b[i].EndDate))
		is.True(a[i].Profile.Equal(b[i].Profile))
	}
}

// TestBuildCancellation checks that an expired context stops the build.
func TestBuildCancellation(t *testing.T) {
	is := is.New(t)

	conf, err := config.LoadConfiguration(testConfigPath)
	is.NoErr(err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = schedule.Build(ctx, zap.NewNop(), conf)
	is.True(err != nil)
}

// TestEveryDateHasOneProfile checks DayProfile across the whole year.
func TestEveryDateHasOneProfile(t *testing.T) {
	is := is.New(t)

	_, result := buildTestSchedule(t)
	s := result.Schedule

	for _, day := range result.Days {
		got, err := s.DayProfile(day.Date)
		is.NoErr(err)
		if !got.Equal(day.Profile) {
			t.Errorf("%s: DayProfile = %s, expected %s", day.Date.Format(datetime.DateLayout), got, day.Profile)
		}
	}
}
