// Package aggregation combines weighted contributing day profiles into one
// weighted-average day profile per calendar date.
package aggregation

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/iwvelando/occupancy-schedule/pkg/calendar"
	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
	"github.com/iwvelando/occupancy-schedule/pkg/schederrors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source is a read-only contributing schedule with a fixed weight.
type Source interface {
	ID() string
	Weight() float64
	DayProfile(date time.Time) (profile.Day, error)
}

// Record is the aggregate day profile for one date.
type Record struct {
	Date        time.Time
	Weekday     time.Weekday
	Profile     profile.Day
	TotalWeight float64
}

// ZeroWeight reports whether the sources carried no weight on this date, in
// which case the profile is 0 everywhere.
func (r Record) ZeroWeight() bool {
	return r.TotalWeight <= 0
}

// Aggregator computes weighted-average day profiles.
type Aggregator struct {
	logger  *zap.Logger
	workers int
}

// NewAggregator creates an aggregator with the given logger.
// If logger is nil, it will use a no-op logger to prevent panics.
func NewAggregator(logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{logger: logger, workers: runtime.GOMAXPROCS(0)}
}

// WithWorkers bounds the number of dates aggregated concurrently by AggregateYear.
func (a *Aggregator) WithWorkers(n int) *Aggregator {
	if n > 0 {
		a.workers = n
	}
	return a
}

type weightedDay struct {
	id      string
	weight  float64
	profile profile.Day
}

// Aggregate evaluates every source for date and returns the weighted average
// at each distinct breakpoint time across all sources, plus 24:00.
func (a *Aggregator) Aggregate(date time.Time, sources []Source) (Record, error) {
	date = datetime.TruncateDay(date)

	days := make([]weightedDay, 0, len(sources))
	timeSet := map[datetime.TimeOfDay]struct{}{datetime.EndOfDay: {}}
	totalWeight := 0.0

	for _, src := range sources {
		if src == nil {
			a.logger.Warn("Skipping nil source",
				zap.String("op", "aggregation.Aggregate"),
			)
			continue
		}
		if src.Weight() < 0 {
			return Record{}, schederrors.NewConfigurationError("weight", "source %q has negative weight %g", src.ID(), src.Weight())
		}

		day, err := src.DayProfile(date)
		if err != nil {
			return Record{}, schederrors.NewDataError(src.ID(), date, err)
		}
		for _, t := range day.Times() {
			timeSet[t] = struct{}{}
		}
		days = append(days, weightedDay{id: src.ID(), weight: src.Weight(), profile: day})
		totalWeight += src.Weight()
	}

	times := make([]datetime.TimeOfDay, 0, len(timeSet))
	for t := range timeSet {
		times = append(times, t)
	}
	sort.Slice(times, func(i, j int) bool { return times[i] < times[j] })

	points := make([]profile.Breakpoint, len(times))
	for i, t := range times {
		value := constants.UnoccupiedValue
		if totalWeight > 0 {
			weighted := 0.0
			for _, d := range days {
				weighted += d.profile.Sample(t) * d.weight
			}
			value = weighted / totalWeight
		}
		points[i] = profile.Breakpoint{Time: t, Value: value}
	}

	aggregate, err := profile.NewDay(points)
	if err != nil {
		return Record{}, schederrors.NewDataError("", date, fmt.Errorf("aggregate profile: %w", err))
	}

	a.logger.Debug("Aggregated day",
		zap.String("op", "aggregation.Aggregate"),
		zap.String("date", date.Format(constants.DateLayout)),
		zap.Int("sources", len(days)),
		zap.Int("breakpoints", len(points)),
		zap.Float64("totalWeight", totalWeight),
	)

	return Record{
		Date:        date,
		Weekday:     date.Weekday(),
		Profile:     aggregate,
		TotalWeight: totalWeight,
	}, nil
}

// AggregateYear runs Aggregate for every date of year concurrently and returns
// the records in date order. The first failure cancels the remaining work.
func (a *Aggregator) AggregateYear(ctx context.Context, year *calendar.Year, sources []Source) ([]Record, error) {
	dates := year.Dates()
	records := make([]Record, len(dates))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, date := range dates {
		i, date := i, date
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, err := a.Aggregate(date, sources)
			if err != nil {
				return err
			}
			records[i] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return records, nil
}
