package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/iwvelando/occupancy-schedule/internal/config"
	"github.com/iwvelando/occupancy-schedule/pkg/adapters"
	"github.com/iwvelando/occupancy-schedule/pkg/aggregation"
	"github.com/iwvelando/occupancy-schedule/pkg/calendar"
	"github.com/iwvelando/occupancy-schedule/pkg/compress"
	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
	"github.com/iwvelando/occupancy-schedule/pkg/schederrors"
	"go.uber.org/zap"
)

// Result holds a built schedule together with the simplified per-day profiles
// it was compressed from and any non-fatal warnings.
type Result struct {
	Schedule *Schedule
	Days     []compress.DayRecord
	Warnings []schederrors.DegenerateInputWarning
}

// Build runs the full pipeline for conf: aggregate every source for every day
// of the year, threshold at the cutoff, simplify, compress into weekday rules
// and assemble the schedule. When a holiday calendar and a holiday profile are
// both configured, observed holidays take the holiday profile before
// compression, so the rules split around them.
//
// Source breakpoints hold their value from the breakpoint onward, while
// scheduled profiles hold each value up to their breakpoint. An office open
// 08:00 to 18:00 next to meeting rooms open 09:00 to 17:00 schedules as
// 00:00=0;17:00=1;24:00=0. Any extra source breakpoint can move an output
// transition this way, including one from a zero-weight source.
func Build(ctx context.Context, logger *zap.Logger, conf *config.Configuration) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if conf == nil {
		return nil, schederrors.NewConfigurationError("", "no configuration supplied")
	}
	start := time.Now()

	if err := conf.Validate(); err != nil {
		return nil, err
	}
	for _, warning := range conf.ValidateConfiguration() {
		logger.Warn(warning,
			zap.String("op", "schedule.Build"),
		)
	}

	year, err := calendar.New(conf.Year, conf.Holidays)
	if err != nil {
		return nil, err
	}

	special, err := conf.SpecialDays.ToSpecialProfiles()
	if err != nil {
		return nil, fmt.Errorf("special days: %w", err)
	}

	sources, err := adapters.SourcesToAggregationSources(conf.Sources)
	if err != nil {
		return nil, err
	}

	records, err := aggregation.NewAggregator(logger).AggregateYear(ctx, year, sources)
	if err != nil {
		return nil, err
	}

	var warnings []schederrors.DegenerateInputWarning
	for _, record := range records {
		if record.ZeroWeight() {
			warning := schederrors.DegenerateInputWarning{Date: record.Date}
			warnings = append(warnings, warning)
			logger.Warn(warning.String(),
				zap.String("op", "schedule.Build"),
				zap.Time("date", record.Date),
			)
		}
	}

	days := adapters.RecordsToDayRecords(records, adapters.StepAndSimplify(conf.Cutoff))
	if special.Holiday != nil {
		overridden := applyHolidays(days, year, *special.Holiday)
		logger.Debug("applied holiday profile",
			zap.String("op", "schedule.Build"),
			zap.Int("holidays", overridden),
		)
	}

	rules, err := compress.Compress(ctx, days, constants.MinDaysPerYear)
	if err != nil {
		return nil, err
	}

	s, err := Assemble(conf.Name, year, rules, profile.AlwaysOn(), SpecialDays{
		WinterDesign: special.WinterDesign,
		SummerDesign: special.SummerDesign,
		Holiday:      special.Holiday,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("schedule built",
		zap.String("op", "schedule.Build"),
		zap.String("name", s.Name()),
		zap.Int("year", s.Year()),
		zap.Int("sources", len(sources)),
		zap.Float64("totalWeight", conf.TotalWeight()),
		zap.Int("rules", len(rules)),
		zap.Int("warnings", len(warnings)),
		zap.Duration("duration", time.Since(start)),
	)

	return &Result{Schedule: s, Days: days, Warnings: warnings}, nil
}

// applyHolidays replaces the profile of every observed holiday in days with
// holiday and returns how many records changed. days must hold one record per
// date of year in date order.
func applyHolidays(days []compress.DayRecord, year *calendar.Year, holiday profile.Day) int {
	overridden := 0
	for _, date := range year.Holidays() {
		i := date.YearDay() - 1
		if i >= len(days) || !days[i].Date.Equal(date) {
			continue
		}
		days[i].Profile = holiday
		overridden++
	}
	return overridden
}
