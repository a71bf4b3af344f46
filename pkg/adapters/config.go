// Package adapters provides adapter implementations between different package interfaces.
package adapters

import (
	"github.com/iwvelando/occupancy-schedule/internal/config"
	"github.com/iwvelando/occupancy-schedule/pkg/aggregation"
	"github.com/iwvelando/occupancy-schedule/pkg/compress"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
)

// SourcesToAggregationSources converts config.Source slices to aggregation.Source slices
func SourcesToAggregationSources(sources []config.Source) ([]aggregation.Source, error) {
	if sources == nil {
		return nil, nil
	}

	aggregationSources := make([]aggregation.Source, 0, len(sources))
	for _, source := range sources {
		rs, err := source.ToRuleset()
		if err != nil {
			return nil, err
		}
		aggregationSources = append(aggregationSources, rs)
	}
	return aggregationSources, nil
}

// RecordsToDayRecords converts aggregate records into compressor input,
// passing every aggregate profile through transform.
func RecordsToDayRecords(records []aggregation.Record, transform func(profile.Day) profile.Day) []compress.DayRecord {
	if records == nil {
		return nil
	}

	dayRecords := make([]compress.DayRecord, len(records))
	for i, record := range records {
		p := record.Profile
		if transform != nil {
			p = transform(p)
		}
		dayRecords[i] = compress.DayRecord{
			Date:    record.Date,
			Weekday: record.Weekday,
			Profile: p,
		}
	}
	return dayRecords
}

// StepAndSimplify returns a transform that thresholds at cutoff and then
// drops redundant breakpoints.
func StepAndSimplify(cutoff float64) func(profile.Day) profile.Day {
	return func(d profile.Day) profile.Day {
		return d.Threshold(cutoff).Simplify()
	}
}
