// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"math"

	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/schederrors"
)

var outputFormats = []string{
	constants.OutputFormatPretty,
	constants.OutputFormatCSV,
	constants.OutputFormatYAML,
	constants.OutputFormatJSON,
}

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	for _, f := range outputFormats {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("expected output format of %s, %s, %s or %s, got %s",
		constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatYAML, constants.OutputFormatJSON, format)
}

// ValidateCutoff checks that the occupied-fraction cutoff lies within [0,1].
func ValidateCutoff(cutoff float64) error {
	if math.IsNaN(cutoff) || cutoff < 0 || cutoff > 1 {
		return schederrors.NewConfigurationError("cutoff", "must be within [0,1], got %g", cutoff)
	}
	return nil
}

// ValidateSourceCount checks that at least one contributing source is configured.
func ValidateSourceCount(count int) error {
	if count == 0 {
		return schederrors.NewConfigurationError("sources", "at least one contributing source is required")
	}
	return nil
}

// ValidateWeight checks that a source weight is finite and not negative.
func ValidateWeight(sourceID string, weight float64) error {
	if math.IsNaN(weight) || math.IsInf(weight, 0) || weight < 0 {
		return schederrors.NewConfigurationError("weight", "source %q must have a finite, non-negative weight, got %g", sourceID, weight)
	}
	return nil
}
