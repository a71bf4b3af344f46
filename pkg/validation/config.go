package validation

import (
	"fmt"

	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
)

// ValidateRuleDates checks that a source rule's date range can apply within the
// target year. Empty dates are open-ended and always acceptable.
func ValidateRuleDates(ruleName, startDate, endDate string, year int) ([]string, error) {
	var warnings []string

	var startYear, endYear int
	if startDate != "" {
		start, err := datetime.ParseDate(startDate)
		if err != nil {
			return nil, err
		}
		startYear = start.Year()
		if startYear > year {
			warnings = append(warnings, fmt.Sprintf("Rule '%s' starts after target year %d (%s) - rule never applies",
				ruleName, year, startDate))
		}
	}

	if endDate != "" {
		end, err := datetime.ParseDate(endDate)
		if err != nil {
			return nil, err
		}
		endYear = end.Year()
		if endYear < year {
			warnings = append(warnings, fmt.Sprintf("Rule '%s' ends before target year %d (%s) - rule never applies",
				ruleName, year, endDate))
		}
	}

	if startDate != "" && endDate != "" && startDate > endDate {
		warnings = append(warnings, fmt.Sprintf("Rule '%s' starts after it ends (%s > %s) - rule never applies",
			ruleName, startDate, endDate))
	}

	return warnings, nil
}

// ConfigValidator performs comprehensive configuration validation
type ConfigValidator struct {
	Year    int
	Sources []SourceConfig
}

// SourceConfig is the part of a contributing source the validator inspects.
type SourceConfig struct {
	ID         string
	Weight     float64
	HasDefault bool
	Rules      []RuleConfig
}

// RuleConfig is the part of a source rule the validator inspects.
type RuleConfig struct {
	Name      string
	StartDate string
	EndDate   string
}

// ValidateAll validates the entire configuration and returns warnings
func (cv *ConfigValidator) ValidateAll() []string {
	var warnings []string

	totalWeight := 0.0
	for _, source := range cv.Sources {
		totalWeight += source.Weight

		if source.Weight == 0 {
			warnings = append(warnings, fmt.Sprintf("Source '%s' has zero weight and never changes the aggregate", source.ID))
		}

		if !source.HasDefault {
			if len(source.Rules) == 0 {
				warnings = append(warnings, fmt.Sprintf("Source '%s' has neither rules nor a default profile", source.ID))
			} else {
				warnings = append(warnings, fmt.Sprintf("Source '%s' has no default profile - dates not matched by a rule will fail", source.ID))
			}
		}

		for _, rule := range source.Rules {
			ruleWarnings, err := ValidateRuleDates(fmt.Sprintf("Source '%s' rule '%s'", source.ID, rule.Name), rule.StartDate, rule.EndDate, cv.Year)
			if err == nil {
				warnings = append(warnings, ruleWarnings...)
			}
		}
	}

	if len(cv.Sources) > 0 && totalWeight == 0 {
		warnings = append(warnings, "All sources have zero weight - every day aggregates to 0")
	}

	return warnings
}
