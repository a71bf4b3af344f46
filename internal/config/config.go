// Package config defines the data structures related to configuration and
// includes functions for loading, validating and converting the config.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
	"github.com/iwvelando/occupancy-schedule/pkg/validation"
	"github.com/spf13/viper"
)

// DateLayout is the format expected in config files and is also the output
// date format.
const DateLayout = constants.DateLayout

// Configuration holds all configuration for occupancy-schedule.
type Configuration struct {
	Name        string        `yaml:"name,omitempty"`
	Year        int           `yaml:"year"`
	Cutoff      float64       `yaml:"cutoff"`
	Holidays    string        `yaml:"holidays,omitempty"`
	Sources     []Source      `yaml:"sources"`
	SpecialDays SpecialDays   `yaml:"specialDays,omitempty"`
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, yaml, json
}

// Source is one weighted contributing schedule.
type Source struct {
	ID      string       `yaml:"id"`
	Weight  float64      `yaml:"weight"`
	Default []Breakpoint `yaml:"default,omitempty"`
	Rules   []SourceRule `yaml:"rules,omitempty"`
}

// SourceRule applies Profile on the listed Days between StartDate and EndDate.
type SourceRule struct {
	Name      string       `yaml:"name"`
	Days      []string     `yaml:"days"`
	StartDate string       `yaml:"startDate,omitempty"`
	EndDate   string       `yaml:"endDate,omitempty"`
	Profile   []Breakpoint `yaml:"profile"`
}

// Breakpoint is a time-of-day/value pair as written in config files.
type Breakpoint struct {
	Time  string  `yaml:"time"`
	Value float64 `yaml:"value"`
}

// SpecialDays holds the fixed profiles that bypass aggregation. Empty design
// day profiles default to fully on; an empty holiday profile disables holiday
// handling.
type SpecialDays struct {
	WinterDesign []Breakpoint `yaml:"winterDesign,omitempty"`
	SummerDesign []Breakpoint `yaml:"summerDesign,omitempty"`
	Holiday      []Breakpoint `yaml:"holiday,omitempty"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix("OCCUPANCY")
	v.AutomaticEnv()
	v.SetConfigType("yml")
	v.SetDefault("cutoff", constants.DefaultCutoff)
	v.SetDefault("year", time.Now().Year())
	v.SetDefault("name", constants.DefaultScheduleName)
	return v
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := newViper()
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	return decode(v)
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from r.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := newViper()

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Configuration, error) {
	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Validate returns a ConfigurationError for problems that make the run
// impossible: a cutoff outside [0,1], no sources, a negative weight, an
// unknown weekday name or an unparseable rule date.
func (conf *Configuration) Validate() error {
	if err := validation.ValidateCutoff(conf.Cutoff); err != nil {
		return err
	}
	if err := validation.ValidateSourceCount(len(conf.Sources)); err != nil {
		return err
	}
	for _, source := range conf.Sources {
		if err := validation.ValidateWeight(source.ID, source.Weight); err != nil {
			return err
		}
		for _, rule := range source.Rules {
			if _, err := rule.weekdays(); err != nil {
				return err
			}
			if _, _, err := rule.dateRange(); err != nil {
				return err
			}
		}
	}
	return nil
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	sources := make([]validation.SourceConfig, 0, len(conf.Sources))
	for _, source := range conf.Sources {
		rules := make([]validation.RuleConfig, 0, len(source.Rules))
		for _, rule := range source.Rules {
			rules = append(rules, validation.RuleConfig{
				Name:      rule.Name,
				StartDate: rule.StartDate,
				EndDate:   rule.EndDate,
			})
		}
		sources = append(sources, validation.SourceConfig{
			ID:         source.ID,
			Weight:     source.Weight,
			HasDefault: len(source.Default) > 0,
			Rules:      rules,
		})
	}

	validator := validation.ConfigValidator{Year: conf.Year, Sources: sources}
	return validator.ValidateAll()
}

// TotalWeight sums the weights of all sources.
func (conf *Configuration) TotalWeight() float64 {
	total := 0.0
	for _, source := range conf.Sources {
		total += source.Weight
	}
	return total
}

func (rule SourceRule) dateRange() (time.Time, time.Time, error) {
	var start, end time.Time
	var err error
	if rule.StartDate != "" {
		start, err = datetime.ParseDate(rule.StartDate)
		if err != nil {
			return start, end, configError("startDate", "rule '%s': %v", rule.Name, err)
		}
	}
	if rule.EndDate != "" {
		end, err = datetime.ParseDate(rule.EndDate)
		if err != nil {
			return start, end, configError("endDate", "rule '%s': %v", rule.Name, err)
		}
	}
	return start, end, nil
}
