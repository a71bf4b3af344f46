// Package constants provides shared constants for the occupancy-schedule application.
package constants

// DateLayout is the format expected for dates in config files and is also the
// output date format.
const DateLayout = "2006-01-02"

// Schedule construction constants
const (
	// DefaultCutoff is the minimum occupied fraction that classifies a period as occupied.
	DefaultCutoff = 0.05

	// MinDaysPerYear is the smallest number of daily records the rule compressor accepts.
	MinDaysPerYear = 365

	// OccupiedValue is the value emitted for periods at or above the cutoff.
	OccupiedValue = 1.0

	// UnoccupiedValue is the value emitted for periods below the cutoff.
	UnoccupiedValue = 0.0

	// DefaultScheduleName names schedules built from configs without a name.
	DefaultScheduleName = "Occupancy Schedule"
)

// Holiday calendar names
const (
	// HolidaysNone disables holiday handling.
	HolidaysNone = ""

	// HolidaysUS observes US federal holidays.
	HolidaysUS = "us"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address
	DefaultServerAddress = ":8080"

	// DefaultMaxUploadSizeBytes is the default maximum upload size for YAML configs (256 KB)
	DefaultMaxUploadSizeBytes int64 = 256 * 1024
)

// Comparison constants
const (
	// ValueTolerance is the tolerance used when comparing aggregate fractions in reports
	ValueTolerance = 1e-9

	// DisplayPrecision is the number of decimals used when rendering profile values
	DisplayPrecision = 4
)
