// Package schederrors defines the error taxonomy shared by the schedule pipeline.
package schederrors

import (
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/occupancy-schedule/pkg/constants"
)

var (
	// ErrConfiguration matches any *ConfigurationError via errors.Is.
	ErrConfiguration = errors.New("configuration error")
	// ErrData matches any *DataError via errors.Is.
	ErrData = errors.New("data error")
)

// ConfigurationError reports an invalid run parameter such as a cutoff outside
// [0,1] or an empty source list.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("configuration error: %s", e.Reason)
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// Is lets errors.Is(err, ErrConfiguration) match.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewConfigurationError builds a ConfigurationError with a formatted reason.
func NewConfigurationError(field, format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// DataError reports input data the pipeline cannot use: a source that fails to
// resolve a day profile, malformed breakpoints, or a short year of records.
type DataError struct {
	Source string
	Date   time.Time
	Err    error
}

func (e *DataError) Error() string {
	msg := "data error"
	if e.Source != "" {
		msg += fmt.Sprintf(": source %q", e.Source)
	}
	if !e.Date.IsZero() {
		msg += fmt.Sprintf(" on %s", e.Date.Format(constants.DateLayout))
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *DataError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrData) match.
func (e *DataError) Is(target error) bool {
	return target == ErrData
}

// NewDataError wraps err as a DataError for the given source and date. Either
// may be left empty.
func NewDataError(source string, date time.Time, err error) *DataError {
	return &DataError{Source: source, Date: date, Err: err}
}

// DegenerateInputWarning is a non-fatal condition: the contributing sources for
// Date carried zero total weight, so the aggregate was defined as 0.
type DegenerateInputWarning struct {
	Date time.Time
}

func (w DegenerateInputWarning) String() string {
	return fmt.Sprintf("total source weight is zero on %s; aggregate defined as 0", w.Date.Format(constants.DateLayout))
}
