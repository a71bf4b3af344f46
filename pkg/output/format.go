// Package output provides utilities for formatting and displaying schedules.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/iwvelando/occupancy-schedule/internal/schedule"
	"github.com/iwvelando/occupancy-schedule/pkg/constants"
	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
	"github.com/iwvelando/occupancy-schedule/pkg/format"
	"github.com/iwvelando/occupancy-schedule/pkg/mathutil"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
	"github.com/iwvelando/occupancy-schedule/pkg/schederrors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Document is the serializable form of a schedule.
type Document struct {
	Handle         string              `json:"handle" yaml:"handle"`
	Name           string              `json:"name" yaml:"name"`
	Year           int                 `json:"year" yaml:"year"`
	DefaultProfile []BreakpointDoc     `json:"defaultProfile" yaml:"defaultProfile"`
	SpecialDays    SpecialDaysDocument `json:"specialDays" yaml:"specialDays"`
	Rules          []RuleDocument      `json:"rules" yaml:"rules"`
	Warnings       []string            `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// SpecialDaysDocument is the serializable form of the special-day profiles.
type SpecialDaysDocument struct {
	WinterDesign []BreakpointDoc `json:"winterDesign" yaml:"winterDesign"`
	SummerDesign []BreakpointDoc `json:"summerDesign" yaml:"summerDesign"`
	Holiday      []BreakpointDoc `json:"holiday,omitempty" yaml:"holiday,omitempty"`
}

// RuleDocument is one weekday rule.
type RuleDocument struct {
	Weekday   string          `json:"weekday" yaml:"weekday"`
	StartDate string          `json:"startDate" yaml:"startDate"`
	EndDate   string          `json:"endDate" yaml:"endDate"`
	Days      int             `json:"days" yaml:"days"`
	Profile   []BreakpointDoc `json:"profile" yaml:"profile"`
}

// BreakpointDoc uses the same time/value shape as the configuration file.
type BreakpointDoc struct {
	Time  string  `json:"time" yaml:"time"`
	Value float64 `json:"value" yaml:"value"`
}

func breakpoints(day profile.Day) []BreakpointDoc {
	points := day.Breakpoints()
	out := make([]BreakpointDoc, len(points))
	for i, p := range points {
		out[i] = BreakpointDoc{Time: p.Time.String(), Value: mathutil.Round(p.Value)}
	}
	return out
}

// NewDocument converts a schedule and its warnings into a Document.
func NewDocument(s *schedule.Schedule, warnings []schederrors.DegenerateInputWarning) Document {
	special := s.SpecialDays()
	doc := Document{
		Handle:         s.Handle().String(),
		Name:           s.Name(),
		Year:           s.Year(),
		DefaultProfile: breakpoints(s.DefaultProfile()),
		SpecialDays: SpecialDaysDocument{
			WinterDesign: breakpoints(special.WinterDesign),
			SummerDesign: breakpoints(special.SummerDesign),
		},
	}
	if special.Holiday != nil {
		doc.SpecialDays.Holiday = breakpoints(*special.Holiday)
	}

	for _, r := range s.Rules() {
		doc.Rules = append(doc.Rules, RuleDocument{
			Weekday:   r.Weekday.String(),
			StartDate: r.StartDate.Format(constants.DateLayout),
			EndDate:   r.EndDate.Format(constants.DateLayout),
			Days:      r.Days(),
			Profile:   breakpoints(r.Profile),
		})
	}
	for _, w := range warnings {
		doc.Warnings = append(doc.Warnings, w.String())
	}
	return doc
}

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(s *schedule.Schedule, warnings []schederrors.DegenerateInputWarning) {
	p := message.NewPrinter(language.English)
	fmt.Printf("--- Schedule %s (%d) ---\n", s.Name(), s.Year())
	fmt.Printf("Weekday   | From       | Through    | Days | Occupied      | Profile\n")
	fmt.Printf("_______   | __________ | __________ | ____ | _____________ | _______\n")
	days := 0
	for _, r := range s.Rules() {
		occupied := format.OccupiedSeconds(r.Profile)
		days += r.Days()
		fmt.Printf("%-9s | %s | %s | %4d | %-5s (%6s) | %s\n",
			r.Weekday,
			r.StartDate.Format(constants.DateLayout),
			r.EndDate.Format(constants.DateLayout),
			r.Days(),
			format.Hours(occupied),
			format.Percent(mathutil.Fraction(float64(occupied), float64(datetime.EndOfDay))),
			format.Profile(r.Profile, " "),
		)
	}

	_, _ = p.Printf("%d rules covering %d days\n", len(s.Rules()), days)

	special := s.SpecialDays()
	fmt.Printf("\n")
	fmt.Printf("Winter design day | %s\n", format.Profile(special.WinterDesign, " "))
	fmt.Printf("Summer design day | %s\n", format.Profile(special.SummerDesign, " "))
	if special.Holiday != nil {
		fmt.Printf("Holiday           | %s\n", format.Profile(*special.Holiday, " "))
	}

	if len(warnings) > 0 {
		_, _ = p.Printf("\n%d warnings:\n", len(warnings))
		for _, w := range warnings {
			fmt.Printf("  %s\n", w)
		}
	}
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(s *schedule.Schedule) {
	fmt.Print(CsvString(s))
}

// CsvString renders the rules in comma-separated value format.
func CsvString(s *schedule.Schedule) string {
	var b strings.Builder
	b.WriteString(`"weekday","startDate","endDate","days","profile"`)
	b.WriteString("\n")
	for _, r := range s.Rules() {
		fmt.Fprintf(&b, `"%s","%s","%s","%d","%s"`,
			r.Weekday,
			r.StartDate.Format(constants.DateLayout),
			r.EndDate.Format(constants.DateLayout),
			r.Days(),
			format.Profile(r.Profile, ";"),
		)
		b.WriteString("\n")
	}
	return b.String()
}

// YAMLString renders the schedule document as YAML.
func YAMLString(s *schedule.Schedule, warnings []schederrors.DegenerateInputWarning) (string, error) {
	data, err := yaml.Marshal(NewDocument(s, warnings))
	if err != nil {
		return "", fmt.Errorf("failed to encode schedule as YAML: %w", err)
	}
	return string(data), nil
}

// JSONString renders the schedule document as indented JSON.
func JSONString(s *schedule.Schedule, warnings []schederrors.DegenerateInputWarning) (string, error) {
	data, err := json.MarshalIndent(NewDocument(s, warnings), "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode schedule as JSON: %w", err)
	}
	return string(data) + "\n", nil
}
