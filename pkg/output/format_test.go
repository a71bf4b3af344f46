package output

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/iwvelando/occupancy-schedule/pkg/datetime"
	"github.com/iwvelando/occupancy-schedule/pkg/profile"
	"github.com/iwvelando/occupancy-schedule/pkg/schederrors"
	"github.com/iwvelando/occupancy-schedule/pkg/testutil"
	"gopkg.in/yaml.v3"
)

var officeHours = profile.MustNewDay(
	profile.Breakpoint{Time: 0, Value: 0},
	profile.Breakpoint{Time: datetime.Hours(17), Value: 1},
	profile.Breakpoint{Time: datetime.EndOfDay, Value: 0},
)

func officePick(d time.Time) profile.Day {
	if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
		return profile.Constant(0)
	}
	if d.Month() == time.March && d.Day() <= 15 {
		return profile.AlwaysOn()
	}
	return officeHours
}

func TestPrettyFormat(t *testing.T) {
	s := testutil.BuildSchedule(t, "Office", 2025, officePick)
	warnings := []schederrors.DegenerateInputWarning{{Date: datetime.MustParseDate("2025-02-01")}}

	output := testutil.CaptureStdout(t, func() {
		PrettyFormat(s, warnings)
	})

	if !strings.Contains(output, "--- Schedule Office (2025) ---") {
		t.Errorf("PrettyFormat missing schedule header, got %q", output)
	}
	if !strings.Contains(output, "Weekday   | From       | Through    | Days | Occupied      | Profile") {
		t.Errorf("PrettyFormat missing table header")
	}
	if !strings.Contains(output, "Monday    | 2025-01-06 | 2025-02-24 |    8 | 17h   ( 70.8%) | 00:00=0 17:00=1 24:00=0") {
		t.Errorf("PrettyFormat missing first Monday rule, got %q", output)
	}
	if !strings.Contains(output, "Sunday    | 2025-01-05 | 2025-12-28 |   52 | 0h    (  0.0%) | 24:00=0") {
		t.Errorf("PrettyFormat missing Sunday rule, got %q", output)
	}
	if !strings.Contains(output, "17 rules covering 365 days") {
		t.Errorf("PrettyFormat missing rule summary")
	}
	if !strings.Contains(output, "Winter design day | 24:00=1") {
		t.Errorf("PrettyFormat missing design day")
	}
	if strings.Contains(output, "Holiday") {
		t.Errorf("PrettyFormat should omit the holiday profile when none is set")
	}
	if !strings.Contains(output, "1 warnings:") || !strings.Contains(output, "2025-02-01") {
		t.Errorf("PrettyFormat missing warnings")
	}
}

func TestCsvString(t *testing.T) {
	s := testutil.BuildSchedule(t, "Office", 2025, officePick)
	csv := CsvString(s)

	lines := strings.Split(strings.TrimSpace(csv), "\n")
	if len(lines) != 18 {
		t.Fatalf("expected header plus 17 rules, got %d lines", len(lines))
	}
	if lines[0] != `"weekday","startDate","endDate","days","profile"` {
		t.Errorf("unexpected header %s", lines[0])
	}
	if lines[1] != `"Monday","2025-01-06","2025-02-24","8","00:00=0;17:00=1;24:00=0"` {
		t.Errorf("unexpected first row %s", lines[1])
	}
	if lines[2] != `"Monday","2025-03-03","2025-03-10","2","24:00=1"` {
		t.Errorf("unexpected second row %s", lines[2])
	}
}

func TestCsvFormat(t *testing.T) {
	s := testutil.BuildSchedule(t, "Office", 2025, officePick)
	output := testutil.CaptureStdout(t, func() {
		CsvFormat(s)
	})
	if output != CsvString(s) {
		t.Errorf("CsvFormat output differs from CsvString")
	}
}

func TestYAMLString(t *testing.T) {
	s := testutil.BuildSchedule(t, "Office", 2025, officePick)
	out, err := YAMLString(s, nil)
	if err != nil {
		t.Fatalf("YAMLString() error = %v", err)
	}

	var doc Document
	if err := yaml.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("YAMLString() produced invalid YAML: %v", err)
	}
	if doc.Name != "Office" || doc.Year != 2025 || len(doc.Rules) != 17 {
		t.Errorf("unexpected document %s/%d/%d", doc.Name, doc.Year, len(doc.Rules))
	}
	if doc.Handle != s.Handle().String() {
		t.Errorf("expected handle %s, got %s", s.Handle(), doc.Handle)
	}
	if len(doc.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", doc.Warnings)
	}
	if strings.Contains(out, "warnings:") || strings.Contains(out, "holiday:") {
		t.Errorf("empty optional sections should be omitted")
	}
}

func TestJSONString(t *testing.T) {
	s := testutil.BuildSchedule(t, "Office", 2025, officePick)
	warnings := []schederrors.DegenerateInputWarning{{Date: datetime.MustParseDate("2025-04-01")}}
	out, err := JSONString(s, warnings)
	if err != nil {
		t.Fatalf("JSONString() error = %v", err)
	}

	var doc Document
	if err := json.Unmarshal([]byte(out), &doc); err != nil {
		t.Fatalf("JSONString() produced invalid JSON: %v", err)
	}
	if len(doc.Rules) != 17 {
		t.Fatalf("expected 17 rules, got %d", len(doc.Rules))
	}
	first := doc.Rules[0]
	if first.Weekday != "Monday" || first.StartDate != "2025-01-06" || first.EndDate != "2025-02-24" || first.Days != 8 {
		t.Errorf("unexpected first rule %+v", first)
	}
	if len(first.Profile) != 3 || first.Profile[1] != (BreakpointDoc{Time: "17:00", Value: 1}) {
		t.Errorf("unexpected first rule profile %+v", first.Profile)
	}
	if len(doc.Warnings) != 1 || !strings.Contains(doc.Warnings[0], "2025-04-01") {
		t.Errorf("unexpected warnings %v", doc.Warnings)
	}
}

func TestNewDocumentHoliday(t *testing.T) {
	s := testutil.BuildSchedule(t, "Office", 2025, officePick)
	doc := NewDocument(s, nil)
	if doc.SpecialDays.Holiday != nil {
		t.Errorf("expected no holiday profile")
	}
	if len(doc.DefaultProfile) != 1 || doc.DefaultProfile[0].Value != 1 {
		t.Errorf("expected fully-on default profile, got %+v", doc.DefaultProfile)
	}
}
