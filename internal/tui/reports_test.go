package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

func TestReports_ValidatePeriodPerType(t *testing.T) {
	i18n.Init("en")
	m := newReportsModel(api.NewMockClient(nil, api.MockClientOverwrites{}))

	// Daily wants a full date.
	m.period.SetValue("2024-03")
	if err := m.validatePeriod(); err == nil {
		t.Fatalf("expected error for short daily period")
	}
	m.period.SetValue("2024-03-15")
	if err := m.validatePeriod(); err != nil {
		t.Fatalf("expected valid daily period, got %v", err)
	}

	// Weekly wants the ISO week form.
	m.typeIdx = 1
	m.period.SetValue("2024-11")
	if err := m.validatePeriod(); err == nil {
		t.Fatalf("expected error for malformed week")
	}
	m.period.SetValue("2024-W11")
	if err := m.validatePeriod(); err != nil {
		t.Fatalf("expected valid week, got %v", err)
	}

	// Monthly wants year and month only.
	m.typeIdx = 2
	m.period.SetValue("2024-03-15")
	if err := m.validatePeriod(); err == nil {
		t.Fatalf("expected error for over-long month")
	}
	m.period.SetValue("2024-03")
	if err := m.validatePeriod(); err != nil {
		t.Fatalf("expected valid month, got %v", err)
	}
}

func TestReports_QueryMapsPeriodToTypedField(t *testing.T) {
	i18n.Init("en")
	m := newReportsModel(api.NewMockClient(nil, api.MockClientOverwrites{}))
	m.typeIdx = 2
	m.period.SetValue("2024-03")

	q := m.query()
	if q.Type != api.ReportMonthly || q.Month != "2024-03" || q.Date != "" || q.Week != "" {
		t.Fatalf("unexpected query %#v", q)
	}
}

func TestReports_TabCyclesTypeAndPrompt(t *testing.T) {
	i18n.Init("en")
	m := newReportsModel(api.NewMockClient(nil, api.MockClientOverwrites{}))

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m1 := mi.(*reportsModel)
	if reportTypes[m1.typeIdx] != api.ReportWeekly {
		t.Fatalf("expected weekly after tab, got %s", reportTypes[m1.typeIdx])
	}
	if !strings.Contains(m1.period.Prompt, i18n.T("reports.week")) {
		t.Fatalf("expected prompt to follow the type, got %q", m1.period.Prompt)
	}
}

func TestReports_EnterRunsReport(t *testing.T) {
	i18n.Init("en")
	var gotQuery api.ReportQuery
	mock := api.NewMockClient(nil, api.MockClientOverwrites{
		AttendanceReport: func(ctx context.Context, query api.ReportQuery) (model.AttendanceReport, error) {
			gotQuery = query
			return model.AttendanceReport{
				DateRange:      "2024-03-01 - 2024-03-31",
				TotalStudents:  3,
				TotalRecords:   60,
				Present:        54,
				Absent:         6,
				AttendanceRate: 90.0,
			}, nil
		},
	})
	m := newReportsModel(mock)
	m.typeIdx = 2
	m.period.SetValue("2024-03")

	mi, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m1 := mi.(*reportsModel)
	if !m1.running {
		t.Fatalf("expected running flag set")
	}
	if cmd == nil {
		t.Fatalf("expected report command")
	}

	msg := cmd()
	loaded, ok := msg.(reportLoadedMsg)
	if !ok || loaded.err != nil {
		t.Fatalf("expected clean reportLoadedMsg, got %#v", msg)
	}
	if gotQuery.Type != api.ReportMonthly || gotQuery.Month != "2024-03" {
		t.Fatalf("unexpected query sent %#v", gotQuery)
	}

	mi, _ = m1.Update(loaded)
	m2 := mi.(*reportsModel)
	if !m2.hasReport || m2.report.TotalRecords != 60 {
		t.Fatalf("expected report stored, got %#v", m2.report)
	}
	if !strings.Contains(m2.View(), "90.0%") {
		t.Fatalf("expected attendance rate in view")
	}
}

func TestReports_SummaryTextCarriesCounts(t *testing.T) {
	i18n.Init("en")
	text := summaryText(model.AttendanceReport{
		DateRange:           "2024-03-15",
		TotalStudents:       2,
		TotalRecords:        2,
		Present:             1,
		Absent:              1,
		AbsentWithReason:    1,
		AbsentWithoutReason: 0,
		AttendanceRate:      50.0,
	})
	for _, want := range []string{"2024-03-15", i18n.T("reports.summary.present") + ": 1", "50.0%"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in summary text:\n%s", want, text)
		}
	}
}
