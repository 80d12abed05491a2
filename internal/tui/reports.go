// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

type reportLoadedMsg struct {
	report model.AttendanceReport
	err    error
}

type reportCopiedMsg struct {
	err error
}

var reportTypes = []string{api.ReportDaily, api.ReportWeekly, api.ReportMonthly}

// weekPattern matches the ISO week form the backend expects, e.g. 2024-W12.
var weekPattern = regexp.MustCompile(`^\d{4}-W\d{2}$`)

// reportsModel drives the attendance report screen: pick a period type,
// enter the period, run the report, scroll the records.
type reportsModel struct {
	client        api.Client
	typeIdx       int
	period        textinput.Model
	report        model.AttendanceReport
	hasReport     bool
	cursor        int
	running       bool
	status        string
	err           error
	width, height int
}

func newReportsModel(c api.Client) *reportsModel {
	m := &reportsModel{client: c}

	t := textinput.New()
	t.Cursor.Style = focusedStyle
	t.CharLimit = 10
	t.Width = 20
	t.Focus()
	t.TextStyle = focusedStyle
	m.period = t
	m.syncPrompt()

	return m
}

func (m *reportsModel) Init() tea.Cmd {
	return textinput.Blink
}

// syncPrompt matches the period input's prompt and placeholder to the
// selected report type.
func (m *reportsModel) syncPrompt() {
	switch reportTypes[m.typeIdx] {
	case api.ReportDaily:
		m.period.Prompt = i18n.T("reports.date") + ": "
		m.period.Placeholder = "2024-03-15"
	case api.ReportWeekly:
		m.period.Prompt = i18n.T("reports.week") + ": "
		m.period.Placeholder = "2024-W11"
	case api.ReportMonthly:
		m.period.Prompt = i18n.T("reports.month") + ": "
		m.period.Placeholder = "2024-03"
	}
}

func (m *reportsModel) validatePeriod() error {
	period := strings.TrimSpace(m.period.Value())
	if period == "" {
		return errRequired(strings.TrimSuffix(m.period.Prompt, ": "))
	}
	switch reportTypes[m.typeIdx] {
	case api.ReportDaily:
		if _, err := time.Parse("2006-01-02", period); err != nil {
			return errDateFormat()
		}
	case api.ReportWeekly:
		if !weekPattern.MatchString(period) {
			return errRequired(i18n.T("reports.week"))
		}
	case api.ReportMonthly:
		if _, err := time.Parse("2006-01", period); err != nil {
			return errDateFormat()
		}
	}
	return nil
}

func (m *reportsModel) query() api.ReportQuery {
	period := strings.TrimSpace(m.period.Value())
	q := api.ReportQuery{Type: reportTypes[m.typeIdx]}
	switch q.Type {
	case api.ReportDaily:
		q.Date = period
	case api.ReportWeekly:
		q.Week = period
	case api.ReportMonthly:
		q.Month = period
	}
	return q
}

func runReportCmd(c api.Client, query api.ReportQuery) tea.Cmd {
	return func() tea.Msg {
		report, err := c.AttendanceReport(context.Background(), query)
		return reportLoadedMsg{report: report, err: err}
	}
}

// summaryText flattens the report header for the clipboard.
func summaryText(r model.AttendanceReport) string {
	lines := []string{
		i18n.T("reports.summary.range") + ": " + r.DateRange,
		fmt.Sprintf("%s: %d", i18n.T("reports.summary.students"), r.TotalStudents),
		fmt.Sprintf("%s: %d", i18n.T("reports.summary.records"), r.TotalRecords),
		fmt.Sprintf("%s: %d", i18n.T("reports.summary.present"), r.Present),
		fmt.Sprintf("%s: %d", i18n.T("reports.summary.absent"), r.Absent),
		fmt.Sprintf("%s: %d", i18n.T("reports.summary.with_reason"), r.AbsentWithReason),
		fmt.Sprintf("%s: %d", i18n.T("reports.summary.without_reason"), r.AbsentWithoutReason),
		fmt.Sprintf("%s: %.1f%%", i18n.T("reports.summary.rate"), r.AttendanceRate),
	}
	return strings.Join(lines, "\n")
}

func copySummaryCmd(r model.AttendanceReport) tea.Cmd {
	return func() tea.Msg {
		return reportCopiedMsg{err: clipboard.WriteAll(summaryText(r))}
	}
}

var attendanceColumns = []column{
	{field: "student_name", title: "reports.col.student", width: 24},
	{field: "company_name", title: "reports.col.company", width: 20},
	{field: "date", title: "reports.col.date", width: 12},
	{field: "status", title: "reports.col.status", width: 10,
		lookup: map[string]string{
			model.AttendancePresent: "reports.status.present",
			model.AttendanceAbsent:  "reports.status.absent",
		},
		tones: map[string]badgeTone{
			model.AttendancePresent: toneSuccess,
			model.AttendanceAbsent:  toneError,
		}},
	{field: "reason", title: "reports.col.reason", width: 24},
}

func (m *reportsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.running = false
		if msg.err != nil {
			if c := expiredCmd(msg.err); c != nil {
				return m, c
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.report = msg.report
		m.hasReport = true
		m.cursor = 0
		return m, nil
	case reportCopiedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = i18n.T("reports.copied")
		return m, nil

	case tea.KeyMsg:
		if m.running {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "tab":
			m.typeIdx = (m.typeIdx + 1) % len(reportTypes)
			m.syncPrompt()
			return m, nil
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "j":
			if m.cursor < len(m.report.Records)-1 {
				m.cursor++
			}
			return m, nil
		case "c":
			if m.hasReport {
				return m, copySummaryCmd(m.report)
			}
			return m, nil
		case "enter":
			if err := m.validatePeriod(); err != nil {
				m.err = err
				return m, nil
			}
			m.err = nil
			m.status = ""
			m.running = true
			return m, runReportCmd(m.client, m.query())
		}
	}

	var cmd tea.Cmd
	m.period, cmd = m.period.Update(msg)
	return m, cmd
}

func (m *reportsModel) summaryView() string {
	r := m.report
	rows := []string{
		helpStyle.Render(i18n.T("reports.summary.range")+": ") + r.DateRange,
		fmt.Sprintf("%s: %d  %s: %d",
			i18n.T("reports.summary.students"), r.TotalStudents,
			i18n.T("reports.summary.records"), r.TotalRecords),
		fmt.Sprintf("%s: %s  %s: %s (%s: %d, %s: %d)",
			i18n.T("reports.summary.present"), successStyle.Render(fmt.Sprintf("%d", r.Present)),
			i18n.T("reports.summary.absent"), errorStyle.Render(fmt.Sprintf("%d", r.Absent)),
			i18n.T("reports.summary.with_reason"), r.AbsentWithReason,
			i18n.T("reports.summary.without_reason"), r.AbsentWithoutReason),
		fmt.Sprintf("%s: %.1f%%", i18n.T("reports.summary.rate"), r.AttendanceRate),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *reportsModel) View() string {
	var viewItems []string
	viewItems = append(viewItems, mainTitleStyle.Render("📊 "+i18n.T("reports.title")))

	typeLabels := map[string]string{
		api.ReportDaily:   i18n.T("reports.type.daily"),
		api.ReportWeekly:  i18n.T("reports.type.weekly"),
		api.ReportMonthly: i18n.T("reports.type.monthly"),
	}
	var typeRow []string
	for _, rt := range reportTypes {
		label := " " + typeLabels[rt] + " "
		if rt == reportTypes[m.typeIdx] {
			typeRow = append(typeRow, activeButtonStyle.Render(label))
		} else {
			typeRow = append(typeRow, buttonStyle.Render(label))
		}
	}
	viewItems = append(viewItems, lipgloss.JoinHorizontal(lipgloss.Top, typeRow...))
	viewItems = append(viewItems, "", m.period.View())

	if m.running {
		viewItems = append(viewItems, "", helpStyle.Render(i18n.T("list.loading")))
	}

	if m.hasReport {
		viewItems = append(viewItems, "", m.summaryView(), "")
		viewItems = append(viewItems, renderTable(attendanceColumns, records(m.report.Records), m.cursor))
	}

	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	} else if m.status != "" {
		viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("reports.hint")))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
