// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

// studentsLoadedMsg carries a fresh student list plus the companies needed
// for the company column and the form's choice field.
type studentsLoadedMsg struct {
	students  []model.Student
	companies []model.Company
	err       error
}

// studentSavedMsg signals that the form's submit finished.
type studentSavedMsg struct {
	student model.Student
	isNew   bool
	err     error
}

// studentDeletedMsg signals that a delete finished.
type studentDeletedMsg struct {
	err error
}

type studentsViewState int

const (
	studentsListView studentsViewState = iota
	studentsFormView
)

// studentsModel is the model for the student management view.
type studentsModel struct {
	state    studentsViewState
	client   api.Client
	form     studentFormModel
	students []model.Student
	// companies back the company name lookup; loaded alongside the list.
	companies []model.Company
	cursor    int
	status    string
	err       error
	loading   bool
	// For delete confirmation
	isConfirmingDelete bool
	studentToDelete    model.Student
	confirmCursor      int // 0 for No, 1 for Yes
	width, height      int
}

func newStudentsModel(c api.Client) *studentsModel {
	return &studentsModel{client: c, loading: true}
}

func (m *studentsModel) Init() tea.Cmd {
	return loadStudentsCmd(m.client)
}

func loadStudentsCmd(c api.Client) tea.Cmd {
	return func() tea.Msg {
		students, err := c.ListStudents(context.Background())
		if err != nil {
			return studentsLoadedMsg{err: err}
		}
		companies, err := c.ListCompanies(context.Background())
		if err != nil {
			return studentsLoadedMsg{err: err}
		}
		return studentsLoadedMsg{students: students, companies: companies}
	}
}

func deleteStudentCmd(c api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		return studentDeletedMsg{err: c.DeleteStudent(context.Background(), id)}
	}
}

func (m *studentsModel) columns() []column {
	return []column{
		{field: "name", title: "students.col.name", width: 24},
		{field: "national_id", title: "students.col.national_id", width: 12},
		{field: "phone", title: "students.col.phone", width: 12},
		{field: "status", title: "students.col.status", width: 10,
			lookup: map[string]string{
				model.StudentActive:    "students.status.active",
				model.StudentSuspended: "students.status.suspended",
				model.StudentGraduated: "students.status.graduated",
			},
			tones: map[string]badgeTone{
				model.StudentActive:    toneSuccess,
				model.StudentSuspended: toneError,
				model.StudentGraduated: toneSubtle,
			}},
		{field: "company", title: "students.col.company", width: 20,
			lookup: companyNames(m.companies)},
	}
}

func (m *studentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	// Delegate updates to the form if it's active.
	if m.state == studentsFormView {
		if saved, ok := msg.(studentSavedMsg); ok {
			if saved.err != nil {
				if c := expiredCmd(saved.err); c != nil {
					return m, c
				}
				m.form.applyError(saved.err)
				return m, nil
			}
			m.state = studentsListView
			m.status = i18n.T("form.saved")
			m.loading = true
			return m, loadStudentsCmd(m.client)
		}
		if _, ok := msg.(backToListMsg); ok {
			m.state = studentsListView
			m.status = ""
			return m, nil
		}

		var newForm tea.Model
		newForm, cmd = m.form.Update(msg)
		m.form = newForm.(studentFormModel)
		return m, cmd
	}

	// Handle delete confirmation
	if m.isConfirmingDelete {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "n", "q", "esc":
				m.isConfirmingDelete = false
				return m, nil
			case "y":
				m.isConfirmingDelete = false
				return m, deleteStudentCmd(m.client, m.studentToDelete.ID)
			case "left", "right", "tab":
				m.confirmCursor = (m.confirmCursor + 1) % 2
				return m, nil
			case "enter":
				m.isConfirmingDelete = false
				if m.confirmCursor == 1 {
					return m, deleteStudentCmd(m.client, m.studentToDelete.ID)
				}
				return m, nil
			}
		}
		return m, nil
	}

	// Handle async messages for the list view.
	switch msg := msg.(type) {
	case studentsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if c := expiredCmd(msg.err); c != nil {
				return m, c
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.students = msg.students
		m.companies = msg.companies
		m.cursor = clampCursor(m.cursor, len(m.students))
		return m, nil
	case studentDeletedMsg:
		if msg.err != nil {
			if c := expiredCmd(msg.err); c != nil {
				return m, c
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = i18n.T("list.deleted")
		m.loading = true
		return m, loadStudentsCmd(m.client)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.students)-1 {
				m.cursor++
			}
		case "r":
			m.status = ""
			m.loading = true
			return m, loadStudentsCmd(m.client)
		case "a":
			m.state = studentsFormView
			m.form = newStudentFormModel(m.client, nil, m.companies)
			m.status = ""
			return m, m.form.Init()
		case "e":
			if len(m.students) > 0 {
				toEdit := m.students[m.cursor]
				m.state = studentsFormView
				m.form = newStudentFormModel(m.client, &toEdit, m.companies)
				m.status = ""
				return m, m.form.Init()
			}
		case "d", "delete":
			if len(m.students) > 0 {
				m.studentToDelete = m.students[m.cursor]
				m.isConfirmingDelete = true
				m.confirmCursor = 0 // Default to No
			}
			return m, nil
		}
	}

	return m, cmd
}

func (m *studentsModel) viewConfirmation() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("students.title")))
	b.WriteString("\n\n")
	b.WriteString(i18n.T("list.confirm_delete", i18n.T("students.singular")+" "+m.studentToDelete.Name))
	b.WriteString("\n")

	var yesButton, noButton string
	if m.confirmCursor == 1 {
		yesButton = activeButtonStyle.Render(i18n.T("list.confirm_yes"))
		noButton = buttonStyle.Render(i18n.T("list.confirm_no"))
	} else {
		yesButton = buttonStyle.Render(i18n.T("list.confirm_yes"))
		noButton = activeButtonStyle.Render(i18n.T("list.confirm_no"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, noButton, "  ", yesButton))

	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		dialogBoxStyle.Render(b.String()),
	)
}

func (m *studentsModel) View() string {
	if m.state == studentsFormView {
		return m.form.View()
	}
	if m.isConfirmingDelete {
		return m.viewConfirmation()
	}

	var viewItems []string
	viewItems = append(viewItems, mainTitleStyle.Render("🎓 "+i18n.T("students.title")))

	if m.loading {
		viewItems = append(viewItems, helpStyle.Render(i18n.T("list.loading")))
	} else {
		viewItems = append(viewItems, renderTable(m.columns(), records(m.students), m.cursor))
	}

	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	} else if m.status != "" {
		viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("list.hint")))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
