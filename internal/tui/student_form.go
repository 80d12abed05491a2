package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

// studentFormModel is the add/edit form for students. Status and company
// are choice rows navigated with left/right; the rest are text inputs.
type studentFormModel struct {
	client     api.Client
	editing    *model.Student // If not nil, we are in edit mode.
	focusIndex int
	inputs     []textinput.Model // 0: name, 1: national ID, 2: phone, 3: photo path
	statusIdx  int
	companyIdx int // 0 means unassigned, otherwise companies[companyIdx-1]
	companies  []model.Company
	submitting bool
	err        error
	fieldErrs  map[string]string
}

var studentStatuses = []string{model.StudentActive, model.StudentSuspended, model.StudentGraduated}

// Focus positions after the text inputs.
const (
	studentFocusStatus  = 4
	studentFocusCompany = 5
	studentFocusSubmit  = 6
)

func newStudentFormModel(c api.Client, toEdit *model.Student, companies []model.Company) studentFormModel {
	m := studentFormModel{
		client:    c,
		companies: companies,
		inputs:    make([]textinput.Model, 4),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 64
		t.Width = 40

		switch i {
		case 0:
			t.Prompt = i18n.T("students.col.name") + ": "
		case 1:
			t.Prompt = i18n.T("students.col.national_id") + ": "
			t.CharLimit = 20
		case 2:
			t.Prompt = i18n.T("students.col.phone") + ": "
			t.CharLimit = 20
		case 3:
			t.Prompt = i18n.T("students.form.photo") + ": "
			t.CharLimit = 255
		}
		m.inputs[i] = t
	}

	if toEdit != nil {
		m.editing = toEdit
		m.inputs[0].SetValue(toEdit.Name)
		m.inputs[1].SetValue(toEdit.NationalID)
		m.inputs[2].SetValue(toEdit.Phone)
		for i, s := range studentStatuses {
			if s == toEdit.Status {
				m.statusIdx = i
			}
		}
		for i, c := range companies {
			if c.ID == toEdit.Company {
				m.companyIdx = i + 1
			}
		}
	}

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m studentFormModel) Init() tea.Cmd {
	return textinput.Blink
}

// applyError surfaces a failed submit on the form, splitting out any
// per-field validation messages.
func (m *studentFormModel) applyError(err error) {
	m.submitting = false
	m.err = err
	m.fieldErrs = fieldErrors(err)
}

func saveStudentCmd(c api.Client, editing *model.Student, draft api.StudentDraft) tea.Cmd {
	return func() tea.Msg {
		if editing != nil {
			s, err := c.UpdateStudent(context.Background(), editing.ID, draft)
			return studentSavedMsg{student: s, err: err}
		}
		s, err := c.CreateStudent(context.Background(), draft)
		return studentSavedMsg{student: s, isNew: true, err: err}
	}
}

func (m studentFormModel) validate() error {
	if strings.TrimSpace(m.inputs[0].Value()) == "" {
		return errRequired(i18n.T("students.col.name"))
	}
	if strings.TrimSpace(m.inputs[1].Value()) == "" {
		return errRequired(i18n.T("students.col.national_id"))
	}
	if strings.TrimSpace(m.inputs[2].Value()) == "" {
		return errRequired(i18n.T("students.col.phone"))
	}
	return nil
}

func (m studentFormModel) draft() api.StudentDraft {
	d := api.StudentDraft{
		Name:       strings.TrimSpace(m.inputs[0].Value()),
		NationalID: strings.TrimSpace(m.inputs[1].Value()),
		Phone:      strings.TrimSpace(m.inputs[2].Value()),
		Status:     studentStatuses[m.statusIdx],
		PhotoPath:  strings.TrimSpace(m.inputs[3].Value()),
	}
	if m.companyIdx > 0 {
		d.Company = m.companies[m.companyIdx-1].ID
	}
	return d
}

func (m studentFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToListMsg{} }

		case "left", "right":
			switch m.focusIndex {
			case studentFocusStatus:
				if msg.String() == "left" {
					m.statusIdx = (m.statusIdx + len(studentStatuses) - 1) % len(studentStatuses)
				} else {
					m.statusIdx = (m.statusIdx + 1) % len(studentStatuses)
				}
				return m, nil
			case studentFocusCompany:
				// Company cycles through "none" plus every company.
				n := len(m.companies) + 1
				if msg.String() == "left" {
					m.companyIdx = (m.companyIdx + n - 1) % n
				} else {
					m.companyIdx = (m.companyIdx + 1) % n
				}
				return m, nil
			}

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == studentFocusSubmit {
				if err := m.validate(); err != nil {
					m.err = err
					m.fieldErrs = nil
					return m, nil
				}
				m.err = nil
				m.fieldErrs = nil
				m.submitting = true
				return m, saveStudentCmd(m.client, m.editing, m.draft())
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > studentFocusSubmit {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = studentFocusSubmit
			}

			cmds := make([]tea.Cmd, len(m.inputs))
			for i := 0; i <= len(m.inputs)-1; i++ {
				if i == m.focusIndex {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].TextStyle = focusedStyle
					continue
				}
				m.inputs[i].Blur()
				m.inputs[i].TextStyle = lipgloss.NewStyle()
			}
			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m *studentFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

// choiceRow renders a left/right choice field.
func choiceRow(label, value string, focused bool) string {
	line := label + ": ◂ " + value + " ▸"
	if focused {
		return formSelectedItemStyle.Render(line)
	}
	return formItemStyle.Render(line)
}

func (m studentFormModel) companyLabel() string {
	if m.companyIdx == 0 {
		return cellPlaceholder
	}
	return m.companies[m.companyIdx-1].Name
}

func (m studentFormModel) View() string {
	var viewItems []string

	if m.editing != nil {
		viewItems = append(viewItems, titleStyle.Render("✏️ "+i18n.T("students.form.edit")))
	} else {
		viewItems = append(viewItems, titleStyle.Render("✨ "+i18n.T("students.form.add")))
	}
	viewItems = append(viewItems, "")

	fieldNames := []string{"name", "national_id", "phone", "personal_photo"}
	for i := range m.inputs {
		viewItems = append(viewItems, m.inputs[i].View())
		if msg, ok := m.fieldErrs[fieldNames[i]]; ok {
			viewItems = append(viewItems, errorStyle.Render("  "+msg))
		}
	}

	statusLabels := map[string]string{
		model.StudentActive:    i18n.T("students.status.active"),
		model.StudentSuspended: i18n.T("students.status.suspended"),
		model.StudentGraduated: i18n.T("students.status.graduated"),
	}
	viewItems = append(viewItems, choiceRow(i18n.T("students.col.status"), statusLabels[studentStatuses[m.statusIdx]], m.focusIndex == studentFocusStatus))
	viewItems = append(viewItems, choiceRow(i18n.T("students.col.company"), m.companyLabel(), m.focusIndex == studentFocusCompany))
	if msg, ok := m.fieldErrs["company"]; ok {
		viewItems = append(viewItems, errorStyle.Render("  "+msg))
	}

	button := formItemStyle.Render("[ " + i18n.T("form.save") + " ]")
	if m.focusIndex == studentFocusSubmit {
		button = formSelectedItemStyle.Render("[ " + i18n.T("form.save") + " ]")
	}
	viewItems = append(viewItems, "", button)

	if m.submitting {
		viewItems = append(viewItems, "", helpStyle.Render(i18n.T("form.saving")))
	}
	if m.err != nil && m.fieldErrs == nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	}

	viewItems = append(viewItems, "", helpStyle.Render("(tab to navigate, enter to submit, esc to cancel)"))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
