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

type companyFormModel struct {
	client     api.Client
	editing    *model.Company
	focusIndex int
	inputs     []textinput.Model // 0: name, 1: address, 2: phone, 3: supervisor
	submitting bool
	err        error
	fieldErrs  map[string]string
}

func newCompanyFormModel(c api.Client, toEdit *model.Company) companyFormModel {
	m := companyFormModel{
		client: c,
		inputs: make([]textinput.Model, 4),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 128
		t.Width = 40

		switch i {
		case 0:
			t.Prompt = i18n.T("companies.col.name") + ": "
		case 1:
			t.Prompt = i18n.T("companies.col.address") + ": "
		case 2:
			t.Prompt = i18n.T("companies.col.phone") + ": "
			t.CharLimit = 20
		case 3:
			t.Prompt = i18n.T("companies.col.supervisor") + ": "
		}
		m.inputs[i] = t
	}

	if toEdit != nil {
		m.editing = toEdit
		m.inputs[0].SetValue(toEdit.Name)
		m.inputs[1].SetValue(toEdit.Address)
		m.inputs[2].SetValue(toEdit.Phone)
		m.inputs[3].SetValue(toEdit.SupervisorName)
	}

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m companyFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *companyFormModel) applyError(err error) {
	m.submitting = false
	m.err = err
	m.fieldErrs = fieldErrors(err)
}

func saveCompanyCmd(c api.Client, editing *model.Company, draft api.CompanyDraft) tea.Cmd {
	return func() tea.Msg {
		if editing != nil {
			out, err := c.UpdateCompany(context.Background(), editing.ID, draft)
			return companySavedMsg{company: out, err: err}
		}
		out, err := c.CreateCompany(context.Background(), draft)
		return companySavedMsg{company: out, isNew: true, err: err}
	}
}

func (m companyFormModel) validate() error {
	if strings.TrimSpace(m.inputs[0].Value()) == "" {
		return errRequired(i18n.T("companies.col.name"))
	}
	if strings.TrimSpace(m.inputs[1].Value()) == "" {
		return errRequired(i18n.T("companies.col.address"))
	}
	return nil
}

func (m companyFormModel) draft() api.CompanyDraft {
	return api.CompanyDraft{
		Name:           strings.TrimSpace(m.inputs[0].Value()),
		Address:        strings.TrimSpace(m.inputs[1].Value()),
		Phone:          strings.TrimSpace(m.inputs[2].Value()),
		SupervisorName: strings.TrimSpace(m.inputs[3].Value()),
	}
}

func (m companyFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToListMsg{} }

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				if err := m.validate(); err != nil {
					m.err = err
					m.fieldErrs = nil
					return m, nil
				}
				m.err = nil
				m.fieldErrs = nil
				m.submitting = true
				return m, saveCompanyCmd(m.client, m.editing, m.draft())
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
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

func (m *companyFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m companyFormModel) View() string {
	var viewItems []string

	if m.editing != nil {
		viewItems = append(viewItems, titleStyle.Render("✏️ "+i18n.T("companies.form.edit")))
	} else {
		viewItems = append(viewItems, titleStyle.Render("✨ "+i18n.T("companies.form.add")))
	}
	viewItems = append(viewItems, "")

	fieldNames := []string{"name", "address", "phone", "supervisor_name"}
	for i := range m.inputs {
		viewItems = append(viewItems, m.inputs[i].View())
		if msg, ok := m.fieldErrs[fieldNames[i]]; ok {
			viewItems = append(viewItems, errorStyle.Render("  "+msg))
		}
	}

	button := formItemStyle.Render("[ " + i18n.T("form.save") + " ]")
	if m.focusIndex == len(m.inputs) {
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
