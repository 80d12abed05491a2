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

var userRoles = []string{model.RoleAdmin, model.RoleManager, model.RoleSupervisor, model.RoleEmployee, model.RoleInstitution}

const (
	userFocusRole   = 4
	userFocusSubmit = 5
)

type userFormModel struct {
	client     api.Client
	focusIndex int
	inputs     []textinput.Model // 0: username, 1: email, 2: password, 3: phone
	roleIdx    int
	submitting bool
	err        error
	fieldErrs  map[string]string
}

func newUserFormModel(c api.Client) userFormModel {
	m := userFormModel{
		client: c,
		inputs: make([]textinput.Model, 4),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 64
		t.Width = 40

		switch i {
		case 0:
			t.Prompt = i18n.T("users.col.username") + ": "
		case 1:
			t.Prompt = i18n.T("users.col.email") + ": "
		case 2:
			t.Prompt = i18n.T("users.form.password") + ": "
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		case 3:
			t.Prompt = i18n.T("users.col.phone") + ": "
			t.CharLimit = 20
		}
		m.inputs[i] = t
	}

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	m.roleIdx = len(userRoles) - 2 // default to employee
	return m
}

func (m userFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *userFormModel) applyError(err error) {
	m.submitting = false
	m.err = err
	m.fieldErrs = fieldErrors(err)
}

func saveUserCmd(c api.Client, draft api.UserDraft) tea.Cmd {
	return func() tea.Msg {
		out, err := c.CreateUser(context.Background(), draft)
		return userSavedMsg{user: out, err: err}
	}
}

func (m userFormModel) validate() error {
	if strings.TrimSpace(m.inputs[0].Value()) == "" {
		return errRequired(i18n.T("users.col.username"))
	}
	email := strings.TrimSpace(m.inputs[1].Value())
	if email == "" {
		return errRequired(i18n.T("users.col.email"))
	}
	if !strings.Contains(email, "@") {
		return errEmailInvalid()
	}
	if m.inputs[2].Value() == "" {
		return errRequired(i18n.T("users.form.password"))
	}
	return nil
}

func (m userFormModel) draft() api.UserDraft {
	return api.UserDraft{
		Username: strings.TrimSpace(m.inputs[0].Value()),
		Email:    strings.TrimSpace(m.inputs[1].Value()),
		Password: m.inputs[2].Value(),
		Phone:    strings.TrimSpace(m.inputs[3].Value()),
		Role:     userRoles[m.roleIdx],
	}
}

func (m userFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToListMsg{} }

		case "left", "right":
			if m.focusIndex == userFocusRole {
				if msg.String() == "left" {
					m.roleIdx = (m.roleIdx + len(userRoles) - 1) % len(userRoles)
				} else {
					m.roleIdx = (m.roleIdx + 1) % len(userRoles)
				}
				return m, nil
			}

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == userFocusSubmit {
				if err := m.validate(); err != nil {
					m.err = err
					m.fieldErrs = nil
					return m, nil
				}
				m.err = nil
				m.fieldErrs = nil
				m.submitting = true
				return m, saveUserCmd(m.client, m.draft())
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > userFocusSubmit {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = userFocusSubmit
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

func (m *userFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m userFormModel) View() string {
	var viewItems []string

	viewItems = append(viewItems, titleStyle.Render("✨ "+i18n.T("users.form.add")))
	viewItems = append(viewItems, "")

	fieldNames := []string{"username", "email", "password", "phone"}
	for i := range m.inputs {
		viewItems = append(viewItems, m.inputs[i].View())
		if msg, ok := m.fieldErrs[fieldNames[i]]; ok {
			viewItems = append(viewItems, errorStyle.Render("  "+msg))
		}
	}

	roleLabels := map[string]string{
		model.RoleAdmin:       i18n.T("users.role.admin"),
		model.RoleManager:     i18n.T("users.role.manager"),
		model.RoleSupervisor:  i18n.T("users.role.supervisor"),
		model.RoleEmployee:    i18n.T("users.role.employee"),
		model.RoleInstitution: i18n.T("users.role.institution"),
	}
	viewItems = append(viewItems, choiceRow(i18n.T("users.col.role"), roleLabels[userRoles[m.roleIdx]], m.focusIndex == userFocusRole))

	button := formItemStyle.Render("[ " + i18n.T("form.save") + " ]")
	if m.focusIndex == userFocusSubmit {
		button = formSelectedItemStyle.Render("[ " + i18n.T("form.save") + " ]")
	}
	viewItems = append(viewItems, "", button)

	if m.submitting {
		viewItems = append(viewItems, "", helpStyle.Render(i18n.T("form.saving")))
	}
	if m.err != nil && m.fieldErrs == nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	}

	viewItems = append(viewItems, "", helpStyle.Render("(tab to navigate, left/right to choose, enter to submit, esc to cancel)"))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
