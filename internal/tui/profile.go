// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
)

type passwordChangedMsg struct {
	err error
}

// profileModel is the change-password form for the signed-in account.
type profileModel struct {
	client     api.Client
	focusIndex int
	inputs     []textinput.Model // 0: old, 1: new, 2: confirm
	submitting bool
	changed    bool
	err        error
}

func newProfileModel(c api.Client) *profileModel {
	m := &profileModel{
		client: c,
		inputs: make([]textinput.Model, 3),
	}

	prompts := []string{
		i18n.T("profile.old_password"),
		i18n.T("profile.new_password"),
		i18n.T("profile.confirm"),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 128
		t.Width = 40
		t.Prompt = prompts[i] + ": "
		t.EchoMode = textinput.EchoPassword
		t.EchoCharacter = '•'
		m.inputs[i] = t
	}

	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m *profileModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *profileModel) validate() error {
	labels := []string{"profile.old_password", "profile.new_password", "profile.confirm"}
	for i := range m.inputs {
		if strings.TrimSpace(m.inputs[i].Value()) == "" {
			return errRequired(i18n.T(labels[i]))
		}
	}
	if m.inputs[1].Value() != m.inputs[2].Value() {
		return errors.New(i18n.T("profile.mismatch"))
	}
	return nil
}

func changePasswordCmd(c api.Client, oldPassword, newPassword string) tea.Cmd {
	return func() tea.Msg {
		return passwordChangedMsg{err: c.ChangePassword(context.Background(), oldPassword, newPassword)}
	}
}

func (m *profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case passwordChangedMsg:
		m.submitting = false
		if msg.err != nil {
			if c := expiredCmd(msg.err); c != nil {
				return m, c
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.changed = true
		for i := range m.inputs {
			m.inputs[i].Reset()
		}
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				if err := m.validate(); err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.changed = false
				m.submitting = true
				return m, changePasswordCmd(m.client, m.inputs[0].Value(), m.inputs[1].Value())
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

	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return m, tea.Batch(cmds...)
}

func (m *profileModel) View() string {
	var viewItems []string
	viewItems = append(viewItems, titleStyle.Render("🔑 "+i18n.T("profile.title")), "")

	for i := range m.inputs {
		viewItems = append(viewItems, m.inputs[i].View())
	}

	button := formItemStyle.Render("[ " + i18n.T("form.save") + " ]")
	if m.focusIndex == len(m.inputs) {
		button = formSelectedItemStyle.Render("[ " + i18n.T("form.save") + " ]")
	}
	viewItems = append(viewItems, "", button)

	if m.submitting {
		viewItems = append(viewItems, "", helpStyle.Render(i18n.T("form.saving")))
	}
	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	} else if m.changed {
		viewItems = append(viewItems, "", successStyle.Render(i18n.T("profile.changed")))
	}

	viewItems = append(viewItems, "", helpStyle.Render("(tab to navigate, enter to submit, esc to cancel)"))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
