// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

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
	"github.com/nchrd/console/internal/session"
)

// loginResultMsg carries the outcome of a sign-in attempt.
type loginResultMsg struct {
	tokens model.TokenPair
	err    error
}

// loginModel is the sign-in form shown whenever no credential is stored.
type loginModel struct {
	client     api.Client
	sess       *session.Store
	focusIndex int
	inputs     []textinput.Model // 0: username, 1: password
	submitting bool
	notice     string // e.g. "session expired", shown above the form
	err        error
}

func newLoginModel(c api.Client, sess *session.Store, notice string) loginModel {
	m := loginModel{
		client: c,
		sess:   sess,
		notice: notice,
		inputs: make([]textinput.Model, 2),
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 64
		t.Width = 32

		switch i {
		case 0:
			t.Prompt = i18n.T("login.username") + ": "
		case 1:
			t.Prompt = i18n.T("login.password") + ": "
			t.EchoMode = textinput.EchoPassword
			t.EchoCharacter = '•'
		}
		m.inputs[i] = t
	}
	m.inputs[0].Focus()
	m.inputs[0].TextStyle = focusedStyle

	return m
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

// loginCmd performs the sign-in call off the UI loop.
func loginCmd(c api.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		tokens, err := c.Login(context.Background(), username, password)
		return loginResultMsg{tokens: tokens, err: err}
	}
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loginResultMsg:
		m.submitting = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		if err := m.sess.SetTokens(msg.tokens.Access, msg.tokens.Refresh); err != nil {
			m.err = err
			return m, nil
		}
		return m, func() tea.Msg { return signedInMsg{} }

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				username := strings.TrimSpace(m.inputs[0].Value())
				password := m.inputs[1].Value()
				if username == "" {
					m.err = errRequired(i18n.T("login.username"))
					return m, nil
				}
				if password == "" {
					m.err = errRequired(i18n.T("login.password"))
					return m, nil
				}
				m.err = nil
				m.submitting = true
				return m, loginCmd(m.client, username, password)
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

func (m *loginModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m loginModel) View() string {
	var viewItems []string

	viewItems = append(viewItems, mainTitleStyle.Render("🎓 "+i18n.T("app.title")))
	viewItems = append(viewItems, titleStyle.Render(i18n.T("login.title")))

	if m.notice != "" {
		viewItems = append(viewItems, specialStyle.Render(m.notice), "")
	}

	for i := range m.inputs {
		viewItems = append(viewItems, m.inputs[i].View())
	}

	button := formItemStyle.Render("[ " + i18n.T("login.submit") + " ]")
	if m.focusIndex == len(m.inputs) {
		button = formSelectedItemStyle.Render("[ " + i18n.T("login.submit") + " ]")
	}
	viewItems = append(viewItems, "", button)

	if m.submitting {
		viewItems = append(viewItems, "", helpStyle.Render(i18n.T("login.signing_in")))
	}
	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	}

	viewItems = append(viewItems, "", helpStyle.Render("(tab to navigate, enter to submit, ctrl+c to quit)"))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
