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

type usersLoadedMsg struct {
	users []model.User
	err   error
}

type userSavedMsg struct {
	user model.User
	err  error
}

type userDeletedMsg struct {
	err error
}

type usersViewState int

const (
	usersListView usersViewState = iota
	usersFormView
)

// usersModel is the model for the staff account view. Accounts are created
// and deleted here; password changes go through the profile screen.
type usersModel struct {
	state              usersViewState
	client             api.Client
	form               userFormModel
	users              []model.User
	cursor             int
	status             string
	err                error
	loading            bool
	isConfirmingDelete bool
	userToDelete       model.User
	confirmCursor      int
	width, height      int
}

func newUsersModel(c api.Client) *usersModel {
	return &usersModel{client: c, loading: true}
}

func (m *usersModel) Init() tea.Cmd {
	return loadUsersCmd(m.client)
}

func loadUsersCmd(c api.Client) tea.Cmd {
	return func() tea.Msg {
		users, err := c.ListUsers(context.Background())
		return usersLoadedMsg{users: users, err: err}
	}
}

func deleteUserCmd(c api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		return userDeletedMsg{err: c.DeleteUser(context.Background(), id)}
	}
}

var userColumns = []column{
	{field: "username", title: "users.col.username", width: 18},
	{field: "email", title: "users.col.email", width: 28},
	{field: "phone", title: "users.col.phone", width: 12},
	{field: "role", title: "users.col.role", width: 14,
		lookup: map[string]string{
			model.RoleAdmin:       "users.role.admin",
			model.RoleManager:     "users.role.manager",
			model.RoleSupervisor:  "users.role.supervisor",
			model.RoleEmployee:    "users.role.employee",
			model.RoleInstitution: "users.role.institution",
		},
		tones: map[string]badgeTone{
			model.RoleAdmin: toneSpecial,
		}},
}

func (m *usersModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	if m.state == usersFormView {
		if saved, ok := msg.(userSavedMsg); ok {
			if saved.err != nil {
				if c := expiredCmd(saved.err); c != nil {
					return m, c
				}
				m.form.applyError(saved.err)
				return m, nil
			}
			m.state = usersListView
			m.status = i18n.T("form.saved")
			m.loading = true
			return m, loadUsersCmd(m.client)
		}
		if _, ok := msg.(backToListMsg); ok {
			m.state = usersListView
			m.status = ""
			return m, nil
		}

		var newForm tea.Model
		newForm, cmd = m.form.Update(msg)
		m.form = newForm.(userFormModel)
		return m, cmd
	}

	if m.isConfirmingDelete {
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "n", "q", "esc":
				m.isConfirmingDelete = false
				return m, nil
			case "y":
				m.isConfirmingDelete = false
				return m, deleteUserCmd(m.client, m.userToDelete.ID)
			case "left", "right", "tab":
				m.confirmCursor = (m.confirmCursor + 1) % 2
				return m, nil
			case "enter":
				m.isConfirmingDelete = false
				if m.confirmCursor == 1 {
					return m, deleteUserCmd(m.client, m.userToDelete.ID)
				}
				return m, nil
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case usersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if c := expiredCmd(msg.err); c != nil {
				return m, c
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.users = msg.users
		m.cursor = clampCursor(m.cursor, len(m.users))
		return m, nil
	case userDeletedMsg:
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
		return m, loadUsersCmd(m.client)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.users)-1 {
				m.cursor++
			}
		case "r":
			m.status = ""
			m.loading = true
			return m, loadUsersCmd(m.client)
		case "a":
			m.state = usersFormView
			m.form = newUserFormModel(m.client)
			m.status = ""
			return m, m.form.Init()
		case "d", "delete":
			if len(m.users) > 0 {
				m.userToDelete = m.users[m.cursor]
				m.isConfirmingDelete = true
				m.confirmCursor = 0
			}
			return m, nil
		}
	}

	return m, cmd
}

func (m *usersModel) viewConfirmation() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("users.title")))
	b.WriteString("\n\n")
	b.WriteString(i18n.T("list.confirm_delete", i18n.T("users.singular")+" "+m.userToDelete.Username))
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

func (m *usersModel) View() string {
	if m.state == usersFormView {
		return m.form.View()
	}
	if m.isConfirmingDelete {
		return m.viewConfirmation()
	}

	var viewItems []string
	viewItems = append(viewItems, mainTitleStyle.Render("👥 "+i18n.T("users.title")))

	if m.loading {
		viewItems = append(viewItems, helpStyle.Render(i18n.T("list.loading")))
	} else {
		viewItems = append(viewItems, renderTable(userColumns, records(m.users), m.cursor))
	}

	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	} else if m.status != "" {
		viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("list.hint_no_edit")))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
