// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the terminal user interface for the NCHRD console.
// This file, tui.go, is the main entry point for the TUI, containing the
// top-level model that acts as a router to all other sub-views.
package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/logging"
	"github.com/nchrd/console/internal/session"
)

// viewState represents which part of the UI is currently active.
type viewState int

const (
	// loginView is shown whenever no credential is stored.
	loginView viewState = iota
	// menuView is the main dashboard and navigation menu.
	menuView
	studentsView
	companiesView
	evaluationsView
	trainingDaysView
	usersView
	reportsView
	notificationsView
	profileView
)

// A message to signal that we should go back to the main menu.
type backToMenuMsg struct{}

// A message to signal that we should go back to the list from the form.
type backToListMsg struct{}

// A message to signal that a sign-in completed and the menu should be shown.
type signedInMsg struct{}

// A message to signal that the stored credential was rejected. The router
// reacts by dropping to the login screen; the session store has already been
// cleared by the API client.
type sessionExpiredMsg struct{}

// unreadCountMsg carries the dashboard's unread notification count.
type unreadCountMsg struct {
	count int
	err   error
}

// expiredCmd converts an authentication failure into the routing message;
// it returns nil for every other error so screens keep handling those.
func expiredCmd(err error) tea.Cmd {
	if errors.Is(err, api.ErrUnauthorized) {
		return func() tea.Msg { return sessionExpiredMsg{} }
	}
	return nil
}

// mainModel is the top-level model for the TUI. It acts as a state machine
// and router, delegating updates and view rendering to the currently active
// sub-model.
type mainModel struct {
	state  viewState
	client api.Client
	sess   *session.Store

	menu          menuModel
	login         loginModel
	students      *studentsModel
	companies     *companiesModel
	evaluations   *evaluationsModel
	trainingDays  *trainingDaysModel
	users         *usersModel
	reports       *reportsModel
	notifications *notificationsModel
	profile       *profileModel

	unread int
	width  int
	height int
	err    error
}

// menuModel holds the state for the main menu.
type menuModel struct {
	choices []string // The menu items to show.
	cursor  int      // Which menu item our cursor is pointing at.
}

func newMenuModel() menuModel {
	return menuModel{
		choices: []string{
			i18n.T("menu.students"),
			i18n.T("menu.companies"),
			i18n.T("menu.evaluations"),
			i18n.T("menu.training_days"),
			i18n.T("menu.users"),
			i18n.T("menu.reports"),
			i18n.T("menu.notifications"),
			i18n.T("menu.profile"),
			i18n.T("menu.logout"),
		},
	}
}

// initialModel creates the starting state of the TUI. The session gate lives
// here: with a stored credential the menu is shown directly, otherwise the
// login screen is the only way in.
func initialModel(c api.Client, sess *session.Store) mainModel {
	m := mainModel{
		state:  loginView,
		client: c,
		sess:   sess,
		menu:   newMenuModel(),
		login:  newLoginModel(c, sess, ""),
	}
	if sess.Authenticated() {
		m.state = menuView
	}
	return m
}

// Run starts the interactive console.
func Run(c api.Client, sess *session.Store) error {
	applyTheme(sess.Theme())
	p := tea.NewProgram(initialModel(c, sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// refreshUnreadCmd loads the unread notification count for the dashboard.
func refreshUnreadCmd(c api.Client) tea.Cmd {
	return func() tea.Msg {
		notifs, err := c.ListNotifications(context.Background())
		if err != nil {
			return unreadCountMsg{err: err}
		}
		count := 0
		for _, n := range notifs {
			if !n.IsRead {
				count++
			}
		}
		return unreadCountMsg{count: count}
	}
}

// Init is the first function that will be called by the Bubble Tea runtime.
func (m mainModel) Init() tea.Cmd {
	if m.state == menuView {
		return refreshUnreadCmd(m.client)
	}
	return m.login.Init()
}

// Update is the main message loop. It handles all events (like key presses
// and window size changes) and delegates them to the active sub-model.
func (m mainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings that work everywhere.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case unreadCountMsg:
		if msg.err != nil {
			if c := expiredCmd(msg.err); c != nil {
				return m, c
			}
			logging.Debugf("loading unread count: %v", msg.err)
			return m, nil
		}
		m.unread = msg.count
		return m, nil
	case signedInMsg:
		m.state = menuView
		m.menu = newMenuModel()
		return m, refreshUnreadCmd(m.client)
	case sessionExpiredMsg:
		m.state = loginView
		m.login = newLoginModel(m.client, m.sess, i18n.T("login.expired"))
		return m, m.login.Init()
	}

	// Delegate updates to the currently active view.
	switch m.state {
	case loginView:
		var newLogin tea.Model
		newLogin, cmd = m.login.Update(msg)
		m.login = newLogin.(loginModel)

	case studentsView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshUnreadCmd(m.client)
		}
		var updated tea.Model
		updated, cmd = m.students.Update(msg)
		m.students = updated.(*studentsModel)

	case companiesView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshUnreadCmd(m.client)
		}
		var updated tea.Model
		updated, cmd = m.companies.Update(msg)
		m.companies = updated.(*companiesModel)

	case evaluationsView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshUnreadCmd(m.client)
		}
		var updated tea.Model
		updated, cmd = m.evaluations.Update(msg)
		m.evaluations = updated.(*evaluationsModel)

	case trainingDaysView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshUnreadCmd(m.client)
		}
		var updated tea.Model
		updated, cmd = m.trainingDays.Update(msg)
		m.trainingDays = updated.(*trainingDaysModel)

	case usersView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshUnreadCmd(m.client)
		}
		var updated tea.Model
		updated, cmd = m.users.Update(msg)
		m.users = updated.(*usersModel)

	case reportsView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshUnreadCmd(m.client)
		}
		var updated tea.Model
		updated, cmd = m.reports.Update(msg)
		m.reports = updated.(*reportsModel)

	case notificationsView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshUnreadCmd(m.client)
		}
		var updated tea.Model
		updated, cmd = m.notifications.Update(msg)
		m.notifications = updated.(*notificationsModel)

	case profileView:
		if _, ok := msg.(backToMenuMsg); ok {
			m.state = menuView
			return m, refreshUnreadCmd(m.client)
		}
		var updated tea.Model
		updated, cmd = m.profile.Update(msg)
		m.profile = updated.(*profileModel)

	default: // menuView
		if keyMsg, ok := msg.(tea.KeyMsg); ok {
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "t":
				theme := session.ThemeLight
				if m.sess.Theme() == session.ThemeLight {
					theme = session.ThemeDark
				}
				if err := m.sess.SetTheme(theme); err != nil {
					m.err = err
					return m, nil
				}
				applyTheme(theme)
				return m, nil
			case "up", "k":
				if m.menu.cursor > 0 {
					m.menu.cursor--
				}
			case "down", "j":
				if m.menu.cursor < len(m.menu.choices)-1 {
					m.menu.cursor++
				}
			case "enter":
				return m.openMenuEntry()
			}
		}
	}

	return m, cmd
}

// openMenuEntry routes the menu selection to the matching screen.
func (m mainModel) openMenuEntry() (tea.Model, tea.Cmd) {
	size := tea.WindowSizeMsg{Width: m.width, Height: m.height}
	var cmd tea.Cmd

	switch m.menu.cursor {
	case 0: // Students
		m.state = studentsView
		m.students = newStudentsModel(m.client)
		var updated tea.Model
		updated, cmd = m.students.Update(size)
		m.students = updated.(*studentsModel)
		return m, tea.Batch(m.students.Init(), cmd)
	case 1: // Companies
		m.state = companiesView
		m.companies = newCompaniesModel(m.client)
		var updated tea.Model
		updated, cmd = m.companies.Update(size)
		m.companies = updated.(*companiesModel)
		return m, tea.Batch(m.companies.Init(), cmd)
	case 2: // Evaluations
		m.state = evaluationsView
		m.evaluations = newEvaluationsModel(m.client)
		var updated tea.Model
		updated, cmd = m.evaluations.Update(size)
		m.evaluations = updated.(*evaluationsModel)
		return m, tea.Batch(m.evaluations.Init(), cmd)
	case 3: // Training days
		m.state = trainingDaysView
		m.trainingDays = newTrainingDaysModel(m.client)
		var updated tea.Model
		updated, cmd = m.trainingDays.Update(size)
		m.trainingDays = updated.(*trainingDaysModel)
		return m, tea.Batch(m.trainingDays.Init(), cmd)
	case 4: // Users
		m.state = usersView
		m.users = newUsersModel(m.client)
		var updated tea.Model
		updated, cmd = m.users.Update(size)
		m.users = updated.(*usersModel)
		return m, tea.Batch(m.users.Init(), cmd)
	case 5: // Attendance reports
		m.state = reportsView
		m.reports = newReportsModel(m.client)
		var updated tea.Model
		updated, cmd = m.reports.Update(size)
		m.reports = updated.(*reportsModel)
		return m, tea.Batch(m.reports.Init(), cmd)
	case 6: // Notifications
		m.state = notificationsView
		m.notifications = newNotificationsModel(m.client)
		var updated tea.Model
		updated, cmd = m.notifications.Update(size)
		m.notifications = updated.(*notificationsModel)
		return m, tea.Batch(m.notifications.Init(), cmd)
	case 7: // Change password
		m.state = profileView
		m.profile = newProfileModel(m.client)
		return m, m.profile.Init()
	case 8: // Sign out
		if err := m.sess.Clear(); err != nil {
			m.err = err
			return m, nil
		}
		m.state = loginView
		m.login = newLoginModel(m.client, m.sess, "")
		return m, m.login.Init()
	}
	return m, nil
}

// View renders the TUI. It's called after every Update and delegates
// rendering to the currently active sub-model.
func (m mainModel) View() string {
	if m.err != nil {
		return errorStyle.Padding(1, 2).Render(fmt.Sprintf("An error occurred: %v", m.err))
	}

	switch m.state {
	case loginView:
		return m.login.View()
	case studentsView:
		return m.students.View()
	case companiesView:
		return m.companies.View()
	case evaluationsView:
		return m.evaluations.View()
	case trainingDaysView:
		return m.trainingDays.View()
	case usersView:
		return m.users.View()
	case reportsView:
		return m.reports.View()
	case notificationsView:
		return m.notifications.View()
	case profileView:
		return m.profile.View()
	default: // menuView
		return m.menuView()
	}
}

// menuView renders the main menu with the signed-in identity and the unread
// notification badge.
func (m mainModel) menuView() string {
	title := mainTitleStyle.Render("🎓 " + i18n.T("app.title"))

	var subtitle string
	if claims, ok := m.sess.Claims(); ok {
		subtitle = helpStyle.Render(i18n.T("menu.signed_in", claims.Username, claims.Role))
	}

	var items []string
	for i, choice := range m.menu.choices {
		line := "  " + choice
		if i == 6 && m.unread > 0 { // Notifications entry
			line += " " + specialStyle.Render("("+i18n.T("menu.unread", m.unread)+")")
		}
		if m.menu.cursor == i {
			line = selectedItemStyle.Render("▸ " + choice)
			if i == 6 && m.unread > 0 {
				line += " " + specialStyle.Render("("+i18n.T("menu.unread", m.unread)+")")
			}
		}
		items = append(items, line)
	}

	menu := lipgloss.JoinVertical(lipgloss.Left, items...)
	footer := helpStyle.Render(i18n.T("menu.hint"))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, subtitle, "", menu, "", footer))
}
