// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

type notificationsLoadedMsg struct {
	notifications []model.Notification
	err           error
}

type notificationMarkedMsg struct {
	err error
}

// notificationsModel is the read-only notification inbox. Enter marks the
// selected notification as read on the server.
type notificationsModel struct {
	client        api.Client
	notifications []model.Notification
	cursor        int
	status        string
	err           error
	loading       bool
	width, height int
}

func newNotificationsModel(c api.Client) *notificationsModel {
	return &notificationsModel{client: c, loading: true}
}

func (m *notificationsModel) Init() tea.Cmd {
	return loadNotificationsCmd(m.client)
}

func loadNotificationsCmd(c api.Client) tea.Cmd {
	return func() tea.Msg {
		notifs, err := c.ListNotifications(context.Background())
		return notificationsLoadedMsg{notifications: notifs, err: err}
	}
}

func markNotificationCmd(c api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		return notificationMarkedMsg{err: c.MarkNotificationRead(context.Background(), id)}
	}
}

var notificationColumns = []column{
	{field: "is_read", title: "notifications.col.read", width: 8,
		lookup: map[string]string{
			"read":   "notifications.read_yes",
			"unread": "notifications.read_no",
		},
		tones: map[string]badgeTone{
			"read":   toneSubtle,
			"unread": toneSpecial,
		}},
	{field: "title", title: "notifications.col.title", width: 24},
	{field: "message", title: "notifications.col.message", width: 40},
	{field: "created_at", title: "notifications.col.created", width: 16},
}

func (m *notificationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	switch msg := msg.(type) {
	case notificationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if c := expiredCmd(msg.err); c != nil {
				return m, c
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.notifications = msg.notifications
		m.cursor = clampCursor(m.cursor, len(m.notifications))
		return m, nil
	case notificationMarkedMsg:
		if msg.err != nil {
			if c := expiredCmd(msg.err); c != nil {
				return m, c
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.status = i18n.T("notifications.marked")
		return m, loadNotificationsCmd(m.client)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.notifications)-1 {
				m.cursor++
			}
		case "r":
			m.status = ""
			m.loading = true
			return m, loadNotificationsCmd(m.client)
		case "enter":
			if len(m.notifications) > 0 && !m.notifications[m.cursor].IsRead {
				return m, markNotificationCmd(m.client, m.notifications[m.cursor].ID)
			}
		}
	}

	return m, nil
}

func (m *notificationsModel) View() string {
	var viewItems []string
	viewItems = append(viewItems, mainTitleStyle.Render("🔔 "+i18n.T("notifications.title")))

	if m.loading {
		viewItems = append(viewItems, helpStyle.Render(i18n.T("list.loading")))
	} else {
		viewItems = append(viewItems, renderTable(notificationColumns, records(m.notifications), m.cursor))
	}

	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	} else if m.status != "" {
		viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("notifications.hint")))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
