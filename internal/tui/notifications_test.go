package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

func TestNotifications_EnterMarksUnreadOnly(t *testing.T) {
	i18n.Init("en")
	var markedID int
	mock := api.NewMockClient(nil, api.MockClientOverwrites{
		MarkNotificationRead: func(ctx context.Context, id int) error {
			markedID = id
			return nil
		},
		ListNotifications: func(ctx context.Context) ([]model.Notification, error) { return nil, nil },
	})
	m := newNotificationsModel(mock)
	m.loading = false
	m.notifications = []model.Notification{
		{ID: 1, Title: "seen", IsRead: true},
		{ID: 2, Title: "fresh", IsRead: false},
	}

	// Enter on an already-read notification is a no-op.
	mi, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m1 := mi.(*notificationsModel)
	if cmd != nil {
		t.Fatalf("expected no command for a read notification")
	}

	m1.cursor = 1
	mi, cmd = m1.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m2 := mi.(*notificationsModel)
	if cmd == nil {
		t.Fatalf("expected mark command for an unread notification")
	}
	if _, ok := cmd().(notificationMarkedMsg); !ok {
		t.Fatalf("expected notificationMarkedMsg")
	}
	if markedID != 2 {
		t.Fatalf("expected MarkNotificationRead(2), got %d", markedID)
	}

	// The marked message sets the status and reloads the inbox.
	mi, cmd = m2.Update(notificationMarkedMsg{})
	m3 := mi.(*notificationsModel)
	if m3.status != i18n.T("notifications.marked") {
		t.Fatalf("expected marked status, got %q", m3.status)
	}
	if cmd == nil {
		t.Fatalf("expected reload command after marking")
	}
}

func TestNotifications_LoadedMsgClampsCursor(t *testing.T) {
	i18n.Init("en")
	m := newNotificationsModel(api.NewMockClient(nil, api.MockClientOverwrites{}))
	m.cursor = 5

	mi, _ := m.Update(notificationsLoadedMsg{notifications: []model.Notification{{ID: 1}}})
	m1 := mi.(*notificationsModel)
	if m1.cursor != 0 {
		t.Fatalf("expected cursor clamped to 0, got %d", m1.cursor)
	}
	if m1.loading {
		t.Fatalf("expected loading cleared")
	}
}
