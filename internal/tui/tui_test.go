// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
	"github.com/nchrd/console/internal/session"
)

func testSession(t *testing.T) *session.Store {
	t.Helper()
	sess, err := session.Open(filepath.Join(t.TempDir(), "session.yaml"))
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	return sess
}

func TestMain_SessionGate(t *testing.T) {
	i18n.Init("en")
	client := api.NewMockClient(nil, api.MockClientOverwrites{})

	// Without a stored credential, the login screen is the entry point.
	sess := testSession(t)
	m := initialModel(client, sess)
	if m.state != loginView {
		t.Fatalf("expected login view without tokens, got %v", m.state)
	}

	// With a stored credential, the menu is shown directly.
	if err := sess.SetTokens("access", "refresh"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	m = initialModel(client, sess)
	if m.state != menuView {
		t.Fatalf("expected menu view with tokens, got %v", m.state)
	}
}

func TestMain_MenuNavigationOpensScreens(t *testing.T) {
	i18n.Init("en")
	client := api.NewMockClient(nil, api.MockClientOverwrites{
		ListStudents:  func(ctx context.Context) ([]model.Student, error) { return nil, nil },
		ListCompanies: func(ctx context.Context) ([]model.Company, error) { return nil, nil },
	})
	sess := testSession(t)
	if err := sess.SetTokens("access", "refresh"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	m := initialModel(client, sess)

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m1 := mi.(mainModel)
	if m1.menu.cursor != 1 {
		t.Fatalf("expected menu cursor 1 after down, got %d", m1.menu.cursor)
	}

	mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyUp})
	m2 := mi.(mainModel)
	if m2.menu.cursor != 0 {
		t.Fatalf("expected menu cursor 0 after up, got %d", m2.menu.cursor)
	}

	mi, cmd := m2.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m3 := mi.(mainModel)
	if m3.state != studentsView {
		t.Fatalf("expected students view after enter, got %v", m3.state)
	}
	if m3.students == nil {
		t.Fatalf("expected students model created")
	}
	if cmd == nil {
		t.Fatalf("expected init command for the students screen")
	}
}

func TestMain_BackToMenuRefreshesUnread(t *testing.T) {
	i18n.Init("en")
	client := api.NewMockClient(nil, api.MockClientOverwrites{
		ListNotifications: func(ctx context.Context) ([]model.Notification, error) {
			return []model.Notification{{ID: 1}, {ID: 2, IsRead: true}}, nil
		},
	})
	sess := testSession(t)
	if err := sess.SetTokens("access", "refresh"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	m := initialModel(client, sess)
	m.state = studentsView
	m.students = newStudentsModel(client)

	mi, cmd := m.Update(backToMenuMsg{})
	m1 := mi.(mainModel)
	if m1.state != menuView {
		t.Fatalf("expected menu view after backToMenuMsg, got %v", m1.state)
	}
	if cmd == nil {
		t.Fatalf("expected unread refresh command")
	}
	count, ok := cmd().(unreadCountMsg)
	if !ok || count.count != 1 {
		t.Fatalf("expected one unread notification, got %#v", cmd())
	}
}

func TestMain_SessionExpiryDropsToLogin(t *testing.T) {
	i18n.Init("en")
	client := api.NewMockClient(nil, api.MockClientOverwrites{})
	sess := testSession(t)
	if err := sess.SetTokens("access", "refresh"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	m := initialModel(client, sess)
	m.state = studentsView
	m.students = newStudentsModel(client)

	mi, _ := m.Update(sessionExpiredMsg{})
	m1 := mi.(mainModel)
	if m1.state != loginView {
		t.Fatalf("expected login view after session expiry, got %v", m1.state)
	}
	if m1.login.notice != i18n.T("login.expired") {
		t.Fatalf("expected expiry notice on login screen, got %q", m1.login.notice)
	}
}

func TestMain_LogoutClearsSession(t *testing.T) {
	i18n.Init("en")
	client := api.NewMockClient(nil, api.MockClientOverwrites{})
	sess := testSession(t)
	if err := sess.SetTokens("access", "refresh"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	m := initialModel(client, sess)
	m.menu.cursor = len(m.menu.choices) - 1 // Sign out

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m1 := mi.(mainModel)
	if m1.state != loginView {
		t.Fatalf("expected login view after logout, got %v", m1.state)
	}
	if sess.Authenticated() {
		t.Fatalf("expected session cleared after logout")
	}
}

func TestMain_ThemeToggle(t *testing.T) {
	i18n.Init("en")
	client := api.NewMockClient(nil, api.MockClientOverwrites{})
	sess := testSession(t)
	if err := sess.SetTokens("access", "refresh"); err != nil {
		t.Fatalf("set tokens: %v", err)
	}
	m := initialModel(client, sess)

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	_ = mi.(mainModel)
	if sess.Theme() != session.ThemeLight {
		t.Fatalf("expected light theme persisted, got %q", sess.Theme())
	}

	mi, _ = mi.(mainModel).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	_ = mi.(mainModel)
	if sess.Theme() != session.ThemeDark {
		t.Fatalf("expected dark theme after second toggle, got %q", sess.Theme())
	}

	// Leave the package styles on the default theme for other tests.
	applyTheme(session.ThemeDark)
}
