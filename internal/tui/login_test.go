package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

func TestLogin_SubmitStoresTokensAndSignals(t *testing.T) {
	i18n.Init("en")
	mock := api.NewMockClient(nil, api.MockClientOverwrites{
		Login: func(ctx context.Context, username, password string) (model.TokenPair, error) {
			if username != "admin" || password != "secret" {
				t.Fatalf("unexpected credentials %q %q", username, password)
			}
			return model.TokenPair{Access: "acc", Refresh: "ref"}, nil
		},
	})
	sess := testSession(t)
	m := newLoginModel(mock, sess, "")
	m.inputs[0].SetValue("admin")
	m.inputs[1].SetValue("secret")
	m.focusIndex = len(m.inputs)

	mi, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m1 := mi.(loginModel)
	if !m1.submitting {
		t.Fatalf("expected submitting flag set")
	}
	if cmd == nil {
		t.Fatalf("expected login command")
	}

	mi, cmd = m1.Update(cmd())
	m2 := mi.(loginModel)
	if m2.err != nil {
		t.Fatalf("unexpected error: %v", m2.err)
	}
	if !sess.Authenticated() {
		t.Fatalf("expected tokens stored after login")
	}
	if cmd == nil {
		t.Fatalf("expected signed-in message command")
	}
	if _, ok := cmd().(signedInMsg); !ok {
		t.Fatalf("expected signedInMsg, got %#v", cmd())
	}
}

func TestLogin_EmptyFieldsRejectedLocally(t *testing.T) {
	i18n.Init("en")
	m := newLoginModel(api.NewMockClient(nil, api.MockClientOverwrites{}), testSession(t), "")
	m.focusIndex = len(m.inputs)

	mi, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m1 := mi.(loginModel)
	if m1.err == nil {
		t.Fatalf("expected validation error for empty username")
	}
	if cmd != nil {
		t.Fatalf("expected no network call for empty form")
	}
}

func TestLogin_FailedAttemptShowsError(t *testing.T) {
	i18n.Init("en")
	mock := api.NewMockClient(nil, api.MockClientOverwrites{
		Login: func(ctx context.Context, username, password string) (model.TokenPair, error) {
			return model.TokenPair{}, &api.Error{Status: 401, Message: "invalid credentials"}
		},
	})
	sess := testSession(t)
	m := newLoginModel(mock, sess, "")
	m.inputs[0].SetValue("admin")
	m.inputs[1].SetValue("nope")
	m.focusIndex = len(m.inputs)

	mi, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m1 := mi.(loginModel)
	mi, _ = m1.Update(cmd())
	m2 := mi.(loginModel)
	if m2.err == nil {
		t.Fatalf("expected surfaced login error")
	}
	if sess.Authenticated() {
		t.Fatalf("expected no tokens stored after failed login")
	}
	if !strings.Contains(m2.View(), "invalid credentials") {
		t.Fatalf("expected error message in view")
	}
}

func TestLogin_NoticeIsShown(t *testing.T) {
	i18n.Init("en")
	m := newLoginModel(api.NewMockClient(nil, api.MockClientOverwrites{}), testSession(t), i18n.T("login.expired"))
	if !strings.Contains(m.View(), i18n.T("login.expired")) {
		t.Fatalf("expected expiry notice in view")
	}
}
