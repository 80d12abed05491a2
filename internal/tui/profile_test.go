package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
)

func TestProfile_Validate(t *testing.T) {
	i18n.Init("en")
	m := newProfileModel(api.NewMockClient(nil, api.MockClientOverwrites{}))

	if err := m.validate(); err == nil {
		t.Fatalf("expected error for empty fields")
	}

	m.inputs[0].SetValue("old-secret")
	m.inputs[1].SetValue("new-secret")
	m.inputs[2].SetValue("other-secret")
	if err := m.validate(); err == nil || err.Error() != i18n.T("profile.mismatch") {
		t.Fatalf("expected mismatch error, got %v", err)
	}

	m.inputs[2].SetValue("new-secret")
	if err := m.validate(); err != nil {
		t.Fatalf("expected matching passwords to pass, got %v", err)
	}
}

func TestProfile_SubmitCallsClientAndResets(t *testing.T) {
	i18n.Init("en")
	var gotOld, gotNew string
	mock := api.NewMockClient(nil, api.MockClientOverwrites{
		ChangePassword: func(ctx context.Context, oldPassword, newPassword string) error {
			gotOld, gotNew = oldPassword, newPassword
			return nil
		},
	})
	m := newProfileModel(mock)
	m.inputs[0].SetValue("old-secret")
	m.inputs[1].SetValue("new-secret")
	m.inputs[2].SetValue("new-secret")
	m.focusIndex = len(m.inputs)

	mi, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m1 := mi.(*profileModel)
	if !m1.submitting {
		t.Fatalf("expected submitting flag set")
	}
	if cmd == nil {
		t.Fatalf("expected change-password command")
	}

	msg := cmd()
	if gotOld != "old-secret" || gotNew != "new-secret" {
		t.Fatalf("unexpected ChangePassword args %q %q", gotOld, gotNew)
	}

	mi, _ = m1.Update(msg)
	m2 := mi.(*profileModel)
	if !m2.changed || m2.submitting {
		t.Fatalf("expected changed state after success")
	}
	if m2.inputs[0].Value() != "" {
		t.Fatalf("expected inputs cleared after success")
	}
	if !strings.Contains(m2.View(), i18n.T("profile.changed")) {
		t.Fatalf("expected success notice in view")
	}
}

func TestProfile_ServerErrorIsShown(t *testing.T) {
	i18n.Init("en")
	mock := api.NewMockClient(nil, api.MockClientOverwrites{
		ChangePassword: func(ctx context.Context, oldPassword, newPassword string) error {
			return &api.Error{Status: 400, Message: "wrong password"}
		},
	})
	m := newProfileModel(mock)
	m.inputs[0].SetValue("bad")
	m.inputs[1].SetValue("new-secret")
	m.inputs[2].SetValue("new-secret")
	m.focusIndex = len(m.inputs)

	mi, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m1 := mi.(*profileModel)
	mi, _ = m1.Update(cmd())
	m2 := mi.(*profileModel)
	if m2.err == nil || m2.changed {
		t.Fatalf("expected surfaced error, got err=%v changed=%v", m2.err, m2.changed)
	}
	if !strings.Contains(m2.View(), "wrong password") {
		t.Fatalf("expected server message in view")
	}
}
