// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

func TestStudents_Update_NavigationAndDeleteConfirm(t *testing.T) {
	i18n.Init("en")
	m := newStudentsModel(api.NewMockClient(nil, api.MockClientOverwrites{}))
	m.loading = false
	m.students = []model.Student{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}, {ID: 3, Name: "c"}}
	m.cursor = 0

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m1 := mi.(*studentsModel)
	if m1.cursor != 1 {
		t.Fatalf("expected cursor 1 after down, got %d", m1.cursor)
	}

	mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyUp})
	m2 := mi.(*studentsModel)
	if m2.cursor != 0 {
		t.Fatalf("expected cursor 0 after up, got %d", m2.cursor)
	}

	// 'd' opens the confirmation dialog with No preselected.
	mi, _ = m2.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	m3 := mi.(*studentsModel)
	if !m3.isConfirmingDelete {
		t.Fatalf("expected isConfirmingDelete true after 'd' key")
	}
	if m3.studentToDelete.ID != 1 {
		t.Fatalf("expected studentToDelete ID 1, got %d", m3.studentToDelete.ID)
	}
	if m3.confirmCursor != 0 {
		t.Fatalf("expected confirm cursor on No, got %d", m3.confirmCursor)
	}

	// Enter on No dismisses without a delete command.
	mi, cmd := m3.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m4 := mi.(*studentsModel)
	if m4.isConfirmingDelete {
		t.Fatalf("expected dialog dismissed after enter on No")
	}
	if cmd != nil {
		t.Fatalf("expected no command when declining delete")
	}
}

func TestStudents_Update_ConfirmedDeleteCallsClient(t *testing.T) {
	i18n.Init("en")
	var deletedID int
	mock := api.NewMockClient(nil, api.MockClientOverwrites{
		DeleteStudent: func(ctx context.Context, id int) error {
			deletedID = id
			return nil
		},
	})
	m := newStudentsModel(mock)
	m.loading = false
	m.students = []model.Student{{ID: 5, Name: "Sara"}}
	m.isConfirmingDelete = true
	m.studentToDelete = m.students[0]

	mi, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	m1 := mi.(*studentsModel)
	if m1.isConfirmingDelete {
		t.Fatalf("expected dialog dismissed after 'y'")
	}
	if cmd == nil {
		t.Fatalf("expected delete command after 'y'")
	}
	if msg, ok := cmd().(studentDeletedMsg); !ok || msg.err != nil {
		t.Fatalf("expected clean studentDeletedMsg, got %#v", cmd())
	}
	if deletedID != 5 {
		t.Fatalf("expected DeleteStudent(5), got %d", deletedID)
	}
}

func TestStudents_Update_AddAndEditOpenForm(t *testing.T) {
	i18n.Init("en")
	m := newStudentsModel(api.NewMockClient(nil, api.MockClientOverwrites{}))
	m.loading = false
	m.students = []model.Student{{ID: 7, Name: "Omar"}}

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'e'}})
	m1 := mi.(*studentsModel)
	if m1.state != studentsFormView {
		t.Fatalf("expected form view after 'e', got %v", m1.state)
	}
	if m1.form.editing == nil || m1.form.editing.ID != 7 {
		t.Fatalf("expected form editing student 7")
	}

	m2 := newStudentsModel(api.NewMockClient(nil, api.MockClientOverwrites{}))
	m2.loading = false
	mi2, _ := m2.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	m3 := mi2.(*studentsModel)
	if m3.state != studentsFormView {
		t.Fatalf("expected form view after 'a', got %v", m3.state)
	}
	if m3.form.editing != nil {
		t.Fatalf("expected add form without an editing target")
	}
}

func TestStudents_Update_LoadedMsgPopulatesRows(t *testing.T) {
	i18n.Init("en")
	m := newStudentsModel(api.NewMockClient(nil, api.MockClientOverwrites{}))

	mi, _ := m.Update(studentsLoadedMsg{
		students:  []model.Student{{ID: 1, Name: "Sara", Company: 2}},
		companies: []model.Company{{ID: 2, Name: "Acme"}},
	})
	m1 := mi.(*studentsModel)
	if m1.loading {
		t.Fatalf("expected loading cleared after load")
	}
	if len(m1.students) != 1 || m1.students[0].Name != "Sara" {
		t.Fatalf("expected one loaded student, got %#v", m1.students)
	}
	if len(m1.companies) != 1 {
		t.Fatalf("expected companies loaded alongside students")
	}
}

func TestStudents_Update_SavedMsgReturnsToListAndReloads(t *testing.T) {
	i18n.Init("en")
	m := newStudentsModel(api.NewMockClient(nil, api.MockClientOverwrites{
		ListStudents:  func(ctx context.Context) ([]model.Student, error) { return nil, nil },
		ListCompanies: func(ctx context.Context) ([]model.Company, error) { return nil, nil },
	}))
	m.state = studentsFormView

	mi, cmd := m.Update(studentSavedMsg{student: model.Student{ID: 1}, isNew: true})
	m1 := mi.(*studentsModel)
	if m1.state != studentsListView {
		t.Fatalf("expected list view after save, got %v", m1.state)
	}
	if m1.status != i18n.T("form.saved") {
		t.Fatalf("expected saved status, got %q", m1.status)
	}
	if cmd == nil {
		t.Fatalf("expected reload command after save")
	}
	if _, ok := cmd().(studentsLoadedMsg); !ok {
		t.Fatalf("expected reload to produce studentsLoadedMsg")
	}
}

func TestStudents_Update_ExpiredSessionBubblesUp(t *testing.T) {
	i18n.Init("en")
	m := newStudentsModel(api.NewMockClient(nil, api.MockClientOverwrites{}))

	mi, cmd := m.Update(studentsLoadedMsg{err: errors.Join(api.ErrUnauthorized)})
	_ = mi.(*studentsModel)
	if cmd == nil {
		t.Fatalf("expected session expiry command")
	}
	if _, ok := cmd().(sessionExpiredMsg); !ok {
		t.Fatalf("expected sessionExpiredMsg, got %#v", cmd())
	}
}
