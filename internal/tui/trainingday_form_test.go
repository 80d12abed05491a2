package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

func TestTrainingDayForm_Validate(t *testing.T) {
	i18n.Init("en")
	m := newTrainingDayFormModel(api.NewMockClient(nil, api.MockClientOverwrites{}), nil)

	if err := m.validate(); err == nil {
		t.Fatalf("expected error for empty date")
	}

	m.dateInput.SetValue("15/03/2024")
	if err := m.validate(); err == nil {
		t.Fatalf("expected error for malformed date")
	}

	m.dateInput.SetValue("2024-03-15")
	if err := m.validate(); err != nil {
		t.Fatalf("expected valid date to pass, got %v", err)
	}
}

func TestTrainingDayForm_TypeChoiceCycles(t *testing.T) {
	i18n.Init("en")
	m := newTrainingDayFormModel(api.NewMockClient(nil, api.MockClientOverwrites{}), nil)
	m.focusIndex = trainingDayFocusType

	mi, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m1 := mi.(trainingDayFormModel)
	if trainingDayTypes[m1.typeIdx] != model.DayOfficialHoliday {
		t.Fatalf("expected second day type after right, got %s", trainingDayTypes[m1.typeIdx])
	}

	mi, _ = m1.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m2 := mi.(trainingDayFormModel)
	if trainingDayTypes[m2.typeIdx] != model.DayStudy {
		t.Fatalf("expected first day type after left, got %s", trainingDayTypes[m2.typeIdx])
	}
}

func TestTrainingDayForm_DateConflictRendersUnderInput(t *testing.T) {
	i18n.Init("en")
	m := newTrainingDayFormModel(api.NewMockClient(nil, api.MockClientOverwrites{}), nil)
	m.dateInput.SetValue("2024-03-15")

	conflict := &api.Error{
		Status: 400,
		Fields: map[string][]string{"date": {"date already registered"}},
	}
	m.applyError(conflict)

	if m.fieldErrs["date"] != "date already registered" {
		t.Fatalf("expected field error carried over, got %#v", m.fieldErrs)
	}
	if !strings.Contains(m.View(), "date already registered") {
		t.Fatalf("expected conflict message in view")
	}
}

func TestTrainingDayForm_EditPrefills(t *testing.T) {
	i18n.Init("en")
	day := model.TrainingDay{ID: 4, Date: "2024-03-15", DayType: model.DayTraining}
	m := newTrainingDayFormModel(api.NewMockClient(nil, api.MockClientOverwrites{}), &day)

	if m.dateInput.Value() != "2024-03-15" {
		t.Fatalf("expected prefilled date, got %q", m.dateInput.Value())
	}
	if trainingDayTypes[m.typeIdx] != model.DayTraining {
		t.Fatalf("expected prefilled type, got %s", trainingDayTypes[m.typeIdx])
	}
}
