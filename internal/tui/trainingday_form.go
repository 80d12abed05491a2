package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

var trainingDayTypes = []string{model.DayStudy, model.DayOfficialHoliday, model.DayTraining, model.DayClosed}

const (
	trainingDayFocusType   = 1
	trainingDayFocusSubmit = 2
)

type trainingDayFormModel struct {
	client     api.Client
	editing    *model.TrainingDay
	dateInput  textinput.Model
	typeIdx    int
	focusIndex int
	submitting bool
	err        error
	fieldErrs  map[string]string
}

func newTrainingDayFormModel(c api.Client, toEdit *model.TrainingDay) trainingDayFormModel {
	m := trainingDayFormModel{client: c}

	t := textinput.New()
	t.Cursor.Style = focusedStyle
	t.Prompt = i18n.T("training_days.col.date") + ": "
	t.Placeholder = "YYYY-MM-DD"
	t.CharLimit = 10
	t.Width = 20
	m.dateInput = t

	if toEdit != nil {
		m.editing = toEdit
		m.dateInput.SetValue(toEdit.Date)
		for i, dt := range trainingDayTypes {
			if dt == toEdit.DayType {
				m.typeIdx = i
			}
		}
	}

	m.dateInput.Focus()
	m.dateInput.TextStyle = focusedStyle
	return m
}

func (m trainingDayFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *trainingDayFormModel) applyError(err error) {
	m.submitting = false
	m.err = err
	m.fieldErrs = fieldErrors(err)
}

func saveTrainingDayCmd(c api.Client, editing *model.TrainingDay, draft api.TrainingDayDraft) tea.Cmd {
	return func() tea.Msg {
		if editing != nil {
			out, err := c.UpdateTrainingDay(context.Background(), editing.ID, draft)
			return trainingDaySavedMsg{day: out, err: err}
		}
		out, err := c.CreateTrainingDay(context.Background(), draft)
		return trainingDaySavedMsg{day: out, isNew: true, err: err}
	}
}

func (m trainingDayFormModel) validate() error {
	date := strings.TrimSpace(m.dateInput.Value())
	if date == "" {
		return errRequired(i18n.T("training_days.col.date"))
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return errDateFormat()
	}
	return nil
}

func (m trainingDayFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToListMsg{} }

		case "left", "right":
			if m.focusIndex == trainingDayFocusType {
				if msg.String() == "left" {
					m.typeIdx = (m.typeIdx + len(trainingDayTypes) - 1) % len(trainingDayTypes)
				} else {
					m.typeIdx = (m.typeIdx + 1) % len(trainingDayTypes)
				}
				return m, nil
			}

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == trainingDayFocusSubmit {
				if err := m.validate(); err != nil {
					m.err = err
					m.fieldErrs = nil
					return m, nil
				}
				m.err = nil
				m.fieldErrs = nil
				m.submitting = true
				draft := api.TrainingDayDraft{
					Date:    strings.TrimSpace(m.dateInput.Value()),
					DayType: trainingDayTypes[m.typeIdx],
				}
				return m, saveTrainingDayCmd(m.client, m.editing, draft)
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > trainingDayFocusSubmit {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = trainingDayFocusSubmit
			}

			if m.focusIndex == 0 {
				m.dateInput.TextStyle = focusedStyle
				return m, m.dateInput.Focus()
			}
			m.dateInput.Blur()
			m.dateInput.TextStyle = lipgloss.NewStyle()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

func (m trainingDayFormModel) View() string {
	var viewItems []string

	if m.editing != nil {
		viewItems = append(viewItems, titleStyle.Render("✏️ "+i18n.T("training_days.form.edit")))
	} else {
		viewItems = append(viewItems, titleStyle.Render("✨ "+i18n.T("training_days.form.add")))
	}
	viewItems = append(viewItems, "")

	viewItems = append(viewItems, m.dateInput.View())
	// The date-conflict answer from the backend lands here.
	if msg, ok := m.fieldErrs["date"]; ok {
		viewItems = append(viewItems, errorStyle.Render("  "+msg))
	}

	typeLabels := map[string]string{
		model.DayStudy:           i18n.T("training_days.type.study"),
		model.DayOfficialHoliday: i18n.T("training_days.type.official_holiday"),
		model.DayTraining:        i18n.T("training_days.type.training"),
		model.DayClosed:          i18n.T("training_days.type.closed"),
	}
	viewItems = append(viewItems, choiceRow(i18n.T("training_days.col.day_type"), typeLabels[trainingDayTypes[m.typeIdx]], m.focusIndex == trainingDayFocusType))

	button := formItemStyle.Render("[ " + i18n.T("form.save") + " ]")
	if m.focusIndex == trainingDayFocusSubmit {
		button = formSelectedItemStyle.Render("[ " + i18n.T("form.save") + " ]")
	}
	viewItems = append(viewItems, "", button)

	if m.submitting {
		viewItems = append(viewItems, "", helpStyle.Render(i18n.T("form.saving")))
	}
	if m.err != nil && m.fieldErrs == nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	}

	viewItems = append(viewItems, "", helpStyle.Render("(tab to navigate, left/right to choose, enter to submit, esc to cancel)"))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
