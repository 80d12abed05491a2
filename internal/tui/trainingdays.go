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

type trainingDaysLoadedMsg struct {
	days []model.TrainingDay
	err  error
}

type trainingDaySavedMsg struct {
	day   model.TrainingDay
	isNew bool
	err   error
}

type trainingDayDeletedMsg struct {
	err error
}

type trainingDaysViewState int

const (
	trainingDaysListView trainingDaysViewState = iota
	trainingDaysFormView
)

// trainingDaysModel is the model for the training calendar view. The
// backend allows one entry per calendar date; a conflicting date comes back
// as a validation error on the date field.
type trainingDaysModel struct {
	state              trainingDaysViewState
	client             api.Client
	form               trainingDayFormModel
	days               []model.TrainingDay
	cursor             int
	status             string
	err                error
	loading            bool
	isConfirmingDelete bool
	dayToDelete        model.TrainingDay
	confirmCursor      int
	width, height      int
}

func newTrainingDaysModel(c api.Client) *trainingDaysModel {
	return &trainingDaysModel{client: c, loading: true}
}

func (m *trainingDaysModel) Init() tea.Cmd {
	return loadTrainingDaysCmd(m.client)
}

func loadTrainingDaysCmd(c api.Client) tea.Cmd {
	return func() tea.Msg {
		days, err := c.ListTrainingDays(context.Background())
		return trainingDaysLoadedMsg{days: days, err: err}
	}
}

func deleteTrainingDayCmd(c api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		return trainingDayDeletedMsg{err: c.DeleteTrainingDay(context.Background(), id)}
	}
}

var trainingDayColumns = []column{
	{field: "date", title: "training_days.col.date", width: 12},
	{field: "day_type", title: "training_days.col.day_type", width: 18,
		lookup: map[string]string{
			model.DayStudy:           "training_days.type.study",
			model.DayOfficialHoliday: "training_days.type.official_holiday",
			model.DayTraining:        "training_days.type.training",
			model.DayClosed:          "training_days.type.closed",
		},
		tones: map[string]badgeTone{
			model.DayStudy:           toneNeutral,
			model.DayOfficialHoliday: toneSpecial,
			model.DayTraining:        toneSuccess,
			model.DayClosed:          toneSubtle,
		}},
}

func (m *trainingDaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	if m.state == trainingDaysFormView {
		if saved, ok := msg.(trainingDaySavedMsg); ok {
			if saved.err != nil {
				if c := expiredCmd(saved.err); c != nil {
					return m, c
				}
				m.form.applyError(saved.err)
				return m, nil
			}
			m.state = trainingDaysListView
			m.status = i18n.T("form.saved")
			m.loading = true
			return m, loadTrainingDaysCmd(m.client)
		}
		if _, ok := msg.(backToListMsg); ok {
			m.state = trainingDaysListView
			m.status = ""
			return m, nil
		}

		var newForm tea.Model
		newForm, cmd = m.form.Update(msg)
		m.form = newForm.(trainingDayFormModel)
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
				return m, deleteTrainingDayCmd(m.client, m.dayToDelete.ID)
			case "left", "right", "tab":
				m.confirmCursor = (m.confirmCursor + 1) % 2
				return m, nil
			case "enter":
				m.isConfirmingDelete = false
				if m.confirmCursor == 1 {
					return m, deleteTrainingDayCmd(m.client, m.dayToDelete.ID)
				}
				return m, nil
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case trainingDaysLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if c := expiredCmd(msg.err); c != nil {
				return m, c
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.days = msg.days
		m.cursor = clampCursor(m.cursor, len(m.days))
		return m, nil
	case trainingDayDeletedMsg:
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
		return m, loadTrainingDaysCmd(m.client)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.days)-1 {
				m.cursor++
			}
		case "r":
			m.status = ""
			m.loading = true
			return m, loadTrainingDaysCmd(m.client)
		case "a":
			m.state = trainingDaysFormView
			m.form = newTrainingDayFormModel(m.client, nil)
			m.status = ""
			return m, m.form.Init()
		case "e":
			if len(m.days) > 0 {
				toEdit := m.days[m.cursor]
				m.state = trainingDaysFormView
				m.form = newTrainingDayFormModel(m.client, &toEdit)
				m.status = ""
				return m, m.form.Init()
			}
		case "d", "delete":
			if len(m.days) > 0 {
				m.dayToDelete = m.days[m.cursor]
				m.isConfirmingDelete = true
				m.confirmCursor = 0
			}
			return m, nil
		}
	}

	return m, cmd
}

func (m *trainingDaysModel) viewConfirmation() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("training_days.title")))
	b.WriteString("\n\n")
	b.WriteString(i18n.T("list.confirm_delete", i18n.T("training_days.singular")+" "+m.dayToDelete.Date))
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

func (m *trainingDaysModel) View() string {
	if m.state == trainingDaysFormView {
		return m.form.View()
	}
	if m.isConfirmingDelete {
		return m.viewConfirmation()
	}

	var viewItems []string
	viewItems = append(viewItems, mainTitleStyle.Render("📅 "+i18n.T("training_days.title")))

	if m.loading {
		viewItems = append(viewItems, helpStyle.Render(i18n.T("list.loading")))
	} else {
		viewItems = append(viewItems, renderTable(trainingDayColumns, records(m.days), m.cursor))
	}

	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	} else if m.status != "" {
		viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("list.hint")))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
