// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

// evaluationsLoadedMsg carries the evaluation list plus the students and
// companies needed for name lookups and the form.
type evaluationsLoadedMsg struct {
	evaluations []model.Evaluation
	students    []model.Student
	companies   []model.Company
	err         error
}

type evaluationSavedMsg struct {
	evaluation model.Evaluation
	err        error
}

type evaluationDeletedMsg struct {
	err error
}

type evaluationsViewState int

const (
	evaluationsListView evaluationsViewState = iota
	evaluationsFormView
)

// evaluationsModel is the model for the evaluation view. Evaluations are
// created and deleted but never edited; a correction is a new evaluation.
type evaluationsModel struct {
	state              evaluationsViewState
	client             api.Client
	form               evaluationFormModel
	evaluations        []model.Evaluation
	students           []model.Student
	companies          []model.Company
	cursor             int
	status             string
	err                error
	loading            bool
	isConfirmingDelete bool
	evaluationToDelete model.Evaluation
	confirmCursor      int
	width, height      int
}

func newEvaluationsModel(c api.Client) *evaluationsModel {
	return &evaluationsModel{client: c, loading: true}
}

func (m *evaluationsModel) Init() tea.Cmd {
	return loadEvaluationsCmd(m.client)
}

func loadEvaluationsCmd(c api.Client) tea.Cmd {
	return func() tea.Msg {
		evals, err := c.ListEvaluations(context.Background())
		if err != nil {
			return evaluationsLoadedMsg{err: err}
		}
		students, err := c.ListStudents(context.Background())
		if err != nil {
			return evaluationsLoadedMsg{err: err}
		}
		companies, err := c.ListCompanies(context.Background())
		if err != nil {
			return evaluationsLoadedMsg{err: err}
		}
		return evaluationsLoadedMsg{evaluations: evals, students: students, companies: companies}
	}
}

func deleteEvaluationCmd(c api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		return evaluationDeletedMsg{err: c.DeleteEvaluation(context.Background(), id)}
	}
}

func (m *evaluationsModel) columns() []column {
	studentNames := make(map[string]string, len(m.students))
	for _, s := range m.students {
		studentNames[strconv.Itoa(s.ID)] = s.Name
	}
	return []column{
		{field: "student", title: "evaluations.col.student", width: 24, lookup: studentNames},
		{field: "company", title: "evaluations.col.company", width: 20, lookup: companyNames(m.companies)},
		{field: "result", title: "evaluations.col.result", width: 14,
			lookup: map[string]string{
				model.ResultCompetent:    "evaluations.result.competent",
				model.ResultNotCompetent: "evaluations.result.not_competent",
			},
			tones: map[string]badgeTone{
				model.ResultCompetent:    toneSuccess,
				model.ResultNotCompetent: toneError,
			}},
		{field: "date", title: "evaluations.col.date", width: 12},
	}
}

func (m *evaluationsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	if m.state == evaluationsFormView {
		if saved, ok := msg.(evaluationSavedMsg); ok {
			if saved.err != nil {
				if c := expiredCmd(saved.err); c != nil {
					return m, c
				}
				m.form.applyError(saved.err)
				return m, nil
			}
			m.state = evaluationsListView
			m.status = i18n.T("form.saved")
			m.loading = true
			return m, loadEvaluationsCmd(m.client)
		}
		if _, ok := msg.(backToListMsg); ok {
			m.state = evaluationsListView
			m.status = ""
			return m, nil
		}

		var newForm tea.Model
		newForm, cmd = m.form.Update(msg)
		m.form = newForm.(evaluationFormModel)
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
				return m, deleteEvaluationCmd(m.client, m.evaluationToDelete.ID)
			case "left", "right", "tab":
				m.confirmCursor = (m.confirmCursor + 1) % 2
				return m, nil
			case "enter":
				m.isConfirmingDelete = false
				if m.confirmCursor == 1 {
					return m, deleteEvaluationCmd(m.client, m.evaluationToDelete.ID)
				}
				return m, nil
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case evaluationsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if c := expiredCmd(msg.err); c != nil {
				return m, c
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.evaluations = msg.evaluations
		m.students = msg.students
		m.companies = msg.companies
		m.cursor = clampCursor(m.cursor, len(m.evaluations))
		return m, nil
	case evaluationDeletedMsg:
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
		return m, loadEvaluationsCmd(m.client)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.evaluations)-1 {
				m.cursor++
			}
		case "r":
			m.status = ""
			m.loading = true
			return m, loadEvaluationsCmd(m.client)
		case "a":
			m.state = evaluationsFormView
			m.form = newEvaluationFormModel(m.client, m.students, m.companies)
			m.status = ""
			return m, m.form.Init()
		case "d", "delete":
			if len(m.evaluations) > 0 {
				m.evaluationToDelete = m.evaluations[m.cursor]
				m.isConfirmingDelete = true
				m.confirmCursor = 0
			}
			return m, nil
		}
	}

	return m, cmd
}

func (m *evaluationsModel) viewConfirmation() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("evaluations.title")))
	b.WriteString("\n\n")
	b.WriteString(i18n.T("list.confirm_delete", i18n.T("evaluations.singular")+" #"+strconv.Itoa(m.evaluationToDelete.ID)))
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

func (m *evaluationsModel) View() string {
	if m.state == evaluationsFormView {
		return m.form.View()
	}
	if m.isConfirmingDelete {
		return m.viewConfirmation()
	}

	var viewItems []string
	viewItems = append(viewItems, mainTitleStyle.Render("📋 "+i18n.T("evaluations.title")))

	if m.loading {
		viewItems = append(viewItems, helpStyle.Render(i18n.T("list.loading")))
	} else {
		viewItems = append(viewItems, renderTable(m.columns(), records(m.evaluations), m.cursor))
	}

	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	} else if m.status != "" {
		viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("list.hint_no_edit")))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
