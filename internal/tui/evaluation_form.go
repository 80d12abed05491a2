// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

// Focus positions for the evaluation form. The six rating inputs and the
// notes input sit between the student choice and the result choice.
const (
	evalFocusStudent    = 0
	evalFocusResult     = 8
	evalFocusRepeatDate = 9
	evalFocusSubmit     = 10
)

// evaluationFormModel is the create form for evaluations. Picking a student
// fills in its company, which stays locked: an evaluation always belongs to
// the company the student trains at.
type evaluationFormModel struct {
	client     api.Client
	studentIdx int // index into students; -1 when none selected yet
	students   []model.Student
	companies  []model.Company
	resultIdx  int               // 0: competent, 1: not competent
	inputs     []textinput.Model // 0-5: ratings, 6: notes, 7: repeat date
	focusIndex int
	submitting bool
	err        error
	fieldErrs  map[string]string
}

var evaluationResults = []string{model.ResultCompetent, model.ResultNotCompetent}

// ratingKeys pairs input positions with their message IDs and API fields.
var ratingKeys = []struct {
	messageID string
	field     string
}{
	{"evaluations.form.punctuality", "punctuality"},
	{"evaluations.form.behavior", "behavior"},
	{"evaluations.form.practical_skills", "practical_skills"},
	{"evaluations.form.learning_level", "learning_level"},
	{"evaluations.form.performance_quality", "performance_quality"},
	{"evaluations.form.teamwork", "teamwork"},
}

func newEvaluationFormModel(c api.Client, students []model.Student, companies []model.Company) evaluationFormModel {
	m := evaluationFormModel{
		client:     c,
		students:   students,
		companies:  companies,
		studentIdx: -1,
		inputs:     make([]textinput.Model, 8),
	}
	if len(students) > 0 {
		m.studentIdx = 0
	}

	var t textinput.Model
	for i := range m.inputs {
		t = textinput.New()
		t.Cursor.Style = focusedStyle
		t.Width = 40

		switch {
		case i < len(ratingKeys):
			t.Prompt = i18n.T(ratingKeys[i].messageID) + ": "
			t.Placeholder = "1-5"
			t.CharLimit = 1
		case i == 6:
			t.Prompt = i18n.T("evaluations.form.notes") + ": "
			t.CharLimit = 255
		case i == 7:
			t.Prompt = i18n.T("evaluations.form.repeat_date") + ": "
			t.Placeholder = "YYYY-MM-DD"
			t.CharLimit = 10
		}
		m.inputs[i] = t
	}

	return m
}

func (m evaluationFormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *evaluationFormModel) applyError(err error) {
	m.submitting = false
	m.err = err
	m.fieldErrs = fieldErrors(err)
}

// selectedCompany resolves the locked company from the selected student.
func (m evaluationFormModel) selectedCompany() (model.Company, bool) {
	if m.studentIdx < 0 {
		return model.Company{}, false
	}
	student := m.students[m.studentIdx]
	for _, c := range m.companies {
		if c.ID == student.Company {
			return c, true
		}
	}
	return model.Company{}, false
}

func saveEvaluationCmd(c api.Client, draft api.EvaluationDraft) tea.Cmd {
	return func() tea.Msg {
		out, err := c.CreateEvaluation(context.Background(), draft)
		return evaluationSavedMsg{evaluation: out, err: err}
	}
}

func (m evaluationFormModel) validate() error {
	if m.studentIdx < 0 {
		return errRequired(i18n.T("evaluations.col.student"))
	}
	for i, key := range ratingKeys {
		v, err := strconv.Atoi(strings.TrimSpace(m.inputs[i].Value()))
		if err != nil || v < 1 || v > 5 {
			return errRatingRange(i18n.T(key.messageID))
		}
	}
	if evaluationResults[m.resultIdx] == model.ResultNotCompetent {
		repeat := strings.TrimSpace(m.inputs[7].Value())
		if repeat == "" {
			return errRepeatRequired()
		}
		if _, err := time.Parse("2006-01-02", repeat); err != nil {
			return errDateFormat()
		}
	}
	return nil
}

func (m evaluationFormModel) draft() api.EvaluationDraft {
	student := m.students[m.studentIdx]
	d := api.EvaluationDraft{
		Student: student.ID,
		Company: student.Company,
		Notes:   strings.TrimSpace(m.inputs[6].Value()),
		Result:  evaluationResults[m.resultIdx],
	}
	ratings := []*int{&d.Punctuality, &d.Behavior, &d.PracticalSkills, &d.LearningLevel, &d.PerformanceQuality, &d.Teamwork}
	for i, target := range ratings {
		*target, _ = strconv.Atoi(strings.TrimSpace(m.inputs[i].Value()))
	}
	if d.Result == model.ResultNotCompetent {
		d.RepeatDate = strings.TrimSpace(m.inputs[7].Value())
	}
	return d
}

// inputIndexFor maps a focus position to its text input, or -1 for the
// choice rows and the submit button.
func inputIndexFor(focus int) int {
	switch {
	case focus >= 1 && focus <= 7:
		return focus - 1
	case focus == evalFocusRepeatDate:
		return 7
	}
	return -1
}

func (m evaluationFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return backToListMsg{} }

		case "left", "right":
			switch m.focusIndex {
			case evalFocusStudent:
				if len(m.students) == 0 {
					return m, nil
				}
				if msg.String() == "left" {
					m.studentIdx = (m.studentIdx + len(m.students) - 1) % len(m.students)
				} else {
					m.studentIdx = (m.studentIdx + 1) % len(m.students)
				}
				return m, nil
			case evalFocusResult:
				m.resultIdx = (m.resultIdx + 1) % 2
				return m, nil
			}

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == evalFocusSubmit {
				if err := m.validate(); err != nil {
					m.err = err
					m.fieldErrs = nil
					return m, nil
				}
				m.err = nil
				m.fieldErrs = nil
				m.submitting = true
				return m, saveEvaluationCmd(m.client, m.draft())
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}
			if m.focusIndex > evalFocusSubmit {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = evalFocusSubmit
			}

			focusedInput := inputIndexFor(m.focusIndex)
			cmds := make([]tea.Cmd, len(m.inputs))
			for i := range m.inputs {
				if i == focusedInput {
					cmds[i] = m.inputs[i].Focus()
					m.inputs[i].TextStyle = focusedStyle
					continue
				}
				m.inputs[i].Blur()
				m.inputs[i].TextStyle = lipgloss.NewStyle()
			}
			return m, tea.Batch(cmds...)
		}
	}

	cmd := m.updateInputs(msg)
	return m, cmd
}

func (m *evaluationFormModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m evaluationFormModel) studentLabel() string {
	if m.studentIdx < 0 {
		return cellPlaceholder
	}
	return m.students[m.studentIdx].Name
}

func (m evaluationFormModel) View() string {
	var viewItems []string

	viewItems = append(viewItems, titleStyle.Render("✨ "+i18n.T("evaluations.form.add")))
	viewItems = append(viewItems, "")

	viewItems = append(viewItems, choiceRow(i18n.T("evaluations.col.student"), m.studentLabel(), m.focusIndex == evalFocusStudent))

	// The company is derived from the student and cannot be changed.
	companyLabel := cellPlaceholder
	if c, ok := m.selectedCompany(); ok {
		companyLabel = c.Name
	}
	viewItems = append(viewItems, disabledStyle.Render(i18n.T("evaluations.col.company")+": "+companyLabel))

	for i := range m.inputs[:7] {
		viewItems = append(viewItems, m.inputs[i].View())
		if i < len(ratingKeys) {
			if msg, ok := m.fieldErrs[ratingKeys[i].field]; ok {
				viewItems = append(viewItems, errorStyle.Render("  "+msg))
			}
		}
	}

	resultLabels := map[string]string{
		model.ResultCompetent:    i18n.T("evaluations.result.competent"),
		model.ResultNotCompetent: i18n.T("evaluations.result.not_competent"),
	}
	viewItems = append(viewItems, choiceRow(i18n.T("evaluations.form.result"), resultLabels[evaluationResults[m.resultIdx]], m.focusIndex == evalFocusResult))

	if evaluationResults[m.resultIdx] == model.ResultNotCompetent {
		viewItems = append(viewItems, m.inputs[7].View())
		if msg, ok := m.fieldErrs["repeat_date"]; ok {
			viewItems = append(viewItems, errorStyle.Render("  "+msg))
		}
	}

	button := formItemStyle.Render("[ " + i18n.T("form.save") + " ]")
	if m.focusIndex == evalFocusSubmit {
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
