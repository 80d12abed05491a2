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

type companiesLoadedMsg struct {
	companies []model.Company
	err       error
}

type companySavedMsg struct {
	company model.Company
	isNew   bool
	err     error
}

type companyDeletedMsg struct {
	err error
}

type companiesViewState int

const (
	companiesListView companiesViewState = iota
	companiesFormView
)

// companiesModel is the model for the company management view.
type companiesModel struct {
	state              companiesViewState
	client             api.Client
	form               companyFormModel
	companies          []model.Company
	cursor             int
	status             string
	err                error
	loading            bool
	isConfirmingDelete bool
	companyToDelete    model.Company
	confirmCursor      int // 0 for No, 1 for Yes
	width, height      int
}

func newCompaniesModel(c api.Client) *companiesModel {
	return &companiesModel{client: c, loading: true}
}

func (m *companiesModel) Init() tea.Cmd {
	return loadCompaniesCmd(m.client)
}

func loadCompaniesCmd(c api.Client) tea.Cmd {
	return func() tea.Msg {
		companies, err := c.ListCompanies(context.Background())
		return companiesLoadedMsg{companies: companies, err: err}
	}
}

func deleteCompanyCmd(c api.Client, id int) tea.Cmd {
	return func() tea.Msg {
		return companyDeletedMsg{err: c.DeleteCompany(context.Background(), id)}
	}
}

var companyColumns = []column{
	{field: "name", title: "companies.col.name", width: 24},
	{field: "address", title: "companies.col.address", width: 24},
	{field: "phone", title: "companies.col.phone", width: 12},
	{field: "supervisor_name", title: "companies.col.supervisor", width: 18},
	{field: "student_count", title: "companies.col.students", width: 8},
}

func (m *companiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if sizeMsg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sizeMsg.Width
		m.height = sizeMsg.Height
	}

	if m.state == companiesFormView {
		if saved, ok := msg.(companySavedMsg); ok {
			if saved.err != nil {
				if c := expiredCmd(saved.err); c != nil {
					return m, c
				}
				m.form.applyError(saved.err)
				return m, nil
			}
			m.state = companiesListView
			m.status = i18n.T("form.saved")
			m.loading = true
			return m, loadCompaniesCmd(m.client)
		}
		if _, ok := msg.(backToListMsg); ok {
			m.state = companiesListView
			m.status = ""
			return m, nil
		}

		var newForm tea.Model
		newForm, cmd = m.form.Update(msg)
		m.form = newForm.(companyFormModel)
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
				return m, deleteCompanyCmd(m.client, m.companyToDelete.ID)
			case "left", "right", "tab":
				m.confirmCursor = (m.confirmCursor + 1) % 2
				return m, nil
			case "enter":
				m.isConfirmingDelete = false
				if m.confirmCursor == 1 {
					return m, deleteCompanyCmd(m.client, m.companyToDelete.ID)
				}
				return m, nil
			}
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case companiesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if c := expiredCmd(msg.err); c != nil {
				return m, c
			}
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.companies = msg.companies
		m.cursor = clampCursor(m.cursor, len(m.companies))
		return m, nil
	case companyDeletedMsg:
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
		return m, loadCompaniesCmd(m.client)

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return backToMenuMsg{} }
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.companies)-1 {
				m.cursor++
			}
		case "r":
			m.status = ""
			m.loading = true
			return m, loadCompaniesCmd(m.client)
		case "a":
			m.state = companiesFormView
			m.form = newCompanyFormModel(m.client, nil)
			m.status = ""
			return m, m.form.Init()
		case "e":
			if len(m.companies) > 0 {
				toEdit := m.companies[m.cursor]
				m.state = companiesFormView
				m.form = newCompanyFormModel(m.client, &toEdit)
				m.status = ""
				return m, m.form.Init()
			}
		case "d", "delete":
			if len(m.companies) > 0 {
				m.companyToDelete = m.companies[m.cursor]
				m.isConfirmingDelete = true
				m.confirmCursor = 0
			}
			return m, nil
		}
	}

	return m, cmd
}

func (m *companiesModel) viewConfirmation() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("companies.title")))
	b.WriteString("\n\n")
	b.WriteString(i18n.T("list.confirm_delete", i18n.T("companies.singular")+" "+m.companyToDelete.Name))
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

func (m *companiesModel) View() string {
	if m.state == companiesFormView {
		return m.form.View()
	}
	if m.isConfirmingDelete {
		return m.viewConfirmation()
	}

	var viewItems []string
	viewItems = append(viewItems, mainTitleStyle.Render("🏢 "+i18n.T("companies.title")))

	if m.loading {
		viewItems = append(viewItems, helpStyle.Render(i18n.T("list.loading")))
	} else {
		viewItems = append(viewItems, renderTable(companyColumns, records(m.companies), m.cursor))
	}

	if m.err != nil {
		viewItems = append(viewItems, "", errorStyle.Render(apiErrorText(m.err)))
	} else if m.status != "" {
		viewItems = append(viewItems, "", statusMessageStyle.Render(m.status))
	}

	viewItems = append(viewItems, "", helpStyle.Render(i18n.T("list.hint")))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, viewItems...))
}
