package tui

import (
	"testing"

	"github.com/nchrd/console/internal/api"
	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

func evalTestForm() evaluationFormModel {
	students := []model.Student{{ID: 1, Name: "Sara", Company: 2}}
	companies := []model.Company{{ID: 2, Name: "Acme"}}
	return newEvaluationFormModel(api.NewMockClient(nil, api.MockClientOverwrites{}), students, companies)
}

func fillRatings(m *evaluationFormModel, value string) {
	for i := range ratingKeys {
		m.inputs[i].SetValue(value)
	}
}

func TestEvaluationForm_RatingsMustBeInRange(t *testing.T) {
	i18n.Init("en")
	m := evalTestForm()

	fillRatings(&m, "6")
	if err := m.validate(); err == nil {
		t.Fatalf("expected error for rating above 5")
	}

	fillRatings(&m, "0")
	if err := m.validate(); err == nil {
		t.Fatalf("expected error for rating below 1")
	}

	fillRatings(&m, "x")
	if err := m.validate(); err == nil {
		t.Fatalf("expected error for non-numeric rating")
	}

	fillRatings(&m, "4")
	if err := m.validate(); err != nil {
		t.Fatalf("expected valid ratings to pass, got %v", err)
	}
}

func TestEvaluationForm_RepeatDateRequiredWhenNotCompetent(t *testing.T) {
	i18n.Init("en")
	m := evalTestForm()
	fillRatings(&m, "2")
	m.resultIdx = 1 // not competent

	if err := m.validate(); err == nil {
		t.Fatalf("expected error for missing repeat date")
	}

	m.inputs[7].SetValue("15-03-2024")
	if err := m.validate(); err == nil {
		t.Fatalf("expected error for malformed repeat date")
	}

	m.inputs[7].SetValue("2024-03-15")
	if err := m.validate(); err != nil {
		t.Fatalf("expected valid repeat date to pass, got %v", err)
	}
}

func TestEvaluationForm_DraftLocksCompanyToStudent(t *testing.T) {
	i18n.Init("en")
	m := evalTestForm()
	fillRatings(&m, "5")
	m.inputs[6].SetValue("solid month")

	d := m.draft()
	if d.Student != 1 || d.Company != 2 {
		t.Fatalf("expected company derived from student, got %#v", d)
	}
	if d.Punctuality != 5 || d.Teamwork != 5 {
		t.Fatalf("expected ratings carried into draft, got %#v", d)
	}
	if d.Result != model.ResultCompetent || d.RepeatDate != "" {
		t.Fatalf("expected competent draft without repeat date, got %#v", d)
	}

	m.resultIdx = 1
	m.inputs[7].SetValue("2024-03-15")
	d = m.draft()
	if d.Result != model.ResultNotCompetent || d.RepeatDate != "2024-03-15" {
		t.Fatalf("expected repeat date on not-competent draft, got %#v", d)
	}
}

func TestEvaluationForm_SelectedCompanyLookup(t *testing.T) {
	i18n.Init("en")
	m := evalTestForm()

	company, ok := m.selectedCompany()
	if !ok || company.Name != "Acme" {
		t.Fatalf("expected locked company Acme, got %#v ok=%v", company, ok)
	}

	// A student without a company yields no locked row.
	m.students[0].Company = 0
	if _, ok := m.selectedCompany(); ok {
		t.Fatalf("expected no company for unassigned student")
	}
}
