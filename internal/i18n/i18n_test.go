package i18n

import "testing"

func TestT_TranslatesKnownID(t *testing.T) {
	Init("en")
	if got := T("menu.students"); got != "Students" {
		t.Fatalf("T(menu.students) = %q", got)
	}
}

func TestT_FormatsArgs(t *testing.T) {
	Init("en")
	if got := T("form.required", "Name"); got != "Name is required" {
		t.Fatalf("T(form.required) = %q", got)
	}
}

func TestT_FallsBackToID(t *testing.T) {
	Init("en")
	if got := T("no.such.key"); got != "no.such.key" {
		t.Fatalf("T(no.such.key) = %q", got)
	}
}

func TestSetLang_Arabic(t *testing.T) {
	SetLang("ar")
	defer SetLang("en")
	if got := T("menu.students"); got != "الطلاب" {
		t.Fatalf("T(menu.students) = %q", got)
	}
}
