// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"
	"testing"

	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

func TestColumn_CellText_LookupAndPlaceholder(t *testing.T) {
	i18n.Init("en")

	col := column{field: "status", title: "students.col.status", width: 10,
		lookup: map[string]string{model.StudentActive: "students.status.active"}}

	active := model.Student{ID: 1, Name: "Sara", Status: model.StudentActive}
	if got := col.cellText(active); got != i18n.T("students.status.active") {
		t.Fatalf("expected translated status, got %q", got)
	}

	// A raw value missing from the lookup passes through untouched.
	odd := model.Student{ID: 2, Name: "Omar", Status: "frozen"}
	if got := col.cellText(odd); got != "frozen" {
		t.Fatalf("expected raw value for unknown status, got %q", got)
	}

	// An empty field renders the placeholder dash.
	phoneCol := column{field: "phone", title: "students.col.phone", width: 12}
	if got := phoneCol.cellText(model.Student{ID: 3, Name: "Lina"}); got != cellPlaceholder {
		t.Fatalf("expected placeholder for empty field, got %q", got)
	}
}

func TestColumn_Pad_TruncatesAndPads(t *testing.T) {
	col := column{width: 6}
	if got := col.pad("ab"); got != "ab    " {
		t.Fatalf("expected right-padded cell, got %q", got)
	}
	if got := col.pad("abcdefgh"); got != "abcde…" {
		t.Fatalf("expected truncated cell with ellipsis, got %q", got)
	}
}

func TestRenderTable_EmptyRowsShowsPanel(t *testing.T) {
	i18n.Init("en")
	out := renderTable([]column{{field: "name", title: "students.col.name", width: 10}}, nil, 0)
	if !strings.Contains(out, i18n.T("table.empty")) {
		t.Fatalf("expected empty-state panel, got %q", out)
	}
}

func TestRenderTable_ProjectsRowsAndCursor(t *testing.T) {
	i18n.Init("en")
	cols := []column{
		{field: "name", title: "students.col.name", width: 10},
		{field: "phone", title: "students.col.phone", width: 10},
	}
	rows := records([]model.Student{
		{ID: 1, Name: "Sara", Phone: "0501"},
		{ID: 2, Name: "Omar"},
	})

	out := renderTable(cols, rows, 1)
	if !strings.Contains(out, i18n.T("students.col.name")) {
		t.Fatalf("expected header in output")
	}
	if !strings.Contains(out, "Sara") || !strings.Contains(out, "0501") {
		t.Fatalf("expected first row cells in output: %q", out)
	}
	if !strings.Contains(out, "▸ Omar") {
		t.Fatalf("expected cursor marker on second row: %q", out)
	}
	if !strings.Contains(out, cellPlaceholder) {
		t.Fatalf("expected placeholder for Omar's missing phone: %q", out)
	}
}
