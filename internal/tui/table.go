// Copyright (c) 2026 NCHRD
// NCHRD Console - training and placement administration console
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/nchrd/console/internal/i18n"
	"github.com/nchrd/console/internal/model"
)

// cellPlaceholder is shown for fields the record has no value for.
const cellPlaceholder = "–"

// badgeTone names the accent applied to a badge cell. Tones are resolved to
// the current theme's styles at render time.
type badgeTone int

const (
	toneNeutral badgeTone = iota
	toneSuccess
	toneError
	toneSpecial
	toneSubtle
)

// column describes one column of a tabular list: which record field it
// projects, the header's message ID, and how the raw value is rendered.
// A column with a lookup translates raw values through i18n; a column with
// tones additionally colors them. Columns carry no behavior beyond that.
type column struct {
	field  string
	title  string // i18n message ID for the header
	width  int
	lookup map[string]string // raw value -> i18n message ID
	tones  map[string]badgeTone
}

// cellText resolves the display text for a record under this column.
func (c column) cellText(rec model.Record) string {
	raw := rec.Field(c.field)
	if raw == "" {
		return cellPlaceholder
	}
	if c.lookup != nil {
		if id, ok := c.lookup[raw]; ok {
			return i18n.T(id)
		}
	}
	return raw
}

// pad truncates or right-pads s to the column width.
func (c column) pad(s string) string {
	runes := []rune(s)
	if len(runes) > c.width {
		if c.width <= 1 {
			return string(runes[:c.width])
		}
		return string(runes[:c.width-1]) + "…"
	}
	return s + strings.Repeat(" ", c.width-len(runes))
}

func (c column) toneStyle(rec model.Record) badgeTone {
	if c.tones == nil {
		return toneNeutral
	}
	return c.tones[rec.Field(c.field)]
}

// renderTable projects rows through the column descriptors into an aligned
// text table with the cursor row highlighted. An empty row set renders the
// empty-state panel instead.
func renderTable(cols []column, rows []model.Record, cursor int) string {
	if len(rows) == 0 {
		return renderEmptyPanel()
	}

	var b strings.Builder

	header := "  "
	for i, col := range cols {
		if i > 0 {
			header += "  "
		}
		header += col.pad(i18n.T(col.title))
	}
	b.WriteString(tableHeaderStyle.Render(header))
	b.WriteString("\n")

	for i, rec := range rows {
		selected := i == cursor
		line := "  "
		if selected {
			line = "▸ "
		}
		for j, col := range cols {
			if j > 0 {
				line += "  "
			}
			cell := col.pad(col.cellText(rec))
			if selected {
				// Cursor highlight wins over the badge tone.
				line += cell
				continue
			}
			switch col.toneStyle(rec) {
			case toneSuccess:
				line += successStyle.Render(cell)
			case toneError:
				line += errorStyle.Render(cell)
			case toneSpecial:
				line += specialStyle.Render(cell)
			case toneSubtle:
				line += helpStyle.Render(cell)
			default:
				line += cell
			}
		}
		if selected {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// renderEmptyPanel is the shared empty-state for all list screens.
func renderEmptyPanel() string {
	return "\n" + helpStyle.Render("  "+i18n.T("table.empty")) + "\n"
}

// records converts a typed slice into the Record slice the table renderer
// consumes.
func records[T model.Record](items []T) []model.Record {
	out := make([]model.Record, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
