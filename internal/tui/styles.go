// package tui provides the terminal user interface for the NCHRD console.
// This file defines the shared lipgloss styles used across the different
// views to ensure a consistent look and feel.
package tui // import "github.com/nchrd/console/internal/tui"

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/nchrd/console/internal/session"
)

// palette defines the core colors for one theme.
type palette struct {
	subtle    lipgloss.Color
	highlight lipgloss.Color
	special   lipgloss.Color
	error     lipgloss.Color
	success   lipgloss.Color
	text      lipgloss.Color
	surface   lipgloss.Color
}

var darkPalette = palette{
	subtle:    lipgloss.Color("240"), // Muted gray
	highlight: lipgloss.Color("81"),  // A nice teal/cyan
	special:   lipgloss.Color("208"), // An orange for special attention
	error:     lipgloss.Color("196"), // A bright red
	success:   lipgloss.Color("40"),  // A nice green
	text:      lipgloss.Color("231"),
	surface:   lipgloss.Color("237"), // Dark gray
}

var lightPalette = palette{
	subtle:    lipgloss.Color("245"),
	highlight: lipgloss.Color("25"), // A deep blue
	special:   lipgloss.Color("166"),
	error:     lipgloss.Color("124"),
	success:   lipgloss.Color("28"),
	text:      lipgloss.Color("235"),
	surface:   lipgloss.Color("253"),
}

// Styles defines the reusable lipgloss styles for various UI components.
// They are rebuilt by applyTheme when the user toggles the theme.
var (
	docStyle   lipgloss.Style
	helpStyle  lipgloss.Style
	errorStyle lipgloss.Style

	successStyle lipgloss.Style
	specialStyle lipgloss.Style

	mainTitleStyle lipgloss.Style
	titleStyle     lipgloss.Style

	itemStyle         lipgloss.Style
	selectedItemStyle lipgloss.Style

	formItemStyle         lipgloss.Style
	formSelectedItemStyle lipgloss.Style
	focusedStyle          lipgloss.Style
	disabledStyle         lipgloss.Style

	dialogBoxStyle    lipgloss.Style
	buttonStyle       lipgloss.Style
	activeButtonStyle lipgloss.Style

	statusMessageStyle lipgloss.Style

	tableHeaderStyle lipgloss.Style
)

func init() {
	applyTheme(session.ThemeDark)
}

// applyTheme rebuilds the shared styles from the named theme's palette.
func applyTheme(theme string) {
	p := darkPalette
	if theme == session.ThemeLight {
		p = lightPalette
	}

	docStyle = lipgloss.NewStyle().Margin(1, 2)
	helpStyle = lipgloss.NewStyle().Foreground(p.subtle)
	errorStyle = lipgloss.NewStyle().Foreground(p.error)
	successStyle = lipgloss.NewStyle().Foreground(p.success)
	specialStyle = lipgloss.NewStyle().Foreground(p.special)

	mainTitleStyle = lipgloss.NewStyle().
		Foreground(p.highlight).
		Bold(true).
		Padding(1, 3)

	titleStyle = lipgloss.NewStyle().
		Foreground(p.highlight).
		Bold(true).
		Padding(1, 2)

	itemStyle = lipgloss.NewStyle()
	selectedItemStyle = lipgloss.NewStyle().Foreground(p.highlight)

	formItemStyle = lipgloss.NewStyle()
	formSelectedItemStyle = lipgloss.NewStyle().Foreground(p.highlight)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170"))
	disabledStyle = lipgloss.NewStyle().Foreground(p.subtle)

	dialogBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder()).
		BorderForeground(p.highlight).
		Padding(1, 2).
		Width(60)

	buttonStyle = lipgloss.NewStyle().
		Foreground(p.text).
		Background(p.surface).
		Padding(0, 3).
		MarginTop(1)

	activeButtonStyle = buttonStyle.
		Background(p.highlight).
		Foreground(p.text).
		Underline(true)

	statusMessageStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Foreground(p.text).
		Background(p.highlight)

	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(p.highlight)
}
