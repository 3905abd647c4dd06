package styles

import "github.com/charmbracelet/lipgloss"

// Chrome styles for the browser itself, independent of the inspected theme.

var App = lipgloss.NewStyle().
	Padding(1, 2)

var Title = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#7B61FF")).
	MarginBottom(1)

var Selected = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#73F59F")).
	Bold(true)

var Unselected = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#666666"))

var Tag = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#5A9"))

var Help = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#5A9"))

var Error = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#FF5F5F"))

// PaneStyle frames the theme list and rule inspector panes
var PaneStyle = lipgloss.NewStyle().
	Padding(1, 2).
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("#7B61FF"))
