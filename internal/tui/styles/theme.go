package styles

import (
	"strings"

	"themed/internal/qss"

	"github.com/charmbracelet/lipgloss"
)

// Resolver yields merged properties for a style query. A theme registry
// satisfies it.
type Resolver interface {
	Resolve(q qss.Query) qss.PropertySet
}

// Palette holds lipgloss styles derived from a theme's resolved widget
// properties, so terminal previews render in the theme under inspection.
type Palette struct {
	Window      lipgloss.Style
	Button      lipgloss.Style
	ButtonHover lipgloss.Style
	Input       lipgloss.Style
	Header      lipgloss.Style
	Title       lipgloss.Style
}

// FromResolver builds a palette from the resolver's current rules.
// Properties without a terminal equivalent are ignored.
func FromResolver(r Resolver) Palette {
	return Palette{
		Window:      styleFor(r, qss.Query{Class: "QWidget"}),
		Button:      styleFor(r, qss.Query{Class: "QPushButton"}),
		ButtonHover: styleFor(r, qss.Query{Class: "QPushButton", States: []string{"hover"}}),
		Input:       styleFor(r, qss.Query{Class: "QLineEdit"}),
		Header:      styleFor(r, qss.Query{Class: "QHeaderView", SubElement: "section"}),
		Title:       styleFor(r, qss.Query{Class: "QLabel", ObjectName: "title"}),
	}
}

func styleFor(r Resolver, q qss.Query) lipgloss.Style {
	props := r.Resolve(q)
	style := lipgloss.NewStyle()

	if c, ok := colorValue(props["background"]); ok {
		style = style.Background(c)
	}
	if c, ok := colorValue(props["background-color"]); ok {
		style = style.Background(c)
	}
	if c, ok := colorValue(props["color"]); ok {
		style = style.Foreground(c)
	}
	if strings.EqualFold(strings.TrimSpace(props["font-weight"]), "bold") {
		style = style.Bold(true)
	}
	return style
}

// colorValue extracts a terminal-usable color from a property value.
// Only #rgb and #rrggbb literals translate; gradients and border
// shorthands do not.
func colorValue(v string) (lipgloss.Color, bool) {
	v = strings.TrimSpace(v)
	if len(v) != 4 && len(v) != 7 {
		return "", false
	}
	if v[0] != '#' {
		return "", false
	}
	for _, r := range v[1:] {
		if !isHexDigit(r) {
			return "", false
		}
	}
	return lipgloss.Color(v), true
}

func isHexDigit(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	}
	return false
}
