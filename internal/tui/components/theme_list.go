package components

import (
	"fmt"
	"strings"

	"themed/internal/tui/common"
	"themed/internal/tui/styles"
)

// ThemeList renders the registered themes with cursor and active marker
type ThemeList struct {
	themes []common.ThemeEntry
	active string
	cursor int
}

func NewThemeList() *ThemeList {
	return &ThemeList{}
}

func (tl *ThemeList) SetThemes(themes []common.ThemeEntry) {
	tl.themes = themes
}

func (tl *ThemeList) SetActive(name string) {
	tl.active = name
}

func (tl *ThemeList) SetCursor(pos int) {
	if pos >= 0 && pos < len(tl.themes) {
		tl.cursor = pos
	}
}

func (tl *ThemeList) View() string {
	var s strings.Builder

	s.WriteString(styles.Title.Render("Themes") + "\n")

	if len(tl.themes) == 0 {
		s.WriteString("No themes registered\n")
		return s.String()
	}

	for i, th := range tl.themes {
		cursor := " "
		if i == tl.cursor {
			cursor = ">"
		}

		marker := " "
		if th.Name == tl.active {
			marker = "*"
		}

		style := styles.Unselected
		if i == tl.cursor {
			style = styles.Selected
		}

		line := fmt.Sprintf("%s %s %s (%d rules)", cursor, marker, th.Name, th.Rules)
		s.WriteString(style.Render(line))
		if th.Builtin {
			s.WriteString(" " + styles.Tag.Render("[builtin]"))
		}
		s.WriteString("\n")
	}

	return s.String()
}
