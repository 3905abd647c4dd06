package views

import (
	"strings"

	"themed/internal/tui/common"
	"themed/internal/tui/components"
	"themed/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

func RenderMainView(m common.ModelReader) string {
	var sb strings.Builder

	// Render banner
	sb.WriteString(renderBanner())
	sb.WriteString("\n")

	// Theme list and rule panes side by side
	themeList := components.NewThemeList()
	themeList.SetThemes(m.Themes())
	themeList.SetActive(m.ActiveTheme())
	themeList.SetCursor(m.Cursor())

	ruleView := components.NewRuleView()
	ruleView.SetRules(m.Rules())
	ruleView.SetFilter(m.FilterText())

	previewStrip := components.NewPreviewStrip()
	previewStrip.SetPalette(m.Palette())

	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
		styles.PaneStyle.Render(themeList.View()),
		styles.PaneStyle.Render(ruleView.View()),
		styles.PaneStyle.Render(previewStrip.View()),
	))

	// Filter prompt while typing a selector glob
	if m.Mode() == common.Filter {
		sb.WriteString("\n" + m.FilterView())
	}

	if status := m.StatusView(); status != "" {
		sb.WriteString("\n" + status)
	}

	// Help and key commands
	if m.ShowHelp() {
		sb.WriteString("\n" + RenderHelp())
	}
	sb.WriteString("\n" + RenderKeyCommands())

	return styles.App.Render(sb.String())
}

func RenderKeyCommands() string {
	return styles.Help.Render(`
[↑/k] Up  [↓/j] Down  [Enter] Apply  [/] Filter  [u] Unknown keys  [r] Refresh  [q] Quit  [?] Help
`)
}

func RenderHelp() string {
	return styles.Help.Render(`
Quick Start Guide:

Navigation:
  ↑/k, ↓/j: Move cursor
  gg: Go to top
  G: Go to bottom

Themes:
  Enter: Apply the theme under the cursor
  r: Refresh the theme list

Rules:
  /: Filter rules by selector glob
  u: Mark unrecognized property keys
  Esc: Clear the filter

Commands:
  q, Ctrl+C: Exit
  ?: Toggle help
`)
}

func renderBanner() string {
	return styles.Title.Render(`
	'########:'##::::'##:'########:'##::::'##:'########:'########::
	... ##..:: ##:::: ##: ##.....:: ###::'###: ##.....:: ##.... ##:
	::: ##:::: ##:::: ##: ##::::::: ####'####: ##::::::: ##:::: ##:
	::: ##:::: #########: ######::: ## ### ##: ######::: ##:::: ##:
	::: ##:::: ##.... ##: ##...:::: ##. #: ##: ##...:::: ##:::: ##:
	::: ##:::: ##:::: ##: ##::::::: ##:.:: ##: ##::::::: ##:::: ##:
	::: ##:::: ##:::: ##: ########: ##:::: ##: ########: ########::
	:::..:::::..:::::..::........::..:::::..::........::........:::
	`)
}
