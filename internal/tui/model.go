package tui

import (
	"fmt"
	"strings"

	"themed/internal/config"
	"themed/internal/qss"
	"themed/internal/theme"
	"themed/internal/tui/common"
	"themed/internal/tui/components"
	"themed/internal/tui/messages"
	"themed/internal/tui/styles"
	"themed/internal/tui/views"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gobwas/glob"
)

type Model struct {
	registry *theme.Registry
	cfg      *config.Config

	// Core state
	mode     common.Mode
	themes   []common.ThemeEntry
	rules    []common.RuleEntry
	palette  styles.Palette
	cursor   int
	showHelp bool

	// Filter mode state
	filterInput textinput.Model
	filter      string
	filterGlob  glob.Glob
	markUnknown bool

	// Status line state
	statusBar *components.StatusBar
	lastKey   string
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

func New(registry *theme.Registry, cfg *config.Config) *Model {
	input := textinput.New()
	input.Placeholder = "selector glob"
	input.CharLimit = 64
	input.Width = 32

	m := &Model{
		registry:    registry,
		cfg:         cfg,
		mode:        common.Normal,
		filterInput: input,
		markUnknown: cfg.Preview.ShowUnknown,
		statusBar:   components.NewStatusBar(),
	}

	if pattern := strings.TrimSpace(cfg.Preview.Selector); pattern != "" {
		if g, err := glob.Compile(pattern); err == nil {
			m.filter = pattern
			m.filterGlob = g
		}
	}

	m.rebuild()
	for i, th := range m.themes {
		if th.Name == registry.Active() {
			m.SetCursor(i)
			break
		}
	}

	return m
}

// View implements tea.Model
func (m *Model) View() string {
	return views.RenderMainView(m)
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case messages.ThemeReloadedMsg:
		newModel := m.copy()
		newModel.rebuild()
		if msg.Err != nil {
			newModel.statusBar.SetError(fmt.Errorf("reload %s: %w", msg.Name, msg.Err))
		} else {
			newModel.statusBar.SetText("Theme reloaded: " + msg.Name)
		}
		return newModel, nil
	case messages.ThemeAppliedMsg:
		newModel := m.copy()
		newModel.rebuild()
		newModel.statusBar.SetText(fmt.Sprintf("Theme applied: %s (was %s)", msg.Current, msg.Previous))
		return newModel, nil
	case messages.ErrorMsg:
		newModel := m.copy()
		newModel.statusBar.SetError(msg.Err)
		return newModel, nil
	}

	newModel := m.copy()
	cmd := newModel.statusBar.Update(msg)
	return newModel, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	newModel := m.copy()

	switch newModel.mode {
	case common.Filter:
		return newModel.handleFilterKeys(msg)
	default:
		return newModel.handleNormalKeys(msg)
	}
}

func (m *Model) copy() *Model {
	newModel := &Model{
		registry:    m.registry,
		cfg:         m.cfg,
		mode:        m.mode,
		themes:      make([]common.ThemeEntry, len(m.themes)),
		rules:       make([]common.RuleEntry, len(m.rules)),
		palette:     m.palette,
		cursor:      m.cursor,
		showHelp:    m.showHelp,
		filterInput: m.filterInput,
		filter:      m.filter,
		filterGlob:  m.filterGlob,
		markUnknown: m.markUnknown,
		statusBar:   m.statusBar.Copy(),
		lastKey:     m.lastKey,
	}

	copy(newModel.themes, m.themes)
	copy(newModel.rules, m.rules)

	return newModel
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		// First esc drops the filter, second one leaves
		if m.filter == "" {
			return m, tea.Quit
		}
		m.filter = ""
		m.filterGlob = nil
		m.filterInput.SetValue("")
		m.refreshRules()
		m.statusBar.SetText("Filter cleared")
	case "j", "down":
		if m.cursor < len(m.themes)-1 {
			m.cursor++
			m.refreshRules()
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
			m.refreshRules()
		}
	case "G":
		if len(m.themes) > 0 {
			m.cursor = len(m.themes) - 1
			m.refreshRules()
		}
	case "g":
		if m.lastKey == "g" && len(m.themes) > 0 {
			m.cursor = 0
			m.refreshRules()
		}
	case "enter":
		if len(m.themes) > 0 {
			name := m.themes[m.cursor].Name
			if err := m.registry.SetActive(name); err != nil {
				m.statusBar.SetError(err)
			} else {
				m.statusBar.SetText("Theme applied: " + name)
			}
		}
	case "/":
		m.mode = common.Filter
		m.filterInput.SetValue(m.filter)
		m.filterInput.Focus()
		m.lastKey = msg.String()
		return m, textinput.Blink
	case "u":
		m.markUnknown = !m.markUnknown
		m.refreshRules()
	case "r":
		m.rebuild()
		m.statusBar.SetText("Themes refreshed")
	case "?":
		m.showHelp = !m.showHelp
	}

	m.lastKey = msg.String()
	return m, nil
}

func (m *Model) handleFilterKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = common.Normal
		m.filterInput.Blur()
		return m, nil
	case "enter":
		pattern := strings.TrimSpace(m.filterInput.Value())
		m.mode = common.Normal
		m.filterInput.Blur()

		if pattern == "" {
			m.filter = ""
			m.filterGlob = nil
			m.refreshRules()
			return m, nil
		}

		g, err := glob.Compile(pattern)
		if err != nil {
			m.statusBar.SetError(fmt.Errorf("invalid selector pattern %q: %w", pattern, err))
			return m, nil
		}

		m.filter = pattern
		m.filterGlob = g
		m.refreshRules()
		return m, nil
	default:
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}
}

// rebuild refreshes the theme list from the registry and re-derives the
// rule pane for the theme under the cursor.
func (m *Model) rebuild() {
	names := m.registry.Names()
	builtin := builtinSet()

	themes := make([]common.ThemeEntry, 0, len(names))
	for _, name := range names {
		entry := common.ThemeEntry{Name: name, Builtin: builtin[name]}
		if sheet, err := m.registry.Get(name); err == nil {
			entry.Rules = len(sheet.Rules)
		}
		themes = append(themes, entry)
	}
	m.themes = themes

	if m.cursor >= len(m.themes) {
		m.cursor = len(m.themes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	m.refreshRules()
}

// refreshRules re-derives the rule pane and the preview palette for the
// theme under the cursor.
func (m *Model) refreshRules() {
	m.rules = m.buildRules()
	m.palette = styles.Palette{}
	if len(m.themes) > 0 {
		m.palette = styles.FromResolver(themeResolver{m.registry, m.themes[m.cursor].Name})
	}
}

func (m *Model) buildRules() []common.RuleEntry {
	if len(m.themes) == 0 {
		return nil
	}

	sheet, err := m.registry.Get(m.themes[m.cursor].Name)
	if err != nil {
		return nil
	}

	var rules []common.RuleEntry
	for _, rule := range sheet.Rules {
		selectors := make([]string, 0, len(rule.Selectors))
		for _, sel := range rule.Selectors {
			selectors = append(selectors, sel.String())
		}
		if m.filterGlob != nil && !matchesAny(m.filterGlob, selectors) {
			continue
		}

		entry := common.RuleEntry{Selector: strings.Join(selectors, ", ")}
		for _, d := range rule.Declarations {
			entry.Lines = append(entry.Lines, common.RuleLine{
				Text:    fmt.Sprintf("%s: %s;", d.Property, d.Value),
				Unknown: m.markUnknown && !qss.IsKnownProperty(d.Property),
			})
		}
		rules = append(rules, entry)
	}
	return rules
}

// themeResolver resolves against a named theme rather than the active one,
// so the preview strip tracks the cursor.
type themeResolver struct {
	registry *theme.Registry
	name     string
}

func (r themeResolver) Resolve(q qss.Query) qss.PropertySet {
	props, err := r.registry.ResolveIn(r.name, q)
	if err != nil {
		return qss.PropertySet{}
	}
	return props
}

func matchesAny(g glob.Glob, selectors []string) bool {
	for _, sel := range selectors {
		if g.Match(sel) {
			return true
		}
	}
	return false
}

func builtinSet() map[string]bool {
	set := make(map[string]bool)
	names, err := theme.BuiltinNames()
	if err != nil {
		return set
	}
	for _, name := range names {
		set[name] = true
	}
	return set
}

// Getters
func (m *Model) Themes() []common.ThemeEntry {
	return m.themes
}

func (m *Model) Cursor() int {
	return m.cursor
}

func (m *Model) ActiveTheme() string {
	return m.registry.Active()
}

func (m *Model) Rules() []common.RuleEntry {
	return m.rules
}

func (m *Model) Palette() styles.Palette {
	return m.palette
}

func (m *Model) FilterText() string {
	return m.filter
}

func (m *Model) FilterView() string {
	return "/" + m.filterInput.View()
}

func (m *Model) Mode() common.Mode {
	return m.mode
}

func (m *Model) ShowHelp() bool {
	return m.showHelp
}

func (m *Model) StatusView() string {
	return m.statusBar.View()
}

// SetCursor moves the cursor to the given row and re-derives the rule pane.
func (m *Model) SetCursor(pos int) {
	if pos >= 0 && pos < len(m.themes) {
		m.cursor = pos
		m.refreshRules()
	}
}
