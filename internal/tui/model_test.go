package tui

import (
	"errors"
	"strings"
	"testing"

	"themed/internal/config"
	"themed/internal/theme"
	"themed/internal/tui/common"
	"themed/internal/tui/messages"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()

	registry, err := theme.NewWithBuiltins()
	require.NoError(t, err)

	return New(registry, config.New())
}

func TestModelInitialization(t *testing.T) {
	m := newTestModel(t)
	assert.NotNil(t, m)
	assert.Equal(t, common.Normal, m.mode)
	assert.Equal(t, []common.ThemeEntry{
		{Name: "dark", Rules: 8, Builtin: true},
		{Name: "light", Rules: 8, Builtin: true},
	}, m.Themes())
	assert.Equal(t, "dark", m.ActiveTheme())
	assert.Equal(t, 0, m.Cursor(), "cursor should start on the active theme")
	assert.NotEmpty(t, m.Rules())
}

func TestModelEdgeCases(t *testing.T) {
	t.Run("empty_registry", func(t *testing.T) {
		m := New(theme.New(), config.New())

		assert.Empty(t, m.Themes())
		assert.Empty(t, m.Rules())

		// Navigation with no themes should not panic
		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
		assert.Equal(t, 0, model.(*Model).Cursor())

		model, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.Equal(t, "dark", model.(*Model).ActiveTheme())
	})

	t.Run("cursor_bounds", func(t *testing.T) {
		m := newTestModel(t)

		m.SetCursor(-1)
		assert.Equal(t, 0, m.Cursor())

		m.SetCursor(100)
		assert.Equal(t, 0, m.Cursor())
	})
}

func TestModelStateConsistency(t *testing.T) {
	t.Run("update_returns_a_new_model", func(t *testing.T) {
		m := newTestModel(t)

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})

		assert.Equal(t, 1, model.(*Model).Cursor())
		assert.Equal(t, 0, m.Cursor(), "the original model should be untouched")
	})

	t.Run("cursor_rule_sync", func(t *testing.T) {
		registry, err := theme.NewWithBuiltins()
		require.NoError(t, err)
		require.NoError(t, registry.Register("mini", "QWidget { background: #123456; }"))

		m := New(registry, config.New())
		m.SetCursor(2)

		require.Len(t, m.Rules(), 1)
		assert.Equal(t, "QWidget", m.Rules()[0].Selector)
	})

	t.Run("palette_follows_cursor", func(t *testing.T) {
		m := newTestModel(t)
		assert.Equal(t, lipgloss.Color("#1e1e1e"), m.Palette().Window.GetBackground())

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
		assert.Equal(t, lipgloss.Color("#ffffff"), model.(*Model).Palette().Window.GetBackground())
	})
}

func TestModelKeyHandling(t *testing.T) {
	tests := []struct {
		name          string
		setupModel    func() *Model
		expectedState func(*testing.T, *Model)
	}{
		{
			name: "quit on q",
			setupModel: func() *Model {
				return newTestModel(t)
			},
			expectedState: func(t *testing.T, m *Model) {
				_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
				require.NotNil(t, cmd)
				_, isQuit := cmd().(tea.QuitMsg)
				assert.True(t, isQuit)
			},
		},
		{
			name: "quit on esc without a filter",
			setupModel: func() *Model {
				return newTestModel(t)
			},
			expectedState: func(t *testing.T, m *Model) {
				_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
				require.NotNil(t, cmd)
				_, isQuit := cmd().(tea.QuitMsg)
				assert.True(t, isQuit)
			},
		},
		{
			name: "toggle help on ?",
			setupModel: func() *Model {
				return newTestModel(t)
			},
			expectedState: func(t *testing.T, m *Model) {
				newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
				assert.True(t, newModel.(*Model).ShowHelp())
			},
		},
		{
			name: "cursor movement down",
			setupModel: func() *Model {
				return newTestModel(t)
			},
			expectedState: func(t *testing.T, m *Model) {
				newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
				assert.Equal(t, 1, newModel.(*Model).Cursor())
			},
		},
		{
			name: "cursor movement up",
			setupModel: func() *Model {
				m := newTestModel(t)
				m.SetCursor(1)
				return m
			},
			expectedState: func(t *testing.T, m *Model) {
				newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
				assert.Equal(t, 0, newModel.(*Model).Cursor())
			},
		},
		{
			name: "jump to bottom on G",
			setupModel: func() *Model {
				return newTestModel(t)
			},
			expectedState: func(t *testing.T, m *Model) {
				newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
				assert.Equal(t, len(m.Themes())-1, newModel.(*Model).Cursor())
			},
		},
		{
			name: "jump to top on gg",
			setupModel: func() *Model {
				m := newTestModel(t)
				m.SetCursor(1)
				return m
			},
			expectedState: func(t *testing.T, m *Model) {
				newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
				newModel, _ = newModel.(*Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
				assert.Equal(t, 0, newModel.(*Model).Cursor())
			},
		},
		{
			name: "apply theme on enter",
			setupModel: func() *Model {
				m := newTestModel(t)
				m.SetCursor(1)
				return m
			},
			expectedState: func(t *testing.T, m *Model) {
				newModel, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
				assert.Equal(t, "light", newModel.(*Model).ActiveTheme())
				assert.Contains(t, newModel.(*Model).StatusView(), "Theme applied: light")
			},
		},
		{
			name: "enter filter mode on /",
			setupModel: func() *Model {
				return newTestModel(t)
			},
			expectedState: func(t *testing.T, m *Model) {
				newModel, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
				require.NotNil(t, cmd)
				assert.Equal(t, common.Filter, newModel.(*Model).Mode())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := tt.setupModel()
			tt.expectedState(t, model)
		})
	}
}

func TestModelFilter(t *testing.T) {
	t.Run("commit_narrows_rules", func(t *testing.T) {
		m := newTestModel(t)
		fullCount := len(m.Rules())

		model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
		require.NotNil(t, cmd)

		model, _ = model.(*Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("QPushButton*")})
		model, _ = model.(*Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
		fm := model.(*Model)

		assert.Equal(t, common.Normal, fm.Mode())
		assert.Equal(t, "QPushButton*", fm.FilterText())
		require.NotEmpty(t, fm.Rules())
		assert.Less(t, len(fm.Rules()), fullCount)
		for _, rule := range fm.Rules() {
			assert.True(t, strings.HasPrefix(rule.Selector, "QPushButton"),
				"rule %q should match the filter", rule.Selector)
		}

		// Esc drops the filter and restores the full rule list
		model, _ = fm.Update(tea.KeyMsg{Type: tea.KeyEsc})
		fm = model.(*Model)
		assert.Empty(t, fm.FilterText())
		assert.Len(t, fm.Rules(), fullCount)
	})

	t.Run("invalid_glob_keeps_previous_filter", func(t *testing.T) {
		m := newTestModel(t)

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
		model, _ = model.(*Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("[")})
		model, _ = model.(*Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
		fm := model.(*Model)

		assert.Equal(t, common.Normal, fm.Mode())
		assert.Empty(t, fm.FilterText())
		assert.Contains(t, fm.StatusView(), "invalid selector pattern")
	})

	t.Run("esc_cancels_filter_entry", func(t *testing.T) {
		m := newTestModel(t)

		model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
		model, _ = model.(*Model).Update(tea.KeyMsg{Type: tea.KeyEsc})
		fm := model.(*Model)

		assert.Equal(t, common.Normal, fm.Mode())
		assert.Empty(t, fm.FilterText())
	})
}

func TestModelUnknownKeyToggle(t *testing.T) {
	registry, err := theme.NewWithBuiltins()
	require.NoError(t, err)
	require.NoError(t, registry.Register("badge", "QBadge { background: #333; shadow-depth: 3; }"))

	m := New(registry, config.New())
	m.SetCursor(2)

	unknownLines := func(m *Model) int {
		count := 0
		for _, rule := range m.Rules() {
			for _, line := range rule.Lines {
				if line.Unknown {
					count++
				}
			}
		}
		return count
	}

	assert.Equal(t, 0, unknownLines(m))

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")})
	assert.Equal(t, 1, unknownLines(model.(*Model)))

	model, _ = model.(*Model).Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("u")})
	assert.Equal(t, 0, unknownLines(model.(*Model)))
}

func TestModelMessages(t *testing.T) {
	t.Run("theme_reloaded", func(t *testing.T) {
		m := newTestModel(t)
		model, _ := m.Update(messages.ThemeReloadedMsg{Name: "dark"})
		assert.Contains(t, model.(*Model).StatusView(), "Theme reloaded: dark")
	})

	t.Run("theme_reload_failure", func(t *testing.T) {
		m := newTestModel(t)
		model, _ := m.Update(messages.ThemeReloadedMsg{Name: "dusk", Err: errors.New("missing '}'")})
		assert.Contains(t, model.(*Model).StatusView(), "missing '}'")
	})

	t.Run("theme_applied", func(t *testing.T) {
		m := newTestModel(t)
		model, _ := m.Update(messages.ThemeAppliedMsg{Previous: "dark", Current: "light"})
		assert.Contains(t, model.(*Model).StatusView(), "Theme applied: light (was dark)")
	})

	t.Run("error", func(t *testing.T) {
		m := newTestModel(t)
		model, _ := m.Update(messages.ErrorMsg{Err: errors.New("watch directory vanished")})
		assert.Contains(t, model.(*Model).StatusView(), "watch directory vanished")
	})

	t.Run("reload_refreshes_the_theme_list", func(t *testing.T) {
		m := newTestModel(t)
		require.NoError(t, m.registry.Register("sepia", "QWidget { background: #f4ecd8; }"))

		model, _ := m.Update(messages.ThemeReloadedMsg{Name: "sepia"})
		assert.Len(t, model.(*Model).Themes(), 3)
	})
}

func TestModel_View(t *testing.T) {
	t.Run("renders_theme_list_and_rules", func(t *testing.T) {
		m := newTestModel(t)
		got := m.View()

		assert.Contains(t, got, "Themes")
		assert.Contains(t, got, "dark")
		assert.Contains(t, got, "[builtin]")
		assert.Contains(t, got, "QPushButton")
	})

	t.Run("empty_registry", func(t *testing.T) {
		m := New(theme.New(), config.New())
		got := m.View()

		assert.Contains(t, got, "No themes registered")
		assert.Contains(t, got, "No rules to show")
	})
}
