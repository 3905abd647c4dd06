package components

import (
	"themed/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type StatusBar struct {
	text    string
	style   lipgloss.Style
	spinner spinner.Model
	loading bool
	failed  bool
}

func NewStatusBar() *StatusBar {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Help

	return &StatusBar{
		style:   styles.Help,
		spinner: s,
	}
}

func (s *StatusBar) SetLoading(loading bool) {
	s.loading = loading
}

func (s *StatusBar) SetText(text string) {
	s.text = text
	s.failed = false
}

// SetError shows an error message until the next SetText
func (s *StatusBar) SetError(err error) {
	if err == nil {
		return
	}
	s.text = err.Error()
	s.failed = true
}

func (s *StatusBar) Update(msg tea.Msg) tea.Cmd {
	if s.loading {
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return cmd
	}
	return nil
}

func (s *StatusBar) Tick() tea.Cmd {
	return s.spinner.Tick
}

func (s *StatusBar) View() string {
	if s.text == "" && !s.loading {
		return ""
	}

	style := s.style
	if s.failed {
		style = styles.Error
	}

	if s.loading {
		return style.Render(s.spinner.View() + " " + s.text)
	}
	return style.Render(s.text)
}

// Copy returns a copy of the StatusBar
func (s *StatusBar) Copy() *StatusBar {
	newSB := NewStatusBar()
	newSB.text = s.text
	newSB.failed = s.failed
	newSB.loading = s.loading
	newSB.spinner = s.spinner
	return newSB
}
