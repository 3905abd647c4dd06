package common

import "themed/internal/tui/styles"

type Mode int

const (
	Normal Mode = iota
	Filter
)

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	Themes() []ThemeEntry
	Cursor() int
	ActiveTheme() string
	Rules() []RuleEntry
	Palette() styles.Palette
	FilterText() string
	FilterView() string
	Mode() Mode
	ShowHelp() bool
	StatusView() string
}

// ThemeEntry is one row of the theme list pane
type ThemeEntry struct {
	Name    string
	Rules   int
	Builtin bool
}

// RuleLine is one rendered declaration of a rule
type RuleLine struct {
	Text    string
	Unknown bool
}

// RuleEntry is one rule of the inspected theme
type RuleEntry struct {
	Selector string
	Lines    []RuleLine
}
