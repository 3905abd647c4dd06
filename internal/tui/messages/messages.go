package messages

type ErrorMsg struct {
	Err error
}

// ThemeAppliedMsg reports a completed theme switch.
type ThemeAppliedMsg struct {
	Previous string
	Current  string
}

// ThemeReloadedMsg reports a theme file change applied by the reloader.
// Err carries the parse failure when the previous version was kept.
type ThemeReloadedMsg struct {
	Name string
	Err  error
}
