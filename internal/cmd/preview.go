package cmd

import (
	"fmt"

	"themed/internal/theme"
	"themed/internal/tui"
	"themed/internal/tui/messages"
	"themed/internal/watch"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// previewObserverID identifies the browser's registry subscription.
const previewObserverID = "cli-preview"

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Browse themes in the terminal",
	Long: `Open the interactive theme browser: themes on the left, the cursor
theme's rules and a rendered preview on the right. Enter applies a theme,
/ filters rules by selector glob, ? shows every key.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := activeConfig()
		registry, err := buildRegistry()
		if err != nil {
			return err
		}

		p := tea.NewProgram(tui.New(registry, conf))

		// Theme switches from outside the browser (the reloader
		// re-applying the active theme) surface in the status bar.
		if err := registry.SubscribeFunc(previewObserverID, func(change theme.Change) {
			p.Send(messages.ThemeAppliedMsg{Previous: change.Previous, Current: change.Current})
		}); err == nil {
			defer func() {
				if err := registry.Unsubscribe(previewObserverID); err != nil {
					PrintWarning(fmt.Sprintf("%v", err))
				}
			}()
		}

		if conf.Watch.Enabled {
			reloader, err := watch.NewReloader(registry, conf)
			if err != nil {
				PrintWarning(fmt.Sprintf("Theme watching unavailable: %v", err))
			} else {
				reloader.SetCallback(func(name string, err error) {
					p.Send(messages.ThemeReloadedMsg{Name: name, Err: err})
				})
				if err := reloader.Start(); err != nil {
					PrintWarning(fmt.Sprintf("Theme watching unavailable: %v", err))
				} else {
					defer reloader.Stop()
				}
			}
		}

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("error running the theme browser: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
