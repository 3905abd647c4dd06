package cmd

import (
	"fmt"

	"themed/internal/gui"

	"github.com/spf13/cobra"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Launch the graphical theme preview",
	Long: `Launch the preview window: a widget gallery rendered with the active
theme, a theme picker, stylesheet import/export and watch-mode controls.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !gui.IsAvailable() {
			return fmt.Errorf("this build does not include the GUI")
		}

		registry, err := buildRegistry()
		if err != nil {
			return err
		}

		fmt.Println("Launching the theme preview window...")
		return gui.Launch(activeConfig(), registry)
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
