package cmd

import (
	"fmt"
	"strings"

	"themed/internal/theme"

	"github.com/spf13/cobra"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the registered themes",
	Long:  `List every theme the registry knows about: the bundled ones plus everything found in the configured theme directories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := buildRegistry()
		if err != nil {
			return err
		}

		builtinNames, err := theme.BuiltinNames()
		if err != nil {
			return err
		}
		builtins := make(map[string]bool, len(builtinNames))
		for _, name := range builtinNames {
			builtins[name] = true
		}

		PrintHeader("Available Themes")
		for _, name := range registry.Names() {
			sheet, getErr := registry.Get(name)
			if getErr != nil {
				continue
			}

			tags := make([]string, 0, 2)
			if builtins[name] {
				tags = append(tags, "builtin")
			}
			tags = append(tags, fmt.Sprintf("%d rules", len(sheet.Rules)))

			line := fmt.Sprintf("%s (%s)", name, strings.Join(tags, ", "))
			if name == registry.Active() {
				PrintSuccess(line + "  [active]")
			} else {
				fmt.Println("  " + line)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
