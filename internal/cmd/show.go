package cmd

import (
	"fmt"

	"themed/internal/qss"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"
)

var (
	showSelector  string
	showCheckKeys bool
)

var showCmd = &cobra.Command{
	Use:   "show <theme>",
	Short: "Print a theme's rules",
	Long: `Print the rules of a registered theme in stylesheet form.

A selector glob narrows the output to matching rules:

  themed show dark --selector 'QPushButton*'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := buildRegistry()
		if err != nil {
			return err
		}

		sheet, err := registry.Get(args[0])
		if err != nil {
			return err
		}

		var matcher glob.Glob
		if showSelector != "" {
			matcher, err = glob.Compile(showSelector)
			if err != nil {
				return fmt.Errorf("invalid selector pattern %q: %w", showSelector, err)
			}
		}

		shown := 0
		for _, rule := range sheet.Rules {
			if matcher != nil && !ruleMatchesGlob(rule, matcher) {
				continue
			}
			if shown > 0 {
				fmt.Println()
			}
			fmt.Println(rule.String())
			shown++
		}
		if shown == 0 {
			PrintInfo("No rules matched")
		}

		if showCheckKeys {
			unknown := sheet.UnknownProperties()
			if len(unknown) == 0 {
				PrintSuccess("All property keys are recognized")
			}
			for _, key := range unknown {
				PrintWarning("Unknown property key: " + key)
			}
		}

		return nil
	},
}

// ruleMatchesGlob reports whether any of the rule's selectors matches.
func ruleMatchesGlob(rule qss.Rule, matcher glob.Glob) bool {
	for _, sel := range rule.Selectors {
		if matcher.Match(sel.String()) {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().StringVarP(&showSelector, "selector", "s", "", "only show rules whose selector matches this glob")
	showCmd.Flags().BoolVar(&showCheckKeys, "check-keys", false, "flag property keys outside the recognized vocabulary")
}
