package cmd

import (
	"fmt"

	"themed/internal/qss"

	"github.com/spf13/cobra"
)

var (
	resolveStates []string
	resolveSub    string
	resolveObject string
	resolveTheme  string
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <widget-class>",
	Short: "Resolve the styling a widget class gets",
	Long: `Resolve the effective property set for a widget class from the active
theme's cascade. Later rules win over earlier ones.

  themed resolve QPushButton
  themed resolve QPushButton --state hover
  themed resolve QHeaderView --sub section
  themed resolve QLabel --object title --theme light`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		registry, err := buildRegistry()
		if err != nil {
			return err
		}

		query := qss.Query{
			Class:      args[0],
			ObjectName: resolveObject,
			SubElement: resolveSub,
			States:     resolveStates,
		}

		themeName := resolveTheme
		var props qss.PropertySet
		if themeName == "" {
			themeName = registry.Active()
			props = registry.Resolve(query)
		} else {
			props, err = registry.ResolveIn(themeName, query)
			if err != nil {
				return err
			}
		}

		if len(props) == 0 {
			PrintInfo(fmt.Sprintf("Nothing styles %s in theme %q", describeQuery(query), themeName))
			return nil
		}

		PrintHeader(fmt.Sprintf("%s in %s", describeQuery(query), themeName))
		for _, key := range props.Keys() {
			fmt.Printf("%s: %s;\n", key, props[key])
		}

		return nil
	},
}

// describeQuery renders the query in selector syntax for output headers.
func describeQuery(q qss.Query) string {
	out := q.Class
	if q.ObjectName != "" {
		out += "#" + q.ObjectName
	}
	if q.SubElement != "" {
		out += "::" + q.SubElement
	}
	for _, state := range q.States {
		out += ":" + state
	}
	return out
}

func init() {
	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().StringSliceVar(&resolveStates, "state", nil, "pseudo-state to resolve with (repeatable)")
	resolveCmd.Flags().StringVar(&resolveSub, "sub", "", "sub-element to resolve, e.g. section")
	resolveCmd.Flags().StringVar(&resolveObject, "object", "", "object name to resolve, e.g. title")
	resolveCmd.Flags().StringVarP(&resolveTheme, "theme", "t", "", "resolve against this theme instead of the active one")
}
