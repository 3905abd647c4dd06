package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"themed/internal/watch"

	"github.com/spf13/cobra"
)

var watchDirs []string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch theme directories and reload on change",
	Long: `Watch the configured theme directories and keep the registry in sync:
edited files re-register, new files appear, deleted files are dropped. A
file that stops parsing is reported and its previous version is kept.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conf := activeConfig()
		conf.ThemeDirs = append(conf.ThemeDirs, watchDirs...)

		if len(conf.ThemeDirs) == 0 {
			PrintError("No theme directories specified in the configuration file.")
			PrintInfo("Add directories under 'theme_dirs:' in your config, or pass --dir.")
			return fmt.Errorf("nothing to watch")
		}

		registry, err := buildRegistry()
		if err != nil {
			return err
		}

		PrintInfo("Watching theme directories:")
		for _, dir := range conf.ThemeDirs {
			fmt.Printf("  - %s\n", dir)
		}

		reloader, err := watch.NewReloader(registry, conf)
		if err != nil {
			return err
		}

		reloader.SetCallback(func(name string, err error) {
			if err != nil {
				PrintError(fmt.Sprintf("Failed to reload %s: %v", name, err))
				return
			}
			PrintSuccess("Reloaded theme: " + name)
		})

		if err := reloader.Start(); err != nil {
			return err
		}

		fmt.Println("Watching for theme changes. Press Ctrl+C to stop.")

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

		<-sigChan

		fmt.Println()
		PrintInfo("Stopping theme watcher...")
		reloader.Stop()
		PrintSuccess("Theme watcher stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringArrayVarP(&watchDirs, "dir", "d", nil, "additional theme directory to watch (repeatable)")
}
