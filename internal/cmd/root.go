package cmd

import (
	"fmt"
	"os"

	"themed/internal/config"
	"themed/internal/log"
	"themed/internal/theme"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	cfgFile string
	cfg     *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:          "themed",
	Short:        "A stylesheet-driven theme manager",
	Version:      version,
	SilenceUsage: true,
	Long: `
	'########:'##::::'##:'########:'##::::'##:'########:'########::
	... ##..:: ##:::: ##: ##.....:: ###::'###: ##.....:: ##.... ##:
	::: ##:::: ##:::: ##: ##::::::: ####'####: ##::::::: ##:::: ##:
	::: ##:::: #########: ######::: ## ### ##: ######::: ##:::: ##:
	::: ##:::: ##.... ##: ##...:::: ##. #: ##: ##...:::: ##:::: ##:
	::: ##:::: ##:::: ##: ##::::::: ##:.:: ##: ##::::::: ##:::: ##:
	::: ##:::: ##:::: ##: ########: ##:::: ##: ########: ########::
	:::..:::::..:::::..::........::..:::::..::........::........:::

Themed registers Qt stylesheet themes, switches the active one at runtime
and resolves the styling any widget class gets from the cascade.
	`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Check if we're in a test environment
		if os.Getenv("TESTMODE") == "true" {
			return
		}

		// Load config
		var configErr error
		if cfgFile != "" {
			cfg, configErr = config.LoadConfigFile(cfgFile)
		} else {
			cfg, configErr = config.LoadConfig()
		}

		if configErr != nil {
			PrintWarning(fmt.Sprintf("%v", configErr))
			PrintInfo("Using default settings.")
			cfg = config.New()
		}

		var opts []log.Option
		if cfg.Log.JSON {
			opts = append(opts, log.WithJSON())
		}
		if cfg.Log.File != "" {
			opts = append(opts, log.WithFile(cfg.Log.File))
		}
		if len(opts) > 0 {
			log.Configure(opts...)
		}
		log.SetDebug(cfg.Log.Debug)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/themed/config.yaml)")
}

// activeConfig returns the loaded configuration, or defaults when the
// pre-run was skipped.
func activeConfig() *config.Config {
	if cfg == nil {
		return config.New()
	}
	return cfg
}

// buildRegistry assembles the registry every command works against: the
// theme search paths (project themes, then the user config directory,
// then the bundled themes, first hit per name wins), overlaid with the
// configured theme directories, then the configured startup theme.
// Directory and activation problems are warned about rather than fatal,
// so one bad entry never hides the rest.
func buildRegistry() (*theme.Registry, error) {
	conf := activeConfig()

	registry := theme.New()

	projectDir, err := os.Getwd()
	if err != nil {
		projectDir = ""
	}
	if _, err := theme.LoadSearchPaths(registry, projectDir); err != nil {
		PrintWarning(fmt.Sprintf("Could not load themes from search paths: %v", err))
		if err := theme.RegisterBuiltins(registry); err != nil {
			return nil, err
		}
	}

	for _, dir := range conf.ThemeDirs {
		if _, err := registry.LoadDir(dir); err != nil {
			PrintWarning(fmt.Sprintf("Could not load themes from %s: %v", dir, err))
		}
	}

	if conf.Theme != "" && conf.Theme != registry.Active() {
		if err := registry.SetActive(conf.Theme); err != nil {
			PrintWarning(fmt.Sprintf("Configured theme unavailable: %v", err))
		}
	}

	return registry, nil
}
