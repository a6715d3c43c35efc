/*
PURPOSE:
  Defines the root Cobra command for the fitness tracker CLI.
  Handles global flags, config loading and logger setup.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Logs go to stderr so stdout only carries reports.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/fitness-tracker/main.go
  - Calls: Child commands (run, workouts)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands.

RELATED FILES:
  - cmd/fitness-tracker/main.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"github.com/daryltucker/fitness-tracker/internal/config"
	"github.com/daryltucker/fitness-tracker/internal/output"
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X ...cli.version=..."
var version = "0.1.0"

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile  string
	logLevel string

	// cfg is loaded once per invocation by the root PersistentPreRunE.
	cfg *config.Config

	rootCmd = &cobra.Command{
		Use:     "fitness-tracker",
		Short:   "Workout metrics calculator for running, walking and swimming",
		Long:    `Computes distance, mean speed and calories burned from raw sensor packages. Use 'run --help' for input options.`,
		Version: version,

		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if logLevel != "" {
				loaded.LogLevel = logLevel
			}
			level, err := output.ParseLevel(loaded.LogLevel)
			if err != nil {
				return err
			}
			output.SetLogger(output.NewLogger(level, cmd.ErrOrStderr()))
			cfg = loaded
			return nil
		},
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tracker.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error")
}
