/*
PURPOSE:
  Defines the 'run' subcommand.
  Computes and prints the report of every sensor package.

REQUIREMENTS:
  User-specified:
  - Packages from args, a packages file, or the config.
  - Flags for overrides.

  Implementation-discovered:
  - Exit non-zero once the whole batch ran if any package failed or a
    result record could not be written.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.Run()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config, packages or engine setup fail.

USAGE:
  fitness-tracker run RUN:15000,1,75

RELATED FILES:
  - internal/cli/root.go
*/

package cli

import (
	"fmt"

	"github.com/daryltucker/fitness-tracker/internal/config"
	"github.com/daryltucker/fitness-tracker/internal/engine"
	"github.com/daryltucker/fitness-tracker/internal/model"
	"github.com/spf13/cobra"
)

var (
	outputOverride string
	localeOverride string
	packagesFile   string
)

var runCmd = &cobra.Command{
	Use:   "run [CODE:n,n,...]...",
	Short: "Compute workout reports",
	Long: `Computes a report for each sensor package.

A package is a workout code followed by its positional readings:
  RUN:action,duration,weight
  WLK:action,duration,weight,height
  SWM:action,duration,weight,length_pool,count_pool

Packages are taken from the arguments, else from --packages, else from the
'packages' key of the config file. Without any of them the reference
packages are used. A failed package is logged and skipped; the command
exits with an error after the batch if any package failed.`,
	Example: `  # Run the reference packages
  fitness-tracker run

  # Compute a single run
  fitness-tracker run RUN:15000,1,75

  # Read packages from a YAML file and keep CSV/JSON results
  fitness-tracker run --packages ./week.yaml -o ./results

  # Russian labels
  fitness-tracker run --locale ru`,
	RunE: func(cmd *cobra.Command, args []string) error {
		runCfg := *cfg

		if outputOverride != "" {
			runCfg.OutputDir = outputOverride
		}
		if localeOverride != "" {
			runCfg.Locale = localeOverride
		}
		if err := runCfg.Validate(); err != nil {
			return err
		}

		packages, err := resolvePackages(runCfg.Packages, args)
		if err != nil {
			return err
		}

		summary, err := engine.Run(&runCfg, packages, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		if summary.Failed > 0 {
			return fmt.Errorf("%d of %d packages failed", summary.Failed, summary.Processed)
		}
		if summary.WriteErrors > 0 {
			return fmt.Errorf("%d result records could not be written", summary.WriteErrors)
		}
		return nil
	},
}

func resolvePackages(fromConfig []model.Package, args []string) ([]model.Package, error) {
	if len(args) > 0 {
		packages := make([]model.Package, 0, len(args))
		for _, arg := range args {
			p, err := config.ParsePackage(arg)
			if err != nil {
				return nil, err
			}
			packages = append(packages, p)
		}
		return packages, nil
	}
	if packagesFile != "" {
		return config.LoadPackages(packagesFile)
	}
	return fromConfig, nil
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&outputOverride, "output-dir", "o", "", "Output directory for results (CSV/JSON)")
	runCmd.Flags().StringVar(&localeOverride, "locale", "", "Report language: en, ru")
	runCmd.Flags().StringVarP(&packagesFile, "packages", "p", "", "Path to a YAML list of packages")
}
