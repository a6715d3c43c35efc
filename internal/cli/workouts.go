package cli

import (
	"fmt"
	"strings"

	"github.com/daryltucker/fitness-tracker/internal/training"
	"github.com/spf13/cobra"
)

var workoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "List supported workout codes and their readings",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, c := range training.Codes() {
			if _, err := fmt.Fprintf(out, "%s  %-14s %s\n", c, c.TrainingType(), strings.Join(c.Params(), ",")); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(workoutsCmd)
}
