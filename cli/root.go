// Package cli is the rent-assist command tree.
package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with every subcommand attached.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rent-assist",
		Short:         "Rent assistance fee and payment schedule calculator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		ServeCmd(),
		QuoteCmd(),
		ScheduleCmd(),
		LateFeeCmd(),
	)
	return rootCmd
}
