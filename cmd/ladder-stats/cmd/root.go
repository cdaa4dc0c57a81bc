// Package cmd holds the ladder-stats command line.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "ladder-stats",
	Short:        "Ladder character and stat tracking API",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd, migrateCmd, previewEmailCmd)
}

// Execute runs the root command. Without a subcommand it serves.
func Execute() error {
	return rootCmd.Execute()
}
