// Package main provides the sysup CLI: an interactive terminal tool for
// running curated Linux maintenance actions.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd creates the root command for sysup
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sysup",
		Short: "Interactive Linux maintenance tool",
		Long: `sysup is an interactive terminal tool for browsing and running curated
Linux maintenance and setup actions.

Actions are filtered to what the detected distribution supports, and every
selection is reviewed in a confirmation dialog before anything runs.`,
		Version: version,
		RunE:    runTUI,
	}

	rootCmd.AddCommand(
		newListCmd(),
		newSysinfoCmd(),
		newFlattenCmd(),
	)

	return rootCmd
}
