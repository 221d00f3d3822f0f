package main

import (
	"fmt"

	"github.com/jaspreet-dot-casa/sysup/pkg/catalog"
	"github.com/jaspreet-dot-casa/sysup/pkg/sysinfo"
	"github.com/spf13/cobra"
)

// newListCmd creates the list subcommand
func newListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available actions",
		Long:  `List the catalog actions available on the detected system.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runList(all)
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include actions unsupported on this system")

	return cmd
}

func runList(all bool) error {
	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	entries := cat.Entries
	if !all {
		sys, err := sysinfo.Probe()
		if err != nil {
			return err
		}
		entries = cat.ForSystem(sys)
	}

	for _, entry := range entries {
		fmt.Printf("%-20s %s\n", entry.Name, entry.Description)
	}
	fmt.Printf("\n%d actions\n", len(entries))
	return nil
}
