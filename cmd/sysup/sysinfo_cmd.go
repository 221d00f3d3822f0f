package main

import (
	"fmt"

	"github.com/jaspreet-dot-casa/sysup/pkg/sysinfo"
	"github.com/spf13/cobra"
)

// newSysinfoCmd creates the sysinfo subcommand
func newSysinfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sysinfo",
		Short: "Show the detected system",
		Long:  `Probe the platform metadata and print the detected distribution and package manager.`,
		RunE:  runSysinfo,
	}
}

func runSysinfo(_ *cobra.Command, _ []string) error {
	sys, err := sysinfo.Probe()
	if err != nil {
		return err
	}

	fmt.Println(sys)
	return nil
}
