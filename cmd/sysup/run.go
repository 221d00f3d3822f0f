package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jaspreet-dot-casa/sysup/pkg/app"
	"github.com/jaspreet-dot-casa/sysup/pkg/app/views/actions"
	"github.com/jaspreet-dot-casa/sysup/pkg/app/views/system"
	"github.com/jaspreet-dot-casa/sysup/pkg/catalog"
	"github.com/jaspreet-dot-casa/sysup/pkg/config"
	"github.com/jaspreet-dot-casa/sysup/pkg/runner"
	"github.com/jaspreet-dot-casa/sysup/pkg/sysinfo"
	"github.com/spf13/cobra"
)

// runTUI launches the interactive action browser. Confirmed entries are
// executed after the TUI exits so the scripts own the terminal.
func runTUI(cmd *cobra.Command, _ []string) error {
	sys, err := sysinfo.Probe()
	if err != nil {
		return err
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	cat, err := catalog.Load()
	if err != nil {
		return err
	}

	model := app.New(sys, cfg.SkipConfirmation).WithTabs(
		actions.New(cat.ForSystem(sys)),
		system.New(sys),
	)

	final, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("TUI failed: %w", err)
	}

	confirmed := final.(app.Model).Confirmed()
	if len(confirmed) == 0 {
		return nil
	}

	r := runner.New(cfg.Shell, cfg.LogDir, sys)
	failed := 0
	for _, entry := range confirmed {
		result, err := r.Run(cmd.Context(), entry)
		if err != nil {
			return err
		}
		if result.ExitCode != 0 {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d actions failed", failed, len(confirmed))
	}
	fmt.Printf("\n%d actions completed\n", len(confirmed))
	return nil
}
