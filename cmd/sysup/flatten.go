package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/jaspreet-dot-casa/sysup/pkg/scripts"
	"github.com/spf13/cobra"
)

// newFlattenCmd creates the flatten subcommand
func newFlattenCmd() *cobra.Command {
	var src, dst, deps string

	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Flatten the script source tree",
		Long: `Run the build-time transclusion pipeline: discover candidate scripts
under --src, inline their include directives one level deep, and write
self-contained copies to the mirrored path under --dst.

Any unreadable script or include target aborts the whole run; the embedded
catalog is only ever published complete.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return runFlatten(src, dst, deps)
		},
	}

	cmd.Flags().StringVar(&src, "src", "scripts", "Script source tree")
	cmd.Flags().StringVar(&dst, "dst", "pkg/catalog/assets", "Flattened output tree")
	cmd.Flags().StringVar(&deps, "deps", "", "Write a make-style dependency manifest to this path")

	return cmd
}

func runFlatten(src, dst, deps string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "flatten"})

	inputs, err := scripts.NewPipeline(src, dst).Run()
	if err != nil {
		return err
	}
	logger.Info("flattened", "scripts", len(inputs), "dst", dst)

	if deps != "" {
		if err := scripts.WriteDepsFile(deps, dst, inputs); err != nil {
			return err
		}
		logger.Info("wrote dependency manifest", "path", deps)
	}

	return nil
}
