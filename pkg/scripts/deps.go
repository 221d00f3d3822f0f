package scripts

import (
	"fmt"
	"io"
	"os"
)

// pipelineSource marks the pipeline's own implementation as a dependency
// of every output, so editing the flattening logic re-triggers the build
// step just like editing a script does.
const pipelineSource = "pkg/scripts/transclude.go"

// WriteDeps writes a make-style dependency manifest declaring that target
// must be rebuilt when the pipeline itself or any discovered script
// changes. This is a static declaration consumed by the outer build, not
// filesystem watching.
func WriteDeps(w io.Writer, target string, inputs []string) error {
	if _, err := fmt.Fprintf(w, "%s: %s", target, pipelineSource); err != nil {
		return err
	}
	for _, input := range inputs {
		if _, err := fmt.Fprintf(w, " \\\n\t%s", input); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w)
	return err
}

// WriteDepsFile writes the dependency manifest to path, overwriting any
// previous manifest.
func WriteDepsFile(path, target string, inputs []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create deps manifest %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteDeps(file, target, inputs); err != nil {
		return fmt.Errorf("failed to write deps manifest %s: %w", path, err)
	}
	return nil
}
