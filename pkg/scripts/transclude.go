package scripts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

// Include directive prefixes. Case-sensitive; the remainder of the line is
// a path relative to the including file's directory.
const (
	dotPrefix    = ". "
	sourcePrefix = "source "
)

// Flatten rewrites the script at src into include-free form. Each include
// directive line is replaced verbatim by the raw contents of its target.
// Substituted content is not re-scanned: inlining is exactly one level
// deep. Nested includes would need their own expansion pass, which is a
// deliberate behavior change rather than a fix, so it is not done here.
func Flatten(src string) ([]byte, error) {
	contents, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", src, err)
	}

	dir := filepath.Dir(src)
	lines := strings.Split(string(contents), "\n")
	out := make([]string, len(lines))

	for i, line := range lines {
		target, ok := includeTarget(line)
		if !ok {
			out[i] = line
			continue
		}
		included, err := os.ReadFile(filepath.Join(dir, target))
		if err != nil {
			return nil, fmt.Errorf("failed to inline %s into %s: %w", target, src, err)
		}
		out[i] = string(included)
	}

	return []byte(strings.Join(out, "\n")), nil
}

// includeTarget extracts the include path from a directive line, or
// reports that the line is not a directive.
func includeTarget(line string) (string, bool) {
	if rest, ok := strings.CutPrefix(line, dotPrefix); ok {
		return rest, true
	}
	if rest, ok := strings.CutPrefix(line, sourcePrefix); ok {
		return rest, true
	}
	return "", false
}

// Pipeline flattens every candidate script under SrcRoot into the same
// relative path under DstRoot.
type Pipeline struct {
	SrcRoot string
	DstRoot string

	// Validate parses each flattened output as POSIX shell and fails the
	// run on syntax errors. Left off only by tests that construct
	// deliberately unparseable fixtures.
	Validate bool
}

// NewPipeline returns a validating pipeline over the given roots.
func NewPipeline(srcRoot, dstRoot string) *Pipeline {
	return &Pipeline{SrcRoot: srcRoot, DstRoot: dstRoot, Validate: true}
}

// Run executes the pipeline and returns the input files processed, in
// collection order, for the dependency manifest. Destination directories
// are created as needed and existing outputs are overwritten. Any read
// failure aborts the whole run: there is no partial catalog.
func (p *Pipeline) Run() ([]string, error) {
	inputs, err := Collect(p.SrcRoot)
	if err != nil {
		return nil, err
	}

	for _, src := range inputs {
		rel, err := relativeTo(p.SrcRoot, src)
		if err != nil {
			return nil, err
		}

		flat, err := Flatten(src)
		if err != nil {
			return nil, err
		}

		if p.Validate {
			if err := checkSyntax(flat, rel); err != nil {
				return nil, err
			}
		}

		dst := filepath.Join(p.DstRoot, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create output directory for %s: %w", rel, err)
		}
		if err := os.WriteFile(dst, flat, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write flattened script %s: %w", dst, err)
		}
	}

	return inputs, nil
}

// checkSyntax parses the flattened script to catch broken output at build
// time instead of on a user's machine.
func checkSyntax(script []byte, name string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	if _, err := parser.Parse(bytes.NewReader(script), name); err != nil {
		return fmt.Errorf("flattened script %s is not valid shell: %w", name, err)
	}
	return nil
}
