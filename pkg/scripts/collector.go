// Package scripts implements the build-time pipeline that turns a tree of
// modular shell snippets into self-contained, embeddable scripts.
package scripts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// shebang is the two-byte marker every candidate script must start with.
var shebang = []byte("#!")

// Collect recursively enumerates root and returns the candidate script
// paths. A file qualifies when its extension is absent or ".sh" and its
// first two bytes are the shebang marker. Everything else is silently
// excluded. An unreadable directory is an error; the caller treats it as
// fatal because the catalog must be complete at release time.
func Collect(root string) ([]string, error) {
	var candidates []string

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read script directory %s: %w", root, err)
	}

	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		if entry.IsDir() {
			nested, err := Collect(path)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, nested...)
			continue
		}
		if isCandidate(path) {
			candidates = append(candidates, path)
		}
	}

	return candidates, nil
}

// isCandidate reports whether path passes the script-candidate test.
func isCandidate(path string) bool {
	return hasShellExt(path) && startsWithShebang(path)
}

// hasShellExt reports whether path has no extension or the ".sh" extension.
func hasShellExt(path string) bool {
	ext := filepath.Ext(path)
	return ext == "" || ext == ".sh"
}

// startsWithShebang sniffs the first two bytes of the file. Unreadable
// files simply fail the test here; if the file later turns out to matter
// the flattener reports the read error.
func startsWithShebang(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	defer file.Close()

	buf := make([]byte, 2)
	n, err := file.Read(buf)
	return err == nil && n == 2 && string(buf) == string(shebang)
}

// relativeTo returns path relative to root, for mirroring the source
// layout under the destination root.
func relativeTo(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", fmt.Errorf("script %s is not under %s: %w", path, root, err)
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("script %s is not under %s", path, root)
	}
	return rel, nil
}
