package catalog

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/jaspreet-dot-casa/sysup/pkg/sysinfo"
	"gopkg.in/yaml.v3"
)

// Entry is one runnable action in the catalog.
type Entry struct {
	// Name is the display name shown in the action list.
	Name string `yaml:"name"`

	// Description is a one-line summary.
	Description string `yaml:"description"`

	// Script is the asset path of the flattened script, relative to the
	// assets root (e.g. "system/update.sh").
	Script string `yaml:"script"`

	// RequiresPkgManager marks entries that need a known package manager.
	// They are filtered out on systems where none was resolved.
	RequiresPkgManager bool `yaml:"requires_pkg_manager"`
}

// Source returns the flattened script bytes for the entry.
func (e Entry) Source() ([]byte, error) {
	data, err := fs.ReadFile(Assets, path.Join("assets", e.Script))
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded script %s: %w", e.Script, err)
	}
	return data, nil
}

// Catalog is the ordered, immutable set of entries.
type Catalog struct {
	Entries []Entry `yaml:"entries"`
}

// Load parses the embedded metadata and verifies every referenced script
// is present in the embedded assets. Both are bundled at build time, so a
// failure here means the catalog was released broken.
func Load() (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(rawMetadata, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog metadata: %w", err)
	}

	for _, entry := range c.Entries {
		if _, err := fs.Stat(Assets, path.Join("assets", entry.Script)); err != nil {
			return nil, fmt.Errorf("catalog entry %q references missing script %s: %w",
				entry.Name, entry.Script, err)
		}
	}

	return &c, nil
}

// ForSystem returns the entries usable on the given system. Entries that
// require a package manager are dropped when the system has none; the rest
// are always offered.
func (c *Catalog) ForSystem(sys *sysinfo.System) []Entry {
	usable := make([]Entry, 0, len(c.Entries))
	for _, entry := range c.Entries {
		if entry.RequiresPkgManager && sys.PackageManager == nil {
			continue
		}
		usable = append(usable, entry)
	}
	return usable
}
