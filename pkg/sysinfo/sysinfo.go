// Package sysinfo identifies the host distribution and its package manager.
//
// A System is probed exactly once at process start and shared read-only
// afterwards. The probe reads the os-release file, which the platform
// contract guarantees to exist on supported systems; its absence is a fatal
// precondition failure, while missing individual fields degrade to "unknown".
package sysinfo

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// OSReleasePath is the platform metadata file read by Probe.
const OSReleasePath = "/etc/os-release"

// fallback is used for identification fields absent from the metadata file.
const fallback = "unknown"

// System describes the host distribution.
type System struct {
	// ID is the normalized lowercase distro identifier (e.g. "debian").
	ID string

	// PrettyName is the human-readable distribution name.
	PrettyName string

	// PackageManager is the manager associated with ID, or nil when no
	// known manager applies. nil is a normal state: manager-independent
	// actions remain available.
	PackageManager *PackageManager
}

// Probe reads the default os-release file and returns the system descriptor.
func Probe() (*System, error) {
	return ProbeFile(OSReleasePath)
}

// ProbeFile reads an os-release style file at the given path.
// A missing or unreadable file is an error; missing fields are not.
func ProbeFile(path string) (*System, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read os-release at %s: %w", path, err)
	}
	defer file.Close()

	info := make(map[string]string)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		info[strings.ToLower(key)] = unquote(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read os-release at %s: %w", path, err)
	}

	sys := &System{
		ID:         fallback,
		PrettyName: fallback,
	}
	if id, ok := info["id"]; ok {
		sys.ID = id
	}
	if name, ok := info["pretty_name"]; ok {
		sys.PrettyName = name
	}
	sys.PackageManager = ResolvePackageManager(sys.ID)

	return sys, nil
}

// unquote strips at most one layer of surrounding double quotes.
func unquote(s string) string {
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		return s[1 : len(s)-1]
	}
	return s
}

// String returns a short description suitable for logs and the sysinfo command.
func (s *System) String() string {
	pm := "none"
	if s.PackageManager != nil {
		pm = s.PackageManager.Name()
	}
	return fmt.Sprintf("%s (id: %s, package manager: %s)", s.PrettyName, s.ID, pm)
}
