package sysinfo

// PackageManager names the executable used to manage software on a
// distribution. Values come from a fixed table; there is no runtime
// registration.
type PackageManager struct {
	name string
}

// Name returns the manager's invocation name (e.g. "apt-get").
func (p *PackageManager) Name() string {
	return p.name
}

// Known package managers for the supported distributions.
var (
	dnf    = PackageManager{name: "dnf"}
	aptGet = PackageManager{name: "apt-get"}
	pacman = PackageManager{name: "pacman"}
	zypper = PackageManager{name: "zypper"}
)

// ResolvePackageManager maps a normalized distro id to its package manager.
// An unmapped id returns nil, which callers must treat as a supported state
// rather than a failure.
func ResolvePackageManager(id string) *PackageManager {
	switch id {
	case "fedora":
		return &dnf
	case "debian":
		return &aptGet
	case "arch":
		return &pacman
	case "opensuse":
		return &zypper
	default:
		return nil
	}
}
