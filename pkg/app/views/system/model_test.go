package system

import (
	"testing"

	"github.com/jaspreet-dot-casa/sysup/pkg/app"
	"github.com/jaspreet-dot-casa/sysup/pkg/sysinfo"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	m := New(&sysinfo.System{ID: "arch", PrettyName: "Arch Linux"})

	assert.Equal(t, app.TabSystem, m.ID())
	assert.Equal(t, "System", m.Name())
	assert.Equal(t, "2", m.ShortKey())
}

func TestView_WithPackageManager(t *testing.T) {
	sys := &sysinfo.System{
		ID:             "fedora",
		PrettyName:     "Fedora Linux 41",
		PackageManager: sysinfo.ResolvePackageManager("fedora"),
	}
	m := New(sys)

	view := m.View()

	assert.Contains(t, view, "Fedora Linux 41")
	assert.Contains(t, view, "fedora")
	assert.Contains(t, view, "dnf")
	assert.Contains(t, view, "All actions are available")
}

func TestView_NoPackageManager(t *testing.T) {
	m := New(&sysinfo.System{ID: "unknown", PrettyName: "unknown"})

	view := m.View()

	assert.Contains(t, view, "none detected")
	assert.Contains(t, view, "Package-manager actions are hidden")
}
