package sysinfo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeOSRelease(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "os-release")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProbeFile(t *testing.T) {
	path := writeOSRelease(t, `NAME="Ubuntu"
ID=ubuntu
PRETTY_NAME="Ubuntu 22.04"
VERSION_ID="22.04"
`)

	sys, err := ProbeFile(path)

	require.NoError(t, err)
	assert.Equal(t, "ubuntu", sys.ID)
	assert.Equal(t, "Ubuntu 22.04", sys.PrettyName)
}

func TestProbeFile_QuotesStripped(t *testing.T) {
	path := writeOSRelease(t, `PRETTY_NAME="Ubuntu 22.04"`)

	sys, err := ProbeFile(path)

	require.NoError(t, err)
	assert.Equal(t, "Ubuntu 22.04", sys.PrettyName)
}

func TestProbeFile_SingleQuoteLayer(t *testing.T) {
	// Only one layer of quotes is removed.
	path := writeOSRelease(t, `PRETTY_NAME=""quoted""`)

	sys, err := ProbeFile(path)

	require.NoError(t, err)
	assert.Equal(t, `"quoted"`, sys.PrettyName)
}

func TestProbeFile_MissingFieldsFallBack(t *testing.T) {
	path := writeOSRelease(t, `VERSION_ID="41"`)

	sys, err := ProbeFile(path)

	require.NoError(t, err)
	assert.Equal(t, "unknown", sys.ID)
	assert.Equal(t, "unknown", sys.PrettyName)
	assert.Nil(t, sys.PackageManager)
}

func TestProbeFile_SplitsOnFirstEquals(t *testing.T) {
	path := writeOSRelease(t, `ID=arch=btw`)

	sys, err := ProbeFile(path)

	require.NoError(t, err)
	assert.Equal(t, "arch=btw", sys.ID)
}

func TestProbeFile_KeysLowercased(t *testing.T) {
	path := writeOSRelease(t, `Id=debian`)

	sys, err := ProbeFile(path)

	require.NoError(t, err)
	assert.Equal(t, "debian", sys.ID)
}

func TestProbeFile_MissingFileIsFatal(t *testing.T) {
	_, err := ProbeFile(filepath.Join(t.TempDir(), "nope"))

	assert.Error(t, err)
}

func TestProbeFile_ResolvesManager(t *testing.T) {
	path := writeOSRelease(t, `ID=debian
PRETTY_NAME="Debian GNU/Linux 12 (bookworm)"
`)

	sys, err := ProbeFile(path)

	require.NoError(t, err)
	require.NotNil(t, sys.PackageManager)
	assert.Equal(t, "apt-get", sys.PackageManager.Name())
}

func TestResolvePackageManager(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"fedora", "dnf"},
		{"debian", "apt-get"},
		{"arch", "pacman"},
		{"opensuse", "zypper"},
	}

	for _, tt := range tests {
		pm := ResolvePackageManager(tt.id)
		require.NotNil(t, pm, tt.id)
		assert.Equal(t, tt.want, pm.Name())
	}
}

func TestResolvePackageManager_UnknownIsNil(t *testing.T) {
	assert.Nil(t, ResolvePackageManager("unknownos"))
	assert.Nil(t, ResolvePackageManager(""))
	assert.Nil(t, ResolvePackageManager("unknown"))
}

func TestSystemString(t *testing.T) {
	sys := &System{ID: "debian", PrettyName: "Debian 12", PackageManager: ResolvePackageManager("debian")}
	assert.Equal(t, "Debian 12 (id: debian, package manager: apt-get)", sys.String())

	none := &System{ID: "unknown", PrettyName: "unknown"}
	assert.Equal(t, "unknown (id: unknown, package manager: none)", none.String())
}
