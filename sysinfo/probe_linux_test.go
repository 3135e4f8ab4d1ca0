package sysinfo

import (
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jaypipes/pcidb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files below root; keys are slash-separated paths.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func testLinuxProbe(t *testing.T, files map[string]string, env map[string]string) *linuxProbe {
	t.Helper()
	root := t.TempDir()
	writeTree(t, root, files)
	p := newLinuxProbe(nil, root)
	p.getenv = fakeEnv(env)
	p.product = func() (string, string) { return "", "" }
	p.machine = "x86_64"
	p.release = "6.9.1-arch1-1"
	p.ppid = 4242
	return p
}

func TestLinuxProbe_OSRelease(t *testing.T) {
	tests := []struct {
		name   string
		data   string
		wantOS string
		wantID string
	}{
		{
			name:   "arch",
			data:   "NAME=\"Arch Linux\"\nPRETTY_NAME=\"Arch Linux\"\nID=arch\nBUILD_ID=rolling\n",
			wantOS: "Arch Linux x86_64",
			wantID: "arch",
		},
		{
			name:   "ubuntu",
			data:   "# comment\nNAME=\"Ubuntu\"\nVERSION_ID=\"24.04\"\nVERSION=\"24.04 LTS (Noble Numbat)\"\nID=ubuntu\n",
			wantOS: "Ubuntu 24.04 x86_64",
			wantID: "ubuntu",
		},
		{
			name:   "codename only",
			data:   "NAME=Debian\nVERSION_CODENAME=trixie\nID=Debian\n",
			wantOS: "Debian trixie x86_64",
			wantID: "debian",
		},
		{
			name:   "no id",
			data:   "PRETTY_NAME=\"Custom x86_64 build\"\n",
			wantOS: "Custom x86_64 build",
			wantID: UnknownID,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testLinuxProbe(t, map[string]string{"etc/os-release": tc.data}, nil)
			got, ok := p.OS()
			require.True(t, ok)
			assert.Equal(t, tc.wantOS, got)
			assert.Equal(t, tc.wantID, p.DistroID())
		})
	}
}

func TestLinuxProbe_MissingOSRelease(t *testing.T) {
	p := testLinuxProbe(t, nil, nil)
	_, ok := p.OS()
	assert.False(t, ok)
	assert.Equal(t, UnknownID, p.DistroID())
}

func TestLinuxProbe_FallbackOSRelease(t *testing.T) {
	p := testLinuxProbe(t, map[string]string{"usr/lib/os-release": "NAME=Fedora Linux\nVERSION_ID=40\nID=fedora\n"}, nil)
	got, ok := p.OS()
	require.True(t, ok)
	assert.Equal(t, "Fedora Linux 40 x86_64", got)
	assert.Equal(t, "fedora", p.DistroID())
}

func TestLinuxProbe_Host(t *testing.T) {
	firmware := map[string]string{
		"sys/class/dmi/id/product_name":   "To Be Filled By O.E.M.\n",
		"sys/class/dmi/id/product_family": "ThinkPad T14 Gen 3\n",
	}
	tests := []struct {
		name         string
		vendor, prod string
		want         string
	}{
		{"firmware files", "", "", "ThinkPad T14 Gen 3"},
		{"vendor and product", "LENOVO", "21AH00BSGE", "LENOVO 21AH00BSGE"},
		{"product carries vendor", "Dell Inc.", "Dell Inc. XPS 15", "Dell Inc. XPS 15"},
		{"qemu", "", "Standard PC (Q35 + ICH9, 2009)", "KVM/QEMU Standard PC (Q35 + ICH9, 2009)"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := testLinuxProbe(t, firmware, nil)
			p.product = func() (string, string) { return tc.vendor, tc.prod }
			got, ok := p.Host()
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLinuxProbe_ProductReadOnce(t *testing.T) {
	p := testLinuxProbe(t, nil, nil)
	var calls atomic.Int32
	p.product = func() (string, string) {
		calls.Add(1)
		return "LENOVO", "21AH00BSGE"
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			host, _ := p.Host()
			assert.Equal(t, "LENOVO 21AH00BSGE", host)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), calls.Load())
}

func TestLinuxProbe_HostWSL(t *testing.T) {
	p := testLinuxProbe(t, nil, map[string]string{"WSL_DISTRO_NAME": "Ubuntu"})
	got, ok := p.Host()
	require.True(t, ok)
	assert.Equal(t, "Windows Subsystem for Linux", got)
}

func TestLinuxProbe_GTKSettings(t *testing.T) {
	p := testLinuxProbe(t, map[string]string{
		"home/ada/.config/gtk-3.0/settings.ini": "[Settings]\n" +
			"gtk-theme-name=Adwaita-dark\n" +
			"gtk-icon-theme-name = Papirus\n" +
			"gtk-font-name=Cantarell 11\n" +
			"; gtk-cursor-theme-name=commented\n",
	}, map[string]string{"HOME": "/home/ada"})

	theme, ok := p.Theme()
	require.True(t, ok)
	assert.Equal(t, "Adwaita-dark", theme)

	icons, _ := p.Icons()
	assert.Equal(t, "Papirus", icons)

	font, _ := p.SystemFont()
	assert.Equal(t, "Cantarell 11", font)

	_, ok = p.Cursor()
	assert.False(t, ok)
}

func TestLinuxProbe_GTKSettingsCachedOnce(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "cfg", "gtk-3.0", "settings.ini")
	writeTree(t, root, map[string]string{"cfg/gtk-3.0/settings.ini": "gtk-theme-name=Breeze\n"})

	p := newLinuxProbe(nil, root)
	p.getenv = fakeEnv(map[string]string{"XDG_CONFIG_HOME": "/cfg"})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			theme, ok := p.Theme()
			assert.True(t, ok)
			assert.Equal(t, "Breeze", theme)
		}()
	}
	wg.Wait()

	require.NoError(t, os.WriteFile(path, []byte("gtk-theme-name=Changed\n"), 0o644))
	theme, _ := p.Theme()
	assert.Equal(t, "Breeze", theme)
}

func TestLinuxProbe_DRM(t *testing.T) {
	p := testLinuxProbe(t, map[string]string{
		"sys/class/drm/card0-eDP-1/modes":     "2560x1600\n1920x1200\n",
		"sys/class/drm/card0-HDMI-A-1/modes":  "",
		"sys/class/drm/card1-DP-2/modes":      "3840x2160\n",
		"sys/class/drm/card0/device/vendor":   "0x8086\n",
		"sys/class/drm/card0/device/device":   "0x46a6\n",
		"sys/class/drm/card1/device/vendor":   "0x10de\n",
		"sys/class/drm/card1/device/device":   "0x2484\n",
		"sys/class/drm/card2/device/vendor":   "garbage\n",
		"sys/class/drm/renderD128/dev":        "226:128\n",
		"usr/share/hwdata/pci.ids":            pciIDsFixture,
		"sys/class/drm/version":               "drm 1.1.0\n",
		"sys/class/drm/card1-DP-2/enabled":    "enabled\n",
		"sys/class/drm/card0-eDP-1/status":    "connected\n",
		"sys/class/drm/card0-HDMI-A-1/status": "disconnected\n",
	}, nil)

	assert.Equal(t, []string{"2560x1600", "3840x2160"}, p.Displays())
	assert.Equal(t, []string{
		"Intel Alder Lake-P GT2 [Iris Xe Graphics]",
		"NVIDIA GA104 [GeForce RTX 3070]",
	}, p.GPUs())
}

const pciIDsFixture = `# pci.ids fixture
10de  NVIDIA Corporation
	2482  GA104 [GeForce RTX 3070 Ti]
	2484  GA104 [GeForce RTX 3070]
		1043 87b8  ROG STRIX
8086  Intel Corporation
	46a6  Alder Lake-P GT2 [Iris Xe Graphics]
`

func TestLookupPCI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pci.ids")
	require.NoError(t, os.WriteFile(path, []byte(pciIDsFixture), 0o644))
	db, err := pcidb.New(pcidb.WithDirectPath(path))
	require.NoError(t, err)

	vendor, device := lookupPCI(db, 0x10de, 0x2482)
	assert.Equal(t, "NVIDIA Corporation", vendor)
	assert.Equal(t, "GA104 [GeForce RTX 3070 Ti]", device)

	vendor, device = lookupPCI(db, 0x10de, 0x9999)
	assert.Equal(t, "NVIDIA Corporation", vendor)
	assert.Empty(t, device)

	vendor, _ = lookupPCI(db, 0x1002, 0x1)
	assert.Empty(t, vendor)
}

func TestLinuxProbe_GPUWithoutDatabase(t *testing.T) {
	p := testLinuxProbe(t, map[string]string{
		"sys/class/drm/card0/device/vendor": "0x1002\n",
		"sys/class/drm/card0/device/device": "0x73bf\n",
	}, nil)
	assert.Equal(t, []string{"AMD Device 73bf"}, p.GPUs())
}

func TestLinuxProbe_Battery(t *testing.T) {
	p := testLinuxProbe(t, map[string]string{
		"sys/class/power_supply/BAT0/capacity": "87\n",
		"sys/class/power_supply/BAT0/status":   "Discharging\n",
		"sys/class/power_supply/BAT1/capacity": "100\n",
		"sys/class/power_supply/BAT1/status":   "Unknown\n",
		"sys/class/power_supply/AC/online":     "1\n",
	}, nil)
	got, ok := p.Battery()
	require.True(t, ok)
	assert.Equal(t, "87% Discharging, 100%", got)

	p = testLinuxProbe(t, nil, nil)
	_, ok = p.Battery()
	assert.False(t, ok)
}

func TestLinuxProbe_ShellAndWM(t *testing.T) {
	p := testLinuxProbe(t, map[string]string{
		"proc/4242/comm": "fish\n",
		"proc/1/comm":    "systemd\n",
		"proc/812/comm":  "kwin_wayland\n",
		"proc/self/comm": "kwin_x11\n",
	}, map[string]string{"SHELL": "/bin/bash"})

	shell, ok := p.Shell()
	require.True(t, ok)
	assert.Equal(t, "fish", shell)

	wm, ok := p.WindowManager()
	require.True(t, ok)
	assert.Equal(t, "KWin", wm)

	p.ppid = 1 << 30
	shell, _ = p.Shell()
	assert.Equal(t, "bash", shell)
}

func TestLinuxProbe_DesktopEnvironment(t *testing.T) {
	p := testLinuxProbe(t, nil, map[string]string{"XDG_CURRENT_DESKTOP": "KDE", "XDG_SESSION_TYPE": "wayland"})
	de, ok := p.DesktopEnvironment()
	require.True(t, ok)
	assert.Equal(t, "KDE (wayland)", de)

	p = testLinuxProbe(t, nil, map[string]string{"XDG_CURRENT_DESKTOP": "GNOME"})
	de, _ = p.DesktopEnvironment()
	assert.Equal(t, "GNOME", de)

	p = testLinuxProbe(t, nil, nil)
	_, ok = p.DesktopEnvironment()
	assert.False(t, ok)
}

func TestLinuxProbe_Kernel(t *testing.T) {
	p := testLinuxProbe(t, nil, nil)
	got, ok := p.Kernel()
	require.True(t, ok)
	assert.Equal(t, "6.9.1-arch1-1", got)
}
