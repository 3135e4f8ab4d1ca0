//go:build linux

package sysinfo

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jaypipes/pcidb"
	zsysinfo "github.com/zcalusic/sysinfo"
	"golang.org/x/sys/unix"
	"gopkg.in/ini.v1"

	"prismfetch/logging"
)

// Native returns the probe for the running platform.
func Native(log *logging.Logger) Probe {
	return newLinuxProbe(log, "/")
}

// linuxProbe reads /etc, /proc and /sys below root.
type linuxProbe struct {
	portable
	root string

	// uname release and machine
	release string
	machine string
	ppid    int

	// product reports the DMI vendor and product name; dmi caches it.
	product func() (vendor, name string)

	osRelease *Lazy[map[string]string]
	gtk       *Lazy[map[string]string]
	pciDB     *Lazy[*pcidb.PCIDB]
	dmi       *Lazy[dmiProductInfo]
}

type dmiProductInfo struct {
	vendor, name string
}

var _ Probe = (*linuxProbe)(nil)

func newLinuxProbe(log *logging.Logger, root string) *linuxProbe {
	p := &linuxProbe{
		portable: newPortable(log),
		root:     root,
		ppid:     unix.Getppid(),
		product:  dmiProduct,
	}
	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		p.release = unix.ByteSliceToString(uts.Release[:])
		p.machine = unix.ByteSliceToString(uts.Machine[:])
	}
	p.osRelease = NewLazy(p.loadOSRelease)
	p.gtk = NewLazy(p.loadGTKSettings)
	p.pciDB = NewLazy(p.loadPCIDB)
	p.dmi = NewLazy(p.loadProduct)
	return p
}

func (p *linuxProbe) path(elem ...string) string {
	return filepath.Join(append([]string{p.root}, elem...)...)
}

// readTrim returns the trimmed file content, or "" when it cannot be read.
func readTrim(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// readINI flattens every section of an INI-style file (os-release,
// settings.ini) into one map. Quoted values lose their quotes.
func readINI(path string) (map[string]string, error) {
	f, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:     true,
		IgnoreContinuation:      true,
		SkipUnrecognizableLines: true,
		KeyValueDelimiters:      "=",
	}, path)
	if err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for _, sec := range f.Sections() {
		for k, v := range sec.KeysHash() {
			out[k] = v
		}
	}
	return out, nil
}

func (p *linuxProbe) loadOSRelease() (map[string]string, bool) {
	for _, name := range []string{"etc/os-release", "usr/lib/os-release"} {
		rel, err := readINI(p.path(name))
		if err != nil {
			continue
		}
		return rel, true
	}
	p.log.Debug("no os-release under %s", p.root)
	return nil, false
}

func (p *linuxProbe) loadGTKSettings() (map[string]string, bool) {
	config := p.getenv("XDG_CONFIG_HOME")
	if config == "" {
		home := p.getenv("HOME")
		if home == "" {
			return nil, false
		}
		config = filepath.Join(home, ".config")
	}
	for _, dir := range []string{"gtk-3.0", "gtk-4.0"} {
		settings, err := readINI(p.path(config, dir, "settings.ini"))
		if err != nil {
			continue
		}
		return settings, true
	}
	return nil, false
}

var pciIDsFiles = []string{"usr/share/hwdata/pci.ids", "usr/share/misc/pci.ids", "usr/share/pci.ids"}

// loadPCIDB parses the first pci.ids installed below root. Network fetching
// stays off.
func (p *linuxProbe) loadPCIDB() (*pcidb.PCIDB, bool) {
	for _, name := range pciIDsFiles {
		path := p.path(name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		db, err := pcidb.New(pcidb.WithDirectPath(path))
		if err != nil {
			p.log.Debug("load %s: %v", path, err)
			continue
		}
		return db, true
	}
	return nil, false
}

func (p *linuxProbe) loadProduct() (dmiProductInfo, bool) {
	if p.product == nil {
		return dmiProductInfo{}, false
	}
	vendor, name := p.product()
	info := dmiProductInfo{vendor: cleanDMI(vendor), name: cleanDMI(name)}
	return info, info.name != ""
}

// OS is NAME (or PRETTY_NAME, or ID) followed by the version and the machine
// architecture, each added only when the name does not already contain it.
func (p *linuxProbe) OS() (string, bool) {
	rel, ok := p.osRelease.Get()
	if !ok {
		return "", false
	}
	res := firstOf(rel["NAME"], rel["PRETTY_NAME"], rel["ID"])
	if res == "" {
		return "", false
	}
	add := func(s string) {
		if s != "" && !strings.Contains(res, s) {
			res += " " + s
		}
	}
	if v := rel["VERSION_ID"]; v != "" {
		add(v)
	} else {
		add(rel["VERSION_CODENAME"])
		add(rel["VERSION"])
	}
	add(p.machine)
	return present(res)
}

func (p *linuxProbe) DistroID() string {
	rel, ok := p.osRelease.Get()
	if !ok {
		return UnknownID
	}
	if id := strings.ToLower(strings.TrimSpace(rel["ID"])); id != "" {
		return id
	}
	return UnknownID
}

// dmiProduct asks zcalusic/sysinfo for the DMI product record.
func dmiProduct() (vendor, name string) {
	var si zsysinfo.SysInfo
	si.GetSysInfo()
	return si.Product.Vendor, si.Product.Name
}

var dmiHostFiles = []string{
	"sys/class/dmi/id/product_name",
	"sys/devices/virtual/dmi/id/product_name",
	"sys/firmware/devicetree/base/model",
	"sys/firmware/devicetree/base/banner-name",
	"sys/class/dmi/id/product_family",
	"sys/class/dmi/id/product_version",
	"sys/class/dmi/id/product_sku",
	"sys/class/dmi/id/sys_vendor",
}

// Host prefers the DMI vendor and product pair and walks the firmware files
// when that is missing, ending with the WSL environment markers.
func (p *linuxProbe) Host() (string, bool) {
	host := ""
	if info, ok := p.dmi.Get(); ok {
		if info.vendor == "" || strings.HasPrefix(info.name, info.vendor) {
			host = info.name
		} else {
			host = info.vendor + " " + info.name
		}
	}
	for _, f := range dmiHostFiles {
		if host != "" {
			break
		}
		host = cleanDMI(strings.TrimRight(readTrim(p.path(f)), "\x00"))
	}
	if host == "" && firstEnv(p.getenv, "WSL_DISTRO_NAME", "WSL_DISTRO", "WSL_INTEROP") != "" {
		host = "Windows Subsystem for Linux"
	}
	if strings.HasPrefix(host, "Standard PC") {
		host = "KVM/QEMU " + host
	}
	return present(host)
}

func (p *linuxProbe) Kernel() (string, bool) {
	return present(p.release)
}

// Uptime reads CLOCK_BOOTTIME, which keeps counting across suspend.
func (p *linuxProbe) Uptime() (string, bool) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_BOOTTIME, &ts); err != nil {
		p.log.Debug("clock_gettime: %v", err)
		return p.portable.Uptime()
	}
	return formatUptime(time.Duration(ts.Sec) * time.Second), true
}

// Displays lists the preferred mode of every connected DRM output.
func (p *linuxProbe) Displays() []string {
	paths, _ := filepath.Glob(p.path("sys/class/drm/card*-*/modes"))
	sort.Strings(paths)
	var out []string
	for _, path := range paths {
		mode, _, _ := strings.Cut(readTrim(path), "\n")
		if mode = strings.TrimSpace(mode); mode != "" {
			out = append(out, mode)
		}
	}
	return out
}

// GPUs names every DRM card by its PCI vendor and device ids.
func (p *linuxProbe) GPUs() []string {
	cards, _ := filepath.Glob(p.path("sys/class/drm/card*"))
	sort.Strings(cards)
	var out []string
	for _, card := range cards {
		if _, err := strconv.Atoi(strings.TrimPrefix(filepath.Base(card), "card")); err != nil {
			continue
		}
		vendor, err1 := parseHexID(readTrim(filepath.Join(card, "device", "vendor")))
		device, err2 := parseHexID(readTrim(filepath.Join(card, "device", "device")))
		if err1 != nil || err2 != nil {
			continue
		}
		out = append(out, p.gpuName(vendor, device))
	}
	return out
}

func parseHexID(s string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(strings.ToLower(s), "0x"), 16, 16)
	return uint16(v), err
}

func (p *linuxProbe) gpuName(vendor, device uint16) string {
	var vendorName, deviceName string
	if db, ok := p.pciDB.Get(); ok {
		vendorName, deviceName = lookupPCI(db, vendor, device)
	}
	if vendorName == "" {
		vendorName = pciVendors[vendor]
	}
	if vendorName == "" {
		vendorName = fmt.Sprintf("Vendor %04x", vendor)
	}
	vendorName = shortVendor(vendorName)
	if deviceName == "" {
		return fmt.Sprintf("%s Device %04x", vendorName, device)
	}
	return vendorName + " " + deviceName
}

// pciVendors covers the usual display vendors when no pci.ids is installed.
var pciVendors = map[uint16]string{
	0x1002: "AMD",
	0x10de: "NVIDIA",
	0x8086: "Intel",
	0x1af4: "Red Hat VirtIO",
	0x1234: "QEMU",
	0x15ad: "VMware",
	0x80ee: "VirtualBox",
	0x1a03: "ASPEED",
	0x5143: "Qualcomm",
}

func shortVendor(name string) string {
	r := strings.NewReplacer(
		"Advanced Micro Devices, Inc. [AMD/ATI]", "AMD",
		"Intel Corporation", "Intel",
		"NVIDIA Corporation", "NVIDIA",
	)
	return r.Replace(name)
}

// lookupPCI finds a vendor and one of its devices by numeric id.
func lookupPCI(db *pcidb.PCIDB, vendor, device uint16) (vendorName, deviceName string) {
	v, ok := db.Vendors[fmt.Sprintf("%04x", vendor)]
	if !ok {
		return "", ""
	}
	did := fmt.Sprintf("%04x", device)
	for _, product := range v.Products {
		if product.ID == did {
			return v.Name, product.Name
		}
	}
	return v.Name, ""
}

func (p *linuxProbe) DesktopEnvironment() (string, bool) {
	de := strings.TrimSpace(p.getenv("XDG_CURRENT_DESKTOP"))
	if de == "" {
		return "", false
	}
	if session := strings.TrimSpace(p.getenv("XDG_SESSION_TYPE")); session != "" {
		de = fmt.Sprintf("%s (%s)", de, session)
	}
	return de, true
}

// windowManagers maps process names to display names.
var windowManagers = map[string]string{
	"kwin_wayland":  "KWin",
	"kwin_x11":      "KWin",
	"kwin":          "KWin",
	"gnome-shell":   "Mutter",
	"mutter":        "Mutter",
	"muffin":        "Muffin",
	"cinnamon":      "Muffin",
	"marco":         "Marco",
	"xfwm4":         "Xfwm4",
	"openbox":       "Openbox",
	"fluxbox":       "Fluxbox",
	"icewm":         "IceWM",
	"enlightenment": "Enlightenment",
	"compiz":        "Compiz",
	"sway":          "Sway",
	"hyprland":      "Hyprland",
	"i3":            "i3",
	"bspwm":         "bspwm",
	"awesome":       "awesome",
	"dwm":           "dwm",
	"dwl":           "dwl",
	"herbstluftwm":  "herbstluftwm",
	"river":         "river",
	"weston":        "Weston",
	"labwc":         "labwc",
	"wayfire":       "Wayfire",
	"niri":          "niri",
	"qtile":         "Qtile",
	"cosmic-comp":   "cosmic-comp",
}

// WindowManager scans running processes for a known window manager.
func (p *linuxProbe) WindowManager() (string, bool) {
	entries, err := os.ReadDir(p.path("proc"))
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if _, err := strconv.Atoi(e.Name()); err != nil {
			continue
		}
		comm := strings.ToLower(readTrim(p.path("proc", e.Name(), "comm")))
		if name, ok := windowManagers[comm]; ok {
			return name, true
		}
		if strings.HasPrefix(comm, "xmonad") {
			return "xmonad", true
		}
	}
	return "", false
}

// Shell is the command name of the parent process, falling back to SHELL.
func (p *linuxProbe) Shell() (string, bool) {
	if p.ppid > 0 {
		if comm, ok := present(readTrim(p.path("proc", strconv.Itoa(p.ppid), "comm"))); ok {
			return comm, true
		}
	}
	return p.portable.Shell()
}

// Battery joins "capacity% status" for every BAT* supply.
func (p *linuxProbe) Battery() (string, bool) {
	supplies, _ := filepath.Glob(p.path("sys/class/power_supply/BAT*"))
	sort.Strings(supplies)
	var batteries []string
	for _, dir := range supplies {
		capacity := readTrim(filepath.Join(dir, "capacity"))
		if capacity == "" {
			continue
		}
		bat := capacity + "%"
		if status := readTrim(filepath.Join(dir, "status")); status != "" && !strings.Contains(status, "Unknown") {
			bat += " " + status
		}
		batteries = append(batteries, bat)
	}
	return present(strings.Join(batteries, ", "))
}

func (p *linuxProbe) gtkSetting(key string) (string, bool) {
	settings, ok := p.gtk.Get()
	if !ok {
		return "", false
	}
	return present(settings[key])
}

func (p *linuxProbe) Theme() (string, bool)      { return p.gtkSetting("gtk-theme-name") }
func (p *linuxProbe) Icons() (string, bool)      { return p.gtkSetting("gtk-icon-theme-name") }
func (p *linuxProbe) Cursor() (string, bool)     { return p.gtkSetting("gtk-cursor-theme-name") }
func (p *linuxProbe) SystemFont() (string, bool) { return p.gtkSetting("gtk-font-name") }
