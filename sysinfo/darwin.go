//go:build darwin && !ios

package sysinfo

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/sys/unix"
	"howett.net/plist"

	"prismfetch/logging"
)

const systemVersionPlist = "/System/Library/CoreServices/SystemVersion.plist"

// Native returns the probe for the running platform.
func Native(log *logging.Logger) Probe {
	p := &darwinProbe{portable: newPortable(log)}
	p.version = NewLazy(func() (systemVersion, bool) {
		data, err := os.ReadFile(systemVersionPlist)
		if err != nil {
			log.Debug("read %s: %v", systemVersionPlist, err)
			return systemVersion{}, false
		}
		v, err := parseSystemVersion(data)
		if err != nil {
			log.Debug("decode %s: %v", systemVersionPlist, err)
			return systemVersion{}, false
		}
		return v, true
	})
	return p
}

type darwinProbe struct {
	portable
	version *Lazy[systemVersion]
}

var _ Probe = (*darwinProbe)(nil)

// systemVersion is the part of SystemVersion.plist the probe reads.
type systemVersion struct {
	ProductName               string `plist:"ProductName"`
	ProductVersion            string `plist:"ProductVersion"`
	ProductUserVisibleVersion string `plist:"ProductUserVisibleVersion"`
	ProductBuildVersion       string `plist:"ProductBuildVersion"`
}

func parseSystemVersion(data []byte) (systemVersion, error) {
	var v systemVersion
	_, err := plist.Unmarshal(data, &v)
	return v, err
}

// macCodename names a release from its user-visible version.
func macCodename(version string) string {
	parts := strings.SplitN(version, ".", 3)
	major := parts[0]
	if major == "10" && len(parts) > 1 {
		names := map[string]string{
			"16": "Big Sur", "15": "Catalina", "14": "Mojave", "13": "High Sierra",
			"12": "Sierra", "11": "El Capitan", "10": "Yosemite", "9": "Mavericks",
			"8": "Mountain Lion", "7": "Lion", "6": "Snow Leopard", "5": "Leopard",
			"4": "Tiger", "3": "Panther", "2": "Jaguar", "1": "Puma", "0": "Cheetah",
		}
		return names[parts[1]]
	}
	names := map[string]string{
		"26": "Tahoe", "15": "Sequoia", "14": "Sonoma", "13": "Ventura",
		"12": "Monterey", "11": "Big Sur",
	}
	return names[major]
}

// macOSName renders "ProductName Codename Version", skipping an unknown
// codename.
func macOSName(info systemVersion) string {
	name := strings.TrimSpace(info.ProductName)
	version := firstOf(info.ProductUserVisibleVersion, info.ProductVersion)
	if name == "" {
		return ""
	}
	if codename := macCodename(version); codename != "" {
		name += " " + codename
	}
	if version != "" {
		name += " " + version
	}
	return name
}

func (p *darwinProbe) OS() (string, bool) {
	info, ok := p.version.Get()
	if !ok {
		return "", false
	}
	return present(macOSName(info))
}

func (p *darwinProbe) DistroID() string { return "mac" }

func (p *darwinProbe) Host() (string, bool) {
	model, err := unix.Sysctl("hw.model")
	if err != nil {
		return "", false
	}
	return present(model)
}

func (p *darwinProbe) Kernel() (string, bool) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return "", false
	}
	return present(fmt.Sprintf("%s %s", unix.ByteSliceToString(uts.Sysname[:]), unix.ByteSliceToString(uts.Release[:])))
}

func (p *darwinProbe) DesktopEnvironment() (string, bool) { return "Aqua", true }
func (p *darwinProbe) WindowManager() (string, bool)      { return "Quartz Compositor", true }

func (p *darwinProbe) Battery() (string, bool)    { return "", false }
func (p *darwinProbe) Theme() (string, bool)      { return "", false }
func (p *darwinProbe) Icons() (string, bool)      { return "", false }
func (p *darwinProbe) Cursor() (string, bool)     { return "", false }
func (p *darwinProbe) SystemFont() (string, bool) { return "", false }
func (p *darwinProbe) Displays() []string         { return nil }
func (p *darwinProbe) GPUs() []string             { return nil }
