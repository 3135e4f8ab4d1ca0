// Package sysinfo gathers the facts a fetch run prints. Each platform backend
// implements Probe; the Aggregator calls every accessor once, concurrently,
// and returns the results in a fixed display order.
package sysinfo

import "strings"

// UnknownID is what DistroID returns when the platform cannot name itself.
const UnknownID = "unknown"

// Probe exposes one read-only accessor per fact.
//
// Single-valued facts return the value and whether it is present. Multi-valued
// facts return an empty slice when absent. No accessor returns an error or
// panics on missing data; backends fold every failure into "absent".
type Probe interface {
	// OS is the operating system name and version.
	OS() (string, bool)
	// Host is the machine or board model.
	Host() (string, bool)
	Kernel() (string, bool)
	Hostname() (string, bool)
	Username() (string, bool)
	CPU() (string, bool)
	// Memory is "used / total".
	Memory() (string, bool)
	// Disks holds one "used / total (mount)" entry per mounted volume.
	Disks() []string
	Battery() (string, bool)
	Locale() (string, bool)
	Theme() (string, bool)
	WindowManager() (string, bool)
	DesktopEnvironment() (string, bool)
	Shell() (string, bool)
	// Displays holds one resolution per connected output.
	Displays() []string
	GPUs() []string
	// IP lists local addresses.
	IP() []string
	Uptime() (string, bool)
	Icons() (string, bool)
	Cursor() (string, bool)
	SystemFont() (string, bool)
	TerminalName() (string, bool)
	TerminalFont() (string, bool)
	// DistroID names the platform for icon lookup. It never fails; see
	// UnknownID.
	DistroID() string
}

// present maps the empty-string convention of the leaf helpers onto the
// (value, ok) form of the Probe accessors.
func present(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != ""
}

// compact trims every value and drops the empty ones.
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// firstOf returns the first non-blank value, trimmed.
func firstOf(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// cleanDMI drops the placeholder strings firmware vendors leave behind.
func cleanDMI(s string) string {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "to be filled by o.e.m.", "system product name", "system manufacturer",
		"default string", "not applicable", "none", "o.e.m.":
		return ""
	}
	return s
}
