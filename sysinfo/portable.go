package sysinfo

import (
	"net"
	"os"
	"os/user"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"prismfetch/logging"
)

// portable implements the facts that read the same way on every native
// backend. Backends embed it and override what they know better.
type portable struct {
	log    *logging.Logger
	getenv func(string) string
}

func newPortable(log *logging.Logger) portable {
	return portable{log: log, getenv: os.Getenv}
}

func (p portable) Hostname() (string, bool) {
	name, err := os.Hostname()
	if err != nil {
		p.log.Debug("hostname: %v", err)
		return "", false
	}
	return present(name)
}

func (p portable) Username() (string, bool) {
	if u, err := user.Current(); err == nil {
		name := u.Username
		// DOMAIN\user on Windows
		if i := strings.LastIndexByte(name, '\\'); i >= 0 {
			name = name[i+1:]
		}
		if name, ok := present(name); ok {
			return name, true
		}
	}
	return present(p.getenv("USER"))
}

func (p portable) CPU() (string, bool) {
	infos, err := cpu.Info()
	if err != nil || len(infos) == 0 {
		p.log.Debug("cpu info: %v", err)
		return "", false
	}
	threads, err := cpu.Counts(true)
	if err != nil {
		threads = 0
	}
	return present(formatCPU(infos[0].ModelName, threads, infos[0].Mhz))
}

func (p portable) Memory() (string, bool) {
	vm, err := mem.VirtualMemory()
	if err != nil || vm.Total == 0 {
		p.log.Debug("virtual memory: %v", err)
		return "", false
	}
	used := vm.Total - vm.Available
	if vm.Available > vm.Total {
		used = vm.Used
	}
	return formatUsage(used, vm.Total), true
}

func (p portable) Disks() []string {
	parts, err := disk.Partitions(false)
	if err != nil {
		p.log.Debug("disk partitions: %v", err)
		return nil
	}
	var out []string
	for _, part := range filterPartitions(parts) {
		usage, err := disk.Usage(part.Mountpoint)
		if err != nil || usage.Used == 0 {
			continue
		}
		out = append(out, formatUsage(usage.Used, usage.Total)+" ("+part.Mountpoint+")")
	}
	return out
}

// filterPartitions drops pseudo devices (loop, ram, floppy), snap mounts and
// repeated mount points.
func filterPartitions(parts []disk.PartitionStat) []disk.PartitionStat {
	seen := make(map[string]bool, len(parts))
	out := make([]disk.PartitionStat, 0, len(parts))
	for _, part := range parts {
		dev, mount := part.Device, part.Mountpoint
		switch {
		case mount == "" || seen[mount]:
			continue
		case strings.HasPrefix(dev, "/dev/loop"), strings.HasPrefix(dev, "/dev/ram"), strings.HasPrefix(dev, "/dev/fd"):
			continue
		case strings.Contains(mount, "/var/snap"):
			continue
		case strings.HasPrefix(dev, "/") && !strings.HasPrefix(dev, "/dev/") && !strings.HasPrefix(dev, "/rpool/"):
			continue
		}
		seen[mount] = true
		out = append(out, part)
	}
	return out
}

func (p portable) Uptime() (string, bool) {
	secs, err := host.Uptime()
	if err != nil {
		p.log.Debug("uptime: %v", err)
		return "", false
	}
	return formatUptime(time.Duration(secs) * time.Second), true
}

// IP lists the IPv4 addresses of every interface that is up, skipping
// loopback and link-local addresses.
func (p portable) IP() []string {
	ifaces, err := net.Interfaces()
	if err != nil {
		p.log.Debug("interfaces: %v", err)
		return nil
	}
	var addrs []net.Addr
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		a, err := iface.Addrs()
		if err != nil {
			continue
		}
		addrs = append(addrs, a...)
	}
	return ipv4Strings(addrs)
}

func ipv4Strings(addrs []net.Addr) []string {
	seen := make(map[string]bool, len(addrs))
	var out []string
	for _, a := range addrs {
		var ip net.IP
		switch v := a.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		}
		ip4 := ip.To4()
		if ip4 == nil || ip4.IsLoopback() || ip4.IsLinkLocalUnicast() {
			continue
		}
		if s := ip4.String(); !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}

// Locale is the first non-empty of LANG, LC_ALL and LC_MESSAGES.
func (p portable) Locale() (string, bool) {
	return present(firstEnv(p.getenv, "LANG", "LC_ALL", "LC_MESSAGES"))
}

// TerminalName attempts to identify the terminal emulator being used.
//
// Returns:
//   - "Windows Terminal" inside a Windows Terminal session
//   - The TERM_PROGRAM value set by most macOS and cross-platform terminals
//   - The TERM value as fallback
func (p portable) TerminalName() (string, bool) {
	if p.getenv("WT_SESSION") != "" {
		return "Windows Terminal", true
	}
	if term := p.getenv("TERM_PROGRAM"); term != "" {
		return present(term)
	}
	return present(p.getenv("TERM"))
}

func (p portable) TerminalFont() (string, bool) { return "", false }

// Shell falls back to the login shell named by SHELL.
func (p portable) Shell() (string, bool) {
	shell := p.getenv("SHELL")
	if i := strings.LastIndexAny(shell, `/\`); i >= 0 {
		shell = shell[i+1:]
	}
	return present(shell)
}

func firstEnv(getenv func(string) string, keys ...string) string {
	for _, k := range keys {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
	}
	return ""
}
