//go:build windows
// +build windows

// Package sysinfo - Windows-specific implementation
package sysinfo

import (
	"encoding/binary"
	"fmt"
	"net"
	"os"
	"regexp"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"prismfetch/logging"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	moduser32   = windows.NewLazySystemDLL("user32.dll")
	moddwmapi   = windows.NewLazySystemDLL("dwmapi.dll")
	modiphlpapi = windows.NewLazySystemDLL("iphlpapi.dll")

	procGetTickCount64           = modkernel32.NewProc("GetTickCount64")
	procGlobalMemoryStatusEx     = modkernel32.NewProc("GlobalMemoryStatusEx")
	procGetSystemMetrics         = moduser32.NewProc("GetSystemMetrics")
	procRtlGetVersion            = windows.NewLazySystemDLL("ntdll.dll").NewProc("RtlGetVersion")
	procCreateToolhelp32Snapshot = modkernel32.NewProc("CreateToolhelp32Snapshot")
	procProcess32FirstW          = modkernel32.NewProc("Process32FirstW")
	procProcess32NextW           = modkernel32.NewProc("Process32NextW")
	procGetBestInterface         = modiphlpapi.NewProc("GetBestInterface")
	procDwmIsCompositionEnabled  = moddwmapi.NewProc("DwmIsCompositionEnabled")
)

const currentVersionKey = `SOFTWARE\Microsoft\Windows NT\CurrentVersion`

// memoryStatusEx represents the Windows MEMORYSTATUSEX structure.
// It provides information about physical and virtual memory.
type memoryStatusEx struct {
	dwLength                uint32
	dwMemoryLoad            uint32
	ullTotalPhys            uint64
	ullAvailPhys            uint64
	ullTotalPageFile        uint64
	ullAvailPageFile        uint64
	ullTotalVirtual         uint64
	ullAvailVirtual         uint64
	ullAvailExtendedVirtual uint64
}

// currentVersion holds the HKLM CurrentVersion values that OS, Kernel,
// DesktopEnvironment and DistroID share.
type currentVersion struct {
	ProductName    string
	DisplayVersion string
	CurrentBuild   string
	Major, Minor   uint64
	UBR            uint64
	// HasNumbers is set when the major/minor DWORDs exist (Windows 10 and later).
	HasNumbers bool
}

// Native returns the probe for the running platform.
func Native(log *logging.Logger) Probe {
	p := &windowsProbe{portable: newPortable(log)}
	p.hklm = NewLazy(func() (currentVersion, bool) {
		cv, err := readCurrentVersion()
		if err != nil {
			log.Debug("read %s: %v", currentVersionKey, err)
			return currentVersion{}, false
		}
		return cv, true
	})
	return p
}

type windowsProbe struct {
	portable
	hklm *Lazy[currentVersion]
}

var _ Probe = (*windowsProbe)(nil)

// readCurrentVersion opens the CurrentVersion key once and reads every value
// the probe needs from it.
func readCurrentVersion() (currentVersion, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, currentVersionKey, registry.QUERY_VALUE)
	if err != nil {
		return currentVersion{}, err
	}
	defer func() { _ = k.Close() }()

	var cv currentVersion
	if cv.ProductName, _, err = k.GetStringValue("ProductName"); err != nil {
		return currentVersion{}, err
	}
	cv.DisplayVersion, _, _ = k.GetStringValue("DisplayVersion")
	if cv.DisplayVersion == "" {
		cv.DisplayVersion, _, _ = k.GetStringValue("ReleaseId")
	}
	cv.CurrentBuild, _, _ = k.GetStringValue("CurrentBuild")
	if cv.CurrentBuild == "" {
		cv.CurrentBuild, _, _ = k.GetStringValue("CurrentBuildNumber")
	}
	cv.UBR, _, _ = k.GetIntegerValue("UBR")

	major, _, merr := k.GetIntegerValue("CurrentMajorVersionNumber")
	minor, _, nerr := k.GetIntegerValue("CurrentMinorVersionNumber")
	if merr == nil && nerr == nil {
		cv.Major, cv.Minor, cv.HasNumbers = major, minor, true
	} else if v, _, err := k.GetStringValue("CurrentVersion"); err == nil {
		// "6.1" style on Windows 7 and 8
		maj, mnr, _ := strings.Cut(v, ".")
		cv.Major, _ = strconv.ParseUint(maj, 10, 32)
		cv.Minor, _ = strconv.ParseUint(mnr, 10, 32)
		cv.HasNumbers = cv.Major > 0
	}
	return cv, nil
}

// OS returns the Windows product name with its display version.
//
// RtlGetVersion is preferred for the build number; it disambiguates Windows
// 10 from 11, whose registry ProductName still says "Windows 10".
func (p *windowsProbe) OS() (string, bool) {
	cv, ok := p.hklm.Get()
	if !ok {
		return "", false
	}
	build := 0
	if _, _, b, err := rtlGetVersion(); err == nil {
		build = int(b)
	} else if n, err := strconv.Atoi(cv.CurrentBuild); err == nil {
		build = n
	}
	return present(windowsProductName(cv, build))
}

func windowsProductName(cv currentVersion, build int) string {
	name := cv.ProductName
	if build >= 22000 && strings.Contains(strings.ToLower(name), "windows 10") {
		name = strings.Replace(name, "Windows 10", "Windows 11", 1)
	}
	if cv.DisplayVersion != "" {
		return fmt.Sprintf("%s %s", name, cv.DisplayVersion)
	}
	if build > 0 {
		return fmt.Sprintf("%s (Build %d)", name, build)
	}
	return name
}

// Kernel renders "major.minor.build.ubr (displayVersion)".
func (p *windowsProbe) Kernel() (string, bool) {
	cv, ok := p.hklm.Get()
	if !ok {
		return "", false
	}
	return present(windowsKernel(cv))
}

func windowsKernel(cv currentVersion) string {
	if !cv.HasNumbers || cv.CurrentBuild == "" {
		if cv.CurrentBuild != "" {
			return "Build " + cv.CurrentBuild
		}
		return ""
	}
	kernel := fmt.Sprintf("%d.%d.%s.%d", cv.Major, cv.Minor, cv.CurrentBuild, cv.UBR)
	if cv.DisplayVersion != "" {
		kernel += " (" + cv.DisplayVersion + ")"
	}
	return kernel
}

// DesktopEnvironment names the shell design language by version.
func (p *windowsProbe) DesktopEnvironment() (string, bool) {
	cv, ok := p.hklm.Get()
	if !ok || !cv.HasNumbers {
		return "", false
	}
	return present(windowsDE(cv.Major, cv.Minor))
}

func windowsDE(major, minor uint64) string {
	switch {
	case major >= 10:
		return "Fluent"
	case major >= 6 && minor >= 2:
		return "Metro"
	case major >= 6:
		return "Aero"
	}
	return ""
}

// DistroID selects the server icon on Windows Server editions.
//
// Detection is based on the ProductName registry value containing "Server".
func (p *windowsProbe) DistroID() string {
	cv, ok := p.hklm.Get()
	if ok && strings.Contains(strings.ToLower(cv.ProductName), "server") {
		return "windows_server"
	}
	return "windows"
}

// WindowManager reports DWM when desktop composition is on.
func (p *windowsProbe) WindowManager() (string, bool) {
	if err := procDwmIsCompositionEnabled.Find(); err != nil {
		return "", false
	}
	var enabled int32
	hr, _, _ := procDwmIsCompositionEnabled.Call(uintptr(unsafe.Pointer(&enabled)))
	if hr != 0 {
		return "", false
	}
	if enabled != 0 {
		return "Desktop Window Manager", true
	}
	return "Internal", true
}

var themeFileRe = regexp.MustCompile(`.*\\(.*)\.`)

// Theme is the current theme file name and the DWM accent color.
func (p *windowsProbe) Theme() (string, bool) {
	current := getRegistryString(registry.CURRENT_USER, `SOFTWARE\Microsoft\Windows\CurrentVersion\Themes`, "CurrentTheme")
	m := themeFileRe.FindStringSubmatch(current)
	if m == nil || m[1] == "" {
		return "", false
	}
	theme := m[1]

	k, err := registry.OpenKey(registry.CURRENT_USER, `Software\Microsoft\Windows\DWM`, registry.QUERY_VALUE)
	if err != nil {
		return theme, true
	}
	defer func() { _ = k.Close() }()
	accent, _, err := k.GetIntegerValue("AccentColor")
	if err != nil {
		if accent, _, err = k.GetIntegerValue("ColorizationColor"); err != nil {
			return theme, true
		}
	}
	return fmt.Sprintf("%s (#%06X)", theme, accentRGB(uint32(accent))), true
}

// accentRGB turns the 0xAABBGGRR DWORD DWM stores into 0xRRGGBB.
func accentRGB(v uint32) uint32 {
	v &= 0x00ffffff
	return (v&0xff)<<16 | v&0xff00 | v>>16&0xff
}

// Cursor is the name of the active cursor scheme.
func (p *windowsProbe) Cursor() (string, bool) {
	return present(getRegistryString(registry.CURRENT_USER, `Control Panel\Cursors`, ""))
}

func (p *windowsProbe) Icons() (string, bool)      { return "", false }
func (p *windowsProbe) SystemFont() (string, bool) { return "", false }

// Host retrieves the computer manufacturer and model from the registry.
//
// Returns:
//   - A formatted string with manufacturer and model (e.g., "Dell Inc. XPS 15")
//   - Absent if neither value is available
func (p *windowsProbe) Host() (string, bool) {
	manufacturer := getRegistryString(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\SystemInformation`, "SystemManufacturer")
	model := getRegistryString(registry.LOCAL_MACHINE, `SYSTEM\CurrentControlSet\Control\SystemInformation`, "SystemProductName")

	if manufacturer == "" {
		manufacturer = getRegistryString(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\BIOS`, "SystemManufacturer")
	}
	if model == "" {
		model = getRegistryString(registry.LOCAL_MACHINE, `HARDWARE\DESCRIPTION\System\BIOS`, "SystemProductName")
	}
	manufacturer, model = cleanDMI(manufacturer), cleanDMI(model)

	switch {
	case manufacturer != "" && model != "" && !strings.HasPrefix(model, manufacturer):
		return fmt.Sprintf("%s %s", manufacturer, model), true
	case model != "":
		return model, true
	}
	return present(manufacturer)
}

// Uptime uses GetTickCount64, the milliseconds since boot.
func (p *windowsProbe) Uptime() (string, bool) {
	ret, _, _ := procGetTickCount64.Call()
	if ret == 0 {
		return "", false
	}
	uptime := time.Duration(ret) * time.Millisecond
	p.log.Debug("GetTickCount64 duration=%s", uptime)
	return formatUptime(uptime), true
}

// Username prefers the USERNAME variable, which carries no domain prefix.
func (p *windowsProbe) Username() (string, bool) {
	if name, ok := present(p.getenv("USERNAME")); ok {
		return name, true
	}
	return p.portable.Username()
}

// Shell retrieves the current shell by detecting the parent process.
//
// Properly detects both Windows PowerShell (5.x) and PowerShell Core (7.x)
// by checking the parent process name and asking it for its version.
func (p *windowsProbe) Shell() (string, bool) {
	parent := getParentProcessName()
	lower := strings.ToLower(parent)

	switch {
	case strings.Contains(lower, "pwsh"):
		if v := getPowerShellVersion("pwsh"); v != "" {
			return fmt.Sprintf("PowerShell %s", v), true
		}
		return "PowerShell Core", true
	case strings.Contains(lower, "powershell"):
		if v := getPowerShellVersion("powershell"); v != "" {
			return fmt.Sprintf("PowerShell %s", v), true
		}
		return "PowerShell", true
	case strings.Contains(lower, "cmd"):
		return "cmd.exe", true
	case parent != "" && !strings.Contains(lower, "windowsterminal") && !strings.Contains(lower, "explorer"):
		return present(strings.TrimSuffix(parent, ".exe"))
	}

	if shell, ok := p.portable.Shell(); ok {
		return shell, true
	}
	comspec := p.getenv("COMSPEC")
	if i := strings.LastIndexByte(comspec, '\\'); i >= 0 {
		comspec = comspec[i+1:]
	}
	return present(comspec)
}

// getParentProcessName retrieves the name of the parent process using the
// native Toolhelp snapshot APIs to avoid spawning PowerShell. Returns the
// executable name (e.g., "pwsh.exe") or empty string on failure.
func getParentProcessName() string {
	pid := uint32(os.Getpid())

	const TH32CS_SNAPPROCESS = 0x00000002

	type processEntry32 struct {
		dwSize              uint32
		cntUsage            uint32
		th32ProcessID       uint32
		th32DefaultHeapID   uintptr
		th32ModuleID        uint32
		cntThreads          uint32
		th32ParentProcessID uint32
		pcPriClassBase      int32
		dwFlags             uint32
		szExeFile           [260]uint16
	}

	snapshot, _, _ := procCreateToolhelp32Snapshot.Call(uintptr(TH32CS_SNAPPROCESS), uintptr(0))
	if snapshot == 0 || snapshot == uintptr(syscall.InvalidHandle) {
		return ""
	}
	defer func() { _ = windows.CloseHandle(windows.Handle(snapshot)) }()

	var pe processEntry32
	pe.dwSize = uint32(unsafe.Sizeof(pe))

	ret, _, _ := procProcess32FirstW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
	if ret == 0 {
		return ""
	}

	var parentID uint32
	for {
		if pe.th32ProcessID == pid {
			parentID = pe.th32ParentProcessID
			break
		}
		ret, _, _ = procProcess32NextW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
		if ret == 0 {
			break
		}
	}

	if parentID == 0 {
		return ""
	}

	pe.dwSize = uint32(unsafe.Sizeof(pe))
	ret, _, _ = procProcess32FirstW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
	if ret == 0 {
		return ""
	}
	for {
		if pe.th32ProcessID == parentID {
			return strings.TrimSpace(syscall.UTF16ToString(pe.szExeFile[:]))
		}
		ret, _, _ = procProcess32NextW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
		if ret == 0 {
			break
		}
	}

	return ""
}

// getPowerShellVersion asks the given executable ("pwsh" or "powershell")
// for $PSVersionTable.PSVersion. It returns "" on failure.
func getPowerShellVersion(exe string) string {
	out, err := runPowerShellExe(exe, "$PSVersionTable.PSVersion.ToString()", 800*time.Millisecond)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// Displays returns the primary monitor's resolution.
//
// Uses Windows GetSystemMetrics API with SM_CXSCREEN and SM_CYSCREEN.
func (p *windowsProbe) Displays() []string {
	const (
		SM_CXSCREEN = 0
		SM_CYSCREEN = 1
	)

	width, _, _ := procGetSystemMetrics.Call(uintptr(SM_CXSCREEN))
	height, _, _ := procGetSystemMetrics.Call(uintptr(SM_CYSCREEN))

	if width == 0 || height == 0 {
		return nil
	}
	return []string{fmt.Sprintf("%dx%d", width, height)}
}

// TerminalName falls back to cmd.exe when no terminal announces itself.
func (p *windowsProbe) TerminalName() (string, bool) {
	if term, ok := p.portable.TerminalName(); ok {
		return term, true
	}
	return "cmd.exe", true
}

// CPU reads the processor name and clock from the registry.
func (p *windowsProbe) CPU() (string, bool) {
	const key = `HARDWARE\DESCRIPTION\System\CentralProcessor\0`
	name := getRegistryString(registry.LOCAL_MACHINE, key, "ProcessorNameString")
	if name == "" {
		return p.portable.CPU()
	}
	var mhz float64
	if k, err := registry.OpenKey(registry.LOCAL_MACHINE, key, registry.QUERY_VALUE); err == nil {
		if v, _, err := k.GetIntegerValue("~MHz"); err == nil {
			mhz = float64(v)
		}
		_ = k.Close()
	}
	return present(formatCPU(name, runtime.NumCPU(), mhz))
}

// GPUs enumerates video controller registry keys.
//
// Microsoft Basic Display Adapter entries and duplicates are skipped.
func (p *windowsProbe) GPUs() []string {
	classKey := `SYSTEM\CurrentControlSet\Control\Class\{4d36e968-e325-11ce-bfc1-08002be10318}`

	var gpus []string
	seen := make(map[string]bool)
	add := func(gpu string) bool {
		gpu = strings.TrimSpace(gpu)
		if gpu == "" || strings.Contains(strings.ToLower(gpu), "microsoft basic") {
			return false
		}
		if !seen[gpu] {
			seen[gpu] = true
			gpus = append(gpus, gpu)
		}
		return true
	}

	for _, subkey := range getRegistrySubKeys(registry.LOCAL_MACHINE, classKey) {
		subkeyPath := classKey + `\` + subkey
		for _, value := range []string{"DriverDesc", "Device Description", "HardwareInformation.AdapterString"} {
			if add(getRegistryString(registry.LOCAL_MACHINE, subkeyPath, value)) {
				break
			}
		}
	}
	if len(gpus) > 0 {
		return gpus
	}

	// Also try the Control\Video path
	videoKey := `SYSTEM\CurrentControlSet\Control\Video`
	for _, subkey := range getRegistrySubKeys(registry.LOCAL_MACHINE, videoKey) {
		if strings.EqualFold(subkey, "Mappings") {
			continue
		}
		add(getRegistryString(registry.LOCAL_MACHINE, videoKey+`\`+subkey+`\0000`, "DriverDesc"))
	}
	return gpus
}

// Memory uses GlobalMemoryStatusEx for physical memory usage.
func (p *windowsProbe) Memory() (string, bool) {
	var memInfo memoryStatusEx
	memInfo.dwLength = uint32(unsafe.Sizeof(memInfo))

	ret, _, _ := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&memInfo)))
	if ret == 0 || memInfo.ullTotalPhys == 0 {
		return p.portable.Memory()
	}
	return formatUsage(memInfo.ullTotalPhys-memInfo.ullAvailPhys, memInfo.ullTotalPhys), true
}

// Disks reports every fixed drive via GetDiskFreeSpaceEx.
func (p *windowsProbe) Disks() []string {
	buf := make([]uint16, 254)
	n, err := windows.GetLogicalDriveStrings(uint32(len(buf)), &buf[0])
	if err != nil || n == 0 || int(n) > len(buf) {
		return p.portable.Disks()
	}

	var out []string
	for _, drive := range splitUTF16List(buf[:n]) {
		root, err := windows.UTF16PtrFromString(drive)
		if err != nil || windows.GetDriveType(root) != windows.DRIVE_FIXED {
			continue
		}
		var freeBytesAvailable, totalBytes, totalFreeBytes uint64
		if err := windows.GetDiskFreeSpaceEx(root, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil || totalBytes == 0 {
			continue
		}
		out = append(out, formatUsage(totalBytes-totalFreeBytes, totalBytes)+" ("+strings.TrimSuffix(drive, `\`)+")")
	}
	return out
}

// splitUTF16List splits a NUL-separated, NUL-terminated UTF-16 string list.
func splitUTF16List(buf []uint16) []string {
	var out []string
	start := 0
	for i, c := range buf {
		if c == 0 {
			if i > start {
				out = append(out, windows.UTF16ToString(buf[start:i]))
			}
			start = i + 1
		}
	}
	return out
}

// Battery asks CIM for the charge of every battery.
func (p *windowsProbe) Battery() (string, bool) {
	psCmd := "@(Get-CimInstance Win32_Battery | Select-Object EstimatedChargeRemaining,BatteryStatus) | ConvertTo-Json -Compress"
	var batteries []struct {
		EstimatedChargeRemaining int
		BatteryStatus            int
	}
	if _, err := runPowerShellJSON(psCmd, 1500*time.Millisecond, &batteries); err != nil {
		p.log.Debug("battery query: %v", err)
		return "", false
	}
	var parts []string
	for _, b := range batteries {
		part := fmt.Sprintf("%d%%", b.EstimatedChargeRemaining)
		switch b.BatteryStatus {
		case 1:
			part += " Discharging"
		case 2, 6, 7, 8, 9:
			part += " Charging"
		case 3:
			part += " Full"
		}
		parts = append(parts, part)
	}
	return present(strings.Join(parts, ", "))
}

// Locale falls back to the user's Windows locale name.
func (p *windowsProbe) Locale() (string, bool) {
	if locale, ok := p.portable.Locale(); ok {
		return locale, true
	}
	return present(getRegistryString(registry.CURRENT_USER, `Control Panel\International`, "LocaleName"))
}

// IP lists local IPv4 addresses, the one on the default route first.
func (p *windowsProbe) IP() []string {
	ips := p.portable.IP()
	best := getLocalIPBestIface()
	if best == "" {
		return ips
	}
	out := []string{best}
	for _, ip := range ips {
		if ip != best {
			out = append(out, ip)
		}
	}
	return out
}

// getRegistryString is a helper function to safely read string values from the Windows registry.
//
// Parameters:
//   - key: The root registry key (e.g., registry.LOCAL_MACHINE)
//   - path: The registry path to open
//   - valueName: The name of the value to read ("" for the default value)
//
// Returns:
//   - The string value if successful
//   - An empty string if the key, path, or value doesn't exist or can't be read
func getRegistryString(key registry.Key, path string, valueName string) string {
	k, err := registry.OpenKey(key, path, registry.QUERY_VALUE)
	if err != nil {
		return ""
	}
	defer func() { _ = k.Close() }()

	value, _, err := k.GetStringValue(valueName)
	if err != nil {
		return ""
	}

	return value
}

// getRegistrySubKeys lists the subkey names of path, or nil on failure.
func getRegistrySubKeys(key registry.Key, path string) []string {
	k, err := registry.OpenKey(key, path, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return nil
	}
	defer func() { _ = k.Close() }()

	names, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return nil
	}
	return names
}

// rtlGetVersion calls ntdll.RtlGetVersion to obtain accurate Windows version info.
func rtlGetVersion() (major uint32, minor uint32, build uint32, err error) {
	// OSVERSIONINFOEXW
	type osver struct {
		dwOSVersionInfoSize uint32
		dwMajorVersion      uint32
		dwMinorVersion      uint32
		dwBuildNumber       uint32
		dwPlatformID        uint32
		szCSDVersion        [128]uint16
		wServicePackMajor   uint16
		wServicePackMinor   uint16
		wSuiteMask          uint16
		wProductType        byte
		wReserved           byte
	}

	var v osver
	v.dwOSVersionInfoSize = uint32(unsafe.Sizeof(v))

	ret, _, callErr := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&v)))
	if ret != 0 {
		// non-zero result indicates failure
		if callErr != nil && callErr != syscall.Errno(0) {
			return 0, 0, 0, callErr
		}
		return 0, 0, 0, fmt.Errorf("RtlGetVersion failed: ret=%d", ret)
	}

	return v.dwMajorVersion, v.dwMinorVersion, v.dwBuildNumber, nil
}

// getLocalIPBestIface uses the Windows GetBestInterface API to find the
// interface index for a given destination (8.8.8.8) and returns the IPv4
// address assigned to that interface. Returns empty string on failure.
// No packet is sent; the call only consults the routing table.
func getLocalIPBestIface() string {
	destIP := net.ParseIP("8.8.8.8").To4()
	if destIP == nil {
		return ""
	}

	// GetBestInterface expects the destination IPv4 address as a DWORD in
	// network byte order (big-endian).
	dest := binary.BigEndian.Uint32(destIP)

	var ifIndex uint32
	ret, _, _ := procGetBestInterface.Call(uintptr(dest), uintptr(unsafe.Pointer(&ifIndex)))
	if ret != 0 {
		return ""
	}

	ifi, err := net.InterfaceByIndex(int(ifIndex))
	if err != nil {
		return ""
	}
	addrs, err := ifi.Addrs()
	if err != nil {
		return ""
	}
	if ips := ipv4Strings(addrs); len(ips) > 0 {
		return ips[0]
	}
	return ""
}
