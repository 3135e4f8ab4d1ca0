// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"strings"
	"time"
)

// FormatBytes converts a byte count to a human-readable string with binary units.
//
// Parameters:
//   - bytes: The number of bytes to format
//
// Returns:
//   - A formatted string with the most appropriate unit (B, KiB, MiB, GiB, TiB, PiB, EiB)
//
// Example: FormatBytes(1536) returns "1.5 KiB"
func FormatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}

	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}

	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}
	return fmt.Sprintf("%.1f %s", float64(bytes)/float64(div), units[exp])
}

// formatUsage renders a used/total pair, the form Memory and Disks share.
func formatUsage(used, total uint64) string {
	return FormatBytes(used) + " / " + FormatBytes(total)
}

// formatUptime converts a duration into a human-readable uptime string.
//
// Parameters:
//   - uptime: The duration to format
//
// Returns:
//   - A formatted string (e.g., "2 days, 5 hours, 30 mins")
func formatUptime(uptime time.Duration) string {
	days := int(uptime.Hours() / 24)
	hours := int(uptime.Hours()) % 24
	mins := int(uptime.Minutes()) % 60

	var parts []string
	if days > 0 {
		parts = append(parts, fmt.Sprintf("%d day%s", days, plural(days)))
	}
	if hours > 0 {
		parts = append(parts, fmt.Sprintf("%d hour%s", hours, plural(hours)))
	}
	if mins > 0 || len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%d min%s", mins, plural(mins)))
	}

	return strings.Join(parts, ", ")
}

// plural returns "s" if count is not 1, empty string otherwise.
func plural(count int) string {
	if count != 1 {
		return "s"
	}
	return ""
}

// formatCPU renders "model (threads) @ x.xx GHz", leaving out the parts that
// are unknown.
func formatCPU(model string, threads int, mhz float64) string {
	model = strings.Join(strings.Fields(model), " ")
	if model == "" {
		return ""
	}
	if threads > 0 {
		model = fmt.Sprintf("%s (%d)", model, threads)
	}
	if mhz > 0 {
		model = fmt.Sprintf("%s @ %.2f GHz", model, mhz/1000)
	}
	return model
}
