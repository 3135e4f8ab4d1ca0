package main

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"prismfetch/sysinfo"
)

// ansiRegex matches ANSI escape codes for removal/measurement purposes
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

var labelColor = color.New(color.FgBlue, color.Bold)

// displayInfo renders the icon and the records side-by-side.
//
// Parameters:
//   - w: Destination for the rendered lines
//   - art: Colored icon lines, as produced by ascii.Lines
//   - records: Rows from the aggregator, in display order
//   - gap: Number of spaces between the icon and the info column
//
// Both columns are top-aligned. Icon lines are padded to the widest line so
// the info column starts at the same offset on every row.
func displayInfo(w io.Writer, art []string, records []sysinfo.Record, gap int) {
	infoLines := make([]string, len(records))
	for i, r := range records {
		infoLines[i] = formatRecord(r)
	}

	// Calculate art width for proper spacing (excluding ANSI codes)
	artWidth := 0
	for _, line := range art {
		if width := getVisibleWidth(line); width > artWidth {
			artWidth = width
		}
	}

	maxLines := len(art)
	if len(infoLines) > maxLines {
		maxLines = len(infoLines)
	}
	if gap < 0 {
		gap = 0
	}
	spacer := strings.Repeat(" ", gap)

	for i := 0; i < maxLines; i++ {
		var artLine, infoLine string

		if i < len(art) {
			artLine = art[i]
			if paddingNeeded := artWidth - getVisibleWidth(artLine); paddingNeeded > 0 {
				artLine += strings.Repeat(" ", paddingNeeded)
			}
		} else {
			artLine = strings.Repeat(" ", artWidth)
		}

		if i < len(infoLines) {
			infoLine = infoLines[i]
		}

		fmt.Fprintln(w, strings.TrimRight(artLine+spacer+infoLine, " "))
	}
}

// formatRecord renders "Label: value"; structural rows print their value
// alone.
func formatRecord(r sysinfo.Record) string {
	if r.Label == "" {
		return r.Value
	}
	return labelColor.Sprint(r.Label) + ": " + r.Value
}

// getVisibleWidth calculates the visible width of a string excluding ANSI escape codes.
//
// Parameters:
//   - s: The string to measure (may contain ANSI color codes)
//
// Returns:
//   - The number of terminal columns the string occupies
func getVisibleWidth(s string) int {
	// Remove all ANSI escape sequences
	stripped := ansiRegex.ReplaceAllString(s, "")
	// Use runewidth to count display width (handles wide runes)
	return runewidth.StringWidth(stripped)
}
