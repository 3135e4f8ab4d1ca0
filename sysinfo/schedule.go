package sysinfo

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
)

// Record is one row of fetch output. An empty Label marks a structural row
// (title, separator, palette) that is printed without a "Label: " prefix.
type Record struct {
	Label string
	Value string
}

// Snapshot is the ordered result of one aggregation run.
type Snapshot struct {
	Records []Record
	// DistroID is the probe's platform name, UnknownID when it had none.
	DistroID string
}

// entry is one slot of the display schedule. run calls the probe and turns
// the answer into zero or more rows.
type entry struct {
	name string
	run  func(Probe) []Record
}

func single(label string, fact func(Probe) (string, bool)) entry {
	return entry{name: label, run: func(p Probe) []Record {
		v, ok := fact(p)
		if !ok {
			return nil
		}
		if v, ok = present(v); !ok {
			return nil
		}
		return []Record{{Label: label, Value: v}}
	}}
}

// multi numbers the rows ("GPU 1", "GPU 2") only when there is more than one.
func multi(name, label string, facts func(Probe) []string) entry {
	return entry{name: name, run: func(p Probe) []Record {
		values := compact(facts(p))
		if len(values) == 1 {
			return []Record{{Label: label, Value: values[0]}}
		}
		out := make([]Record, 0, len(values))
		for i, v := range values {
			out = append(out, Record{Label: fmt.Sprintf("%s %d", label, i+1), Value: v})
		}
		return out
	}}
}

func joined(label string, facts func(Probe) []string) entry {
	return entry{name: label, run: func(p Probe) []Record {
		values := compact(facts(p))
		if len(values) == 0 {
			return nil
		}
		return []Record{{Label: label, Value: strings.Join(values, ", ")}}
	}}
}

// title emits "user@host" and a dashed underline of the same display width.
func title(p Probe) []Record {
	user, uok := p.Username()
	host, hok := p.Hostname()
	var t string
	switch {
	case uok && hok:
		t = user + "@" + host
	case uok:
		t = user
	case hok:
		t = host
	default:
		return nil
	}
	return []Record{
		{Value: t},
		{Value: strings.Repeat("-", runewidth.StringWidth(t))},
	}
}

// palette renders the 16 ANSI colours as two rows of background swatches.
func palette(Probe) []Record {
	row := func(from int) string {
		var b strings.Builder
		for i := from; i < from+8; i++ {
			b.WriteString(color.New(color.Attribute(48), color.Attribute(5), color.Attribute(i)).Sprint("   "))
		}
		return b.String()
	}
	return []Record{{Value: row(0)}, {Value: row(8)}}
}

// defaultSchedule is the fixed display order.
func defaultSchedule() []entry {
	return []entry{
		{name: "Title", run: title},
		single("OS", Probe.OS),
		single("Host", Probe.Host),
		single("Kernel", Probe.Kernel),
		single("Uptime", Probe.Uptime),
		single("Shell", Probe.Shell),
		multi("Displays", "Display", Probe.Displays),
		single("DE", Probe.DesktopEnvironment),
		single("WM", Probe.WindowManager),
		single("Theme", Probe.Theme),
		single("Icons", Probe.Icons),
		single("Cursor", Probe.Cursor),
		single("Font", Probe.SystemFont),
		single("Terminal", Probe.TerminalName),
		single("Terminal Font", Probe.TerminalFont),
		single("CPU", Probe.CPU),
		multi("GPUs", "GPU", Probe.GPUs),
		single("Memory", Probe.Memory),
		multi("Disks", "Disk", Probe.Disks),
		single("Battery", Probe.Battery),
		single("Locale", Probe.Locale),
		joined("Local IP", Probe.IP),
		{name: "Palette", run: palette},
	}
}

// Schedule lists the slot names in display order.
func Schedule() []string {
	entries := defaultSchedule()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
