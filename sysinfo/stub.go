package sysinfo

// StubProbe is the minimal-capability backend for platforms without a real
// one (iOS among them). Every fact is absent and DistroID is UnknownID. This
// is intentional: the command still renders the fallback icon and the
// structural rows.
type StubProbe struct{}

var _ Probe = StubProbe{}

func (StubProbe) OS() (string, bool)                 { return "", false }
func (StubProbe) Host() (string, bool)               { return "", false }
func (StubProbe) Kernel() (string, bool)             { return "", false }
func (StubProbe) Hostname() (string, bool)           { return "", false }
func (StubProbe) Username() (string, bool)           { return "", false }
func (StubProbe) CPU() (string, bool)                { return "", false }
func (StubProbe) Memory() (string, bool)             { return "", false }
func (StubProbe) Disks() []string                    { return nil }
func (StubProbe) Battery() (string, bool)            { return "", false }
func (StubProbe) Locale() (string, bool)             { return "", false }
func (StubProbe) Theme() (string, bool)              { return "", false }
func (StubProbe) WindowManager() (string, bool)      { return "", false }
func (StubProbe) DesktopEnvironment() (string, bool) { return "", false }
func (StubProbe) Shell() (string, bool)              { return "", false }
func (StubProbe) Displays() []string                 { return nil }
func (StubProbe) GPUs() []string                     { return nil }
func (StubProbe) IP() []string                       { return nil }
func (StubProbe) Uptime() (string, bool)             { return "", false }
func (StubProbe) Icons() (string, bool)              { return "", false }
func (StubProbe) Cursor() (string, bool)             { return "", false }
func (StubProbe) SystemFont() (string, bool)         { return "", false }
func (StubProbe) TerminalName() (string, bool)       { return "", false }
func (StubProbe) TerminalFont() (string, bool)       { return "", false }
func (StubProbe) DistroID() string                   { return UnknownID }
