// Package logging provides the leveled, optionally colored diagnostic logger
// shared by the prismfetch command and its libraries. Fetch output owns
// stdout, so the logger is normally pointed at stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// DebugEnv enables debug output when set to a non-empty value, in addition
// to the --debug flag.
const DebugEnv = "PRISMFETCH_DEBUG"

// ColorMode controls whether level tags are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Color when the sink is a terminal (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Options configures a Logger.
type Options struct {
	Debug bool
	Color ColorMode
}

// Logger writes timestamped, leveled lines to a single sink. A nil *Logger is
// valid and discards everything, so packages can take an optional logger.
type Logger struct {
	mu    sync.Mutex
	out   io.Writer
	debug bool

	info  *color.Color
	warn  *color.Color
	err   *color.Color
	trace *color.Color
}

// New returns a Logger writing to out.
func New(out io.Writer, opts Options) *Logger {
	l := &Logger{
		out:   out,
		debug: opts.Debug || os.Getenv(DebugEnv) != "",
		info:  color.New(color.FgBlue, color.Bold),
		warn:  color.New(color.FgYellow, color.Bold),
		err:   color.New(color.FgRed, color.Bold),
		trace: color.New(color.FgCyan, color.Bold),
	}

	enable := false
	switch opts.Color {
	case ColorAlways:
		enable = true
	case ColorNever:
		enable = false
	default:
		enable = isTerminal(out) && os.Getenv("NO_COLOR") == "" && strings.ToLower(os.Getenv("TERM")) != "dumb"
	}
	for _, c := range []*color.Color{l.info, l.warn, l.err, l.trace} {
		if enable {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// DebugEnabled reports whether Debug lines are written.
func (l *Logger) DebugEnabled() bool {
	return l != nil && l.debug
}

func (l *Logger) line(tag *color.Color, level, text string) {
	if l == nil {
		return
	}
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = io.WriteString(l.out, ts+" "+tag.Sprint("["+level+"]")+" "+text+"\n")
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.line(l.info, "INFO", fmt.Sprintf(format, args...))
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.line(l.warn, "WARN", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level (red).
func (l *Logger) Error(format string, args ...interface{}) {
	if l == nil {
		return
	}
	l.line(l.err, "ERROR", fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level (cyan) only when debug output is enabled.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.DebugEnabled() {
		return
	}
	l.line(l.trace, "DEBUG", fmt.Sprintf(format, args...))
}
