package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, Options{Color: ColorNever})
	l.Info("hello %s", "world")
	l.Warn("careful")
	l.Error("broken: %d", 3)

	out := buf.String()
	assert.Contains(t, out, "[INFO] hello world")
	assert.Contains(t, out, "[WARN] careful")
	assert.Contains(t, out, "[ERROR] broken: 3")
}

func TestLogger_DebugGated(t *testing.T) {
	t.Setenv(DebugEnv, "")

	var buf bytes.Buffer
	New(&buf, Options{Color: ColorNever}).Debug("hidden")
	assert.Empty(t, buf.String())

	New(&buf, Options{Debug: true, Color: ColorNever}).Debug("shown")
	assert.Contains(t, buf.String(), "[DEBUG] shown")
}

func TestLogger_DebugFromEnv(t *testing.T) {
	t.Setenv(DebugEnv, "1")

	var buf bytes.Buffer
	l := New(&buf, Options{Color: ColorNever})
	assert.True(t, l.DebugEnabled())
	l.Debug("from env")
	assert.Contains(t, buf.String(), "from env")
}

func TestLogger_NilIsNoop(t *testing.T) {
	var l *Logger
	assert.NotPanics(t, func() {
		l.Info("x")
		l.Warn("x")
		l.Error("x")
		l.Debug("x")
	})
	assert.False(t, l.DebugEnabled())
}

func TestLogger_ColorAlways(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, Options{Color: ColorAlways}).Info("tinted")
	assert.Contains(t, buf.String(), "\x1b[")
}
