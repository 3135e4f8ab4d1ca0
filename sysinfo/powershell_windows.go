//go:build windows
// +build windows

package sysinfo

import (
	"context"
	"encoding/json"
	"os/exec"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// runPowerShellExe runs a command under the given PowerShell executable
// ("powershell" or "pwsh") with a timeout and returns raw stdout bytes. The
// command is executed with -NoProfile and the window hidden.
func runPowerShellExe(exe, cmd string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c := exec.CommandContext(ctx, exe, "-NoProfile", "-NonInteractive", "-Command", cmd)
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	out, err := c.Output()
	if err != nil {
		return nil, errors.Wrapf(err, "%s -Command", exe)
	}
	return out, nil
}

// runPowerShellJSON runs a Windows PowerShell command expected to emit JSON
// and unmarshals it into v. It returns the raw bytes and any error.
func runPowerShellJSON(cmd string, timeout time.Duration, v interface{}) ([]byte, error) {
	out, err := runPowerShellExe("powershell", cmd, timeout)
	if err != nil {
		return nil, err
	}
	if v != nil {
		if err := json.Unmarshal(out, v); err != nil {
			return out, errors.Wrap(err, "decode powershell output")
		}
	}
	return out, nil
}
