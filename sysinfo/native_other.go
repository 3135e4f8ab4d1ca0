//go:build ios || (!linux && !darwin && !windows)

package sysinfo

import "prismfetch/logging"

// Native returns the probe for the running platform. Platforms without a
// backend get StubProbe.
func Native(log *logging.Logger) Probe {
	log.Debug("no probe backend for this platform, using the stub")
	return StubProbe{}
}
