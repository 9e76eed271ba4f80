// SPDX-License-Identifier: AGPL-3.0-only

// Package gamma darkens a display by scaling its gamma ramp, an alternative
// software dimmer keyed by the same win32 device name as the overlay.
package gamma

import (
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/winapi"
)

// Multiplier converts a dim level in [-100, 0] to the ramp scale factor:
// 0 is the identity ramp, -100 an all-black ramp. Out-of-range levels clamp.
func Multiplier(level int) float64 {
	if level > 0 {
		level = 0
	}
	if level < -100 {
		level = -100
	}
	return (float64(level) + 100) / 100
}

// Dim installs a gamma ramp scaled for the given dim level on the named
// display device.
func Dim(deviceName string, level int) error {
	return winapi.SetGammaRamp(deviceName, Multiplier(level))
}

// Reset restores the identity ramp.
func Reset(deviceName string) error {
	return Dim(deviceName, 0)
}
