// SPDX-License-Identifier: AGPL-3.0-only

package winapi

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

type displayBrightnessRaw struct {
	UCDisplayPolicy uint8
	UCACBrightness  uint8
	UCDCBrightness  uint8
}

// QuerySupportedBrightness returns the discrete 0-100 levels the panel
// firmware accepts, unordered.
func QuerySupportedBrightness(h *DisplayHandle) ([]uint8, error) {
	out := make([]uint8, 256)
	var returned uint32
	err := windows.DeviceIoControl(
		h.Raw(),
		ioctlVideoQuerySupportedBrightness,
		nil,
		0,
		&out[0],
		uint32(len(out)),
		&returned,
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("IOCTL_VIDEO_QUERY_SUPPORTED_BRIGHTNESS failed: %w", err)
	}
	return out[:returned], nil
}

// QueryDisplayBrightness reads the panel's current brightness policy record.
func QueryDisplayBrightness(h *DisplayHandle) (DisplayBrightness, error) {
	var raw displayBrightnessRaw
	var returned uint32
	err := windows.DeviceIoControl(
		h.Raw(),
		ioctlVideoQueryDisplayBrightness,
		nil,
		0,
		(*byte)(unsafe.Pointer(&raw)),
		uint32(unsafe.Sizeof(raw)),
		&returned,
		nil,
	)
	if err != nil {
		return DisplayBrightness{}, fmt.Errorf("IOCTL_VIDEO_QUERY_DISPLAY_BRIGHTNESS failed: %w", err)
	}
	return DisplayBrightness{
		Policy: raw.UCDisplayPolicy,
		AC:     raw.UCACBrightness,
		DC:     raw.UCDCBrightness,
	}, nil
}

// SetDisplayBrightness writes a supported discrete level for both the AC and
// DC power policies.
func SetDisplayBrightness(h *DisplayHandle, level uint8) error {
	raw := displayBrightnessRaw{
		UCDisplayPolicy: DisplayPolicyBoth,
		UCACBrightness:  level,
		UCDCBrightness:  level,
	}
	var returned uint32
	err := windows.DeviceIoControl(
		h.Raw(),
		ioctlVideoSetDisplayBrightness,
		(*byte)(unsafe.Pointer(&raw)),
		uint32(unsafe.Sizeof(raw)),
		nil,
		0,
		&returned,
		nil,
	)
	if err != nil {
		return fmt.Errorf("IOCTL_VIDEO_SET_DISPLAY_BRIGHTNESS failed: %w", err)
	}
	// A query issued immediately after the set can still observe the old
	// value; a tiny sleep reliably masks the firmware race.
	time.Sleep(time.Nanosecond)
	return nil
}
