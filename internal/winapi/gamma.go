// SPDX-License-Identifier: AGPL-3.0-only

package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// SetGammaRamp opens a device context for the named display device and
// installs a 256-entry gamma ramp with all three channels scaled by
// multiplier (1.0 is the identity ramp).
func SetGammaRamp(deviceName string, multiplier float64) error {
	wide, err := windows.UTF16PtrFromString(deviceName)
	if err != nil {
		return fmt.Errorf("invalid device name %q: %w", deviceName, err)
	}

	hdc, _, callErr := procCreateDCW.Call(
		uintptr(unsafe.Pointer(wide)),
		uintptr(unsafe.Pointer(wide)),
		0,
		0,
	)
	if hdc == 0 {
		return fmt.Errorf("CreateDCW failed for device %q: %w", deviceName, callErr)
	}
	defer procDeleteDC.Call(hdc)

	var ramp [3 * 256]uint16
	for i := 0; i < 256; i++ {
		v := uint16(float64(i)*multiplier+0.5) * 257
		ramp[i] = v
		ramp[i+256] = v
		ramp[i+512] = v
	}

	ret, _, callErr := procSetDeviceGammaRamp.Call(hdc, uintptr(unsafe.Pointer(&ramp[0])))
	if ret == 0 {
		return fmt.Errorf("SetDeviceGammaRamp failed for device %q: %w", deviceName, callErr)
	}
	return nil
}
