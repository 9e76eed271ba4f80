// SPDX-License-Identifier: AGPL-3.0-only

package winapi

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	fileGenericRead  = 0x00120089
	fileGenericWrite = 0x00120116
)

// EnumerateActivePaths queries the display-configuration subsystem for all
// active paths and returns one PathTarget per target mode record. Any
// non-success code from the size query or the fetch aborts the enumeration.
func EnumerateActivePaths() ([]PathTarget, error) {
	var pathCount, modeCount uint32
	ret, _, _ := procGetDisplayConfigBufferSizes.Call(
		qdcOnlyActivePaths,
		uintptr(unsafe.Pointer(&pathCount)),
		uintptr(unsafe.Pointer(&modeCount)),
	)
	if ret != 0 {
		return nil, fmt.Errorf("GetDisplayConfigBufferSizes failed: %w", windows.Errno(ret))
	}
	if pathCount == 0 || modeCount == 0 {
		return nil, nil
	}

	paths := make([]displayConfigPathInfo, pathCount)
	modes := make([]displayConfigModeInfo, modeCount)
	ret, _, _ = procQueryDisplayConfig.Call(
		qdcOnlyActivePaths,
		uintptr(unsafe.Pointer(&pathCount)),
		uintptr(unsafe.Pointer(&paths[0])),
		uintptr(unsafe.Pointer(&modeCount)),
		uintptr(unsafe.Pointer(&modes[0])),
		0,
	)
	if ret != 0 {
		return nil, fmt.Errorf("QueryDisplayConfig failed: %w", windows.Errno(ret))
	}

	var targets []PathTarget
	for _, mode := range modes[:modeCount] {
		if mode.InfoType == displayConfigModeInfoTypeTarget {
			targets = append(targets, PathTarget{AdapterID: mode.AdapterID, ID: mode.ID})
		}
	}
	return targets, nil
}

// ResolveTargetName fetches the target device name record for one path
// target: the friendly name shown in Settings, the device path used as the
// stable identifier, and the output technology of the connection.
func ResolveTargetName(target PathTarget) (TargetName, error) {
	var name displayConfigTargetDeviceName
	name.Header = displayConfigDeviceInfoHeader{
		Type:      displayConfigDeviceInfoTargetName,
		Size:      uint32(unsafe.Sizeof(name)),
		AdapterID: target.AdapterID,
		ID:        target.ID,
	}

	ret, _, _ := procDisplayConfigGetDeviceInfo.Call(uintptr(unsafe.Pointer(&name)))
	if ret != 0 {
		return TargetName{}, fmt.Errorf("DisplayConfigGetDeviceInfo failed: %w", windows.Errno(ret))
	}

	return TargetName{
		FriendlyName:     windows.UTF16ToString(name.MonitorFriendlyDeviceName[:]),
		DevicePath:       windows.UTF16ToString(name.MonitorDevicePath[:]),
		OutputTechnology: OutputTechnology(name.OutputTechnology),
	}, nil
}

// OpenDisplayHandle opens a file-style handle on an internal panel's device
// path for the IOCTL backend. Access denied means the path does not describe
// a real display (e.g. a remote-session placeholder) and yields (nil, nil);
// any other failure is an error.
func OpenDisplayHandle(devicePath string) (*DisplayHandle, error) {
	wide, err := windows.UTF16PtrFromString(devicePath)
	if err != nil {
		return nil, fmt.Errorf("invalid device path %q: %w", devicePath, err)
	}

	raw, err := windows.CreateFile(
		wide,
		fileGenericRead|fileGenericWrite,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		0,
		0,
	)
	if err != nil {
		if err == windows.ERROR_ACCESS_DENIED {
			return nil, nil
		}
		return nil, fmt.Errorf("CreateFileW failed for device %q: %w", devicePath, err)
	}
	if raw == windows.InvalidHandle {
		return nil, nil
	}
	return NewDisplayHandle(raw), nil
}

// AdapterDeviceName returns the win32 device name of the first display
// adapter, e.g. `\\.\DISPLAY1`. Used as the gamma/overlay key for internal
// panels, which have no sub-device of their own.
func AdapterDeviceName() (string, bool) {
	var dev displayDeviceW
	dev.Cb = uint32(unsafe.Sizeof(dev))
	ret, _, _ := procEnumDisplayDevicesW.Call(
		0,
		0,
		uintptr(unsafe.Pointer(&dev)),
		0,
	)
	if ret == 0 {
		return "", false
	}
	return windows.UTF16ToString(dev.DeviceName[:]), true
}
