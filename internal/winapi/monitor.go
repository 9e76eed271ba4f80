// SPDX-License-Identifier: AGPL-3.0-only

package winapi

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// EnumDisplayMonitors needs a C callback. syscall.NewCallback allocations are
// never freed and the process-wide pool is small, so the callback is created
// once and feeds a guarded package-level accumulator.
var (
	enumMu  sync.Mutex
	enumAcc []HMonitor
	enumCb  = syscall.NewCallback(func(hMonitor, hdc, rect, lparam uintptr) uintptr {
		enumAcc = append(enumAcc, HMonitor(hMonitor))
		return 1
	})
)

// EnumMonitorGroups returns the handles of all logical monitor groups.
func EnumMonitorGroups() ([]HMonitor, error) {
	enumMu.Lock()
	defer enumMu.Unlock()

	enumAcc = enumAcc[:0]
	ret, _, err := procEnumDisplayMonitors.Call(0, 0, enumCb, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", err)
	}
	out := make([]HMonitor, len(enumAcc))
	copy(out, enumAcc)
	return out, nil
}

func monitorInfo(group HMonitor) (monitorInfoExW, error) {
	var info monitorInfoExW
	info.CbSize = uint32(unsafe.Sizeof(info))
	ret, _, err := procGetMonitorInfoW.Call(uintptr(group), uintptr(unsafe.Pointer(&info)))
	if ret == 0 {
		return info, fmt.Errorf("GetMonitorInfoW failed: %w", err)
	}
	return info, nil
}

// MonitorRects returns the device name and full rectangle of every monitor
// group, for sizing the overlay windows.
func MonitorRects() ([]MonitorRect, error) {
	groups, err := EnumMonitorGroups()
	if err != nil {
		return nil, err
	}

	rects := make([]MonitorRect, 0, len(groups))
	for _, group := range groups {
		info, err := monitorInfo(group)
		if err != nil {
			return nil, err
		}
		rects = append(rects, MonitorRect{
			DeviceName: windows.UTF16ToString(info.Device[:]),
			Bounds:     info.Monitor,
		})
	}
	return rects, nil
}

// SubDevices returns the active display devices belonging to a monitor
// group, in enumeration order. Connected but inactive devices are filtered
// out.
func SubDevices(group HMonitor) ([]SubDevice, error) {
	info, err := monitorInfo(group)
	if err != nil {
		return nil, err
	}

	var devices []SubDevice
	for i := uint32(0); ; i++ {
		var dev displayDeviceW
		dev.Cb = uint32(unsafe.Sizeof(dev))
		ret, _, _ := procEnumDisplayDevicesW.Call(
			uintptr(unsafe.Pointer(&info.Device[0])),
			uintptr(i),
			uintptr(unsafe.Pointer(&dev)),
			eddGetDeviceInterfaceName,
		)
		if ret == 0 {
			break
		}
		if dev.StateFlags&displayDeviceActive == 0 {
			continue
		}
		devices = append(devices, SubDevice{
			DeviceName: windows.UTF16ToString(dev.DeviceName[:]),
			DeviceID:   windows.UTF16ToString(dev.DeviceID[:]),
		})
	}
	return devices, nil
}

// PhysicalMonitors returns wrapped physical monitor handles for a monitor
// group, in the same order the OS reports them. The raw handles are wrapped
// immediately so they cannot leak on a partial failure.
func PhysicalMonitors(group HMonitor) ([]*PhysicalMonitorHandle, error) {
	var count uint32
	ret, _, err := procGetNumberOfPhysicalMonitors.Call(
		uintptr(group),
		uintptr(unsafe.Pointer(&count)),
	)
	if ret == 0 {
		return nil, fmt.Errorf("GetNumberOfPhysicalMonitorsFromHMONITOR failed: %w", err)
	}
	if count == 0 {
		return nil, nil
	}

	raw := make([]physicalMonitor, count)
	ret, _, err = procGetPhysicalMonitors.Call(
		uintptr(group),
		uintptr(count),
		uintptr(unsafe.Pointer(&raw[0])),
	)
	if ret == 0 {
		return nil, fmt.Errorf("GetPhysicalMonitorsFromHMONITOR failed: %w", err)
	}

	handles := make([]*PhysicalMonitorHandle, 0, count)
	for _, pm := range raw {
		handles = append(handles, NewPhysicalMonitorHandle(pm.Handle))
	}
	return handles, nil
}

// DdcGetBrightness reads the raw (min, current, max) brightness triple of a
// DDC/CI monitor.
func DdcGetBrightness(h *PhysicalMonitorHandle) (min, current, max uint32, err error) {
	ret, _, callErr := procGetMonitorBrightness.Call(
		uintptr(h.Raw()),
		uintptr(unsafe.Pointer(&min)),
		uintptr(unsafe.Pointer(&current)),
		uintptr(unsafe.Pointer(&max)),
	)
	if ret == 0 {
		return 0, 0, 0, fmt.Errorf("GetMonitorBrightness failed: %w", callErr)
	}
	return min, current, max, nil
}

// DdcSetBrightness writes a raw brightness value to a DDC/CI monitor.
func DdcSetBrightness(h *PhysicalMonitorHandle, raw uint32) error {
	ret, _, callErr := procSetMonitorBrightness.Call(uintptr(h.Raw()), uintptr(raw))
	if ret == 0 {
		return fmt.Errorf("SetMonitorBrightness failed: %w", callErr)
	}
	return nil
}
