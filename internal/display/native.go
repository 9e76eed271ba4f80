// SPDX-License-Identifier: AGPL-3.0-only

// Package display owns the logical display list: enumeration of attached
// monitors, the dual-protocol brightness dispatch (video IOCTLs for internal
// panels, DDC/CI for external monitors) and the command entry point.
package display

import (
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/brightness"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/winapi"
)

//go:generate mockgen -source=native.go -destination=mocks/native_mock.go -package=mocks

// SystemAPI is the native display-subsystem surface the package consumes.
// The production implementation delegates to winapi; tests substitute a mock.
type SystemAPI interface {
	// EnumerateActivePaths returns one record per active target device.
	EnumerateActivePaths() ([]winapi.PathTarget, error)

	// ResolveTargetName resolves a target's friendly name, device path and
	// output technology. May fail per record.
	ResolveTargetName(target winapi.PathTarget) (winapi.TargetName, error)

	// OpenDisplayHandle opens the IOCTL handle for an internal panel.
	// Returns (nil, nil) when access is denied, i.e. not a real display.
	OpenDisplayHandle(devicePath string) (*winapi.DisplayHandle, error)

	// AdapterDeviceName returns the first adapter's win32 device name.
	AdapterDeviceName() (string, bool)

	// EnumMonitorGroups returns all logical monitor group handles.
	EnumMonitorGroups() ([]winapi.HMonitor, error)

	// SubDevices returns the active display devices of a group, in
	// enumeration order.
	SubDevices(group winapi.HMonitor) ([]winapi.SubDevice, error)

	// PhysicalMonitors returns the group's physical monitor handles, in the
	// same order SubDevices reports its devices.
	PhysicalMonitors(group winapi.HMonitor) ([]*winapi.PhysicalMonitorHandle, error)

	// DdcGetBrightness reads the raw brightness triple of a DDC/CI monitor.
	DdcGetBrightness(h *winapi.PhysicalMonitorHandle) (brightness.DdcciValues, error)

	// DdcSetBrightness writes a raw brightness value to a DDC/CI monitor.
	DdcSetBrightness(h *winapi.PhysicalMonitorHandle, raw uint32) error

	// QuerySupportedBrightness returns the discrete levels a panel accepts.
	QuerySupportedBrightness(h *winapi.DisplayHandle) (brightness.SupportedLevels, error)

	// QueryDisplayBrightness reads a panel's brightness policy record.
	QueryDisplayBrightness(h *winapi.DisplayHandle) (winapi.DisplayBrightness, error)

	// SetDisplayBrightness writes a discrete level for both power policies.
	SetDisplayBrightness(h *winapi.DisplayHandle, level uint8) error
}

type systemAPI struct{}

// NewSystemAPI returns the production SystemAPI backed by the Win32 display
// subsystem.
func NewSystemAPI() SystemAPI {
	return systemAPI{}
}

func (systemAPI) EnumerateActivePaths() ([]winapi.PathTarget, error) {
	return winapi.EnumerateActivePaths()
}

func (systemAPI) ResolveTargetName(target winapi.PathTarget) (winapi.TargetName, error) {
	return winapi.ResolveTargetName(target)
}

func (systemAPI) OpenDisplayHandle(devicePath string) (*winapi.DisplayHandle, error) {
	return winapi.OpenDisplayHandle(devicePath)
}

func (systemAPI) AdapterDeviceName() (string, bool) {
	return winapi.AdapterDeviceName()
}

func (systemAPI) EnumMonitorGroups() ([]winapi.HMonitor, error) {
	return winapi.EnumMonitorGroups()
}

func (systemAPI) SubDevices(group winapi.HMonitor) ([]winapi.SubDevice, error) {
	return winapi.SubDevices(group)
}

func (systemAPI) PhysicalMonitors(group winapi.HMonitor) ([]*winapi.PhysicalMonitorHandle, error) {
	return winapi.PhysicalMonitors(group)
}

func (systemAPI) DdcGetBrightness(h *winapi.PhysicalMonitorHandle) (brightness.DdcciValues, error) {
	min, current, max, err := winapi.DdcGetBrightness(h)
	if err != nil {
		return brightness.DdcciValues{}, err
	}
	return brightness.DdcciValues{Min: min, Max: max, Current: current}, nil
}

func (systemAPI) DdcSetBrightness(h *winapi.PhysicalMonitorHandle, raw uint32) error {
	return winapi.DdcSetBrightness(h, raw)
}

func (systemAPI) QuerySupportedBrightness(h *winapi.DisplayHandle) (brightness.SupportedLevels, error) {
	levels, err := winapi.QuerySupportedBrightness(h)
	if err != nil {
		return nil, err
	}
	return brightness.SupportedLevels(levels), nil
}

func (systemAPI) QueryDisplayBrightness(h *winapi.DisplayHandle) (winapi.DisplayBrightness, error) {
	return winapi.QueryDisplayBrightness(h)
}

func (systemAPI) SetDisplayBrightness(h *winapi.DisplayHandle, level uint8) error {
	return winapi.SetDisplayBrightness(h, level)
}
