// SPDX-License-Identifier: AGPL-3.0-only

// Package winapi contains the raw Win32 display-subsystem bindings used by the
// daemon: display-configuration queries, physical monitor resolution, DDC/CI
// and video IOCTL brightness primitives, layered overlay windows and gamma
// ramps. Everything above this package works with the exported wrapper types
// and never touches a raw handle directly.
package winapi

import (
	"golang.org/x/sys/windows"
)

var (
	user32   = windows.NewLazySystemDLL("user32.dll")
	gdi32    = windows.NewLazySystemDLL("gdi32.dll")
	dxva2    = windows.NewLazySystemDLL("dxva2.dll")
	kernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procGetModuleHandleW = kernel32.NewProc("GetModuleHandleW")

	procGetDisplayConfigBufferSizes = user32.NewProc("GetDisplayConfigBufferSizes")
	procQueryDisplayConfig          = user32.NewProc("QueryDisplayConfig")
	procDisplayConfigGetDeviceInfo  = user32.NewProc("DisplayConfigGetDeviceInfo")
	procEnumDisplayMonitors         = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW             = user32.NewProc("GetMonitorInfoW")
	procEnumDisplayDevicesW         = user32.NewProc("EnumDisplayDevicesW")

	procRegisterClassExW           = user32.NewProc("RegisterClassExW")
	procCreateWindowExW            = user32.NewProc("CreateWindowExW")
	procDestroyWindow              = user32.NewProc("DestroyWindow")
	procDefWindowProcW             = user32.NewProc("DefWindowProcW")
	procPeekMessageW               = user32.NewProc("PeekMessageW")
	procTranslateMessage           = user32.NewProc("TranslateMessage")
	procDispatchMessageW           = user32.NewProc("DispatchMessageW")
	procSetLayeredWindowAttributes = user32.NewProc("SetLayeredWindowAttributes")
	procShowWindow                 = user32.NewProc("ShowWindow")
	procBeginPaint                 = user32.NewProc("BeginPaint")
	procEndPaint                   = user32.NewProc("EndPaint")
	procFillRect                   = user32.NewProc("FillRect")

	procGetStockObject     = gdi32.NewProc("GetStockObject")
	procCreateDCW          = gdi32.NewProc("CreateDCW")
	procDeleteDC           = gdi32.NewProc("DeleteDC")
	procSetDeviceGammaRamp = gdi32.NewProc("SetDeviceGammaRamp")

	procGetNumberOfPhysicalMonitors = dxva2.NewProc("GetNumberOfPhysicalMonitorsFromHMONITOR")
	procGetPhysicalMonitors         = dxva2.NewProc("GetPhysicalMonitorsFromHMONITOR")
	procDestroyPhysicalMonitor      = dxva2.NewProc("DestroyPhysicalMonitor")
	procGetMonitorBrightness        = dxva2.NewProc("GetMonitorBrightness")
	procSetMonitorBrightness        = dxva2.NewProc("SetMonitorBrightness")
)

const (
	qdcOnlyActivePaths = 2

	displayConfigModeInfoTypeTarget   = 2
	displayConfigDeviceInfoTargetName = 2

	eddGetDeviceInterfaceName = 1
	displayDeviceActive       = 1

	// ntddvdeo.h video IOCTLs, METHOD_BUFFERED | FILE_ANY_ACCESS.
	ioctlVideoQuerySupportedBrightness = 0x00230494
	ioctlVideoQueryDisplayBrightness   = 0x00230498
	ioctlVideoSetDisplayBrightness     = 0x0023049C

	// DISPLAY_BRIGHTNESS.ucDisplayPolicy values.
	DisplayPolicyAC   = 1
	DisplayPolicyDC   = 2
	DisplayPolicyBoth = 3
)

// OutputTechnology is the DISPLAYCONFIG_VIDEO_OUTPUT_TECHNOLOGY of a target.
type OutputTechnology uint32

const (
	OutputTechOther               OutputTechnology = 0xFFFFFFFF
	OutputTechHD15                OutputTechnology = 0
	OutputTechDVI                 OutputTechnology = 4
	OutputTechHDMI                OutputTechnology = 5
	OutputTechLVDS                OutputTechnology = 6
	OutputTechDisplayPortExternal OutputTechnology = 10
	OutputTechDisplayPortEmbedded OutputTechnology = 11
	OutputTechInternal            OutputTechnology = 0x80000000
)

// IsInternal reports whether the connection belongs to a panel driven directly
// by the host firmware (video IOCTL path) rather than DDC/CI.
func (t OutputTechnology) IsInternal() bool {
	switch t {
	case OutputTechInternal, OutputTechLVDS, OutputTechDisplayPortEmbedded:
		return true
	}
	return false
}
