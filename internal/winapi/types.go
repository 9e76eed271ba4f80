package winapi

import "golang.org/x/sys/windows"

// HMonitor is a logical monitor group handle. One group may correspond to
// several physical monitors, e.g. in "Duplicate" mode.
type HMonitor uintptr

// HWnd is an overlay window handle.
type HWnd uintptr

// LUID identifies a display adapter.
type LUID struct {
	LowPart  uint32
	HighPart int32
}

// PathTarget identifies one target mode record returned by the
// display-configuration subsystem.
type PathTarget struct {
	AdapterID LUID
	ID        uint32
}

// TargetName is the resolved identity of a PathTarget.
type TargetName struct {
	FriendlyName     string
	DevicePath       string
	OutputTechnology OutputTechnology
}

// SubDevice is one active display device belonging to a monitor group.
type SubDevice struct {
	DeviceName string
	DeviceID   string
}

// Rect is a RECT in virtual-screen coordinates.
type Rect struct {
	Left   int32
	Top    int32
	Right  int32
	Bottom int32
}

// MonitorRect pairs a monitor's device name with its full rectangle.
type MonitorRect struct {
	DeviceName string
	Bounds     Rect
}

// DisplayBrightness mirrors the DISPLAY_BRIGHTNESS structure of the video
// IOCTL interface. AC and DC are 0-100 percentages.
type DisplayBrightness struct {
	Policy uint8
	AC     uint8
	DC     uint8
}

type displayConfigRational struct {
	Numerator   uint32
	Denominator uint32
}

type displayConfigPathSourceInfo struct {
	AdapterID   LUID
	ID          uint32
	ModeInfoIdx uint32
	StatusFlags uint32
}

type displayConfigPathTargetInfo struct {
	AdapterID        LUID
	ID               uint32
	ModeInfoIdx      uint32
	OutputTechnology uint32
	Rotation         uint32
	Scaling          uint32
	RefreshRate      displayConfigRational
	ScanLineOrdering uint32
	TargetAvailable  int32
	StatusFlags      uint32
}

type displayConfigPathInfo struct {
	SourceInfo displayConfigPathSourceInfo
	TargetInfo displayConfigPathTargetInfo
	Flags      uint32
}

type displayConfigModeInfo struct {
	InfoType  uint32
	ID        uint32
	AdapterID LUID
	// Union of DISPLAYCONFIG_TARGET_MODE / DISPLAYCONFIG_SOURCE_MODE /
	// DISPLAYCONFIG_DESKTOP_IMAGE_INFO; only the discriminator above is read.
	Mode [48]byte
}

type displayConfigDeviceInfoHeader struct {
	Type      uint32
	Size      uint32
	AdapterID LUID
	ID        uint32
}

type displayConfigTargetDeviceName struct {
	Header                    displayConfigDeviceInfoHeader
	Flags                     uint32
	OutputTechnology          uint32
	EdidManufactureID         uint16
	EdidProductCodeID         uint16
	ConnectorInstance         uint32
	MonitorFriendlyDeviceName [64]uint16
	MonitorDevicePath         [128]uint16
}

type displayDeviceW struct {
	Cb           uint32
	DeviceName   [32]uint16
	DeviceString [128]uint16
	StateFlags   uint32
	DeviceID     [128]uint16
	DeviceKey    [128]uint16
}

type monitorInfoExW struct {
	CbSize  uint32
	Monitor Rect
	Work    Rect
	Flags   uint32
	Device  [32]uint16
}

type physicalMonitor struct {
	Handle      windows.Handle
	Description [128]uint16
}

type wndClassExW struct {
	CbSize        uint32
	Style         uint32
	WndProc       uintptr
	ClsExtra      int32
	WndExtra      int32
	Instance      windows.Handle
	Icon          uintptr
	Cursor        uintptr
	Background    uintptr
	MenuName      *uint16
	ClassName     *uint16
	IconSm        uintptr
}

type point struct {
	X int32
	Y int32
}

type msg struct {
	HWnd    HWnd
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type paintStruct struct {
	HDC         uintptr
	Erase       int32
	Paint       Rect
	Restore     int32
	IncUpdate   int32
	RgbReserved [32]byte
}
