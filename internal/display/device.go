// SPDX-License-Identifier: AGPL-3.0-only

package display

import (
	"fmt"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/winapi"
)

// Device is one currently-known logical display. Exactly one of the two
// handles is valid: the display handle for internal panels, the physical
// monitor handle for external DDC/CI monitors, decided by the output
// technology.
type Device struct {
	// ID is the monitor device path: unique per physical connection point
	// and stable across reconnection at the same port.
	ID string
	// DeviceName is the win32 logical device name, the key for overlay and
	// gamma operations. May change across replug.
	DeviceName string
	// FriendlyName is the label shown in Settings, with a fixed fallback
	// when the native API reports a blank name.
	FriendlyName string
	// OutputTechnology classifies the physical connection and is the sole
	// signal for backend selection.
	OutputTechnology winapi.OutputTechnology

	displayHandle   *winapi.DisplayHandle
	physicalMonitor *winapi.PhysicalMonitorHandle
	api             SystemAPI
}

// MonitorInfo is the serializable projection of a Device sent to observers.
// Derived on demand, never stored.
type MonitorInfo struct {
	DeviceName string `json:"device_name"`
	Name       string `json:"name"`
	Brightness uint32 `json:"brightness"`
}

// IsInternal reports whether the device is a firmware-driven panel.
func (d *Device) IsInternal() bool {
	return d.OutputTechnology.IsInternal()
}

// Get returns the device's current brightness as a 0-100 percentage through
// whichever backend the output technology selects.
func (d *Device) Get() (uint32, error) {
	if d.IsInternal() {
		return d.ioctlGet()
	}
	return d.ddcGet()
}

// Set drives the device's brightness to a 0-100 percentage. Internal panels
// are snapped to the nearest supported discrete level; DDC/CI monitors get a
// raw value interpolated over their reported range.
func (d *Device) Set(percentage uint32) error {
	if d.IsInternal() {
		return d.ioctlSet(percentage)
	}
	return d.ddcSet(percentage)
}

// Info builds the observer projection for this device.
func (d *Device) Info() (MonitorInfo, error) {
	current, err := d.Get()
	if err != nil {
		return MonitorInfo{}, err
	}
	return MonitorInfo{
		DeviceName: d.DeviceName,
		Name:       d.FriendlyName,
		Brightness: current,
	}, nil
}

func (d *Device) ioctlGet() (uint32, error) {
	if !d.displayHandle.Valid() {
		return 0, fmt.Errorf("device %q: %w", d.FriendlyName, ErrNoHandle)
	}
	record, err := d.api.QueryDisplayBrightness(d.displayHandle)
	if err != nil {
		return 0, fmt.Errorf("failed to query brightness (ioctl) for device %q: %w", d.FriendlyName, err)
	}
	switch record.Policy {
	case winapi.DisplayPolicyAC:
		return uint32(record.AC), nil
	case winapi.DisplayPolicyDC:
		return uint32(record.DC), nil
	default:
		return 0, fmt.Errorf("device %q: %w: %d", d.FriendlyName, ErrUnknownPolicy, record.Policy)
	}
}

func (d *Device) ioctlSet(percentage uint32) error {
	if !d.displayHandle.Valid() {
		return fmt.Errorf("device %q: %w", d.FriendlyName, ErrNoHandle)
	}
	levels, err := d.api.QuerySupportedBrightness(d.displayHandle)
	if err != nil {
		return fmt.Errorf("failed to query supported levels (ioctl) for device %q: %w", d.FriendlyName, err)
	}
	if err := d.api.SetDisplayBrightness(d.displayHandle, levels.Nearest(percentage)); err != nil {
		return fmt.Errorf("failed to set brightness (ioctl) for device %q: %w", d.FriendlyName, err)
	}
	return nil
}

func (d *Device) ddcGet() (uint32, error) {
	if !d.physicalMonitor.Valid() {
		return 0, fmt.Errorf("device %q: %w", d.FriendlyName, ErrNoHandle)
	}
	values, err := d.api.DdcGetBrightness(d.physicalMonitor)
	if err != nil {
		return 0, fmt.Errorf("failed to get brightness (ddcci) for device %q: %w", d.FriendlyName, err)
	}
	percentage, err := values.CurrentPercentage()
	if err != nil {
		return 0, fmt.Errorf("device %q: %w", d.FriendlyName, err)
	}
	return percentage, nil
}

// ddcSet re-reads the monitor's range first: DDC/CI has no absolute
// percentage setter, only raw values inside (min, max).
func (d *Device) ddcSet(percentage uint32) error {
	if !d.physicalMonitor.Valid() {
		return fmt.Errorf("device %q: %w", d.FriendlyName, ErrNoHandle)
	}
	values, err := d.api.DdcGetBrightness(d.physicalMonitor)
	if err != nil {
		return fmt.Errorf("failed to get brightness (ddcci) for device %q: %w", d.FriendlyName, err)
	}
	raw, err := values.RawFromPercentage(percentage)
	if err != nil {
		return fmt.Errorf("device %q: %w", d.FriendlyName, err)
	}
	if err := d.api.DdcSetBrightness(d.physicalMonitor, raw); err != nil {
		return fmt.Errorf("failed to set brightness (ddcci) for device %q: %w", d.FriendlyName, err)
	}
	return nil
}

// Clone returns a copy holding its own references to the device's handles,
// so the copy stays usable after the device list drops or replaces the
// original. The caller must Release the clone.
func (d *Device) Clone() *Device {
	clone := *d
	clone.displayHandle = d.displayHandle.Retain()
	clone.physicalMonitor = d.physicalMonitor.Retain()
	return &clone
}

// Release drops this device's handle references.
func (d *Device) Release() {
	d.displayHandle.Release()
	d.physicalMonitor.Release()
	d.displayHandle = nil
	d.physicalMonitor = nil
}

// adopt takes over the metadata and handles of a freshly-enumerated device
// with the same ID, releasing the handles held so far. Returns whether any
// metadata actually changed. The donor must not be used afterwards.
func (d *Device) adopt(fresh *Device) bool {
	changed := d.FriendlyName != fresh.FriendlyName ||
		d.DeviceName != fresh.DeviceName ||
		d.OutputTechnology != fresh.OutputTechnology

	d.FriendlyName = fresh.FriendlyName
	d.DeviceName = fresh.DeviceName
	d.OutputTechnology = fresh.OutputTechnology

	if d.displayHandle != fresh.displayHandle {
		d.displayHandle.Release()
		d.displayHandle = fresh.displayHandle
	}
	if d.physicalMonitor != fresh.physicalMonitor {
		d.physicalMonitor.Release()
		d.physicalMonitor = fresh.physicalMonitor
	}
	return changed
}
