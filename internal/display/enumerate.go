// SPDX-License-Identifier: AGPL-3.0-only

package display

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/winapi"
)

const (
	internalDisplayLabel = "Internal Display"
	unknownDisplayLabel  = "Unknown Display"
)

// Enumerate builds the authoritative list of logical displays by
// cross-referencing display-configuration targets with monitor-group
// sub-devices and physical monitor handles. Any hard failure aborts the
// whole scan: a torn scan could cross-wire a handle with the wrong display,
// so there is no partial success.
func Enumerate(api SystemAPI) ([]*Device, error) {
	targets, err := api.EnumerateActivePaths()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate active display paths: %w", err)
	}

	var devices []*Device
	for _, target := range targets {
		name, err := api.ResolveTargetName(target)
		if err != nil {
			log.Debug().Err(err).Uint32("target", target.ID).Msg("Skipping unresolvable target")
			continue
		}

		friendly := name.FriendlyName
		if strings.TrimSpace(friendly) == "" {
			// Blank names are common for internal and embedded panels.
			if name.OutputTechnology.IsInternal() {
				friendly = internalDisplayLabel
			} else {
				friendly = unknownDisplayLabel
			}
		}

		var deviceName string
		var displayHandle *winapi.DisplayHandle
		if name.OutputTechnology.IsInternal() {
			if adapter, ok := api.AdapterDeviceName(); ok {
				deviceName = adapter
			}
			displayHandle, err = api.OpenDisplayHandle(name.DevicePath)
			if err != nil {
				releaseDevices(devices)
				return nil, fmt.Errorf("failed to open display handle for device %q: %w", friendly, err)
			}
		}

		var physicalMonitor *winapi.PhysicalMonitorHandle
		if !displayHandle.Valid() {
			var subName string
			physicalMonitor, subName, err = correlatePhysicalMonitor(api, name.DevicePath)
			if err != nil {
				displayHandle.Release()
				releaseDevices(devices)
				return nil, err
			}
			if subName != "" {
				deviceName = subName
			}
		}

		devices = append(devices, &Device{
			ID:               name.DevicePath,
			DeviceName:       deviceName,
			FriendlyName:     friendly,
			OutputTechnology: name.OutputTechnology,
			displayHandle:    displayHandle,
			physicalMonitor:  physicalMonitor,
			api:              api,
		})
	}
	return devices, nil
}

// correlatePhysicalMonitor resolves the physical monitor handle for a device
// path by array-index correlation: for each monitor group, the sub-device
// list and the physical monitor list are fetched in parallel order and walked
// pairwise. There is no direct key between the two APIs; if their lengths
// disagree a hot-plug raced the enumeration and the scan must be retried.
// The first match wins and further groups are not inspected.
func correlatePhysicalMonitor(api SystemAPI, devicePath string) (*winapi.PhysicalMonitorHandle, string, error) {
	groups, err := api.EnumMonitorGroups()
	if err != nil {
		return nil, "", fmt.Errorf("failed to enumerate monitor groups: %w", err)
	}

	for _, group := range groups {
		subDevices, err := api.SubDevices(group)
		if err != nil {
			return nil, "", fmt.Errorf("failed to list sub-devices: %w", err)
		}
		physicalMonitors, err := api.PhysicalMonitors(group)
		if err != nil {
			return nil, "", fmt.Errorf("failed to list physical monitors: %w", err)
		}
		if len(subDevices) != len(physicalMonitors) {
			releaseHandles(physicalMonitors)
			return nil, "", fmt.Errorf("%w: %d sub-devices vs %d physical monitors",
				ErrCorrelationMismatch, len(subDevices), len(physicalMonitors))
		}

		for i, sub := range subDevices {
			if sub.DeviceID == devicePath {
				found := physicalMonitors[i]
				physicalMonitors[i] = nil
				releaseHandles(physicalMonitors)
				return found, sub.DeviceName, nil
			}
		}
		releaseHandles(physicalMonitors)
	}

	// No group claims this path; the device stays without a handle, like a
	// remote-session placeholder.
	return nil, "", nil
}

func releaseHandles(handles []*winapi.PhysicalMonitorHandle) {
	for _, h := range handles {
		h.Release()
	}
}

func releaseDevices(devices []*Device) {
	for _, d := range devices {
		d.Release()
	}
}
