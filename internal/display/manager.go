// SPDX-License-Identifier: AGPL-3.0-only

package display

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/brightness"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/overlay"
)

// Manager owns the shared device list. The list is the only shared mutable
// state in the daemon; the mutex is held for list reads and mutations only,
// never across a native call.
type Manager struct {
	mu      sync.Mutex
	devices []*Device

	api     SystemAPI
	overlay chan<- overlay.Command
}

// ManagerOption is a functional option for configuring a Manager.
type ManagerOption func(*Manager)

// WithSystemAPI substitutes the native API implementation, for testing.
func WithSystemAPI(api SystemAPI) ManagerOption {
	return func(m *Manager) {
		m.api = api
	}
}

// WithOverlayChannel wires the overlay command channel used for negative
// slider values.
func WithOverlayChannel(ch chan<- overlay.Command) ManagerOption {
	return func(m *Manager) {
		m.overlay = ch
	}
}

// NewManager creates a device list manager.
func NewManager(opts ...ManagerOption) *Manager {
	m := &Manager{api: NewSystemAPI()}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Count returns the number of tracked devices.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.devices)
}

// Reconcile re-enumerates attached displays and folds the result into the
// tracked list. A changed id set (size or membership) replaces the list
// wholesale; an identical id set refreshes metadata and handles in place so
// device identity survives and handles are not invalidated under in-flight
// operations. Returns whether anything observable changed.
func (m *Manager) Reconcile() (bool, error) {
	fresh, err := Enumerate(m.api)
	if err != nil {
		return false, fmt.Errorf("failed to enumerate displays: %w", err)
	}

	m.mu.Lock()
	if !sameIDSet(m.devices, fresh) {
		old := m.devices
		m.devices = fresh
		m.mu.Unlock()

		releaseDevices(old)
		log.Info().Int("count", len(fresh)).Msg("Display topology changed")
		return true, nil
	}

	changed := false
	for _, freshDev := range fresh {
		for _, existing := range m.devices {
			if existing.ID == freshDev.ID {
				if existing.adopt(freshDev) {
					changed = true
				}
				break
			}
		}
	}
	m.mu.Unlock()
	return changed, nil
}

func sameIDSet(current, fresh []*Device) bool {
	if len(current) != len(fresh) {
		return false
	}
	ids := make(map[string]struct{}, len(current))
	for _, d := range current {
		ids[d.ID] = struct{}{}
	}
	for _, d := range fresh {
		if _, ok := ids[d.ID]; !ok {
			return false
		}
	}
	return true
}

// Snapshot queries every tracked device and returns the observer projection.
// Devices that fail to answer are omitted rather than aborting the batch.
// Hardware calls happen outside the list lock.
func (m *Manager) Snapshot() []MonitorInfo {
	m.mu.Lock()
	clones := make([]*Device, 0, len(m.devices))
	for _, d := range m.devices {
		clones = append(clones, d.Clone())
	}
	m.mu.Unlock()

	infos := make([]MonitorInfo, 0, len(clones))
	for _, d := range clones {
		info, err := d.Info()
		if err != nil {
			log.Warn().Err(err).Str("device", d.FriendlyName).Msg("Skipping unresponsive device in snapshot")
		} else {
			infos = append(infos, info)
		}
		d.Release()
	}
	return infos
}

// Lookup returns a clone of the device with the given win32 device name.
// The caller must Release it.
func (m *Manager) Lookup(deviceName string) (*Device, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, d := range m.devices {
		if d.DeviceName == deviceName {
			return d.Clone(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrDeviceNotFound, deviceName)
}

// DeviceNames returns the win32 device names of all tracked devices.
func (m *Manager) DeviceNames() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.devices))
	for _, d := range m.devices {
		names = append(names, d.DeviceName)
	}
	return names
}

// SetBrightness is the command entry point. Non-negative values drive the
// hardware backend; negative values are translated to an overlay alpha and
// sent to the overlay loop. The hardware path runs on its own goroutine so
// slow DDC/CI or IOCTL calls never block the caller beyond the list lookup.
// Concurrent sets for the same device race; the last write the hardware
// observes wins.
func (m *Manager) SetBrightness(deviceName string, value int) error {
	if value > 100 {
		value = 100
	}
	if value < -100 {
		value = -100
	}

	device, err := m.Lookup(deviceName)
	if err != nil {
		return err
	}

	if value < 0 {
		if m.overlay == nil {
			device.Release()
			return ErrOverlayUnavailable
		}
		command := overlay.Command{
			Level:      brightness.AlphaForSlider(value),
			DeviceName: device.DeviceName,
		}
		device.Release()
		go func() {
			m.overlay <- command
		}()
		return nil
	}

	go func() {
		defer device.Release()
		if err := device.Set(uint32(value)); err != nil {
			log.Error().Err(err).Str("device", device.FriendlyName).Msg("Failed to set brightness")
		}
	}()
	return nil
}

// Close releases every tracked device.
func (m *Manager) Close() {
	m.mu.Lock()
	old := m.devices
	m.devices = nil
	m.mu.Unlock()

	releaseDevices(old)
}
