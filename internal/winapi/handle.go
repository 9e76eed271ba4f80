// SPDX-License-Identifier: AGPL-3.0-only

package winapi

import (
	"sync/atomic"

	"golang.org/x/sys/windows"
)

// DisplayHandle owns a CreateFileW handle on an internal panel's device path.
// The handle is shared between the device list and in-flight brightness
// operations through reference counting; the underlying CloseHandle happens
// exactly once, on the last Release, and only if the handle is valid.
// The kernel treats these handles as thread-agnostic once obtained.
type DisplayHandle struct {
	raw  windows.Handle
	refs atomic.Int32
}

// NewDisplayHandle wraps a raw handle with an initial reference count of one.
func NewDisplayHandle(raw windows.Handle) *DisplayHandle {
	h := &DisplayHandle{raw: raw}
	h.refs.Store(1)
	return h
}

// Valid reports whether the wrapper holds a usable handle.
func (h *DisplayHandle) Valid() bool {
	return h != nil && h.raw != 0 && h.raw != windows.InvalidHandle
}

// Raw returns the underlying handle value. Callers must hold a reference.
func (h *DisplayHandle) Raw() windows.Handle {
	return h.raw
}

// Retain adds a reference and returns the same wrapper.
func (h *DisplayHandle) Retain() *DisplayHandle {
	if h != nil {
		h.refs.Add(1)
	}
	return h
}

// Release drops one reference. The last release closes the handle; closing an
// invalid handle is never attempted.
func (h *DisplayHandle) Release() {
	if h == nil {
		return
	}
	if h.refs.Add(-1) == 0 && h.Valid() {
		_ = windows.CloseHandle(h.raw)
		h.raw = windows.InvalidHandle
	}
}

// Equal compares by raw handle value.
func (h *DisplayHandle) Equal(other *DisplayHandle) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.raw == other.raw
}

// PhysicalMonitorHandle owns a PHYSICAL_MONITOR handle used by the DDC/CI
// backend. Same sharing rules as DisplayHandle; teardown goes through
// DestroyPhysicalMonitor instead of CloseHandle.
type PhysicalMonitorHandle struct {
	raw  windows.Handle
	refs atomic.Int32
}

// NewPhysicalMonitorHandle wraps a raw handle with a reference count of one.
func NewPhysicalMonitorHandle(raw windows.Handle) *PhysicalMonitorHandle {
	h := &PhysicalMonitorHandle{raw: raw}
	h.refs.Store(1)
	return h
}

// Valid reports whether the wrapper holds a usable handle.
func (h *PhysicalMonitorHandle) Valid() bool {
	return h != nil && h.raw != 0 && h.raw != windows.InvalidHandle
}

// Raw returns the underlying handle value. Callers must hold a reference.
func (h *PhysicalMonitorHandle) Raw() windows.Handle {
	return h.raw
}

// Retain adds a reference and returns the same wrapper.
func (h *PhysicalMonitorHandle) Retain() *PhysicalMonitorHandle {
	if h != nil {
		h.refs.Add(1)
	}
	return h
}

// Release drops one reference, destroying the physical monitor on the last
// one. Invalid handles are never passed to the native teardown call.
func (h *PhysicalMonitorHandle) Release() {
	if h == nil {
		return
	}
	if h.refs.Add(-1) == 0 && h.Valid() {
		_, _, _ = procDestroyPhysicalMonitor.Call(uintptr(h.raw))
		h.raw = windows.InvalidHandle
	}
}

// Equal compares by raw handle value.
func (h *PhysicalMonitorHandle) Equal(other *PhysicalMonitorHandle) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.raw == other.raw
}
