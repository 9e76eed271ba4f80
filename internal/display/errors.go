// SPDX-License-Identifier: AGPL-3.0-only

package display

import "errors"

// ErrDeviceNotFound is returned when a command references a device name that
// is not in the current device list.
var ErrDeviceNotFound = errors.New("device not found")

// ErrCorrelationMismatch is returned when the sub-device and physical monitor
// lists of a monitor group differ in length. The two native APIs are not
// transactionally consistent; a hot-plug mid-enumeration makes index
// correlation impossible, so the whole scan is aborted and retried.
var ErrCorrelationMismatch = errors.New("sub-device and physical monitor lists differ in length")

// ErrOverlayUnavailable is returned when a dim command arrives before the
// overlay subsystem is initialized.
var ErrOverlayUnavailable = errors.New("overlay channel not initialized")

// ErrUnknownPolicy is returned when the firmware reports a display brightness
// policy that is neither AC nor DC.
var ErrUnknownPolicy = errors.New("unexpected display brightness policy")

// ErrNoHandle is returned when a brightness operation reaches a device that
// ended up without a usable handle (e.g. a remote-session placeholder).
var ErrNoHandle = errors.New("device has no usable handle")
