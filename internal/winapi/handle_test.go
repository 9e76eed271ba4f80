// SPDX-License-Identifier: AGPL-3.0-only

package winapi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/windows"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/winapi"
)

func TestDisplayHandle_Valid(t *testing.T) {
	var nilHandle *winapi.DisplayHandle
	assert.False(t, nilHandle.Valid())
	assert.False(t, winapi.NewDisplayHandle(0).Valid())
	assert.False(t, winapi.NewDisplayHandle(windows.InvalidHandle).Valid())
	assert.True(t, winapi.NewDisplayHandle(windows.Handle(0x40)).Valid())
}

func TestDisplayHandle_NilSafety(t *testing.T) {
	var h *winapi.DisplayHandle
	assert.Nil(t, h.Retain())
	h.Release()
}

func TestDisplayHandle_ReleaseInvalidIsNoop(t *testing.T) {
	h := winapi.NewDisplayHandle(windows.InvalidHandle)
	h.Release()
	h.Release()
	assert.False(t, h.Valid())
}

func TestDisplayHandle_RetainKeepsHandleOpen(t *testing.T) {
	h := winapi.NewDisplayHandle(windows.InvalidHandle)
	clone := h.Retain()
	assert.Same(t, h, clone)
	clone.Release()
	h.Release()
}

func TestDisplayHandle_Equal(t *testing.T) {
	a := winapi.NewDisplayHandle(windows.Handle(0x40))
	b := winapi.NewDisplayHandle(windows.Handle(0x40))
	c := winapi.NewDisplayHandle(windows.Handle(0x41))

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))

	var nilHandle *winapi.DisplayHandle
	assert.True(t, nilHandle.Equal(nil))
}

func TestPhysicalMonitorHandle_Valid(t *testing.T) {
	var nilHandle *winapi.PhysicalMonitorHandle
	assert.False(t, nilHandle.Valid())
	assert.False(t, winapi.NewPhysicalMonitorHandle(0).Valid())
	assert.True(t, winapi.NewPhysicalMonitorHandle(windows.Handle(0x50)).Valid())
}

func TestPhysicalMonitorHandle_NilSafety(t *testing.T) {
	var h *winapi.PhysicalMonitorHandle
	assert.Nil(t, h.Retain())
	h.Release()
}
