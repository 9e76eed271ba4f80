// SPDX-License-Identifier: AGPL-3.0-only

package display_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sys/windows"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/display"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/display/mocks"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/winapi"
)

const (
	internalPath = `\\?\DISPLAY#SHP1523#4&1b7ba24&0&UID265988#{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}`
	externalPath = `\\?\DISPLAY#DELA1E4#5&2c8d0f4&0&UID4352#{e6f07b5f-ee97-4a90-b076-33f57bf4eaa7}`
)

func TestEnumerate_NoTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockSystemAPI(ctrl)
	api.EXPECT().EnumerateActivePaths().Return(nil, nil)

	devices, err := display.Enumerate(api)
	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestEnumerate_InternalPanel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockSystemAPI(ctrl)
	api.EXPECT().EnumerateActivePaths().Return([]winapi.PathTarget{{ID: 1}}, nil)
	api.EXPECT().ResolveTargetName(winapi.PathTarget{ID: 1}).Return(winapi.TargetName{
		FriendlyName:     "",
		DevicePath:       internalPath,
		OutputTechnology: winapi.OutputTechInternal,
	}, nil)
	api.EXPECT().AdapterDeviceName().Return(`\\.\DISPLAY1`, true)
	api.EXPECT().OpenDisplayHandle(internalPath).Return(winapi.NewDisplayHandle(windows.Handle(0x40)), nil)

	devices, err := display.Enumerate(api)
	require.NoError(t, err)
	require.Len(t, devices, 1)

	d := devices[0]
	assert.True(t, d.IsInternal())
	assert.Equal(t, internalPath, d.ID)
	assert.Equal(t, `\\.\DISPLAY1`, d.DeviceName)
	// Blank friendly name on an internal panel gets the fixed label.
	assert.Equal(t, "Internal Display", d.FriendlyName)
}

func TestEnumerate_ExternalMonitor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockSystemAPI(ctrl)
	api.EXPECT().EnumerateActivePaths().Return([]winapi.PathTarget{{ID: 2}}, nil)
	api.EXPECT().ResolveTargetName(winapi.PathTarget{ID: 2}).Return(winapi.TargetName{
		FriendlyName:     "DELL U2720Q",
		DevicePath:       externalPath,
		OutputTechnology: winapi.OutputTechDisplayPortExternal,
	}, nil)
	api.EXPECT().EnumMonitorGroups().Return([]winapi.HMonitor{1}, nil)
	api.EXPECT().SubDevices(winapi.HMonitor(1)).Return([]winapi.SubDevice{
		{DeviceName: `\\.\DISPLAY2`, DeviceID: externalPath},
	}, nil)
	api.EXPECT().PhysicalMonitors(winapi.HMonitor(1)).Return([]*winapi.PhysicalMonitorHandle{
		winapi.NewPhysicalMonitorHandle(windows.Handle(0x50)),
	}, nil)

	devices, err := display.Enumerate(api)
	require.NoError(t, err)
	require.Len(t, devices, 1)

	d := devices[0]
	assert.False(t, d.IsInternal())
	assert.Equal(t, "DELL U2720Q", d.FriendlyName)
	// The win32 device name comes from the correlated sub-device.
	assert.Equal(t, `\\.\DISPLAY2`, d.DeviceName)
}

func TestEnumerate_BlankNameExternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockSystemAPI(ctrl)
	api.EXPECT().EnumerateActivePaths().Return([]winapi.PathTarget{{ID: 2}}, nil)
	api.EXPECT().ResolveTargetName(winapi.PathTarget{ID: 2}).Return(winapi.TargetName{
		FriendlyName:     "   ",
		DevicePath:       externalPath,
		OutputTechnology: winapi.OutputTechHDMI,
	}, nil)
	api.EXPECT().EnumMonitorGroups().Return(nil, nil)

	devices, err := display.Enumerate(api)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, "Unknown Display", devices[0].FriendlyName)
}

func TestEnumerate_CorrelationMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockSystemAPI(ctrl)
	api.EXPECT().EnumerateActivePaths().Return([]winapi.PathTarget{{ID: 2}}, nil)
	api.EXPECT().ResolveTargetName(winapi.PathTarget{ID: 2}).Return(winapi.TargetName{
		FriendlyName:     "DELL U2720Q",
		DevicePath:       externalPath,
		OutputTechnology: winapi.OutputTechDisplayPortExternal,
	}, nil)
	api.EXPECT().EnumMonitorGroups().Return([]winapi.HMonitor{1}, nil)
	// A hot-plug race: two active sub-devices, one physical monitor.
	api.EXPECT().SubDevices(winapi.HMonitor(1)).Return([]winapi.SubDevice{
		{DeviceName: `\\.\DISPLAY2`, DeviceID: externalPath},
		{DeviceName: `\\.\DISPLAY3`, DeviceID: `\\?\DISPLAY#OTHER`},
	}, nil)
	api.EXPECT().PhysicalMonitors(winapi.HMonitor(1)).Return([]*winapi.PhysicalMonitorHandle{
		winapi.NewPhysicalMonitorHandle(windows.Handle(0x50)),
	}, nil)

	devices, err := display.Enumerate(api)
	require.Error(t, err)
	assert.ErrorIs(t, err, display.ErrCorrelationMismatch)
	assert.Nil(t, devices)
}

func TestEnumerate_UnresolvableTargetSkipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockSystemAPI(ctrl)
	api.EXPECT().EnumerateActivePaths().Return([]winapi.PathTarget{{ID: 1}, {ID: 2}}, nil)
	api.EXPECT().ResolveTargetName(winapi.PathTarget{ID: 1}).Return(winapi.TargetName{}, errors.New("target gone"))
	api.EXPECT().ResolveTargetName(winapi.PathTarget{ID: 2}).Return(winapi.TargetName{
		FriendlyName:     "DELL U2720Q",
		DevicePath:       externalPath,
		OutputTechnology: winapi.OutputTechDisplayPortExternal,
	}, nil)
	api.EXPECT().EnumMonitorGroups().Return(nil, nil)

	devices, err := display.Enumerate(api)
	require.NoError(t, err)
	assert.Len(t, devices, 1)
}

func TestEnumerate_AccessDeniedPanelHasNoHandle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockSystemAPI(ctrl)
	api.EXPECT().EnumerateActivePaths().Return([]winapi.PathTarget{{ID: 1}}, nil)
	api.EXPECT().ResolveTargetName(winapi.PathTarget{ID: 1}).Return(winapi.TargetName{
		DevicePath:       internalPath,
		OutputTechnology: winapi.OutputTechInternal,
	}, nil)
	api.EXPECT().AdapterDeviceName().Return(`\\.\DISPLAY1`, true)
	// Access denied surfaces as a nil handle without error.
	api.EXPECT().OpenDisplayHandle(internalPath).Return(nil, nil)
	// Correlation finds nothing either; the device is tracked handleless.
	api.EXPECT().EnumMonitorGroups().Return(nil, nil)

	devices, err := display.Enumerate(api)
	require.NoError(t, err)
	require.Len(t, devices, 1)

	_, err = devices[0].Get()
	assert.ErrorIs(t, err, display.ErrNoHandle)
}

func TestEnumerate_OpenHandleErrorAbortsScan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	api := mocks.NewMockSystemAPI(ctrl)
	api.EXPECT().EnumerateActivePaths().Return([]winapi.PathTarget{{ID: 1}}, nil)
	api.EXPECT().ResolveTargetName(winapi.PathTarget{ID: 1}).Return(winapi.TargetName{
		DevicePath:       internalPath,
		OutputTechnology: winapi.OutputTechInternal,
	}, nil)
	api.EXPECT().AdapterDeviceName().Return(`\\.\DISPLAY1`, true)
	api.EXPECT().OpenDisplayHandle(internalPath).Return(nil, errors.New("sharing violation"))

	devices, err := display.Enumerate(api)
	require.Error(t, err)
	assert.Nil(t, devices)
}
