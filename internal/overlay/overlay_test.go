// SPDX-License-Identifier: AGPL-3.0-only

package overlay_test

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/overlay"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/winapi"
)

type appliedAlpha struct {
	hwnd  winapi.HWnd
	level uint8
}

// startLoop runs a loop with fake window plumbing and returns the channel of
// applied alpha changes together with the Run result channel.
func startLoop(t *testing.T, windows map[string]winapi.HWnd, opts ...overlay.Option) (*overlay.Loop, chan appliedAlpha, chan error) {
	t.Helper()

	applied := make(chan appliedAlpha, 16)
	base := []overlay.Option{
		overlay.WithWindowFactory(func() (map[string]winapi.HWnd, error) {
			return windows, nil
		}),
		overlay.WithAlphaSetter(func(hwnd winapi.HWnd, level uint8) error {
			applied <- appliedAlpha{hwnd: hwnd, level: level}
			return nil
		}),
		overlay.WithMessagePump(func() bool { return false }),
		overlay.WithTickInterval(time.Millisecond),
	}

	l := overlay.New(4, append(base, opts...)...)
	done := make(chan error, 1)
	go func() { done <- l.Run() }()
	return l, applied, done
}

func TestLoop_AppliesCommand(t *testing.T) {
	l, applied, done := startLoop(t, map[string]winapi.HWnd{`\\.\DISPLAY1`: 1})
	defer l.Stop()

	l.Commands() <- overlay.Command{Level: 200, DeviceName: `\\.\DISPLAY1`}

	select {
	case got := <-applied:
		assert.Equal(t, winapi.HWnd(1), got.hwnd)
		assert.Equal(t, uint8(200), got.level)
	case <-time.After(time.Second):
		t.Fatal("alpha was never applied")
	}

	l.Stop()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestLoop_UnknownDeviceIgnored(t *testing.T) {
	l, applied, _ := startLoop(t, map[string]winapi.HWnd{`\\.\DISPLAY1`: 1})
	defer l.Stop()

	// The unknown device is dropped; the next command still lands.
	l.Commands() <- overlay.Command{Level: 50, DeviceName: `\\.\DISPLAY9`}
	l.Commands() <- overlay.Command{Level: 60, DeviceName: `\\.\DISPLAY1`}

	select {
	case got := <-applied:
		assert.Equal(t, uint8(60), got.level)
	case <-time.After(time.Second):
		t.Fatal("alpha was never applied")
	}
	assert.Empty(t, applied)
}

func TestLoop_WindowFactoryError(t *testing.T) {
	l := overlay.New(4, overlay.WithWindowFactory(func() (map[string]winapi.HWnd, error) {
		return nil, errors.New("class registration failed")
	}))
	err := l.Run()
	assert.Error(t, err)
}

func TestLoop_QuitMessageEndsRun(t *testing.T) {
	var pumped atomic.Bool
	l, _, done := startLoop(t, map[string]winapi.HWnd{},
		overlay.WithMessagePump(func() bool {
			pumped.Store(true)
			return true
		}))
	defer l.Stop()

	select {
	case err := <-done:
		require.NoError(t, err)
		assert.True(t, pumped.Load())
	case <-time.After(time.Second):
		t.Fatal("loop ignored the quit message")
	}
}

func TestLoop_StopIsIdempotent(t *testing.T) {
	l, _, done := startLoop(t, map[string]winapi.HWnd{})
	l.Stop()
	l.Stop()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}
