// SPDX-License-Identifier: AGPL-3.0-only

// Package overlay simulates brightness below the hardware floor by holding
// one topmost, input-transparent black window per monitor and driving its
// compositing alpha from inbound commands. Native UI messages must be pumped
// on the thread that created the windows, so the loop runs on its own locked
// OS thread and talks to the rest of the daemon only through a bounded
// channel.
package overlay

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/winapi"
)

// Command adjusts one overlay window. Level is the target alpha: 0 is fully
// transparent, 255 fully opaque black.
type Command struct {
	Level      uint8
	DeviceName string
}

const (
	// DefaultQueueSize bounds the command channel. A full channel at burst
	// load delays a dim command by one loop tick; it is never dropped.
	DefaultQueueSize = 32

	// tickInterval is one display refresh at 60 Hz.
	tickInterval = 16 * time.Millisecond

	className = "FadeOverlay"
)

// Loop owns the overlay windows and their message pump.
type Loop struct {
	commands chan Command
	quit     chan struct{}
	stopOnce sync.Once

	createWindows func() (map[string]winapi.HWnd, error)
	setAlpha      func(winapi.HWnd, uint8) error
	pump          func() bool
	tick          time.Duration
}

// Option is a functional option for configuring a Loop.
type Option func(*Loop)

// WithWindowFactory substitutes overlay window creation, for testing.
func WithWindowFactory(fn func() (map[string]winapi.HWnd, error)) Option {
	return func(l *Loop) {
		l.createWindows = fn
	}
}

// WithAlphaSetter substitutes the alpha application call, for testing.
func WithAlphaSetter(fn func(winapi.HWnd, uint8) error) Option {
	return func(l *Loop) {
		l.setAlpha = fn
	}
}

// WithMessagePump substitutes the native message pump, for testing.
func WithMessagePump(fn func() bool) Option {
	return func(l *Loop) {
		l.pump = fn
	}
}

// WithTickInterval overrides the loop tick, for testing.
func WithTickInterval(d time.Duration) Option {
	return func(l *Loop) {
		l.tick = d
	}
}

// New creates an overlay loop with a command channel of the given capacity.
func New(queueSize int, opts ...Option) *Loop {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	l := &Loop{
		commands:      make(chan Command, queueSize),
		quit:          make(chan struct{}),
		createWindows: defaultCreateWindows,
		setAlpha:      winapi.SetWindowAlpha,
		pump:          winapi.PumpMessages,
		tick:          tickInterval,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Commands returns the inbound command channel.
func (l *Loop) Commands() chan<- Command {
	return l.commands
}

// Run creates the overlay windows and pumps messages until Stop is called or
// the native subsystem posts a quit message. It locks the calling goroutine
// to its OS thread and in practice runs for the process lifetime.
func (l *Loop) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	windows, err := l.createWindows()
	if err != nil {
		return fmt.Errorf("failed to create overlay windows: %w", err)
	}
	defer func() {
		for _, hwnd := range windows {
			winapi.DestroyOverlayWindow(hwnd)
		}
	}()

	log.Debug().Int("windows", len(windows)).Msg("Overlay loop started")

	for {
		// At most one command per tick keeps the pump responsive.
		select {
		case cmd := <-l.commands:
			l.apply(windows, cmd)
		default:
		}

		if l.pump() {
			log.Debug().Msg("Overlay loop received quit message")
			return nil
		}

		select {
		case <-l.quit:
			return nil
		case <-time.After(l.tick):
		}
	}
}

// Stop terminates the loop. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.quit)
	})
}

func (l *Loop) apply(windows map[string]winapi.HWnd, cmd Command) {
	hwnd, ok := windows[cmd.DeviceName]
	if !ok {
		log.Warn().Str("device", cmd.DeviceName).Msg("Overlay command for unknown device")
		return
	}
	if err := l.setAlpha(hwnd, cmd.Level); err != nil {
		log.Error().Err(err).Str("device", cmd.DeviceName).Msg("Failed to set overlay alpha")
		return
	}
	log.Debug().Str("device", cmd.DeviceName).Uint8("alpha", cmd.Level).Msg("Overlay alpha applied")
}

// defaultCreateWindows registers the overlay class and creates one window per
// monitor rectangle, keyed by the monitor's device name.
func defaultCreateWindows() (map[string]winapi.HWnd, error) {
	if err := winapi.RegisterOverlayClass(className); err != nil {
		return nil, err
	}

	rects, err := winapi.MonitorRects()
	if err != nil {
		return nil, err
	}

	windows := make(map[string]winapi.HWnd, len(rects))
	for _, rect := range rects {
		hwnd, err := winapi.CreateOverlayWindow(className, rect.Bounds)
		if err != nil {
			log.Error().Err(err).Str("device", rect.DeviceName).Msg("Failed to create overlay window")
			continue
		}
		windows[rect.DeviceName] = hwnd
		log.Debug().Str("device", rect.DeviceName).Msg("Created dim overlay window")
	}
	return windows, nil
}
