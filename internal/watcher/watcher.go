// SPDX-License-Identifier: AGPL-3.0-only

// Package watcher runs the two periodic reconciliation loops: a coarse
// topology scan that detects connect/disconnect and a fine brightness scan
// that publishes the monitor projection whenever its content changes.
package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/display"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/events"
)

const (
	// DefaultTopologyInterval is the coarse re-enumeration period.
	DefaultTopologyInterval = 10 * time.Second

	// DefaultBrightnessInterval is the fine brightness polling period.
	DefaultBrightnessInterval = 2 * time.Second
)

// Watcher ties the device list manager to the event emitter.
type Watcher struct {
	manager *display.Manager
	emitter *events.Emitter

	topologyInterval   time.Duration
	brightnessInterval time.Duration

	mu       sync.Mutex
	baseline []display.MonitorInfo
}

// Option is a functional option for configuring a Watcher.
type Option func(*Watcher)

// WithTopologyInterval overrides the topology scan period.
func WithTopologyInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.topologyInterval = d
	}
}

// WithBrightnessInterval overrides the brightness scan period.
func WithBrightnessInterval(d time.Duration) Option {
	return func(w *Watcher) {
		w.brightnessInterval = d
	}
}

// New creates a watcher over the given manager and emitter.
func New(manager *display.Manager, emitter *events.Emitter, opts ...Option) *Watcher {
	w := &Watcher{
		manager:            manager,
		emitter:            emitter,
		topologyInterval:   DefaultTopologyInterval,
		brightnessInterval: DefaultBrightnessInterval,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run drives both loops until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		w.topologyLoop(ctx)
	}()
	go func() {
		defer wg.Done()
		w.brightnessLoop(ctx)
	}()
	wg.Wait()
}

func (w *Watcher) topologyLoop(ctx context.Context) {
	ticker := time.NewTicker(w.topologyInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ScanTopology()
		}
	}
}

func (w *Watcher) brightnessLoop(ctx context.Context) {
	ticker := time.NewTicker(w.brightnessInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.ScanBrightness()
		}
	}
}

// ScanTopology runs one topology reconciliation. A failed scan is logged and
// retried at the next tick; a successful scan that changed the list pushes a
// fresh projection immediately instead of waiting for the brightness tick.
func (w *Watcher) ScanTopology() {
	changed, err := w.manager.Reconcile()
	if err != nil {
		log.Error().Err(err).Msg("Topology scan failed")
		return
	}
	if changed {
		w.publish(w.manager.Snapshot())
	}
}

// ScanBrightness collects the current projection and publishes it when its
// content differs from the previous scan.
func (w *Watcher) ScanBrightness() {
	infos := w.manager.Snapshot()

	w.mu.Lock()
	unchanged := equalInfos(w.baseline, infos)
	w.mu.Unlock()

	if unchanged {
		return
	}
	w.publish(infos)
}

func (w *Watcher) publish(infos []display.MonitorInfo) {
	w.mu.Lock()
	w.baseline = infos
	w.mu.Unlock()

	log.Debug().Int("monitors", len(infos)).Msg("Monitor state changed")
	w.emitter.Publish(infos)
}

func equalInfos(a, b []display.MonitorInfo) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
