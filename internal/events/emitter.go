// SPDX-License-Identifier: AGPL-3.0-only

// Package events fans monitor state changes out to local subscribers: the
// WebSocket hub and anything else interested in the current projection.
package events

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/display"
)

// defaultBuffer is the per-subscriber channel capacity.
const defaultBuffer = 8

// Emitter is a broadcast registry of monitor-state subscribers.
type Emitter struct {
	mu   sync.Mutex
	subs map[int]chan []display.MonitorInfo
	next int
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{subs: make(map[int]chan []display.MonitorInfo)}
}

// Subscribe registers a new subscriber and returns its channel together with
// a cancel function. The channel is closed on cancel.
func (e *Emitter) Subscribe() (<-chan []display.MonitorInfo, func()) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id := e.next
	e.next++
	ch := make(chan []display.MonitorInfo, defaultBuffer)
	e.subs[id] = ch

	cancel := func() {
		e.mu.Lock()
		defer e.mu.Unlock()
		if sub, ok := e.subs[id]; ok {
			delete(e.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}

// Publish delivers the projection to every subscriber. A subscriber that has
// fallen behind misses this update instead of blocking the publisher; the
// next publish carries the complete current state anyway.
func (e *Emitter) Publish(infos []display.MonitorInfo) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for id, sub := range e.subs {
		select {
		case sub <- infos:
		default:
			log.Debug().Int("subscriber", id).Msg("Subscriber lagging, update skipped")
		}
	}
}

// Count returns the number of active subscribers.
func (e *Emitter) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}
