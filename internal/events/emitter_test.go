// SPDX-License-Identifier: AGPL-3.0-only

package events_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/display"
	"github.com/tribhuwan-kumar/fade-brightness-daemon/internal/events"
)

func TestEmitter_PublishDeliversToAllSubscribers(t *testing.T) {
	e := events.NewEmitter()

	sub1, cancel1 := e.Subscribe()
	defer cancel1()
	sub2, cancel2 := e.Subscribe()
	defer cancel2()
	assert.Equal(t, 2, e.Count())

	infos := []display.MonitorInfo{{DeviceName: `\\.\DISPLAY1`, Name: "A", Brightness: 40}}
	e.Publish(infos)

	assert.Equal(t, infos, <-sub1)
	assert.Equal(t, infos, <-sub2)
}

func TestEmitter_CancelClosesChannel(t *testing.T) {
	e := events.NewEmitter()

	sub, cancel := e.Subscribe()
	cancel()
	assert.Equal(t, 0, e.Count())

	_, open := <-sub
	assert.False(t, open)

	// Cancelling twice is harmless.
	cancel()
}

func TestEmitter_LaggingSubscriberSkipped(t *testing.T) {
	e := events.NewEmitter()

	sub, cancel := e.Subscribe()
	defer cancel()

	// The buffer holds 8 updates; further publishes are dropped for this
	// subscriber instead of blocking the publisher.
	for i := 0; i < 12; i++ {
		e.Publish([]display.MonitorInfo{{Brightness: uint32(i)}})
	}

	received := 0
	for {
		select {
		case infos := <-sub:
			require.Len(t, infos, 1)
			assert.Equal(t, uint32(received), infos[0].Brightness)
			received++
		default:
			assert.Equal(t, 8, received)
			return
		}
	}
}

func TestEmitter_PublishWithoutSubscribers(t *testing.T) {
	e := events.NewEmitter()
	e.Publish([]display.MonitorInfo{{Name: "A"}})
	assert.Equal(t, 0, e.Count())
}
