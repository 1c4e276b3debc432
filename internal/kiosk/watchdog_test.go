package kiosk

import (
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
)

func TestWatchdogCountdown(t *testing.T) {
	var fired int
	w := NewWatchdog(3, func() { fired++ })

	w.tick()
	assert.Equal(t, 2, w.Remaining())

	w.tick()
	w.tick()
	assert.Equal(t, 0, w.Remaining())
	assert.Equal(t, 1, fired)

	// stays idle after expiry
	w.tick()
	assert.Equal(t, 1, fired)

	// activity revives the countdown
	w.Reset()
	assert.Equal(t, 3, w.Remaining())
	w.tick()
	w.tick()
	w.tick()
	assert.Equal(t, 2, fired)
}

func TestWatchdogDefaultTimeout(t *testing.T) {
	w := NewWatchdog(0, nil)
	assert.Equal(t, 900, w.Remaining())
}

func TestWatchdogSetTimeout(t *testing.T) {
	w := NewWatchdog(10, nil)
	w.tick()
	w.SetTimeout(5)
	assert.Equal(t, 5, w.Remaining())

	// invalid values are ignored
	w.SetTimeout(0)
	assert.Equal(t, 5, w.Remaining())
}

func TestWatchdogResetsOnActivityEvent(t *testing.T) {
	bus := EventBus.New()
	w := NewWatchdog(10, nil)
	w.Start(bus)
	defer w.Stop()

	w.tick()
	w.tick()
	assert.Equal(t, 8, w.Remaining())

	bus.Publish(TopicActivity)
	bus.WaitAsync()
	assert.Equal(t, 10, w.Remaining())
}
