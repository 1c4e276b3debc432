package kiosk

import (
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"go.uber.org/zap"
)

// Watchdog is the inactivity countdown: it ticks once per second, resets to
// the configured duration on any activity event, and fires onExpire once
// when it reaches zero. After expiry it stays idle until the next activity
// resets it.
type Watchdog struct {
	mu        sync.Mutex
	timeout   int
	remaining int
	expired   bool
	onExpire  func()
	ticker    *time.Ticker
	stopChan  chan struct{}
	stopOnce  sync.Once
}

func NewWatchdog(timeoutSeconds int, onExpire func()) *Watchdog {
	if timeoutSeconds < 1 {
		timeoutSeconds = 900
	}
	return &Watchdog{
		timeout:   timeoutSeconds,
		remaining: timeoutSeconds,
		onExpire:  onExpire,
		stopChan:  make(chan struct{}),
	}
}

// Start begins the countdown and subscribes to activity events on bus.
func (w *Watchdog) Start(bus EventBus.Bus) {
	if bus != nil {
		_ = bus.Subscribe(TopicActivity, w.Reset)
	}
	w.ticker = time.NewTicker(time.Second)
	go w.loop()
	zap.L().Info("inactivity watchdog started", zap.Int("timeout_seconds", w.timeout))
}

// Stop halts the countdown.
func (w *Watchdog) Stop() {
	w.stopOnce.Do(func() {
		if w.ticker != nil {
			w.ticker.Stop()
		}
		close(w.stopChan)
	})
}

// Reset restores the countdown to the full timeout.
func (w *Watchdog) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.remaining = w.timeout
	w.expired = false
}

// SetTimeout changes the countdown duration and resets it.
func (w *Watchdog) SetTimeout(seconds int) {
	if seconds < 1 {
		return
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	w.timeout = seconds
	w.remaining = seconds
	w.expired = false
}

// Remaining returns the seconds left before the kiosk returns to the
// welcome screen.
func (w *Watchdog) Remaining() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.remaining
}

func (w *Watchdog) loop() {
	for {
		select {
		case <-w.ticker.C:
			w.tick()
		case <-w.stopChan:
			return
		}
	}
}

func (w *Watchdog) tick() {
	w.mu.Lock()
	if w.expired {
		w.mu.Unlock()
		return
	}
	if w.remaining > 0 {
		w.remaining--
	}
	fire := w.remaining == 0
	if fire {
		w.expired = true
	}
	w.mu.Unlock()

	if fire {
		zap.L().Info("inactivity timeout reached, returning to welcome screen")
		if w.onExpire != nil {
			w.onExpire()
		}
	}
}
