package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/aminegames/gamekiosk/config"
	"github.com/aminegames/gamekiosk/internal/kiosk"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// SessionProvider provides access to the kiosk session state
type SessionProvider interface {
	Session() *kiosk.Session
}

// WatchdogProvider provides the inactivity watchdog
type WatchdogProvider interface {
	Watchdog() *kiosk.Watchdog
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// EventBusProvider provides the in-process event bus
type EventBusProvider interface {
	Bus() EventBus.Bus
}

// AppContext combines all provider interfaces for full application context.
// Handler packages should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	SessionProvider
	WatchdogProvider
	SchedulerProvider
	EventBusProvider
}
