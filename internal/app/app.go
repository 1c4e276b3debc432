package app

import (
	"os"
	"path"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/aminegames/gamekiosk/config"
	"github.com/aminegames/gamekiosk/internal/kiosk"
	"github.com/aminegames/gamekiosk/internal/store"
	"github.com/aminegames/gamekiosk/pkg/common"
	"github.com/aminegames/gamekiosk/pkg/metrics"
)

type Application struct {
	appConfig *config.AppConfig
	storage   store.Storage
	bus       EventBus.Bus
	session   *kiosk.Session
	watchdog  *kiosk.Watchdog
	sched     *cron.Cron
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ SessionProvider   = (*Application)(nil)
	_ WatchdogProvider  = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ EventBusProvider  = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig {
	return a.appConfig
}

func (a *Application) Session() *kiosk.Session {
	return a.session
}

func (a *Application) Watchdog() *kiosk.Watchdog {
	return a.watchdog
}

func (a *Application) Bus() EventBus.Bus {
	return a.bus
}

// Scheduler returns the cron scheduler
func (a *Application) Scheduler() *cron.Cron {
	return a.sched
}

// OverrideStorage replaces the application's storage handle (used in tests).
func (a *Application) OverrideStorage(s store.Storage) {
	a.storage = s
}

func (a *Application) Init(cfg *config.AppConfig) {
	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
	} else {
		time.Local = loc
	}

	common.MustMkdir(cfg.System.Workdir)

	// Initialize zap logger
	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}

	zapConfig.OutputPaths = []string{"stdout"}
	if cfg.Logger.FileEnable {
		zapConfig.OutputPaths = append(zapConfig.OutputPaths, cfg.Logger.Filename)
	}

	// Build logger with file rotation if enabled
	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}

		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1))
	} else {
		logger, err = zapConfig.Build(zap.AddCaller(), zap.AddCallerSkip(1))
		if err != nil {
			panic(err)
		}
	}

	zap.ReplaceGlobals(logger)

	// Initialize metrics with workdir convention
	err = metrics.InitMetrics(cfg.System.Workdir)
	if err != nil {
		zap.S().Warn("Failed to initialize metrics:", err)
	}

	// Open the document store
	a.storage, err = store.NewBoltStorage(cfg.GetStoragePath())
	if err != nil {
		zap.S().Fatalf("failed to open storage %s: %v", cfg.GetStoragePath(), err)
	}
	zap.S().Infof("Storage opened at %s", cfg.GetStoragePath())

	a.bus = EventBus.New()

	a.session = kiosk.NewSession(a.storage, a.bus, cfg.Kiosk.OrderPrefix)
	if err = a.session.Load(a.seedSource()); err != nil {
		zap.S().Errorf("session load failed: %v", err)
	}

	a.watchdog = kiosk.NewWatchdog(a.session.Settings().InactivityTimeout, func() {
		zap.L().Info("inactivity watchdog expired, clearing kiosk cart")
		a.session.ClearCart()
		a.bus.Publish(kiosk.TopicIdle)
	})
	a.watchdog.Start(a.bus)

	a.initJob()
}

// seedSource resolves the catalog seed location. A http(s) URL is fetched,
// anything else is treated as a file path relative to the workdir.
func (a *Application) seedSource() string {
	src := a.appConfig.Kiosk.DataFile
	if src == "" {
		return ""
	}
	if len(src) > 4 && src[:4] == "http" {
		return src
	}
	if !path.IsAbs(src) {
		src = path.Join(a.appConfig.System.Workdir, src)
	}
	return src
}

// Release releases application resources
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}

	if a.watchdog != nil {
		a.watchdog.Stop()
	}

	if a.session != nil {
		a.session.Persist()
	}

	if a.storage != nil {
		_ = a.storage.Close()
	}

	_ = metrics.Close()
	_ = zap.L().Sync()
}
