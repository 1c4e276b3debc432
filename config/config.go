package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v2"
)

type SysConfig struct {
	Appid    string `yaml:"appid"`
	Location string `yaml:"location"`
	Workdir  string `yaml:"workdir"`
	Debug    bool   `yaml:"debug"`
}

type WebConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type StorageConfig struct {
	// Path of the embedded key-value store file. Relative paths are
	// resolved against the system workdir.
	Path string `yaml:"path"`
}

type KioskConfig struct {
	// DataFile is the seed catalog document, a local path or http(s) URL.
	DataFile string `yaml:"data_file"`
	// ItemsPerPage is the catalog page size used by the kiosk UI.
	ItemsPerPage int `yaml:"items_per_page"`
	// OrderPrefix is prepended to generated order numbers.
	OrderPrefix string `yaml:"order_prefix"`
}

type LogConfig struct {
	Mode       string `yaml:"mode"`
	FileEnable bool   `yaml:"file_enable"`
	Filename   string `yaml:"filename"`
}

type AppConfig struct {
	System  SysConfig     `yaml:"system"`
	Web     WebConfig     `yaml:"web"`
	Storage StorageConfig `yaml:"storage"`
	Kiosk   KioskConfig   `yaml:"kiosk"`
	Logger  LogConfig     `yaml:"logger"`
}

var DefaultAppConfig = &AppConfig{
	System: SysConfig{
		Appid:    "gamekiosk",
		Location: "Africa/Casablanca",
		Workdir:  "/var/gamekiosk",
		Debug:    true,
	},
	Web: WebConfig{
		Host: "0.0.0.0",
		Port: 1816,
	},
	Storage: StorageConfig{
		Path: "kiosk.db",
	},
	Kiosk: KioskConfig{
		DataFile:     "data/games.json",
		ItemsPerPage: 12,
		OrderPrefix:  "AGS",
	},
	Logger: LogConfig{
		Mode:       "development",
		FileEnable: true,
		Filename:   "/var/gamekiosk/gamekiosk.log",
	},
}

func (c *AppConfig) GetStoragePath() string {
	if filepath.IsAbs(c.Storage.Path) {
		return c.Storage.Path
	}
	return filepath.Join(c.System.Workdir, c.Storage.Path)
}

func (c *AppConfig) GetLogDir() string {
	return filepath.Join(c.System.Workdir, "logs")
}

func setEnvValue(name string, val *string) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = evalue
	}
}

func setEnvIntValue(name string, val *int) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = cast.ToInt(evalue)
	}
}

func setEnvBoolValue(name string, val *bool) {
	if evalue, ok := os.LookupEnv(name); ok {
		*val = evalue == "true" || evalue == "1" || evalue == "on"
	}
}

// LoadConfig reads the YAML configuration, falling back to defaults when the
// file is absent. Environment variables override file values.
func LoadConfig(cfile string) *AppConfig {
	cfg := new(AppConfig)
	*cfg = *DefaultAppConfig
	if cfile != "" {
		if data, err := os.ReadFile(cfile); err == nil {
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	setEnvValue("GAMEKIOSK_SYSTEM_WORKDIR", &cfg.System.Workdir)
	setEnvBoolValue("GAMEKIOSK_SYSTEM_DEBUG", &cfg.System.Debug)
	setEnvValue("GAMEKIOSK_WEB_HOST", &cfg.Web.Host)
	setEnvIntValue("GAMEKIOSK_WEB_PORT", &cfg.Web.Port)
	setEnvValue("GAMEKIOSK_STORAGE_PATH", &cfg.Storage.Path)
	setEnvValue("GAMEKIOSK_KIOSK_DATAFILE", &cfg.Kiosk.DataFile)
	setEnvValue("GAMEKIOSK_LOGGER_MODE", &cfg.Logger.Mode)
	setEnvBoolValue("GAMEKIOSK_LOGGER_FILE_ENABLE", &cfg.Logger.FileEnable)
	setEnvValue("GAMEKIOSK_LOGGER_FILENAME", &cfg.Logger.Filename)

	if cfg.Kiosk.ItemsPerPage <= 0 {
		cfg.Kiosk.ItemsPerPage = DefaultAppConfig.Kiosk.ItemsPerPage
	}
	if cfg.Kiosk.OrderPrefix == "" {
		cfg.Kiosk.OrderPrefix = DefaultAppConfig.Kiosk.OrderPrefix
	}
	return cfg
}
