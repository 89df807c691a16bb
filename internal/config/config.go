package config

import (
	"fmt"
	"os"
	"time"

	"focustimer/internal/core/model"
	"focustimer/internal/storage"

	"github.com/caarlos0/env/v11"
)

// AppName names the per-user settings directory and the instance lock.
const AppName = "FocusTimer"

// Config holds process startup options. Zero duration and empty
// notification fields mean "not set" and leave lower-precedence values alone.
type Config struct {
	SettingsPath string        `env:"FOCUSTIMER_SETTINGS"`
	FocusMinutes int           `env:"FOCUSTIMER_FOCUS_MINUTES"`
	BreakMinutes int           `env:"FOCUSTIMER_BREAK_MINUTES"`
	Notification string        `env:"FOCUSTIMER_NOTIFICATION"`
	LogLevel     string        `env:"FOCUSTIMER_LOG_LEVEL" envDefault:"info"`
	LogFormat    string        `env:"FOCUSTIMER_LOG_FORMAT" envDefault:"text"`
	TickInterval time.Duration `env:"FOCUSTIMER_TICK_INTERVAL" envDefault:"1s"`
	Headless     bool          `env:"FOCUSTIMER_HEADLESS"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// FromEnv returns a Config populated from the environment.
func FromEnv() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ResolveSettingsPath returns the explicit settings path or the per-user default.
func (cfg Config) ResolveSettingsPath() (string, error) {
	if cfg.SettingsPath != "" {
		return cfg.SettingsPath, nil
	}
	return storage.DefaultSettingsPath(AppName)
}

// Overlay applies the explicitly set fields of cfg on top of base.
func (cfg Config) Overlay(base model.TimeKeeperConfig) model.TimeKeeperConfig {
	if cfg.FocusMinutes != 0 {
		base.Durations.FocusMinutes = cfg.FocusMinutes
	}
	if cfg.BreakMinutes != 0 {
		base.Durations.BreakMinutes = cfg.BreakMinutes
	}
	if cfg.Notification != "" {
		base.Notification = model.ParseNotificationMode(cfg.Notification)
	}
	return base.Normalized()
}

// TimeKeeperConfig resolves the initial timer settings:
// defaults, then the YAML settings file, then cfg.
func (cfg Config) TimeKeeperConfig() (model.TimeKeeperConfig, error) {
	path, err := cfg.ResolveSettingsPath()
	if err != nil {
		return cfg.Overlay(model.DefaultTimeKeeperConfig()), err
	}
	fromFile, err := storage.LoadSettings(path, model.DefaultTimeKeeperConfig())
	if err != nil {
		return cfg.Overlay(model.DefaultTimeKeeperConfig()), fmt.Errorf("load %s: %w", path, err)
	}
	return cfg.Overlay(fromFile), nil
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
