package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focustimer/internal/core/model"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	FocusMinutes int    `yaml:"focus_minutes"`
	BreakMinutes int    `yaml:"break_minutes"`
	Notification string `yaml:"notification"`
}

// LoadSettings reads startup settings from a YAML file on top of base.
// If the file does not exist, base is returned unchanged. The file is never
// written back: applied settings live only for the process lifetime.
func LoadSettings(configPath string, base model.TimeKeeperConfig) (model.TimeKeeperConfig, error) {
	settings := base
	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings.Normalized(), nil
}

// DefaultSettingsPath returns <UserConfigDir>/<appName>/settings.yaml.
func DefaultSettingsPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *model.TimeKeeperConfig, fileData yamlSettings) {
	if fileData.FocusMinutes != 0 {
		settings.Durations.FocusMinutes = fileData.FocusMinutes
	}
	if fileData.BreakMinutes != 0 {
		settings.Durations.BreakMinutes = fileData.BreakMinutes
	}
	if fileData.Notification != "" {
		settings.Notification = model.ParseNotificationMode(fileData.Notification)
	}
}
