package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"

	"ticks/internal/platform"
	"ticks/internal/ui/preferences"
)

// Boolean fields carry no env-default: cleanenv would apply it over an
// explicit false read from the file. Defaults are pre-filled instead.
type yamlSettings struct {
	TickInterval         time.Duration `yaml:"tick_interval"         env:"TICKS_TICK_INTERVAL" env-default:"1s"`
	ItemsPath            string        `yaml:"items_path"            env:"TICKS_ITEMS_PATH"`
	Sound                bool          `yaml:"sound"                 env:"TICKS_SOUND"`
	DesktopNotifications bool          `yaml:"desktop_notifications" env:"TICKS_DESKTOP_NOTIFICATIONS"`
	AlertWindow          bool          `yaml:"alert_window"          env:"TICKS_ALERT_WINDOW"`
	Language             string        `yaml:"language"              env:"TICKS_LANG"`
	LogLevel             string        `yaml:"log_level"             env:"TICKS_LOG_LEVEL" env-default:"info"`
}

// LoadSettings reads user preferences for appName from YAML and TICKS_*
// environment variables. If the file does not exist, defaults plus
// environment overrides are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return preferences.DefaultSettings(), fmt.Errorf("resolve user config dir: %w", err)
	}
	return LoadSettingsFrom(SettingsPath(configDir, appName))
}

// LoadSettingsFrom reads user preferences stored at configPath.
func LoadSettingsFrom(configPath string) (preferences.Settings, error) {
	fileData := toYamlSettings(preferences.DefaultSettings())

	_, statErr := os.Stat(configPath)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(configPath, &fileData); err != nil {
			return preferences.DefaultSettings(), fmt.Errorf("read settings file: %w", err)
		}
	case errors.Is(statErr, os.ErrNotExist):
		if err := cleanenv.ReadEnv(&fileData); err != nil {
			return preferences.DefaultSettings(), fmt.Errorf("read settings env: %w", err)
		}
	default:
		return preferences.DefaultSettings(), fmt.Errorf("stat settings file: %w", statErr)
	}

	return fromYamlSettings(fileData), nil
}

// SaveSettings writes user preferences for appName to YAML.
func SaveSettings(appName string, settings preferences.Settings) error {
	configDir, err := platform.NewService().GetConfigDir()
	if err != nil {
		return fmt.Errorf("resolve user config dir: %w", err)
	}
	return SaveSettingsTo(SettingsPath(configDir, appName), settings)
}

// SaveSettingsTo writes user preferences to configPath.
func SaveSettingsTo(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	serialized, err := yaml.Marshal(toYamlSettings(settings))
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// SettingsPath returns the settings file location under configDir.
func SettingsPath(configDir, appName string) string {
	return filepath.Join(configDir, appName, settingsFileName)
}

func toYamlSettings(settings preferences.Settings) yamlSettings {
	return yamlSettings{
		TickInterval:         settings.TickInterval,
		ItemsPath:            settings.ItemsPath,
		Sound:                settings.Sound,
		DesktopNotifications: settings.DesktopNotifications,
		AlertWindow:          settings.AlertWindow,
		Language:             settings.Language,
		LogLevel:             settings.LogLevel,
	}
}

func fromYamlSettings(fileData yamlSettings) preferences.Settings {
	settings := preferences.DefaultSettings()
	settings.TickInterval = preferences.ClampTickInterval(fileData.TickInterval)
	settings.ItemsPath = fileData.ItemsPath
	settings.Sound = fileData.Sound
	settings.DesktopNotifications = fileData.DesktopNotifications
	settings.AlertWindow = fileData.AlertWindow
	settings.Language = fileData.Language
	if fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}
	return settings
}
