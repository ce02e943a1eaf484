package preferences

import (
	"log/slog"
	"strings"
	"time"
)

const (
	MinTickInterval = 100 * time.Millisecond
	MaxTickInterval = 10 * time.Second
)

// Settings defines editable user preferences.
type Settings struct {
	TickInterval time.Duration
	ItemsPath    string

	Sound                bool
	DesktopNotifications bool
	AlertWindow          bool

	Language string
	LogLevel string
}

// DefaultSettings returns default settings for Ticks.
func DefaultSettings() Settings {
	return Settings{
		TickInterval:         time.Second,
		Sound:                true,
		DesktopNotifications: true,
		AlertWindow:          true,
		LogLevel:             "info",
	}
}

// ClampTickInterval bounds a polling interval; non-positive values select
// the default.
func ClampTickInterval(interval time.Duration) time.Duration {
	if interval <= 0 {
		return DefaultSettings().TickInterval
	}
	return min(max(interval, MinTickInterval), MaxTickInterval)
}

// SlogLevel converts LogLevel to a slog level, defaulting to info.
func (settings Settings) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(settings.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
