package preferences

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClampTickInterval(t *testing.T) {
	assert.Equal(t, time.Second, ClampTickInterval(0))
	assert.Equal(t, MinTickInterval, ClampTickInterval(time.Millisecond))
	assert.Equal(t, MaxTickInterval, ClampTickInterval(time.Minute))
	assert.Equal(t, 2*time.Second, ClampTickInterval(2*time.Second))
}

func TestSettings_SlogLevel(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, slog.LevelInfo, settings.SlogLevel())

	settings.LogLevel = "DEBUG"
	assert.Equal(t, slog.LevelDebug, settings.SlogLevel())
	settings.LogLevel = "warning"
	assert.Equal(t, slog.LevelWarn, settings.SlogLevel())
	settings.LogLevel = "nonsense"
	assert.Equal(t, slog.LevelInfo, settings.SlogLevel())
}

func TestParsePositiveInt(t *testing.T) {
	value, ok := parsePositiveInt("250")
	assert.True(t, ok)
	assert.Equal(t, 250, value)

	for _, bad := range []string{"", "0", "-3", "abc"} {
		_, ok := parsePositiveInt(bad)
		assert.False(t, ok, bad)
	}
}
