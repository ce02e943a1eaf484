package timekeeper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "00:00:00"},
		{in: -time.Second, want: "00:00:00"},
		{in: 999 * time.Millisecond, want: "00:00:00"},
		{in: 5 * time.Second, want: "00:00:05"},
		{in: 61 * time.Second, want: "00:01:01"},
		{in: time.Hour + 2*time.Minute + 3*time.Second, want: "01:02:03"},
		{in: 24 * time.Hour, want: "24:00:00"},
		{in: 100 * time.Hour, want: "100:00:00"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatRemaining(tc.in), tc.in.String())
	}
}

func TestFormatETA(t *testing.T) {
	eta := time.Date(2025, 3, 1, 13, 4, 5, 0, time.Local)
	assert.Equal(t, "13:04:05", FormatETA(eta, true))
	assert.Equal(t, NoETA, FormatETA(eta, false))
}
