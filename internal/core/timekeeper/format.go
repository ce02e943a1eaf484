package timekeeper

import (
	"fmt"
	"time"
)

// ETALayout is the clock layout used for ETA cells.
const ETALayout = "15:04:05"

// NoETA is rendered when a timer has no meaningful ETA.
const NoETA = "--:--:--"

// FormatRemaining renders a duration as zero-padded HH:MM:SS. Hours are not
// wrapped at 24, so a full-day timeout renders as 24:00:00. Sub-second
// remainders are truncated and negative values render as 00:00:00.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int64(remaining / time.Second)
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	seconds = seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatETA renders an ETA in the local time zone.
func FormatETA(eta time.Time, ok bool) string {
	if !ok {
		return NoETA
	}
	return eta.Local().Format(ETALayout)
}
