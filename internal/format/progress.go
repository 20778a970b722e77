package format

import (
	"fmt"
	"strings"
	"time"
)

// maxETA caps runaway estimates produced by near-zero progress rates.
const maxETA = 24 * time.Hour

// ProgressBar renders a fixed-width bar of filled and empty block
// characters. Progress outside [0, 1] is clamped.
//
// Parameters:
//   - progress: Completion fraction, 0.0 to 1.0.
//   - length: Bar width in characters.
//
// Returns:
//   - string: The rendered bar.
func ProgressBar(progress float64, length int) string {
	if progress < 0 {
		progress = 0
	}
	if progress > 1 {
		progress = 1
	}
	filled := int(progress * float64(length))
	return strings.Repeat("█", filled) + strings.Repeat("░", length-filled)
}

// FormatETA renders an estimated time remaining in a compact human form:
// "45s", "2m30s", "1h15m". Non-positive estimates render as "calculating..."
// because the rate is not yet known.
func FormatETA(eta time.Duration) string {
	if eta <= 0 {
		return "calculating..."
	}
	if eta < time.Second {
		return "< 1s"
	}
	if eta > maxETA {
		eta = maxETA
	}
	eta = eta.Round(time.Second)

	hours := int(eta.Hours())
	minutes := int(eta.Minutes()) % 60
	seconds := int(eta.Seconds()) % 60
	switch {
	case hours > 0 && minutes > 0:
		return fmt.Sprintf("%dh%dm", hours, minutes)
	case hours > 0:
		return fmt.Sprintf("%dh", hours)
	case minutes > 0 && seconds > 0:
		return fmt.Sprintf("%dm%ds", minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm", minutes)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}

// FormatProgressBarWithETA combines a progress bar, percentage, and ETA into
// a single status line for batch progress display.
func FormatProgressBarWithETA(progress float64, eta time.Duration, width int) string {
	pct := progress
	if pct < 0 {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	etaText := FormatETA(eta)
	if pct >= 1 {
		etaText = "done"
	}
	return fmt.Sprintf("[%s] %3.0f%% ETA: %s", ProgressBar(progress, width), pct*100, etaText)
}
