// Package progress holds the playback progress math: fraction, time
// formatting and click-to-seek. Every function refuses to compute when the
// duration is unknown so callers never render NaN.
package progress

import (
	"fmt"
	"time"
)

// Fraction returns elapsed/duration clamped to [0, 1].
// ok is false when the duration is unknown (zero or negative).
func Fraction(elapsed, duration time.Duration) (frac float64, ok bool) {
	if duration <= 0 {
		return 0, false
	}
	frac = float64(elapsed) / float64(duration)
	return min(max(frac, 0), 1), true
}

// Percent returns the fill percentage of the progress bar.
func Percent(elapsed, duration time.Duration) (float64, bool) {
	frac, ok := Fraction(elapsed, duration)
	return frac * 100, ok
}

// Format renders d as minutes:seconds with zero-padded seconds.
// Sub-second parts are truncated; negative durations render as 0:00.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

// SeekTarget returns fraction*duration. The fraction is clamped to [0, 1].
// ok is false when the duration is unknown.
func SeekTarget(fraction float64, duration time.Duration) (time.Duration, bool) {
	if duration <= 0 {
		return 0, false
	}
	fraction = min(max(fraction, 0), 1)
	return time.Duration(fraction * float64(duration)), true
}

// ClickFraction converts a click column into a fraction of a bar that starts
// at column left and spans width columns.
func ClickFraction(x, left, width int) float64 {
	if width <= 0 {
		return 0
	}
	return min(max(float64(x-left)/float64(width), 0), 1)
}
