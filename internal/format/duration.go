package format

import (
	"fmt"
	"strconv"
	"time"
)

// Milliseconds converts a duration to floating-point milliseconds,
// preserving sub-millisecond precision: nanoseconds divided by 1e6.
func Milliseconds(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1e6
}

// FormatMilliseconds renders a duration as floating-point milliseconds
// with the minimal number of digits needed to represent the value exactly.
func FormatMilliseconds(d time.Duration) string {
	return strconv.FormatFloat(Milliseconds(d), 'f', -1, 64)
}

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise. This approach provides a more human-readable output for short
// durations.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}
