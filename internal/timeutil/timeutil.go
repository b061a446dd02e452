// Package timeutil provides deterministic formatting of time values for
// sync maps and subtitle output.
package timeutil

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatSeconds formats a time value, in seconds, as "SS.mmm" with the
// millisecond part rounded by fixed-point formatting.
//
// The input must be a non-negative finite value; anything else is
// undefined and up to the caller to reject.
//
// Example:
//
//	FormatSeconds(12)        // "12.000"
//	FormatSeconds(12.345)    // "12.345"
//	FormatSeconds(12.345432) // "12.345"
//	FormatSeconds(12.345678) // "12.346"
func FormatSeconds(value float64) string {
	return fmt.Sprintf("%.3f", value)
}

// msEpsilon absorbs the binary representation error of decimal second
// values when truncating to whole milliseconds: 3612.345 stored as a
// float64 is a hair below 3612345 ms and must still print as 345, while
// a genuine extra digit (83.456789) stays far enough from the next
// millisecond to be dropped.
const msEpsilon = 1e-6

// FormatClock formats a time value, in seconds, as "HH:MM:SS<sep>mmm".
//
// The value is truncated to whole milliseconds, never rounded, so a
// value just below the next full second cannot carry into it. Hours
// grow past two digits without an upper bound. The input must be a
// non-negative finite value.
//
// Example:
//
//	FormatClock(12, ".")       // "00:00:12.000"
//	FormatClock(83.456, ".")   // "00:01:23.456"
//	FormatClock(3612.345, ".") // "01:00:12.345"
func FormatClock(value float64, decimalSeparator string) string {
	total := int64(math.Floor(value*1000 + msEpsilon))
	hours := total / 3600000
	total %= 3600000
	minutes := total / 60000
	total %= 60000
	seconds := total / 1000
	milliseconds := total % 1000
	return fmt.Sprintf("%02d:%02d:%02d%s%03d",
		hours,
		minutes,
		seconds,
		decimalSeparator,
		milliseconds,
	)
}

// FormatSRTClock formats a time value as "HH:MM:SS,mmm", the clock form
// used by the SRT subtitle format.
func FormatSRTClock(value float64) string {
	return FormatClock(value, ",")
}

// ParseClock parses a clock string of the form "HH:MM:SS", "HH:MM:SS.mmm"
// or "MM:SS.mmm" back into seconds. A comma decimal separator is
// accepted, so SRT clock strings round-trip.
func ParseClock(s string) (float64, error) {
	parts := strings.Split(strings.ReplaceAll(s, ",", "."), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("invalid clock string %q", s)
	}

	var total float64
	for _, part := range parts {
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid clock field %q in %q", part, s)
		}
		if v < 0 {
			return 0, fmt.Errorf("negative clock field %q in %q", part, s)
		}
		total = total*60 + v
	}

	return total, nil
}
