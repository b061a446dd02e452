// Package textutil provides lenient text and number parsing helpers.
package textutil

import (
	"bytes"
	"strconv"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SafeFloat parses s as a float64, returning def when s does not parse.
//
// Example:
//
//	SafeFloat("12.5", 0)  // 12.5
//	SafeFloat("junk", -1) // -1
func SafeFloat(s string, def float64) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

// SafeInt parses s as an integer, returning def when s does not parse.
// Fractional input is accepted and truncated toward zero, so "12.7"
// yields 12.
func SafeInt(s string, def int) int {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return int(v)
}

// RemoveBOM strips a leading UTF-8 byte order mark, if present.
// Config sources saved by Windows editors often carry one.
func RemoveBOM(b []byte) []byte {
	return bytes.TrimPrefix(b, utf8BOM)
}
