// Package subtitle renders aligned text fragments as subtitle tracks.
package subtitle

import (
	"fmt"
	"strings"
)

// Format identifies a supported subtitle output format.
type Format string

const (
	FormatSRT Format = "srt" // SubRip
	FormatVTT Format = "vtt" // WebVTT
)

// Entry is a single subtitle cue: a begin/end time in seconds and the
// text shown between them.
type Entry struct {
	Index int
	Begin float64
	End   float64
	Text  string
}

// Track is an ordered list of entries.
type Track []Entry

// Validate checks that every entry has non-negative, ordered times and
// non-empty text.
func (tr Track) Validate() error {
	var errors []string

	for i, e := range tr {
		if e.Begin < 0 {
			errors = append(errors, fmt.Sprintf("entry %d: begin time is negative", i))
		}
		if e.End < e.Begin {
			errors = append(errors, fmt.Sprintf("entry %d: end time precedes begin time", i))
		}
		if strings.TrimSpace(e.Text) == "" {
			errors = append(errors, fmt.Sprintf("entry %d: text is empty", i))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid track: %s", strings.Join(errors, ", "))
	}

	return nil
}
