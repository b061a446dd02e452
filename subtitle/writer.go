package subtitle

import (
	"bufio"
	"fmt"
	"io"

	"aligner/internal/timeutil"
)

// WriteSRT writes the track to w in SubRip format. Entries are numbered
// from 1 in track order regardless of their Index field.
//
// Each cue looks like:
//
//	1
//	00:00:00,000 --> 00:00:01,234
//	Hello
func WriteSRT(w io.Writer, track Track) error {
	bw := bufio.NewWriter(w)
	for i, e := range track {
		fmt.Fprintf(bw, "%d\n", i+1)
		fmt.Fprintf(bw, "%s --> %s\n", timeutil.FormatSRTClock(e.Begin), timeutil.FormatSRTClock(e.End))
		fmt.Fprintf(bw, "%s\n\n", e.Text)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write SRT track: %w", err)
	}
	return nil
}

// WriteVTT writes the track to w in WebVTT format.
func WriteVTT(w io.Writer, track Track) error {
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "WEBVTT\n\n")
	for i, e := range track {
		fmt.Fprintf(bw, "%d\n", i+1)
		fmt.Fprintf(bw, "%s --> %s\n", timeutil.FormatClock(e.Begin, "."), timeutil.FormatClock(e.End, "."))
		fmt.Fprintf(bw, "%s\n\n", e.Text)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write VTT track: %w", err)
	}
	return nil
}

// Write writes the track in the given format.
func Write(w io.Writer, track Track, format Format) error {
	switch format {
	case FormatSRT:
		return WriteSRT(w, track)
	case FormatVTT:
		return WriteVTT(w, track)
	default:
		return fmt.Errorf("unsupported subtitle format %q", format)
	}
}
