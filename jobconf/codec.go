// Package jobconf converts job configurations among their three
// equivalent representations: a pipe-delimited config string, a
// key-value mapping, and an XML document.
//
// The config string wire format is
//
//	key_1=value_1|key_2=value_2|...|key_n=value_n
//
// Malformed key=value tokens are recoverable: they are skipped with a
// warning on the supplied report. Malformed XML is fatal to the single
// call that hit it: the report is marked failed, one error is recorded,
// and an empty result is returned. See the Codec methods for details.
//
// A Codec holds no state beyond its separator symbols and tag names, so
// a single value may be shared freely across goroutines as long as each
// call gets its own report.
package jobconf

import (
	"fmt"
	"sort"
	"strings"

	"aligner/report"
)

// Default separator symbols and XML tag names. Keys and values produced
// by the codec never contain the separators; values supplied by callers
// must not either, or the round trip is undefined.
const (
	DefaultPairSeparator       = "|"
	DefaultAssignmentSeparator = "="
	DefaultTasksTag            = "tasks"
	DefaultTaskTag             = "task"
)

// Codec converts job configurations between representations. The zero
// value is not usable; construct with Default or fill every field.
type Codec struct {
	// PairSeparator joins successive key=value tokens in a config string.
	PairSeparator string

	// AssignmentSeparator joins a key and its value within one token.
	AssignmentSeparator string

	// TasksTag names the XML element whose children enumerate the
	// individual task configurations.
	TasksTag string

	// TaskTag names one task element inside the tasks container.
	TaskTag string
}

// Default returns a Codec using the standard separators and tag names.
func Default() Codec {
	return Codec{
		PairSeparator:       DefaultPairSeparator,
		AssignmentSeparator: DefaultAssignmentSeparator,
		TasksTag:            DefaultTasksTag,
		TaskTag:             DefaultTaskTag,
	}
}

// StringFromText converts the contents of a line-oriented config source
// into a config string: empty lines are dropped and the remaining lines
// are joined with the pair separator.
//
// Example:
//
//	StringFromText("a=1\n\nb=2\n") // "a=1|b=2"
func (c Codec) StringFromText(text string) string {
	lines := strings.FieldsFunc(text, func(r rune) bool {
		return r == '\n' || r == '\r'
	})
	return strings.Join(lines, c.PairSeparator)
}

// MappingFromString converts a config string into a mapping. An empty
// input yields an empty mapping, not an error. Invalid tokens are
// reported as warnings on rep (which may be nil) and skipped.
func (c Codec) MappingFromString(s string, rep *report.Report) map[string]string {
	if s == "" {
		return map[string]string{}
	}
	return c.MappingFromPairs(strings.Split(s, c.PairSeparator), rep)
}

// MappingFromPairs converts a list of key=value tokens into a mapping.
//
// A token is valid when splitting on the assignment separator yields
// exactly two non-empty parts. Anything else — no separator, more than
// one, or an empty side — is skipped, recording a warning on rep when
// rep is non-nil. Empty tokens are ignored silently. A later duplicate
// key overwrites an earlier one without a warning.
func (c Codec) MappingFromPairs(pairs []string, rep *report.Report) map[string]string {
	mapping := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		tokens := strings.Split(pair, c.AssignmentSeparator)
		if len(tokens) == 2 && tokens[0] != "" && tokens[1] != "" {
			mapping[tokens[0]] = tokens[1]
		} else if rep != nil {
			rep.AddWarning(fmt.Sprintf("invalid key=value string: %q", pair))
		}
	}
	return mapping
}

// StringFromMapping converts a mapping back into a config string. Keys
// are emitted in sorted order so the output is stable across calls.
//
// For any mapping whose keys and values are non-empty and free of the
// separator symbols, MappingFromString(StringFromMapping(m)) == m.
func (c Codec) StringFromMapping(mapping map[string]string) string {
	keys := make([]string, 0, len(mapping))
	for key := range mapping {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+c.AssignmentSeparator+mapping[key])
	}
	return strings.Join(pairs, c.PairSeparator)
}
