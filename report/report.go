// Package report provides an accumulating result object for conversion
// and validation passes.
//
// A Report collects non-fatal warnings and fatal errors for a single
// operation, together with an overall pass/fail flag. Callers create one
// Report per operation, hand it to the functions doing the work, and
// inspect it afterwards.
//
// A Report is not safe for concurrent use; give each concurrent
// operation its own instance.
package report

import (
	"fmt"
	"strings"
)

// Report accumulates warnings, errors and a pass/fail flag for one
// operation.
//
// Warnings are non-fatal: the operation continued and produced a usable
// result. Errors are fatal to the operation that recorded them; Passed
// is false whenever an error was recorded via MarkFailed.
type Report struct {
	Passed   bool
	Warnings []string
	Errors   []string
}

// New creates a Report in the passing state with no messages.
func New() *Report {
	return &Report{Passed: true}
}

// MarkFailed flips the report into the failed state.
func (r *Report) MarkFailed() {
	r.Passed = false
}

// AddError appends an error message. It does not change Passed; callers
// that consider the error fatal call MarkFailed as well.
func (r *Report) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
}

// AddWarning appends a warning message.
func (r *Report) AddWarning(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

// Ok reports whether the operation passed and recorded no errors.
func (r *Report) Ok() bool {
	return r.Passed && len(r.Errors) == 0
}

// String renders the report in a human-readable multi-line form.
func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "passed: %v\n", r.Passed)
	b.WriteString("warnings:\n")
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "  %s\n", w)
	}
	b.WriteString("errors:\n")
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "  %s\n", e)
	}
	return b.String()
}
