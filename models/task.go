package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"aligner/internal/textutil"
)

// Task represents one unit of work inside a job, described entirely by
// its configuration mapping.
type Task struct {
	ID     string
	Config map[string]string
}

// NewTask creates a Task with a fresh identifier around the given
// configuration mapping. A nil mapping is replaced by an empty one.
func NewTask(config map[string]string) *Task {
	if config == nil {
		config = map[string]string{}
	}
	return &Task{
		ID:     uuid.NewString(),
		Config: config,
	}
}

// Language returns the task language, or "" when unset.
func (t *Task) Language() string {
	return t.Config[KeyTaskLanguage]
}

// Description returns the task description, or "" when unset.
func (t *Task) Description() string {
	return t.Config[KeyTaskDescription]
}

// OutputFileName returns the configured output file name, or "".
func (t *Task) OutputFileName() string {
	return t.Config[KeyOSTaskFileName]
}

// AudioHeadLength returns the length, in seconds, of audio to skip at
// the head of the task's audio file. Missing or unparsable values yield
// 0.
func (t *Task) AudioHeadLength() float64 {
	return textutil.SafeFloat(t.Config[KeyAudioHeadLength], 0)
}

// AudioProcessLength returns the length, in seconds, of audio to
// process, or 0 for the whole file. Missing or unparsable values yield
// 0.
func (t *Task) AudioProcessLength() float64 {
	return textutil.SafeFloat(t.Config[KeyAudioProcessLength], 0)
}

// Validate checks that the task configuration carries its required keys.
func (t *Task) Validate() error {
	var errors []string

	if t.Language() == "" {
		errors = append(errors, fmt.Sprintf("%s is required", KeyTaskLanguage))
	}
	if t.OutputFileName() == "" {
		errors = append(errors, fmt.Sprintf("%s is required", KeyOSTaskFileName))
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, ", "))
	}

	return nil
}

// String renders a short human-readable summary.
func (t *Task) String() string {
	return fmt.Sprintf("task %s (language=%s)", t.ID, t.Language())
}
