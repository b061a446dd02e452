// Package models holds the job and task model built on top of parsed
// configuration mappings.
package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Job represents one processing job: its own configuration mapping plus
// the ordered list of tasks it contains.
//
// The configuration mapping is the one produced by the jobconf codec;
// Job does not reinterpret it beyond the accessors below.
type Job struct {
	ID     string
	Config map[string]string
	Tasks  []*Task
}

// NewJob creates a Job with a fresh identifier around the given
// configuration mapping. A nil mapping is replaced by an empty one.
func NewJob(config map[string]string) *Job {
	if config == nil {
		config = map[string]string{}
	}
	return &Job{
		ID:     uuid.NewString(),
		Config: config,
	}
}

// NewJobFromMappings builds a Job and its tasks from the mappings the
// codec produced: one job-level mapping and one mapping per task, in
// task order.
func NewJobFromMappings(jobConfig map[string]string, taskConfigs []map[string]string) *Job {
	job := NewJob(jobConfig)
	for _, tc := range taskConfigs {
		job.AddTask(NewTask(tc))
	}
	return job
}

// AddTask appends a task to the job, preserving insertion order.
func (j *Job) AddTask(t *Task) {
	j.Tasks = append(j.Tasks, t)
}

// Language returns the job language, or "" when unset.
func (j *Job) Language() string {
	return j.Config[KeyJobLanguage]
}

// Description returns the job description, or "" when unset.
func (j *Job) Description() string {
	return j.Config[KeyJobDescription]
}

// OutputFileName returns the configured output file name, or "".
func (j *Job) OutputFileName() string {
	return j.Config[KeyOSJobFileName]
}

// Validate checks that the job configuration carries its required keys
// and that every task validates.
func (j *Job) Validate() error {
	var errors []string

	if j.Language() == "" {
		errors = append(errors, fmt.Sprintf("%s is required", KeyJobLanguage))
	}
	if j.OutputFileName() == "" {
		errors = append(errors, fmt.Sprintf("%s is required", KeyOSJobFileName))
	}

	for i, t := range j.Tasks {
		if err := t.Validate(); err != nil {
			errors = append(errors, fmt.Sprintf("task %d: %v", i, err))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("job validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

// String renders a short human-readable summary.
func (j *Job) String() string {
	return fmt.Sprintf("job %s (language=%s, tasks=%d)", j.ID, j.Language(), len(j.Tasks))
}
