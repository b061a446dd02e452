package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJobConfig() map[string]string {
	return map[string]string{
		KeyJobLanguage:   "en",
		KeyOSJobFileName: "output",
	}
}

func validTaskConfig() map[string]string {
	return map[string]string{
		KeyTaskLanguage:   "en",
		KeyOSTaskFileName: "t1",
	}
}

func TestNewJob(t *testing.T) {
	job := NewJob(validJobConfig())

	require.NotNil(t, job)
	assert.NotEmpty(t, job.ID)
	assert.Equal(t, "en", job.Language())
	assert.Equal(t, "output", job.OutputFileName())
	assert.Empty(t, job.Tasks)
}

func TestNewJobNilConfig(t *testing.T) {
	job := NewJob(nil)

	require.NotNil(t, job.Config)
	assert.Equal(t, "", job.Language())
}

func TestNewJobUniqueIDs(t *testing.T) {
	a := NewJob(validJobConfig())
	b := NewJob(validJobConfig())

	assert.NotEqual(t, a.ID, b.ID)
}

func TestNewJobFromMappings(t *testing.T) {
	taskConfigs := []map[string]string{
		{KeyTaskLanguage: "en", KeyOSTaskFileName: "t1"},
		{KeyTaskLanguage: "it", KeyOSTaskFileName: "t2"},
	}

	job := NewJobFromMappings(validJobConfig(), taskConfigs)

	require.Len(t, job.Tasks, 2)
	// Task order must match mapping order.
	assert.Equal(t, "en", job.Tasks[0].Language())
	assert.Equal(t, "it", job.Tasks[1].Language())
}

func TestJobValidate(t *testing.T) {
	tests := []struct {
		name      string
		job       func() *Job
		wantErr   bool
		errorText string
	}{
		{
			name:    "valid job",
			job:     func() *Job { return NewJob(validJobConfig()) },
			wantErr: false,
		},
		{
			name: "missing language",
			job: func() *Job {
				cfg := validJobConfig()
				delete(cfg, KeyJobLanguage)
				return NewJob(cfg)
			},
			wantErr:   true,
			errorText: KeyJobLanguage,
		},
		{
			name: "missing output file name",
			job: func() *Job {
				cfg := validJobConfig()
				delete(cfg, KeyOSJobFileName)
				return NewJob(cfg)
			},
			wantErr:   true,
			errorText: KeyOSJobFileName,
		},
		{
			name: "invalid task",
			job: func() *Job {
				job := NewJob(validJobConfig())
				job.AddTask(NewTask(map[string]string{KeyTaskLanguage: "en"}))
				return job
			},
			wantErr:   true,
			errorText: "task 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.job().Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorText)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTaskAccessors(t *testing.T) {
	task := NewTask(map[string]string{
		KeyTaskLanguage:       "en",
		KeyOSTaskFileName:     "t1",
		KeyAudioHeadLength:    "1.5",
		KeyAudioProcessLength: "not-a-number",
	})

	assert.Equal(t, "en", task.Language())
	assert.Equal(t, "t1", task.OutputFileName())
	assert.Equal(t, 1.5, task.AudioHeadLength())
	// Unparsable numeric values fall back to zero.
	assert.Equal(t, 0.0, task.AudioProcessLength())
}

func TestTaskValidate(t *testing.T) {
	task := NewTask(validTaskConfig())
	assert.NoError(t, task.Validate())

	bad := NewTask(map[string]string{})
	err := bad.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), KeyTaskLanguage)
	assert.Contains(t, err.Error(), KeyOSTaskFileName)
}
