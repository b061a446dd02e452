package models

// Well-known configuration keys. Job-level keys are prefixed job_/os_job_,
// task-level keys task_/os_task_/is_audio_.
const (
	KeyJobLanguage    = "job_language"
	KeyJobDescription = "job_description"
	KeyOSJobFileName  = "os_job_file_name"

	KeyTaskLanguage       = "task_language"
	KeyTaskDescription    = "task_description"
	KeyOSTaskFileName     = "os_task_file_name"
	KeyOSTaskFileFormat   = "os_task_file_format"
	KeyAudioHeadLength    = "is_audio_file_head_length"
	KeyAudioProcessLength = "is_audio_file_process_length"
)
