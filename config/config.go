package config

// Config holds all aligner tool options
type Config struct {
	// Required fields
	Input     string `yaml:"input"`      // job config source (.txt, .xml, or raw config string file)
	OutputDir string `yaml:"output_dir"` // directory for rendered output

	// Output settings
	Format string `yaml:"format"` // "srt" or "vtt"

	// Execution settings
	TempDir string `yaml:"temp_dir"` // empty = platform default

	// Behavioral flags
	StrictMode bool `yaml:"strict_mode"` // Fail when the job config produced warnings
	Verbose    bool `yaml:"verbose"`     // Show detailed logs
	DryRun     bool `yaml:"dry_run"`     // Parse and validate without writing output
}

// DefaultConfig returns configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		// Required - must be provided by user
		Input: "",

		// Output defaults
		OutputDir: ".",
		Format:    "srt",

		// Execution defaults
		TempDir: "", // Platform default

		// Behavioral defaults
		StrictMode: false,
		Verbose:    false,
		DryRun:     false,
	}
}

// Copy creates a copy of the config
func (c *Config) Copy() *Config {
	copy := *c
	return &copy
}

// FormatValues returns valid output format values
func FormatValues() []string {
	return []string{"srt", "vtt"}
}

// IsValidFormat checks if format is valid
func IsValidFormat(format string) bool {
	for _, valid := range FormatValues() {
		if format == valid {
			return true
		}
	}
	return false
}
