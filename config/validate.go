package config

import (
	"fmt"
	"os"
	"strings"
)

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	var errors []string

	// Required fields
	if c.Input == "" {
		errors = append(errors, "input file is required")
	} else {
		// Check if input file exists
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			errors = append(errors, fmt.Sprintf("input file does not exist: %s", c.Input))
		}
	}

	if c.OutputDir == "" {
		errors = append(errors, "output directory is required")
	}

	// Validate output format
	if !IsValidFormat(c.Format) {
		errors = append(errors, fmt.Sprintf("invalid format '%s', must be one of: %s",
			c.Format, strings.Join(FormatValues(), ", ")))
	}

	// Validate temp dir (empty means platform default)
	if c.TempDir != "" {
		if info, err := os.Stat(c.TempDir); err != nil || !info.IsDir() {
			errors = append(errors, fmt.Sprintf("temp dir is not a directory: %s", c.TempDir))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}
