// Package fsutil provides filesystem path helpers used across the tool.
package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// unixTempPath is the temp base used on linux and darwin. Keeping it
// fixed makes the scratch location predictable for cleanup scripts.
const unixTempPath = "/tmp"

// FileNameWithoutExtension returns the base name of path with its
// extension stripped.
//
// Example:
//
//	FileNameWithoutExtension("/foo/bar.baz") // "bar"
//	FileNameWithoutExtension("/foo/bar")     // "bar"
//	FileNameWithoutExtension("/foo/.hidden") // ".hidden"
func FileNameWithoutExtension(path string) string {
	base := filepath.Base(path)
	// For a dotfile filepath.Ext returns the whole name; the leading
	// dot is part of the name, not an extension marker.
	if ext := filepath.Ext(base); ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}

// NormJoin joins prefix and suffix and returns the cleaned result.
func NormJoin(prefix, suffix string) string {
	return filepath.Clean(filepath.Join(prefix, suffix))
}

// TempDir returns the base directory for temporary files: a fixed path
// on linux and darwin, the system default elsewhere.
func TempDir() string {
	switch runtime.GOOS {
	case "linux", "darwin":
		return unixTempPath
	}
	return os.TempDir()
}

// CopyTree recursively copies the contents of src into dst.
//
// Unlike a plain directory copy, the root src directory itself is not
// recreated inside dst: its entries land directly in dst. dst is
// created if missing; existing files are overwritten.
func CopyTree(src, dst string) error {
	info, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}

	if !info.IsDir() {
		return copyFile(src, dst)
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("failed to create destination directory: %w", err)
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read source directory: %w", err)
	}

	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		dstPath := filepath.Join(dst, entry.Name())
		if err := CopyTree(srcPath, dstPath); err != nil {
			return err
		}
	}

	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source file: %w", err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s: %w", src, err)
	}

	return out.Close()
}
