package fsutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileNameWithoutExtension(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"With extension", "/foo/bar.baz", "bar"},
		{"Without extension", "/foo/bar", "bar"},
		{"Double extension", "/foo/archive.tar.gz", "archive.tar"},
		{"Relative path", "bar.txt", "bar"},
		{"Hidden file", "/foo/.hidden", ".hidden"},
		{"Hidden file with extension", "/foo/.hidden.txt", ".hidden"},
		{"Trailing dot", "/foo/bar.", "bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FileNameWithoutExtension(tt.path)
			if result != tt.expected {
				t.Errorf("FileNameWithoutExtension(%q) = %q; want %q", tt.path, result, tt.expected)
			}
		})
	}
}

func TestNormJoin(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		suffix   string
		expected string
	}{
		{"Simple join", "/foo", "bar", "/foo/bar"},
		{"Dot segments collapse", "/foo/baz", "../bar", "/foo/bar"},
		{"Redundant slashes", "/foo//", "bar", "/foo/bar"},
		{"Current dir", ".", "bar", "bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormJoin(tt.prefix, tt.suffix)
			if result != tt.expected {
				t.Errorf("NormJoin(%q, %q) = %q; want %q", tt.prefix, tt.suffix, result, tt.expected)
			}
		})
	}
}

func TestTempDir(t *testing.T) {
	dir := TempDir()
	if dir == "" {
		t.Fatal("TempDir returned empty path")
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("TempDir returned non-existent path %s: %v", dir, err)
	}
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()

	// Build a small tree: file at root, file in a nested dir.
	if err := os.WriteFile(filepath.Join(src, "a.txt"), []byte("alpha"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(src, "sub"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(src, "sub", "b.txt"), []byte("beta"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := CopyTree(src, dst); err != nil {
		t.Fatalf("CopyTree failed: %v", err)
	}

	// Root contents land directly in dst, not under a copy of src.
	got, err := os.ReadFile(filepath.Join(dst, "a.txt"))
	if err != nil {
		t.Fatalf("expected a.txt in destination: %v", err)
	}
	if string(got) != "alpha" {
		t.Errorf("a.txt content = %q; want %q", got, "alpha")
	}

	got, err = os.ReadFile(filepath.Join(dst, "sub", "b.txt"))
	if err != nil {
		t.Fatalf("expected sub/b.txt in destination: %v", err)
	}
	if string(got) != "beta" {
		t.Errorf("sub/b.txt content = %q; want %q", got, "beta")
	}
}

func TestCopyTreeMissingSource(t *testing.T) {
	if err := CopyTree("/nonexistent/source/dir", t.TempDir()); err == nil {
		t.Error("Expected error for missing source, got nil")
	}
}
