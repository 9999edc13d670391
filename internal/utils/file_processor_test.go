package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsScannableGoFile(t *testing.T) {
	tests := []struct {
		name string
		file string
		want bool
	}{
		{"go file", "client.go", true},
		{"test file", "client_test.go", false},
		{"non-go file", "README.md", false},
		{"hidden file", ".client.go", false},
		{"underscore file", "_client.go", false},
		{"bare extension", ".go", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsScannableGoFile(tt.file); got != tt.want {
				t.Errorf("IsScannableGoFile(%q) = %v, want %v", tt.file, got, tt.want)
			}
		})
	}
}

func TestShouldWalkDirectory(t *testing.T) {
	tests := []struct {
		name string
		dir  string
		want bool
	}{
		{"source dir", "internal", true},
		{"vendor", "vendor", false},
		{"node_modules", "node_modules", false},
		{"testdata", "testdata", false},
		{"hidden", ".git", false},
		{"underscore", "_examples", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldWalkDirectory(tt.dir); got != tt.want {
				t.Errorf("ShouldWalkDirectory(%q) = %v, want %v", tt.dir, got, tt.want)
			}
		})
	}
}

// buildTree creates a directory tree where each entry maps a relative file
// path to its content.
func buildTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	return root
}

func TestScanDirectoriesWithGoFiles(t *testing.T) {
	root := buildTree(t, map[string]string{
		"pkg/client/client.go":        "package client\n",
		"pkg/client/client_test.go":   "package client\n",
		"pkg/server/server.go":        "package server\n",
		"pkg/server/nested/deep.go":   "package nested\n",
		"vendor/dep/dep.go":           "package dep\n",
		"_examples/demo/demo.go":      "package demo\n",
		"pkg/docs/README.md":          "docs only\n",
		"pkg/testonly/helper_test.go": "package testonly\n",
	})

	fp := NewFileProcessor()
	dirs, err := fp.ScanDirectoriesWithGoFiles([]string{root})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}

	found := make(map[string]bool)
	for _, dir := range dirs {
		rel, err := filepath.Rel(root, dir)
		if err != nil {
			t.Fatalf("rel failed: %v", err)
		}
		found[filepath.ToSlash(rel)] = true
	}

	for _, want := range []string{"pkg/client", "pkg/server", "pkg/server/nested"} {
		if !found[want] {
			t.Errorf("expected directory %s in scan results, got %v", want, dirs)
		}
	}
	for _, skip := range []string{"vendor/dep", "_examples/demo", "pkg/docs", "pkg/testonly"} {
		if found[skip] {
			t.Errorf("directory %s should have been skipped", skip)
		}
	}
}

func TestScanDirectoriesWithGoFiles_MissingRoot(t *testing.T) {
	fp := NewFileProcessor()
	if _, err := fp.ScanDirectoriesWithGoFiles([]string{filepath.Join(t.TempDir(), "missing")}); err == nil {
		t.Error("expected error for missing root directory")
	}
}

func TestHasGoFiles(t *testing.T) {
	root := buildTree(t, map[string]string{
		"with/a.go":        "package a\n",
		"without/notes.md": "hi\n",
		"testsonly/a_test.go": "package a\n",
	})

	fp := NewFileProcessor()

	has, err := fp.HasGoFiles(filepath.Join(root, "with"))
	if err != nil || !has {
		t.Errorf("expected Go files in 'with' (err %v)", err)
	}

	has, err = fp.HasGoFiles(filepath.Join(root, "without"))
	if err != nil || has {
		t.Errorf("expected no Go files in 'without' (err %v)", err)
	}

	has, err = fp.HasGoFiles(filepath.Join(root, "testsonly"))
	if err != nil || has {
		t.Errorf("test-only directories should not count (err %v)", err)
	}
}
