package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileProcessor walks directory trees and finds Go package directories
type FileProcessor struct{}

// NewFileProcessor creates a new file processor
func NewFileProcessor() *FileProcessor {
	return &FileProcessor{}
}

// IsScannableGoFile reports whether a file name belongs to the scanned
// package: a .go file that is not a test file and not hidden from the build
// by a leading dot or underscore.
func IsScannableGoFile(name string) bool {
	if !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
		return false
	}
	return !strings.HasPrefix(name, ".") && !strings.HasPrefix(name, "_")
}

// skipDirs never hold scannable source
var skipDirs = map[string]bool{
	"vendor":       true,
	"node_modules": true,
	"testdata":     true,
	"build":        true,
	"dist":         true,
}

// ShouldWalkDirectory reports whether a recursive scan descends into the
// named directory. Hidden and underscore-prefixed directories follow the Go
// tool's convention and are skipped.
func ShouldWalkDirectory(name string) bool {
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
		return false
	}
	return !skipDirs[name]
}

// ScanDirectoriesWithGoFiles recursively scans the roots and returns every
// directory containing at least one scannable Go file
func (fp *FileProcessor) ScanDirectoriesWithGoFiles(rootDirs []string) ([]string, error) {
	var packageDirs []string
	visited := make(map[string]bool)

	for _, rootDir := range rootDirs {
		dirs, err := fp.scanDirectoryRecursive(rootDir, visited)
		if err != nil {
			return nil, err
		}
		packageDirs = append(packageDirs, dirs...)
	}

	return packageDirs, nil
}

// scanDirectoryRecursive recursively collects package directories below dir
func (fp *FileProcessor) scanDirectoryRecursive(dir string, visited map[string]bool) ([]string, error) {
	// Resolve absolute path to handle symlinks and avoid cycles
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, WrapProcessError(fmt.Sprintf("path resolution %s", dir), err)
	}

	if visited[absDir] {
		return nil, nil
	}
	visited[absDir] = true

	var packageDirs []string

	hasGoFiles, err := fp.HasGoFiles(dir)
	if err != nil {
		return nil, WrapProcessError(fmt.Sprintf("Go file check in %s", dir), err)
	}
	if hasGoFiles {
		packageDirs = append(packageDirs, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, WrapProcessError(fmt.Sprintf("directory read %s", dir), err)
	}

	for _, entry := range entries {
		if !entry.IsDir() || !ShouldWalkDirectory(entry.Name()) {
			continue
		}

		subDirs, err := fp.scanDirectoryRecursive(filepath.Join(dir, entry.Name()), visited)
		if err != nil {
			return nil, err
		}
		packageDirs = append(packageDirs, subDirs...)
	}

	return packageDirs, nil
}

// HasGoFiles checks if a directory contains any scannable .go files
func (fp *FileProcessor) HasGoFiles(dir string) (bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false, err
	}

	for _, entry := range entries {
		if !entry.IsDir() && IsScannableGoFile(entry.Name()) {
			return true, nil
		}
	}

	return false, nil
}
