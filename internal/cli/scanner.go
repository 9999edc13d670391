package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/commit0-lite-test/deprecated/internal/utils"
)

// DirectoryScanner expands directory arguments into package directories
type DirectoryScanner struct {
	fileProcessor *utils.FileProcessor
}

// NewDirectoryScanner creates a new directory scanner
func NewDirectoryScanner() *DirectoryScanner {
	return &DirectoryScanner{
		fileProcessor: utils.NewFileProcessor(),
	}
}

// ScanDirectories expands the provided directories into package directories
// containing Go files. A Go-style "/..." suffix walks the whole tree below
// the base directory; a plain path names exactly one package directory.
func (s *DirectoryScanner) ScanDirectories(rootDirs []string) ([]string, error) {
	seen := make(map[string]bool)
	var packageDirs []string

	add := func(dir string) {
		if !seen[dir] {
			seen[dir] = true
			packageDirs = append(packageDirs, dir)
		}
	}

	for _, rootDir := range rootDirs {
		if strings.HasSuffix(rootDir, "/...") {
			baseDir := strings.TrimSuffix(rootDir, "/...")
			if baseDir == "" {
				baseDir = "."
			}

			cleanPath, err := filepath.Abs(baseDir)
			if err != nil {
				return nil, utils.WrapProcessError(fmt.Sprintf("path resolution %s", baseDir), err)
			}

			found, err := s.fileProcessor.ScanDirectoriesWithGoFiles([]string{cleanPath})
			if err != nil {
				return nil, err
			}
			for _, dir := range found {
				add(dir)
			}
			continue
		}

		cleanPath, err := filepath.Abs(rootDir)
		if err != nil {
			return nil, utils.WrapProcessError(fmt.Sprintf("path resolution %s", rootDir), err)
		}

		hasGo, err := s.fileProcessor.HasGoFiles(cleanPath)
		if err != nil {
			return nil, err
		}
		if hasGo {
			add(cleanPath)
		}
	}

	return packageDirs, nil
}
