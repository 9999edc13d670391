package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// GoModParser resolves module information from go.mod files
type GoModParser struct {
	fileReader *FileReader
}

// NewGoModParser creates a new go.mod parser sharing the reader's cache
func NewGoModParser(fileReader *FileReader) *GoModParser {
	return &GoModParser{
		fileReader: fileReader,
	}
}

// ParseModuleName extracts the module path from a go.mod file
func (p *GoModParser) ParseModuleName(goModPath string) (string, error) {
	cleanPath := filepath.Clean(goModPath)
	if filepath.Base(cleanPath) != "go.mod" {
		return "", fmt.Errorf("file is not a go.mod file: %s", goModPath)
	}

	content, err := p.fileReader.ReadFile(cleanPath)
	if err != nil {
		return "", WrapReadError("go.mod file", err)
	}

	// Parse using the official modfile parser
	modFile, err := modfile.Parse(cleanPath, []byte(content), nil)
	if err != nil {
		return "", WrapParseError("go.mod file", err)
	}

	if modFile.Module == nil {
		return "", fmt.Errorf("no module declaration found in go.mod")
	}

	return modFile.Module.Mod.Path, nil
}

// Resolve walks up from startDir to the nearest go.mod and returns the
// module path together with the module root directory. Import paths for
// scanned packages are built relative to that root.
func (p *GoModParser) Resolve(startDir string) (modulePath, rootDir string, err error) {
	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve directory %s: %w", startDir, err)
	}

	for {
		goModPath := filepath.Join(currentDir, "go.mod")
		if _, statErr := os.Stat(goModPath); statErr == nil {
			modulePath, err := p.ParseModuleName(goModPath)
			if err != nil {
				return "", "", err
			}
			return modulePath, currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached the file system root
			break
		}
		currentDir = parentDir
	}

	return "", "", fmt.Errorf("go.mod file not found in %s or any parent directory", startDir)
}
