package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileReader reads source files with content caching, so the scan pass and
// the rewrite pass share a single read per file.
type FileReader struct {
	cache *FileCache[string]
}

// NewFileReader creates a new FileReader instance
func NewFileReader() *FileReader {
	return &FileReader{
		cache: NewFileCache[string](),
	}
}

// ReadFile reads a file and returns its contents as a string with caching
func (fr *FileReader) ReadFile(filePath string) (string, error) {
	cleanPath, err := fr.validateAndCleanPath(filePath)
	if err != nil {
		return "", err
	}

	if cached, ok := fr.cache.Get(cleanPath); ok {
		return cached, nil
	}

	content, err := os.ReadFile(cleanPath)
	if err != nil {
		return "", WrapReadError(fmt.Sprintf("file %s", filepath.Base(cleanPath)), err)
	}

	text := string(content)
	fr.cache.Set(cleanPath, text)

	return text, nil
}

// InvalidateFile removes a specific file from the cache, used after the
// file has been rewritten
func (fr *FileReader) InvalidateFile(filePath string) {
	fr.cache.Delete(filepath.Clean(filePath))
}

// ClearCache clears all cached file contents
func (fr *FileReader) ClearCache() {
	fr.cache.Clear()
}

// CachedFiles returns the number of files currently cached
func (fr *FileReader) CachedFiles() int {
	return fr.cache.Size()
}

// validateAndCleanPath validates and cleans a file path
func (fr *FileReader) validateAndCleanPath(filePath string) (string, error) {
	if filePath == "" {
		return "", fmt.Errorf("file path cannot be empty")
	}

	// Clean the path to prevent path traversal
	cleanPath := filepath.Clean(filePath)

	// Allow .. only at the beginning (relative path)
	if strings.Contains(cleanPath, "..") && !strings.HasPrefix(cleanPath, "..") {
		return "", fmt.Errorf("path traversal not allowed in file path: %s", filePath)
	}

	if _, err := os.Stat(cleanPath); os.IsNotExist(err) {
		return "", fmt.Errorf("file does not exist: %s", cleanPath)
	}

	return cleanPath, nil
}
