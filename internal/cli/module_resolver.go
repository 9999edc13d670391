package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/commit0-lite-test/deprecated/internal/utils"
)

// ModuleResolver handles resolving Go module information
type ModuleResolver struct {
	gomod *utils.GoModParser

	// root is the module root directory once resolved; import paths are
	// built relative to it, not to the working directory
	root string
}

// NewModuleResolver creates a new module resolver
func NewModuleResolver() *ModuleResolver {
	return &ModuleResolver{
		gomod: utils.NewGoModParser(utils.NewFileReader()),
	}
}

// ResolveModuleName resolves the module path for imports.
// If customModule is provided it wins; the module root still comes from the
// nearest go.mod so import paths stay anchored to it.
func (r *ModuleResolver) ResolveModuleName(customModule string) (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}

	moduleName, root, err := r.gomod.Resolve(cwd)
	if err != nil {
		if customModule != "" {
			r.root = cwd
			return customModule, nil
		}
		return "", fmt.Errorf("failed to determine module name: %w (consider using -module flag)", err)
	}

	r.root = root
	if customModule != "" {
		return customModule, nil
	}
	return moduleName, nil
}

// Root returns the resolved module root directory
func (r *ModuleResolver) Root() string {
	return r.root
}

// BuildPackagePath builds the full import path for a package directory
func (r *ModuleResolver) BuildPackagePath(moduleName, packageDir string) (string, error) {
	root := r.root
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get current directory: %w", err)
		}
		root = cwd
	}

	absPackageDir, err := filepath.Abs(packageDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve package directory: %w", err)
	}

	// Bring both sides to one canonical form before Rel; symlinked paths
	// would otherwise land outside the root
	if resolved, err := filepath.EvalSymlinks(absPackageDir); err == nil {
		absPackageDir = resolved
	}
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	relPath, err := filepath.Rel(root, absPackageDir)
	if err != nil {
		return "", fmt.Errorf("failed to calculate relative path: %w", err)
	}

	// Convert file path separators to forward slashes for import paths
	importPath := filepath.ToSlash(relPath)

	if importPath == "." {
		return moduleName, nil
	}
	if importPath == ".." || strings.HasPrefix(importPath, "../") {
		return "", fmt.Errorf("package directory %s is outside the module root %s", absPackageDir, root)
	}

	return fmt.Sprintf("%s/%s", moduleName, importPath), nil
}
