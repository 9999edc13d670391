package cli

import (
	"fmt"
	"sort"
	"time"

	"github.com/commit0-lite-test/deprecated/internal/annotations"
	"github.com/commit0-lite-test/deprecated/internal/models"
	"github.com/commit0-lite-test/deprecated/internal/rewrite"
	"github.com/commit0-lite-test/deprecated/internal/scanner"
	"github.com/commit0-lite-test/deprecated/internal/utils"
)

// Runner coordinates scanning the directories and applying the selected mode
type Runner struct {
	dirScanner  *DirectoryScanner
	resolver    *ModuleResolver
	reader      *utils.FileReader
	scanner     *scanner.Scanner
	diagnostics *utils.DiagnosticSystem
	report      *models.Report
	findings    []rewrite.Finding
	summary     RunSummary
}

// RunSummary contains information about a completed run
type RunSummary struct {
	PackagesScanned int
	APIsFound       int
	PendingFound    int
	FilesRewritten  int
	ChangedFiles    []string
}

// NewRunner creates a new runner wired to the given diagnostic system.
// The scanner and rewriter share one file reader so the rewrite pass hits
// the contents cached during scanning.
func NewRunner(diagnostics *utils.DiagnosticSystem) *Runner {
	reader := utils.NewFileReader()
	return &Runner{
		dirScanner:  NewDirectoryScanner(),
		resolver:    NewModuleResolver(),
		reader:      reader,
		scanner:     scanner.NewScannerWithReader(reader),
		diagnostics: diagnostics,
	}
}

// Report returns the scan report collected by the last Run
func (r *Runner) Report() *models.Report {
	return r.report
}

// Findings returns the per-declaration check results from the last Run.
// Only populated in check mode.
func (r *Runner) Findings() []rewrite.Finding {
	return r.findings
}

// GetSummary returns the run summary
func (r *Runner) GetSummary() RunSummary {
	return r.summary
}

// Run executes the configured mode across all requested directories
func (r *Runner) Run(config Config) error {
	startTime := time.Now()
	r.summary = RunSummary{}
	r.report = nil
	r.findings = nil

	r.diagnostics.Verbose("Starting %s run at %s", config.Mode, startTime.Format("15:04:05"))
	r.diagnostics.Debug("Scanning directories: %v", config.Directories)
	if config.ModuleName != "" {
		r.diagnostics.Debug("Using custom module name: %s", config.ModuleName)
	}

	r.diagnostics.StartProgress("Resolving module path")
	moduleName, err := r.resolver.ResolveModuleName(config.ModuleName)
	if err != nil {
		r.diagnostics.EndProgress(false, "")
		return &models.ToolError{
			Type:    models.ErrorTypeValidation,
			Message: fmt.Sprintf("failed to resolve module path: %v", err),
			Hint:    "Run from inside a Go module, or pass -module explicitly",
			Cause:   err,
		}
	}
	r.diagnostics.EndProgress(true, "")
	r.diagnostics.Debug("Resolved module path: %s", moduleName)

	r.diagnostics.StartProgress("Scanning directories for Go packages")
	packageDirs, err := r.dirScanner.ScanDirectories(config.Directories)
	if err != nil {
		r.diagnostics.EndProgress(false, "")
		return &models.ToolError{
			Type:    models.ErrorTypeFileSystem,
			Message: fmt.Sprintf("failed to scan directories: %v", err),
			Hint:    "Check that the directories exist and are readable",
			Cause:   err,
		}
	}
	if len(packageDirs) == 0 {
		r.diagnostics.EndProgress(false, "")
		return &models.ToolError{
			Type:    models.ErrorTypeValidation,
			Message: "no Go packages found in the given directories",
			Hint:    "Point the tool at directories containing Go files, or use the dir/... form",
		}
	}
	r.diagnostics.EndProgress(true, "")

	r.diagnostics.Verbose("Found %d packages to scan", len(packageDirs))
	r.diagnostics.Indent()
	for _, dir := range packageDirs {
		r.diagnostics.Verbose("%s", dir)
	}
	r.diagnostics.Unindent()

	report := &models.Report{Module: moduleName}
	for _, dir := range packageDirs {
		scan, err := r.scanner.ScanDirectory(dir)
		if err != nil {
			return err
		}
		if len(scan.APIs) == 0 {
			continue
		}

		importPath, err := r.resolver.BuildPackagePath(moduleName, dir)
		if err != nil {
			// Outside the module root; fall back to the package name
			r.diagnostics.Debug("No import path for %s: %v", dir, err)
			importPath = scan.PackageName
		}
		scan.ImportPath = importPath
		report.Packages = append(report.Packages, *scan)
	}

	r.summary.PackagesScanned = len(packageDirs)
	r.summary.APIsFound = report.TotalAPIs()
	for _, pkg := range report.Packages {
		for _, api := range pkg.APIs {
			if api.Annotation.Type == annotations.PendingAnnotation {
				r.summary.PendingFound++
			}
		}
	}

	switch config.Mode {
	case ModeWrite:
		err = r.rewriteFiles(report, config.Width, false)
	case ModeStrip:
		err = r.rewriteFiles(report, config.Width, true)
	case ModeCheck:
		for _, pkg := range report.Packages {
			r.findings = append(r.findings, rewrite.Check(pkg.APIs)...)
		}
	}
	if err != nil {
		return err
	}

	r.report = report
	r.diagnostics.Verbose("Completed %s run in %v", config.Mode, time.Since(startTime))
	return nil
}

// rewriteFiles applies the write or strip transform to every file that has
// annotated declarations
func (r *Runner) rewriteFiles(report *models.Report, width int, strip bool) error {
	rewriter := rewrite.NewRewriterWithReader(width, r.reader)

	for _, pkg := range report.Packages {
		byFile := pkg.APIsByFile()
		for _, file := range sortedFiles(byFile) {
			var changed bool
			var err error
			if strip {
				changed, err = rewriter.StripFile(file, byFile[file])
			} else {
				changed, err = rewriter.WriteFile(file, byFile[file])
			}
			if err != nil {
				return err
			}

			if changed {
				r.diagnostics.Progress("%s", file)
				r.summary.FilesRewritten++
				r.summary.ChangedFiles = append(r.summary.ChangedFiles, file)
			} else {
				r.diagnostics.Verbose("unchanged %s", file)
			}
		}
	}

	return nil
}

// sortedFiles returns the map keys in stable order so output and writes are
// deterministic run to run
func sortedFiles(byFile map[string][]models.DeprecatedAPI) []string {
	files := make([]string, 0, len(byFile))
	for file := range byFile {
		files = append(files, file)
	}
	sort.Strings(files)
	return files
}
