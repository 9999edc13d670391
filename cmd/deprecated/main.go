package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/commit0-lite-test/deprecated/internal/cli"
	"github.com/commit0-lite-test/deprecated/internal/rewrite"
	"github.com/commit0-lite-test/deprecated/internal/utils"
)

func main() {
	// Define command-line flags
	var (
		writeFlag   = flag.Bool("write", false, "Write Deprecated: doc paragraphs derived from the directives")
		stripFlag   = flag.Bool("strip", false, "Remove Deprecated: doc paragraphs from annotated declarations")
		checkFlag   = flag.Bool("check", false, "Verify doc paragraphs match the directives; non-zero exit on drift")
		widthFlag   = flag.Int("width", rewrite.DefaultWidth, "Column to wrap written doc paragraphs at")
		moduleFlag  = flag.String("module", "", "Custom module path for imports (defaults to go.mod module)")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed error reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Deprecation Directive Tool\n")
		fmt.Fprintf(os.Stderr, "Scans directories for Go declarations carrying deprecated:: directives and\n")
		fmt.Fprintf(os.Stderr, "reports them, or keeps their Deprecated: doc paragraphs in sync.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    One or more directories to scan for annotated Go files\n")
		fmt.Fprintf(os.Stderr, "                     Supports Go-style patterns like './...' for recursive scanning\n")
		fmt.Fprintf(os.Stderr, "\nDirectory Patterns:\n")
		fmt.Fprintf(os.Stderr, "  ./...              Scan current directory and all subdirectories recursively\n")
		fmt.Fprintf(os.Stderr, "  ./internal/...     Scan internal directory and all its subdirectories\n")
		fmt.Fprintf(os.Stderr, "  ./pkg/store        Scan only the specific directory (no recursion)\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./...                                  # Report all deprecated declarations\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -write ./...                           # Sync Deprecated: doc paragraphs\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -check ./...                           # Fail CI when paragraphs drift\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -strip ./internal/...                  # Remove Deprecated: paragraphs\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -write -width 100 ./...                # Wrap paragraphs at column 100\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -module github.com/myorg/myapp ./...   # Specify custom module path\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -verbose ./...                         # Enable detailed output\n", os.Args[0])
	}

	flag.Parse()

	// Show help if requested
	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	// Validate arguments
	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	mode := cli.ModeReport
	modeFlags := 0
	if *writeFlag {
		mode = cli.ModeWrite
		modeFlags++
	}
	if *stripFlag {
		mode = cli.ModeStrip
		modeFlags++
	}
	if *checkFlag {
		mode = cli.ModeCheck
		modeFlags++
	}
	if modeFlags > 1 {
		fmt.Fprintf(os.Stderr, "Error: -write, -strip and -check are mutually exclusive\n\n")
		flag.Usage()
		os.Exit(1)
	}

	// Create diagnostic system based on flags
	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	reporter := cli.NewReporter(*verboseFlag)

	// Show configuration
	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Mode: %s", mode)
		diagnostics.List("Target directories: %s", strings.Join(args, ", "))
		if *moduleFlag != "" {
			diagnostics.List("Custom module: %s", *moduleFlag)
		}
		if mode == cli.ModeWrite {
			diagnostics.List("Wrap width: %d", *widthFlag)
		}
	}

	runner := cli.NewRunner(diagnostics)
	err := runner.Run(cli.Config{
		Directories: args,
		Mode:        mode,
		Width:       *widthFlag,
		ModuleName:  *moduleFlag,
		Verbose:     *verboseFlag,
	})
	if err != nil {
		reporter.ReportError(err)
		os.Exit(1)
	}

	summary := runner.GetSummary()

	switch mode {
	case cli.ModeReport:
		reporter.PrintReport(runner.Report())

	case cli.ModeCheck:
		drift := reporter.PrintFindings(runner.Findings())
		if drift > 0 {
			diagnostics.Error("%d declarations have doc paragraphs out of sync", drift)
			os.Exit(1)
		}
		diagnostics.Success("All Deprecated: doc paragraphs are in sync")

	case cli.ModeWrite, cli.ModeStrip:
		stats := []utils.Stat{
			{Name: "Packages scanned", Value: summary.PackagesScanned},
			{Name: "Deprecated declarations", Value: summary.APIsFound},
			{Name: "Pending deprecations", Value: summary.PendingFound},
			{Name: "Files rewritten", Value: summary.FilesRewritten},
		}
		diagnostics.Summary("Run Complete", stats)

		if *verboseFlag && len(summary.ChangedFiles) > 0 {
			diagnostics.Subsection("Rewritten Files")
			for _, file := range summary.ChangedFiles {
				diagnostics.List("%s", file)
			}
		}

		if mode == cli.ModeWrite {
			diagnostics.Success("Deprecated: doc paragraphs are in sync with the directives")
		} else {
			diagnostics.Success("Deprecated: doc paragraphs removed")
		}
	}
}
