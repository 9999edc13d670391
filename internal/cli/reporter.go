package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/commit0-lite-test/deprecated/internal/annotations"
	"github.com/commit0-lite-test/deprecated/internal/models"
	"github.com/commit0-lite-test/deprecated/internal/rewrite"
	"github.com/commit0-lite-test/deprecated/pkg/deprecated"
)

// Reporter renders scan reports, check findings and errors for the terminal
type Reporter struct {
	verbose bool
	out     io.Writer
	errOut  io.Writer
}

// NewReporter creates a new reporter
func NewReporter(verbose bool) *Reporter {
	return &Reporter{
		verbose: verbose,
		out:     os.Stdout,
		errOut:  os.Stderr,
	}
}

// SetOutput redirects normal and error output, used by tests
func (r *Reporter) SetOutput(out, errOut io.Writer) {
	r.out = out
	r.errOut = errOut
}

// PrintReport renders the scan report grouped by package
func (r *Reporter) PrintReport(report *models.Report) {
	if report == nil || report.TotalAPIs() == 0 {
		fmt.Fprintf(r.out, "No deprecated declarations found.\n")
		return
	}

	header := color.New(color.FgCyan, color.Bold)
	for _, pkg := range report.Packages {
		header.Fprint(r.out, pkg.ImportPath)
		fmt.Fprintf(r.out, " (%d deprecated)\n", len(pkg.APIs))

		for _, finding := range rewrite.Check(pkg.APIs) {
			api := finding.API
			fmt.Fprintf(r.out, "  %s:%d: %s %s: %s %s\n",
				filepath.Base(api.File), api.Line, api.Kind, api.QualifiedName(),
				describeAnnotation(api), r.stateTag(finding.State))
		}
		fmt.Fprintln(r.out)
	}

	fmt.Fprintf(r.out, "%d deprecated declarations in %d packages\n",
		report.TotalAPIs(), len(report.Packages))
}

// describeAnnotation builds the one-line human description of a directive
func describeAnnotation(api models.DeprecatedAPI) string {
	ann := api.Annotation

	var b strings.Builder
	switch ann.Type {
	case annotations.RenamedAnnotation:
		b.WriteString("renamed to " + ann.GetString("to"))
	case annotations.PendingAnnotation:
		b.WriteString("pending deprecation")
		if reason := ann.GetString("reason"); reason != "" {
			b.WriteString(": " + deprecated.CleanReason(reason))
		}
	default:
		if reason := ann.GetString("reason"); reason != "" {
			b.WriteString(deprecated.CleanReason(reason))
		} else {
			b.WriteString("deprecated")
		}
	}

	if version := ann.GetString("version"); version != "" {
		fmt.Fprintf(&b, " (since %s)", version)
	}
	if remove := ann.GetString("remove"); remove != "" {
		fmt.Fprintf(&b, ", removal in %s", remove)
	}
	return b.String()
}

// stateTag renders the doc-paragraph state of one declaration
func (r *Reporter) stateTag(state rewrite.CheckState) string {
	switch state {
	case rewrite.StateOk:
		return color.GreenString("[doc ok]")
	case rewrite.StateMissing:
		return color.RedString("[doc missing]")
	case rewrite.StateStale:
		return color.YellowString("[doc stale]")
	case rewrite.StateUnexpected:
		return color.YellowString("[doc unexpected]")
	default:
		return ""
	}
}

// PrintFindings renders check-mode results and returns the number of
// declarations whose doc paragraphs are out of sync
func (r *Reporter) PrintFindings(findings []rewrite.Finding) int {
	drift := 0
	for _, finding := range findings {
		if finding.Ok() {
			continue
		}
		drift++

		api := finding.API
		switch finding.State {
		case rewrite.StateMissing:
			fmt.Fprintf(r.out, "%s:%d: missing Deprecated: paragraph on %s %s\n",
				api.File, api.Line, api.Kind, api.QualifiedName())
			if r.verbose {
				fmt.Fprintf(r.out, "  want: %s\n", finding.Want)
			}
		case rewrite.StateStale:
			fmt.Fprintf(r.out, "%s:%d: stale Deprecated: paragraph on %s %s\n",
				api.File, api.Line, api.Kind, api.QualifiedName())
			if r.verbose {
				fmt.Fprintf(r.out, "  want: %s\n", finding.Want)
				fmt.Fprintf(r.out, "  have: %s\n", rewrite.Normalize(api.ParagraphText))
			}
		case rewrite.StateUnexpected:
			fmt.Fprintf(r.out, "%s:%d: unexpected Deprecated: paragraph on pending %s %s\n",
				api.File, api.Line, api.Kind, api.QualifiedName())
		}
	}
	return drift
}

// ReportError provides comprehensive error reporting with user-friendly output
func (r *Reporter) ReportError(err error) {
	fmt.Fprintf(r.errOut, "\nERROR: Deprecation Scan Failed\n")
	fmt.Fprintf(r.errOut, "==============================\n\n")

	var multi *annotations.MultipleAnnotationErrors
	var directive annotations.AnnotationError

	switch {
	case errors.As(err, &multi):
		r.reportDirectiveErrors(multi.Errors)
	case errors.As(err, &directive):
		r.reportDirectiveErrors([]annotations.AnnotationError{directive})
	default:
		if toolErr := findToolError(err); toolErr != nil {
			r.reportToolError(toolErr)
		} else {
			r.reportBasicError(err)
		}
	}

	fmt.Fprintf(r.errOut, "\n")
}

// reportDirectiveErrors reports directive errors with locations and fixes
func (r *Reporter) reportDirectiveErrors(errs []annotations.AnnotationError) {
	if len(errs) == 1 {
		e := errs[0]
		r.printErrorHeader(directiveErrorHeader(e.Code()))
		fmt.Fprintf(r.errOut, "Message: %s\n\n", directiveMessage(e))
		if loc := e.Location(); loc.File != "" {
			fmt.Fprintf(r.errOut, "Location: %s:%d:%d\n\n", loc.File, loc.Line, loc.Column)
		}
		if hint := e.Suggestion(); hint != "" {
			r.printSuggestions([]string{hint})
		}
		r.printDirectiveHelp()
		return
	}

	summary := annotations.SummarizeErrors(errs)
	fmt.Fprintf(r.errOut, "%s\n\n", summary.String())

	for i, e := range errs {
		loc := e.Location()
		fmt.Fprintf(r.errOut, "  %d. %s:%d:%d: %s\n", i+1, loc.File, loc.Line, loc.Column, directiveMessage(e))
		if hint := e.Suggestion(); hint != "" {
			fmt.Fprintf(r.errOut, "     fix: %s\n", hint)
		}
	}
	fmt.Fprintln(r.errOut)
	r.printDirectiveHelp()
}

// directiveMessage extracts the bare message without the location prefix
// that Error() repeats
func directiveMessage(e annotations.AnnotationError) string {
	switch err := e.(type) {
	case *annotations.SyntaxError:
		return err.Msg
	case *annotations.SchemaError:
		return err.Msg
	case *annotations.RegistrationError:
		return err.Msg
	case *annotations.ValidationError:
		return fmt.Sprintf("parameter '%s' validation failed: expected %s, got %s",
			err.Parameter, err.Expected, err.Actual)
	default:
		return e.Error()
	}
}

// directiveErrorHeader names a directive error code for the header line
func directiveErrorHeader(code annotations.ErrorCode) string {
	switch code {
	case annotations.SyntaxErrorCode:
		return "Directive Syntax Error"
	case annotations.ValidationErrorCode:
		return "Parameter Validation Error"
	case annotations.SchemaErrorCode:
		return "Directive Schema Error"
	case annotations.RegistrationErrorCode:
		return "Schema Registration Error"
	default:
		return "Directive Error"
	}
}

// reportToolError reports a ToolError with full context and suggestions
func (r *Reporter) reportToolError(toolErr *models.ToolError) {
	r.printErrorHeader(toolErrorHeader(toolErr.Type))

	fmt.Fprintf(r.errOut, "Message: %s\n\n", toolErr.Message)

	if r.verbose && toolErr.Cause != nil {
		fmt.Fprintf(r.errOut, "Underlying cause: %s\n\n", toolErr.Cause.Error())
	}

	if toolErr.File != "" {
		if toolErr.Line > 0 {
			fmt.Fprintf(r.errOut, "Location: %s:%d\n\n", toolErr.File, toolErr.Line)
		} else {
			fmt.Fprintf(r.errOut, "File: %s\n\n", toolErr.File)
		}
	}

	if toolErr.Hint != "" {
		r.printSuggestions([]string{toolErr.Hint})
	}

	r.printAdditionalHelp(toolErr.Type)

	if r.verbose {
		r.printErrorChain(toolErr.Cause)
	}
}

// reportBasicError reports an error without rich context
func (r *Reporter) reportBasicError(err error) {
	fmt.Fprintf(r.errOut, "Message: %s\n\n", err.Error())

	errorMsg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(errorMsg, "go.mod") || strings.Contains(errorMsg, "module"):
		fmt.Fprintf(r.errOut, "This appears to be a module-related issue.\n")
		fmt.Fprintf(r.errOut, "Common solutions:\n")
		fmt.Fprintf(r.errOut, "  - Check your go.mod file\n")
		fmt.Fprintf(r.errOut, "  - Run the tool from inside the module\n")
		fmt.Fprintf(r.errOut, "  - Try specifying the -module flag explicitly\n\n")
	case strings.Contains(errorMsg, "parse"):
		fmt.Fprintf(r.errOut, "This appears to be a Go parsing issue.\n")
		fmt.Fprintf(r.errOut, "Common solutions:\n")
		fmt.Fprintf(r.errOut, "  - Check for syntax errors in the reported file\n")
		fmt.Fprintf(r.errOut, "  - Ensure the file compiles before running the tool\n\n")
	case strings.Contains(errorMsg, "directive") || strings.Contains(errorMsg, "annotation"):
		fmt.Fprintf(r.errOut, "This appears to be a directive-related issue.\n")
		fmt.Fprintf(r.errOut, "Common solutions:\n")
		fmt.Fprintf(r.errOut, "  - Check your //deprecated:: directive syntax\n")
		fmt.Fprintf(r.errOut, "  - Quote parameter values that contain spaces\n\n")
	}
}

// printErrorHeader prints a formatted error header
func (r *Reporter) printErrorHeader(errorTypeStr string) {
	fmt.Fprintf(r.errOut, "Type: %s\n", errorTypeStr)
	fmt.Fprintf(r.errOut, "%s\n\n", strings.Repeat("-", len(errorTypeStr)+6))
}

// toolErrorHeader names a tool error type for the header line
func toolErrorHeader(errorType models.ErrorType) string {
	switch errorType {
	case models.ErrorTypeDirectiveSyntax:
		return "Directive Syntax Error"
	case models.ErrorTypeValidation:
		return "Validation Error"
	case models.ErrorTypeRewrite:
		return "Doc Rewrite Error"
	case models.ErrorTypeFileSystem:
		return "File System Error"
	default:
		return "Unknown Error"
	}
}

// printSuggestions prints actionable suggestions
func (r *Reporter) printSuggestions(suggestions []string) {
	fmt.Fprintf(r.errOut, "Suggestions:\n")
	for i, suggestion := range suggestions {
		fmt.Fprintf(r.errOut, "   %d. %s\n", i+1, suggestion)
	}
	fmt.Fprintf(r.errOut, "\n")
}

// printDirectiveHelp prints the directive syntax reminder
func (r *Reporter) printDirectiveHelp() {
	fmt.Fprintf(r.errOut, "Directive Syntax:\n")
	fmt.Fprintf(r.errOut, "  //deprecated::notice [-reason=\"...\"] [-version=X] [-remove=Y] [-action=NAME]\n")
	fmt.Fprintf(r.errOut, "  //deprecated::pending [-reason=\"...\"] [-version=X] [-remove=Y]\n")
	fmt.Fprintf(r.errOut, "  //deprecated::renamed -to=NewName [-version=X] [-remove=Y]\n\n")
	r.printGeneralHelp()
}

// printAdditionalHelp prints additional help based on error type
func (r *Reporter) printAdditionalHelp(errorType models.ErrorType) {
	switch errorType {
	case models.ErrorTypeRewrite:
		fmt.Fprintf(r.errOut, "Doc Rewrite Requirements:\n")
		fmt.Fprintf(r.errOut, "  - The file must parse before its doc comments can be rewritten\n")
		fmt.Fprintf(r.errOut, "  - Rewritten files are formatted; fix formatting errors in the source first\n\n")

	case models.ErrorTypeFileSystem:
		fmt.Fprintf(r.errOut, "File System Requirements:\n")
		fmt.Fprintf(r.errOut, "  - Ensure the scanned directories exist and are readable\n")
		fmt.Fprintf(r.errOut, "  - Write mode needs write permission on the package directories\n\n")
	}

	r.printGeneralHelp()
}

// printGeneralHelp prints the closing help block
func (r *Reporter) printGeneralHelp() {
	fmt.Fprintf(r.errOut, "For more help:\n")
	fmt.Fprintf(r.errOut, "  - Run with -verbose for more detailed output\n")
	fmt.Fprintf(r.errOut, "  - Review the examples/ directory for working directives\n")
}

// findToolError searches for a ToolError in wrapped errors
func findToolError(err error) *models.ToolError {
	var toolErr *models.ToolError
	if errors.As(err, &toolErr) {
		return toolErr
	}
	return nil
}

// printErrorChain prints the unwrapped error chain in verbose mode
func (r *Reporter) printErrorChain(err error) {
	if err == nil {
		return
	}

	fmt.Fprintf(r.errOut, "Error Chain:\n")
	level := 1
	for err != nil {
		fmt.Fprintf(r.errOut, "  %d. %s\n", level, err.Error())
		err = errors.Unwrap(err)
		level++
	}
	fmt.Fprintf(r.errOut, "\n")
}
