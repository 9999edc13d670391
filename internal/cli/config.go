package cli

// Mode selects what a run does with the scanned directives
type Mode int

const (
	// ModeReport lists deprecated declarations without touching files
	ModeReport Mode = iota

	// ModeWrite syncs Deprecated: doc paragraphs with the directives
	ModeWrite

	// ModeStrip removes Deprecated: doc paragraphs
	ModeStrip

	// ModeCheck verifies paragraphs without writing, for CI
	ModeCheck
)

// String returns the mode name as used on the command line
func (m Mode) String() string {
	switch m {
	case ModeReport:
		return "report"
	case ModeWrite:
		return "write"
	case ModeStrip:
		return "strip"
	case ModeCheck:
		return "check"
	default:
		return "unknown"
	}
}

// Config holds the configuration for one CLI run
type Config struct {
	// Directories is the list of directories to scan for annotated Go files.
	// A trailing "/..." scans the whole tree below the base directory;
	// a plain path scans that single package directory.
	Directories []string

	// Mode selects report, write, strip or check behavior
	Mode Mode

	// Width is the column doc paragraphs are wrapped to when writing.
	// Zero means the default width.
	Width int

	// ModuleName is the custom module path for imports
	// If empty, will be determined from go.mod file
	ModuleName string

	// Verbose enables detailed logging and error reporting
	Verbose bool
}
