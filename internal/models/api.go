package models

import (
	"github.com/commit0-lite-test/deprecated/internal/annotations"
)

// APIKind represents the kind of declaration a directive attaches to
type APIKind int

const (
	APIKindFunction APIKind = iota
	APIKindMethod
	APIKindType
)

// String returns the string representation of the API kind
func (k APIKind) String() string {
	switch k {
	case APIKindFunction:
		return "function"
	case APIKindMethod:
		return "method"
	case APIKindType:
		return "type"
	default:
		return "unknown"
	}
}

// DocSpan marks an inclusive 1-based line range in a source file
type DocSpan struct {
	Start int // first line
	End   int // last line
}

// DeprecatedAPI represents one annotated declaration found by the scanner
type DeprecatedAPI struct {
	Name          string                        // declaration name
	Receiver      string                        // method receiver type, empty for functions and types
	Kind          APIKind                       // declaration kind
	PackageName   string                        // Go package containing the declaration
	File          string                        // file path
	Line          int                           // declaration line
	Annotation    *annotations.ParsedAnnotation // parsed directive
	Doc           DocSpan                       // full doc comment block
	Directive     DocSpan                       // directive comment line within the doc block
	Paragraph     *DocSpan                      // existing Deprecated: paragraph, nil when absent
	ParagraphText string                        // existing paragraph text without comment markers
}

// QualifiedName returns the declaration name with the receiver prefix for methods
func (a DeprecatedAPI) QualifiedName() string {
	if a.Receiver != "" {
		return a.Receiver + "." + a.Name
	}
	return a.Name
}

// HasParagraph reports whether the doc comment already carries a Deprecated: paragraph
func (a DeprecatedAPI) HasParagraph() bool {
	return a.Paragraph != nil
}
