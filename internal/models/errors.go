package models

import "fmt"

// ErrorType represents different types of tool errors
type ErrorType int

const (
	ErrorTypeDirectiveSyntax ErrorType = iota
	ErrorTypeValidation
	ErrorTypeRewrite
	ErrorTypeFileSystem
)

// ToolError represents an error that occurred during scanning or rewriting
type ToolError struct {
	Type    ErrorType // type of error
	File    string    // file where error occurred
	Line    int       // line number where error occurred
	Message string    // error message
	Hint    string    // suggested fix, shown by the reporter
	Cause   error     // underlying error cause
}

// Error implements the error interface
func (e *ToolError) Error() string {
	if e.File != "" && e.Line > 0 {
		return fmt.Sprintf("%s:%d: %s", e.File, e.Line, e.Message)
	}
	if e.File != "" {
		return fmt.Sprintf("%s: %s", e.File, e.Message)
	}
	return e.Message
}

// Unwrap returns the underlying error cause
func (e *ToolError) Unwrap() error {
	return e.Cause
}
