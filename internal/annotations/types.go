package annotations

import (
	"fmt"
	"strconv"
	"strings"
)

// AnnotationType represents the type of deprecation directive
type AnnotationType int

const (
	// NoticeAnnotation marks a declaration as deprecated (//deprecated::notice)
	NoticeAnnotation AnnotationType = iota

	// PendingAnnotation marks a declaration as scheduled for deprecation (//deprecated::pending)
	PendingAnnotation

	// RenamedAnnotation marks a declaration as deprecated in favor of a new name (//deprecated::renamed)
	RenamedAnnotation
)

// String returns the string representation of the annotation type
func (a AnnotationType) String() string {
	switch a {
	case NoticeAnnotation:
		return "notice"
	case PendingAnnotation:
		return "pending"
	case RenamedAnnotation:
		return "renamed"
	default:
		return "unknown"
	}
}

// ParseAnnotationType converts string to AnnotationType
func ParseAnnotationType(s string) (AnnotationType, error) {
	switch strings.ToLower(s) {
	case "notice":
		return NoticeAnnotation, nil
	case "pending":
		return PendingAnnotation, nil
	case "renamed":
		return RenamedAnnotation, nil
	default:
		return 0, fmt.Errorf("unknown annotation type: %s", s)
	}
}

// SourceLocation represents the location of a directive in source code
type SourceLocation struct {
	File   string // File path
	Line   int    // Line number (1-based)
	Column int    // Column number (1-based)
}

// String returns the location in file:line:column form
func (l SourceLocation) String() string {
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// ParsedAnnotation represents a fully parsed directive with type-safe parameters
type ParsedAnnotation struct {
	Type       AnnotationType         // Directive type enum
	Target     string                 // Declaration name the directive attaches to
	Parameters map[string]interface{} // Typed parameters
	Location   SourceLocation         // Source location
	Raw        string                 // Original directive text
}

// GetString returns a string parameter value with optional default
func (pa *ParsedAnnotation) GetString(key string, defaultValue ...string) string {
	if value, exists := pa.Parameters[key]; exists {
		if str, ok := value.(string); ok {
			return str
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return ""
}

// GetBool returns a bool parameter value with optional default
func (pa *ParsedAnnotation) GetBool(key string, defaultValue ...bool) bool {
	if value, exists := pa.Parameters[key]; exists {
		if b, ok := value.(bool); ok {
			return b
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return false
}

// GetInt returns an int parameter value with optional default
func (pa *ParsedAnnotation) GetInt(key string, defaultValue ...int) int {
	if value, exists := pa.Parameters[key]; exists {
		if i, ok := value.(int); ok {
			return i
		}
	}
	if len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return 0
}

// HasParameter checks if a parameter exists
func (pa *ParsedAnnotation) HasParameter(key string) bool {
	_, exists := pa.Parameters[key]
	return exists
}

// ParameterType represents the expected type of a directive parameter
type ParameterType int

const (
	// StringType for string parameters
	StringType ParameterType = iota

	// BoolType for boolean parameters
	BoolType

	// IntType for integer parameters
	IntType
)

// String returns the string representation of the parameter type
func (pt ParameterType) String() string {
	switch pt {
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	case IntType:
		return "int"
	default:
		return "unknown"
	}
}

// ParameterSpec defines the specification for a directive parameter
type ParameterSpec struct {
	Type         ParameterType           // Parameter type
	Required     bool                    // Whether parameter is required
	DefaultValue interface{}             // Default value if not provided
	Description  string                  // Parameter description
	Validator    func(interface{}) error // Optional value validator
}

// CustomValidator validates a complete parsed directive
type CustomValidator func(*ParsedAnnotation) error

// AnnotationSchema defines the structure and validation rules for a directive type
type AnnotationSchema struct {
	Type        AnnotationType           // Directive type enum
	Description string                   // Human-readable description
	Parameters  map[string]ParameterSpec // Parameter specifications
	Validators  []CustomValidator        // Custom validation functions
	Examples    []string                 // Usage examples
}

// ConvertToString converts a value to string
func ConvertToString(value interface{}) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	default:
		return "", fmt.Errorf("cannot convert %T to string", value)
	}
}

// ConvertToBool converts a value to bool
func ConvertToBool(value interface{}) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return strconv.ParseBool(v)
	case int:
		return v != 0, nil
	default:
		return false, fmt.Errorf("cannot convert %T to bool", value)
	}
}

// ConvertToInt converts a value to int
func ConvertToInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case string:
		return strconv.Atoi(v)
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to int", value)
	}
}
