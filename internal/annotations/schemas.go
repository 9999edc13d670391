package annotations

import (
	"fmt"
)

// Built-in directive schemas

// NoticeAnnotationSchema defines the schema for //deprecated::notice directives
var NoticeAnnotationSchema = AnnotationSchema{
	Type:        NoticeAnnotation,
	Description: "Marks a declaration as deprecated and selects the runtime warning behavior",
	Parameters: map[string]ParameterSpec{
		"reason":  ReasonParameterSpec(),
		"version": VersionParameterSpec(),
		"remove":  RemoveParameterSpec(),
		"action":  ActionParameterSpec(),
	},
	Examples: []string{
		"//deprecated::notice",
		"//deprecated::notice -reason=\"use NewClient instead\"",
		"//deprecated::notice -version=1.2.0",
		"//deprecated::notice -reason=\"use NewClient instead\" -version=1.2.0",
		"//deprecated::notice -version=1.2.0 -remove=2.0.0",
		"//deprecated::notice -action=error",
	},
}

// PendingAnnotationSchema defines the schema for //deprecated::pending directives
var PendingAnnotationSchema = AnnotationSchema{
	Type:        PendingAnnotation,
	Description: "Marks a declaration as scheduled for deprecation in a future release",
	Parameters: map[string]ParameterSpec{
		"reason":  ReasonParameterSpec(),
		"version": VersionParameterSpec(),
		"remove":  RemoveParameterSpec(),
	},
	Examples: []string{
		"//deprecated::pending",
		"//deprecated::pending -reason=\"switch to the v2 endpoint\"",
		"//deprecated::pending -version=1.4.0 -remove=2.0.0",
	},
}

// RenamedAnnotationSchema defines the schema for //deprecated::renamed directives
var RenamedAnnotationSchema = AnnotationSchema{
	Type:        RenamedAnnotation,
	Description: "Marks a declaration as deprecated in favor of a renamed replacement",
	Parameters: map[string]ParameterSpec{
		"to":      RenameTargetParameterSpec(),
		"version": VersionParameterSpec(),
		"remove":  RemoveParameterSpec(),
	},
	Examples: []string{
		"//deprecated::renamed -to=NewClient",
		"//deprecated::renamed -to=NewClient -version=1.2.0",
		"//deprecated::renamed -to=httpapi.NewClient -version=1.2.0 -remove=2.0.0",
	},
}

// RegisterBuiltinSchemas registers all built-in directive schemas with the given registry
func RegisterBuiltinSchemas(registry AnnotationRegistry) error {
	for _, schema := range GetBuiltinSchemas() {
		if err := registry.Register(schema.Type, schema); err != nil {
			return fmt.Errorf("failed to register %s schema: %w", schema.Type.String(), err)
		}
	}

	return nil
}

// GetBuiltinSchemas returns all built-in directive schemas
func GetBuiltinSchemas() []AnnotationSchema {
	return []AnnotationSchema{
		NoticeAnnotationSchema,
		PendingAnnotationSchema,
		RenamedAnnotationSchema,
	}
}

// ValidateRenamedParameters is a custom validator for renamed directives
func ValidateRenamedParameters(annotation *ParsedAnnotation) error {
	to := annotation.GetString("to")

	if to == "" {
		return fmt.Errorf("renamed directive requires to parameter")
	}

	// A rename that points at the deprecated name itself is a mistake
	if annotation.Target != "" && to == annotation.Target {
		return fmt.Errorf("replacement name '%s' matches the deprecated name", to)
	}

	return nil
}

// init registers custom validators for schemas that need them
func init() {
	RenamedAnnotationSchema.Validators = []CustomValidator{
		ValidateRenamedParameters,
	}
}
