package annotations

import (
	"fmt"
)

// SchemaValidator defines the interface for validating directives against their schemas
type SchemaValidator interface {
	// Validate a directive against its schema
	Validate(annotation *ParsedAnnotation, schema AnnotationSchema) error

	// ApplyDefaults applies default values for missing optional parameters
	ApplyDefaults(annotation *ParsedAnnotation, schema AnnotationSchema) error

	// TransformParameters transforms parameter values to correct types
	TransformParameters(annotation *ParsedAnnotation, schema AnnotationSchema) error
}

// validator is the concrete implementation of SchemaValidator
type validator struct{}

// NewValidator creates a new schema validator
func NewValidator() SchemaValidator {
	return &validator{}
}

// Validate validates a directive against its schema
func (v *validator) Validate(annotation *ParsedAnnotation, schema AnnotationSchema) error {
	var errors []AnnotationError

	// Validate required parameters are present
	for paramName, paramSpec := range schema.Parameters {
		if paramSpec.Required {
			if _, exists := annotation.Parameters[paramName]; !exists {
				errors = append(errors, &ValidationError{
					Parameter: paramName,
					Expected:  fmt.Sprintf("required parameter of type %s", paramSpec.Type.String()),
					Actual:    "missing",
					Loc:       annotation.Location,
					Hint:      fmt.Sprintf("Add -%s=<value> to the directive", paramName),
				})
			}
		}
	}

	// Validate parameter types and values
	for paramName, paramValue := range annotation.Parameters {
		paramSpec, exists := schema.Parameters[paramName]
		if !exists {
			errors = append(errors, &ValidationError{
				Parameter: paramName,
				Expected:  "known parameter",
				Actual:    fmt.Sprintf("unknown parameter '%s'", paramName),
				Loc:       annotation.Location,
				Hint:      fmt.Sprintf("Remove -%s or check parameter name spelling", paramName),
			})
			continue
		}

		// Validate parameter type
		if err := v.validateParameterType(paramName, paramSpec.Type, paramValue, annotation.Location); err != nil {
			errors = append(errors, err)
			continue
		}

		// Run custom validator if present
		if paramSpec.Validator != nil {
			if err := paramSpec.Validator(paramValue); err != nil {
				errors = append(errors, &ValidationError{
					Parameter: paramName,
					Expected:  "valid value",
					Actual:    fmt.Sprintf("%v", paramValue),
					Loc:       annotation.Location,
					Hint:      err.Error(),
				})
			}
		}
	}

	// Run custom directive validators
	for _, customValidator := range schema.Validators {
		if err := customValidator(annotation); err != nil {
			errors = append(errors, &SchemaError{
				Msg:  err.Error(),
				Loc:  annotation.Location,
				Hint: "Check directive parameters and their combinations",
			})
		}
	}

	// Return combined errors if any
	if len(errors) > 0 {
		return &MultipleAnnotationErrors{Errors: errors}
	}

	return nil
}

// ApplyDefaults applies default values for missing optional parameters
func (v *validator) ApplyDefaults(annotation *ParsedAnnotation, schema AnnotationSchema) error {
	if annotation.Parameters == nil {
		annotation.Parameters = make(map[string]interface{})
	}

	for paramName, paramSpec := range schema.Parameters {
		if _, exists := annotation.Parameters[paramName]; !exists && paramSpec.DefaultValue != nil {
			annotation.Parameters[paramName] = paramSpec.DefaultValue
		}
	}

	return nil
}

// TransformParameters transforms parameter values to correct types
func (v *validator) TransformParameters(annotation *ParsedAnnotation, schema AnnotationSchema) error {
	for paramName, paramValue := range annotation.Parameters {
		paramSpec, exists := schema.Parameters[paramName]
		if !exists {
			continue // Unknown parameters are caught in validation
		}

		transformedValue, err := v.transformParameterValue(paramValue, paramSpec.Type)
		if err != nil {
			return &ValidationError{
				Parameter: paramName,
				Expected:  fmt.Sprintf("value convertible to %s", paramSpec.Type.String()),
				Actual:    fmt.Sprintf("%v (%T)", paramValue, paramValue),
				Loc:       annotation.Location,
				Hint:      fmt.Sprintf("Ensure the value can be converted to %s", paramSpec.Type.String()),
			}
		}

		annotation.Parameters[paramName] = transformedValue
	}

	return nil
}

// validateParameterType validates that a parameter value matches the expected type
func (v *validator) validateParameterType(paramName string, expectedType ParameterType, value interface{}, location SourceLocation) AnnotationError {
	switch expectedType {
	case StringType:
		if _, ok := value.(string); !ok {
			return &ValidationError{
				Parameter: paramName,
				Expected:  "string",
				Actual:    fmt.Sprintf("%T", value),
				Loc:       location,
				Hint:      "Provide a string value",
			}
		}
	case BoolType:
		if _, ok := value.(bool); !ok {
			return &ValidationError{
				Parameter: paramName,
				Expected:  "bool",
				Actual:    fmt.Sprintf("%T", value),
				Loc:       location,
				Hint:      "Use true/false or provide as a flag",
			}
		}
	case IntType:
		if _, ok := value.(int); !ok {
			return &ValidationError{
				Parameter: paramName,
				Expected:  "int",
				Actual:    fmt.Sprintf("%T", value),
				Loc:       location,
				Hint:      "Provide an integer value",
			}
		}
	default:
		return &ValidationError{
			Parameter: paramName,
			Expected:  "known type",
			Actual:    fmt.Sprintf("unknown type %d", expectedType),
			Loc:       location,
			Hint:      "This is a schema definition error",
		}
	}

	return nil
}

// transformParameterValue attempts to transform a value to the target type
func (v *validator) transformParameterValue(value interface{}, targetType ParameterType) (interface{}, error) {
	switch targetType {
	case StringType:
		return ConvertToString(value)
	case BoolType:
		return ConvertToBool(value)
	case IntType:
		return ConvertToInt(value)
	default:
		return nil, fmt.Errorf("unsupported target type: %d", targetType)
	}
}
