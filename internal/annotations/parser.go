package annotations

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ParserEngine defines the core directive parsing functionality
type ParserEngine interface {
	ParseAnnotation(comment string, location SourceLocation) (*ParsedAnnotation, error)
	ValidateAnnotation(annotation *ParsedAnnotation) error
}

// directiveBody is the grammar for the payload following the //deprecated:: prefix:
// a directive type followed by -name or -name=value parameters
type directiveBody struct {
	Kind   string       `parser:"@Ident"`
	Params []*paramNode `parser:"@@*"`
}

// paramNode is a single parameter element
type paramNode struct {
	Name  string  `parser:"Dash @Ident"`
	Value *string `parser:"(Equals @(String | Ident | Number))?"`
}

var (
	directiveLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_.]*`},
		{Name: "Number", Pattern: `[0-9][a-zA-Z0-9_.]*`},
		{Name: "Dash", Pattern: `-`},
		{Name: "Equals", Pattern: `=`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	directiveGrammar = participle.MustBuild[directiveBody](
		participle.Lexer(directiveLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
)

// directivePrefix is the marker that introduces a directive inside a comment
const directivePrefix = "deprecated::"

// parser is the concrete implementation of ParserEngine
type parser struct {
	registry  AnnotationRegistry
	validator SchemaValidator
}

// NewParser creates a directive parser backed by the given schema registry.
// A nil registry disables schema validation.
func NewParser(registry AnnotationRegistry) ParserEngine {
	return &parser{
		registry:  registry,
		validator: NewValidator(),
	}
}

// IsDirective reports whether a comment line carries a //deprecated:: directive
func IsDirective(comment string) bool {
	rest := strings.TrimSpace(comment)
	if !strings.HasPrefix(rest, "//") {
		return false
	}
	rest = strings.TrimLeftFunc(rest[2:], unicode.IsSpace)
	return strings.HasPrefix(rest, directivePrefix)
}

// ParseAnnotation parses a single //deprecated:: comment into a ParsedAnnotation,
// validating it against the registered schema when a registry is present
func (p *parser) ParseAnnotation(comment string, location SourceLocation) (*ParsedAnnotation, error) {
	payload, err := p.stripPrefix(comment, location)
	if err != nil {
		return nil, err
	}

	if payload == "" {
		return nil, NewSyntaxErrorWithContext("missing annotation type", location, comment)
	}

	body, err := directiveGrammar.ParseString(location.File, payload)
	if err != nil {
		return nil, NewSyntaxErrorWithContext(syntaxMessage(err), location, payload)
	}

	annotationType, err := ParseAnnotationType(body.Kind)
	if err != nil {
		return nil, NewSchemaErrorWithContext(
			fmt.Sprintf("unknown annotation type: %s", body.Kind), location, annotationType)
	}

	annotation := &ParsedAnnotation{
		Type:       annotationType,
		Parameters: make(map[string]interface{}),
		Location:   location,
		Raw:        comment,
	}

	for _, param := range body.Params {
		p.storeParameter(annotation, param)
	}

	if p.registry != nil {
		if err := p.ValidateAnnotation(annotation); err != nil {
			return nil, err
		}
	}

	return annotation, nil
}

// stripPrefix removes the comment slashes and the deprecated:: marker
func (p *parser) stripPrefix(comment string, location SourceLocation) (string, error) {
	input := strings.TrimSpace(comment)

	if !strings.HasPrefix(input, "//") {
		return "", NewSyntaxErrorWithContext("invalid annotation prefix: missing '//'", location, comment)
	}

	rest := strings.TrimLeftFunc(input[2:], unicode.IsSpace)
	if !strings.HasPrefix(rest, directivePrefix) {
		return "", NewSyntaxErrorWithContext("invalid annotation prefix: missing 'deprecated::'", location, comment)
	}

	return strings.TrimSpace(rest[len(directivePrefix):]), nil
}

// storeParameter records a parsed parameter on the annotation. Parameters
// given in flag form (-name without a value) resolve through the schema:
// booleans become true, parameters with defaults take their default.
func (p *parser) storeParameter(annotation *ParsedAnnotation, param *paramNode) {
	if param.Value != nil {
		annotation.Parameters[param.Name] = *param.Value
		return
	}

	if p.registry != nil {
		if schema, err := p.registry.GetSchema(annotation.Type); err == nil {
			if spec, exists := schema.Parameters[param.Name]; exists {
				if spec.Type == BoolType {
					annotation.Parameters[param.Name] = true
					return
				}
				if spec.DefaultValue != nil {
					annotation.Parameters[param.Name] = spec.DefaultValue
					return
				}
			}
		}
	}

	// No schema guidance; treat the bare flag as boolean so validation can
	// report a type mismatch for non-boolean parameters
	annotation.Parameters[param.Name] = true
}

// syntaxMessage maps participle parse errors to stable message prefixes
func syntaxMessage(err error) string {
	text := err.Error()
	if strings.Contains(text, "not terminated") {
		return "unterminated quoted string"
	}
	return fmt.Sprintf("unexpected token: %v", err)
}

// ValidateAnnotation validates a parsed directive against its registered schema,
// applying defaults and transforming parameter values to their declared types
func (p *parser) ValidateAnnotation(annotation *ParsedAnnotation) error {
	if p.registry == nil || p.validator == nil {
		return nil
	}

	schema, err := p.registry.GetSchema(annotation.Type)
	if err != nil {
		return NewSchemaErrorWithContext(
			fmt.Sprintf("schema not found for annotation type: %s", annotation.Type),
			annotation.Location, annotation.Type)
	}

	if err := p.validator.ApplyDefaults(annotation, schema); err != nil {
		return err
	}

	if err := p.validator.TransformParameters(annotation, schema); err != nil {
		return err
	}

	return p.validator.Validate(annotation, schema)
}
