package deprecated

import (
	"github.com/commit0-lite-test/deprecated/pkg/warnings"
)

// DefaultLineLength is the display-fold hint applied when no explicit line
// length is configured.
const DefaultLineLength = 70

// Config captures everything a deprecation annotation needs to build and
// dispatch its warning. It is frozen when the annotator is constructed;
// the wrapper closure owns its copy for the lifetime of the process.
type Config struct {
	// Reason is free-form text explaining the deprecation, usually naming
	// the replacement. Inline :role:`target` documentation references are
	// reduced to `target` when the message is built.
	Reason string

	// Version is the release in which the target became deprecated.
	// Free-form text; no version syntax is enforced.
	Version string

	// Action overrides the ambient filter decision for this annotation's
	// warnings. The zero value defers to the ambient configuration.
	Action warnings.Action

	// Category classifies the warning. Nil means warnings.Deprecation.
	Category *warnings.Category

	// LineLength is the display hint handlers use to fold the warning
	// text. Zero means DefaultLineLength; values below zero disable
	// folding. Cosmetic only, the message itself is never altered.
	LineLength int

	// Registry receives the warnings. Nil means warnings.Default().
	Registry *warnings.Registry

	// MessageFunc replaces the built-in message templates. It receives the
	// annotation target and returns the complete warning text; Reason and
	// Version are not appended to its result.
	MessageFunc func(Target) string
}

// Option configures an annotation.
type Option func(*Config)

// WithReason sets the explanation appended to the warning in parentheses.
func WithReason(reason string) Option {
	return func(c *Config) { c.Reason = reason }
}

// WithVersion sets the release recorded in the warning's version clause.
func WithVersion(version string) Option {
	return func(c *Config) { c.Version = version }
}

// WithAction overrides the ambient filter decision for this annotation.
func WithAction(action warnings.Action) Option {
	return func(c *Config) { c.Action = action }
}

// WithCategory sets the warning category.
func WithCategory(category *warnings.Category) Option {
	return func(c *Config) { c.Category = category }
}

// WithLineLength sets the display-fold hint.
func WithLineLength(length int) Option {
	return func(c *Config) { c.LineLength = length }
}

// WithRegistry routes this annotation's warnings to registry instead of
// the process default.
func WithRegistry(registry *warnings.Registry) Option {
	return func(c *Config) { c.Registry = registry }
}

// WithMessageFunc replaces the built-in message templates with fn.
func WithMessageFunc(fn func(Target) string) Option {
	return func(c *Config) { c.MessageFunc = fn }
}
