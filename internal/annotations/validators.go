package annotations

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/commit0-lite-test/deprecated/pkg/warnings"
)

// Common validation functions shared by the builtin schemas

// ValidateAction validates warning filter action names (error, ignore, always,
// default, module, once)
func ValidateAction(v interface{}) error {
	action := v.(string)
	if _, err := warnings.ParseAction(action); err != nil {
		return err
	}
	return nil
}

// ValidateVersionText validates version strings (must be non-blank)
func ValidateVersionText(v interface{}) error {
	version := v.(string)
	if strings.TrimSpace(version) == "" {
		return fmt.Errorf("version cannot be blank")
	}
	return nil
}

// renameTargetPattern matches identifiers and dotted qualified names such as
// NewClient or pkgname.NewClient
var renameTargetPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)*$`)

// ValidateRenameTarget validates replacement names for renamed directives
func ValidateRenameTarget(v interface{}) error {
	target := v.(string)
	if target == "" {
		return fmt.Errorf("replacement name cannot be empty")
	}
	if !renameTargetPattern.MatchString(target) {
		return fmt.Errorf("must be an identifier or dotted name, got '%s'", target)
	}
	return nil
}

// Common parameter specifications shared by the builtin schemas

// ReasonParameterSpec returns a standard reason parameter specification
func ReasonParameterSpec() ParameterSpec {
	return ParameterSpec{
		Type:        StringType,
		Required:    false,
		Description: "Short explanation appended to the warning message, e.g. \"use NewClient instead\"",
	}
}

// VersionParameterSpec returns a standard version parameter specification
func VersionParameterSpec() ParameterSpec {
	return ParameterSpec{
		Type:        StringType,
		Required:    false,
		Description: "Version in which the declaration was deprecated, e.g. 1.2.0",
		Validator:   ValidateVersionText,
	}
}

// RemoveParameterSpec returns a standard remove parameter specification
func RemoveParameterSpec() ParameterSpec {
	return ParameterSpec{
		Type:        StringType,
		Required:    false,
		Description: "Version in which the declaration is scheduled for removal",
		Validator:   ValidateVersionText,
	}
}

// ActionParameterSpec returns a standard action parameter specification
func ActionParameterSpec() ParameterSpec {
	return ParameterSpec{
		Type:        StringType,
		Required:    false,
		Description: "Warning filter action: error, ignore, always, default, module, or once",
		Validator:   ValidateAction,
	}
}

// RenameTargetParameterSpec returns a standard to parameter specification
func RenameTargetParameterSpec() ParameterSpec {
	return ParameterSpec{
		Type:        StringType,
		Required:    true,
		Description: "Replacement name callers should migrate to",
		Validator:   ValidateRenameTarget,
	}
}
