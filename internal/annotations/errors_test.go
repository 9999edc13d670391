package annotations

import (
	"strings"
	"testing"
)

func TestErrorCodeString(t *testing.T) {
	tests := []struct {
		code     ErrorCode
		expected string
	}{
		{SyntaxErrorCode, "SyntaxError"},
		{ValidationErrorCode, "ValidationError"},
		{SchemaErrorCode, "SchemaError"},
		{RegistrationErrorCode, "RegistrationError"},
		{ErrorCode(99), "UnknownError"},
	}

	for _, tt := range tests {
		if got := tt.code.String(); got != tt.expected {
			t.Errorf("ErrorCode(%d).String() = %q, want %q", tt.code, got, tt.expected)
		}
	}
}

func TestValidationErrorFormat(t *testing.T) {
	err := &ValidationError{
		Parameter: "action",
		Expected:  "valid value",
		Actual:    "explode",
		Loc:       SourceLocation{File: "svc.go", Line: 12, Column: 1},
		Hint:      "Use one of the known actions",
	}

	want := "svc.go:12:1: parameter 'action' validation failed: expected valid value, got explode. Use one of the known actions"
	if err.Error() != want {
		t.Errorf("ValidationError.Error() = %q, want %q", err.Error(), want)
	}

	if err.Code() != ValidationErrorCode {
		t.Errorf("Code() = %v, want ValidationErrorCode", err.Code())
	}
	if err.Suggestion() != "Use one of the known actions" {
		t.Errorf("Suggestion() = %q", err.Suggestion())
	}
	if err.Location().Line != 12 {
		t.Errorf("Location().Line = %d, want 12", err.Location().Line)
	}
}

func TestSyntaxErrorFormat(t *testing.T) {
	err := &SyntaxError{
		Msg:  "missing annotation type",
		Loc:  SourceLocation{File: "svc.go", Line: 3, Column: 1},
		Hint: "Try: //deprecated::notice",
	}

	want := "svc.go:3:1: syntax error: missing annotation type. Try: //deprecated::notice"
	if err.Error() != want {
		t.Errorf("SyntaxError.Error() = %q, want %q", err.Error(), want)
	}
}

func TestRegistrationErrorWithoutLocation(t *testing.T) {
	err := &RegistrationError{Msg: "duplicate schema", Hint: "Register each type once"}

	want := "registration error: duplicate schema. Register each type once"
	if err.Error() != want {
		t.Errorf("RegistrationError.Error() = %q, want %q", err.Error(), want)
	}
}

func TestMultipleAnnotationErrors(t *testing.T) {
	single := &MultipleAnnotationErrors{
		Errors: []AnnotationError{
			&SyntaxError{Msg: "first", Loc: SourceLocation{File: "a.go", Line: 1, Column: 1}, Hint: "fix it"},
		},
	}
	if !strings.Contains(single.Error(), "first") {
		t.Errorf("single error should format directly, got %q", single.Error())
	}
	if strings.Contains(single.Error(), "multiple") {
		t.Errorf("single error should not use the combined header, got %q", single.Error())
	}

	combined := &MultipleAnnotationErrors{
		Errors: []AnnotationError{
			&SyntaxError{Msg: "first", Loc: SourceLocation{File: "a.go", Line: 1, Column: 1}, Hint: "fix it"},
			&ValidationError{Parameter: "to", Expected: "identifier", Actual: "1x",
				Loc: SourceLocation{File: "a.go", Line: 2, Column: 1}, Hint: "rename it"},
		},
	}

	if !strings.Contains(combined.Error(), "multiple annotation errors (2 total)") {
		t.Errorf("expected combined header, got %q", combined.Error())
	}

	if !combined.HasType(SyntaxErrorCode) {
		t.Error("expected HasType(SyntaxErrorCode) = true")
	}
	if combined.HasType(RegistrationErrorCode) {
		t.Error("expected HasType(RegistrationErrorCode) = false")
	}

	validation := combined.GetByType(ValidationErrorCode)
	if len(validation) != 1 {
		t.Fatalf("expected 1 validation error, got %d", len(validation))
	}

	unwrapped := combined.Unwrap()
	if len(unwrapped) != 2 {
		t.Errorf("expected 2 unwrapped errors, got %d", len(unwrapped))
	}
}

func TestSummarizeErrors(t *testing.T) {
	errors := []AnnotationError{
		&SyntaxError{Msg: "a"},
		&SyntaxError{Msg: "b"},
		&ValidationError{Parameter: "to"},
		&SchemaError{Msg: "c"},
	}

	summary := SummarizeErrors(errors)

	if summary.TotalCount != 4 {
		t.Errorf("TotalCount = %d, want 4", summary.TotalCount)
	}
	if len(summary.SyntaxErrors) != 2 {
		t.Errorf("SyntaxErrors = %d, want 2", len(summary.SyntaxErrors))
	}
	if len(summary.ValidationErrors) != 1 {
		t.Errorf("ValidationErrors = %d, want 1", len(summary.ValidationErrors))
	}
	if len(summary.SchemaErrors) != 1 {
		t.Errorf("SchemaErrors = %d, want 1", len(summary.SchemaErrors))
	}

	text := summary.String()
	for _, want := range []string{"4 total", "2 syntax", "1 validation", "1 schema"} {
		if !strings.Contains(text, want) {
			t.Errorf("summary %q missing %q", text, want)
		}
	}

	empty := SummarizeErrors(nil)
	if empty.String() != "No errors found" {
		t.Errorf("empty summary = %q", empty.String())
	}
}

func TestSyntaxSuggestions(t *testing.T) {
	tests := []struct {
		msg      string
		context  string
		wantText string
	}{
		{"missing annotation type", "", "//deprecated::notice"},
		{"invalid annotation prefix: missing '//'", "", "double colon"},
		{"unterminated quoted string", "", "matching quotes"},
		{"unexpected token: x", "renamed -to", "-to=NewName"},
		{"unexpected token: x", "pending -reason", "Pending format"},
		{"unexpected token: x", "notice", "Notice format"},
		{"something else entirely", "", "directive syntax"},
	}

	for _, tt := range tests {
		err := NewSyntaxErrorWithContext(tt.msg, SourceLocation{File: "a.go", Line: 1, Column: 1}, tt.context)
		if !strings.Contains(err.Suggestion(), tt.wantText) {
			t.Errorf("suggestion for %q = %q, want substring %q", tt.msg, err.Suggestion(), tt.wantText)
		}
	}
}

func TestValidationSuggestions(t *testing.T) {
	tests := []struct {
		parameter string
		wantText  string
	}{
		{"reason", "-reason="},
		{"version", "-version=1.2.0"},
		{"remove", "-remove=2.0.0"},
		{"action", "once"},
		{"to", "-to=NewClient"},
		{"other", "should be"},
	}

	for _, tt := range tests {
		err := NewValidationErrorWithContext(tt.parameter, "string", "junk",
			SourceLocation{File: "a.go", Line: 1, Column: 1}, NoticeAnnotation)
		if !strings.Contains(err.Suggestion(), tt.wantText) {
			t.Errorf("suggestion for %q = %q, want substring %q", tt.parameter, err.Suggestion(), tt.wantText)
		}
	}
}

func TestSchemaSuggestions(t *testing.T) {
	tests := []struct {
		msg            string
		annotationType AnnotationType
		wantText       string
	}{
		{"unknown annotation type: gone", NoticeAnnotation, "notice, pending, renamed"},
		{"schema not found", RenamedAnnotation, "not registered"},
		{"unknown parameter 'x'", NoticeAnnotation, "reason, version, remove, action"},
		{"unknown parameter 'x'", PendingAnnotation, "reason, version, remove"},
		{"unknown parameter 'x'", RenamedAnnotation, "to, version, remove"},
		{"anything else", NoticeAnnotation, "schema"},
	}

	for _, tt := range tests {
		err := NewSchemaErrorWithContext(tt.msg, SourceLocation{File: "a.go", Line: 1, Column: 1}, tt.annotationType)
		if !strings.Contains(err.Suggestion(), tt.wantText) {
			t.Errorf("suggestion for %q/%v = %q, want substring %q",
				tt.msg, tt.annotationType, err.Suggestion(), tt.wantText)
		}
	}
}
