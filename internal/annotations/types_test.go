package annotations

import (
	"testing"
)

func TestAnnotationTypeString(t *testing.T) {
	tests := []struct {
		annotationType AnnotationType
		expected       string
	}{
		{NoticeAnnotation, "notice"},
		{PendingAnnotation, "pending"},
		{RenamedAnnotation, "renamed"},
		{AnnotationType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.annotationType.String(); got != tt.expected {
			t.Errorf("AnnotationType(%d).String() = %q, want %q", tt.annotationType, got, tt.expected)
		}
	}
}

func TestParseAnnotationType(t *testing.T) {
	tests := []struct {
		input    string
		expected AnnotationType
		wantErr  bool
	}{
		{"notice", NoticeAnnotation, false},
		{"pending", PendingAnnotation, false},
		{"renamed", RenamedAnnotation, false},
		{"NOTICE", NoticeAnnotation, false},
		{"Renamed", RenamedAnnotation, false},
		{"gone", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAnnotationType(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAnnotationType(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expected {
			t.Errorf("ParseAnnotationType(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParameterTypeString(t *testing.T) {
	tests := []struct {
		parameterType ParameterType
		expected      string
	}{
		{StringType, "string"},
		{BoolType, "bool"},
		{IntType, "int"},
		{ParameterType(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.parameterType.String(); got != tt.expected {
			t.Errorf("ParameterType(%d).String() = %q, want %q", tt.parameterType, got, tt.expected)
		}
	}
}

func TestSourceLocationString(t *testing.T) {
	loc := SourceLocation{File: "pkg/client.go", Line: 42, Column: 3}
	if got := loc.String(); got != "pkg/client.go:42:3" {
		t.Errorf("SourceLocation.String() = %q", got)
	}
}

func TestParsedAnnotationAccessors(t *testing.T) {
	annotation := &ParsedAnnotation{
		Type: NoticeAnnotation,
		Parameters: map[string]interface{}{
			"reason": "use NewClient",
			"count":  3,
			"loud":   true,
			"odd":    []byte("not scalar"),
		},
	}

	if got := annotation.GetString("reason"); got != "use NewClient" {
		t.Errorf("GetString(reason) = %q", got)
	}
	if got := annotation.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q, want fallback", got)
	}
	if got := annotation.GetString("count"); got != "" {
		t.Errorf("GetString on int parameter = %q, want empty", got)
	}

	if got := annotation.GetInt("count"); got != 3 {
		t.Errorf("GetInt(count) = %d", got)
	}
	if got := annotation.GetInt("missing", 7); got != 7 {
		t.Errorf("GetInt default = %d, want 7", got)
	}

	if !annotation.GetBool("loud") {
		t.Error("GetBool(loud) = false, want true")
	}
	if annotation.GetBool("missing") {
		t.Error("GetBool(missing) = true, want false")
	}
	if !annotation.GetBool("missing", true) {
		t.Error("GetBool default = false, want true")
	}

	if !annotation.HasParameter("odd") {
		t.Error("HasParameter(odd) = false, want true")
	}
	if annotation.HasParameter("missing") {
		t.Error("HasParameter(missing) = true, want false")
	}
}

func TestConvertToString(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected string
		wantErr  bool
	}{
		{"text", "text", false},
		{true, "true", false},
		{42, "42", false},
		{3.14, "", true},
		{nil, "", true},
	}

	for _, tt := range tests {
		got, err := ConvertToString(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ConvertToString(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expected {
			t.Errorf("ConvertToString(%v) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestConvertToBool(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected bool
		wantErr  bool
	}{
		{true, true, false},
		{false, false, false},
		{"true", true, false},
		{"0", false, false},
		{1, true, false},
		{0, false, false},
		{"maybe", false, true},
		{3.14, false, true},
	}

	for _, tt := range tests {
		got, err := ConvertToBool(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ConvertToBool(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expected {
			t.Errorf("ConvertToBool(%v) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestConvertToInt(t *testing.T) {
	tests := []struct {
		input    interface{}
		expected int
		wantErr  bool
	}{
		{42, 42, false},
		{"42", 42, false},
		{true, 1, false},
		{false, 0, false},
		{"soon", 0, true},
		{3.14, 0, true},
	}

	for _, tt := range tests {
		got, err := ConvertToInt(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ConvertToInt(%v) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.expected {
			t.Errorf("ConvertToInt(%v) = %d, want %d", tt.input, got, tt.expected)
		}
	}
}
