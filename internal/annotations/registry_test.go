package annotations

import (
	"strings"
	"testing"
)

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(NoticeAnnotation, NoticeAnnotationSchema); err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if !registry.IsRegistered(NoticeAnnotation) {
		t.Error("expected notice to be registered")
	}

	schema, err := registry.GetSchema(NoticeAnnotation)
	if err != nil {
		t.Fatalf("GetSchema returned error: %v", err)
	}

	if schema.Type != NoticeAnnotation {
		t.Errorf("expected schema type %v, got %v", NoticeAnnotation, schema.Type)
	}

	if _, exists := schema.Parameters["reason"]; !exists {
		t.Error("expected notice schema to define a reason parameter")
	}
}

func TestRegistryGetSchemaUnregistered(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.GetSchema(RenamedAnnotation)
	if err == nil {
		t.Fatal("expected error for unregistered type, got nil")
	}

	if !strings.Contains(err.Error(), "not registered") {
		t.Errorf("expected not-registered error, got %q", err.Error())
	}
}

func TestRegistryRejectsMismatchedType(t *testing.T) {
	registry := NewRegistry()

	err := registry.Register(PendingAnnotation, NoticeAnnotationSchema)
	if err == nil {
		t.Fatal("expected error for mismatched schema type, got nil")
	}

	if !strings.Contains(err.Error(), "does not match") {
		t.Errorf("expected mismatch error, got %q", err.Error())
	}
}

func TestRegistryRejectsDuplicate(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(NoticeAnnotation, NoticeAnnotationSchema); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}

	err := registry.Register(NoticeAnnotation, NoticeAnnotationSchema)
	if err == nil {
		t.Fatal("expected error for duplicate registration, got nil")
	}

	if !strings.Contains(err.Error(), "already registered") {
		t.Errorf("expected duplicate error, got %q", err.Error())
	}
}

func TestRegistryValidatesDefaultValueTypes(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name   string
		schema AnnotationSchema
	}{
		{
			name: "string default on bool parameter",
			schema: AnnotationSchema{
				Type: NoticeAnnotation,
				Parameters: map[string]ParameterSpec{
					"flag": {Type: BoolType, DefaultValue: "yes"},
				},
			},
		},
		{
			name: "bool default on int parameter",
			schema: AnnotationSchema{
				Type: NoticeAnnotation,
				Parameters: map[string]ParameterSpec{
					"count": {Type: IntType, DefaultValue: true},
				},
			},
		},
		{
			name: "int default on string parameter",
			schema: AnnotationSchema{
				Type: NoticeAnnotation,
				Parameters: map[string]ParameterSpec{
					"label": {Type: StringType, DefaultValue: 7},
				},
			},
		},
		{
			name: "out of range parameter type",
			schema: AnnotationSchema{
				Type: NoticeAnnotation,
				Parameters: map[string]ParameterSpec{
					"odd": {Type: ParameterType(42)},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := registry.Register(NoticeAnnotation, tt.schema); err == nil {
				t.Error("expected schema validation error, got nil")
			}
		})
	}
}

func TestRegistryAcceptsTypedDefaults(t *testing.T) {
	registry := NewRegistry()

	schema := AnnotationSchema{
		Type: NoticeAnnotation,
		Parameters: map[string]ParameterSpec{
			"label":  {Type: StringType, DefaultValue: "none"},
			"silent": {Type: BoolType, DefaultValue: false},
			"grace":  {Type: IntType, DefaultValue: 30},
		},
	}

	if err := registry.Register(NoticeAnnotation, schema); err != nil {
		t.Fatalf("Register returned error for valid defaults: %v", err)
	}
}

func TestRegistryListTypes(t *testing.T) {
	registry := NewRegistry()

	if err := RegisterBuiltinSchemas(registry); err != nil {
		t.Fatalf("RegisterBuiltinSchemas returned error: %v", err)
	}

	types := registry.ListTypes()
	if len(types) != 3 {
		t.Fatalf("expected 3 registered types, got %d", len(types))
	}

	seen := make(map[AnnotationType]bool)
	for _, at := range types {
		seen[at] = true
	}

	for _, want := range []AnnotationType{NoticeAnnotation, PendingAnnotation, RenamedAnnotation} {
		if !seen[want] {
			t.Errorf("expected %v in ListTypes result", want)
		}
	}
}

func TestDefaultRegistryHasBuiltins(t *testing.T) {
	registry := DefaultRegistry()

	for _, at := range []AnnotationType{NoticeAnnotation, PendingAnnotation, RenamedAnnotation} {
		if !registry.IsRegistered(at) {
			t.Errorf("expected %v to be registered in the default registry", at)
		}
	}

	if DefaultRegistry() != registry {
		t.Error("expected DefaultRegistry to return the same instance")
	}
}
