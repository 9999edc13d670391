package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/commit0-lite-test/deprecated/internal/annotations"
	"github.com/commit0-lite-test/deprecated/internal/models"
)

func scanOne(t *testing.T, source string) models.DeprecatedAPI {
	t.Helper()
	scan, err := NewScanner().ScanSource("demo.go", source)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(scan.APIs) != 1 {
		t.Fatalf("expected 1 annotated declaration, got %d", len(scan.APIs))
	}
	return scan.APIs[0]
}

func TestScanSource_Function(t *testing.T) {
	api := scanOne(t, `package demo

// Fetch grabs the thing.
//deprecated::notice -reason="use FetchContext instead" -version=1.2.0
func Fetch() {}
`)

	if api.Name != "Fetch" || api.Receiver != "" {
		t.Errorf("unexpected identity: %q receiver %q", api.Name, api.Receiver)
	}
	if api.Kind != models.APIKindFunction {
		t.Errorf("expected function kind, got %s", api.Kind)
	}
	if api.PackageName != "demo" {
		t.Errorf("expected package demo, got %s", api.PackageName)
	}
	if api.Line != 5 {
		t.Errorf("expected declaration on line 5, got %d", api.Line)
	}
	if api.Doc.Start != 3 || api.Doc.End != 4 {
		t.Errorf("unexpected doc span %+v", api.Doc)
	}
	if api.Directive.Start != 4 || api.Directive.End != 4 {
		t.Errorf("unexpected directive span %+v", api.Directive)
	}
	if api.HasParagraph() {
		t.Error("expected no existing paragraph")
	}
	if api.Annotation.Type != annotations.NoticeAnnotation {
		t.Errorf("expected notice annotation, got %s", api.Annotation.Type)
	}
	if api.Annotation.Target != "Fetch" {
		t.Errorf("expected target Fetch, got %q", api.Annotation.Target)
	}
	if got := api.Annotation.GetString("reason"); got != "use FetchContext instead" {
		t.Errorf("unexpected reason %q", got)
	}
	if got := api.Annotation.GetString("version"); got != "1.2.0" {
		t.Errorf("unexpected version %q", got)
	}
}

func TestScanSource_Methods(t *testing.T) {
	tests := []struct {
		name         string
		source       string
		wantReceiver string
	}{
		{
			"value receiver",
			`package demo

type Client struct{}

//deprecated::notice -reason="use Shutdown instead"
func (c Client) Close() {}
`,
			"Client",
		},
		{
			"pointer receiver",
			`package demo

type Client struct{}

//deprecated::notice -reason="use Shutdown instead"
func (c *Client) Close() {}
`,
			"Client",
		},
		{
			"generic receiver",
			`package demo

type Pool[T any] struct{}

//deprecated::notice -reason="use Drain instead"
func (p *Pool[T]) Close() {}
`,
			"Pool",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := scanOne(t, tt.source)
			if api.Kind != models.APIKindMethod {
				t.Errorf("expected method kind, got %s", api.Kind)
			}
			if api.Receiver != tt.wantReceiver {
				t.Errorf("expected receiver %s, got %s", tt.wantReceiver, api.Receiver)
			}
			if want := tt.wantReceiver + ".Close"; api.QualifiedName() != want {
				t.Errorf("expected qualified name %s, got %s", want, api.QualifiedName())
			}
			if api.Annotation.Target != api.QualifiedName() {
				t.Errorf("annotation target %q should match %q", api.Annotation.Target, api.QualifiedName())
			}
		})
	}
}

func TestScanSource_Types(t *testing.T) {
	t.Run("plain declaration", func(t *testing.T) {
		api := scanOne(t, `package demo

// Legacy is the old client.
//deprecated::renamed -to=Client
type Legacy struct{}
`)
		if api.Kind != models.APIKindType {
			t.Errorf("expected type kind, got %s", api.Kind)
		}
		if api.Name != "Legacy" {
			t.Errorf("expected name Legacy, got %s", api.Name)
		}
		if api.Annotation.Type != annotations.RenamedAnnotation {
			t.Errorf("expected renamed annotation, got %s", api.Annotation.Type)
		}
	})

	t.Run("single spec inside parens", func(t *testing.T) {
		api := scanOne(t, `package demo

type (
	// Legacy is the old client.
	//deprecated::notice -reason="use Client instead"
	Legacy struct{}
)
`)
		if api.Name != "Legacy" || api.Kind != models.APIKindType {
			t.Errorf("unexpected API %s (%s)", api.Name, api.Kind)
		}
	})
}

func TestScanSource_ParagraphSpan(t *testing.T) {
	api := scanOne(t, `package demo

// Fetch grabs the thing.
//
// Deprecated: use B instead,
// really.
//
// More prose.
//deprecated::notice -reason="use B instead, really"
func Fetch() {}
`)

	if !api.HasParagraph() {
		t.Fatal("expected an existing paragraph")
	}
	if api.Paragraph.Start != 5 || api.Paragraph.End != 6 {
		t.Errorf("unexpected paragraph span %+v", api.Paragraph)
	}
	if want := "Deprecated: use B instead,\nreally."; api.ParagraphText != want {
		t.Errorf("unexpected paragraph text %q, want %q", api.ParagraphText, want)
	}
	if api.Doc.Start != 3 || api.Doc.End != 9 {
		t.Errorf("unexpected doc span %+v", api.Doc)
	}
}

func TestScanSource_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			"package doc",
			`// Package demo is fine.
//deprecated::notice
package demo
`,
			"not supported on package declarations",
		},
		{
			"var declaration",
			`package demo

//deprecated::notice
var Old = 1
`,
			"not supported on var declarations",
		},
		{
			"const declaration",
			`package demo

//deprecated::notice
const Old = 1
`,
			"not supported on const declarations",
		},
		{
			"grouped type declaration",
			`package demo

// Both are old.
//deprecated::notice
type (
	A int
	B int
)
`,
			"directive on a grouped type declaration",
		},
		{
			"multiple directives",
			`package demo

//deprecated::notice -reason="one"
//deprecated::notice -reason="two"
func Fetch() {}
`,
			"multiple deprecated directives on Fetch",
		},
		{
			"unknown annotation type",
			`package demo

//deprecated::gone
func Fetch() {}
`,
			"unknown annotation type",
		},
		{
			"invalid action",
			`package demo

//deprecated::notice -action=explode
func Fetch() {}
`,
			"unknown warning action",
		},
		{
			"renamed to itself",
			`package demo

//deprecated::renamed -to=Fetch
func Fetch() {}
`,
			"matches the deprecated name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScanner().ScanSource("demo.go", tt.source)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %q", tt.want, err.Error())
			}
		})
	}
}

func TestScanSource_RenamedMethodTargetsQualifiedName(t *testing.T) {
	// The replacement is compared against the receiver-qualified name, so
	// renaming a method to itself is caught.
	source := `package demo

type Client struct{}

//deprecated::renamed -to=Client.Close
func (c *Client) Close() {}
`

	_, err := NewScanner().ScanSource("demo.go", source)
	if err == nil || !strings.Contains(err.Error(), "matches the deprecated name") {
		t.Errorf("expected self-rename error, got %v", err)
	}
}

func TestScanSource_IgnoresUnannotatedDeclarations(t *testing.T) {
	scan, err := NewScanner().ScanSource("demo.go", `package demo

// Fetch grabs the thing.
func Fetch() {}

type Client struct{}
`)
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if len(scan.APIs) != 0 {
		t.Errorf("expected no annotated declarations, got %d", len(scan.APIs))
	}
}

func TestScanDirectory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"client.go": `package demo

//deprecated::notice -reason="use NewClient instead"
func Dial() {}
`,
		"server.go": `package demo

//deprecated::pending -reason="moving to v2"
func Serve() {}
`,
		"skip_test.go": `package demo

//deprecated::notice
func helper() {}
`,
		"_hidden.go": `package demo

//deprecated::notice
func hidden() {}
`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	scan, err := NewScanner().ScanDirectory(dir)
	if err != nil {
		t.Fatalf("ScanDirectory failed: %v", err)
	}
	if scan.PackageName != "demo" {
		t.Errorf("expected package demo, got %s", scan.PackageName)
	}
	if len(scan.APIs) != 2 {
		t.Fatalf("expected 2 annotated declarations, got %d", len(scan.APIs))
	}

	names := map[string]bool{}
	for _, api := range scan.APIs {
		names[api.Name] = true
	}
	if !names["Dial"] || !names["Serve"] {
		t.Errorf("expected Dial and Serve, got %v", names)
	}
}

func TestScanDirectory_MultiplePackages(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.go"), []byte("package one\n"), 0644)
	os.WriteFile(filepath.Join(dir, "b.go"), []byte("package two\n"), 0644)

	_, err := NewScanner().ScanDirectory(dir)
	if err == nil || !strings.Contains(err.Error(), "multiple packages") {
		t.Errorf("expected multiple packages error, got %v", err)
	}
}

func TestScanDirectory_NoGoFiles(t *testing.T) {
	_, err := NewScanner().ScanDirectory(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "no Go packages found") {
		t.Errorf("expected no packages error, got %v", err)
	}
}

func TestScanFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "client.go")
	source := `package demo

//deprecated::notice -reason="use NewClient instead"
func Dial() {}
`
	if err := os.WriteFile(path, []byte(source), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	scan, err := NewScanner().ScanFile(path)
	if err != nil {
		t.Fatalf("ScanFile failed: %v", err)
	}
	if len(scan.APIs) != 1 {
		t.Fatalf("expected 1 annotated declaration, got %d", len(scan.APIs))
	}
	if scan.APIs[0].File != path {
		t.Errorf("expected file %s, got %s", path, scan.APIs[0].File)
	}
	if scan.Dir != dir {
		t.Errorf("expected dir %s, got %s", dir, scan.Dir)
	}
}
