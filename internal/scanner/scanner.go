package scanner

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/commit0-lite-test/deprecated/internal/annotations"
	"github.com/commit0-lite-test/deprecated/internal/models"
	"github.com/commit0-lite-test/deprecated/internal/utils"
)

// Scanner extracts //deprecated:: directives from Go source files
type Scanner struct {
	fileSet *token.FileSet
	parser  annotations.ParserEngine
	reader  *utils.FileReader
}

// NewScanner creates a scanner backed by the builtin directive schemas
func NewScanner() *Scanner {
	return NewScannerWithReader(utils.NewFileReader())
}

// NewScannerWithReader creates a scanner sharing an existing file reader, so
// the contents read here stay cached for a following rewrite pass
func NewScannerWithReader(reader *utils.FileReader) *Scanner {
	return &Scanner{
		fileSet: token.NewFileSet(),
		parser:  annotations.NewParser(annotations.DefaultRegistry()),
		reader:  reader,
	}
}

// ScanSource scans source code from a string for testing purposes
func (s *Scanner) ScanSource(filename, source string) (*models.PackageScan, error) {
	file, err := parser.ParseFile(s.fileSet, filename, source, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source: %w", err)
	}

	apis, errs := s.extractFromFile(file, filename)
	if len(errs) > 0 {
		return nil, &annotations.MultipleAnnotationErrors{Errors: errs}
	}

	return &models.PackageScan{
		PackageName: file.Name.Name,
		Dir:         "./",
		APIs:        apis,
	}, nil
}

// ScanFile scans a single Go file
func (s *Scanner) ScanFile(path string) (*models.PackageScan, error) {
	file, err := s.parseFile(path)
	if err != nil {
		return nil, err
	}

	apis, errs := s.extractFromFile(file, path)
	if len(errs) > 0 {
		return nil, &annotations.MultipleAnnotationErrors{Errors: errs}
	}

	return &models.PackageScan{
		PackageName: file.Name.Name,
		Dir:         filepath.Dir(path),
		APIs:        apis,
	}, nil
}

// parseFile reads a file through the shared reader and parses it with
// comments attached
func (s *Scanner) parseFile(path string) (*ast.File, error) {
	content, err := s.reader.ReadFile(path)
	if err != nil {
		return nil, err
	}

	file, err := parser.ParseFile(s.fileSet, path, content, parser.ParseComments)
	if err != nil {
		return nil, utils.WrapParseError(fmt.Sprintf("file %s", path), err)
	}
	return file, nil
}

// ScanDirectory scans all Go files in one package directory. Test files and
// files hidden from the build (leading . or _) are skipped.
func (s *Scanner) ScanDirectory(path string) (*models.PackageScan, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", path, err)
	}

	packageName := ""
	var allAPIs []models.DeprecatedAPI
	var allErrs []annotations.AnnotationError

	for _, entry := range entries {
		if entry.IsDir() || !utils.IsScannableGoFile(entry.Name()) {
			continue
		}

		filePath := filepath.Join(path, entry.Name())
		file, err := s.parseFile(filePath)
		if err != nil {
			return nil, err
		}

		if packageName == "" {
			packageName = file.Name.Name
		} else if file.Name.Name != packageName {
			return nil, fmt.Errorf("multiple packages found in directory %s: %s and %s",
				path, packageName, file.Name.Name)
		}

		apis, errs := s.extractFromFile(file, filePath)
		allAPIs = append(allAPIs, apis...)
		allErrs = append(allErrs, errs...)
	}

	if packageName == "" {
		return nil, fmt.Errorf("no Go packages found in directory %s", path)
	}

	if len(allErrs) > 0 {
		return nil, &annotations.MultipleAnnotationErrors{Errors: allErrs}
	}

	return &models.PackageScan{
		PackageName: packageName,
		Dir:         path,
		APIs:        allAPIs,
	}, nil
}

// extractFromFile walks the AST and collects annotated declarations
func (s *Scanner) extractFromFile(file *ast.File, fileName string) ([]models.DeprecatedAPI, []annotations.AnnotationError) {
	var apis []models.DeprecatedAPI
	var errs []annotations.AnnotationError

	// Package docs are out of scope for directives
	if file.Doc != nil {
		if directives := s.directiveComments(file.Doc); len(directives) > 0 {
			errs = append(errs, s.unsupportedTargetError(directives[0], fileName, "package"))
		}
	}

	ast.Inspect(file, func(n ast.Node) bool {
		switch node := n.(type) {
		case *ast.GenDecl:
			s.collectGenDecl(node, file, fileName, &apis, &errs)
		case *ast.FuncDecl:
			if node.Doc == nil {
				return true
			}
			receiver := receiverTypeName(node)
			kind := models.APIKindFunction
			if receiver != "" {
				kind = models.APIKindMethod
			}
			s.collect(node.Doc, node.Name.Name, receiver, kind, node.Pos(), file, fileName, &apis, &errs)
		}
		return true
	})

	return apis, errs
}

// collectGenDecl handles type declarations and rejects directives on
// declaration forms the tool does not rewrite
func (s *Scanner) collectGenDecl(node *ast.GenDecl, file *ast.File, fileName string, apis *[]models.DeprecatedAPI, errs *[]annotations.AnnotationError) {
	if node.Tok != token.TYPE {
		if node.Doc != nil {
			if directives := s.directiveComments(node.Doc); len(directives) > 0 {
				*errs = append(*errs, s.unsupportedTargetError(directives[0], fileName, strings.ToLower(node.Tok.String())))
			}
		}
		return
	}

	// A directive on the group doc of a multi-spec block is ambiguous
	if len(node.Specs) > 1 && node.Doc != nil {
		if directives := s.directiveComments(node.Doc); len(directives) > 0 {
			pos := s.fileSet.Position(directives[0].Slash)
			*errs = append(*errs, &annotations.SchemaError{
				Msg:  "directive on a grouped type declaration",
				Loc:  annotations.SourceLocation{File: fileName, Line: pos.Line, Column: pos.Column},
				Hint: "Move the directive onto the individual type inside the group",
			})
		}
	}

	for _, spec := range node.Specs {
		typeSpec, ok := spec.(*ast.TypeSpec)
		if !ok {
			continue
		}

		doc := typeSpec.Doc
		if doc == nil && len(node.Specs) == 1 {
			doc = node.Doc
		}
		if doc == nil {
			continue
		}

		s.collect(doc, typeSpec.Name.Name, "", models.APIKindType, typeSpec.Pos(), file, fileName, apis, errs)
	}
}

// collect parses the directive attached to one declaration and records the API
func (s *Scanner) collect(doc *ast.CommentGroup, name, receiver string, kind models.APIKind, declPos token.Pos, file *ast.File, fileName string, apis *[]models.DeprecatedAPI, errs *[]annotations.AnnotationError) {
	directives := s.directiveComments(doc)
	if len(directives) == 0 {
		return
	}

	if len(directives) > 1 {
		pos := s.fileSet.Position(directives[1].Slash)
		*errs = append(*errs, &annotations.SchemaError{
			Msg:  fmt.Sprintf("multiple deprecated directives on %s", name),
			Loc:  annotations.SourceLocation{File: fileName, Line: pos.Line, Column: pos.Column},
			Hint: "Keep a single //deprecated:: directive per declaration",
		})
		return
	}

	comment := directives[0]
	pos := s.fileSet.Position(comment.Slash)
	location := annotations.SourceLocation{File: fileName, Line: pos.Line, Column: pos.Column}

	annotation, err := s.parser.ParseAnnotation(comment.Text, location)
	if err != nil {
		*errs = append(*errs, asAnnotationErrors(err)...)
		return
	}

	annotation.Target = name
	if receiver != "" {
		annotation.Target = receiver + "." + name
	}

	// Target-aware validators only run once the target is attached
	if err := s.parser.ValidateAnnotation(annotation); err != nil {
		*errs = append(*errs, asAnnotationErrors(err)...)
		return
	}

	api := models.DeprecatedAPI{
		Name:        name,
		Receiver:    receiver,
		Kind:        kind,
		PackageName: file.Name.Name,
		File:        fileName,
		Line:        s.fileSet.Position(declPos).Line,
		Annotation:  annotation,
		Doc: models.DocSpan{
			Start: s.fileSet.Position(doc.Pos()).Line,
			End:   s.fileSet.Position(doc.End()).Line,
		},
		Directive: models.DocSpan{Start: pos.Line, End: pos.Line},
	}
	api.Paragraph, api.ParagraphText = s.paragraphSpan(doc)

	*apis = append(*apis, api)
}

// directiveComments returns the //deprecated:: lines of a doc block
func (s *Scanner) directiveComments(doc *ast.CommentGroup) []*ast.Comment {
	var directives []*ast.Comment
	for _, c := range doc.List {
		if annotations.IsDirective(c.Text) {
			directives = append(directives, c)
		}
	}
	return directives
}

// paragraphSpan locates an existing Deprecated: paragraph inside a doc block
// and returns its line span plus the paragraph text without comment markers
func (s *Scanner) paragraphSpan(doc *ast.CommentGroup) (*models.DocSpan, string) {
	var span *models.DocSpan
	var lines []string
	inParagraph := false

	for _, c := range doc.List {
		if !strings.HasPrefix(c.Text, "//") {
			continue
		}
		if annotations.IsDirective(c.Text) {
			if inParagraph {
				break
			}
			continue
		}

		text := strings.TrimPrefix(c.Text, "//")
		text = strings.TrimPrefix(text, " ")
		line := s.fileSet.Position(c.Slash).Line

		switch {
		case !inParagraph && span == nil && strings.HasPrefix(text, "Deprecated:"):
			inParagraph = true
			span = &models.DocSpan{Start: line, End: line}
			lines = append(lines, text)
		case inParagraph:
			if strings.TrimSpace(text) == "" {
				inParagraph = false
				break
			}
			span.End = line
			lines = append(lines, text)
		}
	}

	if span == nil {
		return nil, ""
	}
	return span, strings.Join(lines, "\n")
}

// unsupportedTargetError reports a directive on a declaration form the tool
// does not handle
func (s *Scanner) unsupportedTargetError(comment *ast.Comment, fileName, form string) annotations.AnnotationError {
	pos := s.fileSet.Position(comment.Slash)
	return &annotations.SchemaError{
		Msg:  fmt.Sprintf("directive not supported on %s declarations", form),
		Loc:  annotations.SourceLocation{File: fileName, Line: pos.Line, Column: pos.Column},
		Hint: "Directives attach to functions, methods, and types",
	}
}

// receiverTypeName extracts the receiver type name of a method declaration,
// unwrapping pointers and type parameters
func receiverTypeName(decl *ast.FuncDecl) string {
	if decl.Recv == nil || len(decl.Recv.List) == 0 {
		return ""
	}
	return baseTypeName(decl.Recv.List[0].Type)
}

func baseTypeName(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return baseTypeName(t.X)
	case *ast.IndexExpr:
		return baseTypeName(t.X)
	case *ast.IndexListExpr:
		return baseTypeName(t.X)
	case *ast.Ident:
		return t.Name
	}
	return ""
}

// asAnnotationErrors flattens parser errors into their annotation error parts
func asAnnotationErrors(err error) []annotations.AnnotationError {
	switch e := err.(type) {
	case *annotations.MultipleAnnotationErrors:
		return e.Errors
	case annotations.AnnotationError:
		return []annotations.AnnotationError{e}
	}
	return []annotations.AnnotationError{&annotations.SyntaxError{Msg: err.Error()}}
}
