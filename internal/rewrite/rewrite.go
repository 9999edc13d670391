package rewrite

import (
	"sort"
	"strings"

	"github.com/commit0-lite-test/deprecated/internal/models"
	"github.com/commit0-lite-test/deprecated/internal/utils"
)

// Rewriter splices deprecation paragraphs into doc comments. It edits whole
// source lines using the spans recorded by the scanner, so everything else
// in the file stays untouched.
type Rewriter struct {
	width  int
	reader *utils.FileReader
}

// NewRewriter creates a rewriter wrapping paragraphs at the given display
// width. Width zero or below selects DefaultWidth.
func NewRewriter(width int) *Rewriter {
	return NewRewriterWithReader(width, utils.NewFileReader())
}

// NewRewriterWithReader creates a rewriter sharing an existing file reader,
// so files already read by the scanner are not read again
func NewRewriterWithReader(width int, reader *utils.FileReader) *Rewriter {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Rewriter{
		width:  width,
		reader: reader,
	}
}

// Apply returns src with every declaration's paragraph brought in line with
// its directive: missing paragraphs are inserted, stale ones replaced, and
// paragraphs on pending deprecations removed. The second return reports
// whether anything changed.
func (r *Rewriter) Apply(src string, apis []models.DeprecatedAPI) (string, bool) {
	lines := strings.Split(src, "\n")
	changed := false

	for _, api := range descending(apis) {
		var thisChanged bool
		if WantsParagraph(api) {
			lines, thisChanged = ensureParagraph(lines, api, r.width)
		} else {
			lines, thisChanged = removeParagraph(lines, api)
		}
		changed = changed || thisChanged
	}

	if !changed {
		return src, false
	}
	return strings.Join(lines, "\n"), true
}

// Strip returns src with every previously written paragraph removed
func (r *Rewriter) Strip(src string, apis []models.DeprecatedAPI) (string, bool) {
	lines := strings.Split(src, "\n")
	changed := false

	for _, api := range descending(apis) {
		var thisChanged bool
		lines, thisChanged = removeParagraph(lines, api)
		changed = changed || thisChanged
	}

	if !changed {
		return src, false
	}
	return strings.Join(lines, "\n"), true
}

// WriteFile applies the paragraphs for path and writes the formatted result
// back atomically. It returns whether the file changed on disk.
func (r *Rewriter) WriteFile(path string, apis []models.DeprecatedAPI) (bool, error) {
	return r.updateFile(path, apis, r.Apply)
}

// StripFile removes the paragraphs for path and writes the formatted result
// back atomically. It returns whether the file changed on disk.
func (r *Rewriter) StripFile(path string, apis []models.DeprecatedAPI) (bool, error) {
	return r.updateFile(path, apis, r.Strip)
}

func (r *Rewriter) updateFile(path string, apis []models.DeprecatedAPI, transform func(string, []models.DeprecatedAPI) (string, bool)) (bool, error) {
	content, err := r.reader.ReadFile(path)
	if err != nil {
		return false, &models.ToolError{
			Type:    models.ErrorTypeFileSystem,
			File:    path,
			Message: "reading source file",
			Cause:   err,
		}
	}

	out, changed := transform(content, apis)
	if !changed {
		return false, nil
	}

	formatted, err := utils.FormatSource(path, []byte(out))
	if err != nil {
		return false, &models.ToolError{
			Type:    models.ErrorTypeRewrite,
			File:    path,
			Message: "formatting rewritten source",
			Cause:   err,
		}
	}

	if err := utils.WriteFileAtomic(path, formatted, 0644); err != nil {
		return false, &models.ToolError{
			Type:    models.ErrorTypeFileSystem,
			File:    path,
			Message: "writing rewritten source",
			Cause:   err,
		}
	}
	r.reader.InvalidateFile(path)

	return true, nil
}

// descending orders declarations bottom-up, so splicing one doc block never
// shifts the recorded spans of the blocks still to come
func descending(apis []models.DeprecatedAPI) []models.DeprecatedAPI {
	ordered := make([]models.DeprecatedAPI, len(apis))
	copy(ordered, apis)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Directive.Start > ordered[j].Directive.Start
	})
	return ordered
}

// ensureParagraph inserts or replaces the Deprecated: paragraph of one
// declaration
func ensureParagraph(lines []string, api models.DeprecatedAPI, width int) ([]string, bool) {
	want := Paragraph(api)

	if api.Paragraph != nil {
		if Normalize(api.ParagraphText) == Normalize(want) {
			return lines, false
		}
		return splice(lines, api.Paragraph.Start-1, api.Paragraph.End, WrapComment(want, width)), true
	}

	at := api.Directive.Start - 1
	var block []string
	if api.Directive.Start > api.Doc.Start && strings.TrimSpace(lines[at-1]) != "//" {
		// Separate the paragraph from the doc text above it
		block = append(block, "//")
	}
	block = append(block, WrapComment(want, width)...)
	return splice(lines, at, at, block), true
}

// removeParagraph deletes the Deprecated: paragraph of one declaration plus
// whichever blank comment line the removal leaves dangling
func removeParagraph(lines []string, api models.DeprecatedAPI) ([]string, bool) {
	if api.Paragraph == nil {
		return lines, false
	}

	start := api.Paragraph.Start - 1
	end := api.Paragraph.End

	blankBefore := api.Paragraph.Start > api.Doc.Start && strings.TrimSpace(lines[start-1]) == "//"
	blankAfter := api.Paragraph.End < api.Doc.End && strings.TrimSpace(lines[end]) == "//"

	if blankAfter {
		end++
	} else if blankBefore {
		start--
	}

	return splice(lines, start, end, nil), true
}

// splice replaces lines[start:end] with block
func splice(lines []string, start, end int, block []string) []string {
	out := make([]string, 0, len(lines)-(end-start)+len(block))
	out = append(out, lines[:start]...)
	out = append(out, block...)
	out = append(out, lines[end:]...)
	return out
}
