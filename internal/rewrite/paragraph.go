package rewrite

import (
	"strings"

	"github.com/commit0-lite-test/deprecated/internal/annotations"
	"github.com/commit0-lite-test/deprecated/internal/models"
	"github.com/commit0-lite-test/deprecated/pkg/deprecated"
)

// Paragraph builds the doc-comment paragraph for one annotated declaration:
//
//	Deprecated: {reason} (since {version}); will be removed in {remove}.
//
// Optional clauses are dropped when their parameters are absent. Renamed
// declarations derive the reason from the replacement name, and inline
// :role:`target` references are reduced the same way runtime warning
// messages reduce them.
func Paragraph(api models.DeprecatedAPI) string {
	ann := api.Annotation

	var reason string
	if ann.Type == annotations.RenamedAnnotation {
		reason = "use " + ann.GetString("to") + " instead"
	} else {
		reason = strings.TrimSpace(ann.GetString("reason"))
	}
	if reason == "" {
		reason = api.QualifiedName() + " should no longer be used"
	}
	reason = strings.TrimSuffix(deprecated.CleanReason(reason), ".")

	var b strings.Builder
	b.WriteString("Deprecated: ")
	b.WriteString(reason)
	if version := strings.TrimSpace(ann.GetString("version")); version != "" {
		b.WriteString(" (since ")
		b.WriteString(version)
		b.WriteString(")")
	}
	if remove := strings.TrimSpace(ann.GetString("remove")); remove != "" {
		b.WriteString("; will be removed in ")
		b.WriteString(remove)
	}
	b.WriteString(".")
	return b.String()
}

// WantsParagraph reports whether the directive kind carries a Deprecated:
// paragraph. Pending deprecations are report-only until the notice lands.
func WantsParagraph(api models.DeprecatedAPI) bool {
	return api.Annotation != nil && api.Annotation.Type != annotations.PendingAnnotation
}

// Normalize collapses runs of whitespace so paragraphs wrapped at different
// widths compare equal.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
