package rewrite

import (
	"github.com/commit0-lite-test/deprecated/internal/models"
)

// CheckState classifies how a declaration's doc comment relates to its
// directive
type CheckState int

const (
	// StateOk means the doc comment agrees with the directive
	StateOk CheckState = iota
	// StateMissing means the directive has no Deprecated: paragraph yet
	StateMissing
	// StateStale means the paragraph no longer matches the directive
	StateStale
	// StateUnexpected means a pending deprecation carries a Deprecated:
	// paragraph it should not have yet
	StateUnexpected
)

// String returns the state name used in check output
func (s CheckState) String() string {
	switch s {
	case StateOk:
		return "ok"
	case StateMissing:
		return "missing"
	case StateStale:
		return "stale"
	case StateUnexpected:
		return "unexpected"
	default:
		return "unknown"
	}
}

// Finding is the check result for one annotated declaration
type Finding struct {
	API   models.DeprecatedAPI // the declaration checked
	State CheckState           // how its doc comment relates to the directive
	Want  string               // paragraph the directive calls for, empty for pending
}

// Ok reports whether the doc comment agrees with the directive
func (f Finding) Ok() bool {
	return f.State == StateOk
}

// Check compares every annotated declaration's doc comment against its
// directive without touching any file
func Check(apis []models.DeprecatedAPI) []Finding {
	findings := make([]Finding, 0, len(apis))
	for _, api := range apis {
		findings = append(findings, checkOne(api))
	}
	return findings
}

func checkOne(api models.DeprecatedAPI) Finding {
	if !WantsParagraph(api) {
		if api.HasParagraph() {
			return Finding{API: api, State: StateUnexpected}
		}
		return Finding{API: api, State: StateOk}
	}

	want := Paragraph(api)
	switch {
	case !api.HasParagraph():
		return Finding{API: api, State: StateMissing, Want: want}
	case Normalize(api.ParagraphText) != Normalize(want):
		return Finding{API: api, State: StateStale, Want: want}
	}
	return Finding{API: api, State: StateOk, Want: want}
}
