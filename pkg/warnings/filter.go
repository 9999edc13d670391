package warnings

import "regexp"

// Filter is one entry in a registry's filter list. Every constraint left at
// its zero value matches everything, so the zero Filter matches every
// warning. The first filter in the list whose constraints all match decides
// the warning's action.
type Filter struct {
	// Action applied when the filter matches.
	Action Action

	// Category restricts the filter to warnings of this category or any
	// category derived from it. Nil matches every category.
	Category *Category

	// Message restricts the filter to warnings whose text matches the
	// pattern. Nil matches every message.
	Message *regexp.Regexp

	// Module restricts the filter to warnings originating from packages
	// whose import path matches the pattern. Nil matches every package.
	Module *regexp.Regexp
}

// Matches reports whether the warning satisfies every constraint of the
// filter.
func (f Filter) Matches(w Warning) bool {
	if f.Category != nil {
		if w.Category == nil || !w.Category.Is(f.Category) {
			return false
		}
	}
	if f.Message != nil && !f.Message.MatchString(w.Message) {
		return false
	}
	if f.Module != nil && !f.Module.MatchString(w.Origin.Package) {
		return false
	}
	return true
}
