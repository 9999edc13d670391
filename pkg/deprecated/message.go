package deprecated

import (
	"fmt"
	"regexp"
	"strings"
)

// inlineRole matches :role:`target` documentation references, chained
// role prefixes included (for example :py:func:`target`).
var inlineRole = regexp.MustCompile("(?::[a-zA-Z][a-zA-Z0-9_.+-]*)+:`([^`]+)`")

// CleanReason reduces inline :role:`target` references to plain `target`
// so the reason reads naturally outside rendered documentation.
func CleanReason(reason string) string {
	return inlineRole.ReplaceAllString(reason, "`$1`")
}

// buildMessage renders the warning text for target: the kind's template,
// then the optional reason clause, then the optional version clause. The
// wording is stable; tests and filters match against it.
func buildMessage(cfg Config, target Target) string {
	if cfg.MessageFunc != nil {
		return cfg.MessageFunc(target)
	}
	var b strings.Builder
	switch target.Kind {
	case KindClass:
		fmt.Fprintf(&b, "Call to deprecated class %s.", target.Name)
	case KindMethod:
		fmt.Fprintf(&b, "Call to deprecated method %s.", target.Name)
	case KindClassMethod:
		fmt.Fprintf(&b, "Call to deprecated class method %s.", target.Name)
	default:
		fmt.Fprintf(&b, "Call to deprecated function (or staticmethod) %s.", target.Name)
	}
	if cfg.Reason != "" {
		fmt.Fprintf(&b, " (%s)", CleanReason(cfg.Reason))
	}
	if cfg.Version != "" {
		fmt.Fprintf(&b, " -- Deprecated since version %s.", cfg.Version)
	}
	return b.String()
}
