package adapters

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/commit0-lite-test/deprecated/pkg/deprecated"
)

// Notice describes one deprecated endpoint: why it is deprecated, since
// which API version, when it disappears and where clients can read about
// the migration.
type Notice struct {
	// Reason explains the deprecation, usually naming the replacement
	// endpoint.
	Reason string

	// Version is the API release that deprecated the endpoint.
	Version string

	// Deprecated is when the endpoint became deprecated. A non-zero value
	// is stamped on the Deprecation response header as a structured-field
	// date; a zero value stamps the literal "true".
	Deprecated time.Time

	// Sunset is when the endpoint stops working, stamped on the Sunset
	// response header in IMF-fixdate form when non-zero.
	Sunset time.Time

	// DocsURL links human-readable migration documentation, stamped as a
	// Link header with rel="deprecation" when non-empty.
	DocsURL string
}

// stamp writes the deprecation response headers through a framework's
// header setter.
func stamp(set func(key, value string), notice Notice) {
	if notice.Deprecated.IsZero() {
		set("Deprecation", "true")
	} else {
		set("Deprecation", fmt.Sprintf("@%d", notice.Deprecated.Unix()))
	}
	if !notice.Sunset.IsZero() {
		set("Sunset", notice.Sunset.UTC().Format(http.TimeFormat))
	}
	if notice.DocsURL != "" {
		set("Link", fmt.Sprintf("<%s>; rel=\"deprecation\"; type=\"text/html\"", notice.DocsURL))
	}
}

// endpointMessage renders the endpoint warning text: its own template plus
// the notice's reason and version clauses, phrased like the core wrapper
// templates.
func endpointMessage(notice Notice) func(deprecated.Target) string {
	return func(target deprecated.Target) string {
		var b strings.Builder
		fmt.Fprintf(&b, "Call to deprecated endpoint %s.", target.Name)
		if notice.Reason != "" {
			fmt.Fprintf(&b, " (%s)", notice.Reason)
		}
		if notice.Version != "" {
			fmt.Fprintf(&b, " -- Deprecated since version %s.", notice.Version)
		}
		return b.String()
	}
}

// warnEndpoint raises the per-request warning for a route. The message
// embeds the route, so ambient default filtering dedups per endpoint even
// though every framework funnels through this one call site.
func warnEndpoint(method, path string, notice Notice, opts []deprecated.Option) error {
	all := append(append([]deprecated.Option(nil), opts...),
		deprecated.WithMessageFunc(endpointMessage(notice)))
	target := deprecated.Target{Name: method + " " + path, Kind: deprecated.KindFunction}
	return deprecated.New(target, all...).Warn()
}
