package deprecated

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Templates(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		opts   []Option
		want   string
	}{
		{
			"bare function",
			Target{Name: "old_api", Kind: KindFunction},
			nil,
			"Call to deprecated function (or staticmethod) old_api.",
		},
		{
			"function with reason and version",
			Target{Name: "old_api", Kind: KindFunction},
			[]Option{WithReason("use new_api"), WithVersion("2.0")},
			"Call to deprecated function (or staticmethod) old_api. (use new_api) -- Deprecated since version 2.0.",
		},
		{
			"reason only",
			Target{Name: "old_api", Kind: KindFunction},
			[]Option{WithReason("use new_api")},
			"Call to deprecated function (or staticmethod) old_api. (use new_api)",
		},
		{
			"version only",
			Target{Name: "old_api", Kind: KindFunction},
			[]Option{WithVersion("1.3.0")},
			"Call to deprecated function (or staticmethod) old_api. -- Deprecated since version 1.3.0.",
		},
		{
			"class",
			Target{Name: "OldClient", Kind: KindClass},
			nil,
			"Call to deprecated class OldClient.",
		},
		{
			"method",
			Target{Name: "Close", Kind: KindMethod},
			nil,
			"Call to deprecated method Close.",
		},
		{
			"class method",
			Target{Name: "FromConfig", Kind: KindClassMethod},
			nil,
			"Call to deprecated class method FromConfig.",
		},
		{
			"reason with inline role",
			Target{Name: "foo", Kind: KindFunction},
			[]Option{WithReason("use :func:`bar` instead")},
			"Call to deprecated function (or staticmethod) foo. (use `bar` instead)",
		},
		{
			"reason with chained role prefix",
			Target{Name: "foo", Kind: KindFunction},
			[]Option{WithReason("see :py:meth:`Client.Fetch`")},
			"Call to deprecated function (or staticmethod) foo. (see `Client.Fetch`)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.target, tt.opts...).Message())
		})
	}
}

func TestMessage_CustomMessageFunc(t *testing.T) {
	annotator := New(Target{Name: "GET /old", Kind: KindFunction},
		WithMessageFunc(func(target Target) string {
			return "Call to deprecated endpoint " + target.Name + "."
		}),
		WithReason("reason is not appended to custom messages"),
	)

	assert.Equal(t, "Call to deprecated endpoint GET /old.", annotator.Message())
}

func TestCleanReason(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no markup", "use new_api instead", "use new_api instead"},
		{"single role", "use :func:`bar`", "use `bar`"},
		{"chained roles", "see :py:class:`Client`", "see `Client`"},
		{"plain backticks untouched", "use `bar`", "use `bar`"},
		{"multiple references", ":func:`a` or :func:`b`", "`a` or `b`"},
		{"unterminated reference untouched", "use :func:`bar", "use :func:`bar"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanReason(tt.in))
		})
	}
}
