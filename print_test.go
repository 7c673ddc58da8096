package regast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"gotest.tools/v3/assert"
)

func TestStringCanonical(t *testing.T) {
	tests := []struct {
		pattern string
		printed string
	}{
		{"JT", "JT"},
		{"a|b|c", "a|b|c"},
		{"^a.b$", "^a.b$"},
		{"a*b+?c??", "a*b+?c??"},
		{"x{2}y{3,}z{4,7}?", "x{2}y{3,}z{4,7}?"},
		{"(a)(?:b)(c)", "(a)(?:b)(c)"},
		{`\.\*\|`, `\.\*\|`},
		// Bare and bracketed built-in sets print in bare form.
		{`[\w]`, `\w`},
		{`\d\s\w`, `\d\s\w`},
		{`[^\w][a-e][^f-h]`, `[^\w][a-e][^f-h]`},
		// Every recognized category name collapses to Punctuation.
		{`\P{Lt}`, `\P{P}`},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			expr, err := ParseComplete(tt.pattern)
			assert.NilError(t, err)
			assert.Equal(t, expr.String(), tt.printed)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	patterns := []string{
		"JT",
		"a|b|c",
		"^a.b$",
		"a*b+c?",
		"a*?b+?c??",
		"x{2}y{3,}z{4,7}?",
		"(a)(?:b)(c)",
		"((i?)[a-e][^f-h])",
		`\.\*\|`,
		`[\w][abc][^a-e]`,
		`\d\s\w`,
		`\P{N}`,
		`a*b(?:[a-e])((i?)[\w][^a-e])`,
	}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			expr, err := ParseComplete(pattern)
			assert.NilError(t, err)
			again, err := ParseComplete(expr.String())
			assert.NilError(t, err)
			if diff := cmp.Diff(expr, again); diff != "" {
				t.Fatalf("reparsed tree differs (-want +got):\n%s", diff)
			}
		})
	}
}
